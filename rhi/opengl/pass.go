// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"fmt"
	"slices"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gviegas/rhi/rhi"
)

// renderPass implements rhi.RenderPass.
type renderPass struct {
	rhi.ResourceBase
	color   []rhi.TextureFormat
	ds      rhi.TextureFormat
	samples int
}

// CreateRenderPass creates a new render pass.
// depthStencilFormat is rhi.FormatUnknown if the pass has
// no depth/stencil attachment.
func (d *Device) CreateRenderPass(colorFormats []rhi.TextureFormat, depthStencilFormat rhi.TextureFormat, samples int) (rhi.RenderPass, error) {
	if n := len(colorFormats); n > d.caps.MaximumNumberOfSimultaneousRenderTargets || n > rhi.MaxRenderTargets {
		return nil, fmt.Errorf("%w: %d color attachments", rhi.ErrUnsupported, n)
	}
	for _, c := range colorFormats {
		if _, ok := convTextureFormat(c); !ok || c.IsDepth() {
			return nil, fmt.Errorf("%w: color attachment format %d", rhi.ErrInvalidDescriptor, c)
		}
	}
	if depthStencilFormat != rhi.FormatUnknown && !depthStencilFormat.IsDepth() {
		return nil, fmt.Errorf("%w: depth/stencil attachment format %d", rhi.ErrInvalidDescriptor, depthStencilFormat)
	}
	p := &renderPass{
		color:   slices.Clone(colorFormats),
		ds:      depthStencilFormat,
		samples: max(samples, 1),
	}
	p.InitResource(d, rhi.RRenderPass, &d.stats, nil)
	return p, nil
}

func (p *renderPass) NumberOfColorAttachments() int { return len(p.color) }
func (p *renderPass) ColorAttachmentFormats() []rhi.TextureFormat { return p.color }
func (p *renderPass) DepthStencilAttachmentFormat() rhi.TextureFormat { return p.ds }
func (p *renderPass) NumberOfMultisamples() int { return p.samples }

// framebuffer implements rhi.Framebuffer.
type framebuffer struct {
	rhi.ResourceBase
	d      *Device
	id     uint32
	pass   rhi.RenderPass
	color  []rhi.FramebufferAttachment
	ds     *rhi.FramebufferAttachment
	width  int
	height int
}

// CreateFramebuffer creates a new framebuffer.
// The attachments must match the formats of pass.
func (d *Device) CreateFramebuffer(pass rhi.RenderPass, color []rhi.FramebufferAttachment, depthStencil *rhi.FramebufferAttachment) (rhi.Framebuffer, error) {
	if pass == nil {
		return nil, fmt.Errorf("%w: framebuffer without a render pass", rhi.ErrInvalidDescriptor)
	}
	formats := pass.ColorAttachmentFormats()
	if len(color) != len(formats) {
		return nil, fmt.Errorf("%w: %d color attachments for a pass of %d", rhi.ErrInvalidDescriptor, len(color), len(formats))
	}
	if (depthStencil != nil) != (pass.DepthStencilAttachmentFormat() != rhi.FormatUnknown) {
		return nil, fmt.Errorf("%w: depth/stencil attachment does not match the pass", rhi.ErrInvalidDescriptor)
	}
	fb := &framebuffer{
		d:     d,
		pass:  pass,
		color: slices.Clone(color),
	}
	texs := make([]*texture, 0, len(color)+1)
	for i, a := range color {
		t := asTexture(a.Texture)
		if t.format != formats[i] {
			return nil, fmt.Errorf("%w: color attachment %d: have %d, want %d", rhi.ErrInvalidDescriptor, i, t.format, formats[i])
		}
		texs = append(texs, t)
	}
	if depthStencil != nil {
		ds := *depthStencil
		fb.ds = &ds
		t := asTexture(ds.Texture)
		if t.format != pass.DepthStencilAttachmentFormat() {
			return nil, fmt.Errorf("%w: depth/stencil attachment: have %d, want %d", rhi.ErrInvalidDescriptor, t.format, pass.DepthStencilAttachmentFormat())
		}
		texs = append(texs, t)
	}
	if len(texs) == 0 {
		return nil, fmt.Errorf("%w: framebuffer without attachments", rhi.ErrInvalidDescriptor)
	}
	fb.width, fb.height = texs[0].width, texs[0].height
	for i, t := range texs {
		lvl := fb.attachmentAt(i).MipmapIndex
		fb.width = min(fb.width, max(t.width>>lvl, 1))
		fb.height = min(fb.height, max(t.height>>lvl, 1))
	}

	f := d.gl
	fb.id = f.GenFramebuffer()
	d.st.bindFramebuffer(f, fb.id)
	bufs := make([]uint32, len(color))
	for i := range color {
		bufs[i] = gl.COLOR_ATTACHMENT0 + uint32(i)
		fb.attach(bufs[i], texs[i], &fb.color[i])
	}
	if fb.ds != nil {
		fb.attach(gl.DEPTH_ATTACHMENT, texs[len(texs)-1], fb.ds)
	}
	f.DrawBuffers(bufs)
	if status := f.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		d.deleteFramebuffer(fb.id)
		d.bindRenderTarget()
		return nil, fmt.Errorf("%w: status %#x", rhi.ErrIncompleteFramebuffer, status)
	}
	d.bindRenderTarget()
	pass.AddRef()
	for _, t := range texs {
		t.AddRef()
	}
	fb.InitResource(d, rhi.RFramebuffer, &d.stats, fb.destroy)
	return fb, nil
}

// attachmentAt returns the i-th attachment, counting the
// depth/stencil attachment last.
func (fb *framebuffer) attachmentAt(i int) *rhi.FramebufferAttachment {
	if i < len(fb.color) {
		return &fb.color[i]
	}
	return fb.ds
}

// attach attaches a texture subresource to the bound
// framebuffer.
func (fb *framebuffer) attach(point uint32, t *texture, a *rhi.FramebufferAttachment) {
	f := fb.d.gl
	switch t.target {
	case gl.TEXTURE_2D, gl.TEXTURE_2D_MULTISAMPLE:
		f.FramebufferTexture2D(gl.FRAMEBUFFER, point, t.target, t.id, int32(a.MipmapIndex))
	case gl.TEXTURE_CUBE_MAP:
		f.FramebufferTexture2D(gl.FRAMEBUFFER, point, gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(a.LayerIndex), t.id, int32(a.MipmapIndex))
	default:
		f.FramebufferTextureLayer(gl.FRAMEBUFFER, point, t.id, int32(a.MipmapIndex), int32(a.LayerIndex))
	}
}

func (fb *framebuffer) destroy() {
	fb.d.deleteFramebuffer(fb.id)
	fb.pass.Release()
	for i := range fb.color {
		fb.color[i].Texture.Release()
	}
	if fb.ds != nil {
		fb.ds.Texture.Release()
	}
	fb.pass = nil
	fb.color = nil
	fb.ds = nil
}

func (fb *framebuffer) RenderPass() rhi.RenderPass { return fb.pass }
func (fb *framebuffer) Width() int { return fb.width }
func (fb *framebuffer) Height() int { return fb.height }
func (fb *framebuffer) ColorAttachments() []rhi.FramebufferAttachment { return fb.color }
func (fb *framebuffer) DepthStencilAttachment() *rhi.FramebufferAttachment { return fb.ds }

// deleteFramebuffer deletes fbo and forgets it if bound.
func (d *Device) deleteFramebuffer(fbo uint32) {
	if d.st.fbo == fbo {
		d.st.fbo = unknown
	}
	d.gl.DeleteFramebuffer(fbo)
}

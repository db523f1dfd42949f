// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gviegas/rhi/rhi"
)

// textureManager implements rhi.TextureManager.
type textureManager struct {
	d *Device
}

// texture implements every rhi texture interface.
type texture struct {
	rhi.ResourceBase
	d       *Device
	id      uint32
	target  uint32
	format  rhi.TextureFormat
	width   int
	height  int
	depth   int
	slices  int
	levels  int
	samples int
}

// texParams are the parameters of newTexture.
type texParams struct {
	typ     rhi.ResourceType
	target  uint32
	width   int
	height  int
	depth   int
	slices  int
	format  rhi.TextureFormat
	data    []byte
	flags   rhi.TextureFlags
	samples int
}

// newTexture creates a texture object and uploads the base
// level from p.data.
func (d *Device) newTexture(p *texParams) (*texture, error) {
	tf, ok := convTextureFormat(p.format)
	if !ok {
		return nil, fmt.Errorf("%w: texture format %d", rhi.ErrUnsupported, p.format)
	}
	lim := d.caps.MaximumTextureDimension
	for _, n := range [...]int{p.width, p.height, p.depth} {
		if n < 1 || (lim > 0 && n > lim) {
			return nil, fmt.Errorf("%w: %v of size %dx%dx%d", rhi.ErrInvalidDescriptor, p.typ, p.width, p.height, p.depth)
		}
	}
	if lim := d.caps.MaximumNumberOf2DTextureArraySlices; p.slices < 1 || (p.typ == rhi.RTexture2DArray && lim > 0 && p.slices > lim) {
		return nil, fmt.Errorf("%w: %v with %d slices", rhi.ErrInvalidDescriptor, p.typ, p.slices)
	}
	samples := max(p.samples, 1)
	if samples > 1 {
		switch {
		case p.typ != rhi.RTexture2D:
			return nil, fmt.Errorf("%w: multisample %v", rhi.ErrUnsupported, p.typ)
		case samples > d.caps.MaximumNumberOfMultisamples:
			return nil, fmt.Errorf("%w: %d samples (limit %d)", rhi.ErrUnsupported, samples, d.caps.MaximumNumberOfMultisamples)
		case p.data != nil || p.flags&rhi.GenerateMipmaps != 0:
			return nil, fmt.Errorf("%w: multisample texture with data or mipmaps", rhi.ErrInvalidDescriptor)
		}
	}
	layer := p.width * p.height * p.depth * p.format.Size()
	if p.data != nil && len(p.data) < layer*p.slices {
		return nil, fmt.Errorf("%w: %d bytes of data for %v (need %d)", rhi.ErrInvalidDescriptor, len(p.data), p.typ, layer*p.slices)
	}

	f := d.gl
	t := &texture{
		d:       d,
		id:      f.GenTexture(),
		target:  p.target,
		format:  p.format,
		width:   p.width,
		height:  p.height,
		depth:   p.depth,
		slices:  p.slices,
		levels:  1,
		samples: samples,
	}
	if p.flags&rhi.GenerateMipmaps != 0 {
		t.levels = rhi.MipmapCount(p.width, p.height, p.depth)
	}
	if samples > 1 {
		t.target = gl.TEXTURE_2D_MULTISAMPLE
	}
	d.bindScratchTexture(t.target, t.id)
	w, h, dp, n := int32(p.width), int32(p.height), int32(p.depth), int32(p.slices)
	switch {
	case samples > 1:
		f.TexImage2DMultisample(t.target, int32(samples), uint32(tf.internal), w, h, true)
	case t.target == gl.TEXTURE_1D:
		f.TexImage1D(t.target, 0, tf.internal, w, tf.format, tf.typ, p.data)
	case t.target == gl.TEXTURE_2D:
		f.TexImage2D(t.target, 0, tf.internal, w, h, tf.format, tf.typ, p.data)
	case t.target == gl.TEXTURE_2D_ARRAY:
		f.TexImage3D(t.target, 0, tf.internal, w, h, n, tf.format, tf.typ, p.data)
	case t.target == gl.TEXTURE_3D:
		f.TexImage3D(t.target, 0, tf.internal, w, h, dp, tf.format, tf.typ, p.data)
	case t.target == gl.TEXTURE_CUBE_MAP:
		for face := range 6 {
			var data []byte
			if p.data != nil {
				data = p.data[face*layer : (face+1)*layer]
			}
			f.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(face), 0, tf.internal, w, h, tf.format, tf.typ, data)
		}
	}
	if samples == 1 {
		f.TexParameteri(t.target, gl.TEXTURE_MAX_LEVEL, int32(t.levels-1))
		if t.levels > 1 && p.data != nil {
			f.GenerateMipmap(t.target)
		}
	}
	t.InitResource(d, p.typ, &d.stats, t.destroy)
	return t, nil
}

func (t *texture) destroy() {
	t.d.gl.DeleteTexture(t.id)
	t.id = 0
}

// TextureFormat returns the texel format.
func (t *texture) TextureFormat() rhi.TextureFormat { return t.format }

// NumberOfMipmaps returns the number of mipmap levels.
func (t *texture) NumberOfMipmaps() int { return t.levels }

// NumberOfMultisamples returns the sample count.
func (t *texture) NumberOfMultisamples() int { return t.samples }

// Width returns the width in texels.
func (t *texture) Width() int { return t.width }

// Height returns the height in texels.
func (t *texture) Height() int { return t.height }

// Depth returns the depth in texels.
func (t *texture) Depth() int { return t.depth }

// NumberOfSlices returns the number of array slices.
func (t *texture) NumberOfSlices() int { return t.slices }

// generateMipmaps regenerates every level from the base
// level.
func (t *texture) generateMipmaps() {
	f := t.d.gl
	if t.d.exts[extDirectStateAccess] {
		f.GenerateTextureMipmap(t.id)
	} else {
		t.d.bindScratchTexture(t.target, t.id)
		f.GenerateMipmap(t.target)
	}
}

// asTexture converts a texture.
// It panics if r is not one.
func asTexture(r rhi.Resource) *texture {
	t, ok := r.(*texture)
	if !ok {
		panic(fmt.Sprintf("opengl: %T is not an OpenGL texture", r))
	}
	return t
}

// CreateTexture1D creates a new 1D texture.
func (m *textureManager) CreateTexture1D(width int, format rhi.TextureFormat, data []byte, flags rhi.TextureFlags, usage rhi.TextureUsage) (rhi.Texture1D, error) {
	t, err := m.d.newTexture(&texParams{
		typ:    rhi.RTexture1D,
		target: gl.TEXTURE_1D,
		width:  width,
		height: 1,
		depth:  1,
		slices: 1,
		format: format,
		data:   data,
		flags:  flags,
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTexture2D creates a new 2D texture.
// samples greater than one creates a multisample texture.
func (m *textureManager) CreateTexture2D(width, height int, format rhi.TextureFormat, data []byte, flags rhi.TextureFlags, usage rhi.TextureUsage, samples int) (rhi.Texture2D, error) {
	t, err := m.d.newTexture(&texParams{
		typ:     rhi.RTexture2D,
		target:  gl.TEXTURE_2D,
		width:   width,
		height:  height,
		depth:   1,
		slices:  1,
		format:  format,
		data:    data,
		flags:   flags,
		samples: samples,
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTexture2DArray creates a new 2D array texture.
func (m *textureManager) CreateTexture2DArray(width, height, slices int, format rhi.TextureFormat, data []byte, flags rhi.TextureFlags, usage rhi.TextureUsage) (rhi.Texture2DArray, error) {
	t, err := m.d.newTexture(&texParams{
		typ:    rhi.RTexture2DArray,
		target: gl.TEXTURE_2D_ARRAY,
		width:  width,
		height: height,
		depth:  1,
		slices: slices,
		format: format,
		data:   data,
		flags:  flags,
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTexture3D creates a new 3D texture.
func (m *textureManager) CreateTexture3D(width, height, depth int, format rhi.TextureFormat, data []byte, flags rhi.TextureFlags, usage rhi.TextureUsage) (rhi.Texture3D, error) {
	t, err := m.d.newTexture(&texParams{
		typ:    rhi.RTexture3D,
		target: gl.TEXTURE_3D,
		width:  width,
		height: height,
		depth:  depth,
		slices: 1,
		format: format,
		data:   data,
		flags:  flags,
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTextureCube creates a new cube texture.
// data, if not nil, holds the six faces in +X, -X, +Y, -Y,
// +Z, -Z order.
func (m *textureManager) CreateTextureCube(width, height int, format rhi.TextureFormat, data []byte, flags rhi.TextureFlags, usage rhi.TextureUsage) (rhi.TextureCube, error) {
	t, err := m.d.newTexture(&texParams{
		typ:    rhi.RTextureCube,
		target: gl.TEXTURE_CUBE_MAP,
		width:  width,
		height: height,
		depth:  1,
		slices: 6,
		format: format,
		data:   data,
		flags:  flags,
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

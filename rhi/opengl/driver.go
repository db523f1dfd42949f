// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package opengl implements rhi interfaces using the OpenGL API.
package opengl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gviegas/rhi/rhi"
)

const backendName = "opengl"

// minVersion is the oldest context version supported,
// as major*10 + minor.
const minVersion = 33

// indirectBufferSize is the reported limit of indirect
// buffer sizes. GL has no such limit.
const indirectBufferSize = 64 << 10

// Backend implements rhi.Backend.
type Backend struct{}

func init() {
	rhi.Register(Backend{})
}

// Name returns "opengl".
func (Backend) Name() string { return backendName }

// CreateDevice calls CreateRHIDeviceInstance.
func (Backend) CreateDevice(ctx *rhi.Context) (rhi.Device, error) { return CreateRHIDeviceInstance(ctx) }

// CreateRHIDeviceInstance creates a new OpenGL device.
// ctx.ProcAddress must be set. Unless ctx.UseExternalContext
// is set, the context of ctx.Window.Surface is made current
// first.
func CreateRHIDeviceInstance(ctx *rhi.Context) (rhi.Device, error) {
	if ctx == nil || ctx.ProcAddress == nil {
		return nil, fmt.Errorf("%w: opengl: no proc address function", rhi.ErrNoDevice)
	}
	if s := ctx.Window.Surface; s != nil && !ctx.UseExternalContext {
		s.MakeContextCurrent()
	}
	if err := gl.InitWithProcAddrFunc(ctx.ProcAddress); err != nil {
		return nil, fmt.Errorf("%w: opengl: %v", rhi.ErrNoDevice, err)
	}
	d, err := newDevice(ctx, goglFuncs{})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Device implements rhi.Device.
type Device struct {
	gl    glFuncs
	ctx   *rhi.Context
	log   *slog.Logger
	vers  int
	exts  [extN]bool
	caps  rhi.Capabilities
	stats rhi.Statistics
	tab   rhi.DispatchTable
	st    glState
	glsl  glslLanguage
	bufm  bufferManager
	texm  textureManager

	// Texture unit used to create and update textures.
	// Resource groups should not bind to it.
	scratchUnit uint32

	// Bound state.
	// Each non-nil object holds a reference taken by
	// the command that bound it.
	gfxRootSig  *rootSignature
	gfxPipeline *graphicsPipelineState
	cmpRootSig  *rootSignature
	cmpPipeline *computePipelineState
	vertArray   *vertexArray
	renderTgt   rhi.RenderTarget

	// Last viewports and scissor rectangles set, in
	// top-left origin coordinates.
	viewports []rhi.Viewport
	scissors  []rhi.ScissorRectangle

	// Debug groups pushed by BeginDebugEvent.
	debugDepth int

	inScene bool
	closed  bool
}

// newDevice creates a device that issues native calls
// through f. The context must be current.
func newDevice(ctx *rhi.Context, f glFuncs) (*Device, error) {
	d := &Device{
		gl:  f,
		ctx: ctx,
		log: ctx.Log(),
	}
	major := int(f.GetInteger(gl.MAJOR_VERSION))
	minor := int(f.GetInteger(gl.MINOR_VERSION))
	d.vers = major*10 + minor
	if d.vers < minVersion {
		d.log.Error("opengl: context version not supported", "major", major, "minor", minor)
		return nil, fmt.Errorf("%w: OpenGL %d.%d", rhi.ErrNoDevice, major, minor)
	}
	d.exts = probeExts(f, d.vers)
	for i, ok := range d.exts {
		if !ok {
			d.log.Debug("opengl: extension unavailable", "name", extNames[i])
		}
	}
	d.setCaps()
	d.scratchUnit = uint32(max(f.GetInteger(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS), 1) - 1)
	d.st.init()
	d.glsl.d = d
	d.bufm.d = d
	d.texm.d = d
	d.initDispatchTable()

	if d.exts[extClipControl] {
		f.ClipControl(gl.LOWER_LEFT, gl.ZERO_TO_ONE)
	}
	if d.exts[extSeamlessCubeMap] {
		f.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)
	}
	if ctx.Debug {
		if d.exts[extDebugOutput] {
			f.Enable(gl.DEBUG_OUTPUT)
			f.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
			f.DebugMessageCallback(d.debugMessage)
		} else {
			d.log.Warn("opengl: debug output requested but not supported")
		}
	}
	d.log.Info("opengl: device created", "renderer", d.caps.DeviceName, "version", f.GetString(gl.VERSION))
	return d, nil
}

// setCaps populates d.caps. It is called once.
func (d *Device) setCaps() {
	f := d.gl
	geti := func(pname uint32) int { return int(f.GetInteger(pname)) }
	d.caps = rhi.Capabilities{
		DeviceName:                               f.GetString(gl.RENDERER),
		PreferredSwapChainColorTextureFormat:     rhi.R8G8B8A8,
		PreferredSwapChainDepthStencilFormat:     rhi.D32Float,
		MaximumNumberOfViewports:                 1,
		MaximumNumberOfSimultaneousRenderTargets: geti(gl.MAX_DRAW_BUFFERS),
		MaximumTextureDimension:                  geti(gl.MAX_TEXTURE_SIZE),
		MaximumNumberOf2DTextureArraySlices:      geti(gl.MAX_ARRAY_TEXTURE_LAYERS),
		MaximumUniformBufferSize:                 geti(gl.MAX_UNIFORM_BLOCK_SIZE),
		MaximumTextureBufferSize:                 geti(gl.MAX_TEXTURE_BUFFER_SIZE),
		MaximumNumberOfMultisamples:              geti(gl.MAX_SAMPLES),
		MaximumAnisotropy:                        1,
		ZeroToOneClipZ:                           d.exts[extClipControl],
		IndividualUniforms:                       true,
		InstancedArrays:                          true,
		DrawInstanced:                            true,
		BaseVertex:                               true,
		VertexShader:                             true,
		MaximumNumberOfGsOutputVertices:          geti(gl.MAX_GEOMETRY_OUTPUT_VERTICES),
		FragmentShader:                           true,
		ComputeShader:                            d.exts[extComputeShader],
	}
	if d.exts[extViewportArray] {
		d.caps.MaximumNumberOfViewports = geti(gl.MAX_VIEWPORTS)
	}
	if d.exts[extDrawIndirect] {
		d.caps.MaximumIndirectBufferSize = indirectBufferSize
	}
	if d.exts[extTextureFilterAnisotropic] {
		d.caps.MaximumAnisotropy = int(f.GetFloat(gl.MAX_TEXTURE_MAX_ANISOTROPY))
	}
	if d.exts[extTessellationShader] {
		d.caps.MaximumNumberOfPatchVertices = geti(gl.MAX_PATCH_VERTICES)
	}
}

// debugMessage logs messages from the debug output.
func (d *Device) debugMessage(source, typ, id, severity uint32, msg string) {
	lvl := slog.LevelDebug
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		lvl = slog.LevelError
	case gl.DEBUG_SEVERITY_MEDIUM:
		lvl = slog.LevelWarn
	case gl.DEBUG_SEVERITY_LOW:
		lvl = slog.LevelInfo
	}
	d.log.Log(context.Background(), lvl, "opengl: "+msg, "source", source, "type", typ, "id", id)
}

// Name returns "opengl".
func (d *Device) Name() string { return backendName }

// Context returns the context d was created with.
func (d *Device) Context() *rhi.Context { return d.ctx }

// Capabilities returns the device's capabilities.
func (d *Device) Capabilities() rhi.Capabilities { return d.caps }

// Version returns the context version as major and minor
// numbers.
func (d *Device) Version() (major, minor int) { return d.vers / 10, d.vers % 10 }

// Extensions returns the names of the probed extensions that
// are available, whether through the context version or an
// extension string.
func (d *Device) Extensions() []string {
	var s []string
	for i, ok := range d.exts {
		if ok {
			s = append(s, extNames[i])
		}
	}
	return s
}

// Statistics returns the live resource counters.
func (d *Device) Statistics() *rhi.Statistics { return &d.stats }

// DispatchTable returns the command dispatch table.
func (d *Device) DispatchTable() *rhi.DispatchTable { return &d.tab }

// ShaderLanguage returns the GLSL language for "GLSL" or
// an empty name.
func (d *Device) ShaderLanguage(name string) rhi.ShaderLanguage {
	if name == "" || strings.EqualFold(name, glslName) {
		return &d.glsl
	}
	return nil
}

// BufferManager returns the device's buffer manager.
func (d *Device) BufferManager() rhi.BufferManager { return &d.bufm }

// TextureManager returns the device's texture manager.
func (d *Device) TextureManager() rhi.TextureManager { return &d.texm }

// BeginScene starts a frame.
func (d *Device) BeginScene() bool {
	if d.closed {
		return false
	}
	if d.inScene {
		d.log.Warn("opengl: BeginScene called twice")
	}
	d.inScene = true
	return true
}

// EndScene ends the frame.
func (d *Device) EndScene() {
	if !d.inScene {
		d.log.Warn("opengl: EndScene without BeginScene")
	}
	d.inScene = false
}

// Submit executes the commands of cb.
func (d *Device) Submit(cb *rhi.CommandBuffer) { cb.Submit(d) }

// Flush calls glFlush.
func (d *Device) Flush() { d.gl.Flush() }

// Finish calls glFinish.
func (d *Device) Finish() { d.gl.Finish() }

// Close releases the bound state.
// Resources that are still alive are logged as leaks.
func (d *Device) Close() {
	if d.closed {
		return
	}
	d.unbindAll()
	for d.debugDepth > 0 {
		d.gl.PopDebugGroup()
		d.debugDepth--
	}
	if n := d.stats.Total(); n > 0 {
		for i := range rhi.ResourceTypeCount {
			t := rhi.ResourceType(i)
			if c := d.stats.Count(t); c > 0 {
				d.log.Warn("opengl: resource leak", "type", t, "count", c)
			}
		}
	}
	d.closed = true
	d.log.Info("opengl: device closed")
}

// unbindAll releases every bound object.
func (d *Device) unbindAll() {
	d.setGraphicsRootSignature(nil)
	d.setGraphicsPipelineState(nil)
	d.setComputeRootSignature(nil)
	d.setComputePipelineState(nil)
	d.setVertexArray(nil)
	d.setRenderTarget(nil)
}

// ownedBy panics if r was not created by d.
func (d *Device) ownedBy(r rhi.Resource, what string) {
	if r.Device() != rhi.Device(d) {
		panic("opengl: " + what + " from another device")
	}
}

var (
	_ rhi.Device                = &Device{}
	_ rhi.RootSignature         = &rootSignature{}
	_ rhi.ResourceGroup         = &resourceGroup{}
	_ rhi.GraphicsProgram       = &graphicsProgram{}
	_ rhi.VertexArray           = &vertexArray{}
	_ rhi.IndexBuffer           = &buffer{}
	_ rhi.TextureBuffer         = &buffer{}
	_ rhi.Texture2DArray        = &texture{}
	_ rhi.Texture3D             = &texture{}
	_ rhi.SamplerState          = &samplerState{}
	_ rhi.Framebuffer           = &framebuffer{}
	_ rhi.SwapChain             = &swapChain{}
	_ rhi.QueryPool             = &queryPool{}
	_ rhi.ComputePipelineState  = &computePipelineState{}
	_ rhi.GraphicsPipelineState = &graphicsPipelineState{}
)

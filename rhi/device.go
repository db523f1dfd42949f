// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

import (
	"log/slog"
	"unsafe"
)

// Context is the information that a backend needs to create
// a device.
type Context struct {
	// Logger overrides the package logger for the device.
	Logger *slog.Logger

	// Window is the window of the main swap chain.
	Window WindowHandle

	// UseExternalContext indicates that the caller manages
	// the native context (e.g., a GL context made current
	// by a window toolkit).
	UseExternalContext bool

	// Debug enables native debug output where available.
	Debug bool

	// ProcAddress resolves native entry points. Backends
	// that load their API at run time (OpenGL) require it.
	ProcAddress func(name string) unsafe.Pointer
}

// Log returns the logger to use for ctx.
// It is safe to call on a nil Context.
func (ctx *Context) Log() *slog.Logger {
	if ctx == nil || ctx.Logger == nil {
		return Logger()
	}
	return ctx.Logger
}

// Capabilities is the immutable set of device limits and
// features, populated once when the device is created.
type Capabilities struct {
	DeviceName                               string
	PreferredSwapChainColorTextureFormat     TextureFormat
	PreferredSwapChainDepthStencilFormat     TextureFormat
	MaximumNumberOfViewports                 int
	MaximumNumberOfSimultaneousRenderTargets int
	MaximumTextureDimension                  int
	MaximumNumberOf2DTextureArraySlices      int
	MaximumUniformBufferSize                 int
	MaximumTextureBufferSize                 int
	MaximumIndirectBufferSize                int
	MaximumNumberOfMultisamples              int
	MaximumAnisotropy                        int
	UpperLeftOrigin                          bool
	ZeroToOneClipZ                           bool
	IndividualUniforms                       bool
	InstancedArrays                          bool
	DrawInstanced                            bool
	BaseVertex                               bool
	NativeMultithreading                     bool
	ShaderBytecode                           bool
	VertexShader                             bool
	// Zero means no tessellation support.
	MaximumNumberOfPatchVertices int
	// Zero means no geometry shader support.
	MaximumNumberOfGsOutputVertices int
	FragmentShader                  bool
	ComputeShader                   bool
}

// Dispatcher is the interface implemented by devices that
// execute command buffers.
type Dispatcher interface {
	// DispatchTable returns the functions that execute
	// each type of command. Every entry other than
	// CmdDispatchCommandBuffer, which CommandBuffer.Submit
	// handles itself, must be set.
	DispatchTable() *DispatchTable
}

// Device is the interface that a backend implements to
// create resources and execute commands.
//
// A device and everything it creates must be used from a
// single thread at a time. The bound state set by commands
// (root signature, pipeline state, resource groups, vertex
// array, render target) persists across command buffers
// until overwritten.
type Device interface {
	Dispatcher

	// Name returns the name of the backend.
	Name() string

	// Context returns the context the device was created
	// with.
	Context() *Context

	// Capabilities returns the device's capabilities.
	Capabilities() Capabilities

	// Statistics returns the live resource counters.
	Statistics() *Statistics

	// ShaderLanguage returns the shader language with the
	// given name, or the default language if name is empty.
	// It returns nil if the language is not supported.
	ShaderLanguage(name string) ShaderLanguage

	BufferManager() BufferManager
	TextureManager() TextureManager

	CreateRootSignature(desc *RootSignatureDescriptor) (RootSignature, error)
	CreateGraphicsPipelineState(desc *GraphicsPipelineStateDescriptor) (GraphicsPipelineState, error)
	CreateComputePipelineState(desc *ComputePipelineStateDescriptor) (ComputePipelineState, error)
	CreateSamplerState(desc *SamplerStateDescriptor) (SamplerState, error)
	CreateRenderPass(colorFormats []TextureFormat, depthStencilFormat TextureFormat, samples int) (RenderPass, error)
	CreateFramebuffer(pass RenderPass, color []FramebufferAttachment, depthStencil *FramebufferAttachment) (Framebuffer, error)
	CreateSwapChain(pass RenderPass, win WindowHandle) (SwapChain, error)
	CreateQueryPool(typ QueryType, count int) (QueryPool, error)

	// Map maps a buffer into host memory.
	Map(res Resource, subresource int, typ MapType) (MappedSubresource, error)

	// Unmap unmaps a resource mapped by Map.
	Unmap(res Resource, subresource int)

	// QueryPoolResults reads count results starting at
	// firstQuery.
	QueryPoolResults(pool QueryPool, firstQuery, count int, flags QueryResultFlags) ([]uint64, error)

	// BeginScene must be called before submitting the
	// command buffers of a frame. It returns false if the
	// device cannot render (e.g., its context is lost).
	BeginScene() bool

	// EndScene ends the frame started by BeginScene.
	EndScene()

	// Submit executes the commands of cb in order.
	Submit(cb *CommandBuffer)

	// Flush issues pending native commands.
	Flush()

	// Finish blocks until every issued command completes.
	Finish()

	// Close releases the device's bound state and native
	// resources. Resources created by the device should
	// have been released before.
	Close()
}

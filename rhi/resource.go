// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

import (
	"strconv"
	"sync/atomic"
)

// ResourceType identifies the concrete kind of a Resource.
type ResourceType int

// Resource types.
const (
	RRootSignature ResourceType = iota
	RResourceGroup
	RGraphicsProgram
	RVertexArray
	RRenderPass
	RQueryPool
	RSwapChain
	RFramebuffer
	RIndexBuffer
	RVertexBuffer
	RTextureBuffer
	RIndirectBuffer
	RUniformBuffer
	RTexture1D
	RTexture2D
	RTexture2DArray
	RTexture3D
	RTextureCube
	RGraphicsPipelineState
	RComputePipelineState
	RSamplerState
	RVertexShader
	RTessellationControlShader
	RTessellationEvaluationShader
	RGeometryShader
	RFragmentShader
	RComputeShader

	ResourceTypeCount int = iota
)

var resourceTypeNames = [ResourceTypeCount]string{
	"RootSignature",
	"ResourceGroup",
	"GraphicsProgram",
	"VertexArray",
	"RenderPass",
	"QueryPool",
	"SwapChain",
	"Framebuffer",
	"IndexBuffer",
	"VertexBuffer",
	"TextureBuffer",
	"IndirectBuffer",
	"UniformBuffer",
	"Texture1D",
	"Texture2D",
	"Texture2DArray",
	"Texture3D",
	"TextureCube",
	"GraphicsPipelineState",
	"ComputePipelineState",
	"SamplerState",
	"VertexShader",
	"TessellationControlShader",
	"TessellationEvaluationShader",
	"GeometryShader",
	"FragmentShader",
	"ComputeShader",
}

func (t ResourceType) String() string {
	if t < 0 || int(t) >= ResourceTypeCount {
		return "ResourceType(" + strconv.Itoa(int(t)) + ")"
	}
	return resourceTypeNames[t]
}

// IsTexture returns whether t is one of the texture types.
func (t ResourceType) IsTexture() bool { return t >= RTexture1D && t <= RTextureCube }

// IsBuffer returns whether t is one of the buffer types.
func (t ResourceType) IsBuffer() bool { return t >= RIndexBuffer && t <= RUniformBuffer }

// IsShader returns whether t is one of the shader types.
func (t ResourceType) IsShader() bool { return t >= RVertexShader && t <= RComputeShader }

// Resource is the interface implemented by every object
// created through a Device.
//
// Resources are shared by reference counting. A resource
// is created with a count of one, owned by the caller of
// the create method. Every holder calls AddRef to take
// a reference and Release to drop it; the resource is
// destroyed when the count reaches zero. Objects that
// wrap other resources (resource groups, pipeline states,
// vertex arrays, framebuffers) hold a reference to each
// of them, so a resource is never destroyed while one of
// its holders is alive.
type Resource interface {
	// Device returns the Device that created the resource.
	Device() Device

	// ResourceType returns the resource's type.
	ResourceType() ResourceType

	// DebugName returns the name set by SetDebugName.
	DebugName() string

	// SetDebugName sets a name used in diagnostics only.
	SetDebugName(name string)

	// AddRef increments the reference count and returns
	// the new count.
	AddRef() int32

	// Release decrements the reference count and returns
	// the new count. The resource is destroyed when the
	// count reaches zero and must not be used afterwards.
	Release() int32

	// RefCount returns the current reference count.
	RefCount() int32
}

// RefCounter implements the reference counting methods
// of Resource.
// The zero value is not usable; call Init first.
type RefCounter struct {
	n       atomic.Int32
	destroy func()
}

// Init sets the count to one and the function to call when
// the count drops to zero.
func (r *RefCounter) Init(destroy func()) {
	r.n.Store(1)
	r.destroy = destroy
}

// AddRef increments the count.
// It panics if the resource was already destroyed.
func (r *RefCounter) AddRef() int32 {
	n := r.n.Add(1)
	if n <= 1 {
		panic("rhi: AddRef of destroyed resource")
	}
	return n
}

// Release decrements the count, calling the destroy function
// when it reaches zero.
// Releasing more times than referenced panics.
func (r *RefCounter) Release() int32 {
	n := r.n.Add(-1)
	switch {
	case n == 0:
		if r.destroy != nil {
			r.destroy()
		}
	case n < 0:
		panic("rhi: release of destroyed resource")
	}
	return n
}

// RefCount returns the current count.
func (r *RefCounter) RefCount() int32 { return r.n.Load() }

// ResourceBase is meant to be embedded by backend resource
// types. It implements every Resource method.
type ResourceBase struct {
	RefCounter
	dev   Device
	typ   ResourceType
	name  string
	stats *Statistics
}

// InitResource initializes the embedded base.
// If stats is not nil, the resource is counted as live until
// destroyed. destroy is the backend's self-destruct path; it
// runs once, when the last reference is released.
func (b *ResourceBase) InitResource(dev Device, typ ResourceType, stats *Statistics, destroy func()) {
	b.dev = dev
	b.typ = typ
	b.stats = stats
	if stats != nil {
		stats.add(typ)
	}
	b.Init(func() {
		if destroy != nil {
			destroy()
		}
		if b.stats != nil {
			b.stats.remove(b.typ)
		}
	})
}

// Device returns the owning device.
func (b *ResourceBase) Device() Device { return b.dev }

// ResourceType returns the resource's type.
func (b *ResourceBase) ResourceType() ResourceType { return b.typ }

// DebugName returns the debug name.
func (b *ResourceBase) DebugName() string { return b.name }

// SetDebugName sets the debug name.
func (b *ResourceBase) SetDebugName(name string) { b.name = name }

// Statistics counts live resources per type.
// It is safe for concurrent use.
type Statistics struct {
	n [ResourceTypeCount]atomic.Int32
}

func (s *Statistics) add(t ResourceType) { s.n[t].Add(1) }
func (s *Statistics) remove(t ResourceType) { s.n[t].Add(-1) }

// Count returns the number of live resources of type t.
func (s *Statistics) Count(t ResourceType) int { return int(s.n[t].Load()) }

// Total returns the number of live resources.
func (s *Statistics) Total() (n int) {
	for i := range s.n {
		n += int(s.n[i].Load())
	}
	return
}

// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

// PrimitiveTopology is the type of primitive topologies.
type PrimitiveTopology int

// Primitive topologies.
// Patch lists start at PatchList1 and are contiguous, so the
// number of control points of a patch list topology t is
// t - PatchList1 + 1.
const (
	PointList        PrimitiveTopology = 1
	LineList         PrimitiveTopology = 2
	LineStrip        PrimitiveTopology = 3
	TriangleList     PrimitiveTopology = 4
	TriangleStrip    PrimitiveTopology = 5
	LineListAdj      PrimitiveTopology = 10
	LineStripAdj     PrimitiveTopology = 11
	TriangleListAdj  PrimitiveTopology = 12
	TriangleStripAdj PrimitiveTopology = 13
	PatchList1       PrimitiveTopology = 33
	PatchList32      PrimitiveTopology = 64
)

// PatchList returns the patch list topology with n control
// points. It panics if n is not in the range [1, 32].
func PatchList(n int) PrimitiveTopology {
	if n < 1 || n > 32 {
		panic("rhi: invalid number of patch control points")
	}
	return PatchList1 + PrimitiveTopology(n-1)
}

// IsPatchList returns whether t is a patch list topology.
func (t PrimitiveTopology) IsPatchList() bool { return t >= PatchList1 && t <= PatchList32 }

// VerticesPerPatch returns the number of control points of
// a patch list topology, or zero if t is not a patch list.
func (t PrimitiveTopology) VerticesPerPatch() int {
	if !t.IsPatchList() {
		return 0
	}
	return int(t - PatchList1 + 1)
}

// PrimitiveTopologyType is the broad class of primitives
// that a graphics pipeline assembles.
type PrimitiveTopologyType int

// Primitive topology types.
const (
	TopologyTypeUndefined PrimitiveTopologyType = iota
	TopologyTypePoint
	TopologyTypeLine
	TopologyTypeTriangle
	TopologyTypePatch
)

// GraphicsPipelineStateDescriptor describes a graphics
// pipeline state.
type GraphicsPipelineStateDescriptor struct {
	RootSignature         RootSignature
	GraphicsProgram       GraphicsProgram
	VertexAttributes      VertexAttributes
	RasterizerState       RasterizerState
	DepthStencilState     DepthStencilState
	BlendState            BlendState
	PrimitiveTopology     PrimitiveTopology
	PrimitiveTopologyType PrimitiveTopologyType
	RenderPass            RenderPass
	NumberOfRenderTargets int
	RenderTargetFormats   [MaxRenderTargets]TextureFormat
	DepthStencilFormat    TextureFormat
}

// NewGraphicsPipelineStateDescriptor returns a descriptor
// with default fixed-function state, a triangle list topology
// and a single R8G8B8A8 render target with a D32Float depth
// buffer.
func NewGraphicsPipelineStateDescriptor(rootSig RootSignature, prog GraphicsProgram, attrs VertexAttributes, pass RenderPass) GraphicsPipelineStateDescriptor {
	d := GraphicsPipelineStateDescriptor{
		RootSignature:         rootSig,
		GraphicsProgram:       prog,
		VertexAttributes:      attrs,
		RasterizerState:       DefaultRasterizerState(),
		DepthStencilState:     DefaultDepthStencilState(),
		BlendState:            DefaultBlendState(),
		PrimitiveTopology:     TriangleList,
		PrimitiveTopologyType: TopologyTypeTriangle,
		RenderPass:            pass,
		NumberOfRenderTargets: 1,
		DepthStencilFormat:    D32Float,
	}
	d.RenderTargetFormats[0] = R8G8B8A8
	return d
}

// GraphicsPipelineState is the interface that defines an
// immutable combination of a graphics program and
// fixed-function state.
// It holds a reference to its root signature, graphics
// program and render pass for as long as it lives.
type GraphicsPipelineState interface {
	Resource

	// RootSignature returns the root signature that the
	// pipeline was created with.
	RootSignature() RootSignature

	// GraphicsProgram returns the pipeline's program.
	GraphicsProgram() GraphicsProgram

	// RenderPass returns the pipeline's render pass.
	RenderPass() RenderPass

	// PrimitiveTopology returns the pipeline's topology.
	PrimitiveTopology() PrimitiveTopology
}

// ComputePipelineStateDescriptor describes a compute
// pipeline state.
type ComputePipelineStateDescriptor struct {
	RootSignature RootSignature
	ComputeShader ComputeShader
}

// ComputePipelineState is the interface that defines an
// immutable compute pipeline.
type ComputePipelineState interface {
	Resource

	// RootSignature returns the pipeline's root signature.
	RootSignature() RootSignature

	// ComputeShader returns the pipeline's shader.
	ComputeShader() ComputeShader
}

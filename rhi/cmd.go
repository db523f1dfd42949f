// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

import "strconv"

// CommandType identifies the operation of a Command.
type CommandType int

// Command types.
const (
	CmdDispatchCommandBuffer CommandType = iota

	// Graphics.
	CmdSetGraphicsRootSignature
	CmdSetGraphicsPipelineState
	CmdSetGraphicsResourceGroup
	CmdSetGraphicsVertexArray
	CmdSetGraphicsViewports
	CmdSetGraphicsScissorRectangles
	CmdSetGraphicsRenderTarget
	CmdClearGraphics
	CmdDrawGraphics
	CmdDrawIndexedGraphics
	CmdDrawGraphicsIndirect
	CmdDrawIndexedGraphicsIndirect

	// Compute.
	CmdSetComputeRootSignature
	CmdSetComputePipelineState
	CmdSetComputeResourceGroup
	CmdDispatchCompute

	// Resources.
	CmdCopyUniformBufferData
	CmdCopyTextureBufferData
	CmdResolveMultisampleFramebuffer
	CmdCopyResource
	CmdGenerateMipmaps

	// Queries.
	CmdResetQueryPool
	CmdBeginQuery
	CmdEndQuery
	CmdWriteTimestampQuery

	// Debug.
	CmdSetDebugMarker
	CmdBeginDebugEvent
	CmdEndDebugEvent

	CommandTypeCount int = iota
)

var commandTypeNames = [CommandTypeCount]string{
	"DispatchCommandBuffer",
	"SetGraphicsRootSignature",
	"SetGraphicsPipelineState",
	"SetGraphicsResourceGroup",
	"SetGraphicsVertexArray",
	"SetGraphicsViewports",
	"SetGraphicsScissorRectangles",
	"SetGraphicsRenderTarget",
	"ClearGraphics",
	"DrawGraphics",
	"DrawIndexedGraphics",
	"DrawGraphicsIndirect",
	"DrawIndexedGraphicsIndirect",
	"SetComputeRootSignature",
	"SetComputePipelineState",
	"SetComputeResourceGroup",
	"DispatchCompute",
	"CopyUniformBufferData",
	"CopyTextureBufferData",
	"ResolveMultisampleFramebuffer",
	"CopyResource",
	"GenerateMipmaps",
	"ResetQueryPool",
	"BeginQuery",
	"EndQuery",
	"WriteTimestampQuery",
	"SetDebugMarker",
	"BeginDebugEvent",
	"EndDebugEvent",
}

func (t CommandType) String() string {
	if t < 0 || int(t) >= CommandTypeCount {
		return "CommandType(" + strconv.Itoa(int(t)) + ")"
	}
	return commandTypeNames[t]
}

// Command is a recorded operation.
// Every command type has a payload struct named after it
// (e.g., *DrawGraphicsCmd for CmdDrawGraphics).
type Command interface {
	CommandType() CommandType
}

// DispatchFunc executes one command.
// It is called with the payload type matching the table
// entry it is stored at.
type DispatchFunc func(cmd Command)

// DispatchTable maps command types to their dispatch
// functions.
type DispatchTable [CommandTypeCount]DispatchFunc

// Viewport is a viewport rectangle with a depth range.
// The origin is the upper-left corner.
type Viewport struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

// ScissorRectangle is a scissor rectangle in pixels.
// The origin is the upper-left corner.
type ScissorRectangle struct {
	TopLeftX     int
	TopLeftY     int
	BottomRightX int
	BottomRightY int
}

// ClearFlags selects the buffers cleared by ClearGraphics.
type ClearFlags int

// Clear flags.
const (
	ClearColor ClearFlags = 1 << iota
	ClearDepth
	ClearStencil
	ClearColorDepth        = ClearColor | ClearDepth
	ClearColorDepthStencil = ClearColor | ClearDepth | ClearStencil
)

// DispatchCommandBufferCmd executes another command buffer.
type DispatchCommandBufferCmd struct{ CommandBuffer *CommandBuffer }

// SetGraphicsRootSignatureCmd binds a root signature.
type SetGraphicsRootSignatureCmd struct{ RootSignature RootSignature }

// SetGraphicsPipelineStateCmd binds a graphics pipeline.
type SetGraphicsPipelineStateCmd struct{ GraphicsPipelineState GraphicsPipelineState }

// SetGraphicsResourceGroupCmd binds a resource group to a
// root parameter of the bound root signature.
type SetGraphicsResourceGroupCmd struct {
	RootParameterIndex int
	ResourceGroup      ResourceGroup
}

// SetGraphicsVertexArrayCmd binds a vertex array.
// A nil VertexArray unbinds.
type SetGraphicsVertexArrayCmd struct{ VertexArray VertexArray }

// SetGraphicsViewportsCmd sets viewports.
type SetGraphicsViewportsCmd struct{ Viewports []Viewport }

// SetGraphicsScissorRectanglesCmd sets scissor rectangles.
type SetGraphicsScissorRectanglesCmd struct{ ScissorRectangles []ScissorRectangle }

// SetGraphicsRenderTargetCmd binds a render target.
// A nil RenderTarget unbinds.
type SetGraphicsRenderTargetCmd struct{ RenderTarget RenderTarget }

// ClearGraphicsCmd clears the bound render target.
type ClearGraphicsCmd struct {
	Flags   ClearFlags
	Color   [4]float32
	Z       float32
	Stencil uint32
}

// DrawGraphicsCmd draws non-indexed primitives.
type DrawGraphicsCmd struct {
	VertexCountPerInstance int
	InstanceCount          int
	StartVertexLocation    int
	StartInstanceLocation  int
}

// DrawIndexedGraphicsCmd draws indexed primitives.
type DrawIndexedGraphicsCmd struct {
	IndexCountPerInstance int
	InstanceCount         int
	StartIndexLocation    int
	BaseVertexLocation    int
	StartInstanceLocation int
}

// DrawGraphicsIndirectCmd draws non-indexed primitives with
// arguments read from an indirect buffer.
type DrawGraphicsIndirectCmd struct {
	IndirectBuffer IndirectBuffer
	Offset         int
	NumberOfDraws  int
}

// DrawIndexedGraphicsIndirectCmd draws indexed primitives
// with arguments read from an indirect buffer.
type DrawIndexedGraphicsIndirectCmd struct {
	IndirectBuffer IndirectBuffer
	Offset         int
	NumberOfDraws  int
}

// SetComputeRootSignatureCmd binds a compute root signature.
type SetComputeRootSignatureCmd struct{ RootSignature RootSignature }

// SetComputePipelineStateCmd binds a compute pipeline.
type SetComputePipelineStateCmd struct{ ComputePipelineState ComputePipelineState }

// SetComputeResourceGroupCmd binds a resource group to a
// root parameter of the bound compute root signature.
type SetComputeResourceGroupCmd struct {
	RootParameterIndex int
	ResourceGroup      ResourceGroup
}

// DispatchComputeCmd dispatches compute work groups.
type DispatchComputeCmd struct{ GroupCountX, GroupCountY, GroupCountZ int }

// CopyUniformBufferDataCmd replaces the contents of a
// uniform buffer. Data is owned by the command.
type CopyUniformBufferDataCmd struct {
	UniformBuffer UniformBuffer
	Data          []byte
}

// CopyTextureBufferDataCmd replaces the contents of a
// texture buffer. Data is owned by the command.
type CopyTextureBufferDataCmd struct {
	TextureBuffer TextureBuffer
	Data          []byte
}

// ResolveMultisampleFramebufferCmd resolves a multisample
// framebuffer into a single-sample render target.
type ResolveMultisampleFramebufferCmd struct {
	Destination RenderTarget
	Source      Framebuffer
}

// CopyResourceCmd copies the whole contents of a resource
// into another of the same type and size.
type CopyResourceCmd struct {
	Destination Resource
	Source      Resource
}

// GenerateMipmapsCmd regenerates a texture's mipmap chain.
type GenerateMipmapsCmd struct{ Texture Texture }

// ResetQueryPoolCmd resets a range of queries.
type ResetQueryPoolCmd struct {
	QueryPool       QueryPool
	FirstQuery      int
	NumberOfQueries int
}

// BeginQueryCmd begins a query.
type BeginQueryCmd struct {
	QueryPool QueryPool
	Query     int
}

// EndQueryCmd ends a query.
type EndQueryCmd struct {
	QueryPool QueryPool
	Query     int
}

// WriteTimestampQueryCmd records the GPU time in a query.
type WriteTimestampQueryCmd struct {
	QueryPool QueryPool
	Query     int
}

// SetDebugMarkerCmd inserts a debug marker.
type SetDebugMarkerCmd struct{ Name string }

// BeginDebugEventCmd opens a debug event scope.
type BeginDebugEventCmd struct{ Name string }

// EndDebugEventCmd closes the innermost debug event scope.
type EndDebugEventCmd struct{}

func (*DispatchCommandBufferCmd) CommandType() CommandType { return CmdDispatchCommandBuffer }
func (*SetGraphicsRootSignatureCmd) CommandType() CommandType { return CmdSetGraphicsRootSignature }
func (*SetGraphicsPipelineStateCmd) CommandType() CommandType { return CmdSetGraphicsPipelineState }
func (*SetGraphicsResourceGroupCmd) CommandType() CommandType { return CmdSetGraphicsResourceGroup }
func (*SetGraphicsVertexArrayCmd) CommandType() CommandType { return CmdSetGraphicsVertexArray }
func (*SetGraphicsViewportsCmd) CommandType() CommandType { return CmdSetGraphicsViewports }
func (*SetGraphicsScissorRectanglesCmd) CommandType() CommandType { return CmdSetGraphicsScissorRectangles }
func (*SetGraphicsRenderTargetCmd) CommandType() CommandType { return CmdSetGraphicsRenderTarget }
func (*ClearGraphicsCmd) CommandType() CommandType { return CmdClearGraphics }
func (*DrawGraphicsCmd) CommandType() CommandType { return CmdDrawGraphics }
func (*DrawIndexedGraphicsCmd) CommandType() CommandType { return CmdDrawIndexedGraphics }
func (*DrawGraphicsIndirectCmd) CommandType() CommandType { return CmdDrawGraphicsIndirect }
func (*DrawIndexedGraphicsIndirectCmd) CommandType() CommandType { return CmdDrawIndexedGraphicsIndirect }
func (*SetComputeRootSignatureCmd) CommandType() CommandType { return CmdSetComputeRootSignature }
func (*SetComputePipelineStateCmd) CommandType() CommandType { return CmdSetComputePipelineState }
func (*SetComputeResourceGroupCmd) CommandType() CommandType { return CmdSetComputeResourceGroup }
func (*DispatchComputeCmd) CommandType() CommandType { return CmdDispatchCompute }
func (*CopyUniformBufferDataCmd) CommandType() CommandType { return CmdCopyUniformBufferData }
func (*CopyTextureBufferDataCmd) CommandType() CommandType { return CmdCopyTextureBufferData }
func (*ResolveMultisampleFramebufferCmd) CommandType() CommandType { return CmdResolveMultisampleFramebuffer }
func (*CopyResourceCmd) CommandType() CommandType { return CmdCopyResource }
func (*GenerateMipmapsCmd) CommandType() CommandType { return CmdGenerateMipmaps }
func (*ResetQueryPoolCmd) CommandType() CommandType { return CmdResetQueryPool }
func (*BeginQueryCmd) CommandType() CommandType { return CmdBeginQuery }
func (*EndQueryCmd) CommandType() CommandType { return CmdEndQuery }
func (*WriteTimestampQueryCmd) CommandType() CommandType { return CmdWriteTimestampQuery }
func (*SetDebugMarkerCmd) CommandType() CommandType { return CmdSetDebugMarker }
func (*BeginDebugEventCmd) CommandType() CommandType { return CmdBeginDebugEvent }
func (*EndDebugEventCmd) CommandType() CommandType { return CmdEndDebugEvent }

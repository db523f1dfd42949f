// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

import (
	"fmt"
	"slices"
)

// CommandBuffer is an ordered list of recorded commands.
//
// Commands execute in the order they were recorded. A
// command buffer can be submitted any number of times and
// keeps its commands until Clear is called. It holds no
// references to the resources its commands use; the caller
// must keep them alive for as long as the commands may be
// submitted.
//
// The zero value is an empty command buffer ready to use.
type CommandBuffer struct {
	cmds       []Command
	submitting bool
}

func (cb *CommandBuffer) record(c Command) { cb.cmds = append(cb.cmds, c) }

// IsEmpty returns whether cb has no commands.
func (cb *CommandBuffer) IsEmpty() bool { return len(cb.cmds) == 0 }

// Len returns the number of commands in cb.
// A nested command buffer counts as one command.
func (cb *CommandBuffer) Len() int { return len(cb.cmds) }

// Commands returns the recorded commands.
// The returned slice must not be modified.
func (cb *CommandBuffer) Commands() []Command { return cb.cmds }

// Clear removes every command from cb.
// It retains the allocated storage.
func (cb *CommandBuffer) Clear() {
	clear(cb.cmds)
	cb.cmds = cb.cmds[:0]
}

// Submit executes the commands of cb through d's dispatch
// table.
// Nested command buffers are executed in place, in order.
// A command buffer that (directly or transitively) nests
// itself causes a panic.
func (cb *CommandBuffer) Submit(d Dispatcher) {
	if cb.submitting {
		panic("rhi: command buffer dispatches itself")
	}
	if len(cb.cmds) == 0 {
		return
	}
	cb.submitting = true
	defer func() { cb.submitting = false }()
	tab := d.DispatchTable()
	for _, c := range cb.cmds {
		if n, ok := c.(*DispatchCommandBufferCmd); ok {
			n.CommandBuffer.Submit(d)
			continue
		}
		t := c.CommandType()
		f := tab[t]
		if f == nil {
			panic(fmt.Sprintf("rhi: no dispatch function for %v", t))
		}
		f(c)
	}
}

// SubmitAndClear calls Submit and then Clear.
func (cb *CommandBuffer) SubmitAndClear(d Dispatcher) {
	cb.Submit(d)
	cb.Clear()
}

// DispatchCommandBuffer records the execution of other.
// other is referenced, not copied; commands recorded into
// it later are executed too.
func (cb *CommandBuffer) DispatchCommandBuffer(other *CommandBuffer) {
	if other == nil {
		panic("rhi: nil command buffer")
	}
	if other == cb {
		panic("rhi: command buffer dispatches itself")
	}
	cb.record(&DispatchCommandBufferCmd{other})
}

// SetGraphicsRootSignature records the binding of a graphics
// root signature.
func (cb *CommandBuffer) SetGraphicsRootSignature(rs RootSignature) {
	cb.record(&SetGraphicsRootSignatureCmd{rs})
}

// SetGraphicsPipelineState records the binding of a graphics
// pipeline state.
func (cb *CommandBuffer) SetGraphicsPipelineState(ps GraphicsPipelineState) {
	cb.record(&SetGraphicsPipelineStateCmd{ps})
}

// SetGraphicsResourceGroup records the binding of a resource
// group to the root parameter at index.
func (cb *CommandBuffer) SetGraphicsResourceGroup(index int, rg ResourceGroup) {
	cb.record(&SetGraphicsResourceGroupCmd{index, rg})
}

// SetGraphicsVertexArray records the binding of a vertex
// array.
func (cb *CommandBuffer) SetGraphicsVertexArray(va VertexArray) {
	cb.record(&SetGraphicsVertexArrayCmd{va})
}

// SetGraphicsViewports records the setting of viewports.
// Coordinates are relative to the top-left corner of the
// render target, including one bound by a later command.
func (cb *CommandBuffer) SetGraphicsViewports(vps ...Viewport) {
	cb.record(&SetGraphicsViewportsCmd{slices.Clone(vps)})
}

// SetGraphicsScissorRectangles records the setting of
// scissor rectangles.
func (cb *CommandBuffer) SetGraphicsScissorRectangles(rects ...ScissorRectangle) {
	cb.record(&SetGraphicsScissorRectanglesCmd{slices.Clone(rects)})
}

// SetGraphicsViewportAndScissorRectangle records a single
// viewport and a matching scissor rectangle.
func (cb *CommandBuffer) SetGraphicsViewportAndScissorRectangle(x, y, width, height int) {
	cb.SetGraphicsViewports(Viewport{
		TopLeftX: float32(x),
		TopLeftY: float32(y),
		Width:    float32(width),
		Height:   float32(height),
		MaxDepth: 1,
	})
	cb.SetGraphicsScissorRectangles(ScissorRectangle{
		TopLeftX:     x,
		TopLeftY:     y,
		BottomRightX: x + width,
		BottomRightY: y + height,
	})
}

// SetGraphicsRenderTarget records the binding of a render
// target.
func (cb *CommandBuffer) SetGraphicsRenderTarget(rt RenderTarget) {
	cb.record(&SetGraphicsRenderTargetCmd{rt})
}

// ClearGraphics records a clear of the bound render target.
func (cb *CommandBuffer) ClearGraphics(flags ClearFlags, color [4]float32, z float32, stencil uint32) {
	cb.record(&ClearGraphicsCmd{flags, color, z, stencil})
}

// DrawGraphics records a non-indexed draw.
// instanceCount must be at least one.
func (cb *CommandBuffer) DrawGraphics(vertexCount, instanceCount, startVertex, startInstance int) {
	cb.record(&DrawGraphicsCmd{vertexCount, instanceCount, startVertex, startInstance})
}

// DrawIndexedGraphics records an indexed draw.
func (cb *CommandBuffer) DrawIndexedGraphics(indexCount, instanceCount, startIndex, baseVertex, startInstance int) {
	cb.record(&DrawIndexedGraphicsCmd{indexCount, instanceCount, startIndex, baseVertex, startInstance})
}

// DrawGraphicsIndirect records count non-indexed draws whose
// DrawArguments are read from buf at offset.
func (cb *CommandBuffer) DrawGraphicsIndirect(buf IndirectBuffer, offset, count int) {
	cb.record(&DrawGraphicsIndirectCmd{buf, offset, count})
}

// DrawIndexedGraphicsIndirect records count indexed draws
// whose DrawIndexedArguments are read from buf at offset.
func (cb *CommandBuffer) DrawIndexedGraphicsIndirect(buf IndirectBuffer, offset, count int) {
	cb.record(&DrawIndexedGraphicsIndirectCmd{buf, offset, count})
}

// SetComputeRootSignature records the binding of a compute
// root signature.
func (cb *CommandBuffer) SetComputeRootSignature(rs RootSignature) {
	cb.record(&SetComputeRootSignatureCmd{rs})
}

// SetComputePipelineState records the binding of a compute
// pipeline state.
func (cb *CommandBuffer) SetComputePipelineState(ps ComputePipelineState) {
	cb.record(&SetComputePipelineStateCmd{ps})
}

// SetComputeResourceGroup records the binding of a resource
// group to the compute root parameter at index.
func (cb *CommandBuffer) SetComputeResourceGroup(index int, rg ResourceGroup) {
	cb.record(&SetComputeResourceGroupCmd{index, rg})
}

// DispatchCompute records a compute dispatch.
func (cb *CommandBuffer) DispatchCompute(x, y, z int) {
	cb.record(&DispatchComputeCmd{x, y, z})
}

// CopyUniformBufferData records an update of ub.
// data is copied.
func (cb *CommandBuffer) CopyUniformBufferData(ub UniformBuffer, data []byte) {
	cb.record(&CopyUniformBufferDataCmd{ub, slices.Clone(data)})
}

// CopyTextureBufferData records an update of tb.
// data is copied.
func (cb *CommandBuffer) CopyTextureBufferData(tb TextureBuffer, data []byte) {
	cb.record(&CopyTextureBufferDataCmd{tb, slices.Clone(data)})
}

// ResolveMultisampleFramebuffer records a multisample
// resolve from src into dst.
func (cb *CommandBuffer) ResolveMultisampleFramebuffer(dst RenderTarget, src Framebuffer) {
	cb.record(&ResolveMultisampleFramebufferCmd{dst, src})
}

// CopyResource records a copy from src into dst.
func (cb *CommandBuffer) CopyResource(dst, src Resource) {
	cb.record(&CopyResourceCmd{dst, src})
}

// GenerateMipmaps records the regeneration of a texture's
// mipmap chain.
func (cb *CommandBuffer) GenerateMipmaps(t Texture) {
	cb.record(&GenerateMipmapsCmd{t})
}

// ResetQueryPool records a reset of count queries.
func (cb *CommandBuffer) ResetQueryPool(pool QueryPool, first, count int) {
	cb.record(&ResetQueryPoolCmd{pool, first, count})
}

// BeginQuery records the start of a query.
func (cb *CommandBuffer) BeginQuery(pool QueryPool, query int) {
	cb.record(&BeginQueryCmd{pool, query})
}

// ResetAndBeginQuery records a reset of the query followed
// by its start.
func (cb *CommandBuffer) ResetAndBeginQuery(pool QueryPool, query int) {
	cb.ResetQueryPool(pool, query, 1)
	cb.BeginQuery(pool, query)
}

// EndQuery records the end of a query.
func (cb *CommandBuffer) EndQuery(pool QueryPool, query int) {
	cb.record(&EndQueryCmd{pool, query})
}

// WriteTimestampQuery records a timestamp write.
func (cb *CommandBuffer) WriteTimestampQuery(pool QueryPool, query int) {
	cb.record(&WriteTimestampQueryCmd{pool, query})
}

// SetDebugMarker records a debug marker.
func (cb *CommandBuffer) SetDebugMarker(name string) {
	cb.record(&SetDebugMarkerCmd{name})
}

// BeginDebugEvent records the start of a debug event.
func (cb *CommandBuffer) BeginDebugEvent(name string) {
	cb.record(&BeginDebugEventCmd{name})
}

// EndDebugEvent records the end of a debug event.
func (cb *CommandBuffer) EndDebugEvent() {
	cb.record(&EndDebugEventCmd{})
}

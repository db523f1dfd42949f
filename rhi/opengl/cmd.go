// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gviegas/rhi/rhi"
)

// initDispatchTable sets the functions that execute each
// type of command.
// rhi.CommandBuffer.Submit runs nested command buffers
// itself, so rhi.CmdDispatchCommandBuffer has no entry.
func (d *Device) initDispatchTable() {
	d.tab = rhi.DispatchTable{
		rhi.CmdSetGraphicsRootSignature:      d.cmdSetGraphicsRootSignature,
		rhi.CmdSetGraphicsPipelineState:      d.cmdSetGraphicsPipelineState,
		rhi.CmdSetGraphicsResourceGroup:      d.cmdSetGraphicsResourceGroup,
		rhi.CmdSetGraphicsVertexArray:        d.cmdSetGraphicsVertexArray,
		rhi.CmdSetGraphicsViewports:          d.cmdSetGraphicsViewports,
		rhi.CmdSetGraphicsScissorRectangles:  d.cmdSetGraphicsScissorRectangles,
		rhi.CmdSetGraphicsRenderTarget:       d.cmdSetGraphicsRenderTarget,
		rhi.CmdClearGraphics:                 d.cmdClearGraphics,
		rhi.CmdDrawGraphics:                  d.cmdDrawGraphics,
		rhi.CmdDrawIndexedGraphics:           d.cmdDrawIndexedGraphics,
		rhi.CmdDrawGraphicsIndirect:          d.cmdDrawGraphicsIndirect,
		rhi.CmdDrawIndexedGraphicsIndirect:   d.cmdDrawIndexedGraphicsIndirect,
		rhi.CmdSetComputeRootSignature:       d.cmdSetComputeRootSignature,
		rhi.CmdSetComputePipelineState:       d.cmdSetComputePipelineState,
		rhi.CmdSetComputeResourceGroup:       d.cmdSetComputeResourceGroup,
		rhi.CmdDispatchCompute:               d.cmdDispatchCompute,
		rhi.CmdCopyUniformBufferData:         d.cmdCopyUniformBufferData,
		rhi.CmdCopyTextureBufferData:         d.cmdCopyTextureBufferData,
		rhi.CmdResolveMultisampleFramebuffer: d.cmdResolveMultisampleFramebuffer,
		rhi.CmdCopyResource:                  d.cmdCopyResource,
		rhi.CmdGenerateMipmaps:               d.cmdGenerateMipmaps,
		rhi.CmdResetQueryPool:                d.cmdResetQueryPool,
		rhi.CmdBeginQuery:                    d.cmdBeginQuery,
		rhi.CmdEndQuery:                      d.cmdEndQuery,
		rhi.CmdWriteTimestampQuery:           d.cmdWriteTimestampQuery,
		rhi.CmdSetDebugMarker:                d.cmdSetDebugMarker,
		rhi.CmdBeginDebugEvent:               d.cmdBeginDebugEvent,
		rhi.CmdEndDebugEvent:                 d.cmdEndDebugEvent,
	}
}

// rebind sets *cur to r, taking a reference to r and
// releasing the one held for the previous value.
func rebind[T interface {
	comparable
	AddRef() int32
	Release() int32
}](cur *T, r T) {
	if *cur == r {
		return
	}
	var zero T
	if r != zero {
		r.AddRef()
	}
	if *cur != zero {
		(*cur).Release()
	}
	*cur = r
}

func (d *Device) setGraphicsRootSignature(rs *rootSignature) { rebind(&d.gfxRootSig, rs) }
func (d *Device) setGraphicsPipelineState(ps *graphicsPipelineState) { rebind(&d.gfxPipeline, ps) }
func (d *Device) setComputeRootSignature(rs *rootSignature) { rebind(&d.cmpRootSig, rs) }
func (d *Device) setComputePipelineState(ps *computePipelineState) { rebind(&d.cmpPipeline, ps) }
func (d *Device) setVertexArray(va *vertexArray) { rebind(&d.vertArray, va) }
func (d *Device) setRenderTarget(rt rhi.RenderTarget) { rebind(&d.renderTgt, rt) }

func asRootSignature(r rhi.RootSignature) *rootSignature {
	if r == nil {
		return nil
	}
	rs, ok := r.(*rootSignature)
	if !ok {
		panic(fmt.Sprintf("opengl: %T is not an OpenGL root signature", r))
	}
	return rs
}

func asResourceGroup(r rhi.ResourceGroup) *resourceGroup {
	rg, ok := r.(*resourceGroup)
	if !ok {
		panic(fmt.Sprintf("opengl: %T is not an OpenGL resource group", r))
	}
	return rg
}

func (d *Device) cmdSetGraphicsRootSignature(cmd rhi.Command) {
	c := cmd.(*rhi.SetGraphicsRootSignatureCmd)
	d.setGraphicsRootSignature(asRootSignature(c.RootSignature))
}

func (d *Device) cmdSetGraphicsPipelineState(cmd rhi.Command) {
	c := cmd.(*rhi.SetGraphicsPipelineStateCmd)
	if c.GraphicsPipelineState == nil {
		d.setGraphicsPipelineState(nil)
		return
	}
	ps, ok := c.GraphicsPipelineState.(*graphicsPipelineState)
	if !ok {
		panic(fmt.Sprintf("opengl: %T is not an OpenGL graphics pipeline state", c.GraphicsPipelineState))
	}
	if d.gfxRootSig != nil && ps.rs != d.gfxRootSig {
		d.log.Warn("opengl: graphics pipeline state bound with a different root signature")
	}
	d.setGraphicsPipelineState(ps)
	ps.bind()
}

// checkResourceGroup panics if rg cannot be bound at index
// of the bound root signature rs.
func checkResourceGroup(rg *resourceGroup, index int, rs *rootSignature) {
	if rg.index != index {
		panic(fmt.Sprintf("opengl: resource group of root parameter %d bound at %d", rg.index, index))
	}
	if rs != nil && rg.rs != rs {
		panic("opengl: resource group from another root signature")
	}
}

func (d *Device) cmdSetGraphicsResourceGroup(cmd rhi.Command) {
	c := cmd.(*rhi.SetGraphicsResourceGroupCmd)
	rg := asResourceGroup(c.ResourceGroup)
	checkResourceGroup(rg, c.RootParameterIndex, d.gfxRootSig)
	d.bindResourceGroup(rg)
}

// slotRegister returns the native binding of slot i of
// parameter p.
func slotRegister(p *rhi.RootParameter, i int) (register int, rng *rhi.DescriptorRange) {
	if p.Type == rhi.ParamDescriptorTable {
		rng = &p.DescriptorRanges[i]
		return rng.BaseShaderRegister, rng
	}
	return p.Descriptor.ShaderRegister, nil
}

// bindResourceGroup binds the resources of rg to the
// context.
// Uniform buffers are bound at the indices computed by the
// group, which are consecutive.
func (d *Device) bindResourceGroup(rg *resourceGroup) {
	f := d.gl
	p := &rg.rs.desc.Parameters[rg.index]
	ubo := rg.uniformBlockBindingIndices()
	var (
		uboFirst = -1
		uboIDs   []uint32
	)
	for i, r := range rg.resources {
		reg, rng := slotRegister(p, i)
		switch t := r.ResourceType(); {
		case ubo[i] >= 0:
			b := asBuffer(r, rhi.RUniformBuffer)
			if uboFirst < 0 {
				uboFirst = ubo[i]
			}
			uboIDs = append(uboIDs, b.id)
		case t == rhi.RUniformBuffer:
			f.BindBufferBase(gl.UNIFORM_BUFFER, uint32(reg), asBuffer(r, t).id)
		case t == rhi.RTextureBuffer:
			d.bindTexture(uint32(reg), gl.TEXTURE_BUFFER, asBuffer(r, t).tex)
		case t.IsBuffer():
			f.BindBufferBase(gl.SHADER_STORAGE_BUFFER, uint32(reg), asBuffer(r, t).id)
		case t.IsTexture():
			tex := asTexture(r)
			if rng != nil && rng.Type == rhi.RangeUAV {
				tf, _ := convTextureFormat(tex.format)
				layered := tex.target != gl.TEXTURE_1D && tex.target != gl.TEXTURE_2D
				f.BindImageTexture(uint32(reg), tex.id, 0, layered, 0, gl.READ_WRITE, uint32(tf.internal))
				break
			}
			d.bindTexture(uint32(reg), tex.target, tex.id)
		case t == rhi.RSamplerState:
			f.BindSampler(uint32(reg), r.(*samplerState).id)
			continue
		default:
			panic(fmt.Sprintf("opengl: %v cannot be bound to a root parameter", t))
		}
		if s := rg.samplerAt(i); s != nil {
			f.BindSampler(uint32(reg), s.(*samplerState).id)
		}
	}
	if len(uboIDs) == 0 {
		return
	}
	if d.exts[extMultiBind] {
		f.BindBuffersBase(gl.UNIFORM_BUFFER, uint32(uboFirst), uboIDs)
	} else {
		for i, id := range uboIDs {
			f.BindBufferBase(gl.UNIFORM_BUFFER, uint32(uboFirst+i), id)
		}
	}
}

// bindScratchTexture binds tex to the scratch texture unit
// for creation and updates.
func (d *Device) bindScratchTexture(target, tex uint32) {
	d.gl.ActiveTexture(gl.TEXTURE0 + d.scratchUnit)
	d.gl.BindTexture(target, tex)
}

// bindTexture binds tex to a texture unit.
func (d *Device) bindTexture(unit, target, tex uint32) {
	f := d.gl
	if d.exts[extDirectStateAccess] {
		f.BindTextureUnit(unit, tex)
	} else {
		f.ActiveTexture(gl.TEXTURE0 + unit)
		f.BindTexture(target, tex)
	}
}

func (d *Device) cmdSetGraphicsVertexArray(cmd rhi.Command) {
	c := cmd.(*rhi.SetGraphicsVertexArrayCmd)
	var va *vertexArray
	if c.VertexArray != nil {
		var ok bool
		if va, ok = c.VertexArray.(*vertexArray); !ok {
			panic(fmt.Sprintf("opengl: %T is not an OpenGL vertex array", c.VertexArray))
		}
	}
	d.setVertexArray(va)
	d.bindVertexArray()
}

// bindVertexArray binds the current vertex array.
func (d *Device) bindVertexArray() {
	var vao uint32
	if d.vertArray != nil {
		vao = d.vertArray.id
	}
	d.st.bindVertexArray(d.gl, vao)
}

// flipY converts a top-left origin y coordinate of a
// rectangle of height h into GL's bottom-left origin.
func (d *Device) flipY(y, h float32) float32 {
	if d.renderTgt == nil {
		return y
	}
	return float32(d.renderTgt.Height()) - y - h
}

func (d *Device) cmdSetGraphicsViewports(cmd rhi.Command) {
	c := cmd.(*rhi.SetGraphicsViewportsCmd)
	if len(c.Viewports) == 0 {
		return
	}
	d.viewports = append(d.viewports[:0], c.Viewports...)
	d.applyViewports()
}

// applyViewports sets the native viewports from d.viewports,
// flipped for the current render target.
func (d *Device) applyViewports() {
	f := d.gl
	vps := d.viewports
	if len(vps) == 0 {
		return
	}
	if len(vps) == 1 || !d.exts[extViewportArray] {
		v := &vps[0]
		f.Viewport(int32(v.TopLeftX), int32(d.flipY(v.TopLeftY, v.Height)), int32(v.Width), int32(v.Height))
		f.DepthRange(float64(v.MinDepth), float64(v.MaxDepth))
		return
	}
	for i := range min(len(vps), d.caps.MaximumNumberOfViewports) {
		v := &vps[i]
		f.ViewportIndexedf(uint32(i), v.TopLeftX, d.flipY(v.TopLeftY, v.Height), v.Width, v.Height)
		f.DepthRangeIndexed(uint32(i), float64(v.MinDepth), float64(v.MaxDepth))
	}
}

func (d *Device) cmdSetGraphicsScissorRectangles(cmd rhi.Command) {
	c := cmd.(*rhi.SetGraphicsScissorRectanglesCmd)
	if len(c.ScissorRectangles) == 0 {
		return
	}
	d.scissors = append(d.scissors[:0], c.ScissorRectangles...)
	d.applyScissors()
}

// applyScissors sets the native scissor boxes from
// d.scissors, flipped for the current render target.
func (d *Device) applyScissors() {
	f := d.gl
	rects := d.scissors
	if len(rects) == 0 {
		return
	}
	conv := func(r *rhi.ScissorRectangle) (x, y, w, h int32) {
		w = int32(r.BottomRightX - r.TopLeftX)
		h = int32(r.BottomRightY - r.TopLeftY)
		return int32(r.TopLeftX), int32(d.flipY(float32(r.TopLeftY), float32(h))), w, h
	}
	if len(rects) == 1 || !d.exts[extViewportArray] {
		f.Scissor(conv(&rects[0]))
		return
	}
	for i := range min(len(rects), d.caps.MaximumNumberOfViewports) {
		x, y, w, h := conv(&rects[i])
		f.ScissorIndexed(uint32(i), x, y, w, h)
	}
}

// bindRenderTarget binds the framebuffer of the current
// render target.
func (d *Device) bindRenderTarget() {
	var fbo uint32
	switch rt := d.renderTgt.(type) {
	case nil, *swapChain:
	case *framebuffer:
		fbo = rt.id
	default:
		panic(fmt.Sprintf("opengl: %T is not an OpenGL render target", rt))
	}
	d.st.bindFramebuffer(d.gl, fbo)
}

// cmdSetGraphicsRenderTarget binds a render target.
// Viewports and scissor rectangles set before are flipped
// again for the new target's height.
func (d *Device) cmdSetGraphicsRenderTarget(cmd rhi.Command) {
	c := cmd.(*rhi.SetGraphicsRenderTargetCmd)
	prev := d.renderTgt
	d.setRenderTarget(c.RenderTarget)
	d.bindRenderTarget()
	if d.renderTgt != prev {
		d.applyViewports()
		d.applyScissors()
	}
}

// cmdClearGraphics clears the current render target.
// Color writes, depth writes and the scissor test are
// overridden for the duration of the clear.
func (d *Device) cmdClearGraphics(cmd rhi.Command) {
	c := cmd.(*rhi.ClearGraphicsCmd)
	f := d.gl
	mask := convClearFlags(c.Flags)
	if mask == 0 {
		return
	}
	colorMask := c.Flags&rhi.ClearColor != 0 && !d.st.colorWritesAll()
	if c.Flags&rhi.ClearColor != 0 {
		f.ClearColor(c.Color[0], c.Color[1], c.Color[2], c.Color[3])
		if colorMask {
			f.ColorMask(true, true, true, true)
		}
	}
	depthMask := d.st.depthMask
	if c.Flags&rhi.ClearDepth != 0 {
		f.ClearDepth(float64(c.Z))
		d.st.setDepthMask(f, true)
	}
	if c.Flags&rhi.ClearStencil != 0 {
		f.ClearStencil(int32(c.Stencil))
	}
	scissor := d.st.isCapEnabled(capScissorTest)
	if scissor {
		d.st.setCap(f, capScissorTest, false)
	}
	f.Clear(mask)
	if scissor {
		d.st.setCap(f, capScissorTest, true)
	}
	if depthMask == 0 {
		d.st.setDepthMask(f, false)
	}
	if colorMask {
		d.st.applyColorMasks(f)
	}
}

// graphicsPipeline returns the bound graphics pipeline
// state. It panics if there is none.
func (d *Device) graphicsPipeline() *graphicsPipelineState {
	if d.gfxPipeline == nil {
		panic("opengl: draw without a graphics pipeline state")
	}
	return d.gfxPipeline
}

// baseInstance panics if drawing with a non-zero start
// instance is not supported.
func (d *Device) baseInstance() {
	if !d.exts[extBaseInstance] {
		panic("opengl: start instance location requires " + extBaseInstanceS)
	}
}

func (d *Device) cmdDrawGraphics(cmd rhi.Command) {
	c := cmd.(*rhi.DrawGraphicsCmd)
	f := d.gl
	mode := d.graphicsPipeline().mode
	first, count, n := int32(c.StartVertexLocation), int32(c.VertexCountPerInstance), int32(c.InstanceCount)
	switch {
	case n <= 1 && c.StartInstanceLocation == 0:
		f.DrawArrays(mode, first, count)
	case c.StartInstanceLocation == 0:
		f.DrawArraysInstanced(mode, first, count, n)
	default:
		d.baseInstance()
		f.DrawArraysInstancedBaseInstance(mode, first, count, max(n, 1), uint32(c.StartInstanceLocation))
	}
}

// indexBuffer returns the index buffer of the bound vertex
// array. It panics if there is none.
func (d *Device) indexBuffer() *buffer {
	if d.vertArray == nil || d.vertArray.ib == nil {
		panic("opengl: indexed draw without an index buffer")
	}
	return d.vertArray.ib
}

func (d *Device) cmdDrawIndexedGraphics(cmd rhi.Command) {
	c := cmd.(*rhi.DrawIndexedGraphicsCmd)
	f := d.gl
	mode := d.graphicsPipeline().mode
	ib := d.indexBuffer()
	typ := convIndexFormat(ib.indexFmt)
	offset := c.StartIndexLocation * ib.indexFmt.Size()
	count, n, base := int32(c.IndexCountPerInstance), int32(c.InstanceCount), int32(c.BaseVertexLocation)
	switch {
	case n <= 1 && c.StartInstanceLocation == 0:
		f.DrawElementsBaseVertex(mode, count, typ, offset, base)
	case c.StartInstanceLocation == 0:
		f.DrawElementsInstancedBaseVertex(mode, count, typ, offset, n, base)
	default:
		d.baseInstance()
		f.DrawElementsInstancedBaseVertexBaseInstance(mode, count, typ, offset, max(n, 1), base, uint32(c.StartInstanceLocation))
	}
}

var (
	drawArgsSize        = int(unsafe.Sizeof(rhi.DrawArguments{}))
	drawIndexedArgsSize = int(unsafe.Sizeof(rhi.DrawIndexedArguments{}))
)

// bindIndirectBuffer binds b to the draw indirect target.
func (d *Device) bindIndirectBuffer(b rhi.IndirectBuffer) *buffer {
	if b == nil {
		panic("opengl: indirect draw without an indirect buffer")
	}
	ib := asBuffer(b, rhi.RIndirectBuffer)
	d.gl.BindBuffer(gl.DRAW_INDIRECT_BUFFER, ib.id)
	return ib
}

func (d *Device) cmdDrawGraphicsIndirect(cmd rhi.Command) {
	c := cmd.(*rhi.DrawGraphicsIndirectCmd)
	f := d.gl
	mode := d.graphicsPipeline().mode
	d.bindIndirectBuffer(c.IndirectBuffer)
	n := max(c.NumberOfDraws, 1)
	switch {
	case n == 1:
		f.DrawArraysIndirect(mode, c.Offset)
	case d.exts[extMultiDrawIndirect]:
		f.MultiDrawArraysIndirect(mode, c.Offset, int32(n), 0)
	default:
		for i := range n {
			f.DrawArraysIndirect(mode, c.Offset+i*drawArgsSize)
		}
	}
}

func (d *Device) cmdDrawIndexedGraphicsIndirect(cmd rhi.Command) {
	c := cmd.(*rhi.DrawIndexedGraphicsIndirectCmd)
	f := d.gl
	mode := d.graphicsPipeline().mode
	typ := convIndexFormat(d.indexBuffer().indexFmt)
	d.bindIndirectBuffer(c.IndirectBuffer)
	n := max(c.NumberOfDraws, 1)
	switch {
	case n == 1:
		f.DrawElementsIndirect(mode, typ, c.Offset)
	case d.exts[extMultiDrawIndirect]:
		f.MultiDrawElementsIndirect(mode, typ, c.Offset, int32(n), 0)
	default:
		for i := range n {
			f.DrawElementsIndirect(mode, typ, c.Offset+i*drawIndexedArgsSize)
		}
	}
}

func (d *Device) cmdSetComputeRootSignature(cmd rhi.Command) {
	c := cmd.(*rhi.SetComputeRootSignatureCmd)
	d.setComputeRootSignature(asRootSignature(c.RootSignature))
}

func (d *Device) cmdSetComputePipelineState(cmd rhi.Command) {
	c := cmd.(*rhi.SetComputePipelineStateCmd)
	if c.ComputePipelineState == nil {
		d.setComputePipelineState(nil)
		return
	}
	ps, ok := c.ComputePipelineState.(*computePipelineState)
	if !ok {
		panic(fmt.Sprintf("opengl: %T is not an OpenGL compute pipeline state", c.ComputePipelineState))
	}
	d.setComputePipelineState(ps)
	ps.bind()
}

func (d *Device) cmdSetComputeResourceGroup(cmd rhi.Command) {
	c := cmd.(*rhi.SetComputeResourceGroupCmd)
	rg := asResourceGroup(c.ResourceGroup)
	checkResourceGroup(rg, c.RootParameterIndex, d.cmpRootSig)
	d.bindResourceGroup(rg)
}

func (d *Device) cmdDispatchCompute(cmd rhi.Command) {
	c := cmd.(*rhi.DispatchComputeCmd)
	if d.cmpPipeline == nil {
		panic("opengl: dispatch without a compute pipeline state")
	}
	// Graphics and compute share the program binding.
	d.cmpPipeline.bind()
	d.gl.DispatchCompute(uint32(c.GroupCountX), uint32(c.GroupCountY), uint32(c.GroupCountZ))
	d.gl.MemoryBarrier(gl.ALL_BARRIER_BITS)
	d.restoreProgram()
}

// restoreProgram makes the program of the bound graphics
// pipeline state current again.
func (d *Device) restoreProgram() {
	if d.gfxPipeline != nil {
		d.st.useProgram(d.gl, d.gfxPipeline.prog.id)
	}
}

func (d *Device) cmdCopyUniformBufferData(cmd rhi.Command) {
	c := cmd.(*rhi.CopyUniformBufferDataCmd)
	asBuffer(c.UniformBuffer, rhi.RUniformBuffer).upload(0, c.Data)
}

func (d *Device) cmdCopyTextureBufferData(cmd rhi.Command) {
	c := cmd.(*rhi.CopyTextureBufferDataCmd)
	asBuffer(c.TextureBuffer, rhi.RTextureBuffer).upload(0, c.Data)
}

func (d *Device) cmdResolveMultisampleFramebuffer(cmd rhi.Command) {
	c := cmd.(*rhi.ResolveMultisampleFramebufferCmd)
	f := d.gl
	src, ok := c.Source.(*framebuffer)
	if !ok {
		panic(fmt.Sprintf("opengl: %T is not an OpenGL framebuffer", c.Source))
	}
	var dst uint32
	switch rt := c.Destination.(type) {
	case *swapChain:
	case *framebuffer:
		dst = rt.id
	default:
		panic(fmt.Sprintf("opengl: %T is not an OpenGL render target", rt))
	}
	f.BindFramebuffer(gl.READ_FRAMEBUFFER, src.id)
	f.BindFramebuffer(gl.DRAW_FRAMEBUFFER, dst)
	f.BlitFramebuffer(0, 0, int32(src.width), int32(src.height), 0, 0, int32(c.Destination.Width()), int32(c.Destination.Height()), gl.COLOR_BUFFER_BIT, gl.NEAREST)
	d.st.fbo = unknown
	d.bindRenderTarget()
}

func (d *Device) cmdCopyResource(cmd rhi.Command) {
	c := cmd.(*rhi.CopyResourceCmd)
	f := d.gl
	dt, st := c.Destination.ResourceType(), c.Source.ResourceType()
	switch {
	case dt.IsBuffer() && st.IsBuffer():
		dst, src := asBuffer(c.Destination, dt), asBuffer(c.Source, st)
		n := min(dst.size, src.size)
		if d.exts[extDirectStateAccess] {
			f.CopyNamedBufferSubData(src.id, dst.id, 0, 0, n)
		} else {
			f.BindBuffer(gl.COPY_READ_BUFFER, src.id)
			f.BindBuffer(gl.COPY_WRITE_BUFFER, dst.id)
			f.CopyBufferSubData(gl.COPY_READ_BUFFER, gl.COPY_WRITE_BUFFER, 0, 0, n)
		}
	case dt == st && dt.IsTexture():
		if !d.exts[extCopyImage] {
			panic("opengl: texture copy requires " + extCopyImageS)
		}
		dst, src := asTexture(c.Destination), asTexture(c.Source)
		layers := int32(src.depth * src.slices)
		for lvl := range min(dst.levels, src.levels) {
			w := int32(max(src.width>>lvl, 1))
			h := int32(max(src.height>>lvl, 1))
			if src.target == gl.TEXTURE_3D {
				layers = int32(max(src.depth>>lvl, 1))
			}
			f.CopyImageSubData(src.id, src.target, int32(lvl), 0, 0, 0, dst.id, dst.target, int32(lvl), 0, 0, 0, w, h, layers)
		}
	default:
		panic(fmt.Sprintf("opengl: cannot copy %v to %v", st, dt))
	}
}

func (d *Device) cmdGenerateMipmaps(cmd rhi.Command) {
	c := cmd.(*rhi.GenerateMipmapsCmd)
	asTexture(c.Texture).generateMipmaps()
}

func (d *Device) cmdResetQueryPool(cmd rhi.Command) {
	c := cmd.(*rhi.ResetQueryPoolCmd)
	asQueryPool(c.QueryPool).reset(c.FirstQuery, c.NumberOfQueries)
}

func (d *Device) cmdBeginQuery(cmd rhi.Command) {
	c := cmd.(*rhi.BeginQueryCmd)
	asQueryPool(c.QueryPool).begin(c.Query)
}

func (d *Device) cmdEndQuery(cmd rhi.Command) {
	c := cmd.(*rhi.EndQueryCmd)
	asQueryPool(c.QueryPool).end(c.Query)
}

func (d *Device) cmdWriteTimestampQuery(cmd rhi.Command) {
	c := cmd.(*rhi.WriteTimestampQueryCmd)
	asQueryPool(c.QueryPool).writeTimestamp(c.Query)
}

// Debug commands are ignored without debug output support.

func (d *Device) cmdSetDebugMarker(cmd rhi.Command) {
	c := cmd.(*rhi.SetDebugMarkerCmd)
	if d.exts[extDebugOutput] {
		d.gl.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_MARKER, 0, gl.DEBUG_SEVERITY_NOTIFICATION, c.Name)
	}
}

func (d *Device) cmdBeginDebugEvent(cmd rhi.Command) {
	c := cmd.(*rhi.BeginDebugEventCmd)
	if d.exts[extDebugOutput] {
		d.gl.PushDebugGroup(gl.DEBUG_SOURCE_APPLICATION, 0, c.Name)
		d.debugDepth++
	}
}

func (d *Device) cmdEndDebugEvent(rhi.Command) {
	if d.debugDepth > 0 {
		d.gl.PopDebugGroup()
		d.debugDepth--
	}
}

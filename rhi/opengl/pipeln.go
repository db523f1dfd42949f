// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"fmt"

	"github.com/gviegas/rhi/rhi"
)

// graphicsPipelineState implements rhi.GraphicsPipelineState.
type graphicsPipelineState struct {
	rhi.ResourceBase
	d        *Device
	rs       *rootSignature
	prog     *graphicsProgram
	pass     rhi.RenderPass
	topology rhi.PrimitiveTopology
	mode     uint32
	// Zero unless mode is GL_PATCHES.
	patchVertices int32
	raster        rhi.RasterizerState
	ds            rhi.DepthStencilState
	blend         rhi.BlendState
	numRT         int
}

// CreateGraphicsPipelineState creates a new graphics
// pipeline state.
// It panics if desc requires more vertices per patch than
// the device supports.
func (d *Device) CreateGraphicsPipelineState(desc *rhi.GraphicsPipelineStateDescriptor) (rhi.GraphicsPipelineState, error) {
	if desc == nil {
		return nil, fmt.Errorf("%w: nil graphics pipeline descriptor", rhi.ErrInvalidDescriptor)
	}
	rs, ok := desc.RootSignature.(*rootSignature)
	if !ok {
		return nil, fmt.Errorf("%w: graphics pipeline without an OpenGL root signature", rhi.ErrInvalidDescriptor)
	}
	prog, ok := desc.GraphicsProgram.(*graphicsProgram)
	if !ok {
		return nil, fmt.Errorf("%w: graphics pipeline without an OpenGL program", rhi.ErrInvalidDescriptor)
	}
	if desc.RenderPass == nil {
		return nil, fmt.Errorf("%w: graphics pipeline without a render pass", rhi.ErrInvalidDescriptor)
	}
	if n := desc.NumberOfRenderTargets; n < 0 || n > rhi.MaxRenderTargets {
		return nil, fmt.Errorf("%w: %d render targets", rhi.ErrInvalidDescriptor, n)
	}
	mode, patchVertices, err := convTopology(desc.PrimitiveTopology)
	if err != nil {
		return nil, err
	}
	if lim := d.caps.MaximumNumberOfPatchVertices; patchVertices > lim {
		panic(fmt.Sprintf("opengl: %d vertices per patch exceeds the device limit of %d", patchVertices, lim))
	}

	ps := &graphicsPipelineState{
		d:             d,
		rs:            rs,
		prog:          prog,
		pass:          desc.RenderPass,
		topology:      desc.PrimitiveTopology,
		mode:          mode,
		patchVertices: int32(patchVertices),
		raster:        desc.RasterizerState,
		ds:            desc.DepthStencilState,
		blend:         desc.BlendState,
		numRT:         desc.NumberOfRenderTargets,
	}
	rs.AddRef()
	prog.AddRef()
	ps.pass.AddRef()
	ps.InitResource(d, rhi.RGraphicsPipelineState, &d.stats, ps.destroy)
	return ps, nil
}

func (ps *graphicsPipelineState) destroy() {
	ps.prog.Release()
	ps.pass.Release()
	ps.rs.Release()
	ps.prog = nil
	ps.pass = nil
	ps.rs = nil
}

// RootSignature returns the pipeline's root signature.
func (ps *graphicsPipelineState) RootSignature() rhi.RootSignature { return ps.rs }

// GraphicsProgram returns the pipeline's program.
func (ps *graphicsPipelineState) GraphicsProgram() rhi.GraphicsProgram { return ps.prog }

// RenderPass returns the pipeline's render pass.
func (ps *graphicsPipelineState) RenderPass() rhi.RenderPass { return ps.pass }

// PrimitiveTopology returns the pipeline's topology.
func (ps *graphicsPipelineState) PrimitiveTopology() rhi.PrimitiveTopology { return ps.topology }

// bind makes ps's program current and applies its
// fixed-function state.
func (ps *graphicsPipelineState) bind() {
	d := ps.d
	f := d.gl
	d.st.useProgram(f, ps.prog.id)
	d.st.setRasterizer(f, &ps.raster)
	d.st.setDepthStencil(f, &ps.ds)
	d.st.setBlend(f, &ps.blend, ps.numRT)
	if ps.patchVertices > 0 {
		d.st.setPatchVertices(f, ps.patchVertices)
	}
}

// computePipelineState implements rhi.ComputePipelineState.
type computePipelineState struct {
	rhi.ResourceBase
	d    *Device
	rs   *rootSignature
	cs   *shader
	prog uint32
}

// CreateComputePipelineState creates a new compute
// pipeline state.
func (d *Device) CreateComputePipelineState(desc *rhi.ComputePipelineStateDescriptor) (rhi.ComputePipelineState, error) {
	if !d.caps.ComputeShader {
		return nil, fmt.Errorf("%w: compute pipelines", rhi.ErrUnsupported)
	}
	if desc == nil {
		return nil, fmt.Errorf("%w: nil compute pipeline descriptor", rhi.ErrInvalidDescriptor)
	}
	rs, ok := desc.RootSignature.(*rootSignature)
	if !ok {
		return nil, fmt.Errorf("%w: compute pipeline without an OpenGL root signature", rhi.ErrInvalidDescriptor)
	}
	if desc.ComputeShader == nil {
		return nil, fmt.Errorf("%w: compute pipeline without a shader", rhi.ErrInvalidDescriptor)
	}
	cs, err := asShader(desc.ComputeShader, rhi.RComputeShader)
	if err != nil {
		return nil, err
	}
	prog, err := d.linkProgram([]*shader{cs}, nil, rs.desc)
	if err != nil {
		return nil, err
	}
	ps := &computePipelineState{
		d:    d,
		rs:   rs,
		cs:   cs,
		prog: prog,
	}
	rs.AddRef()
	cs.AddRef()
	ps.InitResource(d, rhi.RComputePipelineState, &d.stats, ps.destroy)
	return ps, nil
}

func (ps *computePipelineState) destroy() {
	ps.d.deleteProgram(ps.prog)
	ps.cs.Release()
	ps.rs.Release()
	ps.cs = nil
	ps.rs = nil
}

// RootSignature returns the pipeline's root signature.
func (ps *computePipelineState) RootSignature() rhi.RootSignature { return ps.rs }

// ComputeShader returns the pipeline's shader.
func (ps *computePipelineState) ComputeShader() rhi.ComputeShader { return ps.cs }

func (ps *computePipelineState) bind() { ps.d.st.useProgram(ps.d.gl, ps.prog) }

// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gviegas/rhi/internal/bitvec"
	"github.com/gviegas/rhi/rhi"
)

// Capabilities toggled with glEnable/glDisable.
const (
	capCullFace = iota
	capDepthTest
	capStencilTest
	capBlend
	capScissorTest
	capPolygonOffsetFill
	capDepthClamp
	capMultisample
	capLineSmooth
	capSampleAlphaToCoverage

	capN
)

var capEnums = [capN]uint32{
	capCullFace:              gl.CULL_FACE,
	capDepthTest:             gl.DEPTH_TEST,
	capStencilTest:           gl.STENCIL_TEST,
	capBlend:                 gl.BLEND,
	capScissorTest:           gl.SCISSOR_TEST,
	capPolygonOffsetFill:     gl.POLYGON_OFFSET_FILL,
	capDepthClamp:            gl.DEPTH_CLAMP,
	capMultisample:           gl.MULTISAMPLE,
	capLineSmooth:            gl.LINE_SMOOTH,
	capSampleAlphaToCoverage: gl.SAMPLE_ALPHA_TO_COVERAGE,
}

// unknown marks a cached object name that must be set
// regardless of its value.
const unknown = ^uint32(0)

// glState caches context state so redundant native calls
// can be elided.
type glState struct {
	// A capability's enabled bit is meaningful only if
	// its known bit is set.
	known   bitvec.V[uint16]
	enabled bitvec.V[uint16]

	prog uint32
	vao  uint32
	fbo  uint32

	// -1 when unknown.
	depthMask     int8
	patchVertices int32

	raster    rhi.RasterizerState
	hasRaster bool
	ds        rhi.DepthStencilState
	hasDS     bool
	blend     rhi.BlendState
	blendN    int
	hasBlend  bool
}

func (s *glState) init() {
	s.known.Ensure(capN)
	s.enabled.Ensure(capN)
	s.invalidate()
}

// invalidate forgets every cached value.
func (s *glState) invalidate() {
	s.known.Clear()
	s.enabled.Clear()
	s.prog = unknown
	s.vao = unknown
	s.fbo = unknown
	s.depthMask = -1
	s.patchVertices = 0
	s.hasRaster = false
	s.hasDS = false
	s.hasBlend = false
}

func (s *glState) setCap(f glFuncs, c int, on bool) {
	if s.known.IsSet(c) && s.enabled.IsSet(c) == on {
		return
	}
	s.known.Set(c)
	if on {
		s.enabled.Set(c)
		f.Enable(capEnums[c])
	} else {
		s.enabled.Unset(c)
		f.Disable(capEnums[c])
	}
}

// isCapEnabled returns whether c is known to be enabled.
func (s *glState) isCapEnabled(c int) bool { return s.known.IsSet(c) && s.enabled.IsSet(c) }

func (s *glState) useProgram(f glFuncs, prog uint32) {
	if s.prog != prog {
		s.prog = prog
		f.UseProgram(prog)
	}
}

func (s *glState) bindVertexArray(f glFuncs, vao uint32) {
	if s.vao != vao {
		s.vao = vao
		f.BindVertexArray(vao)
	}
}

func (s *glState) bindFramebuffer(f glFuncs, fbo uint32) {
	if s.fbo != fbo {
		s.fbo = fbo
		f.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	}
}

func (s *glState) setDepthMask(f glFuncs, on bool) {
	var m int8
	if on {
		m = 1
	}
	if s.depthMask != m {
		s.depthMask = m
		f.DepthMask(on)
	}
}

func (s *glState) setPatchVertices(f glFuncs, n int32) {
	if s.patchVertices != n {
		s.patchVertices = n
		f.PatchParameteri(gl.PATCH_VERTICES, n)
	}
}

func (s *glState) setRasterizer(f glFuncs, r *rhi.RasterizerState) {
	if s.hasRaster && s.raster == *r {
		return
	}
	s.raster, s.hasRaster = *r, true
	switch r.CullMode {
	case rhi.CullNone:
		s.setCap(f, capCullFace, false)
	case rhi.CullFront:
		s.setCap(f, capCullFace, true)
		f.CullFace(gl.FRONT)
	default:
		s.setCap(f, capCullFace, true)
		f.CullFace(gl.BACK)
	}
	if r.FrontCounterClockwise {
		f.FrontFace(gl.CCW)
	} else {
		f.FrontFace(gl.CW)
	}
	if r.FillMode == rhi.FillWireframe {
		f.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		f.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	bias := r.DepthBias != 0 || r.SlopeScaledDepthBias != 0
	s.setCap(f, capPolygonOffsetFill, bias)
	if bias {
		f.PolygonOffset(r.SlopeScaledDepthBias, float32(r.DepthBias))
	}
	s.setCap(f, capDepthClamp, !r.DepthClipEnable)
	s.setCap(f, capMultisample, r.MultisampleEnable)
	s.setCap(f, capLineSmooth, r.AntialiasedLineEnable)
	s.setCap(f, capScissorTest, r.ScissorEnable)
}

func (s *glState) setDepthStencil(f glFuncs, ds *rhi.DepthStencilState) {
	if s.hasDS && s.ds == *ds {
		return
	}
	s.ds, s.hasDS = *ds, true
	s.setCap(f, capDepthTest, ds.DepthEnable)
	f.DepthFunc(convCmpFunc(ds.DepthFunc))
	s.setDepthMask(f, ds.DepthWriteMask)
	s.setCap(f, capStencilTest, ds.StencilEnable)
	if !ds.StencilEnable {
		return
	}
	faces := [2]struct {
		face uint32
		op   *rhi.DepthStencilOpDesc
	}{
		{gl.FRONT, &ds.FrontFace},
		{gl.BACK, &ds.BackFace},
	}
	for _, x := range faces {
		f.StencilFuncSeparate(x.face, convCmpFunc(x.op.StencilFunc), 0, uint32(ds.StencilReadMask))
		f.StencilOpSeparate(x.face, convStencilOp(x.op.StencilFailOp), convStencilOp(x.op.StencilDepthFailOp), convStencilOp(x.op.StencilPassOp))
	}
	f.StencilMask(uint32(ds.StencilWriteMask))
}

// setBlend applies b to the first n color attachments.
func (s *glState) setBlend(f glFuncs, b *rhi.BlendState, n int) {
	if s.hasBlend && s.blendN == n && s.blend == *b {
		return
	}
	s.blend, s.blendN, s.hasBlend = *b, n, true
	s.setCap(f, capSampleAlphaToCoverage, b.AlphaToCoverageEnable)
	if !b.IndependentBlendEnable {
		rt := &b.RenderTargets[0]
		s.setCap(f, capBlend, rt.BlendEnable)
		f.BlendFuncSeparate(convBlend(rt.SrcBlend), convBlend(rt.DestBlend), convBlend(rt.SrcBlendAlpha), convBlend(rt.DestBlendAlpha))
		f.BlendEquationSeparate(convBlendOp(rt.BlendOp), convBlendOp(rt.BlendOpAlpha))
		s.applyColorMasks(f)
		return
	}
	// Indexed calls leave the global enable state undefined.
	s.known.Unset(capBlend)
	for i := range min(n, rhi.MaxRenderTargets) {
		rt := &b.RenderTargets[i]
		buf := uint32(i)
		if rt.BlendEnable {
			f.Enablei(gl.BLEND, buf)
		} else {
			f.Disablei(gl.BLEND, buf)
		}
		f.BlendFuncSeparatei(buf, convBlend(rt.SrcBlend), convBlend(rt.DestBlend), convBlend(rt.SrcBlendAlpha), convBlend(rt.DestBlendAlpha))
		f.BlendEquationSeparatei(buf, convBlendOp(rt.BlendOp), convBlendOp(rt.BlendOpAlpha))
	}
	s.applyColorMasks(f)
}

// applyColorMasks sets the write masks of the cached blend
// state.
func (s *glState) applyColorMasks(f glFuncs) {
	if !s.hasBlend {
		return
	}
	mask := func(m rhi.ColorWriteEnable) (r, g, b, a bool) {
		return m&rhi.ColorWriteRed != 0, m&rhi.ColorWriteGreen != 0, m&rhi.ColorWriteBlue != 0, m&rhi.ColorWriteAlpha != 0
	}
	if !s.blend.IndependentBlendEnable {
		f.ColorMask(mask(s.blend.RenderTargets[0].RenderTargetWriteMask))
		return
	}
	for i := range min(s.blendN, rhi.MaxRenderTargets) {
		r, g, b, a := mask(s.blend.RenderTargets[i].RenderTargetWriteMask)
		f.ColorMaski(uint32(i), r, g, b, a)
	}
}

// colorWritesAll reports whether every channel of every
// color attachment is writable.
// Only setBlend changes the masks, so without a cached blend
// state they have their initial value.
func (s *glState) colorWritesAll() bool {
	if !s.hasBlend {
		return true
	}
	n := 1
	if s.blend.IndependentBlendEnable {
		n = min(s.blendN, rhi.MaxRenderTargets)
	}
	for i := range n {
		if s.blend.RenderTargets[i].RenderTargetWriteMask&rhi.ColorWriteAll != rhi.ColorWriteAll {
			return false
		}
	}
	return true
}

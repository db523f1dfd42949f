// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// goglFuncs implements glFuncs using go-gl.
// gl.InitWithProcAddrFunc must have been called with the
// device's context current.
type goglFuncs struct{}

// cstr returns a NUL-terminated copy of s for gl.Str.
func cstr(s string) *uint8 {
	if !strings.HasSuffix(s, "\x00") {
		s += "\x00"
	}
	return gl.Str(s)
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

func (goglFuncs) GetString(name uint32) string { return gl.GoStr(gl.GetString(name)) }

func (goglFuncs) GetStringi(name, index uint32) string { return gl.GoStr(gl.GetStringi(name, index)) }

func (goglFuncs) GetInteger(pname uint32) (v int32) {
	gl.GetIntegerv(pname, &v)
	return
}

func (goglFuncs) GetFloat(pname uint32) (v float32) {
	gl.GetFloatv(pname, &v)
	return
}

func (goglFuncs) GetError() uint32 { return gl.GetError() }

func (goglFuncs) Enable(cap uint32) { gl.Enable(cap) }
func (goglFuncs) Disable(cap uint32) { gl.Disable(cap) }
func (goglFuncs) Enablei(cap, index uint32) { gl.Enablei(cap, index) }
func (goglFuncs) Disablei(cap, index uint32) { gl.Disablei(cap, index) }
func (goglFuncs) CullFace(mode uint32) { gl.CullFace(mode) }
func (goglFuncs) FrontFace(mode uint32) { gl.FrontFace(mode) }
func (goglFuncs) PolygonMode(face, mode uint32) { gl.PolygonMode(face, mode) }
func (goglFuncs) PolygonOffset(factor, units float32) {
	gl.PolygonOffset(factor, units)
}
func (goglFuncs) DepthFunc(fn uint32) { gl.DepthFunc(fn) }
func (goglFuncs) DepthMask(flag bool) { gl.DepthMask(flag) }
func (goglFuncs) StencilMask(m uint32) { gl.StencilMask(m) }
func (goglFuncs) ClearStencil(s int32) { gl.ClearStencil(s) }
func (goglFuncs) ClearDepth(d float64) { gl.ClearDepth(d) }
func (goglFuncs) Clear(mask uint32) { gl.Clear(mask) }
func (goglFuncs) ClipControl(o, d uint32) { gl.ClipControl(o, d) }

func (goglFuncs) StencilFuncSeparate(face, fn uint32, ref int32, mask uint32) {
	gl.StencilFuncSeparate(face, fn, ref, mask)
}

func (goglFuncs) StencilOpSeparate(face, sfail, dpfail, dppass uint32) {
	gl.StencilOpSeparate(face, sfail, dpfail, dppass)
}

func (goglFuncs) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	gl.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (goglFuncs) BlendFuncSeparatei(buf, srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	gl.BlendFuncSeparatei(buf, srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (goglFuncs) BlendEquationSeparate(modeRGB, modeAlpha uint32) {
	gl.BlendEquationSeparate(modeRGB, modeAlpha)
}

func (goglFuncs) BlendEquationSeparatei(buf, modeRGB, modeAlpha uint32) {
	gl.BlendEquationSeparatei(buf, modeRGB, modeAlpha)
}

func (goglFuncs) ColorMask(r, g, b, a bool) { gl.ColorMask(r, g, b, a) }
func (goglFuncs) ColorMaski(buf uint32, r, g, b, a bool) { gl.ColorMaski(buf, r, g, b, a) }
func (goglFuncs) Viewport(x, y, w, h int32) { gl.Viewport(x, y, w, h) }
func (goglFuncs) DepthRange(n, f float64) { gl.DepthRange(n, f) }
func (goglFuncs) Scissor(x, y, w, h int32) { gl.Scissor(x, y, w, h) }
func (goglFuncs) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (goglFuncs) PatchParameteri(pname uint32, v int32) { gl.PatchParameteri(pname, v) }

func (goglFuncs) ViewportIndexedf(index uint32, x, y, w, h float32) {
	gl.ViewportIndexedf(index, x, y, w, h)
}

func (goglFuncs) DepthRangeIndexed(index uint32, n, f float64) { gl.DepthRangeIndexed(index, n, f) }

func (goglFuncs) ScissorIndexed(index uint32, x, y, w, h int32) {
	gl.ScissorIndexed(index, x, y, w, h)
}

func (goglFuncs) GenBuffer() (b uint32) {
	gl.GenBuffers(1, &b)
	return
}

func (goglFuncs) CreateBuffer() (b uint32) {
	gl.CreateBuffers(1, &b)
	return
}

func (goglFuncs) DeleteBuffer(b uint32) { gl.DeleteBuffers(1, &b) }
func (goglFuncs) BindBuffer(target, b uint32) { gl.BindBuffer(target, b) }
func (goglFuncs) BindBufferBase(t, i, b uint32) { gl.BindBufferBase(t, i, b) }

func (goglFuncs) BufferData(target uint32, size int, data []byte, usage uint32) {
	gl.BufferData(target, size, ptr(data), usage)
}

func (goglFuncs) BufferSubData(target uint32, off int, data []byte) {
	gl.BufferSubData(target, off, len(data), ptr(data))
}

func (goglFuncs) NamedBufferData(b uint32, size int, data []byte, usage uint32) {
	gl.NamedBufferData(b, size, ptr(data), usage)
}

func (goglFuncs) NamedBufferSubData(b uint32, off int, data []byte) {
	gl.NamedBufferSubData(b, off, len(data), ptr(data))
}

func (goglFuncs) BindBuffersBase(target, first uint32, bufs []uint32) {
	if len(bufs) == 0 {
		return
	}
	gl.BindBuffersBase(target, first, int32(len(bufs)), &bufs[0])
}

func mapped(p unsafe.Pointer, n int) []byte {
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

func (goglFuncs) MapBufferRange(target uint32, off, n int, access uint32) []byte {
	return mapped(gl.MapBufferRange(target, off, n, access), n)
}

func (goglFuncs) MapNamedBufferRange(b uint32, off, n int, access uint32) []byte {
	return mapped(gl.MapNamedBufferRange(b, off, n, access), n)
}

func (goglFuncs) UnmapBuffer(target uint32) bool { return gl.UnmapBuffer(target) }
func (goglFuncs) UnmapNamedBuffer(b uint32) bool { return gl.UnmapNamedBuffer(b) }

func (goglFuncs) CopyBufferSubData(rt, wt uint32, roff, woff, size int) {
	gl.CopyBufferSubData(rt, wt, roff, woff, size)
}

func (goglFuncs) CopyNamedBufferSubData(rb, wb uint32, roff, woff, size int) {
	gl.CopyNamedBufferSubData(rb, wb, roff, woff, size)
}

func (goglFuncs) GenVertexArray() (a uint32) {
	gl.GenVertexArrays(1, &a)
	return
}

func (goglFuncs) DeleteVertexArray(a uint32) { gl.DeleteVertexArrays(1, &a) }
func (goglFuncs) BindVertexArray(a uint32) { gl.BindVertexArray(a) }
func (goglFuncs) EnableVertexAttribArray(i uint32) { gl.EnableVertexAttribArray(i) }
func (goglFuncs) VertexAttribDivisor(i, n uint32) { gl.VertexAttribDivisor(i, n) }

func (goglFuncs) VertexAttribPointer(i uint32, size int32, typ uint32, norm bool, stride int32, off int) {
	gl.VertexAttribPointer(i, size, typ, norm, stride, gl.PtrOffset(off))
}

func (goglFuncs) VertexAttribIPointer(i uint32, size int32, typ uint32, stride int32, off int) {
	gl.VertexAttribIPointer(i, size, typ, stride, gl.PtrOffset(off))
}

func (goglFuncs) CreateShader(typ uint32) uint32 { return gl.CreateShader(typ) }

func (goglFuncs) ShaderSource(s uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(s, 1, csrc, nil)
	free()
}

func (goglFuncs) CompileShader(s uint32) { gl.CompileShader(s) }

func (goglFuncs) GetShaderi(s, pname uint32) (v int32) {
	gl.GetShaderiv(s, pname, &v)
	return
}

func (f goglFuncs) ShaderInfoLog(s uint32) string {
	n := f.GetShaderi(s, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n+1)
	gl.GetShaderInfoLog(s, n, nil, &buf[0])
	return gl.GoStr(&buf[0])
}

func (goglFuncs) DeleteShader(s uint32) { gl.DeleteShader(s) }
func (goglFuncs) CreateProgram() uint32 { return gl.CreateProgram() }
func (goglFuncs) AttachShader(p, s uint32) { gl.AttachShader(p, s) }
func (goglFuncs) DetachShader(p, s uint32) { gl.DetachShader(p, s) }
func (goglFuncs) LinkProgram(p uint32) { gl.LinkProgram(p) }
func (goglFuncs) DeleteProgram(p uint32) { gl.DeleteProgram(p) }
func (goglFuncs) UseProgram(p uint32) { gl.UseProgram(p) }
func (goglFuncs) UniformBlockBinding(p, i, b uint32) { gl.UniformBlockBinding(p, i, b) }
func (goglFuncs) Uniform1i(loc, v int32) { gl.Uniform1i(loc, v) }
func (goglFuncs) ProgramUniform1i(p uint32, loc, v int32) {
	gl.ProgramUniform1i(p, loc, v)
}

func (goglFuncs) BindAttribLocation(p, i uint32, name string) {
	gl.BindAttribLocation(p, i, cstr(name))
}

func (goglFuncs) GetProgrami(p, pname uint32) (v int32) {
	gl.GetProgramiv(p, pname, &v)
	return
}

func (f goglFuncs) ProgramInfoLog(p uint32) string {
	n := f.GetProgrami(p, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n+1)
	gl.GetProgramInfoLog(p, n, nil, &buf[0])
	return gl.GoStr(&buf[0])
}

func (goglFuncs) GetUniformBlockIndex(p uint32, name string) uint32 {
	return gl.GetUniformBlockIndex(p, cstr(name))
}

func (goglFuncs) GetUniformLocation(p uint32, name string) int32 {
	return gl.GetUniformLocation(p, cstr(name))
}

func (goglFuncs) GenTexture() (t uint32) {
	gl.GenTextures(1, &t)
	return
}

func (goglFuncs) DeleteTexture(t uint32) { gl.DeleteTextures(1, &t) }
func (goglFuncs) ActiveTexture(unit uint32) { gl.ActiveTexture(unit) }
func (goglFuncs) BindTexture(target, t uint32) { gl.BindTexture(target, t) }
func (goglFuncs) BindTextureUnit(unit, t uint32) { gl.BindTextureUnit(unit, t) }
func (goglFuncs) GenerateMipmap(target uint32) { gl.GenerateMipmap(target) }
func (goglFuncs) GenerateTextureMipmap(t uint32) { gl.GenerateTextureMipmap(t) }
func (goglFuncs) TexBuffer(target, f, b uint32) { gl.TexBuffer(target, f, b) }
func (goglFuncs) TexParameteri(t, p uint32, v int32) { gl.TexParameteri(t, p, v) }

func (goglFuncs) TexImage1D(target uint32, level, ifmt, w int32, format, typ uint32, data []byte) {
	gl.TexImage1D(target, level, ifmt, w, 0, format, typ, ptr(data))
}

func (goglFuncs) TexImage2D(target uint32, level, ifmt, w, h int32, format, typ uint32, data []byte) {
	gl.TexImage2D(target, level, ifmt, w, h, 0, format, typ, ptr(data))
}

func (goglFuncs) TexImage3D(target uint32, level, ifmt, w, h, d int32, format, typ uint32, data []byte) {
	gl.TexImage3D(target, level, ifmt, w, h, d, 0, format, typ, ptr(data))
}

func (goglFuncs) TexImage2DMultisample(target uint32, samples int32, ifmt uint32, w, h int32, fixed bool) {
	gl.TexImage2DMultisample(target, samples, ifmt, w, h, fixed)
}

func (goglFuncs) BindImageTexture(unit, t uint32, level int32, layered bool, layer int32, access, format uint32) {
	gl.BindImageTexture(unit, t, level, layered, layer, access, format)
}

func (goglFuncs) GenSampler() (s uint32) {
	gl.GenSamplers(1, &s)
	return
}

func (goglFuncs) DeleteSampler(s uint32) { gl.DeleteSamplers(1, &s) }
func (goglFuncs) BindSampler(unit, s uint32) { gl.BindSampler(unit, s) }
func (goglFuncs) SamplerParameteri(s, p uint32, v int32) { gl.SamplerParameteri(s, p, v) }
func (goglFuncs) SamplerParameterf(s, p uint32, v float32) {
	gl.SamplerParameterf(s, p, v)
}

func (goglFuncs) SamplerParameterfv(s, p uint32, v []float32) {
	if len(v) > 0 {
		gl.SamplerParameterfv(s, p, &v[0])
	}
}

func (goglFuncs) CopyImageSubData(src, srcTarget uint32, srcLevel, sx, sy, sz int32, dst, dstTarget uint32, dstLevel, dx, dy, dz int32, w, h, d int32) {
	gl.CopyImageSubData(src, srcTarget, srcLevel, sx, sy, sz, dst, dstTarget, dstLevel, dx, dy, dz, w, h, d)
}

func (goglFuncs) GenFramebuffer() (f uint32) {
	gl.GenFramebuffers(1, &f)
	return
}

func (goglFuncs) DeleteFramebuffer(f uint32) { gl.DeleteFramebuffers(1, &f) }
func (goglFuncs) BindFramebuffer(target, f uint32) { gl.BindFramebuffer(target, f) }
func (goglFuncs) CheckFramebufferStatus(t uint32) uint32 { return gl.CheckFramebufferStatus(t) }

func (goglFuncs) FramebufferTexture2D(target, attach, texTarget, t uint32, level int32) {
	gl.FramebufferTexture2D(target, attach, texTarget, t, level)
}

func (goglFuncs) FramebufferTextureLayer(target, attach, t uint32, level, layer int32) {
	gl.FramebufferTextureLayer(target, attach, t, level, layer)
}

func (goglFuncs) DrawBuffers(bufs []uint32) {
	if len(bufs) > 0 {
		gl.DrawBuffers(int32(len(bufs)), &bufs[0])
	}
}

func (goglFuncs) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int32, mask, filter uint32) {
	gl.BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, mask, filter)
}

func (goglFuncs) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (goglFuncs) DrawArraysInstanced(mode uint32, first, count, n int32) {
	gl.DrawArraysInstanced(mode, first, count, n)
}

func (goglFuncs) DrawArraysInstancedBaseInstance(mode uint32, first, count, n int32, base uint32) {
	gl.DrawArraysInstancedBaseInstance(mode, first, count, n, base)
}

func (goglFuncs) DrawElementsBaseVertex(mode uint32, count int32, typ uint32, off int, baseVertex int32) {
	gl.DrawElementsBaseVertex(mode, count, typ, gl.PtrOffset(off), baseVertex)
}

func (goglFuncs) DrawElementsInstancedBaseVertex(mode uint32, count int32, typ uint32, off int, n, baseVertex int32) {
	gl.DrawElementsInstancedBaseVertex(mode, count, typ, gl.PtrOffset(off), n, baseVertex)
}

func (goglFuncs) DrawElementsInstancedBaseVertexBaseInstance(mode uint32, count int32, typ uint32, off int, n, baseVertex int32, base uint32) {
	gl.DrawElementsInstancedBaseVertexBaseInstance(mode, count, typ, gl.PtrOffset(off), n, baseVertex, base)
}

func (goglFuncs) DrawArraysIndirect(mode uint32, off int) {
	gl.DrawArraysIndirect(mode, gl.PtrOffset(off))
}

func (goglFuncs) DrawElementsIndirect(mode, typ uint32, off int) {
	gl.DrawElementsIndirect(mode, typ, gl.PtrOffset(off))
}

func (goglFuncs) MultiDrawArraysIndirect(mode uint32, off int, count, stride int32) {
	gl.MultiDrawArraysIndirect(mode, gl.PtrOffset(off), count, stride)
}

func (goglFuncs) MultiDrawElementsIndirect(mode, typ uint32, off int, count, stride int32) {
	gl.MultiDrawElementsIndirect(mode, typ, gl.PtrOffset(off), count, stride)
}

func (goglFuncs) DispatchCompute(x, y, z uint32) { gl.DispatchCompute(x, y, z) }
func (goglFuncs) MemoryBarrier(b uint32) { gl.MemoryBarrier(b) }

func (goglFuncs) GenQuery() (q uint32) {
	gl.GenQueries(1, &q)
	return
}

func (goglFuncs) DeleteQuery(q uint32) { gl.DeleteQueries(1, &q) }
func (goglFuncs) BeginQuery(target, q uint32) { gl.BeginQuery(target, q) }
func (goglFuncs) EndQuery(target uint32) { gl.EndQuery(target) }
func (goglFuncs) QueryCounter(q, target uint32) { gl.QueryCounter(q, target) }

func (goglFuncs) GetQueryObjectui64(q, pname uint32) (v uint64) {
	gl.GetQueryObjectui64v(q, pname, &v)
	return
}

func (goglFuncs) DebugMessageCallback(fn func(source, typ, id, severity uint32, msg string)) {
	gl.DebugMessageCallback(func(source, typ, id, severity uint32, _ int32, msg string, _ unsafe.Pointer) {
		fn(source, typ, id, severity, msg)
	}, nil)
}

func (goglFuncs) DebugMessageInsert(source, typ, id, severity uint32, msg string) {
	gl.DebugMessageInsert(source, typ, id, severity, int32(len(msg)), cstr(msg))
}

func (goglFuncs) PushDebugGroup(source, id uint32, msg string) {
	gl.PushDebugGroup(source, id, int32(len(msg)), cstr(msg))
}

func (goglFuncs) PopDebugGroup() { gl.PopDebugGroup() }
func (goglFuncs) Flush() { gl.Flush() }
func (goglFuncs) Finish() { gl.Finish() }

// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

// glFuncs is the set of native OpenGL calls that the backend
// issues.
// Signatures follow the GL entry points, with Go slices and
// strings in place of pointer/length pairs and single-object
// variants of the Gen*/Delete* calls.
// The production implementation is goglFuncs; every call
// made by the backend goes through this interface.
type glFuncs interface {
	// State queries.
	GetString(name uint32) string
	GetStringi(name, index uint32) string
	GetInteger(pname uint32) int32
	GetFloat(pname uint32) float32
	GetError() uint32

	// Fixed-function state.
	Enable(cap uint32)
	Disable(cap uint32)
	Enablei(cap, index uint32)
	Disablei(cap, index uint32)
	CullFace(mode uint32)
	FrontFace(mode uint32)
	PolygonMode(face, mode uint32)
	PolygonOffset(factor, units float32)
	DepthFunc(fn uint32)
	DepthMask(flag bool)
	StencilFuncSeparate(face, fn uint32, ref int32, mask uint32)
	StencilOpSeparate(face, sfail, dpfail, dppass uint32)
	StencilMask(mask uint32)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32)
	BlendFuncSeparatei(buf, srcRGB, dstRGB, srcAlpha, dstAlpha uint32)
	BlendEquationSeparate(modeRGB, modeAlpha uint32)
	BlendEquationSeparatei(buf, modeRGB, modeAlpha uint32)
	ColorMask(r, g, b, a bool)
	ColorMaski(buf uint32, r, g, b, a bool)
	Viewport(x, y, width, height int32)
	ViewportIndexedf(index uint32, x, y, width, height float32)
	DepthRange(near, far float64)
	DepthRangeIndexed(index uint32, near, far float64)
	Scissor(x, y, width, height int32)
	ScissorIndexed(index uint32, x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	ClearStencil(s int32)
	Clear(mask uint32)
	PatchParameteri(pname uint32, value int32)
	ClipControl(origin, depth uint32)

	// Buffers.
	GenBuffer() uint32
	CreateBuffer() uint32
	DeleteBuffer(buf uint32)
	BindBuffer(target, buf uint32)
	BufferData(target uint32, size int, data []byte, usage uint32)
	BufferSubData(target uint32, offset int, data []byte)
	NamedBufferData(buf uint32, size int, data []byte, usage uint32)
	NamedBufferSubData(buf uint32, offset int, data []byte)
	BindBufferBase(target, index, buf uint32)
	BindBuffersBase(target, first uint32, bufs []uint32)
	MapBufferRange(target uint32, offset, length int, access uint32) []byte
	MapNamedBufferRange(buf uint32, offset, length int, access uint32) []byte
	UnmapBuffer(target uint32) bool
	UnmapNamedBuffer(buf uint32) bool
	CopyBufferSubData(readTarget, writeTarget uint32, readOffset, writeOffset, size int)
	CopyNamedBufferSubData(readBuf, writeBuf uint32, readOffset, writeOffset, size int)

	// Vertex arrays.
	GenVertexArray() uint32
	DeleteVertexArray(vao uint32)
	BindVertexArray(vao uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset int)
	VertexAttribIPointer(index uint32, size int32, typ uint32, stride int32, offset int)
	VertexAttribDivisor(index, divisor uint32)

	// Shaders and programs.
	CreateShader(typ uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader, pname uint32) int32
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(prog, shader uint32)
	DetachShader(prog, shader uint32)
	BindAttribLocation(prog, index uint32, name string)
	LinkProgram(prog uint32)
	GetProgrami(prog, pname uint32) int32
	ProgramInfoLog(prog uint32) string
	DeleteProgram(prog uint32)
	UseProgram(prog uint32)
	GetUniformBlockIndex(prog uint32, name string) uint32
	UniformBlockBinding(prog, block, binding uint32)
	GetUniformLocation(prog uint32, name string) int32
	Uniform1i(loc, v int32)
	ProgramUniform1i(prog uint32, loc, v int32)

	// Textures and samplers.
	GenTexture() uint32
	DeleteTexture(tex uint32)
	ActiveTexture(unit uint32)
	BindTexture(target, tex uint32)
	BindTextureUnit(unit, tex uint32)
	TexImage1D(target uint32, level, ifmt, width int32, format, typ uint32, data []byte)
	TexImage2D(target uint32, level, ifmt, width, height int32, format, typ uint32, data []byte)
	TexImage3D(target uint32, level, ifmt, width, height, depth int32, format, typ uint32, data []byte)
	TexImage2DMultisample(target uint32, samples int32, ifmt uint32, width, height int32, fixedLocations bool)
	TexParameteri(target, pname uint32, v int32)
	GenerateMipmap(target uint32)
	GenerateTextureMipmap(tex uint32)
	TexBuffer(target, ifmt, buf uint32)
	BindImageTexture(unit, tex uint32, level int32, layered bool, layer int32, access, format uint32)
	GenSampler() uint32
	DeleteSampler(s uint32)
	BindSampler(unit, s uint32)
	SamplerParameteri(s, pname uint32, v int32)
	SamplerParameterf(s, pname uint32, v float32)
	SamplerParameterfv(s, pname uint32, v []float32)
	CopyImageSubData(src, srcTarget uint32, srcLevel, srcX, srcY, srcZ int32, dst, dstTarget uint32, dstLevel, dstX, dstY, dstZ int32, width, height, depth int32)

	// Framebuffers.
	GenFramebuffer() uint32
	DeleteFramebuffer(fbo uint32)
	BindFramebuffer(target, fbo uint32)
	FramebufferTexture2D(target, attachment, texTarget, tex uint32, level int32)
	FramebufferTextureLayer(target, attachment, tex uint32, level, layer int32)
	DrawBuffers(bufs []uint32)
	CheckFramebufferStatus(target uint32) uint32
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32)

	// Drawing and compute.
	DrawArrays(mode uint32, first, count int32)
	DrawArraysInstanced(mode uint32, first, count, instances int32)
	DrawArraysInstancedBaseInstance(mode uint32, first, count, instances int32, baseInstance uint32)
	DrawElementsBaseVertex(mode uint32, count int32, typ uint32, offset int, baseVertex int32)
	DrawElementsInstancedBaseVertex(mode uint32, count int32, typ uint32, offset int, instances, baseVertex int32)
	DrawElementsInstancedBaseVertexBaseInstance(mode uint32, count int32, typ uint32, offset int, instances, baseVertex int32, baseInstance uint32)
	DrawArraysIndirect(mode uint32, offset int)
	DrawElementsIndirect(mode, typ uint32, offset int)
	MultiDrawArraysIndirect(mode uint32, offset int, count, stride int32)
	MultiDrawElementsIndirect(mode, typ uint32, offset int, count, stride int32)
	DispatchCompute(x, y, z uint32)
	MemoryBarrier(barriers uint32)

	// Queries.
	GenQuery() uint32
	DeleteQuery(q uint32)
	BeginQuery(target, q uint32)
	EndQuery(target uint32)
	QueryCounter(q, target uint32)
	GetQueryObjectui64(q, pname uint32) uint64

	// Debugging.
	DebugMessageCallback(fn func(source, typ, id, severity uint32, msg string))
	DebugMessageInsert(source, typ, id, severity uint32, msg string)
	PushDebugGroup(source, id uint32, msg string)
	PopDebugGroup()

	// Synchronization.
	Flush()
	Finish()
}

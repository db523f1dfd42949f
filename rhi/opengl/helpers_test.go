// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"bytes"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gviegas/rhi/rhi"
)

// fakeGL implements glFuncs by recording every call.
// Query results are configurable.
type fakeGL struct {
	calls []string
	names uint32

	strings    map[uint32]string
	extensions []string
	integers   map[uint32]int32
	floats     map[uint32]float32
	blocks     map[string]uint32
	uniforms   map[string]int32

	compileFail    bool
	linkFail       bool
	fbStatus       uint32
	queryAvailable uint64
	queryResult    uint64
	debugFn        func(source, typ, id, severity uint32, msg string)
}

// newFakeGL returns a fake 4.6 context that exposes every
// extension the backend probes.
func newFakeGL() *fakeGL {
	return &fakeGL{
		strings: map[uint32]string{
			gl.RENDERER: "Fake Renderer",
			gl.VERSION:  "4.6 Fake",
		},
		extensions: append([]string(nil), extNames[:]...),
		integers: map[uint32]int32{
			gl.MAJOR_VERSION:                    4,
			gl.MINOR_VERSION:                    6,
			gl.NUM_EXTENSIONS:                   int32(extN),
			gl.MAX_DRAW_BUFFERS:                 8,
			gl.MAX_TEXTURE_SIZE:                 16384,
			gl.MAX_ARRAY_TEXTURE_LAYERS:         2048,
			gl.MAX_UNIFORM_BLOCK_SIZE:           65536,
			gl.MAX_TEXTURE_BUFFER_SIZE:          134217728,
			gl.MAX_SAMPLES:                      8,
			gl.MAX_VIEWPORTS:                    16,
			gl.MAX_PATCH_VERTICES:               32,
			gl.MAX_GEOMETRY_OUTPUT_VERTICES:     256,
			gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS: 80,
		},
		floats: map[uint32]float32{
			gl.MAX_TEXTURE_MAX_ANISOTROPY: 16,
		},
		blocks:         map[string]uint32{},
		uniforms:       map[string]int32{},
		fbStatus:       gl.FRAMEBUFFER_COMPLETE,
		queryAvailable: 1,
		queryResult:    42,
	}
}

// setVersion changes the context version and removes
// every extension string, so that only core functionality
// of the version is available.
func (f *fakeGL) setVersion(major, minor int32) {
	f.integers[gl.MAJOR_VERSION] = major
	f.integers[gl.MINOR_VERSION] = minor
	f.integers[gl.NUM_EXTENSIONS] = 0
	f.extensions = nil
}

// gen returns a new object name.
func (f *fakeGL) gen() uint32 {
	f.names++
	return f.names
}

func (f *fakeGL) record(name string, args ...any) {
	s := make([]string, len(args))
	for i, a := range args {
		switch a := a.(type) {
		case []byte:
			s[i] = fmt.Sprintf("[%d bytes]", len(a))
		case string:
			s[i] = fmt.Sprintf("%q", a)
		default:
			s[i] = fmt.Sprint(a)
		}
	}
	f.calls = append(f.calls, name+"("+strings.Join(s, ", ")+")")
}

// reset discards the recorded calls.
func (f *fakeGL) reset() { f.calls = f.calls[:0] }

// index returns the index of the first recorded call that
// equals call, or -1.
func (f *fakeGL) index(call string) int { return slices.Index(f.calls, call) }

// indexName returns the index of the first recorded call
// whose name is name, or -1.
func (f *fakeGL) indexName(name string) int {
	return slices.IndexFunc(f.calls, func(c string) bool { return strings.HasPrefix(c, name+"(") })
}

// lastIndexName returns the index of the last recorded call
// whose name is name, or -1.
func (f *fakeGL) lastIndexName(name string) int {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if strings.HasPrefix(f.calls[i], name+"(") {
			return i
		}
	}
	return -1
}

// last returns the last recorded call whose name is name,
// or the empty string.
func (f *fakeGL) last(name string) string {
	if i := f.lastIndexName(name); i >= 0 {
		return f.calls[i]
	}
	return ""
}

// count returns how many recorded calls are named name.
func (f *fakeGL) count(name string) (n int) {
	for _, c := range f.calls {
		if strings.HasPrefix(c, name+"(") {
			n++
		}
	}
	return
}

// newTestDevice creates a device on top of f.
// Warnings and errors are written to the test log.
func newTestDevice(t *testing.T, f *fakeGL) *Device {
	t.Helper()
	var buf bytes.Buffer
	t.Cleanup(func() {
		if buf.Len() > 0 {
			t.Log(buf.String())
		}
	})
	ctx := &rhi.Context{
		Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
	d, err := newDevice(ctx, f)
	if err != nil {
		t.Fatalf("newDevice:\nhave %v\nwant nil", err)
	}
	f.reset()
	return d
}

// Test sources. The fake compiler accepts anything.
const (
	testVS = "#version 330 core\nin vec3 position;\nvoid main() { gl_Position = vec4(position, 1.0); }\n"
	testFS = "#version 330 core\nout vec4 color;\nvoid main() { color = vec4(1.0); }\n"
)

// uboRange and texRange return descriptor ranges of one
// uniform buffer and one 2D texture.
func uboRange(name string) rhi.DescriptorRange {
	return rhi.NewDescriptorRange(rhi.RangeUBV, 1, 0, name, rhi.VisibilityAll, rhi.RUniformBuffer)
}

func texRange(unit int, name string) rhi.DescriptorRange {
	return rhi.NewDescriptorRange(rhi.RangeSRV, 1, unit, name, rhi.VisibilityFragment, rhi.RTexture2D)
}

func testRootSignature(t *testing.T, d *Device, params ...rhi.RootParameter) *rootSignature {
	t.Helper()
	rs, err := d.CreateRootSignature(&rhi.RootSignatureDescriptor{Parameters: params})
	if err != nil {
		t.Fatalf("Device.CreateRootSignature:\nhave %v\nwant nil", err)
	}
	return rs.(*rootSignature)
}

func testUniformBuffer(t *testing.T, d *Device) *buffer {
	t.Helper()
	ub, err := d.BufferManager().CreateUniformBuffer(256, nil, rhi.DynamicDraw)
	if err != nil {
		t.Fatalf("bufferManager.CreateUniformBuffer:\nhave %v\nwant nil", err)
	}
	return ub.(*buffer)
}

func testTexture2D(t *testing.T, d *Device, format rhi.TextureFormat) *texture {
	t.Helper()
	tex, err := d.TextureManager().CreateTexture2D(64, 32, format, nil, rhi.TextureShaderResource|rhi.TextureRenderTarget, rhi.UsageDefault, 1)
	if err != nil {
		t.Fatalf("textureManager.CreateTexture2D:\nhave %v\nwant nil", err)
	}
	return tex.(*texture)
}

func testSampler(t *testing.T, d *Device) *samplerState {
	t.Helper()
	desc := rhi.DefaultSamplerState()
	s, err := d.CreateSamplerState(&desc)
	if err != nil {
		t.Fatalf("Device.CreateSamplerState:\nhave %v\nwant nil", err)
	}
	return s.(*samplerState)
}

// testProgram links a vertex and a fragment shader.
// The caller's references to the shaders are released.
func testProgram(t *testing.T, d *Device, rs *rootSignature) *graphicsProgram {
	t.Helper()
	glsl := d.ShaderLanguage("")
	vs, err := glsl.CreateVertexShaderFromSource(testVS)
	if err != nil {
		t.Fatalf("glslLanguage.CreateVertexShaderFromSource:\nhave %v\nwant nil", err)
	}
	fs, err := glsl.CreateFragmentShaderFromSource(testFS)
	if err != nil {
		t.Fatalf("glslLanguage.CreateFragmentShaderFromSource:\nhave %v\nwant nil", err)
	}
	var root rhi.RootSignature
	if rs != nil {
		root = rs
	}
	attrs := rhi.VertexAttributes{{Format: rhi.AttrFloat3, Name: "position", StrideInBytes: 12}}
	prog, err := glsl.CreateGraphicsProgram(root, attrs, rhi.GraphicsShaders{Vertex: vs, Fragment: fs})
	if err != nil {
		t.Fatalf("glslLanguage.CreateGraphicsProgram:\nhave %v\nwant nil", err)
	}
	vs.Release()
	fs.Release()
	return prog.(*graphicsProgram)
}

func testRenderPass(t *testing.T, d *Device) *renderPass {
	t.Helper()
	pass, err := d.CreateRenderPass([]rhi.TextureFormat{rhi.R8G8B8A8}, rhi.D32Float, 1)
	if err != nil {
		t.Fatalf("Device.CreateRenderPass:\nhave %v\nwant nil", err)
	}
	return pass.(*renderPass)
}

func testPipeline(t *testing.T, d *Device, rs *rootSignature, prog *graphicsProgram, pass *renderPass, top rhi.PrimitiveTopology) *graphicsPipelineState {
	t.Helper()
	desc := rhi.NewGraphicsPipelineStateDescriptor(rs, prog, nil, pass)
	desc.PrimitiveTopology = top
	ps, err := d.CreateGraphicsPipelineState(&desc)
	if err != nil {
		t.Fatalf("Device.CreateGraphicsPipelineState:\nhave %v\nwant nil", err)
	}
	return ps.(*graphicsPipelineState)
}

// fakeSurface implements rhi.Surface.
type fakeSurface struct {
	width, height int
	swaps         int
	interval      int
}

func (s *fakeSurface) MakeContextCurrent() {}
func (s *fakeSurface) SwapBuffers() { s.swaps++ }
func (s *fakeSurface) SwapInterval(n int) { s.interval = n }
func (s *fakeSurface) FramebufferSize() (int, int) { return s.width, s.height }

// mustPanic fails t if fn does not panic.
func mustPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s:\nhave no panic\nwant panic", what)
		}
	}()
	fn()
}

func (f *fakeGL) GetString(name uint32) string {
	f.record("GetString", name)
	return f.strings[name]
}

func (f *fakeGL) GetStringi(name, index uint32) string {
	f.record("GetStringi", name, index)
	if int(index) < len(f.extensions) {
		return f.extensions[index]
	}
	return ""
}

func (f *fakeGL) GetInteger(pname uint32) int32 {
	f.record("GetInteger", pname)
	return f.integers[pname]
}

func (f *fakeGL) GetFloat(pname uint32) float32 {
	f.record("GetFloat", pname)
	return f.floats[pname]
}

func (f *fakeGL) GetError() uint32 {
	f.record("GetError")
	return gl.NO_ERROR
}

func (f *fakeGL) Enable(cap uint32) {
	f.record("Enable", cap)
}

func (f *fakeGL) Disable(cap uint32) {
	f.record("Disable", cap)
}

func (f *fakeGL) Enablei(cap, index uint32) {
	f.record("Enablei", cap, index)
}

func (f *fakeGL) Disablei(cap, index uint32) {
	f.record("Disablei", cap, index)
}

func (f *fakeGL) CullFace(mode uint32) {
	f.record("CullFace", mode)
}

func (f *fakeGL) FrontFace(mode uint32) {
	f.record("FrontFace", mode)
}

func (f *fakeGL) PolygonMode(face, mode uint32) {
	f.record("PolygonMode", face, mode)
}

func (f *fakeGL) PolygonOffset(factor, units float32) {
	f.record("PolygonOffset", factor, units)
}

func (f *fakeGL) DepthFunc(fn uint32) {
	f.record("DepthFunc", fn)
}

func (f *fakeGL) DepthMask(flag bool) {
	f.record("DepthMask", flag)
}

func (f *fakeGL) StencilFuncSeparate(face, fn uint32, ref int32, mask uint32) {
	f.record("StencilFuncSeparate", face, fn, ref, mask)
}

func (f *fakeGL) StencilOpSeparate(face, sfail, dpfail, dppass uint32) {
	f.record("StencilOpSeparate", face, sfail, dpfail, dppass)
}

func (f *fakeGL) StencilMask(mask uint32) {
	f.record("StencilMask", mask)
}

func (f *fakeGL) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	f.record("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (f *fakeGL) BlendFuncSeparatei(buf, srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	f.record("BlendFuncSeparatei", buf, srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (f *fakeGL) BlendEquationSeparate(modeRGB, modeAlpha uint32) {
	f.record("BlendEquationSeparate", modeRGB, modeAlpha)
}

func (f *fakeGL) BlendEquationSeparatei(buf, modeRGB, modeAlpha uint32) {
	f.record("BlendEquationSeparatei", buf, modeRGB, modeAlpha)
}

func (f *fakeGL) ColorMask(r, g, b, a bool) {
	f.record("ColorMask", r, g, b, a)
}

func (f *fakeGL) ColorMaski(buf uint32, r, g, b, a bool) {
	f.record("ColorMaski", buf, r, g, b, a)
}

func (f *fakeGL) Viewport(x, y, width, height int32) {
	f.record("Viewport", x, y, width, height)
}

func (f *fakeGL) ViewportIndexedf(index uint32, x, y, width, height float32) {
	f.record("ViewportIndexedf", index, x, y, width, height)
}

func (f *fakeGL) DepthRange(near, far float64) {
	f.record("DepthRange", near, far)
}

func (f *fakeGL) DepthRangeIndexed(index uint32, near, far float64) {
	f.record("DepthRangeIndexed", index, near, far)
}

func (f *fakeGL) Scissor(x, y, width, height int32) {
	f.record("Scissor", x, y, width, height)
}

func (f *fakeGL) ScissorIndexed(index uint32, x, y, width, height int32) {
	f.record("ScissorIndexed", index, x, y, width, height)
}

func (f *fakeGL) ClearColor(r, g, b, a float32) {
	f.record("ClearColor", r, g, b, a)
}

func (f *fakeGL) ClearDepth(depth float64) {
	f.record("ClearDepth", depth)
}

func (f *fakeGL) ClearStencil(s int32) {
	f.record("ClearStencil", s)
}

func (f *fakeGL) Clear(mask uint32) {
	f.record("Clear", mask)
}

func (f *fakeGL) PatchParameteri(pname uint32, value int32) {
	f.record("PatchParameteri", pname, value)
}

func (f *fakeGL) ClipControl(origin, depth uint32) {
	f.record("ClipControl", origin, depth)
}

func (f *fakeGL) GenBuffer() uint32 {
	f.record("GenBuffer")
	return f.gen()
}

func (f *fakeGL) CreateBuffer() uint32 {
	f.record("CreateBuffer")
	return f.gen()
}

func (f *fakeGL) DeleteBuffer(buf uint32) {
	f.record("DeleteBuffer", buf)
}

func (f *fakeGL) BindBuffer(target, buf uint32) {
	f.record("BindBuffer", target, buf)
}

func (f *fakeGL) BufferData(target uint32, size int, data []byte, usage uint32) {
	f.record("BufferData", target, size, data, usage)
}

func (f *fakeGL) BufferSubData(target uint32, offset int, data []byte) {
	f.record("BufferSubData", target, offset, data)
}

func (f *fakeGL) NamedBufferData(buf uint32, size int, data []byte, usage uint32) {
	f.record("NamedBufferData", buf, size, data, usage)
}

func (f *fakeGL) NamedBufferSubData(buf uint32, offset int, data []byte) {
	f.record("NamedBufferSubData", buf, offset, data)
}

func (f *fakeGL) BindBufferBase(target, index, buf uint32) {
	f.record("BindBufferBase", target, index, buf)
}

func (f *fakeGL) BindBuffersBase(target, first uint32, bufs []uint32) {
	f.record("BindBuffersBase", target, first, bufs)
}

func (f *fakeGL) MapBufferRange(target uint32, offset, length int, access uint32) []byte {
	f.record("MapBufferRange", target, offset, length, access)
	return make([]byte, length)
}

func (f *fakeGL) MapNamedBufferRange(buf uint32, offset, length int, access uint32) []byte {
	f.record("MapNamedBufferRange", buf, offset, length, access)
	return make([]byte, length)
}

func (f *fakeGL) UnmapBuffer(target uint32) bool {
	f.record("UnmapBuffer", target)
	return true
}

func (f *fakeGL) UnmapNamedBuffer(buf uint32) bool {
	f.record("UnmapNamedBuffer", buf)
	return true
}

func (f *fakeGL) CopyBufferSubData(readTarget, writeTarget uint32, readOffset, writeOffset, size int) {
	f.record("CopyBufferSubData", readTarget, writeTarget, readOffset, writeOffset, size)
}

func (f *fakeGL) CopyNamedBufferSubData(readBuf, writeBuf uint32, readOffset, writeOffset, size int) {
	f.record("CopyNamedBufferSubData", readBuf, writeBuf, readOffset, writeOffset, size)
}

func (f *fakeGL) GenVertexArray() uint32 {
	f.record("GenVertexArray")
	return f.gen()
}

func (f *fakeGL) DeleteVertexArray(vao uint32) {
	f.record("DeleteVertexArray", vao)
}

func (f *fakeGL) BindVertexArray(vao uint32) {
	f.record("BindVertexArray", vao)
}

func (f *fakeGL) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray", index)
}

func (f *fakeGL) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset int) {
	f.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

func (f *fakeGL) VertexAttribIPointer(index uint32, size int32, typ uint32, stride int32, offset int) {
	f.record("VertexAttribIPointer", index, size, typ, stride, offset)
}

func (f *fakeGL) VertexAttribDivisor(index, divisor uint32) {
	f.record("VertexAttribDivisor", index, divisor)
}

func (f *fakeGL) CreateShader(typ uint32) uint32 {
	f.record("CreateShader", typ)
	return f.gen()
}

func (f *fakeGL) ShaderSource(shader uint32, src string) {
	f.record("ShaderSource", shader, src)
}

func (f *fakeGL) CompileShader(shader uint32) {
	f.record("CompileShader", shader)
}

func (f *fakeGL) GetShaderi(shader, pname uint32) int32 {
	f.record("GetShaderi", shader, pname)
	if pname == gl.COMPILE_STATUS && f.compileFail {
		return gl.FALSE
	}
	return gl.TRUE
}

func (f *fakeGL) ShaderInfoLog(shader uint32) string {
	f.record("ShaderInfoLog", shader)
	return "0:1: error"
}

func (f *fakeGL) DeleteShader(shader uint32) {
	f.record("DeleteShader", shader)
}

func (f *fakeGL) CreateProgram() uint32 {
	f.record("CreateProgram")
	return f.gen()
}

func (f *fakeGL) AttachShader(prog, shader uint32) {
	f.record("AttachShader", prog, shader)
}

func (f *fakeGL) DetachShader(prog, shader uint32) {
	f.record("DetachShader", prog, shader)
}

func (f *fakeGL) BindAttribLocation(prog, index uint32, name string) {
	f.record("BindAttribLocation", prog, index, name)
}

func (f *fakeGL) LinkProgram(prog uint32) {
	f.record("LinkProgram", prog)
}

func (f *fakeGL) GetProgrami(prog, pname uint32) int32 {
	f.record("GetProgrami", prog, pname)
	if pname == gl.LINK_STATUS && f.linkFail {
		return gl.FALSE
	}
	return gl.TRUE
}

func (f *fakeGL) ProgramInfoLog(prog uint32) string {
	f.record("ProgramInfoLog", prog)
	return "link error"
}

func (f *fakeGL) DeleteProgram(prog uint32) {
	f.record("DeleteProgram", prog)
}

func (f *fakeGL) UseProgram(prog uint32) {
	f.record("UseProgram", prog)
}

func (f *fakeGL) GetUniformBlockIndex(prog uint32, name string) uint32 {
	f.record("GetUniformBlockIndex", prog, name)
	if i, ok := f.blocks[name]; ok {
		return i
	}
	return gl.INVALID_INDEX
}

func (f *fakeGL) UniformBlockBinding(prog, block, binding uint32) {
	f.record("UniformBlockBinding", prog, block, binding)
}

func (f *fakeGL) GetUniformLocation(prog uint32, name string) int32 {
	f.record("GetUniformLocation", prog, name)
	if l, ok := f.uniforms[name]; ok {
		return l
	}
	return -1
}

func (f *fakeGL) Uniform1i(loc, v int32) {
	f.record("Uniform1i", loc, v)
}

func (f *fakeGL) ProgramUniform1i(prog uint32, loc, v int32) {
	f.record("ProgramUniform1i", prog, loc, v)
}

func (f *fakeGL) GenTexture() uint32 {
	f.record("GenTexture")
	return f.gen()
}

func (f *fakeGL) DeleteTexture(tex uint32) {
	f.record("DeleteTexture", tex)
}

func (f *fakeGL) ActiveTexture(unit uint32) {
	f.record("ActiveTexture", unit)
}

func (f *fakeGL) BindTexture(target, tex uint32) {
	f.record("BindTexture", target, tex)
}

func (f *fakeGL) BindTextureUnit(unit, tex uint32) {
	f.record("BindTextureUnit", unit, tex)
}

func (f *fakeGL) TexImage1D(target uint32, level, ifmt, width int32, format, typ uint32, data []byte) {
	f.record("TexImage1D", target, level, ifmt, width, format, typ, data)
}

func (f *fakeGL) TexImage2D(target uint32, level, ifmt, width, height int32, format, typ uint32, data []byte) {
	f.record("TexImage2D", target, level, ifmt, width, height, format, typ, data)
}

func (f *fakeGL) TexImage3D(target uint32, level, ifmt, width, height, depth int32, format, typ uint32, data []byte) {
	f.record("TexImage3D", target, level, ifmt, width, height, depth, format, typ, data)
}

func (f *fakeGL) TexImage2DMultisample(target uint32, samples int32, ifmt uint32, width, height int32, fixedLocations bool) {
	f.record("TexImage2DMultisample", target, samples, ifmt, width, height, fixedLocations)
}

func (f *fakeGL) TexParameteri(target, pname uint32, v int32) {
	f.record("TexParameteri", target, pname, v)
}

func (f *fakeGL) GenerateMipmap(target uint32) {
	f.record("GenerateMipmap", target)
}

func (f *fakeGL) GenerateTextureMipmap(tex uint32) {
	f.record("GenerateTextureMipmap", tex)
}

func (f *fakeGL) TexBuffer(target, ifmt, buf uint32) {
	f.record("TexBuffer", target, ifmt, buf)
}

func (f *fakeGL) BindImageTexture(unit, tex uint32, level int32, layered bool, layer int32, access, format uint32) {
	f.record("BindImageTexture", unit, tex, level, layered, layer, access, format)
}

func (f *fakeGL) GenSampler() uint32 {
	f.record("GenSampler")
	return f.gen()
}

func (f *fakeGL) DeleteSampler(s uint32) {
	f.record("DeleteSampler", s)
}

func (f *fakeGL) BindSampler(unit, s uint32) {
	f.record("BindSampler", unit, s)
}

func (f *fakeGL) SamplerParameteri(s, pname uint32, v int32) {
	f.record("SamplerParameteri", s, pname, v)
}

func (f *fakeGL) SamplerParameterf(s, pname uint32, v float32) {
	f.record("SamplerParameterf", s, pname, v)
}

func (f *fakeGL) SamplerParameterfv(s, pname uint32, v []float32) {
	f.record("SamplerParameterfv", s, pname, v)
}

func (f *fakeGL) CopyImageSubData(src, srcTarget uint32, srcLevel, srcX, srcY, srcZ int32, dst, dstTarget uint32, dstLevel, dstX, dstY, dstZ int32, width, height, depth int32) {
	f.record("CopyImageSubData", src, srcTarget, srcLevel, srcX, srcY, srcZ, dst, dstTarget, dstLevel, dstX, dstY, dstZ, width, height, depth)
}

func (f *fakeGL) GenFramebuffer() uint32 {
	f.record("GenFramebuffer")
	return f.gen()
}

func (f *fakeGL) DeleteFramebuffer(fbo uint32) {
	f.record("DeleteFramebuffer", fbo)
}

func (f *fakeGL) BindFramebuffer(target, fbo uint32) {
	f.record("BindFramebuffer", target, fbo)
}

func (f *fakeGL) FramebufferTexture2D(target, attachment, texTarget, tex uint32, level int32) {
	f.record("FramebufferTexture2D", target, attachment, texTarget, tex, level)
}

func (f *fakeGL) FramebufferTextureLayer(target, attachment, tex uint32, level, layer int32) {
	f.record("FramebufferTextureLayer", target, attachment, tex, level, layer)
}

func (f *fakeGL) DrawBuffers(bufs []uint32) {
	f.record("DrawBuffers", bufs)
}

func (f *fakeGL) CheckFramebufferStatus(target uint32) uint32 {
	f.record("CheckFramebufferStatus", target)
	return f.fbStatus
}

func (f *fakeGL) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32) {
	f.record("BlitFramebuffer", srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (f *fakeGL) DrawArrays(mode uint32, first, count int32) {
	f.record("DrawArrays", mode, first, count)
}

func (f *fakeGL) DrawArraysInstanced(mode uint32, first, count, instances int32) {
	f.record("DrawArraysInstanced", mode, first, count, instances)
}

func (f *fakeGL) DrawArraysInstancedBaseInstance(mode uint32, first, count, instances int32, baseInstance uint32) {
	f.record("DrawArraysInstancedBaseInstance", mode, first, count, instances, baseInstance)
}

func (f *fakeGL) DrawElementsBaseVertex(mode uint32, count int32, typ uint32, offset int, baseVertex int32) {
	f.record("DrawElementsBaseVertex", mode, count, typ, offset, baseVertex)
}

func (f *fakeGL) DrawElementsInstancedBaseVertex(mode uint32, count int32, typ uint32, offset int, instances, baseVertex int32) {
	f.record("DrawElementsInstancedBaseVertex", mode, count, typ, offset, instances, baseVertex)
}

func (f *fakeGL) DrawElementsInstancedBaseVertexBaseInstance(mode uint32, count int32, typ uint32, offset int, instances, baseVertex int32, baseInstance uint32) {
	f.record("DrawElementsInstancedBaseVertexBaseInstance", mode, count, typ, offset, instances, baseVertex, baseInstance)
}

func (f *fakeGL) DrawArraysIndirect(mode uint32, offset int) {
	f.record("DrawArraysIndirect", mode, offset)
}

func (f *fakeGL) DrawElementsIndirect(mode, typ uint32, offset int) {
	f.record("DrawElementsIndirect", mode, typ, offset)
}

func (f *fakeGL) MultiDrawArraysIndirect(mode uint32, offset int, count, stride int32) {
	f.record("MultiDrawArraysIndirect", mode, offset, count, stride)
}

func (f *fakeGL) MultiDrawElementsIndirect(mode, typ uint32, offset int, count, stride int32) {
	f.record("MultiDrawElementsIndirect", mode, typ, offset, count, stride)
}

func (f *fakeGL) DispatchCompute(x, y, z uint32) {
	f.record("DispatchCompute", x, y, z)
}

func (f *fakeGL) MemoryBarrier(barriers uint32) {
	f.record("MemoryBarrier", barriers)
}

func (f *fakeGL) GenQuery() uint32 {
	f.record("GenQuery")
	return f.gen()
}

func (f *fakeGL) DeleteQuery(q uint32) {
	f.record("DeleteQuery", q)
}

func (f *fakeGL) BeginQuery(target, q uint32) {
	f.record("BeginQuery", target, q)
}

func (f *fakeGL) EndQuery(target uint32) {
	f.record("EndQuery", target)
}

func (f *fakeGL) QueryCounter(q, target uint32) {
	f.record("QueryCounter", q, target)
}

func (f *fakeGL) GetQueryObjectui64(q, pname uint32) uint64 {
	f.record("GetQueryObjectui64", q, pname)
	if pname == gl.QUERY_RESULT_AVAILABLE {
		return f.queryAvailable
	}
	return f.queryResult
}

func (f *fakeGL) DebugMessageCallback(fn func(source, typ, id, severity uint32, msg string)) {
	f.record("DebugMessageCallback")
	f.debugFn = fn
}

func (f *fakeGL) DebugMessageInsert(source, typ, id, severity uint32, msg string) {
	f.record("DebugMessageInsert", source, typ, id, severity, msg)
}

func (f *fakeGL) PushDebugGroup(source, id uint32, msg string) {
	f.record("PushDebugGroup", source, id, msg)
}

func (f *fakeGL) PopDebugGroup() {
	f.record("PopDebugGroup")
}

func (f *fakeGL) Flush() {
	f.record("Flush")
}

func (f *fakeGL) Finish() {
	f.record("Finish")
}

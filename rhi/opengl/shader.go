// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gviegas/rhi/rhi"
)

const glslName = "GLSL"

// glslLanguage implements rhi.ShaderLanguage.
type glslLanguage struct {
	d *Device
}

// Name returns "GLSL".
func (l *glslLanguage) Name() string { return glslName }

// shader implements every rhi shader interface.
type shader struct {
	rhi.ResourceBase
	d  *Device
	id uint32

	// Geometry shaders only.
	gsIn      rhi.GSInputPrimitive
	gsOut     rhi.GSOutputPrimitive
	gsMaxVert int
}

// compile creates a shader object of type typ from src.
func (l *glslLanguage) compile(typ uint32, rt rhi.ResourceType, src string) (*shader, error) {
	d := l.d
	f := d.gl
	id := f.CreateShader(typ)
	if id == 0 {
		return nil, fmt.Errorf("%w: cannot create %v", rhi.ErrShaderCompile, rt)
	}
	f.ShaderSource(id, src)
	f.CompileShader(id)
	if f.GetShaderi(id, gl.COMPILE_STATUS) == gl.FALSE {
		log := f.ShaderInfoLog(id)
		f.DeleteShader(id)
		d.log.Warn("opengl: shader compilation failed", "type", rt, "log", log)
		return nil, fmt.Errorf("%w: %v: %s", rhi.ErrShaderCompile, rt, log)
	}
	s := &shader{d: d, id: id}
	s.InitResource(d, rt, &d.stats, s.destroy)
	return s, nil
}

func (s *shader) destroy() {
	s.d.gl.DeleteShader(s.id)
	s.id = 0
}

// CreateVertexShaderFromSource compiles a vertex shader.
func (l *glslLanguage) CreateVertexShaderFromSource(src string) (rhi.VertexShader, error) {
	s, err := l.compile(gl.VERTEX_SHADER, rhi.RVertexShader, src)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateTessellationControlShaderFromSource compiles a
// tessellation control shader.
func (l *glslLanguage) CreateTessellationControlShaderFromSource(src string) (rhi.TessellationControlShader, error) {
	if l.d.caps.MaximumNumberOfPatchVertices == 0 {
		return nil, fmt.Errorf("%w: tessellation shaders", rhi.ErrUnsupported)
	}
	s, err := l.compile(gl.TESS_CONTROL_SHADER, rhi.RTessellationControlShader, src)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateTessellationEvaluationShaderFromSource compiles a
// tessellation evaluation shader.
func (l *glslLanguage) CreateTessellationEvaluationShaderFromSource(src string) (rhi.TessellationEvaluationShader, error) {
	if l.d.caps.MaximumNumberOfPatchVertices == 0 {
		return nil, fmt.Errorf("%w: tessellation shaders", rhi.ErrUnsupported)
	}
	s, err := l.compile(gl.TESS_EVALUATION_SHADER, rhi.RTessellationEvaluationShader, src)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateGeometryShaderFromSource compiles a geometry shader.
// GLSL declares the primitive types and vertex count in the
// source itself; in, out and maxOutputVertices are checked
// against the device limits and kept for inspection.
func (l *glslLanguage) CreateGeometryShaderFromSource(src string, in rhi.GSInputPrimitive, out rhi.GSOutputPrimitive, maxOutputVertices int) (rhi.GeometryShader, error) {
	if n := l.d.caps.MaximumNumberOfGsOutputVertices; maxOutputVertices > n {
		return nil, fmt.Errorf("%w: %d geometry shader output vertices (limit %d)", rhi.ErrUnsupported, maxOutputVertices, n)
	}
	s, err := l.compile(gl.GEOMETRY_SHADER, rhi.RGeometryShader, src)
	if err != nil {
		return nil, err
	}
	s.gsIn = in
	s.gsOut = out
	s.gsMaxVert = maxOutputVertices
	return s, nil
}

// CreateFragmentShaderFromSource compiles a fragment shader.
func (l *glslLanguage) CreateFragmentShaderFromSource(src string) (rhi.FragmentShader, error) {
	s, err := l.compile(gl.FRAGMENT_SHADER, rhi.RFragmentShader, src)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateComputeShaderFromSource compiles a compute shader.
func (l *glslLanguage) CreateComputeShaderFromSource(src string) (rhi.ComputeShader, error) {
	if !l.d.caps.ComputeShader {
		return nil, fmt.Errorf("%w: compute shaders", rhi.ErrUnsupported)
	}
	s, err := l.compile(gl.COMPUTE_SHADER, rhi.RComputeShader, src)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// asShader converts a shader of the expected type.
func asShader(s rhi.Shader, want rhi.ResourceType) (*shader, error) {
	sh, ok := s.(*shader)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not an OpenGL shader", rhi.ErrProgramLink, s)
	}
	if t := sh.ResourceType(); t != want {
		return nil, fmt.Errorf("%w: have %v, want %v", rhi.ErrProgramLink, t, want)
	}
	return sh, nil
}

// linkProgram links shaders into a new program object.
// Vertex attribute locations are assigned in attrs order.
// The uniform block bindings and sampler units are set from
// desc (see bindProgramResources).
func (d *Device) linkProgram(shaders []*shader, attrs rhi.VertexAttributes, desc *rhi.RootSignatureDescriptor) (uint32, error) {
	f := d.gl
	prog := f.CreateProgram()
	if prog == 0 {
		return 0, fmt.Errorf("%w: cannot create program", rhi.ErrProgramLink)
	}
	for _, s := range shaders {
		f.AttachShader(prog, s.id)
	}
	for i, a := range attrs {
		if a.Name != "" {
			f.BindAttribLocation(prog, uint32(i), a.Name)
		}
	}
	f.LinkProgram(prog)
	for _, s := range shaders {
		f.DetachShader(prog, s.id)
	}
	if f.GetProgrami(prog, gl.LINK_STATUS) == gl.FALSE {
		log := f.ProgramInfoLog(prog)
		f.DeleteProgram(prog)
		d.log.Warn("opengl: program link failed", "log", log)
		return 0, fmt.Errorf("%w: %s", rhi.ErrProgramLink, log)
	}
	if desc != nil {
		d.bindProgramResources(prog, desc)
	}
	return prog, nil
}

// bindProgramResources walks the descriptor tables of desc.
// Uniform blocks named by UBV ranges get consecutive
// bindings, in parameter and range order. This matches the
// bindings that resource groups compute.
// Sampler and image uniforms named by SRV and UAV ranges of
// textures are set to the range's BaseShaderRegister.
// Without separate shader objects the program is made
// current to set them, then the previous one is restored.
func (d *Device) bindProgramResources(prog uint32, desc *rhi.RootSignatureDescriptor) {
	f := d.gl
	binding := uint32(0)
	prev := d.st.prog
	for i := range desc.Parameters {
		p := &desc.Parameters[i]
		if p.Type != rhi.ParamDescriptorTable {
			continue
		}
		for j := range p.DescriptorRanges {
			r := &p.DescriptorRanges[j]
			name := r.BaseShaderRegisterName
			switch r.Type {
			case rhi.RangeUBV:
				if name != "" {
					if idx := f.GetUniformBlockIndex(prog, name); idx != gl.INVALID_INDEX {
						f.UniformBlockBinding(prog, idx, binding)
					} else {
						d.log.Warn("opengl: uniform block not found", "name", name)
					}
				}
				binding++
			case rhi.RangeSRV, rhi.RangeUAV:
				if name == "" || !(r.ResourceType.IsTexture() || r.ResourceType == rhi.RTextureBuffer) {
					continue
				}
				loc := f.GetUniformLocation(prog, name)
				if loc < 0 {
					d.log.Warn("opengl: uniform not found", "name", name)
					continue
				}
				if d.exts[extSeparateShaderObjects] {
					f.ProgramUniform1i(prog, loc, int32(r.BaseShaderRegister))
				} else {
					d.st.useProgram(f, prog)
					f.Uniform1i(loc, int32(r.BaseShaderRegister))
				}
			}
		}
	}
	if d.st.prog == prog && prev != prog {
		if prev == unknown {
			prev = 0
		}
		d.st.useProgram(f, prev)
	}
}

// graphicsProgram implements rhi.GraphicsProgram.
type graphicsProgram struct {
	rhi.ResourceBase
	d       *Device
	id      uint32
	shaders rhi.GraphicsShaders
	linked  []*shader
}

// CreateGraphicsProgram links shaders into a new program.
func (l *glslLanguage) CreateGraphicsProgram(rootSig rhi.RootSignature, attrs rhi.VertexAttributes, shaders rhi.GraphicsShaders) (rhi.GraphicsProgram, error) {
	if shaders.Vertex == nil {
		return nil, fmt.Errorf("%w: no vertex shader", rhi.ErrProgramLink)
	}
	var desc *rhi.RootSignatureDescriptor
	if rootSig != nil {
		desc = rootSig.Descriptor()
	}
	stages := []struct {
		s    rhi.Shader
		want rhi.ResourceType
	}{
		{shaders.Vertex, rhi.RVertexShader},
		{shaders.TessellationControl, rhi.RTessellationControlShader},
		{shaders.TessellationEvaluation, rhi.RTessellationEvaluationShader},
		{shaders.Geometry, rhi.RGeometryShader},
		{shaders.Fragment, rhi.RFragmentShader},
	}
	linked := make([]*shader, 0, len(stages))
	for _, x := range stages {
		if x.s == nil {
			continue
		}
		s, err := asShader(x.s, x.want)
		if err != nil {
			return nil, err
		}
		linked = append(linked, s)
	}
	id, err := l.d.linkProgram(linked, attrs, desc)
	if err != nil {
		return nil, err
	}
	for _, s := range linked {
		s.AddRef()
	}
	p := &graphicsProgram{
		d:       l.d,
		id:      id,
		shaders: shaders,
		linked:  linked,
	}
	p.InitResource(l.d, rhi.RGraphicsProgram, &l.d.stats, p.destroy)
	return p, nil
}

func (p *graphicsProgram) destroy() {
	p.d.deleteProgram(p.id)
	for _, s := range p.linked {
		s.Release()
	}
	p.linked = nil
	p.shaders = rhi.GraphicsShaders{}
}

// Shaders returns the linked shaders.
func (p *graphicsProgram) Shaders() rhi.GraphicsShaders { return p.shaders }

// deleteProgram deletes prog and forgets it if current.
func (d *Device) deleteProgram(prog uint32) {
	if d.st.prog == prog {
		d.st.prog = unknown
	}
	d.gl.DeleteProgram(prog)
}

// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

// Shader is the interface implemented by every shader
// resource.
type Shader interface {
	Resource
}

// VertexShader is a compiled vertex shader.
type VertexShader interface{ Shader }

// TessellationControlShader is a compiled tessellation
// control shader.
type TessellationControlShader interface{ Shader }

// TessellationEvaluationShader is a compiled tessellation
// evaluation shader.
type TessellationEvaluationShader interface{ Shader }

// GeometryShader is a compiled geometry shader.
type GeometryShader interface{ Shader }

// FragmentShader is a compiled fragment shader.
type FragmentShader interface{ Shader }

// ComputeShader is a compiled compute shader.
type ComputeShader interface{ Shader }

// GSInputPrimitive is the type of geometry shader input
// primitives.
type GSInputPrimitive int

// Geometry shader input primitives.
const (
	GSInputPoints GSInputPrimitive = iota
	GSInputLines
	GSInputLinesAdjacency
	GSInputTriangles
	GSInputTrianglesAdjacency
)

// GSOutputPrimitive is the type of geometry shader output
// primitives.
type GSOutputPrimitive int

// Geometry shader output primitives.
const (
	GSOutputPoints GSOutputPrimitive = iota
	GSOutputLineStrip
	GSOutputTriangleStrip
)

// GraphicsShaders is the set of shaders that a graphics
// program links. Vertex is required; the others may be nil.
type GraphicsShaders struct {
	Vertex                 VertexShader
	TessellationControl    TessellationControlShader
	TessellationEvaluation TessellationEvaluationShader
	Geometry               GeometryShader
	Fragment               FragmentShader
}

// GraphicsProgram is the interface that defines a linked
// set of graphics shaders.
// It holds a reference to each of its shaders.
type GraphicsProgram interface {
	Resource

	// Shaders returns the linked shaders.
	Shaders() GraphicsShaders
}

// ShaderLanguage is the interface that compiles shaders
// from source and links graphics programs.
// Compilation and link failures are reported as errors
// wrapping ErrShaderCompile and ErrProgramLink.
type ShaderLanguage interface {
	// Name returns the name of the language (e.g., "GLSL").
	Name() string

	CreateVertexShaderFromSource(src string) (VertexShader, error)
	CreateTessellationControlShaderFromSource(src string) (TessellationControlShader, error)
	CreateTessellationEvaluationShaderFromSource(src string) (TessellationEvaluationShader, error)
	CreateGeometryShaderFromSource(src string, in GSInputPrimitive, out GSOutputPrimitive, maxOutputVertices int) (GeometryShader, error)
	CreateFragmentShaderFromSource(src string) (FragmentShader, error)
	CreateComputeShaderFromSource(src string) (ComputeShader, error)

	// CreateGraphicsProgram links shaders into a program.
	// The root signature determines the binding points of
	// uniform blocks and sampler uniforms, and attrs the
	// locations of vertex inputs.
	CreateGraphicsProgram(rootSig RootSignature, attrs VertexAttributes, shaders GraphicsShaders) (GraphicsProgram, error)
}

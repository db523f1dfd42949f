// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

// VertexAttributeFormat is the type of vertex attribute
// formats.
type VertexAttributeFormat int

// Vertex attribute formats.
const (
	AttrFloat1 VertexAttributeFormat = iota
	AttrFloat2
	AttrFloat3
	AttrFloat4
	AttrR8G8B8A8Unorm
	AttrR8G8B8A8UInt
	AttrShort2
	AttrShort4
	AttrUInt1
)

// Components returns the number of components of f.
func (f VertexAttributeFormat) Components() int {
	switch f {
	case AttrFloat1, AttrUInt1:
		return 1
	case AttrFloat2, AttrShort2:
		return 2
	case AttrFloat3:
		return 3
	}
	return 4
}

// Size returns the size in bytes of f.
func (f VertexAttributeFormat) Size() int {
	switch f {
	case AttrFloat1, AttrUInt1, AttrR8G8B8A8Unorm, AttrR8G8B8A8UInt, AttrShort2:
		return 4
	case AttrFloat2, AttrShort4:
		return 8
	case AttrFloat3:
		return 12
	}
	return 16
}

// VertexAttribute describes one input of a vertex shader.
// The attribute's position in VertexAttributes is its
// shader input location.
type VertexAttribute struct {
	Format VertexAttributeFormat
	// Name is the attribute's name in shader source.
	Name          string
	SemanticName  string
	SemanticIndex int
	// InputSlot is the index of the vertex buffer, within a
	// vertex array, that the attribute is read from.
	InputSlot         int
	AlignedByteOffset int
	StrideInBytes     int
	// InstancesPerElement is zero for per-vertex data.
	InstancesPerElement int
}

// VertexAttributes is an ordered list of vertex attributes.
type VertexAttributes []VertexAttribute

// BufferUsage is the type of buffer usage hints.
type BufferUsage int

// Buffer usages.
const (
	StreamDraw BufferUsage = iota
	StreamRead
	StreamCopy
	StaticDraw
	StaticRead
	StaticCopy
	DynamicDraw
	DynamicRead
	DynamicCopy
)

// IndexBufferFormat is the type of index formats.
type IndexBufferFormat int

// Index formats.
const (
	IndexUnsignedChar IndexBufferFormat = iota
	IndexUnsignedShort
	IndexUnsignedInt
)

// Size returns the size in bytes of one index.
func (f IndexBufferFormat) Size() int {
	switch f {
	case IndexUnsignedChar:
		return 1
	case IndexUnsignedShort:
		return 2
	}
	return 4
}

// Buffer is the interface implemented by every buffer
// resource.
type Buffer interface {
	Resource

	// Size returns the size of the buffer in bytes.
	Size() int
}

// VertexBuffer is the interface that defines a buffer of
// vertex data.
type VertexBuffer interface{ Buffer }

// IndexBuffer is the interface that defines a buffer of
// vertex indices.
type IndexBuffer interface {
	Buffer

	// IndexFormat returns the format of the indices.
	IndexFormat() IndexBufferFormat
}

// UniformBuffer is the interface that defines a buffer
// backing a shader uniform block.
type UniformBuffer interface{ Buffer }

// IndirectBuffer is the interface that defines a buffer of
// indirect draw arguments.
type IndirectBuffer interface{ Buffer }

// TextureBuffer is the interface that defines a buffer that
// shaders read as a one-dimensional texel array.
type TextureBuffer interface {
	Buffer

	// TextureFormat returns the format of the texels.
	TextureFormat() TextureFormat
}

// DrawArguments is the layout of one non-indexed indirect
// draw in an IndirectBuffer.
type DrawArguments struct {
	VertexCountPerInstance uint32
	InstanceCount          uint32
	StartVertexLocation    uint32
	StartInstanceLocation  uint32
}

// DrawIndexedArguments is the layout of one indexed
// indirect draw in an IndirectBuffer.
type DrawIndexedArguments struct {
	IndexCountPerInstance uint32
	InstanceCount         uint32
	StartIndexLocation    uint32
	BaseVertexLocation    int32
	StartInstanceLocation uint32
}

// VertexArray is the interface that defines the binding of
// vertex buffers (and optionally an index buffer) to the
// vertex attributes of a program.
// It holds a reference to every buffer it binds.
type VertexArray interface {
	Resource

	// VertexBuffers returns the bound vertex buffers.
	VertexBuffers() []VertexBuffer

	// IndexBuffer returns the bound index buffer, or nil.
	IndexBuffer() IndexBuffer
}

// BufferManager is the interface that creates buffers.
// data may be nil, in which case the buffer contents are
// undefined. Otherwise it must hold at least size bytes.
type BufferManager interface {
	CreateVertexBuffer(size int, data []byte, usage BufferUsage) (VertexBuffer, error)
	CreateIndexBuffer(size int, data []byte, usage BufferUsage, format IndexBufferFormat) (IndexBuffer, error)
	CreateVertexArray(attrs VertexAttributes, vertexBuffers []VertexBuffer, indexBuffer IndexBuffer) (VertexArray, error)
	CreateUniformBuffer(size int, data []byte, usage BufferUsage) (UniformBuffer, error)
	CreateTextureBuffer(size int, data []byte, usage BufferUsage, format TextureFormat) (TextureBuffer, error)
	CreateIndirectBuffer(size int, data []byte, usage BufferUsage) (IndirectBuffer, error)
}

// MapType is the type of host access to a mapped resource.
type MapType int

// Map types.
const (
	MapRead MapType = iota
	MapWrite
	MapReadWrite
	MapWriteDiscard
	MapWriteNoOverwrite
)

// MappedSubresource is host memory that a mapped resource
// is accessible through. Data is valid until Unmap.
type MappedSubresource struct {
	Data       []byte
	RowPitch   int
	DepthPitch int
}

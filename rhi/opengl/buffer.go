// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gviegas/rhi/rhi"
)

// bufferManager implements rhi.BufferManager.
type bufferManager struct {
	d *Device
}

// buffer implements every rhi buffer interface.
type buffer struct {
	rhi.ResourceBase
	d      *Device
	id     uint32
	size   int
	usage  rhi.BufferUsage
	mapped bool

	// Index buffers only.
	indexFmt rhi.IndexBufferFormat

	// Texture buffers only.
	texFmt rhi.TextureFormat
	tex    uint32
}

// newBuffer creates a buffer object of size bytes.
// Unless it is nil, data must hold at least size bytes.
func (d *Device) newBuffer(typ rhi.ResourceType, size int, data []byte, usage rhi.BufferUsage) (*buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v of size %d", rhi.ErrInvalidDescriptor, typ, size)
	}
	if data != nil {
		if len(data) < size {
			return nil, fmt.Errorf("%w: %d bytes of data for %v of size %d", rhi.ErrInvalidDescriptor, len(data), typ, size)
		}
		data = data[:size]
	}
	f := d.gl
	b := &buffer{
		d:     d,
		size:  size,
		usage: usage,
	}
	if d.exts[extDirectStateAccess] {
		b.id = f.CreateBuffer()
		f.NamedBufferData(b.id, size, data, convBufferUsage(usage))
	} else {
		// The copy write target is not part of any other
		// state, so binding it has no side effects.
		b.id = f.GenBuffer()
		f.BindBuffer(gl.COPY_WRITE_BUFFER, b.id)
		f.BufferData(gl.COPY_WRITE_BUFFER, size, data, convBufferUsage(usage))
	}
	b.InitResource(d, typ, &d.stats, b.destroy)
	return b, nil
}

func (b *buffer) destroy() {
	f := b.d.gl
	if b.tex != 0 {
		f.DeleteTexture(b.tex)
		b.tex = 0
	}
	f.DeleteBuffer(b.id)
	b.id = 0
}

// Size returns the size of the buffer in bytes.
func (b *buffer) Size() int { return b.size }

// IndexFormat returns the format of the indices.
func (b *buffer) IndexFormat() rhi.IndexBufferFormat { return b.indexFmt }

// TextureFormat returns the format of the texels.
func (b *buffer) TextureFormat() rhi.TextureFormat { return b.texFmt }

// upload copies data into the buffer at offset.
// It panics if data does not fit.
func (b *buffer) upload(offset int, data []byte) {
	if offset < 0 || offset+len(data) > b.size {
		panic(fmt.Sprintf("opengl: %d bytes at offset %d overflow %v of size %d", len(data), offset, b.ResourceType(), b.size))
	}
	if len(data) == 0 {
		return
	}
	f := b.d.gl
	if b.d.exts[extDirectStateAccess] {
		f.NamedBufferSubData(b.id, offset, data)
	} else {
		f.BindBuffer(gl.COPY_WRITE_BUFFER, b.id)
		f.BufferSubData(gl.COPY_WRITE_BUFFER, offset, data)
	}
}

// asBuffer converts a buffer of the expected type.
// It panics if r is not one.
func asBuffer(r rhi.Resource, want rhi.ResourceType) *buffer {
	b, ok := r.(*buffer)
	if !ok || b.ResourceType() != want {
		panic(fmt.Sprintf("opengl: %T is not an OpenGL %v", r, want))
	}
	return b
}

// CreateVertexBuffer creates a new vertex buffer.
func (m *bufferManager) CreateVertexBuffer(size int, data []byte, usage rhi.BufferUsage) (rhi.VertexBuffer, error) {
	b, err := m.d.newBuffer(rhi.RVertexBuffer, size, data, usage)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CreateIndexBuffer creates a new index buffer.
func (m *bufferManager) CreateIndexBuffer(size int, data []byte, usage rhi.BufferUsage, format rhi.IndexBufferFormat) (rhi.IndexBuffer, error) {
	if format < rhi.IndexUnsignedChar || format > rhi.IndexUnsignedInt {
		return nil, fmt.Errorf("%w: index format %d", rhi.ErrInvalidDescriptor, format)
	}
	b, err := m.d.newBuffer(rhi.RIndexBuffer, size, data, usage)
	if err != nil {
		return nil, err
	}
	b.indexFmt = format
	return b, nil
}

// CreateUniformBuffer creates a new uniform buffer.
func (m *bufferManager) CreateUniformBuffer(size int, data []byte, usage rhi.BufferUsage) (rhi.UniformBuffer, error) {
	if lim := m.d.caps.MaximumUniformBufferSize; lim > 0 && size > lim {
		return nil, fmt.Errorf("%w: uniform buffer of size %d (limit %d)", rhi.ErrUnsupported, size, lim)
	}
	b, err := m.d.newBuffer(rhi.RUniformBuffer, size, data, usage)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CreateTextureBuffer creates a new texture buffer.
func (m *bufferManager) CreateTextureBuffer(size int, data []byte, usage rhi.BufferUsage, format rhi.TextureFormat) (rhi.TextureBuffer, error) {
	tf, ok := convTextureFormat(format)
	if !ok || format.IsDepth() {
		return nil, fmt.Errorf("%w: texture buffer format %d", rhi.ErrUnsupported, format)
	}
	b, err := m.d.newBuffer(rhi.RTextureBuffer, size, data, usage)
	if err != nil {
		return nil, err
	}
	f := m.d.gl
	b.texFmt = format
	b.tex = f.GenTexture()
	m.d.bindScratchTexture(gl.TEXTURE_BUFFER, b.tex)
	f.TexBuffer(gl.TEXTURE_BUFFER, uint32(tf.internal), b.id)
	return b, nil
}

// CreateIndirectBuffer creates a new indirect buffer.
func (m *bufferManager) CreateIndirectBuffer(size int, data []byte, usage rhi.BufferUsage) (rhi.IndirectBuffer, error) {
	if !m.d.exts[extDrawIndirect] {
		return nil, fmt.Errorf("%w: indirect buffers", rhi.ErrUnsupported)
	}
	b, err := m.d.newBuffer(rhi.RIndirectBuffer, size, data, usage)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// vertexArray implements rhi.VertexArray.
type vertexArray struct {
	rhi.ResourceBase
	d   *Device
	id  uint32
	vbs []rhi.VertexBuffer
	ib  *buffer
}

// CreateVertexArray creates a new vertex array.
// Attribute i is read from vertexBuffers[attrs[i].InputSlot]
// and bound to shader input location i.
func (m *bufferManager) CreateVertexArray(attrs rhi.VertexAttributes, vertexBuffers []rhi.VertexBuffer, indexBuffer rhi.IndexBuffer) (rhi.VertexArray, error) {
	d := m.d
	f := d.gl
	bufs := make([]*buffer, len(vertexBuffers))
	for i, vb := range vertexBuffers {
		if vb == nil {
			return nil, fmt.Errorf("%w: nil vertex buffer at slot %d", rhi.ErrInvalidDescriptor, i)
		}
		bufs[i] = asBuffer(vb, rhi.RVertexBuffer)
	}
	for i, a := range attrs {
		if a.InputSlot < 0 || a.InputSlot >= len(bufs) {
			return nil, fmt.Errorf("%w: attribute %d reads input slot %d of %d", rhi.ErrInvalidDescriptor, i, a.InputSlot, len(bufs))
		}
	}
	var ib *buffer
	if indexBuffer != nil {
		ib = asBuffer(indexBuffer, rhi.RIndexBuffer)
	}

	va := &vertexArray{
		d:   d,
		id:  f.GenVertexArray(),
		vbs: append([]rhi.VertexBuffer(nil), vertexBuffers...),
		ib:  ib,
	}
	d.st.bindVertexArray(f, va.id)
	for i, a := range attrs {
		loc := uint32(i)
		size, typ, normalized, integer := convAttrFormat(a.Format)
		f.BindBuffer(gl.ARRAY_BUFFER, bufs[a.InputSlot].id)
		f.EnableVertexAttribArray(loc)
		if integer {
			f.VertexAttribIPointer(loc, size, typ, int32(a.StrideInBytes), a.AlignedByteOffset)
		} else {
			f.VertexAttribPointer(loc, size, typ, normalized, int32(a.StrideInBytes), a.AlignedByteOffset)
		}
		if a.InstancesPerElement > 0 {
			f.VertexAttribDivisor(loc, uint32(a.InstancesPerElement))
		}
	}
	if ib != nil {
		f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id)
		ib.AddRef()
	}
	for _, b := range bufs {
		b.AddRef()
	}
	d.bindVertexArray()
	va.InitResource(d, rhi.RVertexArray, &d.stats, va.destroy)
	return va, nil
}

func (va *vertexArray) destroy() {
	d := va.d
	if d.st.vao == va.id {
		d.st.vao = unknown
	}
	d.gl.DeleteVertexArray(va.id)
	for _, vb := range va.vbs {
		vb.Release()
	}
	if va.ib != nil {
		va.ib.Release()
	}
	va.vbs = nil
	va.ib = nil
}

// VertexBuffers returns the bound vertex buffers.
func (va *vertexArray) VertexBuffers() []rhi.VertexBuffer { return va.vbs }

// IndexBuffer returns the bound index buffer, or nil.
func (va *vertexArray) IndexBuffer() rhi.IndexBuffer {
	if va.ib == nil {
		return nil
	}
	return va.ib
}

// Map maps a buffer into host memory.
// subresource must be zero. Textures cannot be mapped.
func (d *Device) Map(res rhi.Resource, subresource int, typ rhi.MapType) (rhi.MappedSubresource, error) {
	b, ok := res.(*buffer)
	if !ok || subresource != 0 {
		return rhi.MappedSubresource{}, fmt.Errorf("%w: %T subresource %d", rhi.ErrNotMappable, res, subresource)
	}
	if b.mapped {
		return rhi.MappedSubresource{}, fmt.Errorf("%w: %v already mapped", rhi.ErrNotMappable, b.ResourceType())
	}
	f := d.gl
	access := convMapType(typ)
	var data []byte
	if d.exts[extDirectStateAccess] {
		data = f.MapNamedBufferRange(b.id, 0, b.size, access)
	} else {
		f.BindBuffer(gl.COPY_WRITE_BUFFER, b.id)
		data = f.MapBufferRange(gl.COPY_WRITE_BUFFER, 0, b.size, access)
	}
	if data == nil {
		return rhi.MappedSubresource{}, fmt.Errorf("%w: %v mapping failed", rhi.ErrNotMappable, b.ResourceType())
	}
	b.mapped = true
	return rhi.MappedSubresource{Data: data, RowPitch: b.size, DepthPitch: b.size}, nil
}

// Unmap unmaps a buffer mapped by Map.
func (d *Device) Unmap(res rhi.Resource, subresource int) {
	b, ok := res.(*buffer)
	if !ok || subresource != 0 || !b.mapped {
		d.log.Warn("opengl: Unmap of resource not mapped", "type", fmt.Sprintf("%T", res))
		return
	}
	f := d.gl
	var valid bool
	if d.exts[extDirectStateAccess] {
		valid = f.UnmapNamedBuffer(b.id)
	} else {
		f.BindBuffer(gl.COPY_WRITE_BUFFER, b.id)
		valid = f.UnmapBuffer(gl.COPY_WRITE_BUFFER)
	}
	if !valid {
		d.log.Warn("opengl: buffer contents lost while mapped", "type", b.ResourceType())
	}
	b.mapped = false
}

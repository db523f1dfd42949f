// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gviegas/rhi/rhi"
)

// convTopology converts a rhi.PrimitiveTopology into a GL
// primitive mode. For patch lists, it also returns the
// number of vertices per patch.
func convTopology(t rhi.PrimitiveTopology) (mode uint32, patchVertices int, err error) {
	switch t {
	case rhi.PointList:
		mode = gl.POINTS
	case rhi.LineList:
		mode = gl.LINES
	case rhi.LineStrip:
		mode = gl.LINE_STRIP
	case rhi.TriangleList:
		mode = gl.TRIANGLES
	case rhi.TriangleStrip:
		mode = gl.TRIANGLE_STRIP
	case rhi.LineListAdj:
		mode = gl.LINES_ADJACENCY
	case rhi.LineStripAdj:
		mode = gl.LINE_STRIP_ADJACENCY
	case rhi.TriangleListAdj:
		mode = gl.TRIANGLES_ADJACENCY
	case rhi.TriangleStripAdj:
		mode = gl.TRIANGLE_STRIP_ADJACENCY
	default:
		if !t.IsPatchList() {
			err = fmt.Errorf("%w: unknown primitive topology %d", rhi.ErrInvalidDescriptor, t)
			return
		}
		mode = gl.PATCHES
		patchVertices = t.VerticesPerPatch()
	}
	return
}

func convCmpFunc(f rhi.ComparisonFunc) uint32 {
	switch f {
	case rhi.CmpNever:
		return gl.NEVER
	case rhi.CmpLess:
		return gl.LESS
	case rhi.CmpEqual:
		return gl.EQUAL
	case rhi.CmpLessEqual:
		return gl.LEQUAL
	case rhi.CmpGreater:
		return gl.GREATER
	case rhi.CmpNotEqual:
		return gl.NOTEQUAL
	case rhi.CmpGreaterEqual:
		return gl.GEQUAL
	}
	return gl.ALWAYS
}

func convStencilOp(op rhi.StencilOp) uint32 {
	switch op {
	case rhi.StencilZero:
		return gl.ZERO
	case rhi.StencilReplace:
		return gl.REPLACE
	case rhi.StencilIncrSat:
		return gl.INCR
	case rhi.StencilDecrSat:
		return gl.DECR
	case rhi.StencilInvert:
		return gl.INVERT
	case rhi.StencilIncr:
		return gl.INCR_WRAP
	case rhi.StencilDecr:
		return gl.DECR_WRAP
	}
	return gl.KEEP
}

func convBlend(b rhi.Blend) uint32 {
	switch b {
	case rhi.BlendZero:
		return gl.ZERO
	case rhi.BlendOne:
		return gl.ONE
	case rhi.BlendSrcColor:
		return gl.SRC_COLOR
	case rhi.BlendInvSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case rhi.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case rhi.BlendInvSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case rhi.BlendDestAlpha:
		return gl.DST_ALPHA
	case rhi.BlendInvDestAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	case rhi.BlendDestColor:
		return gl.DST_COLOR
	case rhi.BlendInvDestColor:
		return gl.ONE_MINUS_DST_COLOR
	case rhi.BlendSrcAlphaSat:
		return gl.SRC_ALPHA_SATURATE
	case rhi.BlendFactor:
		return gl.CONSTANT_COLOR
	case rhi.BlendInvBlendFactor:
		return gl.ONE_MINUS_CONSTANT_COLOR
	}
	return gl.ONE
}

func convBlendOp(op rhi.BlendOp) uint32 {
	switch op {
	case rhi.BlendOpSubtract:
		return gl.FUNC_SUBTRACT
	case rhi.BlendOpRevSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case rhi.BlendOpMin:
		return gl.MIN
	case rhi.BlendOpMax:
		return gl.MAX
	}
	return gl.FUNC_ADD
}

func convAddressMode(m rhi.TextureAddressMode) int32 {
	switch m {
	case rhi.AddressMirror:
		return gl.MIRRORED_REPEAT
	case rhi.AddressClamp:
		return gl.CLAMP_TO_EDGE
	case rhi.AddressBorder:
		return gl.CLAMP_TO_BORDER
	case rhi.AddressMirrorOnce:
		return gl.MIRROR_CLAMP_TO_EDGE
	}
	return gl.REPEAT
}

// convFilter returns the minification and magnification
// filters of f.
func convFilter(f rhi.Filter) (minFilter, magFilter int32) {
	minify, magnify, mipmap := f.Linear()
	switch {
	case minify && mipmap:
		minFilter = gl.LINEAR_MIPMAP_LINEAR
	case minify:
		minFilter = gl.LINEAR_MIPMAP_NEAREST
	case mipmap:
		minFilter = gl.NEAREST_MIPMAP_LINEAR
	default:
		minFilter = gl.NEAREST_MIPMAP_NEAREST
	}
	if magnify {
		magFilter = gl.LINEAR
	} else {
		magFilter = gl.NEAREST
	}
	return
}

func convBufferUsage(u rhi.BufferUsage) uint32 {
	switch u {
	case rhi.StreamDraw:
		return gl.STREAM_DRAW
	case rhi.StreamRead:
		return gl.STREAM_READ
	case rhi.StreamCopy:
		return gl.STREAM_COPY
	case rhi.StaticRead:
		return gl.STATIC_READ
	case rhi.StaticCopy:
		return gl.STATIC_COPY
	case rhi.DynamicDraw:
		return gl.DYNAMIC_DRAW
	case rhi.DynamicRead:
		return gl.DYNAMIC_READ
	case rhi.DynamicCopy:
		return gl.DYNAMIC_COPY
	}
	return gl.STATIC_DRAW
}

func convIndexFormat(f rhi.IndexBufferFormat) uint32 {
	switch f {
	case rhi.IndexUnsignedChar:
		return gl.UNSIGNED_BYTE
	case rhi.IndexUnsignedShort:
		return gl.UNSIGNED_SHORT
	}
	return gl.UNSIGNED_INT
}

// convAttrFormat returns the size, component type and
// normalization of a vertex attribute format. integer
// indicates that the attribute must be specified with
// VertexAttribIPointer.
func convAttrFormat(f rhi.VertexAttributeFormat) (size int32, typ uint32, normalized, integer bool) {
	switch f {
	case rhi.AttrFloat1, rhi.AttrFloat2, rhi.AttrFloat3, rhi.AttrFloat4:
		return int32(f.Components()), gl.FLOAT, false, false
	case rhi.AttrR8G8B8A8Unorm:
		return 4, gl.UNSIGNED_BYTE, true, false
	case rhi.AttrR8G8B8A8UInt:
		return 4, gl.UNSIGNED_BYTE, false, true
	case rhi.AttrShort2:
		return 2, gl.SHORT, false, false
	case rhi.AttrShort4:
		return 4, gl.SHORT, false, false
	case rhi.AttrUInt1:
		return 1, gl.UNSIGNED_INT, false, true
	}
	panic(fmt.Sprintf("opengl: unknown vertex attribute format %d", f))
}

// texFormat is the GL description of a rhi.TextureFormat.
type texFormat struct {
	internal int32
	format   uint32
	typ      uint32
}

func convTextureFormat(f rhi.TextureFormat) (texFormat, bool) {
	switch f {
	case rhi.R8:
		return texFormat{gl.R8, gl.RED, gl.UNSIGNED_BYTE}, true
	case rhi.R8G8B8A8:
		return texFormat{gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE}, true
	case rhi.R8G8B8A8SRGB:
		return texFormat{gl.SRGB8_ALPHA8, gl.RGBA, gl.UNSIGNED_BYTE}, true
	case rhi.B8G8R8A8:
		return texFormat{gl.RGBA8, gl.BGRA, gl.UNSIGNED_BYTE}, true
	case rhi.R11G11B10F:
		return texFormat{gl.R11F_G11F_B10F, gl.RGB, gl.UNSIGNED_INT_10F_11F_11F_REV}, true
	case rhi.R16G16B16A16F:
		return texFormat{gl.RGBA16F, gl.RGBA, gl.HALF_FLOAT}, true
	case rhi.R32G32B32A32F:
		return texFormat{gl.RGBA32F, gl.RGBA, gl.FLOAT}, true
	case rhi.R32UInt:
		return texFormat{gl.R32UI, gl.RED_INTEGER, gl.UNSIGNED_INT}, true
	case rhi.D32Float:
		return texFormat{gl.DEPTH_COMPONENT32F, gl.DEPTH_COMPONENT, gl.FLOAT}, true
	}
	return texFormat{}, false
}

func convMapType(t rhi.MapType) uint32 {
	switch t {
	case rhi.MapRead:
		return gl.MAP_READ_BIT
	case rhi.MapReadWrite:
		return gl.MAP_READ_BIT | gl.MAP_WRITE_BIT
	case rhi.MapWriteDiscard:
		return gl.MAP_WRITE_BIT | gl.MAP_INVALIDATE_BUFFER_BIT
	case rhi.MapWriteNoOverwrite:
		return gl.MAP_WRITE_BIT | gl.MAP_UNSYNCHRONIZED_BIT
	}
	return gl.MAP_WRITE_BIT
}

func convClearFlags(f rhi.ClearFlags) (mask uint32) {
	if f&rhi.ClearColor != 0 {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if f&rhi.ClearDepth != 0 {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if f&rhi.ClearStencil != 0 {
		mask |= gl.STENCIL_BUFFER_BIT
	}
	return
}

func convQueryType(t rhi.QueryType) uint32 {
	switch t {
	case rhi.QueryPipelineStatistics:
		return gl.PRIMITIVES_GENERATED
	case rhi.QueryTimestamp:
		return gl.TIMESTAMP
	}
	return gl.SAMPLES_PASSED
}

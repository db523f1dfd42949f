// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testResource struct {
	ResourceBase
	destroyed int
}

func newTestResource(typ ResourceType, stats *Statistics) *testResource {
	r := new(testResource)
	r.InitResource(nil, typ, stats, func() { r.destroyed++ })
	return r
}

func TestRefCounter(t *testing.T) {
	var n int
	var r RefCounter
	r.Init(func() { n++ })
	assert.Equal(t, int32(1), r.RefCount())
	assert.Equal(t, int32(2), r.AddRef())
	assert.Equal(t, int32(3), r.AddRef())
	assert.Equal(t, int32(2), r.Release())
	assert.Equal(t, int32(1), r.Release())
	assert.Zero(t, n, "destroyed while referenced")
	assert.Equal(t, int32(0), r.Release())
	assert.Equal(t, 1, n, "destroy calls")
	assert.PanicsWithValue(t, "rhi: release of destroyed resource", func() { r.Release() })
	assert.Equal(t, 1, n, "destroy calls after over-release")
}

func TestRefCounterAddRefDestroyed(t *testing.T) {
	var r RefCounter
	r.Init(nil)
	r.Release()
	assert.Panics(t, func() { r.AddRef() })
}

func TestResourceBase(t *testing.T) {
	var stats Statistics
	a := newTestResource(RVertexBuffer, &stats)
	b := newTestResource(RVertexBuffer, &stats)
	c := newTestResource(RTexture2D, &stats)
	require.Equal(t, 2, stats.Count(RVertexBuffer))
	require.Equal(t, 1, stats.Count(RTexture2D))
	require.Equal(t, 3, stats.Total())

	assert.Equal(t, RVertexBuffer, a.ResourceType())
	assert.Nil(t, a.Device())
	a.SetDebugName("positions")
	assert.Equal(t, "positions", a.DebugName())

	a.AddRef()
	a.Release()
	assert.Equal(t, 2, stats.Count(RVertexBuffer))
	a.Release()
	assert.Equal(t, 1, a.destroyed)
	assert.Equal(t, 1, stats.Count(RVertexBuffer))
	b.Release()
	c.Release()
	assert.Zero(t, stats.Total())
}

func TestResourceTypeString(t *testing.T) {
	for i := 0; i < ResourceTypeCount; i++ {
		assert.NotEmpty(t, ResourceType(i).String())
	}
	assert.Equal(t, "UniformBuffer", RUniformBuffer.String())
	assert.Equal(t, "ResourceType(-1)", ResourceType(-1).String())
	assert.True(t, RTextureCube.IsTexture())
	assert.False(t, RTextureCube.IsBuffer())
	assert.True(t, RIndirectBuffer.IsBuffer())
	assert.True(t, RComputeShader.IsShader())
	assert.False(t, RGraphicsProgram.IsShader())
}

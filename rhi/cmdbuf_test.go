// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Dispatcher that logs the commands it
// executes.
type recorder struct {
	tab DispatchTable
	log []Command
}

func newRecorder() *recorder {
	r := new(recorder)
	for i := range r.tab {
		r.tab[i] = func(c Command) { r.log = append(r.log, c) }
	}
	return r
}

func (r *recorder) DispatchTable() *DispatchTable { return &r.tab }

func (r *recorder) types() []CommandType {
	s := make([]CommandType, len(r.log))
	for i, c := range r.log {
		s[i] = c.CommandType()
	}
	return s
}

func TestCommandBufferEmpty(t *testing.T) {
	var cb CommandBuffer
	assert.True(t, cb.IsEmpty())
	cb.Clear()
	assert.True(t, cb.IsEmpty())
	assert.Zero(t, cb.Len())

	r := newRecorder()
	cb.Submit(r)
	cb.SubmitAndClear(r)
	assert.Empty(t, r.log)

	// An empty buffer does not even look at the table.
	cb.Submit(nilTable{})
}

type nilTable struct{}

func (nilTable) DispatchTable() *DispatchTable { panic("DispatchTable called") }

func TestCommandBufferOrder(t *testing.T) {
	var cb CommandBuffer
	cb.SetGraphicsRootSignature(nil)
	cb.SetGraphicsPipelineState(nil)
	cb.SetGraphicsResourceGroup(0, nil)
	cb.SetGraphicsViewportAndScissorRectangle(0, 0, 640, 480)
	cb.ClearGraphics(ClearColorDepth, [4]float32{0, 0, 0, 1}, 1, 0)
	cb.DrawGraphics(3, 1, 0, 0)
	require.Equal(t, 7, cb.Len())

	r := newRecorder()
	cb.Submit(r)
	want := []CommandType{
		CmdSetGraphicsRootSignature,
		CmdSetGraphicsPipelineState,
		CmdSetGraphicsResourceGroup,
		CmdSetGraphicsViewports,
		CmdSetGraphicsScissorRectangles,
		CmdClearGraphics,
		CmdDrawGraphics,
	}
	assert.Equal(t, want, r.types())

	vp := r.log[3].(*SetGraphicsViewportsCmd).Viewports
	require.Len(t, vp, 1)
	assert.Equal(t, Viewport{Width: 640, Height: 480, MaxDepth: 1}, vp[0])
	sc := r.log[4].(*SetGraphicsScissorRectanglesCmd).ScissorRectangles
	assert.Equal(t, []ScissorRectangle{{BottomRightX: 640, BottomRightY: 480}}, sc)
	d := r.log[6].(*DrawGraphicsCmd)
	assert.Equal(t, DrawGraphicsCmd{VertexCountPerInstance: 3, InstanceCount: 1}, *d)

	// Replay keeps the contents.
	assert.False(t, cb.IsEmpty())
	cb.SubmitAndClear(r)
	assert.Equal(t, append(want, want...), r.types())
	assert.True(t, cb.IsEmpty())
}

func TestCommandBufferNested(t *testing.T) {
	var inner, outer CommandBuffer
	inner.SetGraphicsVertexArray(nil)
	inner.DrawIndexedGraphics(6, 1, 0, 0, 0)

	outer.SetGraphicsRenderTarget(nil)
	outer.DispatchCommandBuffer(&inner)
	outer.DispatchCommandBuffer(&inner)
	outer.EndDebugEvent()

	r := newRecorder()
	outer.Submit(r)
	want := []CommandType{
		CmdSetGraphicsRenderTarget,
		CmdSetGraphicsVertexArray,
		CmdDrawIndexedGraphics,
		CmdSetGraphicsVertexArray,
		CmdDrawIndexedGraphics,
		CmdEndDebugEvent,
	}
	assert.Equal(t, want, r.types())
	assert.Equal(t, 2, inner.Len(), "nested buffer changed")

	// Two levels.
	var top CommandBuffer
	top.DispatchCommandBuffer(&outer)
	r = newRecorder()
	top.Submit(r)
	assert.Equal(t, want, r.types())
}

func TestCommandBufferSelfNesting(t *testing.T) {
	var a, b CommandBuffer
	assert.Panics(t, func() { a.DispatchCommandBuffer(&a) })
	assert.Panics(t, func() { a.DispatchCommandBuffer(nil) })

	a.SetDebugMarker("a")
	a.DispatchCommandBuffer(&b)
	b.DispatchCommandBuffer(&a)
	assert.Panics(t, func() { a.Submit(newRecorder()) })

	// Flags are reset after the panic.
	b.Clear()
	r := newRecorder()
	a.Submit(r)
	assert.Equal(t, []CommandType{CmdSetDebugMarker}, r.types())
}

func TestCommandBufferMissingDispatch(t *testing.T) {
	var cb CommandBuffer
	cb.DispatchCompute(1, 1, 1)
	r := newRecorder()
	r.tab[CmdDispatchCompute] = nil
	assert.Panics(t, func() { cb.Submit(r) })
}

func TestCommandBufferCopiesData(t *testing.T) {
	var cb CommandBuffer
	data := []byte{1, 2, 3, 4}
	cb.CopyUniformBufferData(nil, data)
	vps := []Viewport{{Width: 1}}
	cb.SetGraphicsViewports(vps...)
	data[0] = 255
	vps[0].Width = 2

	c := cb.Commands()
	assert.Equal(t, []byte{1, 2, 3, 4}, c[0].(*CopyUniformBufferDataCmd).Data)
	assert.Equal(t, float32(1), c[1].(*SetGraphicsViewportsCmd).Viewports[0].Width)
}

func TestCommandBufferQueries(t *testing.T) {
	var cb CommandBuffer
	cb.ResetAndBeginQuery(nil, 2)
	cb.EndQuery(nil, 2)
	cb.WriteTimestampQuery(nil, 3)
	r := newRecorder()
	cb.Submit(r)
	assert.Equal(t, []CommandType{CmdResetQueryPool, CmdBeginQuery, CmdEndQuery, CmdWriteTimestampQuery}, r.types())
	assert.Equal(t, ResetQueryPoolCmd{FirstQuery: 2, NumberOfQueries: 1}, *r.log[0].(*ResetQueryPoolCmd))
}

func TestCommandTypeString(t *testing.T) {
	for i := 0; i < CommandTypeCount; i++ {
		assert.NotContains(t, CommandType(i).String(), "CommandType(")
	}
	assert.Equal(t, "DrawGraphics", CmdDrawGraphics.String())
}

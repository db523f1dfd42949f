// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gviegas/rhi/rhi"
)

func testQueryPool(t *testing.T, d *Device, typ rhi.QueryType, n int) *queryPool {
	t.Helper()
	qp, err := d.CreateQueryPool(typ, n)
	if err != nil {
		t.Fatalf("Device.CreateQueryPool:\nhave %v\nwant nil", err)
	}
	return qp.(*queryPool)
}

func TestQueryPoolResults(t *testing.T) {
	f := newFakeGL()
	d := newTestDevice(t, f)
	qp := testQueryPool(t, d, rhi.QueryOcclusion, 4)
	defer qp.Release()
	if qp.QueryType() != rhi.QueryOcclusion || qp.NumberOfQueries() != 4 {
		t.Fatalf("queryPool: type/count:\nhave %v/%d\nwant %v/4", qp.QueryType(), qp.NumberOfQueries(), rhi.QueryOcclusion)
	}

	// Not issued.
	if _, err := d.QueryPoolResults(qp, 0, 1, rhi.QueryResultWait); !errors.Is(err, rhi.ErrQueryUnavailable) {
		t.Fatalf("Device.QueryPoolResults (not issued):\nhave %v\nwant %v", err, rhi.ErrQueryUnavailable)
	}

	var cb rhi.CommandBuffer
	cb.ResetAndBeginQuery(qp, 1)
	cb.EndQuery(qp, 1)
	f.reset()
	d.Submit(&cb)
	for _, want := range [...]string{
		fmt.Sprintf("BeginQuery(%d, %d)", gl.SAMPLES_PASSED, qp.ids[1]),
		fmt.Sprintf("EndQuery(%d)", gl.SAMPLES_PASSED),
	} {
		if f.index(want) < 0 {
			t.Errorf("Device.Submit: missing call\n%s\nin\n%v", want, f.calls)
		}
	}

	// Pending.
	f.queryAvailable = 0
	if _, err := d.QueryPoolResults(qp, 1, 1, 0); !errors.Is(err, rhi.ErrQueryUnavailable) {
		t.Fatalf("Device.QueryPoolResults (pending):\nhave %v\nwant %v", err, rhi.ErrQueryUnavailable)
	}
	// Waiting ignores availability.
	res, err := d.QueryPoolResults(qp, 1, 1, rhi.QueryResultWait)
	if err != nil {
		t.Fatalf("Device.QueryPoolResults (wait):\nhave %v\nwant nil", err)
	}
	if want := []uint64{42}; !slices.Equal(res, want) {
		t.Fatalf("Device.QueryPoolResults (wait):\nhave %v\nwant %v", res, want)
	}
	f.queryAvailable = 1
	if _, err := d.QueryPoolResults(qp, 1, 1, 0); err != nil {
		t.Fatalf("Device.QueryPoolResults (available):\nhave %v\nwant nil", err)
	}

	// A range with an unissued query fails as a whole.
	if res, err := d.QueryPoolResults(qp, 1, 2, rhi.QueryResultWait); !errors.Is(err, rhi.ErrQueryUnavailable) || res != nil {
		t.Fatalf("Device.QueryPoolResults (partial):\nhave %v, %v\nwant nil, %v", res, err, rhi.ErrQueryUnavailable)
	}
	if _, err := d.QueryPoolResults(qp, 3, 2, rhi.QueryResultWait); !errors.Is(err, rhi.ErrInvalidDescriptor) {
		t.Fatalf("Device.QueryPoolResults (out of range):\nhave %v\nwant %v", err, rhi.ErrInvalidDescriptor)
	}

	// Reset.
	cb.Clear()
	cb.ResetQueryPool(qp, 0, 4)
	d.Submit(&cb)
	if _, err := d.QueryPoolResults(qp, 1, 1, rhi.QueryResultWait); !errors.Is(err, rhi.ErrQueryUnavailable) {
		t.Fatalf("Device.QueryPoolResults (reset):\nhave %v\nwant %v", err, rhi.ErrQueryUnavailable)
	}
}

func TestTimestampQuery(t *testing.T) {
	f := newFakeGL()
	d := newTestDevice(t, f)
	qp := testQueryPool(t, d, rhi.QueryTimestamp, 2)
	defer qp.Release()

	var cb rhi.CommandBuffer
	cb.ResetQueryPool(qp, 0, 2)
	cb.WriteTimestampQuery(qp, 0)
	cb.WriteTimestampQuery(qp, 1)
	f.reset()
	d.Submit(&cb)
	if n := f.count("QueryCounter"); n != 2 {
		t.Fatalf("Device.Submit: QueryCounter calls:\nhave %d\nwant 2", n)
	}
	res, err := d.QueryPoolResults(qp, 0, 2, 0)
	if err != nil {
		t.Fatalf("Device.QueryPoolResults:\nhave %v\nwant nil", err)
	}
	if want := []uint64{42, 42}; !slices.Equal(res, want) {
		t.Fatalf("Device.QueryPoolResults:\nhave %v\nwant %v", res, want)
	}

	cb.Clear()
	cb.BeginQuery(qp, 0)
	mustPanic(t, "Device.Submit (BeginQuery on timestamp pool)", func() { d.Submit(&cb) })
}

func TestQueryPoolInvalid(t *testing.T) {
	f := newFakeGL()
	f.setVersion(3, 3)
	d := newTestDevice(t, f)
	if _, err := d.CreateQueryPool(rhi.QueryOcclusion, 0); !errors.Is(err, rhi.ErrInvalidDescriptor) {
		t.Fatalf("Device.CreateQueryPool (empty):\nhave %v\nwant %v", err, rhi.ErrInvalidDescriptor)
	}
	qp := testQueryPool(t, d, rhi.QueryPipelineStatistics, 1)
	if qp.target != gl.PRIMITIVES_GENERATED {
		t.Fatalf("queryPool.target:\nhave %#x\nwant %#x", qp.target, gl.PRIMITIVES_GENERATED)
	}
	qp.Release()
	if n := f.count("DeleteQuery"); n != 1 {
		t.Fatalf("queryPool.Release: DeleteQuery calls:\nhave %d\nwant 1", n)
	}
}

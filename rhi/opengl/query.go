// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gviegas/rhi/internal/bitvec"
	"github.com/gviegas/rhi/rhi"
)

// queryPool implements rhi.QueryPool.
// Pipeline statistics queries count generated primitives.
type queryPool struct {
	rhi.ResourceBase
	d      *Device
	typ    rhi.QueryType
	target uint32
	ids    []uint32
	// Queries ended or written since their last reset.
	issued bitvec.V[uint32]
}

// CreateQueryPool creates a new query pool with count
// queries of type typ.
func (d *Device) CreateQueryPool(typ rhi.QueryType, count int) (rhi.QueryPool, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: query pool of %d queries", rhi.ErrInvalidDescriptor, count)
	}
	switch typ {
	case rhi.QueryOcclusion, rhi.QueryPipelineStatistics:
	case rhi.QueryTimestamp:
		if !d.exts[extTimerQuery] {
			return nil, fmt.Errorf("%w: timestamp queries", rhi.ErrUnsupported)
		}
	default:
		return nil, fmt.Errorf("%w: query type %d", rhi.ErrInvalidDescriptor, typ)
	}
	qp := &queryPool{
		d:      d,
		typ:    typ,
		target: convQueryType(typ),
		ids:    make([]uint32, count),
	}
	for i := range qp.ids {
		qp.ids[i] = d.gl.GenQuery()
	}
	qp.issued.Ensure(count)
	qp.InitResource(d, rhi.RQueryPool, &d.stats, qp.destroy)
	return qp, nil
}

func (qp *queryPool) destroy() {
	for _, id := range qp.ids {
		qp.d.gl.DeleteQuery(id)
	}
	qp.ids = nil
}

// QueryType returns the type of the queries.
func (qp *queryPool) QueryType() rhi.QueryType { return qp.typ }

// NumberOfQueries returns the number of queries.
func (qp *queryPool) NumberOfQueries() int { return len(qp.ids) }

// checkRange panics if [first, first+n) is not a valid
// range of queries.
func (qp *queryPool) checkRange(first, n int) {
	if first < 0 || n < 0 || first+n > len(qp.ids) {
		panic(fmt.Sprintf("opengl: queries [%d, %d) out of range [0, %d)", first, first+n, len(qp.ids)))
	}
}

func (qp *queryPool) reset(first, n int) {
	qp.checkRange(first, n)
	qp.issued.UnsetRange(first, n)
}

func (qp *queryPool) begin(q int) {
	qp.checkRange(q, 1)
	if qp.typ == rhi.QueryTimestamp {
		panic("opengl: BeginQuery on a timestamp query pool")
	}
	qp.d.gl.BeginQuery(qp.target, qp.ids[q])
}

func (qp *queryPool) end(q int) {
	qp.checkRange(q, 1)
	if qp.typ == rhi.QueryTimestamp {
		panic("opengl: EndQuery on a timestamp query pool")
	}
	qp.d.gl.EndQuery(qp.target)
	qp.issued.Set(q)
}

func (qp *queryPool) writeTimestamp(q int) {
	qp.checkRange(q, 1)
	if qp.typ != rhi.QueryTimestamp {
		panic("opengl: WriteTimestampQuery on a non-timestamp query pool")
	}
	qp.d.gl.QueryCounter(qp.ids[q], gl.TIMESTAMP)
	qp.issued.Set(q)
}

// asQueryPool converts a query pool.
// It panics if p is not one.
func asQueryPool(p rhi.QueryPool) *queryPool {
	qp, ok := p.(*queryPool)
	if !ok {
		panic(fmt.Sprintf("opengl: %T is not an OpenGL query pool", p))
	}
	return qp
}

// QueryPoolResults reads count results starting at
// firstQuery. Unless flags has rhi.QueryResultWait, a
// result that is not yet available fails with
// rhi.ErrQueryUnavailable, as does a query that was not
// issued since its last reset.
func (d *Device) QueryPoolResults(pool rhi.QueryPool, firstQuery, count int, flags rhi.QueryResultFlags) ([]uint64, error) {
	qp := asQueryPool(pool)
	if firstQuery < 0 || count < 0 || firstQuery+count > len(qp.ids) {
		return nil, fmt.Errorf("%w: queries [%d, %d) out of range [0, %d)", rhi.ErrInvalidDescriptor, firstQuery, firstQuery+count, len(qp.ids))
	}
	f := d.gl
	res := make([]uint64, count)
	for i := range res {
		q := firstQuery + i
		if !qp.issued.IsSet(q) {
			return nil, fmt.Errorf("%w: query %d not issued", rhi.ErrQueryUnavailable, q)
		}
		id := qp.ids[q]
		if flags&rhi.QueryResultWait == 0 && f.GetQueryObjectui64(id, gl.QUERY_RESULT_AVAILABLE) == 0 {
			return nil, fmt.Errorf("%w: query %d pending", rhi.ErrQueryUnavailable, q)
		}
		res[i] = f.GetQueryObjectui64(id, gl.QUERY_RESULT)
	}
	return res, nil
}

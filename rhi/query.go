// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package rhi

// QueryType is the type of queries.
type QueryType int

// Query types.
const (
	QueryOcclusion QueryType = iota
	QueryPipelineStatistics
	QueryTimestamp
)

// QueryResultFlags is a bitmask of options for reading
// query results.
type QueryResultFlags int

// Query result flags.
const (
	// Block until the results are available.
	QueryResultWait QueryResultFlags = 1 << iota
)

// QueryPool is the interface that defines a fixed-size
// array of queries of one type.
type QueryPool interface {
	Resource

	QueryType() QueryType
	NumberOfQueries() int
}

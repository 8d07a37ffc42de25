package benchmark

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is one benchmark trial's collected metadata and timings as a flat
// column → value row. Columns keep insertion order. Values are anything
// displayable, typically numbers and strings. Records in one batch are not
// required to share a column set.
type Record struct {
	cols *orderedmap.OrderedMap[string, any]
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{cols: orderedmap.New[string, any]()}
}

// Set stores a value under the given column, keeping first-insertion column
// order, and returns the record for chaining.
//
// Example:
//
//	rec := benchmark.NewRecord().Set("name", "matmul").Set("latency_ms", 1.5)
func (r *Record) Set(col string, value any) *Record {
	r.cols.Set(col, value)
	return r
}

// Get returns the value stored under the given column.
func (r *Record) Get(col string) (any, bool) {
	return r.cols.Get(col)
}

// Columns returns the record's column names in insertion order.
func (r *Record) Columns() []string {
	out := make([]string, 0, r.cols.Len())
	for pair := r.cols.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Len returns the number of columns in the record.
func (r *Record) Len() int {
	return r.cols.Len()
}

// Package idgen hands out process-monotonic integer identifiers.
//
// The Python prototype this engine is derived from used
// itertools.count().__next__ as a default-factory for entity and module
// indices. A Counter is the same idea decorated for concurrent-safe use:
// strictly increasing, starting at zero, one sequence per Counter value.
package idgen

import "sync/atomic"

// Counter produces strictly increasing integers starting at zero.
// The zero value is ready to use.
type Counter struct {
	next atomic.Int64
}

// Next returns the next value in the sequence.
func (c *Counter) Next() int {
	return int(c.next.Add(1) - 1)
}

// Peek returns the value Next would return without consuming it.
func (c *Counter) Peek() int {
	return int(c.next.Load())
}

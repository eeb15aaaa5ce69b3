package repository

import "sync/atomic"

// IDAllocator hands out strictly increasing identifiers starting from 1.
// Safe for any number of concurrent callers; no two callers ever receive
// the same value.
type IDAllocator struct {
	last atomic.Int64
}

// NewIDAllocator creates an allocator whose first Next call returns 1
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns the next identifier
func (a *IDAllocator) Next() int64 {
	return a.last.Add(1)
}

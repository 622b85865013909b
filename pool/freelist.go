// File: pool/freelist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/ringbuf/spsc"

// FreeList is a fixed-capacity object recycler backed by an SPSC ring.
// One goroutine returns objects with Put, one takes them with Get; for a
// single owner doing both, the discipline is trivially satisfied.
type FreeList[T any] struct {
	ring  *spsc.Ring[T]
	fresh func() T
}

// NewFreeList creates a recycler holding at most capacity idle objects
// (a non-zero power of two). fresh constructs a new object when the list
// is empty and must not be nil.
func NewFreeList[T any](capacity uint64, fresh func() T) *FreeList[T] {
	if fresh == nil {
		panic("pool: fresh constructor must not be nil")
	}
	return &FreeList[T]{
		ring:  spsc.New[T](capacity),
		fresh: fresh,
	}
}

// Get returns a recycled object, or a freshly constructed one when none
// are idle.
func (f *FreeList[T]) Get() T {
	if v, ok := f.ring.Remove(); ok {
		return v
	}
	return f.fresh()
}

// Put offers v back for reuse. Returns false when the list is already at
// capacity, in which case v is simply dropped for the GC.
func (f *FreeList[T]) Put(v T) bool {
	return f.ring.Insert(v)
}

// Idle returns the number of objects currently held for reuse.
func (f *FreeList[T]) Idle() int {
	return f.ring.Len()
}

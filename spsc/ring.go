// File: spsc/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is a bounded circular buffer with atomic head/tail, padded for
// hot/cold separation. Implements api.Ring for cross-package consistency.

package spsc

import (
	"sync/atomic"

	"github.com/momentics/ringbuf/api"
)

// Ensure compile-time interface compliance.
var _ api.BulkRing[any] = (*Ring[any])(nil)

// Ring is a lock-free SPSC ring buffer. head is owned by the producer,
// tail by the consumer; each side only ever stores its own index.
type Ring[T any] struct {
	data []T
	mask uint64
	head atomic.Uint64 // next write position
	_    [64]byte      // Padding to keep producer and consumer indexes apart
	tail atomic.Uint64 // next read position
	_    [64]byte
}

// New allocates a ring of power-of-two capacity; panics otherwise.
func New[T any](capacity uint64) *Ring[T] {
	if capacity == 0 || capacity&(capacity-1) != 0 {
		panic("spsc: capacity must be a non-zero power of two")
	}
	return &Ring[T]{
		data: make([]T, capacity),
		mask: capacity - 1,
	}
}

// Insert adds v; returns false if full. Producer side.
func (r *Ring[T]) Insert(v T) bool {
	head := r.head.Load()
	tail := r.tail.Load()
	if head-tail == uint64(len(r.data)) {
		return false
	}
	r.data[head&r.mask] = v
	r.head.Store(head + 1)
	return true
}

// Remove takes the oldest element; ok false if empty. Consumer side.
func (r *Ring[T]) Remove() (T, bool) {
	head := r.head.Load()
	tail := r.tail.Load()
	if head == tail {
		var zero T
		return zero, false
	}
	v := r.data[tail&r.mask]
	r.tail.Store(tail + 1)
	return v, true
}

// Peek copies the oldest element without removing it; ok false if empty.
// Consumer side. Returns a copy rather than a pointer: the slot behind a
// borrowed pointer could be overwritten by the producer after the consumer
// advances past it.
func (r *Ring[T]) Peek() (T, bool) {
	head := r.head.Load()
	tail := r.tail.Load()
	if head == tail {
		var zero T
		return zero, false
	}
	return r.data[tail&r.mask], true
}

// Write copies up to len(src) elements in, clamped to the free slots, and
// returns the count written. Each element is published before the next is
// placed, so the consumer may start draining mid-call. Producer side.
func (r *Ring[T]) Write(src []T) int {
	head := r.head.Load()
	tail := r.tail.Load()
	n := len(src)
	if free := len(r.data) - int(head-tail); n > free {
		n = free
	}
	for i := 0; i < n; i++ {
		r.data[head&r.mask] = src[i]
		head++
		r.head.Store(head)
	}
	return n
}

// Read copies up to len(dst) elements out, clamped to the stored count,
// and returns the count read. Consumer side.
func (r *Ring[T]) Read(dst []T) int {
	head := r.head.Load()
	tail := r.tail.Load()
	n := len(dst)
	if avail := int(head - tail); n > avail {
		n = avail
	}
	for i := 0; i < n; i++ {
		dst[i] = r.data[tail&r.mask]
		tail++
		r.tail.Store(tail)
	}
	return n
}

// Discard drops up to n of the oldest elements, clamped to the stored
// count, and returns the count dropped. Consumer side.
func (r *Ring[T]) Discard(n uint64) uint64 {
	head := r.head.Load()
	tail := r.tail.Load()
	if avail := head - tail; n > avail {
		n = avail
	}
	r.tail.Store(tail + n)
	return n
}

// IsEmpty reports whether no elements are stored.
func (r *Ring[T]) IsEmpty() bool {
	return r.head.Load() == r.tail.Load()
}

// IsFull reports whether no free slots remain.
func (r *Ring[T]) IsFull() bool {
	return r.head.Load()-r.tail.Load() == uint64(len(r.data))
}

// Len returns the number of stored elements.
func (r *Ring[T]) Len() int {
	return int(r.head.Load() - r.tail.Load())
}

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int {
	return len(r.data)
}

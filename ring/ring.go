// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unsynchronized fixed-capacity ring buffer, generic over element type and
// index width. Head advances on insert, tail on remove; both wrap the index
// type's natural modulus.

package ring

import (
	"fmt"

	"github.com/momentics/ringbuf/api"
)

// Ensure compile-time interface compliance.
var _ api.BulkRing[any] = (*Buffer[any, uint64])(nil)

// Index constrains the counter width. The capacity must fit the chosen
// type; New enforces this.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Buffer is a fixed-capacity ring buffer. The zero head/tail state is
// empty; counters only ever increase and wrap per the index type.
type Buffer[T any, I Index] struct {
	mask I
	head I // next write position, modulo capacity via mask
	tail I // next read position
	data []T
}

// New allocates an empty buffer. capacity must be a non-zero power of two
// representable in I; violating either is a programming error and panics.
// A capacity equal to the index type's modulus (e.g. 256 with uint8) is
// rejected as well, since full and empty would become indistinguishable.
func New[T any, I Index](capacity int) *Buffer[T, I] {
	checkCapacity[I](capacity)
	return &Buffer[T, I]{
		mask: I(capacity - 1),
		data: make([]T, capacity),
	}
}

// NewPlacement adopts caller-provided storage without clearing it. This is
// the placement fast path: no per-slot initialization runs, so the caller
// must hand over storage whose contents it is prepared to treat as stale
// (a freshly made slice, a kernel-zeroed mapping, a reused arena). The
// buffer takes exclusive ownership of the slice. len(storage) is subject
// to the same capacity contract as New.
func NewPlacement[T any, I Index](storage []T) *Buffer[T, I] {
	checkCapacity[I](len(storage))
	return &Buffer[T, I]{
		mask: I(len(storage) - 1),
		data: storage,
	}
}

func checkCapacity[I Index](capacity int) {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic(fmt.Sprintf("ring: capacity must be a non-zero power of two, got %d", capacity))
	}
	if uint64(capacity) > uint64(^I(0)) {
		panic(fmt.Sprintf("ring: capacity %d does not fit the index type", capacity))
	}
}

// IsEmpty reports whether no elements are stored.
func (b *Buffer[T, I]) IsEmpty() bool {
	return b.head == b.tail
}

// IsFull reports whether no free slots remain.
func (b *Buffer[T, I]) IsFull() bool {
	return b.head-b.tail == I(len(b.data))
}

// ReadAvailable returns the number of stored elements.
func (b *Buffer[T, I]) ReadAvailable() I {
	return b.head - b.tail
}

// WriteAvailable returns the number of free slots.
func (b *Buffer[T, I]) WriteAvailable() I {
	return I(len(b.data)) - (b.head - b.tail)
}

// Len returns the number of stored elements.
func (b *Buffer[T, I]) Len() int {
	return int(b.head - b.tail)
}

// Cap returns the fixed capacity.
func (b *Buffer[T, I]) Cap() int {
	return len(b.data)
}

// Clear discards all stored elements in O(1) by aligning tail with head.
// Slot contents are left in place; they become unreachable through the
// checked accessors.
func (b *Buffer[T, I]) Clear() {
	b.tail = b.head
}

// Insert appends v at the write position. Returns false and leaves the
// buffer unchanged when full.
func (b *Buffer[T, I]) Insert(v T) bool {
	if b.head-b.tail == I(len(b.data)) {
		return false
	}
	b.data[b.head&b.mask] = v
	b.head++
	return true
}

// InsertFrom appends the element *p points at, avoiding an extra copy of
// large element types at the call site. Identical buffer effect to Insert.
func (b *Buffer[T, I]) InsertFrom(p *T) bool {
	if b.head-b.tail == I(len(b.data)) {
		return false
	}
	b.data[b.head&b.mask] = *p
	b.head++
	return true
}

// Remove takes the oldest element. Returns ok false and leaves the buffer
// unchanged when empty.
func (b *Buffer[T, I]) Remove() (T, bool) {
	var zero T
	if b.head == b.tail {
		return zero, false
	}
	v := b.data[b.tail&b.mask]
	b.tail++
	return v, true
}

// RemoveInto copies the oldest element into *out and discards it. When
// empty it returns false and does not touch *out.
func (b *Buffer[T, I]) RemoveInto(out *T) bool {
	if b.head == b.tail {
		return false
	}
	*out = b.data[b.tail&b.mask]
	b.tail++
	return true
}

// Skip discards the oldest element without exposing its value. Returns
// false when empty.
func (b *Buffer[T, I]) Skip() bool {
	if b.head == b.tail {
		return false
	}
	b.tail++
	return true
}

// Discard drops up to n of the oldest elements, clamped to the number
// stored, and returns the count actually dropped. Never fails.
func (b *Buffer[T, I]) Discard(n I) I {
	avail := b.head - b.tail
	if n > avail {
		n = avail
	}
	b.tail += n
	return n
}

// Write copies min(len(src), WriteAvailable()) elements from src into the
// buffer, advancing head per element placed, and returns the count
// written. Equivalent to repeated Insert over the prefix of src.
func (b *Buffer[T, I]) Write(src []T) int {
	n := len(src)
	if free := int(I(len(b.data)) - (b.head - b.tail)); n > free {
		n = free
	}
	for i := 0; i < n; i++ {
		b.data[b.head&b.mask] = src[i]
		b.head++
	}
	return n
}

// Read copies min(len(dst), ReadAvailable()) elements into dst, advancing
// tail per element taken, and returns the count read.
func (b *Buffer[T, I]) Read(dst []T) int {
	n := len(dst)
	if avail := int(b.head - b.tail); n > avail {
		n = avail
	}
	for i := 0; i < n; i++ {
		dst[i] = b.data[b.tail&b.mask]
		b.tail++
	}
	return n
}

// Peek returns a pointer to the oldest element, or nil when empty. The
// pointer borrows the underlying slot and is valid only until the next
// mutating call on the buffer.
func (b *Buffer[T, I]) Peek() *T {
	if b.head == b.tail {
		return nil
	}
	return &b.data[b.tail&b.mask]
}

// At returns a pointer to the element at logical offset i from the oldest
// (0 = oldest), or nil when i >= ReadAvailable(). Same borrow rules as
// Peek.
func (b *Buffer[T, I]) At(i I) *T {
	if b.head-b.tail <= i {
		return nil
	}
	return &b.data[(b.tail+i)&b.mask]
}

// Index is the unchecked counterpart of At: it masks (tail+i) into the
// physical array without testing i against ReadAvailable(). The caller
// must ensure i < ReadAvailable(); a violating index still lands inside
// the array but addresses a logically stale slot. Prefer At unless the
// occupancy check has already been hoisted out of a loop.
func (b *Buffer[T, I]) Index(i I) *T {
	return &b.data[(b.tail+i)&b.mask]
}

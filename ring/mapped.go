// File: ring/mapped.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Placement construction over a kernel-zeroed anonymous mapping. This is
// the moral equivalent of instantiating the buffer in a statically
// zero-initialized segment: the zeroed guarantee comes from the OS, so the
// placement path can skip per-slot initialization.

package ring

import (
	"unsafe"

	"github.com/momentics/ringbuf/internal/mem"
)

// Mapped is a Buffer whose storage lives in a mapped region. Close unmaps
// the region; the buffer must not be used afterwards.
//
// Element types containing Go pointers must not be stored in a mapped
// buffer: the garbage collector does not scan mapped pages. Use New for
// such types.
type Mapped[T any, I Index] struct {
	*Buffer[T, I]
	region *mem.Region
}

// NewMapped allocates capacity slots from a page-backed, zero-filled
// region and adopts them via the placement path. The capacity contract of
// New applies.
func NewMapped[T any, I Index](capacity int) (*Mapped[T, I], error) {
	checkCapacity[I](capacity)
	var elem T
	size := int(unsafe.Sizeof(elem)) * capacity
	if size == 0 {
		// Zero-sized elements need no backing pages.
		return &Mapped[T, I]{Buffer: NewPlacement[T, I](make([]T, capacity))}, nil
	}
	region, err := mem.Alloc(size)
	if err != nil {
		return nil, err
	}
	storage := unsafe.Slice((*T)(unsafe.Pointer(&region.Bytes()[0])), capacity)
	return &Mapped[T, I]{
		Buffer: NewPlacement[T, I](storage),
		region: region,
	}, nil
}

// Close returns the mapped region to the OS.
func (m *Mapped[T, I]) Close() error {
	return m.region.Release()
}

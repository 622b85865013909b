// File: internal/mem/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import "fmt"

// Region is a zero-filled memory area. Mapped regions must be returned to
// the OS with Release; heap-backed regions make Release a no-op.
type Region struct {
	data   []byte
	mapped bool
}

// Alloc returns a zero-filled region of exactly size bytes.
func Alloc(size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: region size must be positive, got %d", size)
	}
	return alloc(size)
}

// Bytes returns the region's backing bytes. Nil after Release.
func (r *Region) Bytes() []byte {
	return r.data
}

// Release unmaps a mapped region. Safe to call more than once; the region
// must not be used afterwards.
func (r *Region) Release() error {
	if r == nil || r.data == nil {
		return nil
	}
	data, mapped := r.data, r.mapped
	r.data = nil
	r.mapped = false
	if !mapped {
		return nil
	}
	return release(data)
}

//go:build !linux
// +build !linux

// File: internal/mem/region_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap-backed regions for platforms without the mapping path.

package mem

func alloc(size int) (*Region, error) {
	return &Region{data: make([]byte, size)}, nil
}

func release([]byte) error {
	return nil
}

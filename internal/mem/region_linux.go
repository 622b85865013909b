//go:build linux
// +build linux

// File: internal/mem/region_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Anonymous private mappings; the kernel zero-fills the pages.

package mem

import "golang.org/x/sys/unix"

func alloc(size int) (*Region, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		// Fall back to the heap; the runtime zeroes it just the same.
		return &Region{data: make([]byte, size)}, nil
	}
	return &Region{data: data, mapped: true}, nil
}

func release(data []byte) error {
	return unix.Munmap(data)
}

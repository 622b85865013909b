// File: api/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity FIFO contracts for single-owner and SPSC rings.

package api

// Ring is the minimal fixed-capacity FIFO contract.
type Ring[T any] interface {
	// Insert adds an item, returns false if full.
	Insert(item T) bool
	// Remove takes the oldest item, ok false if empty.
	Remove() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns fixed buffer capacity.
	Cap() int
}

// BulkRing extends Ring with clamped slice transfer. Both operations move
// min(len(slice), available) elements and report the count actually moved.
type BulkRing[T any] interface {
	Ring[T]

	// Write copies elements from src into the ring at the write position.
	Write(src []T) int
	// Read copies elements from the read position into dst.
	Read(dst []T) int
}

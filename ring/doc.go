// File: ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package ring implements a fixed-capacity, power-of-two ring buffer for
// single-owner or externally synchronized use.
//
// Buffer keeps two monotonically increasing index counters of a
// caller-chosen unsigned width. The counters wrap the index type's full
// range; because the capacity is a power of two that divides the index
// modulus, `head - tail` stays equal to the element count across counter
// overflow, and `counter & (capacity-1)` selects the physical slot without
// a division. No operation blocks, allocates after construction, or leaves
// the buffer in a partially mutated state on failure.
//
// The buffer performs no internal synchronization. For cross-goroutine
// single-producer/single-consumer use, see package spsc, which carries the
// same semantics on atomic indexes.
package ring

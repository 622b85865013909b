// File: pool/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// BufferRing[T] is a thin wrapper over spsc.Ring[T] for pipeline wiring
// where only the api.Ring contract should be visible.

package pool

import (
	"github.com/momentics/ringbuf/api"
	"github.com/momentics/ringbuf/spsc"
)

// BufferRing[T] implements api.Ring[T] with power-of-two capacity.
type BufferRing[T any] struct {
	*spsc.Ring[T]
}

// NewBufferRing creates a ring of the given capacity, which must be a
// non-zero power of two.
func NewBufferRing[T any](capacity uint64) *BufferRing[T] {
	return &BufferRing[T]{Ring: spsc.New[T](capacity)}
}

// Ensure compile-time compliance.
var _ api.BulkRing[any] = (*BufferRing[any])(nil)

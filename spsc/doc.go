// File: spsc/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package spsc implements a lock-free single-producer/single-consumer ring
// buffer with atomic head/tail indexes, padded to prevent false sharing.
//
// The discipline is strict: exactly one goroutine calls the producer
// operations (Insert, Write) and exactly one calls the consumer operations
// (Remove, Read, Discard, Peek). The atomic index stores order each slot
// write before the index update that publishes it, so the consumer never
// observes an unwritten slot. For single-owner use without the atomics,
// see package ring.
package spsc

// File: pool/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package pool builds object recycling on top of the spsc ring. Unlike
// sync.Pool, capacity is fixed and nothing is dropped by the garbage
// collector behind the caller's back: a FreeList holds at most its
// configured number of idle objects and constructs fresh ones only when
// the list runs dry.
package pool

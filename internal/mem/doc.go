// File: internal/mem/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package mem allocates page-backed memory regions for placement
// construction. On Linux, regions come from anonymous private mappings,
// which the kernel hands out zero-filled; elsewhere (and on mapping
// failure) allocation falls back to the Go heap, which gives the same
// zeroed guarantee.
package mem

// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package api defines the shared contracts implemented by the ring buffer
// variants in this module. Implementations assert compliance at compile
// time with `var _` declarations.
package api

// Package assert panics on violated internal invariants.
//
// These are programming defects, not recoverable errors: a malformed
// contour merge, a sprite sampled outside its own rect, or an empty tree
// are bugs in the core, not bad input. Parser-facing errors never use
// this package; they are returned as values (see package parse).
package assert

import "fmt"

// That panics with msg if cond is false.
func That(cond bool, msg string) {
	if !cond {
		panic("trim: invariant violated: " + msg)
	}
}

// Thatf panics with a formatted message if cond is false.
func Thatf(cond bool, format string, args ...any) {
	if !cond {
		panic("trim: invariant violated: " + fmt.Sprintf(format, args...))
	}
}

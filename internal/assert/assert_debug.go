//go:build fixedvecdebug
// +build fixedvecdebug

// File: internal/assert/assert_debug.go
// Author: momentics <momentics@gmail.com>
//
// Debug build of the assertion helpers, selected by the fixedvecdebug
// build tag. Used to validate the preconditions of unchecked operations;
// release builds compile these calls away (see assert_release.go).

package assert

import "fmt"

// Enabled reports whether precondition assertions are compiled in.
const Enabled = true

// That panics with a formatted message when cond is false.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic("fixedvec: assertion failed: " + fmt.Sprintf(format, args...))
	}
}

//go:build !fixedvecdebug
// +build !fixedvecdebug

// File: internal/assert/assert_release.go
// Author: momentics <momentics@gmail.com>
//
// Release build of the assertion helpers: no-ops the compiler can remove.

package assert

// Enabled reports whether precondition assertions are compiled in.
const Enabled = false

// That does nothing in release builds.
func That(cond bool, format string, args ...any) {}

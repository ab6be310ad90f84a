// File: vec/equal.go
// Author: momentics <momentics@gmail.com>
//
// Equality over live ranges. Two vectors compare equal when their live
// lengths match and elements are pairwise equal; capacity plays no part.

package vec

// Equal reports whether a and b hold the same live elements in the same
// order, regardless of their capacities.
func Equal[T comparable](a, b *Vec[T]) bool {
	if a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if a.slots[i] != b.slots[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a *Vec[T], b *Vec[U], eq func(T, U) bool) bool {
	if a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if !eq(a.slots[i], b.slots[i]) {
			return false
		}
	}
	return true
}

// File: vec/intoiter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// IntoIter is the consuming iterator over a Vec. Conversion transfers
// ownership of the live range in full: the iterator steals the backing
// storage and the source vector is left empty with no storage, so no slot
// ever has two owners. Cursors are element indices, not byte offsets, so
// zero-size element types count correctly.

package vec

import (
	"iter"

	"github.com/momentics/fixedvec/api"
)

// Ensure compile-time interface compliance.
var _ api.Iterator[any] = (*IntoIter[any])(nil)

// IntoIter owns every element in [begin, end) of the stolen storage.
// Elements already yielded belong to the caller; Close destroys whatever
// remains exactly once.
type IntoIter[T any] struct {
	slots []T
	begin int
	end   int
}

// IntoIter converts the vector into a consuming iterator over its live
// range. The vector surrenders its storage and behaves as capacity zero
// afterwards; it must not be pushed to again.
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{slots: v.slots, begin: 0, end: v.n}
	v.slots = nil
	v.n = 0
	return it
}

// Len returns the number of elements not yet yielded.
func (it *IntoIter[T]) Len() int { return it.end - it.begin }

// Next moves the front element out; ok is false once exhausted.
func (it *IntoIter[T]) Next() (value T, ok bool) {
	if it.begin == it.end {
		return value, false
	}
	value = it.slots[it.begin]
	var zero T
	it.slots[it.begin] = zero
	it.begin++
	return value, true
}

// NextBack moves the back element out; ok is false once exhausted.
// Next and NextBack may be interleaved freely.
func (it *IntoIter[T]) NextBack() (value T, ok bool) {
	if it.begin == it.end {
		return value, false
	}
	it.end--
	value = it.slots[it.end]
	var zero T
	it.slots[it.end] = zero
	return value, true
}

// Close destroys every element not yet yielded, in index order, and
// surrenders the backing storage. Safe to call twice; the second call is
// a no-op.
func (it *IntoIter[T]) Close() {
	var zero T
	for i := it.begin; i < it.end; i++ {
		release(it.slots[i])
		it.slots[i] = zero
	}
	it.begin = 0
	it.end = 0
	it.slots = nil
}

// Seq adapts the iterator to a range-over-func sequence, front to back.
// If the consumer stops early the remaining elements are destroyed via
// Close, so ranging can never leak.
func (it *IntoIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := it.Next()
			if !ok {
				return
			}
			if !yield(value) {
				it.Close()
				return
			}
		}
	}
}

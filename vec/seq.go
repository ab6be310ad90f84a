// File: vec/seq.go
// Author: momentics <momentics@gmail.com>
//
// Range-over-func views and sequence-consuming extension for Vec.

package vec

import (
	"fmt"
	"iter"
)

// All returns an index/value view over the live range, front to back.
// The vector must not be mutated while ranging.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.slots[i]) {
				return
			}
		}
	}
}

// Backward returns an index/value view over the live range, back to front.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, v.slots[i]) {
				return
			}
		}
	}
}

// Values returns a value-only view over the live range, front to back.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.slots[i]) {
				return
			}
		}
	}
}

// Extend appends each element of seq in order, one at a time. It panics
// the moment the next element would exceed capacity; elements appended
// before that point are retained, matching the one-at-a-time semantics
// of Push.
func (v *Vec[T]) Extend(seq iter.Seq[T]) {
	for value := range seq {
		if v.n >= len(v.slots) {
			panic(fmt.Sprintf("vec: extend failed: not enough space (capacity is %d)", len(v.slots)))
		}
		v.PushUnchecked(value)
	}
}

// Collect builds a vector of the given capacity from seq.
// Returns ErrNotEnoughSpace once seq yields more than capacity elements.
func Collect[T any](capacity int, seq iter.Seq[T]) (*Vec[T], error) {
	v := New[T](capacity)
	for value := range seq {
		if err := v.TryPush(value); err != nil {
			v.Close()
			return nil, err
		}
	}
	return v, nil
}

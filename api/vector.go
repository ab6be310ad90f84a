// File: api/vector.go
// Package api
// Author: momentics <momentics@gmail.com>
//
// Contract for fixed-capacity, contiguously stored sequence containers.
//
// Storage is allocated once, at construction, and never regrown. Slots in
// [0, Len()) hold live elements exclusively owned by the container; slots in
// [Len(), Cap()) are dead and are never read or released. Every mutating
// operation restores that invariant before returning.

package api

import "iter"

// Vector is a fixed-capacity sequence of T.
//
// Mutators come in up to three tiers sharing identical success-path
// behavior: a checked tier returning an error, a panicking convenience
// tier, and an unchecked tier that skips validation entirely (see the
// implementation for the unchecked entry points; they are not part of
// this contract because their misuse is undefined).
type Vector[T any] interface {
	// Len returns the number of live elements.
	Len() int

	// Cap returns the fixed capacity chosen at construction.
	Cap() int

	// Push appends value; panics when the vector is full.
	Push(value T)

	// TryPush appends value, or reports ErrNotEnoughSpace when full.
	TryPush(value T) error

	// Pop removes and returns the last element; ok is false when empty.
	// Ownership of the returned element moves to the caller.
	Pop() (value T, ok bool)

	// Insert shifts [idx, Len()) back one slot and writes value at idx.
	// Panics when idx > Len() or the vector is full.
	Insert(idx int, value T)

	// TryInsert is the checked form of Insert. The index check takes
	// precedence over the capacity check, and no element is shifted
	// unless both checks pass.
	TryInsert(idx int, value T) error

	// Remove deletes and returns the element at idx, shifting the tail
	// forward one slot. Panics when idx >= Len(). Ownership of the
	// returned element moves to the caller.
	Remove(idx int) T

	// TryRemove is the checked form of Remove; ok is false when
	// idx is outside the live range.
	TryRemove(idx int) (value T, ok bool)

	// Clear destroys every live element and resets length to zero.
	Clear()

	// Truncate destroys the tail [newLen, Len()); a no-op when
	// newLen >= Len(). Never grows the vector.
	Truncate(newLen int)

	// Resize grows the vector to newLen by duplicating value, or shrinks
	// it like Truncate. Panics when newLen exceeds capacity.
	Resize(newLen int, value T)

	// ExtendWith appends count duplicates of value; panics when the
	// result would exceed capacity.
	ExtendWith(count int, value T)

	// Extend appends each element of seq in order. Panics the moment the
	// next element would exceed capacity; elements appended before that
	// point are retained.
	Extend(seq iter.Seq[T])

	// At returns the element at idx; panics when idx is outside the
	// live range.
	At(idx int) T

	// Get returns the element at idx; ok is false outside the live range.
	Get(idx int) (value T, ok bool)

	// Slice returns the live range [0, Len()) as a view over the
	// vector's own storage. The view is invalidated by any mutation.
	Slice() []T

	// Close destroys every live element and surrenders the backing
	// storage. The vector must not be used afterwards. Safe to call twice.
	Close()
}

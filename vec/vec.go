// File: vec/vec.go
// Package vec implements Vec, a generic fixed-capacity vector.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vec stores its elements in one contiguous block allocated at construction
// and never regrown. The live range [0, len) is exclusively owned by the
// vector; dead slots [len, cap) are kept zeroed and are never read or
// released. Mutators exist in checked (Try*), panicking, and unchecked
// (*Unchecked) tiers sharing a single core routine per operation, so all
// three observe identical state on the success path.

package vec

import (
	"fmt"

	"github.com/momentics/fixedvec/api"
	"github.com/momentics/fixedvec/internal/assert"
)

// Ensure compile-time interface compliance.
var _ api.Vector[any] = (*Vec[any])(nil)

// Vec is a fixed-capacity vector of T.
//
// The zero value is a usable vector of capacity zero; use New to pick a
// real capacity. Vec is not synchronized: it is safe to move between
// goroutines exactly when T is, but concurrent mutation needs external
// coordination.
type Vec[T any] struct {
	slots []T // backing storage, len(slots) == capacity, never regrown
	n     int // live length, 0 <= n <= len(slots)
}

// New creates an empty vector with the given fixed capacity.
// Panics when capacity is negative.
func New[T any](capacity int) *Vec[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("vec: capacity must be non-negative (is %d)", capacity))
	}
	return &Vec[T]{slots: make([]T, capacity)}
}

// FromSlice creates a vector holding a copy of values.
// Returns ErrNotEnoughSpace when len(values) exceeds capacity; the vector
// is never partially constructed.
func FromSlice[T any](capacity int, values []T) (*Vec[T], error) {
	if len(values) > capacity {
		return nil, api.NewError(api.ErrCodeNotEnoughSpace,
			"vec: source slice exceeds capacity",
			map[string]any{"cap": capacity, "required": len(values)})
	}
	v := New[T](capacity)
	copy(v.slots, values)
	v.n = len(values)
	return v, nil
}

// Repeat creates a vector holding count shallow copies of value.
// Returns ErrNotEnoughSpace when count exceeds capacity.
func Repeat[T any](capacity int, value T, count int) (*Vec[T], error) {
	if count < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"vec: repeat count must be non-negative",
			map[string]any{"count": count})
	}
	if count > capacity {
		return nil, api.NewError(api.ErrCodeNotEnoughSpace,
			"vec: repeat count exceeds capacity",
			map[string]any{"cap": capacity, "required": count})
	}
	v := New[T](capacity)
	for i := 0; i < count; i++ {
		v.slots[i] = value
	}
	v.n = count
	return v, nil
}

// Of creates a vector from an explicit element list, the literal form of
// construction. Panics when the list exceeds capacity.
func Of[T any](capacity int, elems ...T) *Vec[T] {
	v, err := FromSlice(capacity, elems)
	if err != nil {
		panic(fmt.Sprintf("vec: literal has %d elements, capacity is %d", len(elems), capacity))
	}
	return v
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.n }

// Cap returns the fixed capacity chosen at construction.
func (v *Vec[T]) Cap() int { return len(v.slots) }

// SetLen sets the live length directly, bypassing all bookkeeping.
//
// Caller must guarantee that slots [0, newLen) all hold initialized
// elements and that newLen <= Cap(). Violations are checked only under
// the fixedvecdebug build tag.
func (v *Vec[T]) SetLen(newLen int) {
	assert.That(newLen >= 0 && newLen <= len(v.slots),
		"SetLen(%d) outside [0, %d]", newLen, len(v.slots))
	v.n = newLen
}

// Push appends value at the end. Panics when the vector is full.
func (v *Vec[T]) Push(value T) {
	if v.n >= len(v.slots) {
		panic(fmt.Sprintf("vec: push failed: not enough space (capacity is %d)", len(v.slots)))
	}
	v.PushUnchecked(value)
}

// TryPush appends value at the end, or reports ErrNotEnoughSpace when full.
func (v *Vec[T]) TryPush(value T) error {
	if v.n >= len(v.slots) {
		return api.NewError(api.ErrCodeNotEnoughSpace,
			"vec: push failed: vector is full",
			map[string]any{"cap": len(v.slots)})
	}
	v.PushUnchecked(value)
	return nil
}

// PushUnchecked appends value without a capacity check.
// Caller must guarantee Len() < Cap().
func (v *Vec[T]) PushUnchecked(value T) {
	assert.That(v.n < len(v.slots), "PushUnchecked on full vector (capacity %d)", len(v.slots))
	v.slots[v.n] = value
	v.n++
}

// Insert shifts [idx, Len()) back one slot and writes value at idx.
// Panics when idx > Len() (index checked first) or when the vector is full.
func (v *Vec[T]) Insert(idx int, value T) {
	if idx < 0 || idx > v.n {
		panic(fmt.Sprintf("vec: insertion index (is %d) should be <= len (is %d)", idx, v.n))
	}
	if v.n >= len(v.slots) {
		panic(fmt.Sprintf("vec: insertion failed: not enough space (capacity is %d)", len(v.slots)))
	}
	v.InsertUnchecked(idx, value)
}

// TryInsert is the checked form of Insert: ErrIndexOutOfRange when
// idx > Len() (checked first), ErrNotEnoughSpace when the vector is full.
// No element is shifted unless both checks pass.
func (v *Vec[T]) TryInsert(idx int, value T) error {
	if idx < 0 || idx > v.n {
		return api.NewError(api.ErrCodeIndexOutOfRange,
			"vec: insertion index out of range",
			map[string]any{"idx": idx, "len": v.n})
	}
	if v.n >= len(v.slots) {
		return api.NewError(api.ErrCodeNotEnoughSpace,
			"vec: insertion failed: vector is full",
			map[string]any{"cap": len(v.slots)})
	}
	v.InsertUnchecked(idx, value)
	return nil
}

// InsertUnchecked inserts value at idx without validation.
// Caller must guarantee 0 <= idx <= Len() and Len() < Cap().
func (v *Vec[T]) InsertUnchecked(idx int, value T) {
	assert.That(idx >= 0 && idx <= v.n, "InsertUnchecked index %d outside [0, %d]", idx, v.n)
	assert.That(v.n < len(v.slots), "InsertUnchecked on full vector (capacity %d)", len(v.slots))
	copy(v.slots[idx+1:v.n+1], v.slots[idx:v.n])
	v.slots[idx] = value
	v.n++
}

// Pop removes and returns the last element; ok is false when empty.
// Ownership of the element moves to the caller: it is not released here.
func (v *Vec[T]) Pop() (value T, ok bool) {
	if v.n == 0 {
		return value, false
	}
	v.n--
	value = v.slots[v.n]
	var zero T
	v.slots[v.n] = zero
	return value, true
}

// Remove deletes and returns the element at idx, shifting [idx+1, Len())
// forward one slot. Panics when idx is outside the live range. Ownership
// of the element moves to the caller.
func (v *Vec[T]) Remove(idx int) T {
	if idx < 0 || idx >= v.n {
		panic(fmt.Sprintf("vec: removal index (is %d) should be < len (is %d)", idx, v.n))
	}
	return v.RemoveUnchecked(idx)
}

// TryRemove is the checked form of Remove; ok is false when idx is outside
// the live range.
func (v *Vec[T]) TryRemove(idx int) (value T, ok bool) {
	if idx < 0 || idx >= v.n {
		return value, false
	}
	return v.RemoveUnchecked(idx), true
}

// RemoveUnchecked removes the element at idx without a bounds check.
// Caller must guarantee 0 <= idx < Len().
func (v *Vec[T]) RemoveUnchecked(idx int) T {
	assert.That(idx >= 0 && idx < v.n, "RemoveUnchecked index %d outside [0, %d)", idx, v.n)
	value := v.slots[idx]
	copy(v.slots[idx:v.n-1], v.slots[idx+1:v.n])
	v.n--
	var zero T
	v.slots[v.n] = zero
	return value
}

// Clear destroys every live element and resets length to zero.
func (v *Vec[T]) Clear() {
	v.dropRange(0, v.n)
	v.n = 0
}

// Truncate destroys the tail [newLen, Len()); a no-op when
// newLen >= Len(). Negative newLen is treated as zero. Never grows.
func (v *Vec[T]) Truncate(newLen int) {
	if newLen < 0 {
		newLen = 0
	}
	if newLen >= v.n {
		return
	}
	v.dropRange(newLen, v.n)
	v.n = newLen
}

// Resize grows the vector to newLen by appending shallow copies of value,
// or shrinks it like Truncate. Panics when newLen exceeds capacity.
func (v *Vec[T]) Resize(newLen int, value T) {
	if newLen > v.n {
		v.ExtendWith(newLen-v.n, value)
	} else {
		v.Truncate(newLen)
	}
}

// ExtendWith appends count shallow copies of value. Panics when the result
// would exceed capacity; nothing is appended in that case.
func (v *Vec[T]) ExtendWith(count int, value T) {
	if count < 0 {
		panic(fmt.Sprintf("vec: extend count must be non-negative (is %d)", count))
	}
	newLen := v.n + count
	if newLen > len(v.slots) {
		panic(fmt.Sprintf("vec: extend failed: capacity too low (is %d, required %d)", len(v.slots), newLen))
	}
	for i := v.n; i < newLen; i++ {
		v.slots[i] = value
	}
	v.n = newLen
}

// At returns the element at idx; panics when idx is outside the live range.
func (v *Vec[T]) At(idx int) T {
	if idx < 0 || idx >= v.n {
		panic(fmt.Sprintf("vec: index (is %d) should be < len (is %d)", idx, v.n))
	}
	return v.slots[idx]
}

// Get returns the element at idx; ok is false outside the live range.
func (v *Vec[T]) Get(idx int) (value T, ok bool) {
	if idx < 0 || idx >= v.n {
		return value, false
	}
	return v.slots[idx], true
}

// Set overwrites the element at idx in place; panics when idx is outside
// the live range. The previous element is destroyed.
func (v *Vec[T]) Set(idx int, value T) {
	if idx < 0 || idx >= v.n {
		panic(fmt.Sprintf("vec: index (is %d) should be < len (is %d)", idx, v.n))
	}
	release(v.slots[idx])
	v.slots[idx] = value
}

// Slice returns the live range [0, Len()) as a view over the vector's own
// storage. The view shares memory with the vector and is invalidated by
// any subsequent mutation.
func (v *Vec[T]) Slice() []T {
	return v.slots[:v.n]
}

// Close destroys every live element and surrenders the backing storage.
// The vector behaves as capacity zero afterwards. Safe to call twice.
func (v *Vec[T]) Close() {
	v.dropRange(0, v.n)
	v.n = 0
	v.slots = nil
}

// String renders the live range for diagnostics.
func (v *Vec[T]) String() string {
	return fmt.Sprintf("Vec%v", v.slots[:v.n])
}

// dropRange destroys slots [from, to): releases elements implementing
// api.Releaser, then zeroes the slots so the GC can reclaim them.
// Destruction runs in index order.
func (v *Vec[T]) dropRange(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		release(v.slots[i])
		v.slots[i] = zero
	}
}

// release invokes Release on elements that manage resources explicitly.
func release[T any](elem T) {
	if r, ok := any(elem).(api.Releaser); ok {
		r.Release()
	}
}

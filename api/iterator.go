// File: api/iterator.go
// Package api
// Author: momentics <momentics@gmail.com>
//
// Consuming iterator and element lifetime contracts.

package api

// Releaser is implemented by element types that hold resources needing an
// explicit release when the containing structure destroys them. Containers
// in this library call Release exactly once for every element they destroy;
// elements handed out to the caller (Pop, Remove, Next, NextBack) are NOT
// released — ownership moves with the value.
type Releaser interface {
	// Release frees resources held by the element. After Release the
	// element must not be used.
	Release()
}

// Iterator is a double-ended consuming iterator over an owned run of
// elements. Yielded elements belong to the caller; elements never yielded
// are destroyed exactly once when the iterator is closed.
type Iterator[T any] interface {
	// Next moves the front element out; ok is false once exhausted.
	Next() (value T, ok bool)

	// NextBack moves the back element out; ok is false once exhausted.
	// Next and NextBack may be interleaved freely; the two cursors
	// never cross.
	NextBack() (value T, ok bool)

	// Len returns the number of elements not yet yielded.
	Len() int

	// Close destroys every element not yet yielded and surrenders the
	// backing storage. Safe to call twice.
	Close()
}

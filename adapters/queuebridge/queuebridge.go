// File: adapters/queuebridge/queuebridge.go
// Package queuebridge bridges eapache/queue FIFOs into fixedvec sequences.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// queue.Queue is untyped; the bridge asserts each element to T and treats a
// mismatch as a programmer error, mirroring the panicking tier of the
// container itself.

package queuebridge

import (
	"fmt"
	"iter"

	"github.com/eapache/queue"

	"github.com/momentics/fixedvec/vec"
)

// Drain returns a sequence that removes and yields every element of q in
// FIFO order. The sequence consumes the queue as it is ranged; stopping
// early leaves the unread remainder in the queue.
func Drain[T any](q *queue.Queue) iter.Seq[T] {
	return func(yield func(T) bool) {
		for q.Length() > 0 {
			raw := q.Remove()
			elem, ok := raw.(T)
			if !ok {
				panic(fmt.Sprintf("queuebridge: queue element %T does not match requested type", raw))
			}
			if !yield(elem) {
				return
			}
		}
	}
}

// Collect drains q into a new vector of the given capacity.
// Returns ErrNotEnoughSpace when the queue holds more than capacity
// elements; the queue is left drained of the elements already consumed.
func Collect[T any](capacity int, q *queue.Queue) (*vec.Vec[T], error) {
	return vec.Collect(capacity, Drain[T](q))
}

// Fill appends every element of q to v, one at a time, panicking the
// moment the next element would exceed v's capacity.
func Fill[T any](v *vec.Vec[T], q *queue.Queue) {
	v.Extend(Drain[T](q))
}

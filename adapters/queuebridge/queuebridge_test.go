// File: adapters/queuebridge/queuebridge_test.go
// Author: momentics <momentics@gmail.com>

package queuebridge_test

import (
	"testing"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/fixedvec/adapters/queuebridge"
	"github.com/momentics/fixedvec/api"
	"github.com/momentics/fixedvec/vec"
)

func fifo(elems ...int) *queue.Queue {
	q := queue.New()
	for _, e := range elems {
		q.Add(e)
	}
	return q
}

func TestCollect(t *testing.T) {
	v, err := queuebridge.Collect[int](4, fifo(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
	assert.Equal(t, 4, v.Cap())
}

func TestCollectOverflow(t *testing.T) {
	q := fifo(1, 2, 3, 4, 5)
	_, err := queuebridge.Collect[int](3, q)
	require.ErrorIs(t, err, api.ErrNotEnoughSpace)
	// the element that did not fit was already consumed from the queue
	assert.Equal(t, 1, q.Length())
}

func TestFill(t *testing.T) {
	v := vec.Of(6, 0)
	queuebridge.Fill(v, fifo(1, 2, 3))
	assert.Equal(t, []int{0, 1, 2, 3}, v.Slice())
}

func TestFillOverflowKeepsPartial(t *testing.T) {
	v := vec.New[int](2)
	q := fifo(1, 2, 3)
	assert.Panics(t, func() { queuebridge.Fill(v, q) })
	assert.Equal(t, []int{1, 2}, v.Slice())
}

func TestDrainStopsEarly(t *testing.T) {
	q := fifo(1, 2, 3, 4)
	for value := range queuebridge.Drain[int](q) {
		if value == 2 {
			break
		}
	}
	// unread remainder stays in the queue
	assert.Equal(t, 2, q.Length())
}

func TestDrainTypeMismatch(t *testing.T) {
	q := queue.New()
	q.Add("not an int")
	assert.Panics(t, func() {
		for range queuebridge.Drain[int](q) {
		}
	})
}

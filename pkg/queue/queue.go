// Copyright 2025 The Sequtil Authors.
//
// Use of this software is governed by the BSD-style license
// included in the /LICENSE file.

// Package queue implements a FIFO queue on top of the list package.
package queue

import "github.com/sequtil/chain/pkg/list"

// Queue is a first in, first out container backed by a list.List. Enqueue
// appends behind the list's tail reference and Dequeue pops its head, so
// both are O(1). The zero value is an empty queue ready to use.
type Queue[T comparable] struct {
	list list.List[T]
}

// New returns an empty queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue adds v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.list.PushBack(v)
}

// Dequeue removes and returns the value at the front of the queue. The
// second return value is false when the queue holds no values.
func (q *Queue[T]) Dequeue() (T, bool) {
	v, err := q.list.PopFront()
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// Peek returns the value at the front of the queue without removing it. The
// second return value is false when the queue holds no values.
func (q *Queue[T]) Peek() (T, bool) {
	return q.list.Get(0)
}

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int {
	return q.list.Len()
}

// Empty reports whether the queue holds no values.
func (q *Queue[T]) Empty() bool {
	return q.list.IsEmpty()
}

// Copyright 2025 The Sequtil Authors.
//
// Use of this software is governed by the BSD-style license
// included in the /LICENSE file.

// Package stack implements a LIFO stack on top of the list package.
package stack

import "github.com/sequtil/chain/pkg/list"

// Stack is a last in, first out container backed by a list.List. Pushes and
// pops work on the front of the list, so both are O(1). The zero value is an
// empty stack ready to use.
type Stack[T comparable] struct {
	list list.List[T]
}

// New returns an empty stack.
func New[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.list.PushFront(v)
}

// Pop removes and returns the value on top of the stack. It fails with
// list.ErrEmptyList when the stack holds no values.
func (s *Stack[T]) Pop() (T, error) {
	return s.list.PopFront()
}

// Peek returns the value on top of the stack without removing it. The second
// return value is false when the stack holds no values.
func (s *Stack[T]) Peek() (T, bool) {
	return s.list.Get(0)
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return s.list.Len()
}

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool {
	return s.list.IsEmpty()
}

// Copyright 2025 The Sequtil Authors.
//
// Use of this software is governed by the BSD-style license
// included in the /LICENSE file.

// Package list implements a generic singly-linked list over shared, mutable
// nodes.
//
// A List tracks its head, its tail, and its length. Pushes at either end and
// a pop at the front run in constant time; popping the back and all
// positional operations walk the chain from the head. Nodes are ordinary
// GC-managed values: a node stays alive for as long as a list, an iterator,
// or caller code references it, and an unreferenced chain is reclaimed
// without any explicit teardown.
//
// Out-of-range positions and pops from an empty list report sentinel errors
// (ErrEmptyList and friends) that callers test with errors.Is. None of the
// operations panic on caller input.
//
// A List is not safe for concurrent use.
package list

import "github.com/cockroachdb/errors"

var (
	// ErrEmptyList is returned when popping from a list that holds no
	// elements.
	ErrEmptyList = errors.New("list is empty")
	// ErrInsertOutOfRange is returned by InsertAt for positions outside
	// [0, Len()].
	ErrInsertOutOfRange = errors.New("insert position out of range")
	// ErrRemoveOutOfRange is returned by RemoveAt for positions outside
	// [0, Len()).
	ErrRemoveOutOfRange = errors.New("remove position out of range")
	// ErrRemoveFromEmptyList is returned by RemoveAt(0) on an empty list,
	// where no position is in range.
	ErrRemoveFromEmptyList = errors.New("remove from empty list")
)

// List is a singly-linked sequence of nodes. The zero value is an empty list
// ready to use.
//
// The element type must be comparable so that IndexesOf can match values by
// equality.
type List[T comparable] struct {
	len  int
	head *Node[T]
	tail *Node[T]
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// FromSlice returns a list holding the values of vs in order.
func FromSlice[T comparable](vs []T) *List[T] {
	l := New[T]()
	for _, v := range vs {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements in the list. The length is tracked, not
// recounted, so Len is O(1).
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// PushFront prepends v to the list in O(1).
func (l *List[T]) PushFront(v T) {
	l.head = NewNode(v, l.head)
	if l.tail == nil {
		l.tail = l.head
	}
	l.len++
}

// PushBack appends v to the list. The tail reference makes this O(1).
func (l *List[T]) PushBack(v T) {
	n := NewNode(v, nil)
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.len++
}

// PopFront removes the first element and returns its value in O(1). It fails
// with ErrEmptyList when the list holds no elements.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	popped := l.head
	l.head = popped.next
	if l.head == nil {
		l.tail = nil
	}
	l.len--
	return popped.Value, nil
}

// PopBack removes the last element and returns its value. It fails with
// ErrEmptyList when the list holds no elements.
//
// Without back links the predecessor of the tail is only reachable from the
// head, so PopBack walks the whole chain and costs O(n).
func (l *List[T]) PopBack() (T, error) {
	switch l.len {
	case 0:
		var zero T
		return zero, ErrEmptyList
	case 1:
		return l.PopFront()
	}
	prev := l.head
	for step := 0; step < l.len-2; step++ {
		prev = prev.next
	}
	v, err := prev.RemoveNext()
	if err != nil {
		// The walk above stopped at the second to last node.
		panic(err)
	}
	l.tail = prev
	l.len--
	return v, nil
}

// InsertAt inserts v so that it ends up at position at, shifting later
// elements one position back. Valid positions are 0 through Len() inclusive;
// inserting at Len() appends. Other positions fail with ErrInsertOutOfRange.
//
// The ends are O(1); interior positions walk at-1 nodes from the head.
func (l *List[T]) InsertAt(at int, v T) error {
	if at < 0 || at > l.len {
		return ErrInsertOutOfRange
	}
	switch at {
	case 0:
		l.PushFront(v)
	case l.len:
		l.PushBack(v)
	default:
		prev := l.head
		for step := 0; step < at-1; step++ {
			prev = prev.next
		}
		prev.InsertAfter(v)
		l.len++
	}
	return nil
}

// RemoveAt removes the element at position at and returns its value. Valid
// positions are 0 through Len()-1. On an empty list RemoveAt(0) fails with
// ErrRemoveFromEmptyList; every other invalid position fails with
// ErrRemoveOutOfRange.
//
// Removing the front is O(1); other positions walk at-1 nodes from the head.
func (l *List[T]) RemoveAt(at int) (T, error) {
	if l.len == 0 && at == 0 {
		var zero T
		return zero, ErrRemoveFromEmptyList
	}
	if at < 0 || at >= l.len {
		var zero T
		return zero, ErrRemoveOutOfRange
	}
	if at == 0 {
		return l.PopFront()
	}
	prev := l.head
	for step := 0; step < at-1; step++ {
		prev = prev.next
	}
	if at == l.len-1 {
		l.tail = prev
	}
	v, err := prev.RemoveNext()
	if err != nil {
		// The bounds check above guarantees prev has a successor.
		panic(err)
	}
	l.len--
	return v, nil
}

// IndexesOf returns the positions of every element equal to v, in ascending
// order. It returns nil when no element matches.
func (l *List[T]) IndexesOf(v T) []int {
	var ixs []int
	ix := 0
	for n := l.head; n != nil; n = n.next {
		if n.Value == v {
			ixs = append(ixs, ix)
		}
		ix++
	}
	return ixs
}

// ValueAt returns a copy of the value at position ix. The second return
// value is false when ix is out of range.
func (l *List[T]) ValueAt(ix int) (T, bool) {
	if ix < 0 || ix >= l.len {
		var zero T
		return zero, false
	}
	n := l.head
	for step := 0; step < ix; step++ {
		n = n.next
	}
	return n.Value, true
}

// Get is shorthand for ValueAt.
func (l *List[T]) Get(ix int) (T, bool) {
	return l.ValueAt(ix)
}

// Clear detaches the list from its chain in O(1), leaving it empty. The
// chain itself is not unlinked: nodes still referenced by iterators or by
// caller code stay alive and connected, and an unreferenced chain is
// reclaimed by the garbage collector.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// Clone returns a list with the same values in fresh nodes. The copy shares
// no structure with the original: mutations on one are invisible to the
// other.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	for n := l.head; n != nil; n = n.next {
		out.PushBack(n.Value)
	}
	return out
}

// ToSlice returns the list's values in order, or nil for an empty list.
func (l *List[T]) ToSlice() []T {
	if l.len == 0 {
		return nil
	}
	out := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}

// Copyright 2025 The Sequtil Authors.
//
// Use of this software is governed by the BSD-style license
// included in the /LICENSE file.

package list

// Iterator yields the values of a chain from front to back. It is single
// pass and forward only; once exhausted it stays exhausted.
//
// The cursor is a node reference, not a snapshot. Whatever part of the chain
// is still ahead of the cursor is read live, so splices and value writes
// that happen between calls to Next are observed. Removing a node from a
// list rewires only its predecessor, so a cursor parked on the removed node
// yields it and then continues through the surviving chain.
type Iterator[T any] struct {
	curr *Node[T]
}

// Iter returns an iterator positioned at the list's head. The list is not
// modified and stays fully usable while the iterator runs.
func (l *List[T]) Iter() Iterator[T] {
	return Iterator[T]{curr: l.head}
}

// Drain empties the list and returns an iterator that has taken over its
// chain. After Drain the list reports length zero and owns no nodes; the
// values live on only behind the returned iterator.
func (l *List[T]) Drain() Iterator[T] {
	it := Iterator[T]{curr: l.head}
	l.Clear()
	return it
}

// Next returns the value under the cursor and advances past it. The second
// return value is false once the chain is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.curr == nil {
		var zero T
		return zero, false
	}
	v := it.curr.Value
	it.curr = it.curr.next
	return v, true
}

// Copyright 2025 The Sequtil Authors.
//
// Use of this software is governed by the BSD-style license
// included in the /LICENSE file.

package list

import "github.com/cockroachdb/errors"

// ErrNoSuccessor is returned by Node.RemoveNext when the node is the last
// one in its chain.
var ErrNoSuccessor = errors.New("node has no successor")

// Node is a single link in a chain. Nodes are never copied by the types in
// this package, so any number of lists, iterators, and callers can hold
// references to the same node and observe each other's writes.
type Node[T any] struct {
	// Value is the element stored in the node. It may be read and written
	// through any reference to the node.
	Value T
	next  *Node[T]
}

// NewNode returns a node holding v whose successor is next. A nil next makes
// the node a chain terminator.
func NewNode[T any](v T, next *Node[T]) *Node[T] {
	return &Node[T]{Value: v, next: next}
}

// Next returns the node's successor, or nil if the node terminates its chain.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// InsertAfter splices a new node holding v between n and its current
// successor.
//
// Splicing directly into a chain owned by a List bypasses the List's length
// and tail bookkeeping; use the List's own methods for nodes it owns.
func (n *Node[T]) InsertAfter(v T) {
	n.next = NewNode(v, n.next)
}

// RemoveNext unlinks n's successor from the chain and returns its value.
// Only n's own link changes: the removed node keeps its successor reference,
// so a cursor parked on it still leads into the surviving chain.
func (n *Node[T]) RemoveNext() (T, error) {
	if n.next == nil {
		var zero T
		return zero, ErrNoSuccessor
	}
	removed := n.next
	n.next = removed.next
	return removed.Value, nil
}

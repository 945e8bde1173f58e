// Copyright 2025 The Sequtil Authors.
//
// Use of this software is governed by the BSD-style license
// included in the /LICENSE file.

package list_test

import (
	"fmt"

	"github.com/sequtil/chain/pkg/list"
)

func Example() {
	// Create a new list and put some numbers in it.
	l := list.New[int]()
	l.PushBack(4)
	l.PushFront(1)
	l.InsertAt(1, 2)
	l.InsertAt(2, 3)

	// Iterate through the list and print its contents.
	it := l.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fmt.Println(v)
	}

	// Output:
	// 1
	// 2
	// 3
	// 4
}

func ExampleList_Drain() {
	l := list.FromSlice([]int{1, 2, 3})
	it := l.Drain()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fmt.Println(v)
	}
	fmt.Println("remaining:", l.Len())

	// Output:
	// 1
	// 2
	// 3
	// remaining: 0
}

func ExampleList_String() {
	fmt.Println(list.FromSlice([]int{0, 1, 2}))

	// Output:
	// (0 -> 1 -> 2)
}

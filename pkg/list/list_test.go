// Copyright 2025 The Sequtil Authors.
//
// Use of this software is governed by the BSD-style license
// included in the /LICENSE file.

package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the head/tail/len relation directly on the
// list's fields.
func checkInvariants[T comparable](t *testing.T, l *List[T]) {
	t.Helper()
	switch l.len {
	case 0:
		require.Nil(t, l.head)
		require.Nil(t, l.tail)
	case 1:
		require.NotNil(t, l.head)
		require.Same(t, l.head, l.tail)
		require.Nil(t, l.head.next)
	default:
		n := l.head
		for step := 0; step < l.len-1; step++ {
			require.NotNil(t, n, "chain ended after %d steps, len is %d", step, l.len)
			n = n.next
		}
		require.Same(t, l.tail, n)
		require.Nil(t, l.tail.next)
	}
}

// requireValues verifies the list's length, contents, and invariants.
func requireValues[T comparable](t *testing.T, l *List[T], want []T) {
	t.Helper()
	require.Equal(t, len(want), l.Len())
	if len(want) == 0 {
		require.Nil(t, l.ToSlice())
	} else {
		require.Equal(t, want, l.ToSlice())
	}
	checkInvariants(t, l)
}

func TestZeroValue(t *testing.T) {
	var l List[int]
	require.Equal(t, 0, l.Len())
	require.True(t, l.IsEmpty())
	l.PushBack(1)
	requireValues(t, &l, []int{1})
}

func TestPushFront(t *testing.T) {
	l := New[int]()
	l.PushFront(1)
	requireValues(t, l, []int{1})
	l.PushFront(2)
	l.PushFront(3)
	requireValues(t, l, []int{3, 2, 1})
}

func TestPushBack(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	requireValues(t, l, []int{1})
	l.PushBack(2)
	l.PushBack(3)
	requireValues(t, l, []int{1, 2, 3})
}

func TestPopFront(t *testing.T) {
	l := New[int]()
	_, err := l.PopFront()
	require.ErrorIs(t, err, ErrEmptyList)

	l.PushBack(1)
	l.PushBack(2)
	v, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	requireValues(t, l, []int{2})

	v, err = l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	requireValues(t, l, []int{})

	_, err = l.PopFront()
	require.ErrorIs(t, err, ErrEmptyList)
}

func TestPopBack(t *testing.T) {
	l := New[int]()
	_, err := l.PopBack()
	require.ErrorIs(t, err, ErrEmptyList)

	l.PushBack(1)
	v, err := l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	requireValues(t, l, []int{})

	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	v, err = l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	requireValues(t, l, []int{1, 2})

	// The tail must have retreated so appends land after 2, not after the
	// popped 3.
	l.PushBack(4)
	requireValues(t, l, []int{1, 2, 4})
}

func TestInsertAt(t *testing.T) {
	l := New[int]()

	// Inserting anywhere but 0 in an empty list is out of range.
	require.ErrorIs(t, l.InsertAt(1, 10), ErrInsertOutOfRange)
	require.ErrorIs(t, l.InsertAt(-1, 10), ErrInsertOutOfRange)

	// Position 0 in an empty list is the append case.
	require.NoError(t, l.InsertAt(0, 2))
	requireValues(t, l, []int{2})

	// Front, back, and interior.
	require.NoError(t, l.InsertAt(0, 1))
	requireValues(t, l, []int{1, 2})
	require.NoError(t, l.InsertAt(2, 4))
	requireValues(t, l, []int{1, 2, 4})
	require.NoError(t, l.InsertAt(2, 3))
	requireValues(t, l, []int{1, 2, 3, 4})

	require.ErrorIs(t, l.InsertAt(5, 99), ErrInsertOutOfRange)
	requireValues(t, l, []int{1, 2, 3, 4})

	// Inserting at Len() must advance the tail so later appends chain on.
	require.NoError(t, l.InsertAt(4, 5))
	l.PushBack(6)
	requireValues(t, l, []int{1, 2, 3, 4, 5, 6})
}

func TestRemoveAt(t *testing.T) {
	l := New[int]()

	_, err := l.RemoveAt(0)
	require.ErrorIs(t, err, ErrRemoveFromEmptyList)
	_, err = l.RemoveAt(3)
	require.ErrorIs(t, err, ErrRemoveOutOfRange)

	for i := 1; i <= 5; i++ {
		l.PushBack(i)
	}

	_, err = l.RemoveAt(5)
	require.ErrorIs(t, err, ErrRemoveOutOfRange)
	_, err = l.RemoveAt(-1)
	require.ErrorIs(t, err, ErrRemoveOutOfRange)

	v, err := l.RemoveAt(0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	requireValues(t, l, []int{2, 3, 4, 5})

	v, err = l.RemoveAt(1)
	require.NoError(t, err)
	require.Equal(t, 3, v)
	requireValues(t, l, []int{2, 4, 5})

	// Removing the last position must retreat the tail.
	v, err = l.RemoveAt(2)
	require.NoError(t, err)
	require.Equal(t, 5, v)
	l.PushBack(6)
	requireValues(t, l, []int{2, 4, 6})
}

func TestRemoveAtSingleElement(t *testing.T) {
	l := New[string]()
	l.PushBack("only")
	v, err := l.RemoveAt(0)
	require.NoError(t, err)
	require.Equal(t, "only", v)
	requireValues(t, l, []string{})
}

func TestIndexesOf(t *testing.T) {
	l := FromSlice([]int{1, 2, 1, 3, 1})
	require.Equal(t, []int{0, 2, 4}, l.IndexesOf(1))
	require.Equal(t, []int{1}, l.IndexesOf(2))
	require.Empty(t, l.IndexesOf(9))
	require.Empty(t, New[int]().IndexesOf(0))
}

func TestValueAt(t *testing.T) {
	l := FromSlice([]int{10, 20, 30})
	for ix, want := range []int{10, 20, 30} {
		v, ok := l.ValueAt(ix)
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	_, ok := l.ValueAt(3)
	require.False(t, ok)
	_, ok = l.ValueAt(-1)
	require.False(t, ok)

	// Get is the same lookup.
	v, ok := l.Get(1)
	require.True(t, ok)
	require.Equal(t, 20, v)
}

func TestLen(t *testing.T) {
	l := New[int]()
	require.Equal(t, 0, l.Len())
	require.True(t, l.IsEmpty())
	l.PushBack(1)
	l.PushFront(0)
	require.Equal(t, 2, l.Len())
	require.False(t, l.IsEmpty())
	_, err := l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 1, l.Len())
}

func TestClear(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	l.Clear()
	requireValues(t, l, []int{})

	// The list is immediately reusable.
	l.PushBack(4)
	requireValues(t, l, []int{4})

	// Clearing an empty list is a no-op.
	New[int]().Clear()
}

func TestClone(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	cp := l.Clone()
	requireValues(t, cp, []int{1, 2, 3})

	// The copy shares no nodes: mutating either side leaves the other
	// untouched.
	_, err := l.PopBack()
	require.NoError(t, err)
	requireValues(t, l, []int{1, 2})
	requireValues(t, cp, []int{1, 2, 3})

	cp.PushFront(0)
	requireValues(t, l, []int{1, 2})
	requireValues(t, cp, []int{0, 1, 2, 3})
}

func TestCloneEmpty(t *testing.T) {
	cp := New[int]().Clone()
	requireValues(t, cp, []int{})
}

func TestFromSliceToSlice(t *testing.T) {
	vs := []int{5, 4, 3, 2, 1}
	l := FromSlice(vs)
	requireValues(t, l, vs)
	require.Nil(t, New[int]().ToSlice())
	require.Nil(t, FromSlice([]int(nil)).ToSlice())
}

func TestErrorIdentities(t *testing.T) {
	// The sentinels are distinct, so callers can branch on the exact
	// failure.
	sentinels := []error{
		ErrEmptyList,
		ErrInsertOutOfRange,
		ErrRemoveOutOfRange,
		ErrRemoveFromEmptyList,
		ErrNoSuccessor,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				assert.ErrorIs(t, a, b)
			} else {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestMixedOperationScenario(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushFront(0)
	requireValues(t, l, []int{0, 1, 2})

	v, err := l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	requireValues(t, l, []int{0, 1})

	require.NoError(t, l.InsertAt(1, 9))
	requireValues(t, l, []int{0, 9, 1})

	v, err = l.RemoveAt(0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
	requireValues(t, l, []int{9, 1})

	require.Equal(t, []int{1}, l.IndexesOf(1))
}

func TestStringValues(t *testing.T) {
	// The element type only needs comparability, not ordering.
	l := New[string]()
	l.PushBack("b")
	l.PushFront("a")
	require.Equal(t, []string{"a", "b"}, l.ToSlice())
	require.Equal(t, []int{0}, l.IndexesOf("a"))
	v, err := l.PopBack()
	require.NoError(t, err)
	require.Equal(t, "b", v)
}

func TestHeadTailAliasing(t *testing.T) {
	// With one element, head and tail are the same node, and both pop
	// paths agree.
	l := New[int]()
	l.PushFront(7)
	require.Same(t, l.head, l.tail)

	v, err := l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 7, v)
	requireValues(t, l, []int{})

	l.PushBack(8)
	require.Same(t, l.head, l.tail)
	v, err = l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 8, v)
	requireValues(t, l, []int{})
}

func TestPopBackThenGrowAgain(t *testing.T) {
	// Alternate growth and shrinkage across the one-element boundary to
	// shake out stale head or tail references.
	l := New[int]()
	for round := 0; round < 3; round++ {
		l.PushBack(1)
		l.PushBack(2)
		_, err := l.PopBack()
		require.NoError(t, err)
		_, err = l.PopFront()
		require.NoError(t, err)
		requireValues(t, l, []int{})
	}
}

func TestErrorsDoNotMutate(t *testing.T) {
	l := FromSlice([]int{1, 2})

	require.ErrorIs(t, l.InsertAt(7, 9), ErrInsertOutOfRange)
	requireValues(t, l, []int{1, 2})

	_, err := l.RemoveAt(2)
	require.ErrorIs(t, err, ErrRemoveOutOfRange)
	requireValues(t, l, []int{1, 2})

	empty := New[int]()
	_, err = empty.PopFront()
	require.ErrorIs(t, err, ErrEmptyList)
	_, err = empty.PopBack()
	require.ErrorIs(t, err, ErrEmptyList)
	requireValues(t, empty, []int{})
}

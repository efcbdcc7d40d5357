package iteratable

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"
)

// Set is an insertion-ordered set. Elements must be comparable (usable as map keys).
type Set struct {
	order   *arraylist.List // elements in insertion order
	members *hashset.Set    // membership test
	cursor  int             // position of a running iteration
}

// NewSet creates a set, pre-filled with values.
func NewSet(values ...interface{}) *Set {
	S := &Set{
		order:   arraylist.New(),
		members: hashset.New(),
		cursor:  -1,
	}
	for _, v := range values {
		S.Add(v)
	}
	return S
}

// Add inserts v and reports whether v has not been in S before.
func (S *Set) Add(v interface{}) bool {
	if S.members.Contains(v) {
		return false
	}
	S.members.Add(v)
	S.order.Add(v)
	return true
}

// Contains checks if v is an element of S.
func (S *Set) Contains(v interface{}) bool {
	return S.members.Contains(v)
}

// Size returns the number of elements.
func (S *Set) Size() int {
	return S.order.Size()
}

// Empty is true for a set without elements.
func (S *Set) Empty() bool {
	return S.order.Empty()
}

// Values returns the elements of S in insertion order.
func (S *Set) Values() []interface{} {
	return S.order.Values()
}

// Copy returns a shallow copy of S.
func (S *Set) Copy() *Set {
	return NewSet(S.Values()...)
}

// Union adds all elements of T to S and returns S.
func (S *Set) Union(T *Set) *Set {
	if T == nil {
		return S
	}
	for _, v := range T.Values() {
		S.Add(v)
	}
	return S
}

// Difference returns a new set with all elements of S which are not in T.
func (S *Set) Difference(T *Set) *Set {
	D := NewSet()
	for _, v := range S.Values() {
		if T == nil || !T.Contains(v) {
			D.Add(v)
		}
	}
	return D
}

// Equals is true if S and T contain the same elements, regardless of order.
func (S *Set) Equals(T *Set) bool {
	if T == nil || S.Size() != T.Size() {
		return false
	}
	for _, v := range S.Values() {
		if !T.Contains(v) {
			return false
		}
	}
	return true
}

// Each calls f for every element, in insertion order.
func (S *Set) Each(f func(v interface{})) {
	S.order.Each(func(_ int, v interface{}) {
		f(v)
	})
}

// --- Iteration -------------------------------------------------------------

// IterateOnce starts an iteration. Use it like this:
//
//     S.IterateOnce()
//     for S.Next() {
//         x := S.Item()
//         S.Add(…)       // will be visited by this loop later on
//     }
//
func (S *Set) IterateOnce() {
	S.cursor = -1
}

// Next moves the iteration to the next element and returns false if there is none.
func (S *Set) Next() bool {
	if S.cursor < S.order.Size() {
		S.cursor++
	}
	return S.cursor < S.order.Size()
}

// Item returns the current element of an iteration.
func (S *Set) Item() interface{} {
	v, ok := S.order.Get(S.cursor)
	if !ok {
		return nil
	}
	return v
}

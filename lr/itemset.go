package lr

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/slrgen/lr/iteratable"
)

// ItemSet is a set of LR(0) items. Items keep their insertion order, which
// is the order used for traversal (and thus for state numbering). Equality of
// item sets is independent of order.
type ItemSet struct {
	items *iteratable.Set
}

// NewItemSet creates an item set containing items.
func NewItemSet(items ...Item) *ItemSet {
	S := &ItemSet{items: iteratable.NewSet()}
	for _, i := range items {
		S.items.Add(i)
	}
	return S
}

// Add inserts an item and reports whether it has been new.
func (S *ItemSet) Add(i Item) bool {
	return S.items.Add(i)
}

// Contains checks for an item.
func (S *ItemSet) Contains(i Item) bool {
	return S.items.Contains(i)
}

// Size returns the number of items in S.
func (S *ItemSet) Size() int {
	return S.items.Size()
}

// Empty is true for an empty item set.
func (S *ItemSet) Empty() bool {
	return S.items.Empty()
}

// Items returns the items of S in insertion order.
func (S *ItemSet) Items() []Item {
	r := make([]Item, 0, S.items.Size())
	S.items.Each(func(v interface{}) {
		r = append(r, v.(Item))
	})
	return r
}

// Equals compares the content of two item sets.
func (S *ItemSet) Equals(other *ItemSet) bool {
	if other == nil {
		return false
	}
	return S.items.Equals(other.items)
}

// Copy returns a copy of S.
func (S *ItemSet) Copy() *ItemSet {
	return &ItemSet{items: S.items.Copy()}
}

// Key returns a canonical key for the content of S. Item sets with equal
// items have equal keys, independent of insertion order.
func (S *ItemSet) Key() string {
	sorted := treeset.NewWith(utils.StringComparator)
	S.items.Each(func(v interface{}) {
		i := v.(Item)
		sorted.Add(fmt.Sprintf("%s|%s|%d", i.lhs, i.rhs, i.dot))
	})
	encoding := make([]string, 0, sorted.Size())
	for _, v := range sorted.Values() {
		encoding = append(encoding, v.(string))
	}
	key, err := structhash.Hash(struct{ Items []string }{encoding}, 1)
	if err != nil {
		tracer().Errorf("cannot hash item set: %v", err)
		return strings.Join(encoding, "\n")
	}
	return key
}

func (S *ItemSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for n, i := range S.Items() {
		if n > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(i.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Dump is a debugging helper, writing the items of S to the tracer.
func (S *ItemSet) Dump() {
	for _, i := range S.Items() {
		tracer().Debugf("   %s", i)
	}
}

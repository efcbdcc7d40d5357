package lr

import (
	"bytes"
	"strings"
)

// Item is an LR(0) item, i.e. a production with a dot position.
//
//     E -> E . + T
//
// Items are small comparable values: two items are equal (==) iff they have the
// same left-hand side, the same right-hand side and the same dot position.
// This makes them usable as set elements and map keys.
type Item struct {
	lhs string
	rhs string // symbols of the production, separated by a single blank
	dot int
}

// NewItem creates an item for lhs -> rhs with the dot before rhs[dot].
// The dot is clamped to the range 0…len(rhs).
func NewItem(lhs string, rhs []string, dot int) Item {
	if dot < 0 {
		dot = 0
	} else if dot > len(rhs) {
		dot = len(rhs)
	}
	return Item{lhs: lhs, rhs: strings.Join(rhs, " "), dot: dot}
}

// StartItem returns the item  S' -> . S  for an augmented grammar g.
// If g has no production for its start symbol, the zero item is returned
// together with false.
func StartItem(g *Grammar) (Item, bool) {
	rules := g.rulesFor(g.StartSymbol())
	if len(rules) == 0 {
		return Item{}, false
	}
	return NewItem(g.StartSymbol(), rules[0], 0), true
}

// LHS returns the left-hand side non-terminal of the item's production.
func (i Item) LHS() string {
	return i.lhs
}

// RHS returns the right-hand side of the item's production.
func (i Item) RHS() Production {
	return strings.Fields(i.rhs)
}

// Dot returns the dot position.
func (i Item) Dot() int {
	return i.dot
}

// NextSymbol returns the symbol immediately right of the dot. Completed items
// and epsilon items have no next symbol.
func (i Item) NextSymbol() (string, bool) {
	rhs := i.RHS()
	if i.dot >= len(rhs) || rhs.IsEpsilon() {
		return "", false
	}
	return rhs[i.dot], true
}

// IsComplete is true if the dot is at the end of the production. An epsilon
// item  A -> . e  is complete.
func (i Item) IsComplete() bool {
	_, ok := i.NextSymbol()
	return !ok
}

// Advance returns a copy of i with the dot moved one position to the right.
// For complete items i itself is returned.
func (i Item) Advance() Item {
	if i.IsComplete() {
		return i
	}
	return Item{lhs: i.lhs, rhs: i.rhs, dot: i.dot + 1}
}

// Prefix returns the symbols left of the dot.
func (i Item) Prefix() []string {
	return i.RHS()[:i.dot]
}

// Production returns the item's production as (lhs, rhs).
func (i Item) Production() (string, Production) {
	return i.lhs, i.RHS()
}

func (i Item) String() string {
	var b bytes.Buffer
	b.WriteString(i.lhs)
	b.WriteString(" ->")
	for n, sym := range i.RHS() {
		if n == i.dot {
			b.WriteString(" .")
		}
		b.WriteString(" ")
		b.WriteString(sym)
	}
	if i.dot == len(i.RHS()) {
		b.WriteString(" .")
	}
	return b.String()
}

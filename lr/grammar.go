package lr

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/slrgen"
)

// ErrMalformedProduction is returned (wrapped) for production text which does
// not follow the form  LHS -> alt1 | alt2 | …
var ErrMalformedProduction = errors.New("malformed production")

// --- Productions -----------------------------------------------------------

// Production is the right-hand side of a grammar rule, i.e. a sequence of
// symbols. The empty word is represented as a production containing nothing
// but slrgen.Epsilon; productions of length zero do not occur.
type Production []string

// IsEpsilon is true for the production  A -> e.
func (p Production) IsEpsilon() bool {
	return len(p) == 1 && p[0] == slrgen.Epsilon
}

// Equal compares two productions symbol by symbol.
func (p Production) Equal(other Production) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Production) String() string {
	return strings.Join(p, " ")
}

func (p Production) copy() Production {
	c := make(Production, len(p))
	copy(c, p)
	return c
}

// IsNonTerminalName checks the lexical convention for non-terminals:
// the first character is an upper-case letter.
func IsNonTerminalName(sym string) bool {
	if sym == "" || sym == slrgen.Epsilon {
		return false
	}
	r, _ := utf8.DecodeRuneInString(sym)
	return unicode.IsUpper(r)
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context-free grammar. Symbols are strings and are classified
// purely lexically: a symbol starting with an upper-case letter is a
// non-terminal, every other symbol except slrgen.Epsilon is a terminal.
//
// Productions, terminals and non-terminals keep their insertion order. This
// order is observable, e.g. in the numbering of CFSM states.
//
// A grammar is built once and must be treated as immutable afterwards. It must
// not be shared between goroutines while productions are being added.
type Grammar struct {
	start        string
	rules        *linkedhashmap.Map // non-terminal → []Production
	terminals    *linkedhashset.Set
	nonterminals *linkedhashset.Set
}

// NewGrammar creates an empty grammar. If start is empty, the left-hand side
// of the first production added will become the start symbol.
func NewGrammar(start string) *Grammar {
	return &Grammar{
		start:        start,
		rules:        linkedhashmap.New(),
		terminals:    linkedhashset.New(),
		nonterminals: linkedhashset.New(),
	}
}

// ParseGrammar creates a grammar from production lines. Blank lines are skipped.
func ParseGrammar(start string, lines ...string) (*Grammar, error) {
	g := NewGrammar(start)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := g.AddProduction(line); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddProduction adds a line of production text of the form
//
//     LHS -> alt1 | alt2 | …
//
// where each alternative is a whitespace separated sequence of symbols.
// Adding productions for a left-hand side which is already present appends
// the new alternatives. Malformed text leaves the grammar untouched and
// returns an error wrapping ErrMalformedProduction.
func (g *Grammar) AddProduction(text string) error {
	lhs, alternatives, err := splitProduction(text)
	if err != nil {
		return err
	}
	if g.start == "" {
		g.start = lhs
	}
	g.nonterminals.Add(lhs)
	if _, found := g.rules.Get(lhs); !found {
		g.rules.Put(lhs, []Production{})
	}
	for _, rhs := range alternatives {
		g.appendRule(lhs, rhs)
		for _, sym := range rhs {
			g.classify(sym)
		}
		g.terminals.Remove(slrgen.Epsilon)
	}
	tracer().Debugf("added %s -> %v", lhs, alternatives)
	return nil
}

// MustAddProduction is like AddProduction, but panics on malformed input.
// It returns g to allow chaining.
func (g *Grammar) MustAddProduction(text string) *Grammar {
	if err := g.AddProduction(text); err != nil {
		panic(err.Error())
	}
	return g
}

func splitProduction(text string) (string, []Production, error) {
	malformed := func(reason string) error {
		return fmt.Errorf("%w: %s: %q", ErrMalformedProduction, reason, text)
	}
	sides := strings.Split(text, "->")
	if len(sides) < 2 {
		return "", nil, malformed("missing '->'")
	} else if len(sides) > 2 {
		return "", nil, malformed("more than one '->'")
	}
	lhs := strings.TrimSpace(sides[0])
	if lhs == "" {
		return "", nil, malformed("empty left-hand side")
	}
	if len(strings.Fields(lhs)) != 1 {
		return "", nil, malformed("left-hand side must be a single symbol")
	}
	if !IsNonTerminalName(lhs) {
		return "", nil, malformed("left-hand side must be a non-terminal")
	}
	var alternatives []Production
	for _, alt := range strings.Split(sides[1], "|") {
		rhs := Production(strings.Fields(alt))
		if len(rhs) == 0 {
			return "", nil, malformed("empty alternative")
		}
		for _, sym := range rhs {
			if sym == slrgen.EndMarker {
				return "", nil, malformed("end marker '$' is reserved")
			}
			if sym == slrgen.Epsilon && len(rhs) > 1 {
				return "", nil, malformed("epsilon must stand alone")
			}
		}
		alternatives = append(alternatives, rhs)
	}
	return lhs, alternatives, nil
}

func (g *Grammar) appendRule(lhs string, rhs Production) {
	rules := g.rulesFor(lhs)
	g.rules.Put(lhs, append(rules, rhs))
}

// classify puts a symbol into the set of terminals or non-terminals.
func (g *Grammar) classify(sym string) {
	if sym == slrgen.Epsilon {
		return
	}
	if IsNonTerminalName(sym) {
		g.nonterminals.Add(sym)
	} else {
		g.terminals.Add(sym)
	}
}

// rulesFor returns the alternatives for A without copying.
func (g *Grammar) rulesFor(A string) []Production {
	if v, found := g.rules.Get(A); found {
		return v.([]Production)
	}
	return nil
}

// Augmented returns a new grammar G' for G. G' has a fresh start symbol S',
// made unique by appending apostrophes to the start symbol S of G, and an
// additional production S' -> S. All productions of G are copied; changing G'
// will never affect G.
func (g *Grammar) Augmented() *Grammar {
	start := g.start + "'"
	for g.terminals.Contains(start) || g.nonterminals.Contains(start) {
		start += "'"
	}
	ag := NewGrammar(start)
	ag.nonterminals.Add(start)
	ag.rules.Put(start, []Production{{g.start}})
	g.copyInto(ag)
	ag.EachProduction(func(lhs string, rhs Production) {
		for _, sym := range rhs {
			if !ag.terminals.Contains(sym) && !ag.nonterminals.Contains(sym) {
				ag.classify(sym)
			}
		}
	})
	ag.terminals.Remove(slrgen.Epsilon)
	return ag
}

// Copy returns a deep copy of g.
func (g *Grammar) Copy() *Grammar {
	c := NewGrammar(g.start)
	g.copyInto(c)
	return c
}

func (g *Grammar) copyInto(target *Grammar) {
	g.rules.Each(func(k, v interface{}) {
		lhs := k.(string)
		for _, rhs := range v.([]Production) {
			target.appendRule(lhs, rhs.copy())
		}
	})
	target.terminals.Add(g.terminals.Values()...)
	target.nonterminals.Add(g.nonterminals.Values()...)
}

// StartSymbol returns the start symbol of g.
func (g *Grammar) StartSymbol() string {
	return g.start
}

// Terminals returns all terminals of g, in order of appearance.
func (g *Grammar) Terminals() []string {
	return toStrings(g.terminals.Values())
}

// NonTerminals returns all non-terminals of g, in order of appearance.
func (g *Grammar) NonTerminals() []string {
	return toStrings(g.nonterminals.Values())
}

// IsTerminal checks if sym is a terminal of g.
func (g *Grammar) IsTerminal(sym string) bool {
	return g.terminals.Contains(sym)
}

// IsNonTerminal checks if sym is a non-terminal of g.
func (g *Grammar) IsNonTerminal(sym string) bool {
	return g.nonterminals.Contains(sym)
}

// Productions returns a copy of the alternatives of non-terminal A.
func (g *Grammar) Productions(A string) []Production {
	rules := g.rulesFor(A)
	c := make([]Production, len(rules))
	for i, rhs := range rules {
		c[i] = rhs.copy()
	}
	return c
}

// EachProduction calls f for every production of g, grouped by left-hand side
// in insertion order. f must not modify rhs.
func (g *Grammar) EachProduction(f func(lhs string, rhs Production)) {
	it := g.rules.Iterator()
	for it.Next() {
		lhs := it.Key().(string)
		for _, rhs := range it.Value().([]Production) {
			f(lhs, rhs)
		}
	}
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	n := 0
	g.rules.Each(func(_, v interface{}) {
		n += len(v.([]Production))
	})
	return n
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	it := g.rules.Iterator()
	for it.Next() {
		alts := it.Value().([]Production)
		rhs := make([]string, len(alts))
		for i, alt := range alts {
			rhs[i] = alt.String()
		}
		b.WriteString(fmt.Sprintf("%s -> %s\n", it.Key(), strings.Join(rhs, " | ")))
	}
	return b.String()
}

// Dump is a debugging helper, writing the grammar to the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar, start symbol %s -----------", g.start)
	n := 0
	g.EachProduction(func(lhs string, rhs Production) {
		tracer().Debugf("%3d: %s -> %v", n, lhs, rhs)
		n++
	})
	tracer().Debugf("terminals     = %v", g.Terminals())
	tracer().Debugf("non-terminals = %v", g.NonTerminals())
}

func toStrings(values []interface{}) []string {
	r := make([]string, len(values))
	for i, v := range values {
		r[i] = v.(string)
	}
	return r
}

package lr

import (
	"bytes"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/slrgen"
)

// --- Symbol sets -----------------------------------------------------------

// SymbolSet is a sorted set of grammar symbols, used for FIRST and FOLLOW sets.
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a symbol set containing syms.
func NewSymbolSet(syms ...string) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(utils.StringComparator)}
	for _, sym := range syms {
		S.set.Add(sym)
	}
	return S
}

// Add inserts a symbol and reports whether it has been new.
func (S *SymbolSet) Add(sym string) bool {
	if S.set.Contains(sym) {
		return false
	}
	S.set.Add(sym)
	return true
}

// AddAll inserts all symbols of T, except the ones given in skip. It reports
// whether S changed.
func (S *SymbolSet) AddAll(T *SymbolSet, skip ...string) bool {
	if T == nil {
		return false
	}
	changed := false
	T.set.Each(func(_ int, v interface{}) {
		sym := v.(string)
		for _, s := range skip {
			if s == sym {
				return
			}
		}
		if S.Add(sym) {
			changed = true
		}
	})
	return changed
}

// Contains checks for a symbol. A nil set contains nothing.
func (S *SymbolSet) Contains(sym string) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(sym)
}

// Size returns the number of symbols in S.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Symbols returns the symbols of S in lexical order.
func (S *SymbolSet) Symbols() []string {
	if S == nil {
		return []string{}
	}
	return toStrings(S.set.Values())
}

// Equals compares the content of two symbol sets.
func (S *SymbolSet) Equals(T *SymbolSet) bool {
	if S.Size() != T.Size() {
		return false
	}
	for _, sym := range S.Symbols() {
		if !T.Contains(sym) {
			return false
		}
	}
	return true
}

func (S *SymbolSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for _, sym := range S.Symbols() {
		b.WriteString(" ")
		b.WriteString(sym)
	}
	b.WriteString(" }")
	return b.String()
}

// SymbolSets maps non-terminals to their FIRST or FOLLOW sets.
type SymbolSets map[string]*SymbolSet

// --- FIRST and FOLLOW ------------------------------------------------------

// ComputeFirst computes FIRST(A) for every non-terminal A of g. A set contains
// slrgen.Epsilon if A may derive the empty word.
//
// Sets are grown in passes over all productions until no set changes. Left
// recursion is harmless, as every pass can only add elements.
func ComputeFirst(g *Grammar) SymbolSets {
	first := make(SymbolSets)
	for _, A := range g.NonTerminals() {
		first[A] = NewSymbolSet()
	}
	changed := true
	for pass := 1; changed; pass++ {
		changed = false
		g.EachProduction(func(lhs string, rhs Production) {
			if first.addFirstOf(lhs, rhs, g) {
				changed = true
			}
		})
		tracer().Debugf("FIRST: pass %d, changed=%v", pass, changed)
	}
	return first
}

// addFirstOf adds FIRST(rhs) to FIRST(lhs).
func (first SymbolSets) addFirstOf(lhs string, rhs Production, g *Grammar) bool {
	F := first[lhs]
	changed := false
	for _, sym := range rhs {
		if sym == slrgen.Epsilon {
			return F.Add(slrgen.Epsilon) || changed
		}
		if !g.IsNonTerminal(sym) {
			return F.Add(sym) || changed
		}
		if F.AddAll(first[sym], slrgen.Epsilon) {
			changed = true
		}
		if !first[sym].Contains(slrgen.Epsilon) {
			return changed
		}
	}
	// every symbol may vanish
	return F.Add(slrgen.Epsilon) || changed
}

// ComputeFollow computes FOLLOW(A) for every non-terminal A of g, given the
// FIRST sets of g. FOLLOW of the start symbol contains slrgen.EndMarker.
func ComputeFollow(g *Grammar, first SymbolSets) SymbolSets {
	follow := make(SymbolSets)
	for _, A := range g.NonTerminals() {
		follow[A] = NewSymbolSet()
	}
	if F, ok := follow[g.StartSymbol()]; ok {
		F.Add(slrgen.EndMarker)
	}
	changed := true
	for pass := 1; changed; pass++ {
		changed = false
		g.EachProduction(func(lhs string, rhs Production) {
			for i, B := range rhs {
				if !g.IsNonTerminal(B) {
					continue
				}
				if follow.addFollowOf(B, lhs, rhs[i+1:], g, first) {
					changed = true
				}
			}
		})
		tracer().Debugf("FOLLOW: pass %d, changed=%v", pass, changed)
	}
	return follow
}

// addFollowOf handles an occurrence  lhs -> … B beta.
func (follow SymbolSets) addFollowOf(B, lhs string, beta []string, g *Grammar, first SymbolSets) bool {
	F := follow[B]
	changed := false
	for _, sym := range beta {
		if !g.IsNonTerminal(sym) {
			return F.Add(sym) || changed
		}
		if F.AddAll(first[sym], slrgen.Epsilon) {
			changed = true
		}
		if !first[sym].Contains(slrgen.Epsilon) {
			return changed
		}
	}
	// beta is empty or may vanish
	if F.AddAll(follow[lhs]) {
		changed = true
	}
	return changed
}

// --- Analysis --------------------------------------------------------------

// LRAnalysis holds the results of a static grammar analysis, i.e. the FIRST
// and FOLLOW sets of all non-terminals.
type LRAnalysis struct {
	g      *Grammar
	first  SymbolSets
	follow SymbolSets
}

// Analysis computes FIRST and FOLLOW sets for g.
func Analysis(g *Grammar) *LRAnalysis {
	ga := &LRAnalysis{g: g}
	ga.first = ComputeFirst(g)
	ga.follow = ComputeFollow(g, ga.first)
	return ga
}

// Grammar returns the analysed grammar.
func (ga *LRAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(sym). For terminals this is {sym}.
func (ga *LRAnalysis) First(sym string) *SymbolSet {
	if !ga.g.IsNonTerminal(sym) {
		return NewSymbolSet(sym)
	}
	return ga.first[sym]
}

// Follow returns FOLLOW(A) for a non-terminal A. For unknown symbols an empty
// set is returned.
func (ga *LRAnalysis) Follow(A string) *SymbolSet {
	if F, ok := ga.follow[A]; ok {
		return F
	}
	return NewSymbolSet()
}

// FirstSets returns all FIRST sets.
func (ga *LRAnalysis) FirstSets() SymbolSets {
	return ga.first
}

// FollowSets returns all FOLLOW sets.
func (ga *LRAnalysis) FollowSets() SymbolSets {
	return ga.follow
}

// FirstOfSequence returns FIRST of a sequence of symbols. The result contains
// slrgen.Epsilon if every symbol of beta may vanish, including the case of an
// empty beta.
func (ga *LRAnalysis) FirstOfSequence(beta []string) *SymbolSet {
	F := NewSymbolSet()
	for _, sym := range beta {
		if sym == slrgen.Epsilon {
			continue
		}
		if !ga.g.IsNonTerminal(sym) {
			F.Add(sym)
			return F
		}
		F.AddAll(ga.first[sym], slrgen.Epsilon)
		if !ga.first[sym].Contains(slrgen.Epsilon) {
			return F
		}
	}
	F.Add(slrgen.Epsilon)
	return F
}

// Dump is a debugging helper, writing FIRST and FOLLOW sets to the tracer.
func (ga *LRAnalysis) Dump() {
	for _, A := range ga.g.NonTerminals() {
		tracer().Debugf("FIRST(%s) = %v   FOLLOW(%s) = %v", A, ga.first[A], A, ga.follow[A])
	}
}

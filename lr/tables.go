package lr

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/slrgen"
)

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// Closure computes the closure of an item set: for every item A -> α . B β
// with a non-terminal B, all items B -> . γ are added, until no more items
// can be added. items is not modified.
func Closure(items *ItemSet, g *Grammar) *ItemSet {
	C := items.Copy()
	C.items.IterateOnce() // the iteration will see items added during the loop
	for C.items.Next() {
		item := C.items.Item().(Item)
		B, ok := item.NextSymbol()
		if !ok || !g.IsNonTerminal(B) {
			continue
		}
		for _, rhs := range g.rulesFor(B) {
			C.Add(NewItem(B, rhs, 0))
		}
	}
	return C
}

// Goto computes the closure of all items of I with X right of the dot,
// advanced over X. The result is empty if no item of I expects X.
func Goto(I *ItemSet, X string, g *Grammar) *ItemSet {
	moved := NewItemSet()
	for _, item := range I.Items() {
		if sym, ok := item.NextSymbol(); ok && sym == X {
			moved.Add(item.Advance())
		}
	}
	if moved.Empty() {
		return moved
	}
	G := Closure(moved, g)
	tracer().Debugf("goto(%s) --%s--> %s", I, X, G)
	return G
}

// transitionSymbols lists all symbols right of a dot in I, in order of
// their first occurrence.
func transitionSymbols(I *ItemSet) []string {
	var syms []string
	seen := make(map[string]bool)
	for _, item := range I.Items() {
		if sym, ok := item.NextSymbol(); ok && !seen[sym] {
			seen[sym] = true
			syms = append(syms, sym)
		}
	}
	return syms
}

// === CFSM Construction =====================================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     int      // serial ID of this state
	items  *ItemSet // configuration items within this state
	Accept bool     // does this state contain the completed start item?
}

// Items returns the items of state s.
func (s *CFSMState) Items() []Item {
	return s.items.Items()
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	s.items.Dump()
	tracer().Debugf("-------------------------")
}

// CFSMEdge is a transition between two states of a CFSM, labeled with a
// grammar symbol.
type CFSMEdge struct {
	From  *CFSMState
	To    *CFSMState
	Label string
}

// We need this for the set of states. It sorts states by serial ID.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*CFSMState)
	c2 := s2.(*CFSMState)
	return utils.IntComparator(c1.ID, c2.ID)
}

// CFSM is the characteristic finite state machine for an LR grammar, i.e. the
// LR(0) state diagram or canonical collection of LR(0) item sets. It will be
// constructed by a TableGenerator. Clients normally do not use it directly,
// but it is useful for debugging.
type CFSM struct {
	g      *Grammar              // this CFSM is for Grammar g
	states *treeset.Set          // all the states, ordered by ID
	edges  *arraylist.List       // all the edges between states
	byKey  map[string]*CFSMState // canonical item set key → state
	S0     *CFSMState            // start state
}

// create an empty (initial) CFSM automaton.
func emptyCFSM(g *Grammar) *CFSM {
	return &CFSM{
		g:      g,
		states: treeset.NewWith(stateComparator),
		edges:  arraylist.New(),
		byKey:  make(map[string]*CFSMState),
	}
}

// addState returns the state for an item set, creating it if the item set has
// not been seen before. The second return value is true for new states.
func (c *CFSM) addState(iset *ItemSet) (*CFSMState, bool) {
	key := iset.Key()
	if s, ok := c.byKey[key]; ok {
		return s, false
	}
	s := &CFSMState{ID: c.states.Size(), items: iset}
	for _, item := range iset.Items() {
		if item.LHS() == c.g.StartSymbol() && item.IsComplete() {
			s.Accept = true
		}
	}
	c.states.Add(s)
	c.byKey[key] = s
	return s, true
}

func (c *CFSM) addEdge(from, to *CFSMState, label string) {
	c.edges.Add(&CFSMEdge{From: from, To: to, Label: label})
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	r := make([]*CFSMState, 0, c.states.Size())
	c.states.Each(func(_ int, v interface{}) {
		r = append(r, v.(*CFSMState))
	})
	return r
}

// State returns the state with the given ID, or nil.
func (c *CFSM) State(id int) *CFSMState {
	_, v := c.states.Find(func(_ int, v interface{}) bool {
		return v.(*CFSMState).ID == id
	})
	if v == nil {
		return nil
	}
	return v.(*CFSMState)
}

// Edges returns all edges in order of creation.
func (c *CFSM) Edges() []*CFSMEdge {
	r := make([]*CFSMEdge, 0, c.edges.Size())
	c.edges.Each(func(_ int, v interface{}) {
		r = append(r, v.(*CFSMEdge))
	})
	return r
}

// EdgesFrom returns all edges leaving state s.
func (c *CFSM) EdgesFrom(s *CFSMState) []*CFSMEdge {
	r := make([]*CFSMEdge, 0, 2)
	c.edges.Each(func(_ int, v interface{}) {
		if e := v.(*CFSMEdge); e.From == s {
			r = append(r, e)
		}
	})
	return r
}

// buildCFSM constructs the canonical collection of LR(0) item sets for an
// augmented grammar. States are numbered breadth-first; the transitions of
// a state are explored in order of the symbols' first occurrence after a dot.
func buildCFSM(g *Grammar) (*CFSM, error) {
	tracer().Debugf("=== build CFSM ==================================================")
	start, ok := StartItem(g)
	if !ok || len(start.RHS()) != 1 || !g.IsNonTerminal(start.RHS()[0]) {
		return nil, fmt.Errorf("%w: no start production for %q", ErrInvariant, g.StartSymbol())
	}
	if len(g.rulesFor(start.RHS()[0])) == 0 {
		return nil, fmt.Errorf("%w: no productions for start symbol %q", ErrInvariant, start.RHS()[0])
	}
	cfsm := emptyCFSM(g)
	cfsm.S0, _ = cfsm.addState(Closure(NewItemSet(start), g))
	dump := gconf.GetBool("slr-dump-cfsm")
	queue := []*CFSMState{cfsm.S0}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if dump {
			s.Dump()
		}
		for _, X := range transitionSymbols(s.items) {
			gotoset := Goto(s.items, X, g)
			target, isNew := cfsm.addState(gotoset)
			if isNew {
				queue = append(queue, target)
			}
			cfsm.addEdge(s, target, X)
		}
	}
	tracer().Debugf("CFSM has %d states", cfsm.Size())
	return cfsm, nil
}

// CFSM2GraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) CFSM2GraphViz(w io.Writer) error {
	out := bufio.NewWriter(w)
	out.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.States() {
		fmt.Fprintf(out, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.items))
	}
	for _, e := range c.Edges() {
		fmt.Fprintf(out, "s%03d -> s%03d [label=\"%s\"]\n", e.From.ID, e.To.ID, escapeDot(e.Label))
	}
	out.WriteString("}\n")
	return out.Flush()
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(iset *ItemSet) string {
	lines := make([]string, 0, iset.Size())
	for _, item := range iset.Items() {
		lines = append(lines, escapeDot(item.String()))
	}
	return strings.Join(lines, "\\l") + "\\l"
}

var dotEscaper = strings.NewReplacer(
	`"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func escapeDot(s string) string {
	return dotEscaper.Replace(s)
}

// === Table Construction ====================================================

// TableGenerator is a generator object to construct LR parser tables.
// Clients usually create a Grammar G, then an LRAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTables() constructs
// the CFSM and parser tables for an SLR(1) parser recognizing grammar G.
type TableGenerator struct {
	ga           *LRAnalysis
	augmented    *Grammar
	dfa          *CFSM
	gototable    *GotoTable
	actiontable  *ActionTable
	HasConflicts bool
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LRAnalysis) *TableGenerator {
	return &TableGenerator{
		ga:        ga,
		augmented: ga.Grammar().Augmented(),
	}
}

// Grammar returns the augmented grammar the tables are built for.
func (lrgen *TableGenerator) Grammar() *Grammar {
	return lrgen.augmented
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// Usually clients call lrgen.CreateTables() beforehand, but it is possible
// to call lrgen.CFSM() directly. The CFSM will be created, if it has not
// been constructed previously. It returns nil if the grammar is unusable.
func (lrgen *TableGenerator) CFSM() *CFSM {
	if lrgen.dfa == nil {
		dfa, err := buildCFSM(lrgen.augmented)
		if err != nil {
			tracer().Errorf("%v", err)
			return nil
		}
		lrgen.dfa = dfa
	}
	return lrgen.dfa
}

// GotoTable returns the GOTO table. The tables have to be built by calling
// CreateTables() previously.
func (lrgen *TableGenerator) GotoTable() *GotoTable {
	if lrgen.gototable == nil {
		tracer().P("lr", "gen").Errorf("tables not yet initialized")
	}
	return lrgen.gototable
}

// ActionTable returns the SLR(1) ACTION table. The tables have to be built by
// calling CreateTables() previously.
func (lrgen *TableGenerator) ActionTable() *ActionTable {
	if lrgen.actiontable == nil {
		tracer().P("lr", "gen").Errorf("tables not yet initialized")
	}
	return lrgen.actiontable
}

// CreateTables creates the ACTION and GOTO tables for an SLR(1) parser.
// If the grammar is not SLR(1), HasConflicts is set, no tables are produced
// and the error is a *ConflictError.
func (lrgen *TableGenerator) CreateTables() error {
	dfa := lrgen.CFSM()
	if dfa == nil {
		return fmt.Errorf("%w: no start production for %q", ErrInvariant,
			lrgen.augmented.StartSymbol())
	}
	actions, gotos, err := buildTables(dfa, lrgen.ga.follow)
	if err != nil {
		lrgen.HasConflicts = true
		return err
	}
	lrgen.actiontable, lrgen.gototable = actions, gotos
	return nil
}

// BuildTables constructs SLR(1) ACTION and GOTO tables for grammar g.
// g is augmented internally; follow has to hold the FOLLOW sets of g. Either
// both tables are returned, or none. If the grammar is not SLR(1), the error
// is a *ConflictError, matching ErrConflict.
func BuildTables(g *Grammar, follow SymbolSets) (*ActionTable, *GotoTable, error) {
	if g == nil || g.Size() == 0 {
		return nil, nil, fmt.Errorf("%w: grammar has no productions", ErrInvariant)
	}
	dfa, err := buildCFSM(g.Augmented())
	if err != nil {
		return nil, nil, err
	}
	return buildTables(dfa, follow)
}

// For building an ACTION table we iterate over all the states of the CFSM.
// An inner loop iterates over all the items within a CFSM-state.
// If an item has a terminal immediately after the dot, we produce a shift
// entry. If an item's dot is behind the complete RHS of a rule (for epsilon
// rules: in front of the "e"), we produce a reduce-entry for the rule for each
// terminal from FOLLOW(LHS). The completed start rule produces an accept entry
// for the end marker.
func buildTables(dfa *CFSM, follow SymbolSets) (*ActionTable, *GotoTable, error) {
	g := dfa.g
	terminals := append(g.Terminals(), slrgen.EndMarker)
	actions := newActionTable(terminals, dfa.Size())
	gotos := newGotoTable(g.NonTerminals(), dfa.Size())
	for _, state := range dfa.States() {
		tracer().Debugf("--- state %d --------------------------------", state.ID)
		for _, e := range dfa.EdgesFrom(state) {
			if g.IsNonTerminal(e.Label) {
				gotos.set(state.ID, e.Label, e.To.ID)
				continue
			}
			tracer().Debugf("    shift on %q to %d", e.Label, e.To.ID)
			if err := actions.set(state.ID, e.Label, Shift(e.To.ID)); err != nil {
				return conflict(err)
			}
		}
		for _, item := range state.Items() {
			if !item.IsComplete() {
				continue
			}
			if item.LHS() == g.StartSymbol() {
				if err := actions.set(state.ID, slrgen.EndMarker, Accept()); err != nil {
					return conflict(err)
				}
				continue
			}
			lhs, rhs := item.Production()
			lookaheads := follow[lhs] // nil reads as empty
			tracer().Debugf("    reduce %s on %v", item, lookaheads)
			for _, la := range lookaheads.Symbols() {
				if err := actions.set(state.ID, la, Reduce(lhs, rhs)); err != nil {
					return conflict(err)
				}
			}
		}
	}
	return actions, gotos, nil
}

func conflict(err error) (*ActionTable, *GotoTable, error) {
	tracer().Infof("%v", err)
	return nil, nil, err
}

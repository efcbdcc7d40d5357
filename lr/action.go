package lr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dekarrin/rosed"
	"github.com/npillmayer/slrgen/lr/sparse"
)

// ErrConflict is the error class for grammars which are not SLR(1). Errors
// returned by table construction are of type *ConflictError and match
// ErrConflict with errors.Is.
var ErrConflict = errors.New("grammar is not SLR(1)")

// ErrInvariant is returned (wrapped) if table construction detects an internal
// inconsistency, e.g. a grammar without a start production.
var ErrInvariant = errors.New("internal invariant violated")

// --- Actions ---------------------------------------------------------------

// ActionKind discriminates parser actions.
type ActionKind int

// Kinds of parser actions.
const (
	NoAction ActionKind = iota
	ShiftAction
	ReduceAction
	AcceptAction
)

func (k ActionKind) String() string {
	switch k {
	case ShiftAction:
		return "shift"
	case ReduceAction:
		return "reduce"
	case AcceptAction:
		return "accept"
	}
	return "none"
}

// Action is an entry of an ACTION table. Depending on Kind, either State (for
// shift actions) or LHS and RHS (for reduce actions) are set. Accept actions
// carry no data.
type Action struct {
	Kind  ActionKind
	State int        // target state of a shift
	LHS   string     // left-hand side of a reduce
	RHS   Production // right-hand side of a reduce
}

// Shift creates a shift action to state.
func Shift(state int) Action {
	return Action{Kind: ShiftAction, State: state}
}

// Reduce creates an action to reduce by production lhs -> rhs.
func Reduce(lhs string, rhs Production) Action {
	return Action{Kind: ReduceAction, LHS: lhs, RHS: rhs.copy()}
}

// Accept creates an accept action.
func Accept() Action {
	return Action{Kind: AcceptAction}
}

// Equal compares two actions by value.
func (a Action) Equal(b Action) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ShiftAction:
		return a.State == b.State
	case ReduceAction:
		return a.LHS == b.LHS && a.RHS.Equal(b.RHS)
	}
	return true
}

// PopCount is the number of states a reduce action pops off the parse stack.
// Reducing an epsilon production pops nothing.
func (a Action) PopCount() int {
	if a.Kind != ReduceAction || a.RHS.IsEpsilon() {
		return 0
	}
	return len(a.RHS)
}

func (a Action) String() string {
	switch a.Kind {
	case ShiftAction:
		return "s" + strconv.Itoa(a.State)
	case ReduceAction:
		return fmt.Sprintf("r(%s -> %s)", a.LHS, a.RHS)
	case AcceptAction:
		return "acc"
	}
	return ""
}

// ConflictError reports a table cell which would have to hold two different
// actions.
type ConflictError struct {
	State    int    // CFSM state
	Symbol   string // lookahead terminal
	Existing Action // action already present
	Rejected Action // action which could not be entered
}

// Kind names the type of conflict, e.g. "shift/reduce".
func (e *ConflictError) Kind() string {
	return fmt.Sprintf("%s/%s", e.Existing.Kind, e.Rejected.Kind)
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict in state %d on %q: %s vs. %s",
		e.Kind(), e.State, e.Symbol, e.Existing, e.Rejected)
}

// Unwrap makes a ConflictError match ErrConflict.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// --- Tables ----------------------------------------------------------------

// columns maps symbols to matrix columns, in order of registration.
type columns struct {
	index   map[string]int
	symbols []string
}

func newColumns(symbols []string) columns {
	c := columns{index: make(map[string]int, len(symbols))}
	for _, sym := range symbols {
		c.register(sym)
	}
	return c
}

func (c *columns) register(sym string) int {
	if j, ok := c.index[sym]; ok {
		return j
	}
	j := len(c.symbols)
	c.index[sym] = j
	c.symbols = append(c.symbols, sym)
	return j
}

// ActionTable is the ACTION table of an SLR(1) parser, mapping
// (state, terminal) to at most one action. Terminals include slrgen.EndMarker.
// Tables are read-only once constructed and may be shared between parsers.
type ActionTable struct {
	matrix  *sparse.IntMatrix // values are indices into actions
	cols    columns
	actions []Action
	pool    map[string]int // Action.String() → index into actions
	states  int
}

func newActionTable(terminals []string, states int) *ActionTable {
	return &ActionTable{
		matrix: sparse.NewIntMatrix(sparse.DefaultNullValue),
		cols:   newColumns(terminals),
		pool:   make(map[string]int),
		states: states,
	}
}

// Action returns the action for (state, terminal), if any.
func (t *ActionTable) Action(state int, terminal string) (Action, bool) {
	j, ok := t.cols.index[terminal]
	if !ok || state < 0 {
		return Action{}, false
	}
	if !t.matrix.Has(state, j) {
		return Action{}, false
	}
	return t.actions[t.matrix.Value(state, j)], true
}

// set enters an action. Re-entering an identical action is a no-op, entering
// a different one is a conflict.
func (t *ActionTable) set(state int, terminal string, a Action) error {
	if existing, ok := t.Action(state, terminal); ok {
		if existing.Equal(a) {
			return nil
		}
		return &ConflictError{State: state, Symbol: terminal, Existing: existing, Rejected: a}
	}
	key := a.String()
	inx, ok := t.pool[key]
	if !ok {
		inx = len(t.actions)
		t.actions = append(t.actions, a)
		t.pool[key] = inx
	}
	t.matrix.Set(state, t.cols.register(terminal), int32(inx))
	if state >= t.states {
		t.states = state + 1
	}
	return nil
}

// Len returns the number of non-empty cells.
func (t *ActionTable) Len() int {
	return t.matrix.ValueCount()
}

// States returns the number of rows (CFSM states) of t.
func (t *ActionTable) States() int {
	return t.states
}

// Terminals returns the column symbols of t.
func (t *ActionTable) Terminals() []string {
	return append([]string{}, t.cols.symbols...)
}

// Each calls f for every non-empty cell, ordered by state and column.
func (t *ActionTable) Each(f func(state int, terminal string, a Action)) {
	t.matrix.Each(func(i, j int, v int32) {
		f(i, t.cols.symbols[j], t.actions[v])
	})
}

// String renders t as a text table with one row per state.
func (t *ActionTable) String() string {
	return renderTable("ACTION", t.cols.symbols, t.states, func(state, j int) string {
		if !t.matrix.Has(state, j) {
			return ""
		}
		return t.actions[t.matrix.Value(state, j)].String()
	})
}

// GotoTable is the GOTO table of an LR parser, mapping (state, non-terminal)
// to the target state.
type GotoTable struct {
	matrix *sparse.IntMatrix
	cols   columns
	states int
}

func newGotoTable(nonterminals []string, states int) *GotoTable {
	return &GotoTable{
		matrix: sparse.NewIntMatrix(sparse.DefaultNullValue),
		cols:   newColumns(nonterminals),
		states: states,
	}
}

// Goto returns the target state for (state, A), if any.
func (t *GotoTable) Goto(state int, A string) (int, bool) {
	j, ok := t.cols.index[A]
	if !ok || state < 0 || !t.matrix.Has(state, j) {
		return 0, false
	}
	return int(t.matrix.Value(state, j)), true
}

func (t *GotoTable) set(state int, A string, target int) {
	t.matrix.Set(state, t.cols.register(A), int32(target))
	if state >= t.states {
		t.states = state + 1
	}
}

// Len returns the number of non-empty cells.
func (t *GotoTable) Len() int {
	return t.matrix.ValueCount()
}

// NonTerminals returns the column symbols of t.
func (t *GotoTable) NonTerminals() []string {
	return append([]string{}, t.cols.symbols...)
}

// Each calls f for every non-empty cell, ordered by state and column.
func (t *GotoTable) Each(f func(state int, A string, target int)) {
	t.matrix.Each(func(i, j int, v int32) {
		f(i, t.cols.symbols[j], int(v))
	})
}

// String renders t as a text table with one row per state.
func (t *GotoTable) String() string {
	return renderTable("GOTO", t.cols.symbols, t.states, func(state, j int) string {
		if !t.matrix.Has(state, j) {
			return ""
		}
		return strconv.Itoa(int(t.matrix.Value(state, j)))
	})
}

func renderTable(title string, header []string, rows int, cell func(state, j int) string) string {
	data := make([][]string, 0, rows+1)
	data = append(data, append([]string{title}, header...))
	for state := 0; state < rows; state++ {
		row := []string{strconv.Itoa(state)}
		for j := range header {
			row = append(row, cell(state, j))
		}
		data = append(data, row)
	}
	return rosed.Edit("").
		InsertTableOpts(0, data, 120, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

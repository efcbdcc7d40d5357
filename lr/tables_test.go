package lr

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func expressionGrammar(t *testing.T) *Grammar {
	g, err := ParseGrammar("E",
		"E -> E + T | T",
		"T -> T * F | F",
		"F -> ( E ) | id",
	)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestItemString(t *testing.T) {
	assert := assert.New(t)
	i := NewItem("E", []string{"E", "+", "T"}, 1)
	assert.Equal("E -> E . + T", i.String())
	assert.Equal("E -> E + T .", i.Advance().Advance().String())
	assert.Equal([]string{"E"}, i.Prefix())
	sym, ok := i.NextSymbol()
	assert.True(ok)
	assert.Equal("+", sym)
	assert.True(i == NewItem("E", []string{"E", "+", "T"}, 1), "items compare by value")
	eps := NewItem("A", []string{"e"}, 0)
	assert.True(eps.IsComplete())
	assert.Equal("A -> . e", eps.String())
	assert.Equal(eps, eps.Advance())
}

func TestItemSetKeyIgnoresOrder(t *testing.T) {
	a := NewItem("S", []string{"a"}, 0)
	b := NewItem("S", []string{"b"}, 0)
	S1 := NewItemSet(a, b)
	S2 := NewItemSet(b, a)
	if S1.Key() != S2.Key() || !S1.Equals(S2) {
		t.Errorf("item sets with equal content must have equal keys")
	}
	if S1.Key() == NewItemSet(a).Key() {
		t.Errorf("item sets with different content must have different keys")
	}
}

func TestClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	ga := expressionGrammar(t).Augmented()
	start, ok := StartItem(ga)
	if !ok {
		t.Fatal("no start item")
	}
	C := Closure(NewItemSet(start), ga)
	expected := []string{
		"E' -> . E",
		"E -> . E + T",
		"E -> . T",
		"T -> . T * F",
		"T -> . F",
		"F -> . ( E )",
		"F -> . id",
	}
	items := C.Items()
	if assert.Len(t, items, len(expected)) {
		for n, item := range items {
			assert.Equal(t, expected[n], item.String())
		}
	}
}

func TestClosureIsIdempotent(t *testing.T) {
	ga := classicalLL1Grammar(t).Augmented()
	lrgen := NewTableGenerator(Analysis(classicalLL1Grammar(t)))
	for _, state := range lrgen.CFSM().States() {
		S := NewItemSet(state.Items()[0])
		C := Closure(S, ga)
		CC := Closure(C, ga)
		if !C.Equals(CC) {
			t.Errorf("closure not idempotent for %v", S)
		}
		for _, item := range S.Items() {
			if !C.Contains(item) {
				t.Errorf("closure lost item %v", item)
			}
		}
	}
}

func TestGotoAdvancesItems(t *testing.T) {
	ga := expressionGrammar(t).Augmented()
	dfa, err := buildCFSM(ga)
	if err != nil {
		t.Fatal(err)
	}
	symbols := append(ga.Terminals(), ga.NonTerminals()...)
	for _, state := range dfa.States() {
		for _, X := range symbols {
			G := Goto(state.items, X, ga)
			for _, item := range G.Items() {
				if item.Dot() == 0 {
					continue // added by closure
				}
				pred := NewItem(item.LHS(), item.RHS(), item.Dot()-1)
				if sym, ok := pred.NextSymbol(); !ok || sym != X || !state.items.Contains(pred) {
					t.Errorf("goto(%d, %s) contains %v without predecessor", state.ID, X, item)
				}
			}
		}
	}
	if G := Goto(dfa.S0.items, "$", ga); !G.Empty() {
		t.Errorf("expected empty goto set, have %v", G)
	}
}

func TestCFSMExpressionGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	lrgen := NewTableGenerator(Analysis(expressionGrammar(t)))
	dfa := lrgen.CFSM()
	assert := assert.New(t)
	assert.Equal(12, dfa.Size())
	assert.Equal(0, dfa.S0.ID)
	assert.True(dfa.State(1).Accept)
	assert.False(dfa.State(2).Accept)
	assert.Nil(dfa.State(12))
	assert.Len(dfa.EdgesFrom(dfa.S0), 5)
	var buf bytes.Buffer
	assert.NoError(dfa.CFSM2GraphViz(&buf))
	dot := buf.String()
	assert.True(strings.HasPrefix(dot, "digraph {"))
	assert.Contains(dot, `s000 -> s005 [label="id"]`)
	assert.Contains(dot, `s001 [fillcolor=lightgray`)
}

func TestSLRTablesExpressionGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	g := expressionGrammar(t)
	follow := ComputeFollow(g, ComputeFirst(g))
	actions, gotos, err := BuildTables(g, follow)
	if err != nil {
		t.Fatalf("expected SLR(1) tables, have error %v", err)
	}
	t.Logf("\n%s", actions)
	t.Logf("\n%s", gotos)
	reduceET := Reduce("E", Production{"T"}).String()
	reduceTF := Reduce("T", Production{"F"}).String()
	reduceFid := Reduce("F", Production{"id"}).String()
	reduceEET := Reduce("E", Production{"E", "+", "T"}).String()
	reduceTTF := Reduce("T", Production{"T", "*", "F"}).String()
	reduceFE := Reduce("F", Production{"(", "E", ")"}).String()
	expected := map[int]map[string]string{
		0:  {"id": "s5", "(": "s4"},
		1:  {"+": "s6", "$": "acc"},
		2:  {"+": reduceET, "*": "s7", ")": reduceET, "$": reduceET},
		3:  {"+": reduceTF, "*": reduceTF, ")": reduceTF, "$": reduceTF},
		4:  {"id": "s5", "(": "s4"},
		5:  {"+": reduceFid, "*": reduceFid, ")": reduceFid, "$": reduceFid},
		6:  {"id": "s5", "(": "s4"},
		7:  {"id": "s5", "(": "s4"},
		8:  {"+": "s6", ")": "s11"},
		9:  {"+": reduceEET, "*": "s7", ")": reduceEET, "$": reduceEET},
		10: {"+": reduceTTF, "*": reduceTTF, ")": reduceTTF, "$": reduceTTF},
		11: {"+": reduceFE, "*": reduceFE, ")": reduceFE, "$": reduceFE},
	}
	count := 0
	for state, row := range expected {
		for terminal, action := range row {
			a, ok := actions.Action(state, terminal)
			if !ok {
				t.Errorf("missing action at (%d, %s)", state, terminal)
				continue
			}
			if a.String() != action {
				t.Errorf("action at (%d, %s): expected %s, have %s", state, terminal, action, a)
			}
			count++
		}
	}
	assert.Equal(t, count, actions.Len(), "unexpected extra actions")
	expectedGotos := []struct {
		state  int
		A      string
		target int
	}{
		{0, "E", 1}, {0, "T", 2}, {0, "F", 3},
		{4, "E", 8}, {4, "T", 2}, {4, "F", 3},
		{6, "T", 9}, {6, "F", 3},
		{7, "F", 10},
	}
	for _, eg := range expectedGotos {
		target, ok := gotos.Goto(eg.state, eg.A)
		if !ok || target != eg.target {
			t.Errorf("goto(%d, %s): expected %d, have %d/%v", eg.state, eg.A, eg.target, target, ok)
		}
	}
	assert.Equal(t, len(expectedGotos), gotos.Len())
	_, ok := gotos.Goto(1, "E")
	assert.False(t, ok)
}

func TestConflicts(t *testing.T) {
	testCases := []struct {
		name  string
		rules []string
		kind  string
	}{
		{
			name:  "ambiguous expressions",
			rules: []string{"S -> E", "E -> E * E | E + E | id"},
			kind:  "shift/reduce",
		},
		{
			name:  "reduce-reduce",
			rules: []string{"S -> X | Y", "X -> z", "Y -> z"},
			kind:  "reduce/reduce",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
			defer teardown()
			//
			assert := assert.New(t)
			g, err := ParseGrammar("", tc.rules...)
			assert.NoError(err)
			follow := ComputeFollow(g, ComputeFirst(g))
			actions, gotos, err := BuildTables(g, follow)
			assert.Nil(actions)
			assert.Nil(gotos)
			assert.True(errors.Is(err, ErrConflict))
			var cerr *ConflictError
			if assert.True(errors.As(err, &cerr)) {
				assert.Equal(tc.kind, cerr.Kind())
			}
			lrgen := NewTableGenerator(Analysis(g))
			assert.Error(lrgen.CreateTables())
			assert.True(lrgen.HasConflicts)
			assert.Nil(lrgen.ActionTable())
		})
	}
}

func TestEpsilonGrammarTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	g, _ := ParseGrammar("S", "S -> a A", "A -> b | e")
	lrgen := NewTableGenerator(Analysis(g))
	if err := lrgen.CreateTables(); err != nil {
		t.Fatal(err)
	}
	a, ok := lrgen.ActionTable().Action(2, "$")
	if !ok || a.Kind != ReduceAction || !a.RHS.IsEpsilon() || a.PopCount() != 0 {
		t.Errorf("expected epsilon reduction in state 2 on $, have %v", a)
	}
}

func TestMissingStartProduction(t *testing.T) {
	g, _ := ParseGrammar("X", "S -> a")
	follow := ComputeFollow(g, ComputeFirst(g))
	_, _, err := BuildTables(g, follow)
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("expected invariant violation, have %v", err)
	}
	_, _, err = BuildTables(NewGrammar(""), SymbolSets{})
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("expected invariant violation for empty grammar, have %v", err)
	}
}

func TestBuildTablesAugmentsGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	assert := assert.New(t)
	g, err := ParseGrammar("S", "S -> A | b", "A -> a")
	assert.NoError(err)
	follow := ComputeFollow(g, ComputeFirst(g))
	actions, gotos, err := BuildTables(g, follow)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(5, actions.States())
	a, ok := actions.Action(0, "b")
	assert.True(ok, "expected action for b in state 0")
	assert.True(a.Equal(Shift(3)), "expected s3, have %v", a)
	a, _ = actions.Action(0, "a")
	assert.True(a.Equal(Shift(4)), "expected s4, have %v", a)
	a, _ = actions.Action(1, "$")
	assert.Equal(AcceptAction, a.Kind)
	a, _ = actions.Action(3, "$")
	assert.True(a.Equal(Reduce("S", Production{"b"})), "expected r(S -> b), have %v", a)
	s, ok := gotos.Goto(0, "S")
	assert.True(ok && s == 1)
	assert.True(g.StartSymbol() == "S", "BuildTables must not change its argument")
}

func TestDumpCFSMConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	gconf.Initialize(testconfig.Conf{
		"tracing.adapter": "test",
		"slr-dump-cfsm":   true,
	})
	defer gconf.Initialize(testconfig.Conf{})
	//
	if !gconf.GetBool("slr-dump-cfsm") {
		t.Fatal("configuration not active")
	}
	g, _ := ParseGrammar("S", "S -> ( S ) | x")
	lrgen := NewTableGenerator(Analysis(g))
	if err := lrgen.CreateTables(); err != nil {
		t.Fatal(err)
	}
	if lrgen.CFSM().Size() != 6 {
		t.Errorf("expected 6 states, have %d", lrgen.CFSM().Size())
	}
}

func TestTableRendering(t *testing.T) {
	g := expressionGrammar(t)
	lrgen := NewTableGenerator(Analysis(g))
	if err := lrgen.CreateTables(); err != nil {
		t.Fatal(err)
	}
	out := lrgen.ActionTable().String()
	for _, s := range []string{"ACTION", "id", "s5", "acc"} {
		if !strings.Contains(out, s) {
			t.Errorf("rendered ACTION table misses %q:\n%s", s, out)
		}
	}
	if !strings.Contains(lrgen.GotoTable().String(), "GOTO") {
		t.Errorf("rendered GOTO table misses header")
	}
	n := 0
	lrgen.ActionTable().Each(func(state int, terminal string, a Action) {
		n++
	})
	if n != lrgen.ActionTable().Len() {
		t.Errorf("Each visited %d cells, table has %d", n, lrgen.ActionTable().Len())
	}
}

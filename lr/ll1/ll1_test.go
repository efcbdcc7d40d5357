package ll1

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slrgen/lr"
	"github.com/npillmayer/slrgen/lr/scanner"
	"github.com/stretchr/testify/assert"
)

func analysis(t *testing.T, start string, rules ...string) *lr.LRAnalysis {
	g, err := lr.ParseGrammar(start, rules...)
	if err != nil {
		t.Fatal(err)
	}
	return lr.Analysis(g)
}

func classicalLL1(t *testing.T) *lr.LRAnalysis {
	return analysis(t, "E",
		"E -> T E'",
		"E' -> + T E' | e",
		"T -> F T'",
		"T' -> * F T' | e",
		"F -> ( E ) | id",
	)
}

func TestBuildTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	table, err := BuildTable(classicalLL1(t))
	if err != nil {
		t.Fatal(err)
	}
	testCases := []struct {
		A, a string
		rhs  string
	}{
		{"E", "id", "T E'"},
		{"E", "(", "T E'"},
		{"E'", "+", "+ T E'"},
		{"E'", ")", "e"},
		{"E'", "$", "e"},
		{"T", "id", "F T'"},
		{"T'", "+", "e"},
		{"T'", "*", "* F T'"},
		{"T'", "$", "e"},
		{"F", "(", "( E )"},
		{"F", "id", "id"},
	}
	for _, tc := range testCases {
		rhs, ok := table.Expand(tc.A, tc.a)
		if assert.True(t, ok, "M[%s, %s] should be set", tc.A, tc.a) {
			assert.Equal(t, tc.rhs, rhs.String(), "M[%s, %s]", tc.A, tc.a)
		}
	}
	_, ok := table.Expand("E", "+")
	assert.False(t, ok, "M[E, +] should be empty")
	assert.Equal(t, 13, table.Len())
	t.Logf("\n%s", table)
	assert.True(t, strings.Contains(table.String(), "E' -> + T E'"))
}

func TestLeftRecursionIsNotLL1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	table, err := BuildTable(analysis(t, "E", "E -> E + T | T", "T -> T * F | F", "F -> ( E ) | id"))
	assert.Nil(t, table)
	assert.True(t, errors.Is(err, ErrNotLL1), "expected ErrNotLL1, have %v", err)
	//
	_, err = BuildTable(analysis(t, "S", "S -> a b | a c"))
	assert.True(t, errors.Is(err, ErrNotLL1), "common prefix should conflict")
	_, err = BuildTable(nil)
	assert.True(t, errors.Is(err, ErrNoGrammar))
	assert.False(t, errors.Is(err, ErrNotLL1), "missing analysis is not a grammar property")
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	table, err := BuildTable(classicalLL1(t))
	if err != nil {
		t.Fatal(err)
	}
	testCases := []struct {
		input  string
		accept bool
	}{
		{"id", true},
		{"id + id * id", true},
		{"( id + id ) * id", true},
		{"( ( id ) )", true},
		{"", false},
		{"id id", false},
		{"id +", false},
		{"( id", false},
		{"id )", false},
		{"id $", false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.accept, Validate(tc.input, table), "input %q", tc.input)
	}
	assert.False(t, Validate("id", nil))
}

func TestAcceptsEmptySentence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	table, err := BuildTable(analysis(t, "S", "S -> a S | e"))
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, table.Accepts(scanner.Symbols()))
	assert.True(t, table.Accepts(scanner.Symbols("a", "a")))
	assert.False(t, table.Accepts(scanner.Symbols("b")))
}

package suite

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slrgen/lr"
	"github.com/stretchr/testify/assert"
)

func TestReadGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.suite")
	defer teardown()
	//
	g, err := LoadGrammar("testdata/expressions.grammar", "")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "E", g.StartSymbol())
	assert.Equal(t, []string{"E", "T", "F"}, g.NonTerminals())
	assert.Equal(t, 6, g.Size())
	//
	g, err = ReadGrammar(strings.NewReader("A -> a\nS -> A A\n"), "S")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "S", g.StartSymbol())
}

func TestReadGrammarReportsLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.suite")
	defer teardown()
	//
	input := "# comment\nS -> a\n\nS a\n"
	_, err := ReadGrammar(strings.NewReader(input), "")
	if assert.Error(t, err) {
		assert.True(t, errors.Is(err, lr.ErrMalformedProduction))
		assert.True(t, strings.HasPrefix(err.Error(), "line 4:"), err.Error())
	}
	_, err = LoadGrammar("testdata/does-not-exist.grammar", "")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	single := `
name = "expressions"
start = "E"
productions = ["E -> E + T | T", "T -> T * F | F", "F -> ( E ) | id"]
accept = ["id", "id + id"]
reject = ["", "id id"]
`
	suites, err := Decode([]byte(single))
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, suites, 1) {
		assert.Equal(t, "expressions", suites[0].Name)
		assert.Equal(t, ExpectSLR, suites[0].Expect)
		assert.Len(t, suites[0].Productions, 3)
	}
	testCases := []string{
		`name = "empty"`,
		"productions = [\"S -> a\"]\nexpect = \"lalr\"",
		`productions = [`,
	}
	for _, doc := range testCases {
		_, err := Decode([]byte(doc))
		assert.True(t, errors.Is(err, ErrInvalidSuite), "document %q", doc)
	}
}

func TestRunSuites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.suite")
	defer teardown()
	//
	suites, err := Load("testdata/suites.toml")
	if err != nil {
		t.Fatal(err)
	}
	if !assert.Len(t, suites, 3) {
		return
	}
	results := RunAll(suites)
	for _, r := range results {
		assert.True(t, r.Passed(), "suite %s failed: %v %v", r.Name, r.Err, r.Failures)
	}
	assert.Equal(t, 6, results[0].Checked)
	assert.False(t, results[0].LL1)
	assert.True(t, results[1].LL1)
	if assert.NotNil(t, results[2].Conflict) {
		assert.Equal(t, "shift/reduce", results[2].Conflict.Kind())
		assert.Equal(t, "t", results[2].Conflict.Symbol)
	}
}

func TestRunReportsFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.suite")
	defer teardown()
	//
	r := Run(Suite{
		Name:        "wrong verdicts",
		Productions: []string{"S -> a S | e"},
		Accept:      []string{"a a", "b"},
		Reject:      []string{""},
	})
	assert.False(t, r.Passed())
	assert.NoError(t, r.Err)
	assert.Equal(t, []Failure{{Input: "b", Expected: true}, {Input: "", Expected: false}}, r.Failures)
	//
	r = Run(Suite{Name: "no conflict", Productions: []string{"S -> a"}, Expect: ExpectConflict})
	assert.False(t, r.Passed())
	r = Run(Suite{Name: "conflict", Productions: []string{"S -> X | Y", "X -> z", "Y -> z"}})
	assert.False(t, r.Passed())
	assert.True(t, errors.Is(r.Err, lr.ErrConflict))
}

package ll1

import (
	"errors"
	"fmt"

	"github.com/dekarrin/rosed"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slrgen"
	"github.com/npillmayer/slrgen/lr"
	"github.com/npillmayer/slrgen/lr/scanner"
	"github.com/npillmayer/slrgen/lr/scanner/lexmach"
)

// tracer traces with key 'slrgen.lr'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.lr")
}

// ErrNotLL1 is returned by BuildTable for grammars with conflicting table
// entries.
var ErrNotLL1 = errors.New("grammar is not LL(1)")

// ErrNoGrammar is returned by BuildTable if there is no grammar to build a
// table for.
var ErrNoGrammar = errors.New("no grammar analysis to build LL(1) table from")

type cell struct {
	A, a string
}

// Table is a predictive parse table M[A, a], mapping a non-terminal A and a
// lookahead terminal a to the production to expand A with.
type Table struct {
	g       *lr.Grammar
	entries map[cell]lr.Production
}

// BuildTable creates the LL(1) table for the grammar analysed by ga. For every
// production A -> α, M[A, a] is set for each a in FIRST(α). If α may vanish,
// M[A, b] is set for each b in FOLLOW(A).
//
// If a cell receives two different productions, BuildTable returns a nil
// table and an error wrapping ErrNotLL1.
func BuildTable(ga *lr.LRAnalysis) (*Table, error) {
	if ga == nil || ga.Grammar() == nil {
		return nil, ErrNoGrammar
	}
	T := &Table{g: ga.Grammar(), entries: make(map[cell]lr.Production)}
	var err error
	ga.Grammar().EachProduction(func(A string, rhs lr.Production) {
		if err != nil {
			return
		}
		F := ga.FirstOfSequence(rhs)
		for _, a := range F.Symbols() {
			if a == slrgen.Epsilon {
				continue
			}
			if err = T.put(A, a, rhs); err != nil {
				return
			}
		}
		if F.Contains(slrgen.Epsilon) {
			for _, b := range ga.Follow(A).Symbols() {
				if err = T.put(A, b, rhs); err != nil {
					return
				}
			}
		}
	})
	if err != nil {
		tracer().Infof("%v", err)
		return nil, err
	}
	return T, nil
}

func (T *Table) put(A, a string, rhs lr.Production) error {
	if existing, ok := T.entries[cell{A, a}]; ok && !existing.Equal(rhs) {
		return fmt.Errorf("M[%s, %s] is %s -> %v and %s -> %v: %w", A, a, A, existing, A, rhs, ErrNotLL1)
	}
	tracer().Debugf("M[%s, %s] = %s -> %v", A, a, A, rhs)
	T.entries[cell{A, a}] = rhs
	return nil
}

// Grammar returns the grammar the table has been built for.
func (T *Table) Grammar() *lr.Grammar {
	return T.g
}

// Expand returns M[A, a].
func (T *Table) Expand(A, a string) (lr.Production, bool) {
	rhs, ok := T.entries[cell{A, a}]
	return rhs, ok
}

// Len returns the number of non-empty cells.
func (T *Table) Len() int {
	return len(T.entries)
}

// Accepts runs a predictive parse on the tokens of scan. The stack starts
// with the end marker and the start symbol; input is accepted if both the
// stack and the input are exhausted at the same time.
func (T *Table) Accepts(scan scanner.Tokenizer) bool {
	if T == nil || T.g == nil {
		tracer().Errorf("LL(1) table not initialized")
		return false
	}
	stack := []string{slrgen.EndMarker, T.g.StartSymbol()}
	token := scan.NextToken()
	for {
		a := slrgen.Terminal(token)
		if a == slrgen.EndMarker && token.TokType() != slrgen.EOFType {
			tracer().Debugf("end marker in input: reject")
			return false
		}
		X := stack[len(stack)-1]
		switch {
		case X == slrgen.EndMarker:
			return a == slrgen.EndMarker
		case !T.g.IsNonTerminal(X):
			if X != a {
				tracer().Debugf("expected %q, have %q: reject", X, a)
				return false
			}
			stack = stack[:len(stack)-1]
			token = scan.NextToken()
		default:
			rhs, ok := T.Expand(X, a)
			if !ok {
				tracer().Debugf("no entry M[%s, %s]: reject", X, a)
				return false
			}
			tracer().Debugf("expand %s -> %v", X, rhs)
			stack = stack[:len(stack)-1]
			if rhs.IsEpsilon() {
				continue
			}
			for i := len(rhs) - 1; i >= 0; i-- {
				stack = append(stack, rhs[i])
			}
		}
	}
}

// Validate checks if input, a string of whitespace separated terminals, is a
// sentence of the table's grammar. A nil table rejects every input.
func Validate(input string, table *Table) bool {
	scan, err := lexmach.Tokenize(input)
	if err != nil {
		tracer().Errorf("cannot tokenize input: %v", err)
		return false
	}
	return table.Accepts(scan)
}

// String renders the table, one row per non-terminal and one column per
// terminal.
func (T *Table) String() string {
	terminals := append(T.g.Terminals(), slrgen.EndMarker)
	data := [][]string{append([]string{"M"}, terminals...)}
	for _, A := range T.g.NonTerminals() {
		row := []string{A}
		for _, a := range terminals {
			s := ""
			if rhs, ok := T.Expand(A, a); ok {
				s = A + " -> " + rhs.String()
			}
			row = append(row, s)
		}
		data = append(data, row)
	}
	return rosed.Edit("").InsertTableOpts(0, data, 120, rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}).String()
}

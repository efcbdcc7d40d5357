/*
Package slr provides an SLR(1) recognizer. Clients have to use the tools
of package lr to prepare the necessary parse tables. The recognizer
utilizes these tables to decide if a given input, provided through a scanner
interface, is a sentence of the grammar.

This recognizer is intended for small to moderate grammars, e.g. for
teaching, for configuration input or small domain-specific languages. It
does not build parse trees and does not recover from errors: the result of a
run is either "accepted" or "rejected".

The main focus for this implementation is adaptability and on-the-fly usage.
Clients are able to construct the parse tables from a grammar and use the
recognizer directly, without a code-generation or compile step.

Package slr can only handle SLR(1) grammars. Table construction fails for
all other grammars.

Usage

Clients construct a grammar from production text:

	g := lr.NewGrammar("Var")
	g.MustAddProduction("Var -> Sign a")
	g.MustAddProduction("Sign -> + | - | e")

This grammar is subjected to grammar analysis and table generation.

	lrgen := lr.NewTableGenerator(lr.Analysis(g))
	if err := lrgen.CreateTables(); err != nil { ... }  // cannot use an SLR parser

Finally recognize some input:

	p := slr.NewParser(g, lrgen.GotoTable(), lrgen.ActionTable())
	scan, _ := lexmach.Tokenize("+ a")
	accepted, err := p.Parse(scan)

For whitespace separated input there is a shortcut:

	ok := slr.Validate("+ a", g, lrgen.ActionTable(), lrgen.GotoTable())

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slr

import (
	"errors"

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

// ErrNotInitialized is returned by Parse for a parser without tables.
var ErrNotInitialized = errors.New("SLR(1)-parser not initialized")

// Parser is an SLR(1)-parser type. Create and initialize one with slr.NewParser(...)
type Parser struct {
	G       *lr.Grammar
	stack   []stackitem     // parser stack
	gotoT   *lr.GotoTable   // GOTO table
	actionT *lr.ActionTable // ACTION table
}

// We store pairs of state-IDs and symbols on the parse stack.
type stackitem struct {
	stateID int         // ID of a CFSM state
	sym     string      // grammar symbol (terminal or non-terminal)
	span    slrgen.Span // input span over which this symbol reaches
}

// NewParser creates an SLR(1) parser.
func NewParser(g *lr.Grammar, gotoTable *lr.GotoTable, actionTable *lr.ActionTable) *Parser {
	parser := &Parser{
		G:       g,
		stack:   make([]stackitem, 0, 512),
		gotoT:   gotoTable,
		actionT: actionTable,
	}
	return parser
}

// Parse starts a new parse, given a scanner tokenizing the input. The parser
// must have been initialized. The end of input is read as terminal "$".
//
// The parser returns true if the input string has been accepted. An error is
// returned only for a parser without tables, never for rejected input.
func (p *Parser) Parse(scan scanner.Tokenizer) (bool, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.G == nil || p.gotoT == nil || p.actionT == nil {
		tracer().Errorf("SLR(1)-parser not initialized")
		return false, ErrNotInitialized
	}
	p.stack = append(p.stack[:0], stackitem{stateID: 0}) // push S0
	// http://www.cse.unt.edu/~sweany/CSCE3650/HANDOUTS/LRParseAlg.pdf
	token := scan.NextToken()
	reductions := 0
	for {
		terminal := slrgen.Terminal(token)
		if terminal == slrgen.EndMarker && token.TokType() != slrgen.EOFType {
			tracer().Debugf("end marker in input: reject")
			return false, nil
		}
		state := p.stack[len(p.stack)-1] // TOS
		action, ok := p.actionT.Action(state.stateID, terminal)
		if !ok {
			tracer().Debugf("no action for (%d, %q): reject", state.stateID, terminal)
			return false, nil
		}
		tracer().Debugf("action(%d, %q) = %s", state.stateID, terminal, action)
		switch action.Kind {
		case lr.AcceptAction:
			return true, nil
		case lr.ShiftAction:
			p.stack = append(p.stack, // push a terminal state onto stack
				stackitem{action.State, terminal, token.Span()})
			token = scan.NextToken()
			reductions = 0
		case lr.ReduceAction:
			if reductions++; reductions > p.reductionLimit() {
				tracer().Errorf("too many reductions without shift, table is corrupt")
				return false, nil
			}
			if !p.reduce(action, token) {
				return false, nil
			}
		default:
			return false, nil
		}
	}
}

// reductionLimit bounds the number of consecutive reductions on a single
// lookahead. In a correctly built table, reductions on the same lookahead
// cannot cycle.
func (p *Parser) reductionLimit() int {
	n := p.actionT.States() + 1
	return n * (len(p.stack) + 1)
}

// reduce performs a reduce action for a rule
//
//    LHS --> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn should be represented on the stack as states
//
//    [TOS]  Sn(Xn, span_n) ... S1(X1, span1)  ...
//
// Epsilon rules pop nothing. reduce returns false if the stack underflows or
// the GOTO table has no entry for the exposed state.
func (p *Parser) reduce(action lr.Action, lookahead slrgen.Token) bool {
	tracer().Infof("reduce %s -> %v", action.LHS, action.RHS)
	n := action.PopCount()
	if n >= len(p.stack) {
		tracer().Errorf("stack underflow reducing %s", action)
		return false
	}
	var handlespan slrgen.Span
	for _, item := range p.stack[len(p.stack)-n:] {
		handlespan = handlespan.Extend(item.span)
	}
	if handlespan.IsNull() { // resulted from an epsilon production
		pos := lookahead.Span().From()
		handlespan = slrgen.Span{pos, pos} // epsilon was just before lookahead
	}
	p.stack = p.stack[:len(p.stack)-n]
	state := p.stack[len(p.stack)-1] // TOS
	nextstate, ok := p.gotoT.Goto(state.stateID, action.LHS)
	if !ok {
		tracer().Debugf("no goto for (%d, %s): reject", state.stateID, action.LHS)
		return false
	}
	tracer().Debugf("reduced %s over %v, next state = %d", action.LHS, handlespan, nextstate)
	p.stack = append(p.stack, // push a non-terminal state onto stack
		stackitem{nextstate, action.LHS, handlespan})
	return true
}

// Validate checks if input is a sentence of grammar g, using SLR(1) tables
// constructed for g. input is a string of whitespace separated terminals.
// The end marker "$" must not be part of the input; it is appended
// implicitly. Nil tables reject every input.
func Validate(input string, g *lr.Grammar, actions *lr.ActionTable, gotos *lr.GotoTable) bool {
	scan, err := lexmach.Tokenize(input)
	if err != nil {
		tracer().Errorf("cannot tokenize input: %v", err)
		return false
	}
	accepted, err := NewParser(g, gotos, actions).Parse(scan)
	if err != nil {
		return false
	}
	return accepted
}

/*
Package scanner defines an interface for scanners to be used with the
recognizers of package lr.

Grammars of this module are string based: a terminal is identified by its
name, and a token stands for the terminal equal to its lexeme. The end of
input is signalled by a token of type slrgen.EOFType, which recognizers map
to the end marker "$".

Three tokenizer implementations are provided: (1) a tokenizer over a slice of
pre-split symbols, (2) a thin wrapper over the Go std lib 'text/scanner', for
input which is not separated by whitespace, and (3) an adapter for lexmachine,
living in sub-package `lexmach`, which is the default for recognizer input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"io"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slrgen"
)

// tracer traces with key 'slrgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.scanner")
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() slrgen.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for all
// tokenizers of this module.
type DefaultToken struct {
	kind   slrgen.TokType
	lexeme string
	span   slrgen.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ slrgen.TokType, lexeme string, span slrgen.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// EOFToken creates an end-of-input token at position pos.
func EOFToken(pos uint64) DefaultToken {
	return MakeDefaultToken(slrgen.EOFType, "", slrgen.Span{pos, pos})
}

// TokType is part of the slrgen.Token interface.
func (t DefaultToken) TokType() slrgen.TokType {
	return t.kind
}

// Lexeme is part of the slrgen.Token interface.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of the slrgen.Token interface.
func (t DefaultToken) Span() slrgen.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == slrgen.EOFType {
		return "<EOF>"
	}
	return t.lexeme
}

// --- Slice tokenizer -------------------------------------------------------

// SliceTokenizer delivers a pre-split sequence of terminal symbols. It is
// mainly used for tests and for clients which have tokenized input already.
type SliceTokenizer struct {
	symbols []string
	pos     int
}

var _ Tokenizer = (*SliceTokenizer)(nil)

// Symbols creates a tokenizer for a sequence of terminal symbols.
func Symbols(symbols ...string) *SliceTokenizer {
	return &SliceTokenizer{symbols: symbols}
}

// NextToken is part of the Tokenizer interface. After the last symbol,
// EOF tokens are returned.
func (t *SliceTokenizer) NextToken() slrgen.Token {
	if t.pos >= len(t.symbols) {
		return EOFToken(uint64(t.pos))
	}
	sym := t.symbols[t.pos]
	t.pos++
	return MakeDefaultToken(slrgen.SymbolType, sym, slrgen.Span{uint64(t.pos - 1), uint64(t.pos)})
}

// SetErrorHandler is part of the Tokenizer interface. A slice tokenizer never
// produces errors.
func (t *SliceTokenizer) SetErrorHandler(func(error)) {}

// --- Go tokenizer ----------------------------------------------------------

// DefaultTokenizer is a tokenizer backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken rune        // last token this scanner has produced
	Error     func(error) // error handler
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go
// language. Every token's lexeme is taken as a terminal symbol, thus input
// like "id+id" is split into three terminals.
func GoTokenizer(sourceID string, input io.Reader) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(&ScanError{Pos: s.Position, Msg: msg})
	}
	return t
}

// ScanError is reported to the error handler of a Go tokenizer for
// illegal input.
type ScanError struct {
	Pos scanner.Position
	Msg string
}

func (e *ScanError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() slrgen.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
		return EOFToken(uint64(t.Pos().Offset))
	}
	return MakeDefaultToken(
		slrgen.SymbolType,
		t.TokenText(),
		slrgen.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	)
}

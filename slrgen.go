package slrgen

import "fmt"

// --- Reserved grammar symbols ----------------------------------------------

// Epsilon is the marker for the empty word. It is reserved globally: a
// terminal literally spelled "e" cannot be expressed in a grammar.
const Epsilon = "e"

// EndMarker is the end-of-input terminal. It is never declared by a grammar,
// but appears in FOLLOW sets and in the ACTION table.
const EndMarker = "$"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token.
type TokType int

// Token categories produced by the scanners of this module. Grammars are
// string-based, so a token's terminal name is its lexeme; the category only
// tells symbols apart from the end of input.
const (
	EOFType    TokType = -1
	SymbolType TokType = 1
)

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for an identifier terminal:
//
//    TokType = SymbolType  // every terminal shares this category
//    Lexeme  = "id"        // the terminal as it appears in the grammar
//    Span    = 5…7         // occured from position 5 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// Terminal returns the grammar terminal a token stands for. The end of input
// maps to EndMarker.
func Terminal(tok Token) string {
	if tok == nil || tok.TokType() == EOFType {
		return EndMarker
	}
	return tok.Lexeme()
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// Extend returns a span covering s and other. Null spans are neutral.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	} else if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

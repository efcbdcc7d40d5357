package lexmach

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slrgen"
	"github.com/npillmayer/slrgen/lr/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'slrgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. init has to add all the
// patterns to the lexer, using actions Skip and MakeToken (or custom ones).
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer)) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

var symbolAdapter struct {
	once    sync.Once
	adapter *LMAdapter
	err     error
}

// SymbolAdapter returns an adapter splitting input at whitespace. Every
// non-blank run of characters is a token of type slrgen.SymbolType, standing
// for the terminal of the same name.
//
// The adapter is created once and may be used concurrently afterwards.
func SymbolAdapter() (*LMAdapter, error) {
	symbolAdapter.once.Do(func() {
		symbolAdapter.adapter, symbolAdapter.err = NewLMAdapter(func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
			lexer.Add([]byte(`[^ \t\n\r]+`), MakeToken(slrgen.SymbolType))
		})
	})
	return symbolAdapter.adapter, symbolAdapter.err
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError, end: uint64(len(input))}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	end     uint64 // length of input
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the Tokenizer interface. Unconsumable input is
// reported to the error handler and skipped.
func (lms *LMScanner) NextToken() slrgen.Token {
	if lms.scanner == nil {
		return scanner.EOFToken(0)
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.EOFToken(lms.end)
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return scanner.MakeDefaultToken(
		slrgen.TokType(token.Type),
		string(token.Lexeme),
		slrgen.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(typ slrgen.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// Tokenize is a convenience function to scan whitespace separated input with
// the symbol adapter.
func Tokenize(input string) (*LMScanner, error) {
	adapter, err := SymbolAdapter()
	if err != nil {
		return nil, err
	}
	return adapter.Scanner(input)
}

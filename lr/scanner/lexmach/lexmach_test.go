package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slrgen"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"id",
	"id + id",
	"  ( id\t+ id )\n* id ",
	"",
	"E' -> a",
}

var tokenCounts = []int{1, 3, 7, 0, 3}

func TestSymbolAdapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		scan, err := Tokenize(input)
		if err != nil {
			t.Fatal(err)
		}
		token := scan.NextToken()
		count := 0
		for token.TokType() != slrgen.EOFType {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = scan.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
		if slrgen.Terminal(token) != "$" {
			t.Errorf("Expected end of input to map to $")
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestSymbolSpans(t *testing.T) {
	scan, err := Tokenize("ab  cde")
	if err != nil {
		t.Fatal(err)
	}
	first, second := scan.NextToken(), scan.NextToken()
	if first.Span() != (slrgen.Span{0, 2}) || second.Span() != (slrgen.Span{4, 7}) {
		t.Errorf("unexpected spans %v and %v", first.Span(), second.Span())
	}
	if second.Lexeme() != "cde" {
		t.Errorf("unexpected lexeme %q", second.Lexeme())
	}
}

func TestCustomAdapterSkipsUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.scanner")
	defer teardown()
	//
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
		lexer.Add([]byte(`[a-z]+`), MakeToken(slrgen.SymbolType))
	}
	LM, err := NewLMAdapter(init)
	if err != nil {
		t.Fatal(err)
	}
	scan, err := LM.Scanner("abc 123 def")
	if err != nil {
		t.Fatal(err)
	}
	errcnt := 0
	scan.SetErrorHandler(func(error) { errcnt++ })
	var lexemes []string
	for tok := scan.NextToken(); tok.TokType() != slrgen.EOFType; tok = scan.NextToken() {
		lexemes = append(lexemes, tok.Lexeme())
	}
	if len(lexemes) != 2 || lexemes[1] != "def" {
		t.Errorf("expected tokens abc and def, have %v", lexemes)
	}
	if errcnt == 0 {
		t.Errorf("expected unconsumed input to be reported")
	}
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/slrgen/lr/scanner"
	"github.com/npillmayer/slrgen/lr/scanner/lexmach"
	"github.com/npillmayer/slrgen/lr/slr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var runFlags = struct {
	gotok *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "run <grammar file path> [sentence ...]",
		Short: "Check sentences against the SLR(1) tables of a grammar",
		Long: `run checks each sentence given as an argument. Without sentence
arguments, sentences are read from stdin, one per line.`,
		Example: `  slrcheck run expr.grammar "id + id * id"`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runRun,
	}
	runFlags.gotok = cmd.Flags().Bool("go", false, "tokenize sentences with Go lexical conventions")
	rootCmd.AddCommand(cmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	lrgen, err := buildTables(g)
	if err != nil {
		return err
	}
	rec := &recognizer{parser: slr.NewParser(g, lrgen.GotoTable(), lrgen.ActionTable())}
	rejected := 0
	check := func(sentence string) {
		if !rec.check(sentence) {
			rejected++
		}
	}
	if len(args) > 1 {
		for _, sentence := range args[1:] {
			check(sentence)
		}
	} else {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			check(sc.Text())
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}
	if rejected > 0 {
		return fmt.Errorf("%d sentence(s) rejected", rejected)
	}
	return nil
}

// recognizer checks sentences and reports the verdict.
type recognizer struct {
	parser *slr.Parser
}

func (rec *recognizer) check(sentence string) bool {
	scan, err := tokenizer(sentence)
	if err != nil {
		pterm.Error.Println(fmt.Sprintf("%q: %v", sentence, err))
		return false
	}
	accepted, err := rec.parser.Parse(scan)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	if accepted {
		pterm.Success.Println(fmt.Sprintf("%q accepted", sentence))
	} else {
		pterm.Error.Println(fmt.Sprintf("%q rejected", sentence))
	}
	return accepted
}

// tokenizer creates a tokenizer for a sentence, depending on flag --go.
func tokenizer(sentence string) (scanner.Tokenizer, error) {
	if *runFlags.gotok {
		return scanner.GoTokenizer("input", strings.NewReader(sentence)), nil
	}
	return lexmach.Tokenize(sentence)
}

package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/slrgen/lr"
	"github.com/npillmayer/slrgen/lr/slr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar file path>",
		Short: "Check sentences of a grammar interactively",
		Long: `repl reads sentences from the terminal and checks them against the
SLR(1) tables of a grammar. Lines starting with ':' are commands:
  :grammar   print the grammar
  :tables    print the ACTION and GOTO tables
  :quit      leave the REPL`,
		Args: cobra.ExactArgs(1),
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	lrgen, err := buildTables(g)
	if err != nil {
		return err
	}
	repl, err := readline.New("slr> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{
		G:     g,
		lrgen: lrgen,
		repl:  repl,
		rec:   &recognizer{parser: slr.NewParser(g, lrgen.GotoTable(), lrgen.ActionTable())},
	}
	pterm.Info.Println("Welcome to the SLR(1) REPL")
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
	return nil
}

// Intp is our interpreter object.
type Intp struct {
	G     *lr.Grammar
	lrgen *lr.TableGenerator
	repl  *readline.Instance
	rec   *recognizer
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if intp.Eval(line) {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Eval evaluates a line of input and returns true if the user wants to quit.
func (intp *Intp) Eval(line string) bool {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		intp.rec.check(line)
		return false
	}
	switch line {
	case ":quit", ":q":
		return true
	case ":grammar":
		pterm.Println(intp.G.String())
	case ":tables":
		pterm.Println(intp.lrgen.ActionTable().String())
		pterm.Println(intp.lrgen.GotoTable().String())
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %s", line))
	}
	return false
}

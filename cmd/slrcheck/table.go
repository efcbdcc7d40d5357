package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/slrgen/lr"
	"github.com/npillmayer/slrgen/lr/ll1"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tableFlags = struct {
	dot *string
	ll1 *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "table <grammar file path>",
		Short:   "Print FIRST/FOLLOW sets and SLR(1) parse tables of a grammar",
		Example: `  slrcheck table expr.grammar --dot cfsm.dot`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTable,
	}
	tableFlags.dot = cmd.Flags().String("dot", "", "write the CFSM in GraphViz DOT format to this file")
	tableFlags.ll1 = cmd.Flags().Bool("ll1", false, "print the LL(1) table as well")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	pterm.DefaultSection.Println("Grammar")
	pterm.Println(g.String())
	ga := lr.Analysis(g)
	printSets(ga)
	lrgen, err := buildTables(g)
	if *tableFlags.dot != "" {
		if derr := writeDot(lrgen, *tableFlags.dot); derr != nil {
			return derr
		}
	}
	if *tableFlags.ll1 {
		printLL1(ga)
	}
	var cerr *lr.ConflictError
	if errors.As(err, &cerr) {
		pterm.Error.Println(fmt.Sprintf("grammar is not SLR(1): %s conflict in state %d on %q", cerr.Kind(), cerr.State, cerr.Symbol))
		pterm.Error.Println(fmt.Sprintf("  %s vs. %s", cerr.Existing, cerr.Rejected))
		return err
	} else if err != nil {
		return err
	}
	pterm.DefaultSection.Println("SLR(1) tables")
	pterm.Info.Println(fmt.Sprintf("CFSM has %d states", lrgen.CFSM().Size()))
	pterm.Println(lrgen.ActionTable().String())
	pterm.Println(lrgen.GotoTable().String())
	pterm.Success.Println("grammar is SLR(1)")
	return nil
}

func printSets(ga *lr.LRAnalysis) {
	data := pterm.TableData{{"", "FIRST", "FOLLOW"}}
	for _, A := range ga.Grammar().NonTerminals() {
		data = append(data, []string{A, ga.First(A).String(), ga.Follow(A).String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printLL1(ga *lr.LRAnalysis) {
	table, err := ll1.BuildTable(ga)
	if err != nil {
		pterm.Warning.Println(err.Error())
		return
	}
	pterm.DefaultSection.Println("LL(1) table")
	pterm.Println(table.String())
}

func writeDot(lrgen *lr.TableGenerator, path string) error {
	cfsm := lrgen.CFSM()
	if cfsm == nil {
		return fmt.Errorf("no CFSM for grammar")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := cfsm.CFSM2GraphViz(f); err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("CFSM written to %s", path))
	return nil
}

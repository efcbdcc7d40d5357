package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/slrgen/lr"
	"github.com/npillmayer/slrgen/suite"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace    *string
	dumpCFSM *bool
	start    *string
}{}

var rootCmd = &cobra.Command{
	Use:   "slrcheck",
	Short: "Build SLR(1) parse tables and check sentences of a grammar",
	Long: `slrcheck constructs the canonical LR(0) collection and the SLR(1)
ACTION and GOTO tables for a context-free grammar, reports conflicts
and recognizes sentences with a table-driven shift-reduce recognizer.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
	rootFlags.dumpCFSM = rootCmd.PersistentFlags().Bool("dump-cfsm", false, "dump CFSM states (trace level Debug)")
	rootFlags.start = rootCmd.PersistentFlags().StringP("start", "s", "", "start symbol (default: LHS of first production)")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// setup configures tracing and global configuration from the command line.
// All packages of slrgen trace to the global syntax tracer.
func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"slr-dump-cfsm":   *rootFlags.dumpCFSM,
	}
	for _, key := range traceKeys {
		conf[key] = *rootFlags.trace
	}
	gconf.Initialize(conf)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return gtrace.SyntaxTracer
	}))
	tracer().Infof("trace level is %s", gtrace.SyntaxTracer.GetTraceLevel())
	return nil
}

// gconf sets the levels of the global tracers from these keys.
var traceKeys = []string{
	"tracinginterpreter", "tracingcommands", "tracingequations", "tracingsyntax",
	"tracinggraphics", "tracingscripting", "tracingcore", "tracingengine",
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadGrammar reads a grammar file, honouring flag --start.
func loadGrammar(path string) (*lr.Grammar, error) {
	g, err := suite.LoadGrammar(path, *rootFlags.start)
	if err != nil {
		return nil, fmt.Errorf("cannot read a grammar: %w", err)
	}
	if g.Size() == 0 {
		return nil, fmt.Errorf("grammar %s has no productions", path)
	}
	return g, nil
}

// buildTables analyses g and constructs its SLR(1) tables.
func buildTables(g *lr.Grammar) (*lr.TableGenerator, error) {
	ga := lr.Analysis(g)
	ga.Dump()
	lrgen := lr.NewTableGenerator(ga)
	if err := lrgen.CreateTables(); err != nil {
		return lrgen, err
	}
	return lrgen, nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/slrgen/suite"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "check <suite file path> ...",
		Short:   "Run grammar test suites",
		Example: `  slrcheck check testdata/suites.toml`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var suites []suite.Suite
	errOccurred := false
	for _, path := range args {
		s, err := suite.Load(path)
		if err != nil {
			pterm.Error.Println(fmt.Sprintf("cannot read test suites: %v", err))
			errOccurred = true
			continue
		}
		suites = append(suites, s...)
	}
	if errOccurred {
		return errors.New("cannot run test suites")
	}
	failed := 0
	for _, r := range suite.RunAll(suites) {
		report(r)
		if !r.Passed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d test suite(s) failed", failed, len(suites))
	}
	pterm.Success.Println(fmt.Sprintf("%d test suite(s) passed", len(suites)))
	return nil
}

func report(r suite.Result) {
	class := "SLR(1)"
	if r.Conflict != nil {
		class = "not SLR(1)"
	}
	if r.LL1 {
		class += ", LL(1)"
	}
	switch {
	case r.Err != nil:
		pterm.Error.Println(fmt.Sprintf("%s: %v", r.Name, r.Err))
	case len(r.Failures) > 0:
		pterm.Error.Println(fmt.Sprintf("%s (%s): %d of %d sentences failed", r.Name, class, len(r.Failures), r.Checked))
		for _, f := range r.Failures {
			pterm.Println("    " + f.String())
		}
	default:
		pterm.Success.Println(fmt.Sprintf("%s (%s): %d sentences", r.Name, class, r.Checked))
	}
}

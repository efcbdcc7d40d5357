package suite

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/slrgen/lr"
	"github.com/npillmayer/slrgen/lr/ll1"
	"github.com/npillmayer/slrgen/lr/slr"
)

// Expectations for the grammar of a suite.
const (
	ExpectSLR      = "slr"
	ExpectConflict = "conflict"
)

// ErrInvalidSuite is returned for suites which cannot be run.
var ErrInvalidSuite = errors.New("invalid test suite")

// Suite is a grammar test suite: a grammar, the expected outcome of SLR(1)
// table construction and sentences to accept or reject.
type Suite struct {
	Name        string   `toml:"name"`
	Start       string   `toml:"start"`
	Productions []string `toml:"productions"`
	Expect      string   `toml:"expect"`
	Accept      []string `toml:"accept"`
	Reject      []string `toml:"reject"`
}

type suiteFile struct {
	Suite
	Suites []Suite `toml:"suite"`
}

// Decode reads all suites of a TOML document. Suites without a name are named
// after their position in the document.
func Decode(data []byte) ([]Suite, error) {
	var f suiteFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSuite, err)
	}
	var suites []Suite
	if len(f.Suite.Productions) > 0 {
		suites = append(suites, f.Suite)
	}
	suites = append(suites, f.Suites...)
	if len(suites) == 0 {
		return nil, fmt.Errorf("%w: document contains no productions", ErrInvalidSuite)
	}
	for i := range suites {
		if suites[i].Name == "" {
			suites[i].Name = fmt.Sprintf("suite-%d", i+1)
		}
		if err := suites[i].check(); err != nil {
			return nil, err
		}
	}
	return suites, nil
}

// Load reads all suites of a TOML file.
func Load(path string) ([]Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	suites, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return suites, nil
}

func (s *Suite) check() error {
	switch s.Expect {
	case "":
		s.Expect = ExpectSLR
	case ExpectSLR, ExpectConflict:
	default:
		return fmt.Errorf("%w: suite %s expects %q", ErrInvalidSuite, s.Name, s.Expect)
	}
	if len(s.Productions) == 0 {
		return fmt.Errorf("%w: suite %s has no productions", ErrInvalidSuite, s.Name)
	}
	return nil
}

// Failure is a sentence with an unexpected verdict.
type Failure struct {
	Input    string
	Expected bool // expected to be accepted
}

func (f Failure) String() string {
	if f.Expected {
		return fmt.Sprintf("%q should be accepted", f.Input)
	}
	return fmt.Sprintf("%q should be rejected", f.Input)
}

// Result is the outcome of running a suite.
type Result struct {
	Name     string
	Err      error             // grammar or table construction error
	Conflict *lr.ConflictError // first conflict, if the grammar is not SLR(1)
	LL1      bool              // grammar is LL(1) as well
	Tables   *lr.TableGenerator
	Failures []Failure
	Checked  int // number of sentences checked
}

// Passed is true if the suite met all of its expectations.
func (r Result) Passed() bool {
	return r.Err == nil && len(r.Failures) == 0
}

// Run runs a suite. Table construction for expected conflicts passes if it
// fails with an lr.ErrConflict.
func Run(s Suite) Result {
	r := Result{Name: s.Name}
	if err := s.check(); err != nil {
		r.Err = err
		return r
	}
	g, err := lr.ParseGrammar(s.Start, s.Productions...)
	if err != nil {
		r.Err = err
		return r
	}
	ga := lr.Analysis(g)
	_, err = ll1.BuildTable(ga)
	r.LL1 = err == nil
	r.Tables = lr.NewTableGenerator(ga)
	err = r.Tables.CreateTables()
	errors.As(err, &r.Conflict)
	switch {
	case s.Expect == ExpectConflict && r.Conflict != nil:
		tracer().Infof("suite %s: expected conflict %v", s.Name, r.Conflict)
		return r
	case s.Expect == ExpectConflict:
		r.Err = fmt.Errorf("suite %s: expected a conflict, have %v", s.Name, err)
		return r
	case err != nil:
		r.Err = err
		return r
	}
	check := func(input string, expected bool) {
		r.Checked++
		if slr.Validate(input, g, r.Tables.ActionTable(), r.Tables.GotoTable()) != expected {
			tracer().Infof("suite %s: %q has unexpected verdict", s.Name, input)
			r.Failures = append(r.Failures, Failure{Input: input, Expected: expected})
		}
	}
	for _, input := range s.Accept {
		check(input, true)
	}
	for _, input := range s.Reject {
		check(input, false)
	}
	return r
}

// RunAll runs suites in order.
func RunAll(suites []Suite) []Result {
	results := make([]Result, len(suites))
	for i, s := range suites {
		results[i] = Run(s)
	}
	return results
}

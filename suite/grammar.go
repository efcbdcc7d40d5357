package suite

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/slrgen/lr"
)

// ReadGrammar reads a grammar in line format from r. If start is empty, the
// left-hand side of the first production becomes the start symbol. Errors
// carry the line number of the offending production and wrap
// lr.ErrMalformedProduction.
func ReadGrammar(r io.Reader, start string) (*lr.Grammar, error) {
	var lines []string
	var linenos []int
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
		linenos = append(linenos, n)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	g := lr.NewGrammar(start)
	for i, line := range lines {
		if err := g.AddProduction(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", linenos[i], err)
		}
	}
	tracer().Debugf("read grammar with %d productions, start symbol %s", g.Size(), g.StartSymbol())
	return g, nil
}

// LoadGrammar reads a grammar file. See ReadGrammar.
func LoadGrammar(path string, start string) (*lr.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ReadGrammar(f, start)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

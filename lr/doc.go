/*
Package lr implements the prerequisites for SLR(1) parsing: grammars, LR(0)
items, FIRST/FOLLOW analysis, the characteristic finite state machine (CFSM)
and the ACTION/GOTO tables derived from it.

Building a Grammar

Grammars are given as production text. Symbols are separated by whitespace;
a symbol starting with an upper-case letter is a non-terminal, all other
symbols are terminals. "e" denotes the empty word and "$" is reserved for
the end of input.

    g := lr.NewGrammar("E")
    g.MustAddProduction("E -> E + T | T")
    g.MustAddProduction("T -> T * F | F")
    g.MustAddProduction("F -> ( E ) | id")

Every table construction starts from the augmented grammar, which adds a
fresh start symbol E' and a production E' -> E:

    ga := g.Augmented()

Static Grammar Analysis

FIRST and FOLLOW sets are computed by fixed-point iteration.

    first := lr.ComputeFirst(g)
    follow := lr.ComputeFollow(g, first)
    fmt.Println(follow["T"])   // { $ ) * + }

LRAnalysis bundles both for clients which prefer an object:

    an := lr.Analysis(g)
    an.Follow("F")

Parser Construction

BuildTables augments the grammar and builds a CFSM from it, i.e. the
canonical collection of LR(0) item sets. The CFSM is transformed into a GOTO
table and, using FOLLOW of the original grammar as lookahead, into an SLR(1)
ACTION table.

    actions, gotos, err := lr.BuildTables(g, follow)
    if errors.Is(err, lr.ErrConflict) { … }   // not an SLR(1) grammar

Grammars with shift/reduce or reduce/reduce conflicts never produce tables.
TableGenerator gives access to the CFSM as well; it can be exported to
Graphviz's Dot-format.

    lrgen := lr.NewTableGenerator(lr.Analysis(g))
    err := lrgen.CreateTables()
    lrgen.CFSM().CFSM2GraphViz(w)

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slrgen.lr'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.lr")
}

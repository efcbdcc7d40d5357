/*
Command slrcheck builds SLR(1) parse tables for grammars and checks input
sentences against them.

	slrcheck table expr.grammar              # print FIRST/FOLLOW, ACTION and GOTO tables
	slrcheck table expr.grammar --dot cfsm.dot
	slrcheck run expr.grammar "id + id" "( id"
	slrcheck check suites.toml               # run TOML test suites
	slrcheck repl expr.grammar               # check sentences interactively

Grammar files hold one production per line, e.g. "E -> E + T | T". Input
sentences are whitespace separated terminals; with flag --go, input is split
into tokens with Go lexical conventions instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slrgen.cli'
func tracer() tracing.Trace {
	return tracing.Select("slrgen.cli")
}

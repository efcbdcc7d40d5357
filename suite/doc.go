/*
Package suite reads grammar files and runs grammar test suites.

Grammar files hold one production per line, alternatives separated by "|".
Blank lines and lines starting with "#" are ignored. The left-hand side of the
first production is the start symbol, unless the caller provides one.

	# classical expression grammar
	E -> E + T | T
	T -> T * F | F
	F -> ( E ) | id

Test suites are TOML documents. A document may describe a single suite at the
top level or an array of tables named "suite":

	name = "expressions"
	start = "E"
	productions = ["E -> E + T | T", "T -> T * F | F", "F -> ( E ) | id"]
	expect = "slr"
	accept = ["id", "id + id"]
	reject = ["", "id id"]

Field expect is either "slr" (the default) or "conflict". For expected
conflicts no sentences are checked.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package suite

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'slrgen.suite'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.suite")
}

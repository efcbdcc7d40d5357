/*
Package ll1 builds predictive LL(1) parse tables and runs a table-driven
top-down recognizer on them.

The package is a companion to the SLR(1) machinery of package lr. It re-uses
the FIRST and FOLLOW sets of an lr.LRAnalysis and never influences SLR(1)
results. It is helpful for comparing both classes of grammars: the classical
left-recursive expression grammar is SLR(1), but not LL(1).

	g, _ := lr.ParseGrammar("E",
		"E -> T E'",
		"E' -> + T E' | e",
		"T -> F T'",
		"T' -> * F T' | e",
		"F -> ( E ) | id")
	table, err := ll1.BuildTable(lr.Analysis(g))
	if errors.Is(err, ll1.ErrNotLL1) { ... }
	ok := ll1.Validate("id + id * id", table)

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1

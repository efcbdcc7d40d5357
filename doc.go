/*
Package slrgen builds SLR(1) parsing tables from context-free grammars and
recognizes token sequences with them.

Slrgen is a small, textbook-style toolkit: grammars are entered as lines of
production text, the canonical LR(0) automaton is constructed with closure and
goto operations, FIRST and FOLLOW sets are computed as fixed points, and an SLR(1)
ACTION/GOTO table pair is synthesized. Construction fails closed: a grammar with a
shift/reduce or reduce/reduce conflict does not get any tables at all.
Package structure is as follows:

■ lr: Package lr implements the grammar model, LR(0) items, the closure/goto
automaton, FIRST/FOLLOW analysis and the SLR(1) table builder.

■ lr/slr: Package slr implements a table-driven shift-reduce recognizer.

■ lr/ll1: Package ll1 implements predictive LL(1) tables on top of the same
FIRST/FOLLOW analysis.

■ suite: Package suite reads grammar files and TOML test suites.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slrgen

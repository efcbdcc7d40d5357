/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing algorithms
around scanners, parsers, etc. These kinds of algorihms are often more straightforward
to describe as set constructions and operations. Sets remember the order in which
elements have been inserted, and an iteration running over a set will see
elements which are added while the iteration is in progress. This makes a Set
usable as its own work-queue, e.g. for closure operations.

Union is destructive, i.e. it changes the receiver. All other operations leave
their operands untouched.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable

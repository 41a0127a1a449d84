/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing algorithms
around scanners, parsers, etc. These kinds of algorihms are often more straightforward
to describe as set constructions and operations. A typical example is the
closure of an LR item set: while iterating over a set, new items are added, and
the iteration visits them as well.

Set elements must be comparable (usable as map keys). Sets keep the insertion
order of their elements, but equality is structural: two sets are equal if they
contain the same elements, regardless of order.

Unusually, all set operations are destructive!

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable

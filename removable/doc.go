/*
Package removable implements set containers for backtracking search.

Set and OrderedSet are special purpose set types, suitable mainly for
implementing recursive backtracking algorithms (enumerating Latin squares,
Sudoku grids, exact covers, …). These kinds of algorithms repeatedly shrink
a fixed universe of candidate values while descending, and grow it back, in
exactly reverse order, while backtracking.

Unusually, elements are never really gone: Erase moves a value behind an
internal partition boundary, and Unerase moves the most recently erased
value back in front of it. Erase and Unerase form a stack discipline,
mirroring the call/return structure of a recursive search. Genuinely new
values cannot be inserted after construction.

Both containers keep their elements in one flat backing slice and never
allocate per element. Set leaves the active elements in unspecified order
and erases in O(1); OrderedSet keeps the active elements sorted under a
comparator, trading O(distance to boundary) data movement per mutation for
O(log n) lookup.

The containers are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package removable

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'casella.removable'.
func tracer() tracing.Trace {
	return tracing.Select("casella.removable")
}

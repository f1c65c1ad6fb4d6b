/*
Package solver implements backtracking enumerators for Latin squares and
Sudoku grids.

A solver walks the empty cells of a grid in row-major order. For every
cell it tries the candidate values still unused in the cell's row, column
(and box, for Sudoku), placing a value by erasing it from the affected
removable sets and descending; on backtracking the erasures are undone in
exactly reverse order. The containers of package removable make both
directions O(1) resp. O(log n) without allocating per step.

Enumeration is exhaustive and deterministic (candidates in ascending
order). For large grids an exhaustive walk is hopeless; Sample draws
random solutions instead, shuffling the candidate order per descent and
fingerprinting solutions to suppress duplicates.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package solver

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'casella.solver'.
func tracer() tracing.Trace {
	return tracing.Select("casella.solver")
}

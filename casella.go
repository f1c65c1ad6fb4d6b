package casella

import "fmt"

// --- Cell values ------------------------------------------------------

// CellValue is the value held by one cell of a combinatorial grid. We do not
// restrict the range here, as it is up to applications (and grid sizes) to
// define it. Latin squares of order n use 1…n.
type CellValue int

// NoValue denotes an empty (unfilled) cell.
const NoValue CellValue = 0

// IsNone returns true for an empty cell value.
func (v CellValue) IsNone() bool {
	return v == NoValue
}

func (v CellValue) String() string {
	if v == NoValue {
		return "."
	}
	return fmt.Sprintf("%d", int(v))
}

// --- Sequence formatting tokens ---------------------------------------

// Brackets configures how a sequence of values is rendered for diagnostic
// output: an opening token, a separator and a closing token. Formatting
// routines receive a Brackets value explicitly; there is no process-wide
// default that call sites could mutate behind each other's backs.
type Brackets struct {
	Open  string
	Sep   string
	Close string
}

// Braces renders sequences as "{a,b,c}". This is the convention used
// throughout this module for diagnostics.
var Braces = Brackets{"{", ",", "}"}

// Parens renders sequences as "(a, b, c)".
var Parens = Brackets{"(", ", ", ")"}

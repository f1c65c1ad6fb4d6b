/*
Package casella/main provides an interactive command line tool for
experimenting with Latin square and Sudoku enumeration. Users load a grid
file, then count, list or sample its completions. It serves as a sandbox
for exploring the behaviour of the backtracking solvers and of the
underlying removable-set containers.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'casella.solver'
func tracer() tracing.Trace {
	return tracing.Select("casella.solver")
}

/*
Package grid implements a simple type for dense matrices of cell values.
It is mainly used for combinatorial grids (Latin squares, Sudoku boards).
Every entry in the matrix is either a cell value or the empty marker.

A text reader and writer for grids lives in this package, too; see Read
and ReadFile.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grid

import (
	"bytes"
	"fmt"
	"io"

	"github.com/npillmayer/casella"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'casella.grid'.
func tracer() tracing.Trace {
	return tracing.Select("casella.grid")
}

// Grid is a dense m x n matrix of cell values. Construct with
//
//     G := grid.New(9, 9)            // all cells start out empty
//
// Now
//
//     G.Set(2, 3, 7)                 // set a value
//     v := G.Value(2, 3)             // returns 7
//     cnt := G.FilledCount()         // returns 1
//     v = G.Value(0, 0)              // returns casella.NoValue
//
// Cells may be emptied again by setting casella.NoValue.
type Grid struct {
	cells  []casella.CellValue
	rowcnt int
	colcnt int
}

// New creates an empty grid of size m x n.
func New(m, n int) *Grid {
	if m <= 0 || n <= 0 {
		panic(fmt.Sprintf("grid.New() with non-positive dimensions: %d x %d", m, n))
	}
	return &Grid{
		cells:  make([]casella.CellValue, m*n),
		rowcnt: m,
		colcnt: n,
	}
}

// M returns the row count.
func (g *Grid) M() int {
	return g.rowcnt
}

// N returns the column count.
func (g *Grid) N() int {
	return g.colcnt
}

func (g *Grid) index(i, j int) int {
	if i < 0 || i >= g.rowcnt || j < 0 || j >= g.colcnt {
		panic(fmt.Sprintf("grid position out of range: (%d,%d)", i, j))
	}
	return i*g.colcnt + j
}

// Value returns the cell value at position (i,j), or casella.NoValue for
// an empty cell.
func (g *Grid) Value(i, j int) casella.CellValue {
	return g.cells[g.index(i, j)]
}

// Set puts a value into the cell at position (i,j). Setting
// casella.NoValue empties the cell.
func (g *Grid) Set(i, j int, value casella.CellValue) *Grid {
	g.cells[g.index(i, j)] = value
	return g
}

// Clear empties the cell at position (i,j).
func (g *Grid) Clear(i, j int) *Grid {
	return g.Set(i, j, casella.NoValue)
}

// FilledCount returns the number of non-empty cells.
func (g *Grid) FilledCount() int {
	cnt := 0
	for _, v := range g.cells {
		if !v.IsNone() {
			cnt++
		}
	}
	return cnt
}

// Full is true if no cell is empty.
func (g *Grid) Full() bool {
	return g.FilledCount() == g.rowcnt*g.colcnt
}

// Copy returns an independent copy of the grid.
func (g *Grid) Copy() *Grid {
	c := New(g.rowcnt, g.colcnt)
	copy(c.cells, g.cells)
	return c
}

// Row returns a copy of row i.
func (g *Grid) Row(i int) []casella.CellValue {
	row := make([]casella.CellValue, g.colcnt)
	copy(row, g.cells[i*g.colcnt:(i+1)*g.colcnt])
	return row
}

// EachCell calls a function for every cell, in row-major order.
func (g *Grid) EachCell(f func(i, j int, v casella.CellValue)) {
	for i := 0; i < g.rowcnt; i++ {
		for j := 0; j < g.colcnt; j++ {
			f(i, j, g.cells[i*g.colcnt+j])
		}
	}
}

func (g *Grid) String() string {
	var b bytes.Buffer
	for i := 0; i < g.rowcnt; i++ {
		if i > 0 {
			b.WriteString("\n")
		}
		for j := 0; j < g.colcnt; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(g.cells[i*g.colcnt+j].String())
		}
	}
	return b.String()
}

// Write renders the grid in its text format, readable back with Read.
func (g *Grid) Write(w io.Writer) error {
	_, err := io.WriteString(w, g.String()+"\n")
	return err
}

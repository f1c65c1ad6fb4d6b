package solver

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/casella"
	"github.com/npillmayer/casella/grid"
	"github.com/npillmayer/casella/removable"
)

// Solver enumerates the completions of a partially filled grid to Latin
// squares, optionally with the Sudoku box constraint. Create and
// initialize one with solver.New(...).
//
// A solver owns its grid while solving: Enumerate and Sample mutate it in
// place and restore it, givens included, before they return.
type Solver struct {
	g         *grid.Grid
	n         int                     // grid order
	rows      []*removable.OrderedSet // per-row candidates, iterated in ascending order
	cols      []*removable.Set        // per-column candidates, membership checks only
	boxes     []*removable.Set        // per-box candidates, nil without box constraint
	boxdim    int
	retain    bool
	solutions *arraylist.List
	count     uint64
	progress  *progressTicker
}

// Option is a configuration option for creating a solver.
type Option func(*Solver)

// WithBoxes makes the solver enforce the Sudoku box constraint: the grid
// is divided into sqrt(n) x sqrt(n) boxes, each of which must contain
// every value exactly once. Requires the grid order to be a square
// number.
func WithBoxes() Option {
	return func(s *Solver) {
		s.boxdim = -1 // resolved in New, once the order is known
	}
}

// RetainSolutions makes the solver keep a copy of every solution found by
// Enumerate, retrievable with Solutions(). Off by default: complete
// grids can be plentiful, visitors should usually stream them.
func RetainSolutions() Option {
	return func(s *Solver) {
		s.retain = true
	}
}

// New creates a solver for a grid. The grid must be square; given cells
// must hold values 1…n and must not conflict (no value twice in a row,
// column, or box).
func New(g *grid.Grid, opts ...Option) (*Solver, error) {
	if g.M() != g.N() {
		return nil, fmt.Errorf("latin grids are square, have %d x %d", g.M(), g.N())
	}
	s := &Solver{g: g, n: g.M()}
	for _, opt := range opts {
		opt(s)
	}
	if s.boxdim != 0 {
		s.boxdim = int(math.Sqrt(float64(s.n)))
		if s.boxdim*s.boxdim != s.n {
			return nil, fmt.Errorf("box constraint needs a square order, have %d", s.n)
		}
	}
	if s.retain {
		s.solutions = arraylist.New()
	}
	universe := make([]interface{}, s.n)
	for v := 1; v <= s.n; v++ {
		universe[v-1] = casella.CellValue(v)
	}
	s.rows = make([]*removable.OrderedSet, s.n)
	s.cols = make([]*removable.Set, s.n)
	for i := 0; i < s.n; i++ {
		s.rows[i] = removable.NewOrderedSet(cellComparator, universe...)
		s.cols[i] = removable.NewSet(universe...)
	}
	if s.boxdim > 0 {
		s.boxes = make([]*removable.Set, s.n)
		for b := 0; b < s.n; b++ {
			s.boxes[b] = removable.NewSet(universe...)
		}
	}
	if err := s.consumeGivens(); err != nil {
		return nil, err
	}
	return s, nil
}

// consumeGivens erases every given cell value from the candidate sets it
// constrains. A failing erase means the value is used twice.
func (s *Solver) consumeGivens() error {
	var err error
	s.g.EachCell(func(i, j int, v casella.CellValue) {
		if err != nil || v.IsNone() {
			return
		}
		if int(v) < 1 || int(v) > s.n {
			err = fmt.Errorf("cell (%d,%d): value %v outside 1…%d", i, j, v, s.n)
			return
		}
		if !s.rows[i].Erase(v) {
			err = fmt.Errorf("cell (%d,%d): value %v already used in row %d", i, j, v, i)
			return
		}
		if !s.cols[j].Erase(v) {
			err = fmt.Errorf("cell (%d,%d): value %v already used in column %d", i, j, v, j)
			return
		}
		if s.boxes != nil && !s.boxes[s.boxAt(i, j)].Erase(v) {
			err = fmt.Errorf("cell (%d,%d): value %v already used in box %d", i, j, v, s.boxAt(i, j))
		}
	})
	return err
}

func (s *Solver) boxAt(i, j int) int {
	return (i/s.boxdim)*s.boxdim + j/s.boxdim
}

// cellComparator orders cell values ascending; comparator convention as
// in gods/utils.
func cellComparator(a, b interface{}) int {
	va := a.(casella.CellValue)
	vb := b.(casella.CellValue)
	switch {
	case va > vb:
		return 1
	case va < vb:
		return -1
	}
	return 0
}

// Enumerate walks every completion of the grid, in lexicographic cell
// order with candidates ascending, and calls a visitor for each. The grid
// handed to the visitor is the solver's working grid; visitors must copy
// it if they want to keep it. Returning false from the visitor stops the
// enumeration. A nil visitor just counts.
//
// Enumerate returns the number of solutions visited. The grid is restored
// to its pre-call state afterwards.
func (s *Solver) Enumerate(visit func(*grid.Grid) bool) uint64 {
	s.count = 0
	s.progress = startProgress()
	if s.retain {
		s.solutions.Clear()
	}
	s.descend(0, visit)
	tracer().Infof("enumerated %d solutions", s.count)
	return s.count
}

// descend tries to fill the next empty cell at or after linear position
// k. Returns false if the visitor stopped the enumeration.
func (s *Solver) descend(k int, visit func(*grid.Grid) bool) bool {
	n := s.n
	for k < n*n && !s.g.Value(k/n, k%n).IsNone() {
		k++
	}
	if k == n*n { // no empty cell left: a solution
		s.count++
		s.progress.tick(s.count)
		if s.retain {
			s.solutions.Add(s.g.Copy())
		}
		if visit != nil {
			return visit(s.g)
		}
		return true
	}
	i, j := k/n, k%n
	// the candidate sets shrink and grow during the descent, so iterate
	// over a snapshot of the row candidates
	for _, x := range s.rows[i].Values() {
		v := x.(casella.CellValue)
		if !s.admissible(i, j, v) {
			continue
		}
		s.place(i, j, v)
		cont := s.descend(k+1, visit)
		s.unplace(i, j)
		if !cont {
			return false
		}
	}
	return true
}

// admissible checks column and box availability of a value; row
// availability is implied by iterating the row's candidate set.
func (s *Solver) admissible(i, j int, v casella.CellValue) bool {
	if !s.cols[j].Has(v) {
		return false
	}
	if s.boxes != nil && !s.boxes[s.boxAt(i, j)].Has(v) {
		return false
	}
	return true
}

// place fills cell (i,j) with v and erases v from the affected candidate
// sets. unplace undoes this in exactly reverse order; the paired calls
// make up the stack discipline the removable sets are built around.
func (s *Solver) place(i, j int, v casella.CellValue) {
	s.rows[i].Erase(v)
	s.cols[j].Erase(v)
	if s.boxes != nil {
		s.boxes[s.boxAt(i, j)].Erase(v)
	}
	s.g.Set(i, j, v)
}

func (s *Solver) unplace(i, j int) {
	s.g.Clear(i, j)
	if s.boxes != nil {
		s.boxes[s.boxAt(i, j)].Unerase()
	}
	s.cols[j].Unerase()
	s.rows[i].Unerase()
}

// First returns the lexicographically first completion of the grid, or
// false if the givens admit no solution.
func (s *Solver) First() (*grid.Grid, bool) {
	var sol *grid.Grid
	s.Enumerate(func(g *grid.Grid) bool {
		sol = g.Copy()
		return false
	})
	return sol, sol != nil
}

// Count returns the number of completions of the grid.
func (s *Solver) Count() uint64 {
	return s.Enumerate(nil)
}

// Solutions returns the solutions retained by the last Enumerate run.
// Empty unless the solver was created with RetainSolutions.
func (s *Solver) Solutions() []*grid.Grid {
	if s.solutions == nil {
		return nil
	}
	r := make([]*grid.Grid, 0, s.solutions.Size())
	it := s.solutions.Iterator()
	for it.Next() {
		r = append(r, it.Value().(*grid.Grid))
	}
	return r
}

// Valid checks a grid for the Latin property: every row and every column
// holds each of 1…n exactly once. With boxed set, boxes are checked, too
// (grid order must then be a square number).
func Valid(g *grid.Grid, boxed bool) bool {
	if g.M() != g.N() || !g.Full() {
		return false
	}
	n := g.M()
	groups := n * 2
	boxdim := 0
	if boxed {
		boxdim = int(math.Sqrt(float64(n)))
		if boxdim*boxdim != n {
			return false
		}
		groups += n
	}
	seen := make([]map[casella.CellValue]bool, groups)
	for k := range seen {
		seen[k] = make(map[casella.CellValue]bool, n)
	}
	ok := true
	g.EachCell(func(i, j int, v casella.CellValue) {
		if int(v) < 1 || int(v) > n {
			ok = false
			return
		}
		row, col := seen[i], seen[n+j]
		if row[v] || col[v] {
			ok = false
			return
		}
		row[v], col[v] = true, true
		if boxed {
			box := seen[2*n+(i/boxdim)*boxdim+j/boxdim]
			if box[v] {
				ok = false
				return
			}
			box[v] = true
		}
	})
	return ok
}

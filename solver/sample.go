package solver

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/casella"
	"github.com/npillmayer/casella/grid"
	"golang.org/x/exp/rand"
)

// Sample draws up to k distinct random completions of the grid. Every
// draw is one randomized depth-first descent (candidates shuffled per
// cell) stopping at its first solution; duplicate finds are recognized by
// fingerprint and skipped. maxTries bounds the number of descents, since
// grids with few solutions would otherwise loop on re-finding them.
//
// The result may hold fewer than k grids if the givens admit fewer
// distinct solutions, or if maxTries descents did not surface enough of
// them. The solver's grid is restored before Sample returns.
func (s *Solver) Sample(k int, seed uint64, maxTries int) []*grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	seen := hashset.New()
	result := make([]*grid.Grid, 0, k)
	for try := 0; try < maxTries && len(result) < k; try++ {
		sol, ok := s.randomDescent(0, rng)
		if !ok { // givens admit no solution at all
			break
		}
		fp := fingerprint(sol)
		if seen.Contains(fp) {
			continue
		}
		seen.Add(fp)
		result = append(result, sol)
		tracer().Debugf("sample %d found on try %d", len(result), try+1)
	}
	return result
}

// randomDescent is descend with shuffled candidate order, stopping at the
// first solution found.
func (s *Solver) randomDescent(k int, rng *rand.Rand) (*grid.Grid, bool) {
	n := s.n
	for k < n*n && !s.g.Value(k/n, k%n).IsNone() {
		k++
	}
	if k == n*n {
		return s.g.Copy(), true
	}
	i, j := k/n, k%n
	candidates := s.rows[i].Values()
	rng.Shuffle(len(candidates), func(a, b int) {
		candidates[a], candidates[b] = candidates[b], candidates[a]
	})
	for _, x := range candidates {
		v := x.(casella.CellValue)
		if !s.admissible(i, j, v) {
			continue
		}
		s.place(i, j, v)
		sol, ok := s.randomDescent(k+1, rng)
		s.unplace(i, j)
		if ok {
			return sol, true
		}
	}
	return nil, false
}

// fingerprint hashes the cell contents of a completed grid.
func fingerprint(g *grid.Grid) string {
	var snap struct {
		M     int
		Cells []int
	}
	snap.M = g.M()
	snap.Cells = make([]int, 0, g.M()*g.N())
	g.EachCell(func(i, j int, v casella.CellValue) {
		snap.Cells = append(snap.Cells, int(v))
	})
	return fmt.Sprintf("%x", structhash.Sha1(snap, 1))
}

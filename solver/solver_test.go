package solver

import (
	"testing"

	"github.com/npillmayer/casella/grid"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCountLatinSquares(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.solver")
	defer teardown()
	//
	// the number of Latin squares of order 3 is 12, of order 4 is 576
	for _, tc := range []struct {
		n    int
		want uint64
	}{
		{3, 12},
		{4, 576},
	} {
		s, err := New(grid.New(tc.n, tc.n))
		if err != nil {
			t.Fatal(err)
		}
		if cnt := s.Count(); cnt != tc.want {
			t.Errorf("expected %d Latin squares of order %d, have %d", tc.want, tc.n, cnt)
		}
	}
}

func TestCountSudokuGrids(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.solver")
	defer teardown()
	//
	// the number of 4x4 Sudoku grids (2x2 boxes) is 288
	s, err := New(grid.New(4, 4), WithBoxes())
	if err != nil {
		t.Fatal(err)
	}
	if cnt := s.Count(); cnt != 288 {
		t.Errorf("expected 288 Sudoku grids of order 4, have %d", cnt)
	}
}

func TestSolveWithGivens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.solver")
	defer teardown()
	//
	// the cyclic square with three cells removed has a unique completion
	G, err := grid.Read(`
. 2 3 4
2 . 4 1
3 4 . 2
4 1 2 3`)
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(G)
	if err != nil {
		t.Fatal(err)
	}
	sol, ok := s.First()
	if !ok {
		t.Fatal("expected a solution, found none")
	}
	if v := sol.Value(0, 0); v != 1 {
		t.Errorf("expected cell (0,0) = 1, have %v", v)
	}
	if v := sol.Value(1, 1); v != 3 {
		t.Errorf("expected cell (1,1) = 3, have %v", v)
	}
	if v := sol.Value(2, 2); v != 1 {
		t.Errorf("expected cell (2,2) = 1, have %v", v)
	}
	if !Valid(sol, false) {
		t.Errorf("solution is not a Latin square:\n%v", sol)
	}
	if cnt := s.Count(); cnt != 1 {
		t.Errorf("expected a unique completion, have %d", cnt)
	}
	// solving restores the working grid, givens included
	if G.FilledCount() != 13 {
		t.Errorf("solver did not restore the grid:\n%v", G)
	}
}

func TestConflictingGivensRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.solver")
	defer teardown()
	//
	G := grid.New(3, 3).Set(0, 0, 1).Set(0, 2, 1) // 1 twice in row 0
	if _, err := New(G); err == nil {
		t.Errorf("expected conflicting givens to be rejected")
	}
	H := grid.New(3, 3).Set(1, 1, 5) // value outside 1…3
	if _, err := New(H); err == nil {
		t.Errorf("expected out-of-range given to be rejected")
	}
	R := grid.New(2, 3) // not square
	if _, err := New(R); err == nil {
		t.Errorf("expected non-square grid to be rejected")
	}
	B := grid.New(3, 3) // order 3 has no square box dimension
	if _, err := New(B, WithBoxes()); err == nil {
		t.Errorf("expected box constraint on order 3 to be rejected")
	}
}

func TestEnumerateVisitsValidSquares(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.solver")
	defer teardown()
	//
	s, err := New(grid.New(3, 3))
	if err != nil {
		t.Fatal(err)
	}
	cnt := s.Enumerate(func(g *grid.Grid) bool {
		if !Valid(g, false) {
			t.Errorf("visited grid is not a Latin square:\n%v", g)
		}
		return true
	})
	if cnt != 12 {
		t.Errorf("expected 12 solutions visited, have %d", cnt)
	}
}

func TestEnumerateStopsOnVisitor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.solver")
	defer teardown()
	//
	s, err := New(grid.New(4, 4))
	if err != nil {
		t.Fatal(err)
	}
	visited := 0
	cnt := s.Enumerate(func(g *grid.Grid) bool {
		visited++
		return visited < 3
	})
	if cnt != 3 || visited != 3 {
		t.Errorf("visitor should have stopped after 3 solutions, cnt=%d visited=%d", cnt, visited)
	}
}

func TestRetainSolutions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.solver")
	defer teardown()
	//
	s, err := New(grid.New(3, 3), RetainSolutions())
	if err != nil {
		t.Fatal(err)
	}
	s.Count()
	sols := s.Solutions()
	if len(sols) != 12 {
		t.Fatalf("expected 12 retained solutions, have %d", len(sols))
	}
	for _, g := range sols {
		if !Valid(g, false) {
			t.Errorf("retained grid is not a Latin square:\n%v", g)
		}
	}
	seen := map[string]bool{}
	for _, g := range sols {
		seen[g.String()] = true
	}
	if len(seen) != 12 {
		t.Errorf("retained solutions are not distinct, %d of 12", len(seen))
	}
}

func TestSampleDistinctSolutions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.solver")
	defer teardown()
	//
	s, err := New(grid.New(4, 4))
	if err != nil {
		t.Fatal(err)
	}
	sols := s.Sample(5, 42, 1000)
	if len(sols) != 5 {
		t.Fatalf("expected 5 sampled solutions, have %d", len(sols))
	}
	seen := map[string]bool{}
	for _, g := range sols {
		if !Valid(g, false) {
			t.Errorf("sampled grid is not a Latin square:\n%v", g)
		}
		seen[g.String()] = true
	}
	if len(seen) != 5 {
		t.Errorf("sampled solutions are not distinct, %d of 5", len(seen))
	}
}

func TestSampleBoundedBySolutionCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.solver")
	defer teardown()
	//
	// order 2 has exactly 2 Latin squares; asking for 5 must yield 2
	s, err := New(grid.New(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	sols := s.Sample(5, 7, 200)
	if len(sols) != 2 {
		t.Errorf("expected the 2 existing solutions, have %d", len(sols))
	}
}

func TestValid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.solver")
	defer teardown()
	//
	G, _ := grid.Read("1 2\n2 1")
	if !Valid(G, false) {
		t.Errorf("2x2 cyclic square should be valid")
	}
	H, _ := grid.Read("1 2\n1 2")
	if Valid(H, false) {
		t.Errorf("column with duplicate values should be invalid")
	}
	I, _ := grid.Read("1 .\n. 1")
	if Valid(I, false) {
		t.Errorf("incomplete grid should be invalid")
	}
}

package grid

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReadGrid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.grid")
	defer teardown()
	//
	input := `# 4x4 Latin square, two givens
1 . . .
. . 3 .
. . . .
. 0 . 2`
	G, err := Read(input)
	if err != nil {
		t.Fatal(err)
	}
	if G.M() != 4 || G.N() != 4 {
		t.Errorf("expected a 4 x 4 grid, have %d x %d", G.M(), G.N())
	}
	if G.Value(0, 0) != 1 || G.Value(1, 2) != 3 || G.Value(3, 3) != 2 {
		t.Errorf("givens not read correctly:\n%v", G)
	}
	if !G.Value(3, 1).IsNone() {
		t.Errorf("'0' should read as an empty cell")
	}
	if G.FilledCount() != 3 {
		t.Errorf("expected 3 givens, have %d", G.FilledCount())
	}
}

func TestReadGridRoundtrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.grid")
	defer teardown()
	//
	G := New(3, 3).Set(0, 1, 2).Set(2, 2, 9)
	H, err := Read(G.String())
	if err != nil {
		t.Fatal(err)
	}
	if H.String() != G.String() {
		t.Errorf("roundtrip mismatch:\n%v\nvs\n%v", G, H)
	}
}

func TestReadGridErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.grid")
	defer teardown()
	//
	if _, err := Read("1 2\n3"); err == nil {
		t.Errorf("ragged grid should be rejected")
	}
	if _, err := Read("# only a comment\n"); err == nil {
		t.Errorf("empty grid should be rejected")
	}
	if _, err := Read("1 x 2"); err == nil {
		t.Errorf("unexpected characters should be rejected")
	}
}

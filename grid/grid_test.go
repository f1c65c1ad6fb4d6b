package grid

import (
	"bytes"
	"testing"

	"github.com/npillmayer/casella"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGridSetAndValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.grid")
	defer teardown()
	//
	G := New(4, 4)
	if G.M() != 4 || G.N() != 4 {
		t.Errorf("expected a 4 x 4 grid, have %d x %d", G.M(), G.N())
	}
	if !G.Value(2, 3).IsNone() {
		t.Errorf("cells should start out empty")
	}
	G.Set(2, 3, 1)
	if G.Value(2, 3) != 1 {
		t.Errorf("expected cell (2,3) = 1, have %v", G.Value(2, 3))
	}
	if G.FilledCount() != 1 {
		t.Errorf("expected 1 filled cell, have %d", G.FilledCount())
	}
	G.Clear(2, 3)
	if G.FilledCount() != 0 {
		t.Errorf("Clear did not empty the cell")
	}
}

func TestGridCopyIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.grid")
	defer teardown()
	//
	G := New(2, 2).Set(0, 0, 1)
	C := G.Copy()
	C.Set(0, 0, 2)
	if G.Value(0, 0) != 1 {
		t.Errorf("mutating a copy changed the original")
	}
}

func TestGridString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.grid")
	defer teardown()
	//
	G := New(2, 3).Set(0, 0, 1).Set(1, 2, 3)
	want := "1 . .\n. . 3"
	if G.String() != want {
		t.Errorf("expected %q, got %q", want, G.String())
	}
	var buf bytes.Buffer
	if err := G.Write(&buf); err != nil {
		t.Error(err)
	}
	if buf.String() != want+"\n" {
		t.Errorf("Write output differs from String: %q", buf.String())
	}
}

func TestGridPanicsOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.grid")
	defer teardown()
	//
	G := New(2, 2)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Value(2,0) on a 2 x 2 grid should panic")
		}
	}()
	_ = G.Value(2, 0)
}

func TestGridRow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "casella.grid")
	defer teardown()
	//
	G := New(2, 2).Set(1, 0, 7).Set(1, 1, 8)
	row := G.Row(1)
	if row[0] != 7 || row[1] != 8 {
		t.Errorf("expected row [7 8], got %v", row)
	}
	row[0] = casella.NoValue // copies must be independent
	if G.Value(1, 0) != 7 {
		t.Errorf("mutating a row copy changed the grid")
	}
}

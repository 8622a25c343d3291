package app

import "testing"

func TestCellAtMapsPixels(t *testing.T) {
	v := Viewport{N: 25, CellSize: 10, OffsetX: 100, OffsetY: 50}
	cases := []struct {
		px, py   int
		row, col int
		ok       bool
	}{
		{100, 50, 0, 0, true},
		{109, 59, 0, 0, true},
		{110, 60, 1, 1, true},
		{349, 299, 24, 24, true},
		{350, 60, 0, 0, false},
		{99, 60, 0, 0, false},
		{120, 49, 0, 0, false},
		{120, 300, 0, 0, false},
	}
	for _, tc := range cases {
		row, col, ok := v.CellAt(tc.px, tc.py)
		if ok != tc.ok || (ok && (row != tc.row || col != tc.col)) {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)", tc.px, tc.py, row, col, ok, tc.row, tc.col, tc.ok)
		}
	}
}

func TestCellAtFloorsNegativeOffsets(t *testing.T) {
	// Panned so the grid starts left of the window edge.
	v := Viewport{N: 10, CellSize: 8, OffsetX: -20, OffsetY: 0}
	row, col, ok := v.CellAt(0, 0)
	if !ok || row != 0 || col != 2 {
		t.Fatalf("CellAt = (%d,%d,%v), want (0,2,true)", row, col, ok)
	}
	if _, _, ok := v.CellAt(-21, 0); ok {
		t.Fatal("pixel left of the grid must be rejected")
	}
}

func TestPan(t *testing.T) {
	v := Viewport{N: 5, CellSize: 10}
	v.Pan(15, -5)
	if v.OffsetX != 15 || v.OffsetY != -5 {
		t.Fatalf("offset = (%d,%d)", v.OffsetX, v.OffsetY)
	}
	if _, col, _ := v.CellAt(30, 10); col != 1 {
		t.Fatalf("col after pan = %d, want 1", col)
	}
}

func TestZoomKeepsAnchor(t *testing.T) {
	v := Viewport{N: 20, CellSize: 10}
	row, col, _ := v.CellAt(55, 55)
	v.Zoom(10, 55, 55)
	if v.CellSize != 20 {
		t.Fatalf("cell size = %d, want 20", v.CellSize)
	}
	r2, c2, ok := v.CellAt(55, 55)
	if !ok || r2 != row || c2 != col {
		t.Fatalf("anchor moved from (%d,%d) to (%d,%d)", row, col, r2, c2)
	}

	v.Zoom(1000, 0, 0)
	if v.CellSize != MaxCellSize {
		t.Fatalf("zoom not clamped to max: %d", v.CellSize)
	}
	v.Zoom(-1000, 0, 0)
	if v.CellSize != MinCellSize {
		t.Fatalf("zoom not clamped to min: %d", v.CellSize)
	}
}

func TestNewViewportFitsAndCentres(t *testing.T) {
	v := NewViewport(25, 1200, 800)
	if v.CellSize != 32 {
		t.Fatalf("cell size = %d, want 32", v.CellSize)
	}
	if v.OffsetX != 200 || v.OffsetY != 0 {
		t.Fatalf("offset = (%d,%d), want (200,0)", v.OffsetX, v.OffsetY)
	}
	if FitCellSize(10, 10, 34) != MinCellSize {
		t.Fatal("tiny windows must fall back to the minimum cell size")
	}
	if FitCellSize(10000, 10000, 2) != MaxCellSize {
		t.Fatal("huge windows must be capped at the maximum cell size")
	}
}

package app

import "math"

const (
	// MinCellSize and MaxCellSize bound the zoom range, in pixels per cell.
	MinCellSize = 4
	MaxCellSize = 96
)

// Viewport maps window pixels to grid cells. OffsetX/OffsetY is the pixel
// position of the grid's top-left corner, changed by panning.
type Viewport struct {
	N        int
	CellSize int
	OffsetX  int
	OffsetY  int
}

// NewViewport returns a viewport that fits an n×n grid into a w×h pixel area
// and centres it.
func NewViewport(n, w, h int) Viewport {
	v := Viewport{N: n, CellSize: FitCellSize(w, h, n)}
	v.Center(w, h)
	return v
}

// FitCellSize returns the largest cell size at which n cells fit in both w and h.
func FitCellSize(w, h, n int) int {
	if n <= 0 {
		return MinCellSize
	}
	size := min(w, h) / n
	return clampInt(size, MinCellSize, MaxCellSize)
}

// Center places the grid in the middle of a w×h pixel area.
func (v *Viewport) Center(w, h int) {
	span := v.N * v.CellSize
	v.OffsetX = (w - span) / 2
	v.OffsetY = (h - span) / 2
}

// CellAt returns the cell under pixel (px, py). ok is false when the pixel
// falls outside the grid, so callers never hand the engine an invalid
// coordinate.
func (v Viewport) CellAt(px, py int) (row, col int, ok bool) {
	if v.CellSize <= 0 {
		return 0, 0, false
	}
	col = floorDiv(px-v.OffsetX, v.CellSize)
	row = floorDiv(py-v.OffsetY, v.CellSize)
	if row < 0 || row >= v.N || col < 0 || col >= v.N {
		return 0, 0, false
	}
	return row, col, true
}

// Pan moves the grid by (dx, dy) pixels.
func (v *Viewport) Pan(dx, dy int) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// Zoom changes the cell size by delta steps while keeping the cell under
// pixel (px, py) in place.
func (v *Viewport) Zoom(delta, px, py int) {
	next := clampInt(v.CellSize+delta, MinCellSize, MaxCellSize)
	if next == v.CellSize {
		return
	}
	scale := float64(next) / float64(v.CellSize)
	v.OffsetX = px - int(math.Round(float64(px-v.OffsetX)*scale))
	v.OffsetY = py - int(math.Round(float64(py-v.OffsetY)*scale))
	v.CellSize = next
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

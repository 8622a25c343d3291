package life

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when an engine is constructed with a
	// non-positive side length.
	ErrInvalidSize = errors.New("life: side length must be positive")
	// ErrInvalidCoordinate identifies out-of-range cell access. It is raised
	// as a panic because it is a caller bug, not a runtime condition.
	ErrInvalidCoordinate = errors.New("life: coordinate out of range")
)

// CoordinateError is the panic value for cell access outside the grid.
type CoordinateError struct {
	Row, Col int
	N        int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.N, e.N)
}

// Unwrap lets errors.Is match ErrInvalidCoordinate.
func (e *CoordinateError) Unwrap() error { return ErrInvalidCoordinate }

// Engine holds an N×N Game of Life grid. Cells beyond the edge are treated as
// dead; there is no wraparound.
//
// An Engine is not safe for concurrent use. Drivers must serialise edits and
// steps on one goroutine.
type Engine struct {
	n   int
	gen int
	cur []uint8
	// scratch holds the previous generation while Step rewrites cur.
	scratch []uint8
}

// New returns an engine with an n×n grid of dead cells.
func New(n int) (*Engine, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	return &Engine{n: n, cur: make([]uint8, n*n), scratch: make([]uint8, n*n)}, nil
}

// MustNew is like New but panics on an invalid size.
func MustNew(n int) *Engine {
	e, err := New(n)
	if err != nil {
		panic(err)
	}
	return e
}

// SideLength returns N.
func (e *Engine) SideLength() int { return e.n }

// Generation returns the number of steps taken since construction or Clear.
func (e *Engine) Generation() int { return e.gen }

func (e *Engine) index(row, col int) int {
	if row < 0 || row >= e.n || col < 0 || col >= e.n {
		panic(&CoordinateError{Row: row, Col: col, N: e.n})
	}
	return row*e.n + col
}

// IsAlive reports the current state of (row, col).
func (e *Engine) IsAlive(row, col int) bool {
	return e.cur[e.index(row, col)] != 0
}

// SetCell sets the state of (row, col).
func (e *Engine) SetCell(row, col int, alive bool) {
	idx := e.index(row, col)
	if alive {
		e.cur[idx] = 1
		return
	}
	e.cur[idx] = 0
}

// ToggleCell flips the state of (row, col).
func (e *Engine) ToggleCell(row, col int) {
	idx := e.index(row, col)
	e.cur[idx] ^= 1
}

// Seed marks every listed cell alive. Cells already alive are left alone.
func (e *Engine) Seed(cells []Cell) {
	for _, c := range cells {
		e.SetCell(c.Row, c.Col, true)
	}
}

// Clear kills every cell and resets the generation counter.
func (e *Engine) Clear() {
	for i := range e.cur {
		e.cur[i] = 0
	}
	e.gen = 0
}

// CountAliveNeighbors counts live cells among the up to eight in-bounds
// neighbours of (row, col) in the current grid.
func (e *Engine) CountAliveNeighbors(row, col int) int {
	e.index(row, col)
	return countNeighbors(e.cur, e.n, row, col)
}

func countNeighbors(grid []uint8, n, row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= n {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= n {
				continue
			}
			count += int(grid[r*n+c])
		}
	}
	return count
}

// Step advances the grid by one generation.
func (e *Engine) Step() {
	copy(e.scratch, e.cur)
	n := e.n
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			idx := row*n + col
			neighbors := countNeighbors(e.scratch, n, row, col)
			alive := e.scratch[idx] == 1
			e.cur[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				e.cur[idx] = 1
			}
		}
	}
	e.gen++
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	alive := 0
	for _, c := range e.cur {
		alive += int(c)
	}
	return alive
}

// Cells exposes the current grid in row-major order, one byte per cell (0 or
// 1). The slice is owned by the engine and must be treated as read-only.
func (e *Engine) Cells() []uint8 { return e.cur }

// Snapshot returns a copy of the current grid.
func (e *Engine) Snapshot() []uint8 {
	return append([]uint8(nil), e.cur...)
}

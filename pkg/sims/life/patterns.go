package life

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Cell is a grid coordinate.
type Cell struct {
	Row, Col int
}

var patterns = map[string][]Cell{
	"glider":     {{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	"block":      {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	"blinker":    {{0, 0}, {0, 1}, {0, 2}},
	"toad":       {{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}},
	"beacon":     {{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3}},
	"rpentomino": {{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}},
}

// Pattern returns a copy of the named pattern anchored at (0, 0).
func Pattern(name string) ([]Cell, bool) {
	p, ok := patterns[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return append([]Cell(nil), p...), true
}

// PatternNames lists the built-in patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Offset returns cells shifted by (dr, dc).
func Offset(cells []Cell, dr, dc int) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{Row: c.Row + dr, Col: c.Col + dc}
	}
	return out
}

// Bounds returns the number of rows and columns spanned by cells.
func Bounds(cells []Cell) (rows, cols int) {
	if len(cells) == 0 {
		return 0, 0
	}
	minR, minC := cells[0].Row, cells[0].Col
	maxR, maxC := minR, minC
	for _, c := range cells[1:] {
		minR, maxR = min(minR, c.Row), max(maxR, c.Row)
		minC, maxC = min(minC, c.Col), max(maxC, c.Col)
	}
	return maxR - minR + 1, maxC - minC + 1
}

// Centered shifts cells so their bounding box sits in the middle of an n×n grid.
func Centered(cells []Cell, n int) []Cell {
	rows, cols := Bounds(cells)
	return Offset(cells, (n-rows)/2, (n-cols)/2)
}

// ParseCells parses a "row,col;row,col" coordinate list. Whitespace around
// entries is ignored and an empty string yields no cells.
func ParseCells(s string) ([]Cell, error) {
	var cells []Cell
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("life: cell %q: want row,col", entry)
		}
		row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("life: cell %q: row: %w", entry, err)
		}
		col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("life: cell %q: col: %w", entry, err)
		}
		cells = append(cells, Cell{Row: row, Col: col})
	}
	return cells, nil
}

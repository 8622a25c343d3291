package life

import (
	"fmt"
	"strconv"
	"strings"
)

// PatternRandom selects a seeded random fill instead of a named pattern.
const PatternRandom = "random"

// Config controls the size and initial contents of a Life simulation.
type Config struct {
	Size    int
	Pattern string
	// Cells are set alive in addition to the pattern, in absolute coordinates.
	Cells []Cell
}

// DefaultConfig returns the standard configuration: a 25×25 grid seeded with a
// glider in the middle.
func DefaultConfig() Config {
	return Config{Size: 25, Pattern: "glider"}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		v = strings.ToLower(strings.TrimSpace(v))
		if _, known := patterns[v]; known || v == PatternRandom || v == "" {
			c.Pattern = v
		}
	}
	if v, ok := cfg["cells"]; ok {
		if parsed, err := ParseCells(v); err == nil {
			c.Cells = parsed
		}
	}
	return c
}

// Validate reports configuration that would violate the engine's contract.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, c.Size)
	}
	if c.Pattern != "" && c.Pattern != PatternRandom {
		p, ok := Pattern(c.Pattern)
		if !ok {
			return fmt.Errorf("life: unknown pattern %q", c.Pattern)
		}
		rows, cols := Bounds(p)
		if rows > c.Size || cols > c.Size {
			return fmt.Errorf("life: pattern %q (%dx%d) does not fit a %dx%d grid", c.Pattern, rows, cols, c.Size, c.Size)
		}
	}
	for _, cell := range c.Cells {
		if cell.Row < 0 || cell.Row >= c.Size || cell.Col < 0 || cell.Col >= c.Size {
			return fmt.Errorf("life: seed cell (%d,%d) outside %dx%d grid", cell.Row, cell.Col, c.Size, c.Size)
		}
	}
	return nil
}

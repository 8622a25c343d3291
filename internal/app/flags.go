package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"life-ca/pkg/core"
	"life-ca/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	N        int
	Pattern  string
	Cells    string
	Interval time.Duration
	Seed     int64
	Width    int
	Height   int
	Paused   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Sim:      "life",
		N:        def.Size,
		Pattern:  def.Pattern,
		Interval: core.DefaultInterval,
		Seed:     42,
		Width:    1200,
		Height:   800,
		Paused:   true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.N, "n", c.N, "grid side length")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, patternUsage())
	fs.StringVar(&c.Cells, "cells", c.Cells, "extra live cells as row,col;row,col")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "autoplay step interval")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

func patternUsage() string {
	names := append(life.PatternNames(), life.PatternRandom)
	return "initial pattern (" + strings.Join(names, ", ") + " or empty)"
}

// SimConfig converts the flags into a validated Life configuration.
func (c *Config) SimConfig() (life.Config, error) {
	cells, err := life.ParseCells(c.Cells)
	if err != nil {
		return life.Config{}, err
	}
	pattern := strings.ToLower(strings.TrimSpace(c.Pattern))
	cfg := life.Config{Size: c.N, Pattern: pattern, Cells: cells}
	if err := cfg.Validate(); err != nil {
		return life.Config{}, err
	}
	return cfg, nil
}

// SimMap renders the validated configuration as the key/value map the
// simulation factories parse.
func (c *Config) SimMap(cfg life.Config) map[string]string {
	return map[string]string{
		"n":       strconv.Itoa(cfg.Size),
		"pattern": cfg.Pattern,
		"cells":   c.Cells,
	}
}

// Build resolves the simulation through the registry and wraps it in a
// controller.
func (c *Config) Build() (*Controller, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("config: unknown sim %q", c.Sim)
	}
	cfg, err := c.SimConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	sim, err := factory(c.SimMap(cfg))
	if err != nil {
		return nil, err
	}
	board, ok := sim.(Board)
	if !ok {
		return nil, fmt.Errorf("config: sim %q does not support cell editing", c.Sim)
	}
	board.Reset(c.Seed)
	ctl := NewController(board, c.Interval, c.Seed)
	ctl.SetPlaying(!c.Paused)
	return ctl, nil
}

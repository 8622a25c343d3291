package ui

import (
	"fmt"
	"time"
)

// Status is the read-only state the HUD displays each frame.
type Status struct {
	Generation int
	Population int
	Size       int
	Playing    bool
	Interval   time.Duration
}

// Lines formats the status panel text.
func (s Status) Lines() []string {
	state := "paused"
	if s.Playing {
		state = "playing"
	}
	return []string{
		fmt.Sprintf("Generation %d", s.Generation),
		fmt.Sprintf("Population %d / %d", s.Population, s.Size*s.Size),
		fmt.Sprintf("%s every %s", state, s.Interval),
	}
}

// helpLines lists the key bindings shown by the help overlay.
var helpLines = []string{
	"Space  play / pause",
	"N, ->  single step",
	"LMB    toggle cell",
	"RMB    drag to pan",
	"Wheel  zoom",
	"+ / -  faster / slower",
	"F      fit grid",
	"C      clear",
	"R      reset pattern",
	"H      hide help",
	"Q      quit",
}

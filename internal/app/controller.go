package app

import (
	"time"

	"life-ca/pkg/core"
)

// Board is the grid surface the driver needs beyond core.Sim: cell edits and
// the counters shown on the HUD.
type Board interface {
	core.Sim
	SideLength() int
	Generation() int
	Population() int
	IsAlive(row, col int) bool
	ToggleCell(row, col int)
	Clear()
}

// Controller is the playback driver around a Life simulation. It owns the
// play/pause flag and the autoplay timer; the engine never sees either. All
// methods must be called from the same goroutine.
type Controller struct {
	sim     Board
	timer   *core.FixedStep
	playing bool
	seed    int64
}

// NewController wraps sim with an autoplay timer firing every interval.
func NewController(sim Board, interval time.Duration, seed int64) *Controller {
	return &Controller{sim: sim, timer: core.NewFixedStep(interval), seed: seed}
}

// Sim returns the driven simulation.
func (c *Controller) Sim() Board { return c.sim }

// Playing reports whether autoplay is on.
func (c *Controller) Playing() bool { return c.playing }

// Interval returns the autoplay period.
func (c *Controller) Interval() time.Duration { return c.timer.Interval() }

// SetInterval changes the autoplay period.
func (c *Controller) SetInterval(d time.Duration) { c.timer.SetInterval(d) }

// SetPlaying switches autoplay on or off. Turning it on starts a fresh period
// so the first automatic step is a full interval away.
func (c *Controller) SetPlaying(playing bool) {
	if playing && !c.playing {
		c.timer.Reset()
	}
	c.playing = playing
}

// TogglePlay flips the play/pause flag.
func (c *Controller) TogglePlay() { c.SetPlaying(!c.playing) }

// StepOnce advances exactly one generation regardless of playback state.
func (c *Controller) StepOnce() { c.sim.Step() }

// Tick is called once per frame. It steps the simulation when playing and the
// interval has elapsed, and reports whether it did.
func (c *Controller) Tick(now time.Time) bool {
	if !c.playing {
		return false
	}
	if !c.timer.Advance(now) {
		return false
	}
	c.sim.Step()
	return true
}

// ToggleAt flips the cell under pixel (px, py) in v. Clicks outside the grid
// are ignored.
func (c *Controller) ToggleAt(v Viewport, px, py int) bool {
	row, col, ok := v.CellAt(px, py)
	if !ok {
		return false
	}
	c.sim.ToggleCell(row, col)
	return true
}

// Clear kills every cell and pauses playback.
func (c *Controller) Clear() {
	c.playing = false
	c.sim.Clear()
}

// Reset reapplies the configured seed pattern and pauses playback.
func (c *Controller) Reset() {
	c.playing = false
	c.sim.Reset(c.seed)
}

package core

import "time"

// DefaultInterval is the autoplay period used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// FixedStep helps run simulation updates at a steady interval regardless of the
// frame rate of the driver calling it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller that fires once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the tick period. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	f.step = interval
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// Interval returns the current tick period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset discards any accumulated time so the next tick starts a fresh period.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Advance feeds the controller an explicit clock reading and reports whether a
// tick is due. At most one tick is reported per call. When a stalled frame
// leaves more than a full period outstanding, the backlog is discarded and the
// next tick is a whole period away.
func (f *FixedStep) Advance(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator >= f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}

package core

import "time"

// FixedStep paces repeated work at a steady rate measured in runs per second.
// The viewer uses it to regenerate automatically.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(perSecond int) *FixedStep {
	return newFixedStep(perSecond, time.Now)
}

func newFixedStep(perSecond int, now func() time.Time) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetRate(perSecond)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the rate. Non-positive values fall back to one per second.
func (f *FixedStep) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 1
	}
	f.step = time.Second / time.Duration(perSecond)
}

// Step returns the interval between runs.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether another run is due.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop backlog so a stalled frame does not trigger a burst.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

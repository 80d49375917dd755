package core

import "time"

// FixedStep helps run simulation updates at a steady period. It accumulates
// wall-clock time between calls and releases at most one tick per call.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return NewFixedPeriod(time.Second / time.Duration(tps))
}

// NewFixedPeriod constructs a FixedStep that fires once per period. The first
// call to ShouldStep fires immediately.
func NewFixedPeriod(period time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetPeriod(period)
	fs.accumulator = fs.step
	return fs
}

// SetPeriod changes the interval between ticks.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = time.Second / 60
	}
	f.step = period
}

// Period reports the interval between ticks.
func (f *FixedStep) Period() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// At most one tick stays pending after a stall.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

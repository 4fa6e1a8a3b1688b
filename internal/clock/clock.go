// Package clock measures the time elapsed between loop iterations.
package clock

import "time"

// Clock measures elapsed time since its last restart.
type Clock interface {
	// Elapsed returns the time since the last restart without restarting.
	Elapsed() time.Duration
	// Restart returns the time since the last restart and starts over.
	Restart() time.Duration
}

// RealTime is a Clock backed by the wall clock.
type RealTime struct {
	now   func() time.Time
	start time.Time
}

// NewRealTime creates a wall clock, started now.
func NewRealTime() *RealTime {
	return newRealTime(time.Now)
}

func newRealTime(now func() time.Time) *RealTime {
	return &RealTime{now: now, start: now()}
}

// Elapsed returns the time since the last restart.
func (c *RealTime) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}

// Restart returns the time since the last restart and starts over.
func (c *RealTime) Restart() time.Duration {
	now := c.now()
	elapsed := now.Sub(c.start)
	c.start = now
	return elapsed
}

// Manual is a Clock that only moves when told to. Used by tests.
type Manual struct {
	elapsed time.Duration
}

// Advance moves the clock forward by d.
func (c *Manual) Advance(d time.Duration) {
	c.elapsed += d
}

// Elapsed returns the time advanced since the last restart.
func (c *Manual) Elapsed() time.Duration {
	return c.elapsed
}

// Restart returns the time advanced since the last restart and starts over.
func (c *Manual) Restart() time.Duration {
	elapsed := c.elapsed
	c.elapsed = 0
	return elapsed
}

// Fixed reports the same step on every restart, so a driver using it runs
// exactly one tick per iteration as fast as possible. Used by the headless demo.
type Fixed struct {
	Step time.Duration
}

// Elapsed always returns zero: no work time is ever observed.
func (c Fixed) Elapsed() time.Duration {
	return 0
}

// Restart returns Step.
func (c Fixed) Restart() time.Duration {
	return c.Step
}

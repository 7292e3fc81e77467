package sequence

import "time"

// Clock is a source of real (wall) time. Real-time waits are measured on it so they are not
// affected by simulation time scaling.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock backed by time.Now.
type SystemClock struct{}

// Now ...
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when advanced. It is used by tests and replays.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a ManualClock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now ...
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

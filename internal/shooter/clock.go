package shooter

import "time"

// Clock is a monotonic millisecond time source.
type Clock interface {
	Now() float64
}

// SystemClock measures milliseconds elapsed since it was created.
// time.Since uses the monotonic reading, so wall clock jumps do not leak
// into frame deltas.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the milliseconds elapsed since the clock was created.
func (c *SystemClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// ManualClock is a clock that only moves when told to. Used by tests and
// deterministic replays.
type ManualClock struct {
	now float64
}

// NewManualClock creates a manual clock reading ms.
func NewManualClock(ms float64) *ManualClock {
	return &ManualClock{now: ms}
}

// Now returns the current reading.
func (c *ManualClock) Now() float64 {
	return c.now
}

// Set moves the clock to ms.
func (c *ManualClock) Set(ms float64) {
	c.now = ms
}

// Advance moves the clock forward by ms.
func (c *ManualClock) Advance(ms float64) {
	c.now += ms
}

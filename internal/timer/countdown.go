package timer

import "time"

// Countdown counts down from a fixed total. The remaining value decrements
// by exactly one per tick while running; pausing suspends decrementing
// without resynchronizing to wall time afterwards. The engine displays
// total, total-1, ..., 0 inclusive and reports done after the zero tick.
type Countdown struct {
	total     int
	remaining int
	paused    bool
	label     string
}

// NewCountdown creates a countdown engine. Callers validate total > 0
// before construction; duration parsing rejects non-positive values.
func NewCountdown(total int, label string) *Countdown {
	return &Countdown{
		total:     total,
		remaining: total,
		label:     label,
	}
}

// Tick implements Engine.
func (c *Countdown) Tick(key rune, _ time.Time) Frame {
	if key == KeyPause {
		c.paused = !c.paused
	}

	label := c.label
	if c.paused {
		label = "Paused - " + c.label
	}

	f := Frame{
		Display:     FormatSeconds(c.remaining),
		Label:       label,
		Paused:      c.paused,
		Progress:    c.progress(),
		HasProgress: true,
	}

	if !c.paused {
		c.remaining--
		f.Done = c.remaining < 0
	}
	return f
}

// Interval implements Engine.
func (c *Countdown) Interval() time.Duration {
	return time.Second
}

// progress returns the completion fraction for the currently displayed
// value, defined as 1.0 when total is zero.
func (c *Countdown) progress() float64 {
	if c.total <= 0 {
		return 1.0
	}
	return float64(c.total-c.remaining) / float64(c.total)
}

// Remaining returns the next value to display.
func (c *Countdown) Remaining() int {
	return c.remaining
}

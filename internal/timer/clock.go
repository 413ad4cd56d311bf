package timer

import "time"

// Clock displays the current wall-clock time. It ignores keys and never
// finishes.
type Clock struct{}

// NewClock creates a clock engine.
func NewClock() *Clock {
	return &Clock{}
}

// Tick implements Engine.
func (c *Clock) Tick(_ rune, now time.Time) Frame {
	return Frame{
		Display: now.Format("15:04:05"),
		Label:   now.Format("Monday, January 02, 2006"),
	}
}

// Interval implements Engine.
func (c *Clock) Interval() time.Duration {
	return time.Second
}

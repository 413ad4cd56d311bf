// Package timer implements the time-tracking state machines behind each
// clock mode. Engines are pure: they hold their own state and advance one
// step per driver tick, leaving rendering to the caller.
package timer

import "time"

// KeyNone indicates that no key was pressed during a tick.
const KeyNone rune = 0

// Frame is the displayable result of advancing an engine by one tick.
type Frame struct {
	// Display is the formatted time value (MM:SS or HH:MM:SS).
	Display string
	// Label is the bare status text shown under the digits. The UI adds
	// running/paused markers and hides it entirely in focus mode.
	Label string
	// Paused reports whether the engine is currently paused.
	Paused bool

	// Progress is the completion fraction in [0,1] for countdown-style
	// engines. Valid only when HasProgress is set.
	Progress    float64
	HasProgress bool

	// PhaseDone reports that a Pomodoro phase finished this tick. The
	// driver rings the bell and calls Advance after the rest delay.
	PhaseDone bool
	// Done reports that the engine finished and the driver should stop.
	Done bool
}

// Engine is implemented by each timer mode.
//
// Tick applies at most one key press (KeyNone for none), advances the
// engine's state, and returns the frame to display. Key effects are always
// reflected in the returned frame, never deferred to a later tick.
type Engine interface {
	Tick(key rune, now time.Time) Frame
	// Interval is the driver cadence for this engine.
	Interval() time.Duration
}

package timer

import "time"

// Stopwatch keys.
const (
	// KeyPause toggles pause/resume on stopwatch, countdown, and Pomodoro.
	KeyPause = 'q'
	// KeyReset resets the stopwatch to zero.
	KeyReset = 'r'
)

// Stopwatch counts up from zero with pause/resume and reset. While running,
// elapsed time is wall clock minus accumulated pause time; while paused, the
// display freezes at the instant pause began.
type Stopwatch struct {
	start      time.Time
	pauseStart time.Time
	paused     bool
	elapsed    int
}

// NewStopwatch creates a stopwatch whose reference start is now.
func NewStopwatch(now time.Time) *Stopwatch {
	return &Stopwatch{start: now}
}

// Tick implements Engine.
func (s *Stopwatch) Tick(key rune, now time.Time) Frame {
	switch key {
	case KeyPause:
		s.paused = !s.paused
		if s.paused {
			s.pauseStart = now
		} else {
			// Shift the reference start forward by the paused duration so
			// elapsed time excludes the pause.
			s.start = s.start.Add(now.Sub(s.pauseStart))
		}
	case KeyReset:
		s.start = now
		s.elapsed = 0
		s.paused = false
	}

	if !s.paused {
		s.elapsed = int(now.Sub(s.start) / time.Second)
		if s.elapsed < 0 {
			s.elapsed = 0
		}
	}

	label := "Running (q: pause, r: reset)"
	if s.paused {
		label = "Paused (q: resume, r: reset)"
	}

	return Frame{
		Display: FormatSeconds(s.elapsed),
		Label:   label,
		Paused:  s.paused,
	}
}

// Interval implements Engine. The stopwatch ticks at 100ms so pause and
// reset keystrokes feel immediate.
func (s *Stopwatch) Interval() time.Duration {
	return 100 * time.Millisecond
}

// Elapsed returns the currently displayed second count.
func (s *Stopwatch) Elapsed() int {
	return s.elapsed
}

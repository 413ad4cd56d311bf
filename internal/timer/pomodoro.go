package timer

import (
	"fmt"
	"time"
)

// Phase identifies the active half of a Pomodoro cycle.
type Phase int

const (
	// PhaseWork is the work half of a Pomodoro session.
	PhaseWork Phase = iota
	// PhaseBreak is the break half.
	PhaseBreak
)

// String returns the phase name as shown in session labels.
func (p Phase) String() string {
	if p == PhaseBreak {
		return "Break"
	}
	return "Work"
}

// Pomodoro alternates work and break countdowns with a 1-based session
// counter. A completed phase is reported via Frame.PhaseDone; the driver
// rings the bell, waits out the rest delay, and calls Advance. The engine
// itself never reports Done; only an interrupt ends the loop.
type Pomodoro struct {
	workSecs  int
	breakSecs int
	session   int
	phase     Phase
	countdown *Countdown
}

// RestDelay is the real-time pause between a completed phase and the start
// of the next one.
const RestDelay = 2 * time.Second

// NewPomodoro creates a Pomodoro engine from positive work/break minutes,
// starting with Work of session 1.
func NewPomodoro(workMinutes, breakMinutes int) *Pomodoro {
	p := &Pomodoro{
		workSecs:  workMinutes * 60,
		breakSecs: breakMinutes * 60,
		session:   1,
		phase:     PhaseWork,
	}
	p.countdown = NewCountdown(p.workSecs, p.label())
	return p
}

// Tick implements Engine.
func (p *Pomodoro) Tick(key rune, now time.Time) Frame {
	f := p.countdown.Tick(key, now)
	if f.Done {
		f.Done = false
		f.PhaseDone = true
	}
	return f
}

// Interval implements Engine.
func (p *Pomodoro) Interval() time.Duration {
	return time.Second
}

// Advance moves to the next phase after a completed countdown: Work flips
// to Break, and a completed Break starts the next session's Work.
func (p *Pomodoro) Advance() {
	if p.phase == PhaseWork {
		p.phase = PhaseBreak
		p.countdown = NewCountdown(p.breakSecs, p.label())
		return
	}
	p.phase = PhaseWork
	p.session++
	p.countdown = NewCountdown(p.workSecs, p.label())
}

// Session returns the 1-based session counter.
func (p *Pomodoro) Session() int {
	return p.session
}

// CurrentPhase returns the active phase.
func (p *Pomodoro) CurrentPhase() Phase {
	return p.phase
}

func (p *Pomodoro) label() string {
	return fmt.Sprintf("Session %d - %s", p.session, p.phase)
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nwalden/bigclock/internal/timer"
)

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Width is re-read every frame via the model, so a mid-run resize
		// never corrupts the next render.
		m.width = msg.Width
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case restMsg:
		return m.handleRestDone()
	}

	return m, nil
}

// handleKey processes keyboard input. Control keys act immediately; timer
// keys are held for the next tick so engine state only changes on the tick
// cadence.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		// Graceful shutdown, not a fault: bubbletea restores the terminal
		// and the final frame stays on screen. A countdown rings its bell
		// even when cut short; a Pomodoro interrupt stays silent.
		if _, ok := m.engine.(*timer.Countdown); ok && m.display.Bell {
			m.bell()
		}
		return m, tea.Quit

	case string(timer.KeyPause), string(timer.KeyReset):
		if !m.resting {
			m.pendingKey = []rune(msg.String())[0]
		}
		return m, nil
	}

	return m, nil
}

// handleTick advances the engine by one step and schedules the follow-up:
// the next tick, the Pomodoro rest delay, or quit when the engine is done.
func (m model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.resting {
		// Stale tick delivered after a phase completed.
		return m, nil
	}

	m.frame = m.engine.Tick(m.pendingKey, now)
	m.pendingKey = timer.KeyNone
	m.started = true

	if m.frame.PhaseDone {
		if m.display.Bell {
			m.bell()
		}
		m.resting = true
		return m, tea.Tick(timer.RestDelay, func(time.Time) tea.Msg { return restMsg{} })
	}

	if m.frame.Done {
		if m.display.Bell {
			m.bell()
		}
		return m, tea.Quit
	}

	return m, tickCmd(m.engine.Interval())
}

// handleRestDone starts the next Pomodoro phase after the rest delay.
func (m model) handleRestDone() (tea.Model, tea.Cmd) {
	if p, ok := m.engine.(*timer.Pomodoro); ok {
		p.Advance()
	}
	// The bar fill tracks the phase color (work red, break green).
	m.bar = progress.New(
		progress.WithSolidFill(string(barFillColor(m.engine, m.display))),
		progress.WithoutPercentage(),
	)
	m.resting = false
	return m, tea.Batch(tea.ClearScreen, func() tea.Msg { return tickMsg(time.Now()) })
}

// Package tui drives the interactive clock display using bubbletea.
//
// The program runs inline (no alt screen): bubbletea's renderer repaints
// the frame region in place each tick, and owns raw/no-echo terminal mode
// for the life of the program, restoring it on every exit path.
package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nwalden/bigclock/internal/config"
	"github.com/nwalden/bigclock/internal/timer"
)

// TUI renders one timer engine until it finishes or is interrupted.
type TUI struct {
	engine  timer.Engine
	display config.DisplayConfig
	bell    func()
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a TUI for the given engine and display settings.
func New(engine timer.Engine, display config.DisplayConfig, opts ...Option) *TUI {
	t := &TUI{
		engine:  engine,
		display: display,
		bell:    ringBell,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithBell overrides how the completion bell is emitted.
func WithBell(fn func()) Option {
	return func(t *TUI) {
		t.bell = fn
	}
}

// Run starts the display loop and blocks until the engine finishes, the
// user interrupts, or ctx is cancelled. Interruption is not an error.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(t.engine, t.display, t.bell)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled)) {
		// Cancelled from outside (signal): clean shutdown, terminal restored.
		return nil
	}
	return err
}

// ringBell emits the terminal bell. BEL does not move the cursor, so
// writing it directly does not disturb the inline renderer.
func ringBell() {
	_, _ = os.Stdout.WriteString("\a")
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nwalden/bigclock/internal/config"
	"github.com/nwalden/bigclock/internal/timer"
)

// fallbackWidth is assumed before the first WindowSizeMsg arrives or when
// the terminal size is unavailable.
const fallbackWidth = 80

// Progress bar sizing: the bar tracks terminal width minus a margin,
// clamped to a readable range.
const (
	minBarLength = 20
	maxBarLength = 100
	barMargin    = 20
)

// model is the bubbletea model for the clock display.
type model struct {
	engine  timer.Engine
	display config.DisplayConfig
	bell    func()

	// frame is the engine output rendered by View. Zero until the first
	// tick has run.
	frame   timer.Frame
	started bool

	// pendingKey holds at most one key press, applied to the engine on
	// the next tick so state updates stay on the tick cadence.
	pendingKey rune

	// resting is set between Pomodoro phases while the rest delay runs.
	resting bool

	width int
	bar   progress.Model
}

// tickMsg advances the active engine by one step.
type tickMsg time.Time

// restMsg signals that the Pomodoro rest delay has elapsed.
type restMsg struct{}

// newModel creates a model for the given engine and display settings.
func newModel(engine timer.Engine, display config.DisplayConfig, bell func()) model {
	return model{
		engine:     engine,
		display:    display,
		bell:       bell,
		pendingKey: timer.KeyNone,
		bar: progress.New(
			progress.WithSolidFill(string(barFillColor(engine, display))),
			progress.WithoutPercentage(),
		),
	}
}

// Init implements tea.Model. The first tick fires immediately so the
// display appears without waiting a full interval.
func (m model) Init() tea.Cmd {
	return tea.Batch(tea.ClearScreen, func() tea.Msg { return tickMsg(time.Now()) })
}

// tickCmd schedules the next engine tick at the engine's cadence.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update and View are implemented in update.go and view.go.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nwalden/bigclock/internal/config"
	"github.com/nwalden/bigclock/internal/timer"
)

// ANSI palette. Bright variants match the classic terminal clock look.
const (
	colorCyan    = lipgloss.Color("14")
	colorBlue    = lipgloss.Color("12")
	colorYellow  = lipgloss.Color("11")
	colorRed     = lipgloss.Color("9")
	colorGreen   = lipgloss.Color("10")
	colorMagenta = lipgloss.Color("13")
	colorGray    = lipgloss.Color("8")
	colorWhite   = lipgloss.Color("15")
	colorBlack   = lipgloss.Color("0")
)

// styles contains the lipgloss styles used by the display.
var styles = struct {
	Label lipgloss.Style
	Dim   lipgloss.Style
}{
	Label: lipgloss.NewStyle().Foreground(colorMagenta),
	Dim:   lipgloss.NewStyle().Foreground(colorGray),
}

// overrideColor returns the forced foreground color, if any.
func overrideColor(display config.DisplayConfig) (lipgloss.Color, bool) {
	switch display.Color {
	case config.ColorWhite:
		return colorWhite, true
	case config.ColorBlack:
		return colorBlack, true
	}
	return "", false
}

// digitColor returns the default digit color for an engine: cyan clock,
// blue stopwatch, yellow countdown, red work / green break for Pomodoro.
func digitColor(engine timer.Engine) lipgloss.Color {
	switch e := engine.(type) {
	case *timer.Stopwatch:
		return colorBlue
	case *timer.Countdown:
		return colorYellow
	case *timer.Pomodoro:
		if e.CurrentPhase() == timer.PhaseBreak {
			return colorGreen
		}
		return colorRed
	default:
		return colorCyan
	}
}

// digitStyle returns the style for the glyph block, honoring overrides.
func digitStyle(engine timer.Engine, display config.DisplayConfig) lipgloss.Style {
	color := digitColor(engine)
	if c, ok := overrideColor(display); ok {
		color = c
	}
	return lipgloss.NewStyle().Foreground(color)
}

// labelStyle returns the style for the status line under the digits.
func labelStyle(display config.DisplayConfig) lipgloss.Style {
	if c, ok := overrideColor(display); ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return styles.Label
}

// statusStyle returns the style for the focus-mode pause marker.
func statusStyle(display config.DisplayConfig) lipgloss.Style {
	if c, ok := overrideColor(display); ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return styles.Dim
}

// barFillColor returns the progress bar fill color: the digit color, gray
// in focus mode, overridden by --white/--black.
func barFillColor(engine timer.Engine, display config.DisplayConfig) lipgloss.Color {
	if c, ok := overrideColor(display); ok {
		return c
	}
	if display.Focus {
		return colorGray
	}
	return digitColor(engine)
}

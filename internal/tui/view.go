package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nwalden/bigclock/internal/glyph"
	"github.com/nwalden/bigclock/internal/timer"
)

// View implements tea.Model. Each frame is a fixed number of lines per
// mode variant: a blank top margin, the digit block, then optionally a
// label line and a progress bar, everything centered against the current
// terminal width.
func (m model) View() string {
	if !m.started {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}

	var b strings.Builder
	b.WriteString("\n")

	digit := digitStyle(m.engine, m.display)
	for _, row := range glyph.Render(m.frame.Display, m.display.Bold) {
		b.WriteString(centerLine(width, digit.Render(row)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if !m.display.Focus {
		b.WriteString(centerLine(width, labelStyle(m.display).Render(m.markedLabel())))
		b.WriteString("\n\n")
	} else if m.pausable() {
		if m.frame.Paused {
			b.WriteString(centerLine(width, statusStyle(m.display).Render("⏸ Paused")))
		}
		b.WriteString("\n")
	}

	if m.frame.HasProgress {
		b.WriteString(m.viewBar(width))
		b.WriteString("\n\n")
	}

	return b.String()
}

// markedLabel prefixes the engine label with a running or paused marker.
// The clock's date label carries no marker.
func (m model) markedLabel() string {
	if !m.pausable() {
		return m.frame.Label
	}
	if m.frame.Paused {
		return "⏸ " + m.frame.Label
	}
	return "▶ " + m.frame.Label
}

// pausable reports whether the engine responds to pause keys.
func (m model) pausable() bool {
	_, isClock := m.engine.(*timer.Clock)
	return !isClock
}

// viewBar renders the centered progress bar with a trailing percentage.
func (m model) viewBar(width int) string {
	barLen := width - barMargin
	if barLen < minBarLength {
		barLen = minBarLength
	}
	if barLen > maxBarLength {
		barLen = maxBarLength
	}

	bar := m.bar
	bar.Width = barLen

	line := fmt.Sprintf("[%s] %.1f%%", bar.ViewAs(m.frame.Progress), m.frame.Progress*100)
	return centerLine(width, line)
}

// centerLine left-pads s so it is centered in the given width. Lines wider
// than the terminal are left untouched.
func centerLine(width int, s string) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

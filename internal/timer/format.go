package timer

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSeconds converts a non-negative second count to MM:SS, or HH:MM:SS
// once the value reaches an hour.
func FormatSeconds(secs int) string {
	if secs < 0 {
		secs = 0
	}
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// ParseDuration parses a countdown duration: plain seconds, MM:SS, or
// HH:MM:SS. Any other part count, non-numeric content, or negative part is
// a validation error.
func ParseDuration(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("duration must be in format: MM:SS, HH:MM:SS, or seconds")
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("duration must be in format: MM:SS, HH:MM:SS, or seconds")
		}
		total = total*60 + n
	}
	return total, nil
}

// ParsePomodoro parses a "W,B" pair of positive work/break minutes.
func ParsePomodoro(s string) (work, brk int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("pomodoro format is W,B (e.g., 25,5)")
	}

	work, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("pomodoro format is W,B (e.g., 25,5)")
	}
	brk, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("pomodoro format is W,B (e.g., 25,5)")
	}
	if work <= 0 || brk <= 0 {
		return 0, 0, fmt.Errorf("pomodoro minutes must be positive")
	}
	return work, brk, nil
}

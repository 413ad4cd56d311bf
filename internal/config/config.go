// Package config provides configuration types and defaults for bigclock.
package config

import "fmt"

// Color override values accepted by DisplayConfig.Color.
const (
	ColorDefault = ""
	ColorWhite   = "white"
	ColorBlack   = "black"
)

// Config holds all configuration for bigclock.
type Config struct {
	Display     DisplayConfig     `yaml:"display" mapstructure:"display"`
	Pomodoro    PomodoroConfig    `yaml:"pomodoro" mapstructure:"pomodoro"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// DisplayConfig holds display and behavior settings. It is immutable for a
// run and read by every render.
type DisplayConfig struct {
	Focus bool   `yaml:"focus" mapstructure:"focus"` // Minimal display without labels
	Bold  bool   `yaml:"bold" mapstructure:"bold"`   // Thick double-line digit style
	Color string `yaml:"color" mapstructure:"color"` // "", "white", or "black"
	Bell  bool   `yaml:"bell" mapstructure:"bell"`   // Terminal bell on timer completion
}

// PomodoroConfig holds default work/break minutes, used when --pomodoro is
// given the keyword "default" instead of a W,B value.
type PomodoroConfig struct {
	WorkMinutes  int `yaml:"work_minutes" mapstructure:"work_minutes"`
	BreakMinutes int `yaml:"break_minutes" mapstructure:"break_minutes"`
}

// LogRotationConfig holds settings for the debug log file (lumberjack-based
// automatic rotation).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Bell: true,
		},
		Pomodoro: PomodoroConfig{
			WorkMinutes:  25,
			BreakMinutes: 5,
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate checks values that can arrive from config files or flags.
func (c *Config) Validate() error {
	switch c.Display.Color {
	case ColorDefault, ColorWhite, ColorBlack:
	default:
		return fmt.Errorf("invalid color override %q (use white or black)", c.Display.Color)
	}

	if c.Pomodoro.WorkMinutes <= 0 || c.Pomodoro.BreakMinutes <= 0 {
		return fmt.Errorf("pomodoro minutes must be positive")
	}
	return nil
}

package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Display.Bell {
		t.Error("bell should default on")
	}
	if cfg.Display.Focus || cfg.Display.Bold {
		t.Error("focus and bold should default off")
	}
	if cfg.Display.Color != ColorDefault {
		t.Errorf("color should default empty, got %q", cfg.Display.Color)
	}
	if cfg.Pomodoro.WorkMinutes != 25 || cfg.Pomodoro.BreakMinutes != 5 {
		t.Errorf("pomodoro defaults = %d,%d, want 25,5", cfg.Pomodoro.WorkMinutes, cfg.Pomodoro.BreakMinutes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate_ColorOverride(t *testing.T) {
	tests := []struct {
		color   string
		wantErr bool
	}{
		{ColorDefault, false},
		{ColorWhite, false},
		{ColorBlack, false},
		{"red", true},
		{"WHITE", true},
	}

	for _, tc := range tests {
		cfg := Default()
		cfg.Display.Color = tc.color
		err := cfg.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("Validate with color %q: err = %v, wantErr %v", tc.color, err, tc.wantErr)
		}
	}
}

func TestValidate_PomodoroMinutes(t *testing.T) {
	cfg := Default()
	cfg.Pomodoro.WorkMinutes = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero work minutes should fail validation")
	}

	cfg = Default()
	cfg.Pomodoro.BreakMinutes = -5
	if err := cfg.Validate(); err == nil {
		t.Error("negative break minutes should fail validation")
	}
}

package timer

import "testing"

func TestParseDuration_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain seconds", "90", 90},
		{"zero seconds", "0", 0},
		{"minutes and seconds", "10:30", 630},
		{"hours minutes seconds", "1:30:00", 5400},
		{"single digit parts", "1:2:3", 3723},
		{"padded parts", "01:00:00", 3600},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDuration(tc.input)
			if err != nil {
				t.Fatalf("ParseDuration(%q) error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"non-numeric", "abc"},
		{"mixed", "1:xx"},
		{"too many parts", "1:2:3:4"},
		{"negative", "-5"},
		{"negative part", "1:-5"},
		{"trailing colon", "10:"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseDuration(tc.input); err == nil {
				t.Errorf("ParseDuration(%q) should fail", tc.input)
			}
		})
	}
}

func TestFormatSeconds_HourBoundary(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{90, "01:30"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{5400, "01:30:00"},
		{86399, "23:59:59"},
	}

	for _, tc := range tests {
		if got := FormatSeconds(tc.secs); got != tc.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tc.secs, got, tc.want)
		}
	}
}

func TestFormatSeconds_RoundTripsWithParse(t *testing.T) {
	for _, secs := range []int{0, 1, 59, 60, 3599, 3600, 3661, 7322} {
		parsed, err := ParseDuration(FormatSeconds(secs))
		if err != nil {
			t.Fatalf("round trip of %d failed to parse: %v", secs, err)
		}
		if parsed != secs {
			t.Errorf("round trip of %d gave %d", secs, parsed)
		}
	}
}

func TestParsePomodoro(t *testing.T) {
	work, brk, err := ParsePomodoro("25,5")
	if err != nil {
		t.Fatalf("ParsePomodoro(25,5) error: %v", err)
	}
	if work != 25 || brk != 5 {
		t.Errorf("ParsePomodoro(25,5) = %d,%d", work, brk)
	}

	for _, bad := range []string{"", "25", "25,5,1", "a,b", "0,5", "25,0", "-1,5"} {
		if _, _, err := ParsePomodoro(bad); err == nil {
			t.Errorf("ParsePomodoro(%q) should fail", bad)
		}
	}
}

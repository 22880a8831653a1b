package scheduling

import "testing"

func TestValidateRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name             string
		date, start, end string
		wantOK           bool
	}{
		{"valid range", "2026-03-15", "09:00", "10:00", true},
		{"one minute range", "2026-03-15", "09:00", "09:01", true},
		{"zero length", "2026-03-15", "09:00", "09:00", false},
		{"inverted", "2026-03-15", "10:00", "09:00", false},
		{"bad date", "03/15/2026", "09:00", "10:00", false},
		{"bad start", "2026-03-15", "9am", "10:00", false},
		{"bad end", "2026-03-15", "09:00", "ten", false},
		{"empty times", "2026-03-15", "", "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := ValidateRange(test.date, test.start, test.end)
			if got.OK != test.wantOK {
				t.Errorf("ValidateRange(%q,%q,%q).OK = %v, want %v (reason %q)",
					test.date, test.start, test.end, got.OK, test.wantOK, got.Reason)
			}
			if !got.OK && got.Reason == "" {
				t.Error("rejection must carry a reason")
			}
		})
	}
}

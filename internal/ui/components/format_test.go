package components

import "testing"

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rfc3339", "2026-08-01T14:30:00Z", "Aug 1, 2026 2:30 PM"},
		{"no zone", "2026-08-01T09:05:00", "Aug 1, 2026 9:05 AM"},
		{"sqlite", "2026-12-24 18:00:00", "Dec 24, 2026 6:00 PM"},
		{"garbage passes through", "yesterday-ish", "yesterday-ish"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.in); got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

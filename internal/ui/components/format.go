package components

import "time"

// backendTimeFormats are the timestamp shapes the backend is known to
// emit (RFC3339 with and without zone, and SQLite's default).
var backendTimeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FormatDate renders a backend timestamp for display, e.g.
// "Aug 28, 2026 3:04 PM". Unparseable input is shown as-is.
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, f := range backendTimeFormats {
		if t, err := time.Parse(f, raw); err == nil {
			return t.Format("Jan 2, 2006 3:04 PM")
		}
	}
	return raw
}

package session

import "testing"

func TestCursorPageArithmetic(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		total     int
		wantPage  int
		wantTotal int
		wantPrev  bool
		wantNext  bool
	}{
		{"first page of three", 0, 25, 1, 3, false, true},
		{"middle page", 10, 25, 2, 3, true, true},
		{"last page", 20, 25, 3, 3, true, false},
		{"single page", 0, 7, 1, 1, false, false},
		{"exact multiple", 10, 20, 2, 2, true, false},
		{"past the end", 30, 25, 4, 3, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor()
			c.Offset = tt.offset

			if got := c.CurrentPage(); got != tt.wantPage {
				t.Errorf("CurrentPage = %d, want %d", got, tt.wantPage)
			}
			if got := c.TotalPages(tt.total); got != tt.wantTotal {
				t.Errorf("TotalPages(%d) = %d, want %d", tt.total, got, tt.wantTotal)
			}
			if got := c.HasPrev(); got != tt.wantPrev {
				t.Errorf("HasPrev = %v, want %v", got, tt.wantPrev)
			}
			if got := c.HasNext(tt.total); got != tt.wantNext {
				t.Errorf("HasNext(%d) = %v, want %v", tt.total, got, tt.wantNext)
			}
		})
	}
}

func TestCursorChangeClampsAtZero(t *testing.T) {
	c := NewCursor()

	c.Change(-1)
	if c.Offset != 0 {
		t.Errorf("Offset after Change(-1) at start = %d, want 0", c.Offset)
	}

	c.Change(1)
	c.Change(1)
	if c.Offset != 2*HistoryLimit {
		t.Errorf("Offset after two next = %d, want %d", c.Offset, 2*HistoryLimit)
	}

	c.Change(-1)
	if c.Offset != HistoryLimit {
		t.Errorf("Offset after prev = %d, want %d", c.Offset, HistoryLimit)
	}
}

func TestCursorChangeHasNoUpperClamp(t *testing.T) {
	// Out-of-range pages are expected to come back empty from the server;
	// the cursor itself does not know the total.
	c := NewCursor()
	for i := 0; i < 5; i++ {
		c.Change(1)
	}
	if c.Offset != 5*HistoryLimit {
		t.Errorf("Offset = %d, want %d", c.Offset, 5*HistoryLimit)
	}
}

func TestCursorReset(t *testing.T) {
	c := NewCursor()
	c.Change(1)
	c.Reset()
	if c.Offset != 0 {
		t.Errorf("Offset after Reset = %d, want 0", c.Offset)
	}
}

package session

// HistoryLimit is the page size for the submission history.
const HistoryLimit = 10

// Cursor is the offset/limit pair for the history page being requested.
// Offset is always a non-negative multiple of Limit.
type Cursor struct {
	Offset int
	Limit  int
}

// NewCursor returns a cursor at the first page.
func NewCursor() Cursor {
	return Cursor{Limit: HistoryLimit}
}

// Reset moves the cursor back to the first page.
func (c *Cursor) Reset() {
	c.Offset = 0
}

// Change shifts the cursor by delta pages, clamping at zero. The upper
// bound is intentionally not clamped against the server total: an
// out-of-range page simply comes back empty.
func (c *Cursor) Change(delta int) {
	c.Offset += delta * c.Limit
	if c.Offset < 0 {
		c.Offset = 0
	}
}

// CurrentPage is 1-based.
func (c Cursor) CurrentPage() int {
	return c.Offset/c.Limit + 1
}

// TotalPages returns the page count for the given server-reported total.
func (c Cursor) TotalPages(total int) int {
	return (total + c.Limit - 1) / c.Limit
}

// HasPrev reports whether a previous page exists.
func (c Cursor) HasPrev() bool {
	return c.CurrentPage() > 1
}

// HasNext reports whether a next page exists for the given total.
func (c Cursor) HasNext(total int) bool {
	return c.CurrentPage() < c.TotalPages(total)
}

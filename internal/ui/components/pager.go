package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsnap/internal/ui/theme"
)

// RenderPager renders the "← Prev  Page X of Y  Next →" control row.
// Disabled directions render dim; the caller ignores the corresponding
// key presses.
func RenderPager(current, total, width int, hasPrev, hasNext bool) string {
	prev := theme.Hint.Render("← Prev")
	if hasPrev {
		prev = theme.Selected.Render("← Prev")
	}

	next := theme.Hint.Render("Next →")
	if hasNext {
		next = theme.Selected.Render("Next →")
	}

	page := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Page %d of %d  ", current, total))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, prev+page+next)
}

package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsnap/internal/ui/theme"
)

// ListItem is one row of a selectable list. Desc and Meta are optional
// secondary lines rendered dim under the title.
type ListItem struct {
	Title string
	Desc  string
	Meta  string
}

// List is a vertical selectable list. Selection moves with up/down (and
// vim keys); activation is the caller's business — screens read Selected
// when they see Enter.
type List struct {
	Items    []ListItem
	Selected int
}

// NewList creates a list with the first item selected.
func NewList(items []ListItem) List {
	return List{Items: items}
}

// Update handles keyboard navigation.
func (l List) Update(msg tea.Msg) (List, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(l.Items)-1 {
			l.Selected++
		}
	}

	return l, nil
}

// View renders the list.
func (l List) View(width int) string {
	var b strings.Builder

	for i, item := range l.Items {
		prefix := "    "
		titleStyle := theme.Unselected
		if i == l.Selected {
			prefix = "  ▸ "
			titleStyle = theme.Selected
		}

		b.WriteString(titleStyle.Render(prefix + item.Title))
		b.WriteString("\n")

		if item.Desc != "" {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(width - 6).
				Render("      " + item.Desc))
			b.WriteString("\n")
		}
		if item.Meta != "" {
			b.WriteString(theme.Hint.Render("      " + item.Meta))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

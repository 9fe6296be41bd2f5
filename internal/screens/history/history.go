package history

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsnap/internal/api"
	"github.com/abhisek/mathsnap/internal/router"
	"github.com/abhisek/mathsnap/internal/screen"
	"github.com/abhisek/mathsnap/internal/screens/detail"
	"github.com/abhisek/mathsnap/internal/session"
	"github.com/abhisek/mathsnap/internal/ui/components"
	"github.com/abhisek/mathsnap/internal/ui/layout"
	"github.com/abhisek/mathsnap/internal/ui/theme"
)

// Backend is the slice of the API client the history screen needs. It
// embeds detail.Backend so the drill-down screen can be constructed.
type Backend interface {
	ListSubmissions(ctx context.Context, limit, offset int) (*api.HistoryPage, error)
	detail.Backend
}

type historyLoadedMsg struct {
	Page *api.HistoryPage
	Err  error
	seq  int
}

// HistoryScreen is the paginated list of past submissions.
type HistoryScreen struct {
	backend Backend
	state   *session.State

	page     *api.HistoryPage
	list     components.List
	loaded   bool
	errMsg   string
	selected int

	seq int // generation counter; stale page loads are dropped
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen. Entering it starts over from the
// first page.
func New(backend Backend, state *session.State) *HistoryScreen {
	return &HistoryScreen{backend: backend, state: state}
}

func (s *HistoryScreen) Init() tea.Cmd {
	s.state.Cursor.Reset()
	return s.load()
}

func (s *HistoryScreen) Title() string {
	return "My Submissions"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "R", Description: "Reload"},
	}
	if s.page != nil && s.page.Total > s.state.Cursor.Limit {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Page"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *HistoryScreen) load() tea.Cmd {
	s.seq++
	s.loaded = false
	s.errMsg = ""
	seq := s.seq
	limit, offset := s.state.Cursor.Limit, s.state.Cursor.Offset
	return func() tea.Msg {
		page, err := s.backend.ListSubmissions(context.Background(), limit, offset)
		return historyLoadedMsg{Page: page, Err: err, seq: seq}
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = "Could not load history. Is the backend running?"
			return s, nil
		}
		s.page = msg.Page
		items := make([]components.ListItem, 0, len(msg.Page.Submissions))
		for _, e := range msg.Page.Submissions {
			items = append(items, components.ListItem{
				Title: e.Question,
				Desc:  e.FeedbackSummary,
				Meta:  components.FormatDate(e.CreatedAt) + "  " + badgeWord(e.IsCorrect),
			})
		}
		s.list = components.NewList(items)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *HistoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r":
		return s, s.load()

	case "left", "p":
		if s.page != nil && s.state.Cursor.HasPrev() {
			s.state.Cursor.Change(-1)
			return s, s.load()
		}
		return s, nil

	case "right", "n":
		if s.page != nil && s.state.Cursor.HasNext(s.page.Total) {
			s.state.Cursor.Change(1)
			return s, s.load()
		}
		return s, nil

	case "enter":
		if s.page == nil || len(s.page.Submissions) == 0 {
			return s, nil
		}
		entry := s.page.Submissions[s.list.Selected]
		next := detail.New(s.backend, entry.ID)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(width, theme.ErrorBlock, s.errMsg+"\n\nPress R to retry.")
	}
	if !s.loaded {
		return layout.Centered(width, theme.Loading, "Loading history...")
	}
	if s.page.Total == 0 {
		return layout.Centered(width, theme.Empty,
			"No submissions yet.\nSolve a problem and your results will show up here.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.list.View(width))

	// Pagination controls exist only when there is more than one page.
	if s.page.Total > s.state.Cursor.Limit {
		c := s.state.Cursor
		b.WriteString("\n")
		b.WriteString(components.RenderPager(
			c.CurrentPage(), c.TotalPages(s.page.Total), width,
			c.HasPrev(), c.HasNext(s.page.Total)))
		b.WriteString("\n")
	}

	return b.String()
}

func badgeWord(isCorrect bool) string {
	if isCorrect {
		return theme.BadgeCorrect.Render("Correct")
	}
	return theme.BadgeIncorrect.Render("Incorrect")
}

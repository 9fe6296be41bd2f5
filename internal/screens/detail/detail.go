package detail

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsnap/internal/api"
	"github.com/abhisek/mathsnap/internal/feedback"
	"github.com/abhisek/mathsnap/internal/screen"
	"github.com/abhisek/mathsnap/internal/ui/components"
	"github.com/abhisek/mathsnap/internal/ui/layout"
	"github.com/abhisek/mathsnap/internal/ui/theme"
)

// Backend is the slice of the API client the detail screen needs.
type Backend interface {
	GetSubmission(ctx context.Context, id int64) (*api.SubmissionDetail, error)
}

type detailLoadedMsg struct {
	Detail *api.SubmissionDetail
	Err    error
}

// DetailScreen shows the full record of one past submission. The screen
// appears immediately with a loading placeholder; a failed fetch renders
// an error block in place and the learner backs out manually.
type DetailScreen struct {
	backend Backend
	id      int64

	detail *api.SubmissionDetail
	loaded bool
	errMsg string
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates the detail screen for the given submission id.
func New(backend Backend, id int64) *DetailScreen {
	return &DetailScreen{backend: backend, id: id}
}

func (s *DetailScreen) Init() tea.Cmd {
	return func() tea.Msg {
		d, err := s.backend.GetSubmission(context.Background(), s.id)
		return detailLoadedMsg{Detail: d, Err: err}
	}
}

func (s *DetailScreen) Title() string {
	return "Submission Detail"
}

func (s *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(detailLoadedMsg); ok {
		s.loaded = true
		if m.Err != nil {
			s.errMsg = "Could not load submission details."
		} else {
			s.detail = m.Detail
		}
	}
	return s, nil
}

func (s *DetailScreen) View(width, height int) string {
	if !s.loaded {
		return layout.Centered(width, theme.Loading, "Loading details...")
	}
	if s.errMsg != "" {
		return layout.Centered(width, theme.ErrorBlock, s.errMsg)
	}

	d := s.detail
	contentWidth := width - 8
	if contentWidth > 72 {
		contentWidth = 72
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(section("Problem", theme.Body.Bold(true).Width(contentWidth).Render(d.Question), width, contentWidth))

	result := feedback.Badge(d.IsCorrect) + "\n" +
		theme.Body.Render("Correct answer: "+d.CorrectAnswer)
	b.WriteString(section("Result", result, width, contentWidth))

	b.WriteString(section("Feedback", feedback.Render(d.Feedback, contentWidth), width, contentWidth))

	if d.ExtractedText != "" {
		b.WriteString(section("Extracted Work",
			lipgloss.NewStyle().Foreground(theme.TextDim).Width(contentWidth).Render(d.ExtractedText),
			width, contentWidth))
	}

	b.WriteString(section("Submitted",
		theme.Body.Render(components.FormatDate(d.CreatedAt)), width, contentWidth))

	return b.String()
}

func section(title, body string, width, contentWidth int) string {
	block := theme.Subtitle.Align(lipgloss.Left).Bold(true).Render(title) + "\n" + body
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(contentWidth).Render(block)) + "\n\n"
}

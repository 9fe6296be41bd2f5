package problems

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsnap/internal/api"
	"github.com/abhisek/mathsnap/internal/router"
	"github.com/abhisek/mathsnap/internal/screen"
	"github.com/abhisek/mathsnap/internal/screens/upload"
	"github.com/abhisek/mathsnap/internal/session"
	"github.com/abhisek/mathsnap/internal/ui/components"
	"github.com/abhisek/mathsnap/internal/ui/layout"
	"github.com/abhisek/mathsnap/internal/ui/theme"
)

// ProblemsScreen lists the problems of one topic. The data is fetched by
// the topics screen before navigating here, so this screen never loads.
type ProblemsScreen struct {
	state    *session.State
	topic    api.Topic
	problems []api.Problem
	list     components.List
	submit   upload.Submitter
}

var _ screen.Screen = (*ProblemsScreen)(nil)
var _ screen.KeyHintProvider = (*ProblemsScreen)(nil)

// New creates the problems screen from prefetched data. submit is handed
// on to the upload screen when a problem is picked.
func New(submit upload.Submitter, state *session.State, data *api.TopicProblems) *ProblemsScreen {
	items := make([]components.ListItem, 0, len(data.Problems))
	for _, p := range data.Problems {
		items = append(items, components.ListItem{Title: p.Question})
	}
	return &ProblemsScreen{
		state:    state,
		topic:    data.Topic,
		problems: data.Problems,
		list:     components.NewList(items),
		submit:   submit,
	}
}

func (s *ProblemsScreen) Init() tea.Cmd {
	return nil
}

func (s *ProblemsScreen) Title() string {
	return s.topic.Name
}

func (s *ProblemsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Solve"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProblemsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if kmsg.String() == "enter" && len(s.problems) > 0 {
		p := s.problems[s.list.Selected]
		s.state.SelectProblem(p)
		next := upload.New(s.submit, s.state)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *ProblemsScreen) View(width, height int) string {
	var out string

	out += "\n" + theme.Title.Width(width).Render(s.topic.Name) + "\n"
	if s.topic.Description != "" {
		out += theme.Subtitle.Width(width).Render(s.topic.Description) + "\n"
	}
	out += "\n"

	if len(s.problems) == 0 {
		out += layout.Centered(width, theme.Empty, "No problems for this topic yet.")
		return out
	}

	out += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  Pick a problem, then photograph your worked solution.")
	out += "\n\n"
	out += s.list.View(width)

	return out
}

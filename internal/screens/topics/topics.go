package topics

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsnap/internal/api"
	"github.com/abhisek/mathsnap/internal/router"
	"github.com/abhisek/mathsnap/internal/screen"
	"github.com/abhisek/mathsnap/internal/screens/problems"
	"github.com/abhisek/mathsnap/internal/screens/upload"
	"github.com/abhisek/mathsnap/internal/session"
	"github.com/abhisek/mathsnap/internal/ui/components"
	"github.com/abhisek/mathsnap/internal/ui/layout"
	"github.com/abhisek/mathsnap/internal/ui/theme"
)

// Backend is the slice of the API client the topics screen needs. It
// embeds upload.Submitter because picking a topic eventually leads to the
// upload screen, which this screen's descendants construct.
type Backend interface {
	ListTopics(ctx context.Context) ([]api.Topic, error)
	ListProblems(ctx context.Context, topicID string) (*api.TopicProblems, error)
	upload.Submitter
}

type topicsLoadedMsg struct {
	Topics []api.Topic
	Err    error
	seq    int
}

type problemsLoadedMsg struct {
	Data *api.TopicProblems
	Err  error
	seq  int
}

// TopicsScreen is the home screen: the browsable topic list.
type TopicsScreen struct {
	backend Backend
	state   *session.State

	topics  []api.Topic
	list    components.List
	loaded  bool
	errMsg  string
	alert   string // problem-load failure; shown without leaving the screen
	loading bool   // problems fetch in flight

	seq int // generation counter; stale load results are dropped
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)

// New creates the topics screen.
func New(backend Backend, state *session.State) *TopicsScreen {
	return &TopicsScreen{backend: backend, state: state}
}

func (s *TopicsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *TopicsScreen) Title() string {
	return "Topics"
}

func (s *TopicsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "R", Description: "Reload"},
	}
}

// load issues the topic fetch. The loading placeholder is already up
// because loaded is false (or reset) before the command runs.
func (s *TopicsScreen) load() tea.Cmd {
	s.seq++
	s.loaded = false
	s.errMsg = ""
	seq := s.seq
	return func() tea.Msg {
		topics, err := s.backend.ListTopics(context.Background())
		return topicsLoadedMsg{Topics: topics, Err: err, seq: seq}
	}
}

// fetchProblems issues the problem-list fetch for the selected topic.
// Navigation happens only when the response arrives; failure keeps the
// learner here with an inline alert.
func (s *TopicsScreen) fetchProblems(topicID string) tea.Cmd {
	s.seq++
	s.loading = true
	s.alert = ""
	seq := s.seq
	return func() tea.Msg {
		data, err := s.backend.ListProblems(context.Background(), topicID)
		return problemsLoadedMsg{Data: data, Err: err, seq: seq}
	}
}

func (s *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case topicsLoadedMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = "Could not load topics. Is the backend running?"
			return s, nil
		}
		s.topics = msg.Topics
		items := make([]components.ListItem, 0, len(msg.Topics))
		for _, t := range msg.Topics {
			items = append(items, components.ListItem{
				Title: t.Name,
				Desc:  t.Description,
				Meta:  fmt.Sprintf("Grade %d · %s", t.GradeLevel, problemCountLabel(t.ProblemCount)),
			})
		}
		s.list = components.NewList(items)
		return s, nil

	case problemsLoadedMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		s.loading = false
		if msg.Err != nil {
			s.alert = "Failed to load problems. Please try again."
			return s, nil
		}
		s.state.SelectTopic(msg.Data.Topic)
		next := problems.New(s.backend, s.state, msg.Data)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return s, s.load()
		case "enter":
			if !s.loaded || s.loading || len(s.topics) == 0 {
				return s, nil
			}
			return s, s.fetchProblems(s.topics[s.list.Selected].ID)
		}
		var cmd tea.Cmd
		s.list, cmd = s.list.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *TopicsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(width, theme.ErrorBlock, s.errMsg+"\n\nPress R to retry.")
	}
	if !s.loaded {
		return layout.Centered(width, theme.Loading, "Loading topics...")
	}
	if len(s.topics) == 0 {
		return layout.Centered(width, theme.Empty, "No topics available.")
	}

	out := "\n" + theme.Subtitle.Width(width).Render("Pick a topic to practice") + "\n\n"
	out += s.list.View(width)

	if s.loading {
		out += theme.Loading.Width(width).Align(lipgloss.Center).Render("Loading problems...")
	} else if s.alert != "" {
		out += theme.ErrorBlock.Width(width).Align(lipgloss.Center).Render(s.alert)
	}

	return out
}

// problemCountLabel pluralizes "problem" against the literal count.
func problemCountLabel(n int) string {
	if n == 1 {
		return "1 problem"
	}
	return fmt.Sprintf("%d problems", n)
}

package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsnap/internal/api"
	"github.com/abhisek/mathsnap/internal/router"
	"github.com/abhisek/mathsnap/internal/screen"
	"github.com/abhisek/mathsnap/internal/screens/history"
	"github.com/abhisek/mathsnap/internal/screens/topics"
	"github.com/abhisek/mathsnap/internal/session"
	"github.com/abhisek/mathsnap/internal/ui/layout"
)

// Options carries the app's dependencies.
type Options struct {
	Client *api.Client
}

// AppModel is the root Bubble Tea model. It owns the screen router, the
// session state, and the global navigation keys.
type AppModel struct {
	router *router.Router
	state  *session.State
	client *api.Client
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	state := session.NewState()
	return AppModel{
		router: router.New(topics.New(opts.Client, state)),
		state:  state,
		client: opts.Client,
	}
}

func (m AppModel) Init() tea.Cmd {
	// The root screen was installed without going through the router,
	// so fire its entry load here.
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if handler, ok := m.router.Active().(screen.BackHandler); ok {
				return m, handler.HandleBack()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil

		case "t":
			if !m.capturingInput() {
				fresh := topics.New(m.client, m.state)
				return m, func() tea.Msg { return router.ResetScreenMsg{Screen: fresh} }
			}

		case "h":
			if !m.capturingInput() {
				fresh := history.New(m.client, m.state)
				return m, func() tea.Msg { return router.ResetScreenMsg{Screen: fresh} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// capturingInput reports whether the active screen is consuming plain
// keystrokes, in which case the global nav keys stay out of the way.
func (m AppModel) capturingInput() bool {
	if c, ok := m.router.Active().(screen.InputCapturer); ok {
		return c.CapturingInput()
	}
	return false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.width)

	footerHints := []layout.KeyHint{
		{Key: "T", Description: "Topics"},
		{Key: "H", Description: "History"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), footerHints...)
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

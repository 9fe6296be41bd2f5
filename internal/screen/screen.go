package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsnap/internal/ui/layout"
)

// Screen defines the interface for all application screens. Exactly one
// screen is active at a time; the router runs Init when a screen becomes
// active, which is where its data load starts.
type Screen interface {
	// Init returns the screen's entry command (usually its data load).
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackHandler is an optional interface for screens that need to run
// cleanup (or refuse) when the learner navigates back. Screens without
// it are simply popped.
type BackHandler interface {
	HandleBack() tea.Cmd
}

// InputCapturer is an optional interface for screens that consume plain
// keystrokes (text entry). While capturing, the app suspends its global
// navigation keys.
type InputCapturer interface {
	CapturingInput() bool
}

package upload

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsnap/internal/api"
	"github.com/abhisek/mathsnap/internal/imaging"
	"github.com/abhisek/mathsnap/internal/router"
	"github.com/abhisek/mathsnap/internal/screen"
	"github.com/abhisek/mathsnap/internal/session"
	"github.com/abhisek/mathsnap/internal/ui/components"
	"github.com/abhisek/mathsnap/internal/ui/layout"
)

// Submitter is the slice of the API client the upload screen needs.
type Submitter interface {
	SubmitSolution(ctx context.Context, problemID, imageData string) (*api.SubmissionOutcome, error)
}

// phase is the submission workflow state. Idle accepts an image and a
// submit; awaiting has exactly one request in flight; the three terminal
// phases each offer a single action returning to idle.
type phase int

const (
	phaseIdle phase = iota
	phaseAwaiting
	phaseGraded
	phaseQuality
	phaseFailed
)

// UploadScreen drives one upload cycle: attach a photo of the worked
// solution, submit it, render the outcome.
type UploadScreen struct {
	submit Submitter
	state  *session.State
	input  components.TextInput

	phase   phase
	outcome *api.SubmissionOutcome
	failMsg string
	alert   string // local validation message (oversized file etc.)

	seq int // guards against a stale submission result
}

var _ screen.Screen = (*UploadScreen)(nil)
var _ screen.KeyHintProvider = (*UploadScreen)(nil)
var _ screen.BackHandler = (*UploadScreen)(nil)
var _ screen.InputCapturer = (*UploadScreen)(nil)

// New creates the upload screen for the problem currently selected in
// the session.
func New(submit Submitter, state *session.State) *UploadScreen {
	return &UploadScreen{
		submit: submit,
		state:  state,
		input:  components.NewTextInput("path/to/photo.jpg", 0),
	}
}

func (s *UploadScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *UploadScreen) Title() string {
	return "Submit Your Work"
}

func (s *UploadScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAwaiting:
		return []layout.KeyHint{}
	case phaseGraded:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit another photo"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuality:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retake photo"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseFailed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Try again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.state.Pending != nil {
		return []layout.KeyHint{
			{Key: "Enter/S", Description: "Submit"},
			{Key: "X", Description: "Remove image"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Attach image"},
		{Key: "Esc", Description: "Back"},
	}
}

// CapturingInput reports whether plain keystrokes belong to the path
// prompt right now.
func (s *UploadScreen) CapturingInput() bool {
	return s.phase == phaseIdle && s.state.Pending == nil
}

// HandleBack clears the upload cycle before popping. While a submission
// is in flight the screen stays put; the result is still coming.
func (s *UploadScreen) HandleBack() tea.Cmd {
	if s.phase == phaseAwaiting {
		return nil
	}
	s.state.LeaveUpload()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *UploadScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case imageEncodedMsg:
		return s.handleEncoded(msg)

	case submissionDoneMsg:
		return s.handleResult(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.CapturingInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *UploadScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseAwaiting:
		// One submission per cycle; nothing to press.
		return s, nil

	case phaseGraded, phaseQuality, phaseFailed:
		if key == "enter" {
			return s, s.resetCycle()
		}
		return s, nil
	}

	// Idle.
	if s.state.Pending == nil {
		if key == "enter" {
			return s, s.attachImage()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch key {
	case "enter", "s":
		return s, s.submitSolution()
	case "x":
		s.state.RemoveImage()
		s.alert = ""
		s.input = components.NewTextInput("path/to/photo.jpg", 0)
		return s, s.input.Init()
	}
	return s, nil
}

// attachImage encodes the file named in the path prompt. A new file
// silently replaces any pending one.
func (s *UploadScreen) attachImage() tea.Cmd {
	path := strings.TrimSpace(s.input.Value())
	if path == "" {
		return nil
	}
	s.alert = ""
	return func() tea.Msg {
		img, err := imaging.Encode(path)
		return imageEncodedMsg{Image: img, Err: err}
	}
}

func (s *UploadScreen) handleEncoded(msg imageEncodedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		switch {
		case errors.Is(msg.Err, imaging.ErrTooLarge):
			s.alert = "Image is too large. Please use an image under 10MB."
		case errors.Is(msg.Err, imaging.ErrNotAnImage):
			s.alert = "That file doesn't look like an image."
		default:
			s.alert = "Could not read that file. Check the path and try again."
		}
		return s, nil
	}
	s.state.AttachImage(msg.Image)
	return s, nil
}

// submitSolution issues the one POST of this cycle. The guard mirrors
// the submit control being disabled: no image or no problem, no request.
func (s *UploadScreen) submitSolution() tea.Cmd {
	if !s.state.CanSubmit() {
		return nil
	}

	s.phase = phaseAwaiting
	s.outcome = nil
	s.failMsg = ""
	s.seq++
	seq := s.seq
	problemID := s.state.Problem.ID
	imageData := s.state.Pending.DataURI

	return func() tea.Msg {
		outcome, err := s.submit.SubmitSolution(context.Background(), problemID, imageData)
		return submissionDoneMsg{Outcome: outcome, Err: err, seq: seq}
	}
}

func (s *UploadScreen) handleResult(msg submissionDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.seq != s.seq || s.phase != phaseAwaiting {
		return s, nil
	}

	// Every branch below leaves phaseAwaiting, which clears the loading
	// indicator no matter how the request ended.
	if msg.Err != nil {
		s.failMsg = errorMessage(msg.Err)
		s.phase = phaseFailed
		return s, nil
	}

	s.outcome = msg.Outcome
	if msg.Outcome.Quality != nil {
		s.phase = phaseQuality
	} else {
		s.phase = phaseGraded
	}
	return s, nil
}

// resetCycle returns to idle for another attempt at the same problem.
func (s *UploadScreen) resetCycle() tea.Cmd {
	s.phase = phaseIdle
	s.outcome = nil
	s.failMsg = ""
	s.alert = ""
	s.state.RemoveImage()
	s.input = components.NewTextInput("path/to/photo.jpg", 0)
	return s.input.Init()
}

// errorMessage maps a transport failure to user-facing text, preferring
// the backend's detail string when one was parseable.
func errorMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	var unreachable *api.ErrUnreachable
	if errors.As(err, &unreachable) {
		return "Could not reach the backend. Is it running?"
	}
	return "Something went wrong. Please try again."
}

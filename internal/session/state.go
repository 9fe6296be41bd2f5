package session

import (
	"github.com/abhisek/mathsnap/internal/api"
	"github.com/abhisek/mathsnap/internal/imaging"
)

// State is the single in-memory session record: what the learner has
// selected and what is pending upload. It is owned by the app model and
// injected into screens; all mutation goes through the named transitions
// below, on the Bubble Tea update goroutine only.
type State struct {
	Topic   *api.Topic
	Problem *api.Problem
	Pending *imaging.PendingImage
	Cursor  Cursor
}

// NewState returns an empty session with the history cursor at page one.
func NewState() *State {
	return &State{Cursor: NewCursor()}
}

// SelectTopic records the topic being browsed.
func (s *State) SelectTopic(t api.Topic) {
	s.Topic = &t
}

// SelectProblem starts a fresh upload cycle for the given problem. Any
// image pending from a previous cycle is discarded.
func (s *State) SelectProblem(p api.Problem) {
	s.Problem = &p
	s.Pending = nil
}

// AttachImage sets the pending image, silently replacing any prior one.
func (s *State) AttachImage(img *imaging.PendingImage) {
	s.Pending = img
}

// RemoveImage discards the pending image.
func (s *State) RemoveImage() {
	s.Pending = nil
}

// LeaveUpload clears the upload cycle on back-navigation.
func (s *State) LeaveUpload() {
	s.Problem = nil
	s.Pending = nil
}

// CanSubmit reports whether a submission may be issued: both a problem
// and an image must be set.
func (s *State) CanSubmit() bool {
	return s.Problem != nil && s.Pending != nil
}

package problems

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsnap/internal/api"
	"github.com/abhisek/mathsnap/internal/imaging"
	"github.com/abhisek/mathsnap/internal/router"
	"github.com/abhisek/mathsnap/internal/session"
)

type nopSubmitter struct{}

func (nopSubmitter) SubmitSolution(context.Context, string, string) (*api.SubmissionOutcome, error) {
	return nil, errors.New("not used")
}

func sampleData() *api.TopicProblems {
	return &api.TopicProblems{
		Topic: api.Topic{ID: "frac", Name: "Fractions", Description: "Adding fractions"},
		Problems: []api.Problem{
			{ID: "p1", Question: "1/2 + 1/4 = ?"},
			{ID: "p2", Question: "2/3 - 1/6 = ?"},
		},
	}
}

func TestRendersTopicAndProblems(t *testing.T) {
	s := New(nopSubmitter{}, session.NewState(), sampleData())

	view := s.View(80, 24)
	for _, want := range []string{"Fractions", "Adding fractions", "1/2 + 1/4 = ?", "2/3 - 1/6 = ?"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEmptyTopic(t *testing.T) {
	data := sampleData()
	data.Problems = nil
	s := New(nopSubmitter{}, session.NewState(), data)

	if view := s.View(80, 24); !strings.Contains(view, "No problems for this topic yet.") {
		t.Errorf("expected the empty state, got %q", view)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter must be a no-op with no problems")
	}
}

func TestSelectingProblemStartsUploadCycle(t *testing.T) {
	state := session.NewState()
	state.AttachImage(&imaging.PendingImage{DataURI: "data:image/png;base64,eA=="})
	s := New(nopSubmitter{}, state, sampleData())

	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected a PushScreenMsg to the upload screen")
	}

	if state.Problem == nil || state.Problem.ID != "p2" {
		t.Errorf("selected problem = %+v, want p2", state.Problem)
	}
	if state.Pending != nil {
		t.Error("picking a problem discards any leftover image")
	}
}

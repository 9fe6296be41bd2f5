package upload

import (
	"github.com/abhisek/mathsnap/internal/api"
	"github.com/abhisek/mathsnap/internal/imaging"
)

// imageEncodedMsg is sent when the file read + encode finishes.
type imageEncodedMsg struct {
	Image *imaging.PendingImage
	Err   error
}

// submissionDoneMsg is sent when the grading round-trip resolves.
type submissionDoneMsg struct {
	Outcome *api.SubmissionOutcome
	Err     error
	seq     int
}

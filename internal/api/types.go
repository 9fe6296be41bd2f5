package api

// Topic is a browsable subject area, as returned by GET /api/topics.
type Topic struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	GradeLevel   int    `json:"grade_level"`
	ProblemCount int    `json:"problem_count"`
}

// Problem is a single question within a topic. The correct answer is never
// sent to the client.
type Problem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

// TopicProblems is the response of GET /api/topics/{id}/problems.
type TopicProblems struct {
	Topic    Topic     `json:"topic"`
	Problems []Problem `json:"problems"`
}

// StepAnalysis is one step of the learner's work as the grader saw it.
// Evaluation is one of "correct", "incorrect", "unclear".
type StepAnalysis struct {
	Step       string `json:"step"`
	Evaluation string `json:"evaluation"`
	Comment    string `json:"comment"`
}

// Feedback is the grader's commentary on a submission. Only Summary is
// guaranteed; everything else is optional.
type Feedback struct {
	Summary       string         `json:"summary"`
	StepsAnalysis []StepAnalysis `json:"steps_analysis"`
	Suggestions   []string       `json:"suggestions"`
	Encouragement string         `json:"encouragement"`
}

// QualityRejection means the image could not be evaluated at all. It carries
// no correctness verdict, only guidance for retaking the photo.
type QualityRejection struct {
	Feedback Feedback
}

// GradedResult is a submission that was actually evaluated.
type GradedResult struct {
	IsCorrect     bool
	Feedback      Feedback
	ExtractedWork string
}

// SubmissionOutcome is the decoded result of POST /api/submissions.
// Exactly one of Quality or Graded is non-nil.
type SubmissionOutcome struct {
	Quality *QualityRejection
	Graded  *GradedResult
}

// submissionWire is the raw response shape, discriminated by quality_failed.
type submissionWire struct {
	QualityFailed bool     `json:"quality_failed"`
	IsCorrect     bool     `json:"is_correct"`
	Feedback      Feedback `json:"feedback"`
	ExtractedWork string   `json:"extracted_work"`
}

func (w submissionWire) outcome() *SubmissionOutcome {
	if w.QualityFailed {
		return &SubmissionOutcome{Quality: &QualityRejection{Feedback: w.Feedback}}
	}
	return &SubmissionOutcome{Graded: &GradedResult{
		IsCorrect:     w.IsCorrect,
		Feedback:      w.Feedback,
		ExtractedWork: w.ExtractedWork,
	}}
}

// HistoryEntry is one row of the paginated submission history.
type HistoryEntry struct {
	ID              int64  `json:"id"`
	Question        string `json:"question"`
	FeedbackSummary string `json:"feedback_summary"`
	IsCorrect       bool   `json:"is_correct"`
	CreatedAt       string `json:"created_at"`
}

// HistoryPage is the response of GET /api/submissions.
type HistoryPage struct {
	Total       int            `json:"total"`
	Submissions []HistoryEntry `json:"submissions"`
}

// SubmissionDetail is the full record of one past submission.
type SubmissionDetail struct {
	ID            int64    `json:"id"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	IsCorrect     bool     `json:"is_correct"`
	Feedback      Feedback `json:"feedback"`
	ExtractedText string   `json:"extracted_text"`
	CreatedAt     string   `json:"created_at"`
}

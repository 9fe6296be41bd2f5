package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func TestListTopics(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/topics", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"topics":[
			{"id":"frac","name":"Fractions","description":"Adding fractions","grade_level":4,"problem_count":3},
			{"id":"mult","name":"Multiplication","grade_level":3,"problem_count":1}
		]}`))
	})

	topics, err := c.ListTopics(context.Background())
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "Fractions", topics[0].Name)
	assert.Equal(t, 4, topics[0].GradeLevel)
	assert.Equal(t, 1, topics[1].ProblemCount)
}

func TestListTopicsEmptyIsNotAnError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"topics":[]}`))
	})

	topics, err := c.ListTopics(context.Background())
	require.NoError(t, err)
	assert.Empty(t, topics)
}

func TestListProblems(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/topics/frac/problems", r.URL.Path)
		w.Write([]byte(`{
			"topic":{"id":"frac","name":"Fractions","grade_level":4},
			"problems":[{"id":"p1","question":"1/2 + 1/4 = ?"}]
		}`))
	})

	tp, err := c.ListProblems(context.Background(), "frac")
	require.NoError(t, err)
	assert.Equal(t, "Fractions", tp.Topic.Name)
	require.Len(t, tp.Problems, 1)
	assert.Equal(t, "1/2 + 1/4 = ?", tp.Problems[0].Question)
}

func TestSubmitSolutionGraded(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body struct {
			ProblemID string `json:"problem_id"`
			ImageData string `json:"image_data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "p1", body.ProblemID)
		assert.Equal(t, "data:image/png;base64,aGk=", body.ImageData)

		w.Write([]byte(`{
			"quality_failed": false,
			"is_correct": true,
			"extracted_work": "1/2 + 1/4 = 3/4",
			"feedback": {
				"summary": "Nice work",
				"steps_analysis": [{"step":"1/2 + 1/4","evaluation":"correct","comment":"Common denominator found"}]
			}
		}`))
	})

	out, err := c.SubmitSolution(context.Background(), "p1", "data:image/png;base64,aGk=")
	require.NoError(t, err)
	require.NotNil(t, out.Graded)
	assert.Nil(t, out.Quality)
	assert.True(t, out.Graded.IsCorrect)
	assert.Equal(t, "1/2 + 1/4 = 3/4", out.Graded.ExtractedWork)
	require.Len(t, out.Graded.Feedback.StepsAnalysis, 1)
}

func TestSubmitSolutionQualityRejected(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"quality_failed": true,
			"is_correct": false,
			"feedback": {
				"summary": "Image quality check failed: too blurry",
				"suggestions": ["Try better lighting"],
				"encouragement": "Just retake the photo!"
			}
		}`))
	})

	out, err := c.SubmitSolution(context.Background(), "p1", "data:image/png;base64,aGk=")
	require.NoError(t, err)
	require.NotNil(t, out.Quality)
	assert.Nil(t, out.Graded)
	assert.Equal(t, "Image quality check failed: too blurry", out.Quality.Feedback.Summary)
}

func TestListSubmissionsPagination(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		w.Write([]byte(`{"total":25,"submissions":[
			{"id":21,"question":"3 x 4","feedback_summary":"Good","is_correct":true,"created_at":"2026-08-01T10:00:00"}
		]}`))
	})

	page, err := c.ListSubmissions(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 25, page.Total)
	require.Len(t, page.Submissions, 1)
	assert.EqualValues(t, 21, page.Submissions[0].ID)
}

func TestGetSubmission(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/submissions/7", r.URL.Path)
		w.Write([]byte(`{
			"id": 7,
			"question": "3 x 4",
			"correct_answer": "12",
			"is_correct": false,
			"extracted_text": "3 x 4 = 11",
			"created_at": "2026-08-01T10:00:00",
			"feedback": {"summary": "Close, check your times table"}
		}`))
	})

	d, err := c.GetSubmission(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "12", d.CorrectAnswer)
	assert.False(t, d.IsCorrect)
	assert.Equal(t, "3 x 4 = 11", d.ExtractedText)
}

func TestErrorDetailIsKept(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Problem not found"}`))
	})

	_, err := c.ListProblems(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Problem not found", apiErr.Message())
}

func TestErrorWithoutBodyFallsBack(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"html body", "<html>502 Bad Gateway</html>"},
		{"json without detail", `{"error":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(tt.body))
			})

			_, err := c.ListTopics(context.Background())
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, genericErrorMessage, apiErr.Message())
		})
	}
}

func TestUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // shut down before use

	c := New(Config{BaseURL: srv.URL, Timeout: time.Second})
	_, err := c.ListTopics(context.Background())
	require.Error(t, err)

	var unreachable *ErrUnreachable
	assert.True(t, errors.As(err, &unreachable))
}

func TestMalformedBodyIsTransportError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"topics": [`))
	})

	_, err := c.ListTopics(context.Background())
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"default", DefaultConfig().BaseURL, false},
		{"https", "https://api.example.com", false},
		{"missing scheme", "api.example.com", true},
		{"bad scheme", "ftp://api.example.com", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.BaseURL = tt.baseURL
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MATHSNAP_API_BASE", "http://backend:9000")
	t.Setenv("MATHSNAP_API_TIMEOUT", "15s")

	cfg := ConfigFromEnv()
	assert.Equal(t, "http://backend:9000", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

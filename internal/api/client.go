package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Client is a typed client for the homework backend. It holds no state
// beyond its configuration and is safe for concurrent use.
type Client struct {
	baseURL string
	hc      *http.Client
}

// New creates a Client from the given config.
func New(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc:      &http.Client{Timeout: cfg.Timeout},
	}
}

// ListTopics fetches all topics with their problem counts.
func (c *Client) ListTopics(ctx context.Context) ([]Topic, error) {
	var out struct {
		Topics []Topic `json:"topics"`
	}
	if err := c.get(ctx, "/api/topics", &out); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return out.Topics, nil
}

// ListProblems fetches a topic and its problems.
func (c *Client) ListProblems(ctx context.Context, topicID string) (*TopicProblems, error) {
	var out TopicProblems
	path := "/api/topics/" + url.PathEscape(topicID) + "/problems"
	if err := c.get(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("list problems for topic %s: %w", topicID, err)
	}
	return &out, nil
}

// SubmitSolution uploads an encoded work image for grading. ImageData must
// be a base64 data URI; the backend accepts no other representation.
func (c *Client) SubmitSolution(ctx context.Context, problemID, imageData string) (*SubmissionOutcome, error) {
	body := struct {
		ProblemID string `json:"problem_id"`
		ImageData string `json:"image_data"`
	}{ProblemID: problemID, ImageData: imageData}

	var out submissionWire
	if err := c.post(ctx, "/api/submissions", body, &out); err != nil {
		return nil, fmt.Errorf("submit solution: %w", err)
	}
	return out.outcome(), nil
}

// ListSubmissions fetches one page of submission history.
func (c *Client) ListSubmissions(ctx context.Context, limit, offset int) (*HistoryPage, error) {
	var out HistoryPage
	path := "/api/submissions?limit=" + strconv.Itoa(limit) + "&offset=" + strconv.Itoa(offset)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	if out.Submissions == nil {
		out.Submissions = []HistoryEntry{}
	}
	return &out, nil
}

// GetSubmission fetches the full record of one past submission.
func (c *Client) GetSubmission(ctx context.Context, id int64) (*SubmissionDetail, error) {
	var out SubmissionDetail
	path := "/api/submissions/" + strconv.FormatInt(id, 10)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("get submission %d: %w", id, err)
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.hc.Do(req)
	if err != nil {
		return &ErrUnreachable{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError reads a non-2xx body, keeping the backend's detail string
// when one is present. A missing or malformed body is not an error here;
// the APIError just goes out without a detail.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	var wire struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &wire); err == nil {
		apiErr.Detail = wire.Detail
	}
	return apiErr
}

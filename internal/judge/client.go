// Package judge is the outbound bridge to the external scoring service. It
// persists nothing and never retries; a failed call aborts the submission.
package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrUnavailable covers transport failures, timeouts and non-2xx
	// responses from the judging service.
	ErrUnavailable = errors.New("judging service unavailable")
	// ErrBadVerdict means the service answered but the verdict was missing
	// required fields. The submission fails closed instead of persisting
	// partial scores.
	ErrBadVerdict = errors.New("judging service returned an incomplete verdict")
)

// Verdict is the judging result for one debate.
type Verdict struct {
	ScoreA   float64
	ScoreB   float64
	Winner   string
	Feedback string
}

type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type judgeRequest struct {
	SideA []string `json:"sideA"`
	SideB []string `json:"sideB"`
}

// All fields are pointers so an absent field is distinguishable from a zero
// value.
type judgeResponse struct {
	ScoreA   *float64 `json:"scoreA"`
	ScoreB   *float64 `json:"scoreB"`
	Winner   *string  `json:"winner"`
	Feedback *string  `json:"feedback"`
}

func (c *Client) Judge(ctx context.Context, sideA, sideB []string) (*Verdict, error) {
	body, err := json.Marshal(judgeRequest{SideA: sideA, SideB: sideB})
	if err != nil {
		return nil, fmt.Errorf("encoding judge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building judge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var raw judgeResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadVerdict, err)
	}

	if raw.ScoreA == nil || raw.ScoreB == nil || raw.Winner == nil || raw.Feedback == nil {
		return nil, ErrBadVerdict
	}

	return &Verdict{
		ScoreA:   *raw.ScoreA,
		ScoreB:   *raw.ScoreB,
		Winner:   *raw.Winner,
		Feedback: *raw.Feedback,
	}, nil
}

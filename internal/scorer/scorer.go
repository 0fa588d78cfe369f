// Package scorer holds the pairwise relevance collaborator contract and its
// HTTP client. The scorer takes ordered (reference, candidate) text pairs
// and returns a same-length, order-aligned batch of raw real-valued scores.
package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single scoring call when no timeout is
// configured.
const DefaultTimeout = 30 * time.Second

// Pair is one (reference, candidate) input to the relevance model.
type Pair struct {
	Reference string `json:"reference"`
	Candidate string `json:"candidate"`
}

// BatchMismatchError reports a scorer response whose length does not match
// the request. Order alignment is the whole contract, so this is fatal for
// the caller.
type BatchMismatchError struct {
	Want int
	Got  int
}

func (e *BatchMismatchError) Error() string {
	return fmt.Sprintf("scorer returned %d scores for %d pairs", e.Got, e.Want)
}

// Error reports a failed scoring call.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring call: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring call: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client calls the pairwise relevance collaborator over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a scorer client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type scoreRequest struct {
	Pairs []Pair `json:"pairs"`
}

type scoreResponse struct {
	Scores []float64 `json:"scores"`
}

// ScorePairs scores the batch as a single atomic unit of work. The returned
// slice is order-aligned with pairs; a length mismatch surfaces as a
// BatchMismatchError.
func (c *Client) ScorePairs(ctx context.Context, pairs []Pair) ([]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(scoreRequest{Pairs: pairs})
	if err != nil {
		return nil, &Error{Message: "encoding request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Message: "building request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &Error{
			Message: fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload))),
		}
	}

	var out scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &Error{Message: "decoding response", Cause: err}
	}
	if len(out.Scores) != len(pairs) {
		return nil, &BatchMismatchError{Want: len(pairs), Got: len(out.Scores)}
	}
	return out.Scores, nil
}

// Ping checks the collaborator's health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return &Error{Message: "building health request", Cause: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: "health request failed", Cause: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &Error{Message: fmt.Sprintf("health status %d", resp.StatusCode)}
	}
	return nil
}

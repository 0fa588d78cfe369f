// Package retrieval holds the vector search and embedding collaborator
// contracts and their HTTP client implementations. Both collaborators are
// opaque services; only their request/response shapes are known here.
package retrieval

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

// DefaultTimeout bounds a single collaborator call when no timeout is
// configured.
const DefaultTimeout = 30 * time.Second

// Hit is one record returned by the vector index, in engine-reported order.
type Hit struct {
	ID     string            `json:"id"`
	Score  float64           `json:"score"`
	Text   string            `json:"text"`
	Fields map[string]string `json:"fields,omitempty"`
}

// SearchOptions mirror the index-side query parameters.
type SearchOptions struct {
	Index         string `json:"index"`
	NumCandidates int    `json:"numCandidates"`
	Limit         int    `json:"limit"`
}

// Error reports a failed collaborator call.
type Error struct {
	Endpoint string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("retrieval call %s: %s: %v", e.Endpoint, e.Message, e.Cause)
	}
	return fmt.Sprintf("retrieval call %s: %s", e.Endpoint, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

type client struct {
	baseURL string
	http    *http.Client
}

func newClient(baseURL string, timeout time.Duration) client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &Error{Endpoint: path, Message: "encoding request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &Error{Endpoint: path, Message: "building request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Endpoint: path, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &Error{
			Endpoint: path,
			Message:  fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Endpoint: path, Message: "decoding response", Cause: err}
	}
	return nil
}

func (c client) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return &Error{Endpoint: "/health", Message: "building request", Cause: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Endpoint: "/health", Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &Error{Endpoint: "/health", Message: fmt.Sprintf("status %d", resp.StatusCode)}
	}
	return nil
}

// SearchClient calls the vector index over HTTP.
type SearchClient struct {
	client
}

// NewSearchClient builds a search client for the given base URL.
func NewSearchClient(baseURL string, timeout time.Duration) *SearchClient {
	return &SearchClient{client: newClient(baseURL, timeout)}
}

type searchRequest struct {
	Vector []float64 `json:"vector"`
	SearchOptions
}

type searchResponse struct {
	Hits []Hit `json:"hits"`
}

// Search runs a vector similarity query and returns the ordered hits.
// Failure is a distinct error, never a silently empty result.
func (c *SearchClient) Search(ctx context.Context, vector []float64, opts SearchOptions) ([]Hit, error) {
	if len(vector) == 0 {
		return nil, &Error{Endpoint: "/search", Message: "query vector is empty"}
	}
	var resp searchResponse
	if err := c.postJSON(ctx, "/search", searchRequest{Vector: vector, SearchOptions: opts}, &resp); err != nil {
		return nil, err
	}
	return resp.Hits, nil
}

// Ping checks the collaborator's health endpoint.
func (c *SearchClient) Ping(ctx context.Context) error {
	return c.ping(ctx)
}

// EmbedClient calls the embedding collaborator over HTTP.
type EmbedClient struct {
	client
}

// NewEmbedClient builds an embedding client for the given base URL.
func NewEmbedClient(baseURL string, timeout time.Duration) *EmbedClient {
	return &EmbedClient{client: newClient(baseURL, timeout)}
}

type embedRequest struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Vector []float64 `json:"vector"`
}

// Embed returns the fixed-dimension normalized vector for the text. An
// empty vector in the response is a collaborator failure.
func (c *EmbedClient) Embed(ctx context.Context, text string) ([]float64, error) {
	var resp embedResponse
	if err := c.postJSON(ctx, "/embed", embedRequest{Text: text}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Vector) == 0 {
		return nil, &Error{Endpoint: "/embed", Message: "collaborator returned an empty vector"}
	}
	return resp.Vector, nil
}

// Ping checks the collaborator's health endpoint.
func (c *EmbedClient) Ping(ctx context.Context) error {
	return c.ping(ctx)
}

// Package alcf is the HTTP client for the ALCF inference gateway.
package alcf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Sentinel errors for gateway client failures.
var (
	ErrUnreachable = errors.New("gateway unreachable")
	ErrTimeout     = errors.New("gateway request timeout")
	ErrAPIStatus   = errors.New("gateway returned error status")
)

// CatalogCandidates are the path suffixes probed for the model catalog,
// always tried in this order.
var CatalogCandidates = []string{"/list-endpoints", "/models", "/v1/models"}

const jobsPath = "/sophia/jobs"

// Client is the interface for talking to the inference gateway. Response
// bodies are returned as decoded loose JSON; interpreting the shapes is the
// status package's job.
type Client interface {
	CatalogCandidate(ctx context.Context, suffix string) (any, error)
	Jobs(ctx context.Context) (any, error)
	ChatCompletion(ctx context.Context, endpoint, model, prompt string) (string, error)
}

// HTTPClient implements Client against the gateway's HTTP API using
// bearer-token authentication.
type HTTPClient struct {
	base   string
	token  string
	client *http.Client
}

// NewHTTPClient creates a gateway client. host must carry a scheme and no
// trailing slash; resourcePath is the prefix all gateway routes hang off.
func NewHTTPClient(host, resourcePath, token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		base:   host + resourcePath,
		token:  token,
		client: &http.Client{Timeout: timeout},
	}
}

// CatalogCandidate fetches one catalog candidate endpoint, e.g. "/models".
func (c *HTTPClient) CatalogCandidate(ctx context.Context, suffix string) (any, error) {
	return c.getJSON(ctx, c.base+suffix)
}

// Jobs fetches the job-queue sections.
func (c *HTTPClient) Jobs(ctx context.Context) (any, error) {
	return c.getJSON(ctx, c.base+jobsPath)
}

func (c *HTTPClient) getJSON(ctx context.Context, u string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classifyError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from %s", ErrAPIStatus, resp.StatusCode, u)
	}

	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding gateway response: %w", err)
	}
	return body, nil
}

// ChatCompletion posts one OpenAI-style chat completion to the given
// endpoint URL and returns the first choice's content.
func (c *HTTPClient) ChatCompletion(ctx context.Context, endpoint, model, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", classifyError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d from %s", ErrAPIStatus, resp.StatusCode, endpoint)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("decoding chat response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("%w: chat response contained no choices", ErrAPIStatus)
	}
	return chat.Choices[0].Message.Content, nil
}

// classifyError maps transport-level errors to sentinel errors.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}

// --- chat completion wire types ---

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Compile-time check that HTTPClient implements Client.
var _ Client = (*HTTPClient)(nil)

// Package generate submits encoded files to the remote quiz generator and
// consumes its incrementally streamed question array.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"quizkit/internal/upload"
)

// HTTPDoer abstracts HTTP clients used by the generator client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the remote quiz-generation service.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    HTTPDoer
}

// Payload is the submission body sent to the generator.
type Payload struct {
	Files []upload.EncodedFile `json:"files"`
}

// titleRequest is the body of a title-derivation request.
type titleRequest struct {
	Name string `json:"name"`
}

// titleResponse is the title endpoint's reply.
type titleResponse struct {
	Title string `json:"title"`
}

// NewClient constructs a generator client with explicit settings.
func NewClient(baseURL, apiKey string, client HTTPDoer) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("base url is required")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    client,
	}, nil
}

// StreamQuiz submits the payload and returns the live question stream.
// The caller owns the stream and must close it.
func (c *Client) StreamQuiz(ctx context.Context, payload Payload) (Stream, error) {
	if len(payload.Files) == 0 {
		return nil, fmt.Errorf("at least one file is required")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	resp, err := c.post(ctx, "/v1/quiz", body)
	if err != nil {
		return nil, err
	}
	return newQuizStream(resp.Body), nil
}

// Title requests a display title for the given file name.
func (c *Client) Title(ctx context.Context, fileName string) (string, error) {
	body, err := json.Marshal(titleRequest{Name: fileName})
	if err != nil {
		return "", fmt.Errorf("marshal title request: %w", err)
	}
	resp, err := c.post(ctx, "/v1/title", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	var parsed titleResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode title response: %w", err)
	}
	return strings.TrimSpace(parsed.Title), nil
}

// post issues an authorized JSON POST and rejects non-2xx responses.
func (c *Client) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("generator error: %s", strings.TrimSpace(string(msg)))
	}
	return resp, nil
}

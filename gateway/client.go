package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	// AuthTimeout bounds login and register calls.
	AuthTimeout = 30 * time.Second
	// SubmissionTimeout bounds each per-task submission lookup.
	SubmissionTimeout = 5 * time.Second

	defaultTimeout = 15 * time.Second
)

// Client is the uniform wrapper around the remote API gateway. All domain
// calls in this package go through do, so bearer injection, the JSON codec
// and the error taxonomy live in one place.
type Client struct {
	base string
	http *http.Client
	log  *log.Logger

	// submissionTimeout is SubmissionTimeout unless a test shortens it.
	submissionTimeout time.Duration
}

func New(base string, logger *log.Logger) *Client {
	return &Client{
		base:              base,
		http:              &http.Client{Timeout: defaultTimeout},
		log:               logger,
		submissionTimeout: SubmissionTimeout,
	}
}

// errorBody is the structured error shape the gateway uses for non-2xx
// responses. Either field may be present.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs one request. A non-2xx response becomes a *StatusError with
// the message extracted from the body. A 2xx body that fails to decode into
// out is logged and left as the zero value rather than surfaced, so a
// malformed payload can never take a view down.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("gateway: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		msg := eb.Error
		if msg == "" {
			msg = eb.Message
		}
		return &StatusError{Code: resp.StatusCode, Message: msg}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			c.log.Printf("gateway: bad payload from %s %s: %v", method, path, err)
		}
	}
	return nil
}

// Package api is the REST client for the warehouse backend. All calls go
// through a transport that attaches the session's bearer token and ends the
// session on 401/403; see transport.go.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shahidulislam-dev/warehouse-console/internal/observability"
	"github.com/shahidulislam-dev/warehouse-console/internal/session"
)

// Options configures a Client.
type Options struct {
	BaseURL string
	Session *session.Store
	Logger  *zap.Logger
	Metrics *observability.Metrics
	Timeout time.Duration
	// OnSessionInvalid runs after a 401/403 response has cleared the
	// session. Optional.
	OnSessionInvalid SessionInvalidHandler
	// Transport overrides the underlying round tripper. Used by tests.
	Transport http.RoundTripper
}

// Client talks to the warehouse backend.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

// New builds a client. Session is required: even unauthenticated endpoints
// route through the session-aware transport.
func New(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		logger:  logger,
		httpc: &http.Client{
			Timeout: opts.Timeout,
			Transport: &authTransport{
				base:      base,
				session:   opts.Session,
				logger:    logger,
				metrics:   opts.Metrics,
				onInvalid: opts.OnSessionInvalid,
			},
		},
	}
}

// do performs one call. body is JSON-encoded when non-nil. out receives the
// response: a *string captures the raw body (several endpoints answer plain
// text), anything else is decoded from JSON, nil discards it. Non-2xx
// statuses come back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	switch target := out.(type) {
	case nil:
		return nil
	case *string:
		*target = strings.TrimSpace(string(data))
		return nil
	default:
		if len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, target); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
}

// errorMessage digs a human-readable message out of an error body, which the
// backend sends either as plain text or as {"message": ...} / {"error":
// {"message": ...}}.
func errorMessage(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var wrapped struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		if wrapped.Message != "" {
			return wrapped.Message
		}
		if wrapped.Error.Message != "" {
			return wrapped.Error.Message
		}
	}
	return strings.TrimSpace(string(data))
}

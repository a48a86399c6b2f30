// Package client implements the HTTP resource client for the NoteHub
// service: request building, auth, envelope decoding, and the paginated
// fetch loop layered on top of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/notehubapp/notehub-mcp/pkg/dto"
)

// Client executes requests against the NoteHub REST API. It is safe for
// sequential reuse; the adapter never issues calls concurrently.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
	debug      bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithDebug enables request/response diagnostics. Observability only; it
// never changes what a call returns.
func WithDebug(debug bool) Option {
	return func(c *Client) { c.debug = debug }
}

// New creates a Client for the given base URL and bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Query holds list-filter parameters. Only non-empty values are encoded.
type Query map[string]string

// envelope is the uniform response wrapper the service returns.
type envelope[T any] struct {
	Success bool            `json:"success"`
	Data    T               `json:"data"`
	Error   *Error          `json:"error,omitempty"`
	Meta    *dto.Pagination `json:"meta,omitempty"`
}

// Do executes a single request and decodes the response envelope into T.
// Remote error envelopes come back as *Error unchanged; a non-2xx
// response without one becomes an HttpError and a transport fault a
// NetworkError. A package-level function because Go methods cannot carry
// type parameters.
func Do[T any](ctx context.Context, c *Client, method, path string, body any, query Query) (T, *dto.Pagination, error) {
	var zero T

	reqURL, err := c.buildURL(path, query)
	if err != nil {
		return zero, nil, &Error{Code: CodeMalformedRequest, Message: err.Error()}
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return zero, nil, &Error{Code: CodeMalformedRequest, Message: fmt.Sprintf("failed to encode request body: %v", err)}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return zero, nil, &Error{Code: CodeMalformedRequest, Message: err.Error()}
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.debug {
			c.logger.Debug("request failed",
				zap.String("method", method),
				zap.String("path", path),
				zap.Error(err))
		}
		return zero, nil, &Error{Code: CodeNetworkError, Message: fmt.Sprintf("request to %s failed: %v", path, err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, nil, &Error{Code: CodeNetworkError, Message: fmt.Sprintf("failed to read response from %s: %v", path, err)}
	}

	if c.debug {
		c.logger.Debug("request completed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)),
			zap.Int("bytes", len(respBody)))
	}

	var env envelope[T]
	decodeErr := json.Unmarshal(respBody, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Pass the service's own error envelope through when it sent one.
		if decodeErr == nil && env.Error != nil {
			return zero, nil, env.Error
		}
		return zero, nil, &Error{
			Code:    CodeHTTPError,
			Message: fmt.Sprintf("HTTP %d %s for %s %s", resp.StatusCode, http.StatusText(resp.StatusCode), method, path),
		}
	}

	if decodeErr != nil {
		return zero, nil, &Error{Code: CodeHTTPError, Message: fmt.Sprintf("failed to decode response from %s: %v", path, decodeErr)}
	}

	if env.Error != nil {
		return zero, nil, env.Error
	}

	return env.Data, env.Meta, nil
}

func (c *Client) buildURL(path string, query Query) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	parsed, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", err
	}

	if len(query) > 0 {
		values := url.Values{}
		for key, value := range query {
			if value == "" {
				continue
			}
			values.Set(key, value)
		}
		parsed.RawQuery = values.Encode()
	}

	return parsed.String(), nil
}

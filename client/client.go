// Package client provides a small Go client for the aperture API along
// with view-state primitives mirroring the frontend behavior: a keyed
// resource store, carousel index arithmetic, and a lightbox.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// Client is a thin HTTP wrapper around the aperture REST API. All
// requests are rooted at <baseURL>/api. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken sets the bearer token used for admin endpoints.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates a Client for the given base URL, e.g. "https://example.com".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api",
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetToken replaces the bearer token, typically after a login call.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
}

func (c *Client) bearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

// APIError is the decoded error envelope of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}

		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token := c.bearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "performing request")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var envelope errorEnvelope
		_ = json.NewDecoder(res.Body).Decode(&envelope)

		message := envelope.Error
		if message == "" {
			message = envelope.Message
		}
		if message == "" {
			message = http.StatusText(res.StatusCode)
		}

		return &APIError{StatusCode: res.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decoding response body")
	}

	return nil
}

// Get performs a GET request and decodes the data envelope into T.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var envelope dataEnvelope[T]
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		var zero T

		return zero, err
	}

	return envelope.Data, nil
}

// Post performs a POST request with a JSON body and decodes the data
// envelope into T.
func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var envelope dataEnvelope[T]
	if err := c.do(ctx, http.MethodPost, path, body, &envelope); err != nil {
		var zero T

		return zero, err
	}

	return envelope.Data, nil
}

// Put performs a PUT request with a JSON body and decodes the data
// envelope into T.
func Put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var envelope dataEnvelope[T]
	if err := c.do(ctx, http.MethodPut, path, body, &envelope); err != nil {
		var zero T

		return zero, err
	}

	return envelope.Data, nil
}

// Delete performs a DELETE request, discarding any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

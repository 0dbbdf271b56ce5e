package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer credential for outgoing requests.
// An empty token means "send the request unauthenticated".
type TokenSource interface {
	Token() string
}

// Client is a thin REST transport over the remote storefront API.
// It attaches the bearer credential to every request, stamps request
// IDs, and turns 401 responses into a global invalidation signal.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
	log            *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. Timeout and retry
// behavior are inherited from it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTokenSource sets the bearer credential source.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithOnUnauthorized sets the hook fired when any response comes back
// 401. The hook runs before the caller sees the error, exactly once
// per response, regardless of how the caller handles the failure.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// WithLogger sets the transport logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Client for the given API base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs a JSON-flavored request: body (if any) is marshaled as
// JSON and a 2xx response body is decoded into out (if non-nil).
//
// Content negotiation stays with the transport when there is no body,
// so GETs and body-less POSTs carry no content type at all.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := c.newRequest(ctx, method, path, reader, contentType)
	if err != nil {
		return err
	}
	return c.send(req, out)
}

// newRequest builds a request with the shared headers: request ID,
// Accept, and the bearer credential when one is present. No
// Authorization header is sent at all for anonymous requests.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// send executes the request and interprets the response. Transport
// failures propagate wrapped but otherwise untouched; feature code
// owns messaging for those.
func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		apiErr := decodeAPIError(resp)
		// Global invalidation fires unconditionally; the caller still
		// receives the error for its own bookkeeping.
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return errors.Join(ErrUnauthorized, apiErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrDecodeFailed, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err))
	}
	return nil
}

// decodeAPIError builds an *APIError from a non-2xx response,
// tolerating bodies that are not the structured error shape.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(data) == 0 {
		return apiErr
	}
	if err := json.Unmarshal(data, apiErr); err != nil {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	return apiErr
}

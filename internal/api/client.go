// Package api is the REST client for the PortHealth backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/porthealth/porthealth-desktop/internal/logging"
)

const (
	// DefaultTimeout bounds every request when no timeout is configured
	DefaultTimeout = 30 * time.Second

	DefaultUserAgent = "PortHealth-Desktop/1.0"

	// RequestIDHeader correlates client and server logs
	RequestIDHeader = "X-Request-ID"

	maxBodySize = 4 << 20
)

// Client talks to the backend over HTTP. It is safe for concurrent use.
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	token      string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	logger     *logging.Logger
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(agent string) ClientOption {
	return func(c *Client) {
		c.userAgent = agent
	}
}

// NewClient creates a client for the backend at baseURL (e.g. "http://localhost:4000").
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  DefaultUserAgent,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		logger:     logging.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetBaseURL points the client at another backend
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	c.baseURL = strings.TrimRight(baseURL, "/")
	c.mu.Unlock()
}

// BaseURL returns the backend URL
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetTimeout changes the per-request timeout; non-positive values are ignored.
// Requests already in flight keep the timeout they started with.
func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	c.mu.Lock()
	c.timeout = timeout
	c.mu.Unlock()
}

// Timeout returns the per-request timeout
func (c *Client) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timeout
}

// SetToken stores the bearer token sent with every request. Empty clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type request struct {
	method   string
	path     string
	query    url.Values
	body     any
	fallback string
}

// do performs a single round trip and returns the body of a 2xx response.
// Other statuses become *Error, transport failures *NetworkError.
func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	c.mu.RLock()
	endpoint := c.baseURL + r.path
	token := c.token
	timeout := c.timeout
	c.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var reader io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("api: marshal %s %s: %w", r.method, r.path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("api: create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := c.logger.With("method", r.method, "path", r.path, "request_id", requestID)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", "error", err)
		return nil, &NetworkError{Op: r.method + " " + r.path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Warn("read response failed", "status", resp.StatusCode, "error", err)
		return nil, &NetworkError{Op: r.method + " " + r.path, Err: err}
	}

	log.Debug("request completed", "status", resp.StatusCode, "duration_ms", time.Since(started).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			Status:    resp.StatusCode,
			Message:   errorBody(body, r.fallback),
			RequestID: requestID,
		}
		log.Info("request rejected", "status", resp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}

	return body, nil
}

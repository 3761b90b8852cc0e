// Package backend talks to the remote training service. It exposes the
// group/drill and preferences endpoints over a single rate-limited request
// primitive with an optional transport-level debounce that suppresses
// literal duplicate requests (double-tap submits).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	// DefaultRateLimit is requests per minute against the backend.
	DefaultRateLimit = 60

	// DefaultDebounceWindow is how long an identical request is suppressed.
	DefaultDebounceWindow = 2 * time.Second

	defaultTimeout = 15 * time.Second
)

// Config holds backend client settings.
type Config struct {
	BaseURL string
	Token   string

	// RateLimit is requests per minute (0 means DefaultRateLimit).
	RateLimit int

	// HTTPClient overrides the constructed client, mainly for tests.
	HTTPClient *http.Client
}

// Client wraps the backend API with rate limiting and duplicate suppression.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *rate.Limiter

	mu       sync.Mutex
	lastSent map[string]time.Time
}

// New creates a backend client. With a token, requests carry a bearer
// Authorization header via oauth2.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		if cfg.Token != "" {
			src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
			httpClient = oauth2.NewClient(context.Background(), src)
		} else {
			httpClient = &http.Client{}
		}
		httpClient.Timeout = defaultTimeout
	}

	rpm := cfg.RateLimit
	if rpm <= 0 {
		rpm = DefaultRateLimit
	}
	limiter := rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 5)

	return &Client{
		http:     httpClient,
		baseURL:  cfg.BaseURL,
		limiter:  limiter,
		lastSent: make(map[string]time.Time),
	}
}

type requestOptions struct {
	debounceKey    string
	debounceWindow time.Duration
}

// RequestOption customizes a single request.
type RequestOption func(*requestOptions)

// WithDebounce suppresses the request if an identical one (same key) was
// sent within the window. A zero window uses DefaultDebounceWindow.
func WithDebounce(key string, window time.Duration) RequestOption {
	return func(o *requestOptions) {
		o.debounceKey = key
		o.debounceWindow = window
	}
}

// do performs one request against the backend. The body is JSON-encoded when
// non-nil and the response is decoded into out when non-nil. Returns the
// HTTP status code alongside any error.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, opts ...RequestOption) (int, error) {
	var options requestOptions
	for _, opt := range opts {
		opt(&options)
	}

	if options.debounceKey != "" {
		window := options.debounceWindow
		if window <= 0 {
			window = DefaultDebounceWindow
		}
		c.mu.Lock()
		if last, ok := c.lastSent[options.debounceKey]; ok && time.Since(last) < window {
			c.mu.Unlock()
			return 0, ErrDebounced
		}
		c.lastSent[options.debounceKey] = time.Now()
		c.mu.Unlock()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit wait: %w", err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &APIError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}

// readErrorMessage extracts a message from an error response body, if any.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return string(data)
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Header names the service reads credentials from.
const (
	HeaderAPIKey  = "apiKey"
	HeaderProject = "project"
)

// Client is a JSON-over-HTTP client for the Visual Regression Tracker API.
type Client struct {
	baseURL    string
	apiKey     string
	project    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the Client during construction.
type Option func(*clientConfig) error

type clientConfig struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
}

// New creates a new Client for the service at baseURL.
// The apiKey and project are sent as headers on every request.
func New(baseURL, apiKey, project string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("api: baseURL is required")
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("api: parse baseURL: %w", err)
	}

	cfg := &clientConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.timeout > 0 {
		httpClient.Timeout = cfg.timeout
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		project:    project,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) error {
		if c == nil {
			return fmt.Errorf("api: nil http client")
		}
		cfg.httpClient = c
		return nil
	}
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *clientConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithTimeout sets a timeout on the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) error {
		if d < 0 {
			return fmt.Errorf("api: negative timeout %s", d)
		}
		cfg.timeout = d
		return nil
	}
}

// BaseURL returns the service root with no trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// doJSON executes an HTTP request against path, encoding body (if non-nil)
// as JSON and decoding the response into dst (if non-nil).
// A non-2xx response is returned as an *APIError.
func (c *Client) doJSON(ctx context.Context, method, path, operation string, body, dst any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", operation, err)
	}
	req.Header.Set(HeaderAPIKey, c.apiKey)
	if c.project != "" {
		req.Header.Set(HeaderProject, c.project)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.InfoContext(ctx, "API request", "operation", operation, "method", method, "url", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: do request: %w", operation, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "API response", "operation", operation, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return parseAPIError(operation, resp.StatusCode, resp.Status, respBody)
	}

	if dst == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%s: decode response: %w", operation, err)
	}
	return nil
}

package elastic

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
	"github.com/custodia-labs/docsindex/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchIndex = (*Client)(nil)

// Default configuration values.
const (
	DefaultTimeout        = 30 * time.Second
	DefaultRetryBaseDelay = 500 * time.Millisecond
)

// Config holds configuration for the HTTP index client.
type Config struct {
	// URL is the base URL of the cluster, e.g. http://localhost:9200.
	URL string

	// APIKey is sent as "Authorization: ApiKey <key>" when set.
	APIKey string

	// Username and Password enable basic auth when APIKey is empty.
	Username string
	Password string

	// Timeout bounds each request (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond throttles requests. Zero disables throttling.
	RequestsPerSecond float64

	// MaxRetries is the number of extra attempts for transient failures.
	MaxRetries int

	// RetryBaseDelay is the first backoff delay; it doubles per attempt.
	RetryBaseDelay time.Duration

	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
}

// Client talks to an Elasticsearch-compatible cluster.
type Client struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	username   string
	password   string
	limiter    *rate.Limiter
	maxRetries int
	baseDelay  time.Duration
}

// NewClient creates a new HTTP index client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: index url is required", domain.ErrInvalidInput)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryBaseDelay == 0 {
		cfg.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		client:     client,
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		username:   cfg.Username,
		password:   cfg.Password,
		limiter:    limiter,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.RetryBaseDelay,
	}, nil
}

// response is a fully read HTTP response.
type response struct {
	status int
	body   []byte
}

// statusError reports an unexpected HTTP status.
type statusError struct {
	method string
	path   string
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s %s (status %d): %s", e.method, e.path, e.status, e.body)
}

// retryable reports whether the status is worth another attempt.
func (e *statusError) retryable() bool {
	return e.status == http.StatusTooManyRequests || e.status >= http.StatusInternalServerError
}

// do sends a request, retrying transient failures. Statuses listed in ok are
// returned to the caller; anything else becomes an error.
func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte, ok ...int) (*response, error) {
	var resp *response
	err := retryWithBackoff(ctx, c.maxRetries+1, c.baseDelay, func() error {
		var err error
		resp, err = c.send(ctx, method, path, contentType, body)
		if err != nil {
			return err
		}
		for _, code := range ok {
			if resp.status == code {
				return nil
			}
		}
		return &statusError{method: method, path: path, status: resp.status, body: string(resp.body)}
	})
	if err != nil {
		var se *statusError
		switch {
		case errors.As(err, &se) && !se.retryable():
			return nil, err
		case ctx.Err() != nil:
			return nil, err
		default:
			return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
		}
	}
	return resp, nil
}

// send performs a single throttled request.
func (c *Client) send(ctx context.Context, method, path, contentType string, body []byte) (*response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, permanent(err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, permanent(fmt.Errorf("create request: %w", err))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	logger.Debug("index request: %s %s", method, path)
	httpResp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, permanent(ctx.Err())
		}
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return &response{status: httpResp.StatusCode, body: data}, nil
}

func (c *Client) authorize(req *http.Request) {
	switch {
	case c.apiKey != "":
		req.Header.Set("Authorization", "ApiKey "+c.apiKey)
	case c.username != "":
		req.SetBasicAuth(c.username, c.password)
	}
}

// Ping checks that the cluster is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.do(ctx, http.MethodGet, "/", "", nil, http.StatusOK); err != nil {
		return fmt.Errorf("index ping: %w", err)
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

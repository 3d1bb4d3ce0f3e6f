// Package fetch is the HTTP layer under the request aggregator: a single
// JSON GET plus a bounded concurrent fan-out. Every leaf reports its own
// outcome; one bad response never aborts the others.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultUserAgent = "dugout/1.0 (+github.com/fortuna/dugout)"

// Status classifies a fetch outcome.
type Status int

const (
	StatusOK Status = iota
	StatusHTTPError
	StatusDecodeError
	StatusTimeout
	StatusNetwork
)

// Result is the outcome of one GET. Exactly one of Doc or Err is
// meaningful: Doc when Status == StatusOK, Err otherwise.
type Result struct {
	URL        string
	Status     Status
	HTTPStatus int
	Doc        map[string]any
	Err        error
}

// OK reports whether the fetch produced a decoded document.
func (r Result) OK() bool { return r.Status == StatusOK }

// HTTPError is a non-2xx upstream response.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned %d for %s", e.StatusCode, e.URL)
}

// DecodeError is a JSON parse failure on a 2xx body. Non-retryable.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Client wraps an http.Client for JSON GETs against the upstream service.
type Client struct {
	http           *http.Client
	userAgent      string
	timeout        time.Duration
	maxConcurrency int64
	retries        int
	retryTimeout   bool
	retry5xx       bool
	limiter        *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout (default 30s).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithMaxConcurrency caps concurrent requests inside GetMany (default 8).
func WithMaxConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxConcurrency = int64(n)
		}
	}
}

// WithRetries sets the retry count for GetMany leaves (default 0).
// Retries apply only to timeouts and 5xx responses unless narrowed by
// WithRetryOn.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithRetryOn narrows which failures are retried.
func WithRetryOn(timeout, http5xx bool) Option {
	return func(c *Client) {
		c.retryTimeout = timeout
		c.retry5xx = http5xx
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRateLimit throttles outgoing requests to rps per second across both
// GetOne and GetMany. Zero disables the limiter.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithHTTPClient swaps the underlying transport (tests, proxies).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient builds a fetch client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:           &http.Client{},
		userAgent:      defaultUserAgent,
		timeout:        30 * time.Second,
		maxConcurrency: 8,
		retryTimeout:   true,
		retry5xx:       true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOne executes a single GET and decodes the body as JSON. No retries
// happen at this layer.
func (c *Client) GetOne(ctx context.Context, url string) Result {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Result{URL: url, Status: StatusNetwork, Err: err}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{URL: url, Status: StatusNetwork, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{URL: url, Status: classifyTransport(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return Result{
			URL:        url,
			Status:     StatusHTTPError,
			HTTPStatus: resp.StatusCode,
			Err:        &HTTPError{StatusCode: resp.StatusCode, URL: url},
		}
	}

	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return Result{URL: url, Status: StatusDecodeError, Err: &DecodeError{URL: url, Err: err}}
	}
	return Result{URL: url, Status: StatusOK, HTTPStatus: resp.StatusCode, Doc: doc}
}

func classifyTransport(err error) Status {
	if errors.Is(err, context.DeadlineExceeded) {
		return StatusTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return StatusTimeout
	}
	return StatusNetwork
}

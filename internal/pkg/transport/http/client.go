// Package http builds the HTTP client used to reach the chain node. It wraps
// the retryablehttp.Client from HashiCorp and exposes functional options for
// the request timeout and transport-level retries.
//
// The timeout bounds every node request, so a stalled node can never block a
// caller indefinitely. Retries default to zero: the JSON-RPC layer above
// decides what a failure means.
package http

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/logger"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // maximum duration for a single HTTP request
	retryWaitMin time.Duration // minimum delay between retry attempts
	retryWaitMax time.Duration // maximum delay between retry attempts
	retryMax     int           // maximum number of retry attempts
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient creates a retryablehttp.Client configured with the provided
// options. Defaults:
//
//   - timeout:      15 seconds
//   - retryWaitMin: 500 milliseconds
//   - retryWaitMax: 2 seconds
//   - retryMax:     0 retries
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      15 * time.Second,
		retryWaitMin: 500 * time.Millisecond,
		retryWaitMax: 2 * time.Second,
		retryMax:     0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.RequestLogHook = logRetry
	return client
}

// NewStandardClient returns NewClient wrapped as a plain *http.Client, the
// form expected by go-ethereum's RPC dialer.
func NewStandardClient(opts ...Option) *http.Client {
	return NewClient(opts...).StandardClient()
}

// logRetry records every retried request. The first attempt is not logged.
func logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 {
		return
	}

	logger.Warn(req.Context(), "retrying node request",
		"http.url", req.URL.Redacted(),
		"http.attempt", attempt,
	)
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

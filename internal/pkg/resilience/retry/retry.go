// Package retry runs startup readiness checks (node reachability, storage
// pings) with exponential backoff. It wraps the retry-go package from Avast
// behind a small interface configured with functional options.
//
// Chain submissions never go through this package: a failed submission is
// reported to the caller after a single attempt.
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithDelay(500*time.Millisecond),
//	)
//	err := r.Execute(ctx, func() error {
//	    return rdb.Ping(ctx).Err()
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, the attempts run out, or
// the context is done.
type Retry interface {
	// Execute runs operation with the configured backoff. It returns nil on
	// the first success, otherwise the last error (or every error when
	// WithLastErrorOnly(false) is set), or the context error.
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is invoked after each failed attempt, before waiting.
type OnRetryFunc func(attempt uint, err error)

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // maximum number of attempts
	delay       time.Duration // base delay between attempts
	maxDelay    time.Duration // maximum delay between attempts
	lastErrOnly bool          // whether to return only the last error
	onRetry     OnRetryFunc   // called after each failed attempt
}

// Option configures the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New creates a Retry with the given options applied over the defaults:
// 3 attempts, 1s base delay, 5s maximum delay, last error only.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		onRetry:     func(uint, error) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface. The first attempt runs
// immediately; later ones wait with exponential backoff.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)),
		retry.Context(ctx),
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts, including the first one.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether only the error of the final attempt is returned.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers a callback invoked after each failed attempt.
func WithOnRetry(f OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = f
	}
}

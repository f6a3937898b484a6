// Package chflow provides context-aware helpers for channel hand-offs. They
// back the single-consumer queues of the service, where a caller must stop
// waiting as soon as its request context is done.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done. The boolean is
// false when ctx ended first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data on ch unless ctx is done first. It reports whether the
// value was delivered.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Request sends req on ch and waits for the value delivered on reply. Both
// legs stop when ctx is done; the error is then ctx.Err().
func Request[Req, Res any](ctx context.Context, ch chan<- Req, req Req, reply <-chan Res) (Res, error) {
	var zero Res
	if !Send(ctx, ch, req) {
		return zero, ctx.Err()
	}

	res, ok := Receive(ctx, reply)
	if !ok {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, context.Canceled
	}

	return res, nil
}

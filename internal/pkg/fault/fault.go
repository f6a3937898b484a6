// Package fault defines the error kinds shared across the service.
//
// A kind is a sentinel error that callers match with errors.Is. Wrap attaches
// a kind to an underlying error without altering its message, so node and
// storage messages reach callers verbatim while still being classifiable.
package fault

import "errors"

var (
	// ErrInvalidArgument marks malformed input rejected at the boundary.
	// Requests failing with this kind never reach storage or the chain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStorage marks a failure of the durable event store.
	ErrStorage = errors.New("storage error")

	// ErrChain marks a node, transport or contract-call failure.
	ErrChain = errors.New("chain error")

	// ErrConfig marks missing or invalid startup configuration.
	ErrConfig = errors.New("config error")
)

// Error couples an error kind with its cause.
type Error struct {
	Kind error // one of the Err* sentinels of this package
	Err  error // underlying cause, reported verbatim
}

// Error returns the message of the underlying cause.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}

	return e.Err.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Wrap classifies err under kind. It returns nil when err is nil and returns
// err unchanged when it is already classified under the same kind.
func Wrap(kind, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, kind) {
		return err
	}

	return &Error{Kind: kind, Err: err}
}

// Kind reports which of the package kinds err belongs to, or nil when it is
// unclassified.
func Kind(err error) error {
	for _, kind := range []error{ErrInvalidArgument, ErrStorage, ErrChain, ErrConfig} {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}

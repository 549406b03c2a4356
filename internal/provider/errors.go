package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable covers transport failures and unexpected HTTP statuses.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrMalformedRecord means the provider answered but the payload could not be turned into products.
	ErrMalformedRecord = errors.New("malformed provider record")
)

// Error carries the identity of the provider that failed and the operation it was serving.
type Error struct {
	Provider string
	Op       string
	Status   int
	Err      error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: %v (HTTP %d)", e.Provider, e.Op, e.Err, e.Status)
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(provider, op string, status int, kind error, cause error) *Error {
	err := kind
	if cause != nil {
		err = fmt.Errorf("%w: %w", kind, cause)
	}
	return &Error{Provider: provider, Op: op, Status: status, Err: err}
}

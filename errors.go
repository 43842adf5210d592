package bucketcreds

import (
	"errors"
	"fmt"
)

// Error is a type that allows for the error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrInput - caller-supplied data failed a structural rule. Recoverable by
	// the caller resubmitting corrected input; never retried by the system.
	ErrInput = Error("input error")

	// ErrAuthorization - the caller's scopes do not satisfy the required scope
	// expression. Surfaced verbatim, never retried.
	ErrAuthorization = Error("authorization error")

	// ErrUpstream - the credential-exchange call failed or timed out. Surfaced
	// as a server-side failure distinct from caller input errors.
	ErrUpstream = Error("upstream error")
)

// NewInputError returns an ErrInput-tagged error with a formatted message
func NewInputError(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInput, fmt.Sprintf(format, a...))
}

// NewAuthorizationError returns an ErrAuthorization-tagged error with a formatted message
func NewAuthorizationError(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrAuthorization, fmt.Sprintf(format, a...))
}

// WrapUpstreamError returns a wrapped exchange error
func WrapUpstreamError(err error) error {
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}

// ErrorKind returns the wire-level kind tag for an error produced by the
// pipeline, or "InternalError" for anything unrecognized.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInput):
		return "InputError"
	case errors.Is(err, ErrAuthorization):
		return "AuthorizationError"
	case errors.Is(err, ErrUpstream):
		return "UpstreamError"
	default:
		return "InternalError"
	}
}

package datasource

import (
	"errors"
	"fmt"
)

// ErrorKind classifies provider fetch failures
type ErrorKind int

const (
	// ErrNotFound means the provider did not recognize the requested city
	ErrNotFound ErrorKind = iota

	// ErrNetwork covers transport-level failures and request timeouts
	ErrNetwork

	// ErrMalformed means the response could not be parsed into the
	// required fields
	ErrMalformed
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrNotFound:
		return "not found"
	case ErrNetwork:
		return "network"
	case ErrMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// FetchError wraps a provider failure with its classification
type FetchError struct {
	Kind ErrorKind
	Op   string // the operation that failed, e.g. "fetch current"
	Err  error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf extracts the classification from err. Errors that did not
// originate in a provider call are treated as network failures.
func KindOf(err error) ErrorKind {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind
	}
	return ErrNetwork
}

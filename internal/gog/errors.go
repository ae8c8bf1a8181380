package gog

import (
	"errors"
	"fmt"
)

// Sentinel errors for GOG API operations.
var (
	// ErrConnectivity is returned when the API host cannot be reached.
	ErrConnectivity = errors.New("failed to connect")

	// ErrTimeout is returned when a request exceeds the configured timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrUnexpectedStatus is returned when the API answers with a status other than 200.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrInvalidResponse is returned when the response body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid API response")
)

// Op names the API call that failed.
type Op string

const (
	// OpSearch is the free-text product search.
	OpSearch Op = "product search"

	// OpInspect is the per-product download metadata lookup.
	OpInspect Op = "product inspection"
)

// APIError describes a failed call to the GOG API.
// Err is always one of the sentinel errors of this package.
type APIError struct {
	Op         Op
	StatusCode int
	Err        error
}

// Error returns the error message.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %v %d", e.Op, e.Err, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new APIError.
func NewAPIError(op Op, statusCode int, err error) *APIError {
	return &APIError{
		Op:         op,
		StatusCode: statusCode,
		Err:        err,
	}
}

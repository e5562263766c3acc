package client

import (
	"errors"
	"fmt"
)

// Errors returned by Client.GetPicture. Every failure wraps exactly one of
// them, so callers can tell the cases apart with errors.Is.
var (
	// ErrInvalidURL indicates the configured base URL cannot be parsed.
	ErrInvalidURL = errors.New("service URL cannot be created")
	// ErrRateLimit indicates the API key has no requests left.
	ErrRateLimit = errors.New("rate limit exceeded for this API key")
	// ErrIO indicates the request did not reach the server or the
	// response could not be read.
	ErrIO = errors.New("IO error encountered while performing request")
	// ErrRequestStatus indicates a non-2xx response, see StatusError.
	ErrRequestStatus = errors.New("request failed with invalid HTTP status code")
	// ErrDecode indicates the response body is not valid picture metadata.
	ErrDecode = errors.New("error while decoding response content")
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrRequestStatus, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrRequestStatus) hold for any status error.
func (e *StatusError) Is(target error) bool {
	return target == ErrRequestStatus
}

// wrap tags err with one of the sentinel kinds above.
func wrap(kind, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}

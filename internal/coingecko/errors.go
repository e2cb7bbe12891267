package coingecko

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when the API answers 200 with an empty result set.
	ErrNotFound = errors.New("cryptocurrency not found")
	// ErrRateLimited is wrapped by a StatusError for 429 responses.
	ErrRateLimited = errors.New("rate limited")
	// ErrUnauthorized is wrapped by a StatusError for 401 and 403 responses.
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError reports a non-200 response.
type StatusError struct {
	StatusCode int
	// Body holds at most the first 2KiB of the response body.
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}
	return nil
}

// RequestError reports a request that never produced an HTTP response.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *RequestError) Unwrap() error { return e.Err }

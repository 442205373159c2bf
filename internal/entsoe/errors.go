package entsoe

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingAPIKey is returned by NewClient when no key is supplied.
	ErrMissingAPIKey = errors.New("api key cannot be empty")

	// ErrUnauthorized is returned for HTTP 401 responses. The API key is
	// rejected, so neither retry nor failover can help.
	ErrUnauthorized = errors.New("unauthorized: please check your API key")

	// ErrAllEndpointsFailed wraps the last transport error once every
	// endpoint has exhausted its retries.
	ErrAllEndpointsFailed = errors.New("all endpoints failed")

	// ErrInvalidArchive is returned when a ZIP payload cannot be read or
	// contains no files.
	ErrInvalidArchive = errors.New("invalid zip archive")

	// ErrMalformedDocument is returned when a payload cannot be decoded
	// as a market document at all.
	ErrMalformedDocument = errors.New("malformed market document")
)

// StatusError reports a non-2xx response from the transparency platform.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from transparency platform", e.Code)
}

// IsNotPublished reports whether err is the HTTP 400 the platform answers
// with when nothing is published for the requested window. Callers treat it
// as "no data", not as a failure.
func IsNotPublished(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusBadRequest
}

// retryableStatus reports whether a response status is worth retrying on
// the same endpoint and, once retries are exhausted, failing over for.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

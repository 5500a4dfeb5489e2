package github

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidPayload is returned when a 2xx response body is not a JSON object
// of language name to non-negative byte count.
var ErrInvalidPayload = errors.New("invalid languages payload")

// FetchError is returned when the API answers with a non-success status.
type FetchError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Body is the (possibly truncated) response body.
	Body string

	// URL is the requested URL.
	URL string
}

// Error implements the error interface.
// The message has the form "failed to fetch languages: 404 Not Found {...}".
func (e *FetchError) Error() string {
	status := fmt.Sprintf("%d", e.StatusCode)
	if text := http.StatusText(e.StatusCode); text != "" {
		status += " " + text
	}
	if e.Body == "" {
		return "failed to fetch languages: " + status
	}
	return "failed to fetch languages: " + status + " " + e.Body
}

// IsNotFound reports whether the repository does not exist or is not visible
// with the supplied token.
func (e *FetchError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the token was rejected or is missing
// the required scope.
func (e *FetchError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

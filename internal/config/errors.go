package config

import (
	"errors"
	"fmt"
)

// Configuration errors.
// Callers match them with errors.Is; the concrete error returned by
// Validate and ParseRepository is always a *ConfigurationError.
var (
	// ErrNoRepository is returned when no repository identifier is configured.
	ErrNoRepository = errors.New("repository not set: expected OWNER/REPO (set GITHUB_REPOSITORY or use --repo)")

	// ErrInvalidRepository is returned when the repository identifier is not
	// exactly two non-empty parts separated by a single slash.
	ErrInvalidRepository = errors.New("invalid repository: expected OWNER/REPO")

	// ErrNoDocument is returned when the document path is empty.
	ErrNoDocument = errors.New("document path not set")

	// ErrInvalidMarkers is returned when the block markers are empty,
	// identical, or span more than one line.
	ErrInvalidMarkers = errors.New("invalid markers: start and end must be distinct single-line strings")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")

	// ErrInvalidProxyAddress is returned when the proxy address is not host:port.
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")

	// ErrInvalidAPIBaseURL is returned when the API base URL has no http(s) scheme.
	ErrInvalidAPIBaseURL = errors.New("invalid API URL: must start with http:// or https://")
)

// ConfigurationError reports a missing or malformed configuration input.
// It is terminal: the run stops before any network call is made.
type ConfigurationError struct {
	// Field names the offending setting (e.g., "repository").
	Field string

	// Value is the rejected value, if it is safe to print.
	Value string

	// Err is one of the sentinel errors above.
	Err error
}

// newConfigurationError creates a ConfigurationError.
func newConfigurationError(field, value string, err error) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Err: err}
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error: %v (got %q)", e.Err, e.Value)
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

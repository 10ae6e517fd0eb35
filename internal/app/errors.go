package app

import (
	"errors"
	"fmt"
)

// ConfigurationError signals invalid or missing startup configuration.
// It is fatal for the whole run.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// AuthenticationError is returned on http status 401. The token is invalid,
// so the whole operation must abort.
type AuthenticationError struct {
	Endpoint string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("invalid github token, endpoint %s", e.Endpoint)
}

// RateLimitError is returned on http status 403.
type RateLimitError struct {
	Endpoint string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded or insufficient permissions, endpoint %s", e.Endpoint)
}

// ResourceNotFoundError is returned on http status 404.
type ResourceNotFoundError struct {
	Endpoint string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Endpoint)
}

// APIError is returned for any other non-2xx http status.
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github api error %d, endpoint %s: %s", e.StatusCode, e.Endpoint, e.Body)
}

// DataNotFoundError signals that no snapshot has been collected for a
// developer yet. Distinct from a valid all-zero snapshot.
type DataNotFoundError struct {
	Username string
}

func (e *DataNotFoundError) Error() string {
	return fmt.Sprintf("no contribution data found for developer %s, run collection first", e.Username)
}

// InvalidDateFormatError signals a malformed since/until argument.
type InvalidDateFormatError struct {
	Value string
}

func (e *InvalidDateFormatError) Error() string {
	return fmt.Sprintf("invalid date format %q, use YYYY-MM-DD", e.Value)
}

// IsConfigurationError checks if given error is caused by invalid configuration.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsAuthenticationError checks if given error is caused by an invalid token.
func IsAuthenticationError(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

// IsRateLimitError checks if given error is caused by exceeding api rate limits.
func IsRateLimitError(err error) bool {
	var target *RateLimitError
	return errors.As(err, &target)
}

// IsResourceNotFoundError checks if given error is caused by a missing resource.
func IsResourceNotFoundError(err error) bool {
	var target *ResourceNotFoundError
	return errors.As(err, &target)
}

// IsDataNotFoundError checks if given error is caused by a missing snapshot.
func IsDataNotFoundError(err error) bool {
	var target *DataNotFoundError
	return errors.As(err, &target)
}

// IsInvalidDateFormatError checks if given error is caused by a malformed date argument.
func IsInvalidDateFormatError(err error) bool {
	var target *InvalidDateFormatError
	return errors.As(err, &target)
}

// AsAPIError extracts an APIError from err if present.
func AsAPIError(err error) (*APIError, bool) {
	var target *APIError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

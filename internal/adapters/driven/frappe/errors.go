package frappe

import (
	"errors"
	"fmt"
)

// Frappe-specific errors.
var (
	// ErrNoCredentials indicates the client was built without any
	// usable credential set.
	ErrNoCredentials = errors.New("frappe: no credentials configured")

	// ErrSessionExpired indicates the login session was rejected and a
	// new login is required.
	ErrSessionExpired = errors.New("frappe: session expired")
)

// APIError represents an ERPNext API error response. Its text carries a
// status-derived reason so the core error taxonomy can classify it by
// substring.
type APIError struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("frappe: %s: %s (%s %s, status %d)",
		e.reason(), e.Message, e.Method, e.Path, e.StatusCode)
}

func (e *APIError) reason() string {
	switch e.StatusCode {
	case 401:
		return "authentication failed"
	case 403:
		return "permission denied"
	case 404:
		return "resource not found"
	case 417:
		return "validation failed"
	default:
		return "request failed"
	}
}

// IsNotFound checks if the error indicates a missing document.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication
// failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}

// IsForbidden checks if the error indicates insufficient permissions.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 403
}

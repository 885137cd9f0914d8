package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes carried by OperationError and surfaced in error envelopes.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeNotFound       = "NOT_FOUND_ERROR"
	CodePermission     = "PERMISSION_ERROR"
	CodeGeneric        = "ERPNEXT_ERROR"
)

// OperationError is a classified failure of a domain operation. It is
// the only error type that crosses the tool boundary; anything else is
// converted via AsOperationError first.
type OperationError struct {
	Code    string
	Message string
	Details map[string]any
}

func (e *OperationError) Error() string { return e.Message }

// NewValidationError reports missing or rejected fields. Raised locally
// before any network call when required fields are absent.
func NewValidationError(message string) *OperationError {
	return &OperationError{Code: CodeValidation, Message: message}
}

// NewAuthenticationError reports rejected credentials.
func NewAuthenticationError(message string) *OperationError {
	return &OperationError{Code: CodeAuthentication, Message: message}
}

// NewNotFoundError reports a missing remote document.
func NewNotFoundError(message string) *OperationError {
	return &OperationError{Code: CodeNotFound, Message: message}
}

// NewPermissionError reports insufficient rights on the target document.
func NewPermissionError(message string) *OperationError {
	return &OperationError{Code: CodePermission, Message: message}
}

// NewOperationError wraps an unclassified failure.
func NewOperationError(message string) *OperationError {
	return &OperationError{Code: CodeGeneric, Message: message}
}

// ClassifyRemoteError converts a transport failure into the operation
// error taxonomy by scanning the error text for known substrings. The
// original exception text is preserved inside the message for
// diagnosis.
//
// Known limitation: this is a best-effort heuristic, not a structured
// protocol classification. A transport error whose message does not
// match the expected English substrings lands in the generic bucket.
func ClassifyRemoteError(err error) *OperationError {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "authentication") || strings.Contains(msg, "login"):
		return NewAuthenticationError(fmt.Sprintf("Authentication failed: %v", err))
	case strings.Contains(msg, "validation") || strings.Contains(msg, "invalid"):
		return NewValidationError(fmt.Sprintf("Validation error: %v", err))
	case strings.Contains(msg, "not found") || strings.Contains(msg, "does not exist"):
		return NewNotFoundError(fmt.Sprintf("Resource not found: %v", err))
	case strings.Contains(msg, "permission") || strings.Contains(msg, "not allowed"):
		return NewPermissionError(fmt.Sprintf("Permission denied: %v", err))
	default:
		return NewOperationError(fmt.Sprintf("ERPNext operation failed: %v", err))
	}
}

// AsOperationError returns err as an OperationError, classifying it if
// it is not one already.
func AsOperationError(err error) *OperationError {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr
	}
	return ClassifyRemoteError(err)
}

package domain

// OperationResult is the uniform envelope returned by every domain
// operation. On success: {success, message, data}. On failure:
// {success, error_code, message, details}. Constructed once and never
// mutated.
type OperationResult struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Data      any            `json:"data,omitempty"`
	ErrorCode string         `json:"error_code,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// Succeed wraps a payload in a success envelope with an
// operation-specific message.
func Succeed(data any, message string) *OperationResult {
	return &OperationResult{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Fail converts any error into an error envelope, classifying it
// through the operation error taxonomy first.
func Fail(err error) *OperationResult {
	opErr := AsOperationError(err)
	details := opErr.Details
	if details == nil {
		details = map[string]any{}
	}
	return &OperationResult{
		Success:   false,
		Message:   opErr.Message,
		ErrorCode: opErr.Code,
		Details:   details,
	}
}

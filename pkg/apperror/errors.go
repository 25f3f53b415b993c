package apperror

import "errors"

// Error codes used across the application
const (
	CodeNotFound         = "not_found"
	CodeValidation       = "validation"
	CodePasswordMismatch = "password_mismatch"
	CodeBadInput         = "bad_input"
	CodeStorage          = "storage"
)

// AppError represents an application error with a stable code
type AppError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound         = &AppError{Code: CodeNotFound, Message: "Resource not found"}
	ErrPasswordMismatch = &AppError{Code: CodePasswordMismatch, Message: "Incorrect password"}
)

// NewAppError creates a new application error
func NewAppError(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found"}
}

// NewBadInputError creates an error for malformed caller input
func NewBadInputError(message string) *AppError {
	return &AppError{Code: CodeBadInput, Message: message}
}

// NewStorageError wraps a storage failure. Storage errors are logged and
// tolerated by callers; the mutation simply did not happen.
func NewStorageError(message string) *AppError {
	return &AppError{Code: CodeStorage, Message: message}
}

// IsCode checks whether err is an AppError carrying the given code
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks whether err represents a missing resource
func IsNotFound(err error) bool {
	return IsCode(err, CodeNotFound)
}

// IsValidation checks whether err is a validation failure
func IsValidation(err error) bool {
	return IsCode(err, CodeValidation)
}

// IsPasswordMismatch checks whether err is a rejected password gate
func IsPasswordMismatch(err error) bool {
	return IsCode(err, CodePasswordMismatch)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: CodeStorage, Message: err.Error()}
}

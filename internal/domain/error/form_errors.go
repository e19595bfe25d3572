// Package error defines domain-specific errors for the financial education platform.
package error

import "errors"

// ErrUnknownForm is returned when validation is requested for a form that does not exist.
var ErrUnknownForm = errors.New("unknown form")

// FormErrorCode defines error codes for form validation errors.
type FormErrorCode string

const (
	ErrCodeUnknownForm FormErrorCode = "FRM-010001"
)

// FormError represents a form validation error with code and message.
type FormError struct {
	Code    FormErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FormError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FormError) Unwrap() error {
	return e.Err
}

// NewFormError creates a new FormError with the given code and message.
func NewFormError(code FormErrorCode, message string, err error) *FormError {
	return &FormError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

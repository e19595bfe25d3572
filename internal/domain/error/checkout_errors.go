// Package error defines domain-specific errors for the financial education platform.
package error

import "errors"

// Checkout domain errors.
var (
	// ErrInvalidCheckoutInput is returned when the payment form fails validation.
	ErrInvalidCheckoutInput = errors.New("invalid checkout input")

	// ErrCourseNotAvailable is returned when the course cannot be purchased.
	ErrCourseNotAvailable = errors.New("course is not available for purchase")

	// ErrAmountMismatch is returned when the paid amount differs from the course price.
	ErrAmountMismatch = errors.New("amount does not match course price")

	// ErrAlreadyEnrolled is returned when the user already has an active enrollment.
	ErrAlreadyEnrolled = errors.New("user already enrolled in course")
)

// CheckoutErrorCode defines error codes for checkout errors.
// Format: CHK-XXYYYY where XX is category and YYYY is specific error.
type CheckoutErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCheckoutInput CheckoutErrorCode = "CHK-010001"
	ErrCodeAmountMismatch       CheckoutErrorCode = "CHK-010002"

	// Course errors (02XXXX)
	ErrCodeCheckoutCourseNotFound CheckoutErrorCode = "CHK-020001"
	ErrCodeCourseNotAvailable     CheckoutErrorCode = "CHK-020002"
	ErrCodeAlreadyEnrolled        CheckoutErrorCode = "CHK-020003"
)

// CheckoutError represents a checkout error with code and message.
type CheckoutError struct {
	Code    CheckoutErrorCode
	Message string
	Fields  map[string]string
	Err     error
}

// Error implements the error interface.
func (e *CheckoutError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CheckoutError) Unwrap() error {
	return e.Err
}

// NewCheckoutError creates a new CheckoutError with the given code and message.
func NewCheckoutError(code CheckoutErrorCode, message string, err error) *CheckoutError {
	return &CheckoutError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewCheckoutValidationError creates a CheckoutError carrying field errors.
func NewCheckoutValidationError(fields map[string]string) *CheckoutError {
	return &CheckoutError{
		Code:    ErrCodeInvalidCheckoutInput,
		Message: "checkout input is invalid",
		Fields:  fields,
		Err:     ErrInvalidCheckoutInput,
	}
}

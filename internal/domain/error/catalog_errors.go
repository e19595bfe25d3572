// Package error defines domain-specific errors for the financial education platform.
package error

import "errors"

// Catalog domain errors.
var (
	// ErrCourseNotFound is returned when a course is not found in the catalog.
	ErrCourseNotFound = errors.New("course not found")

	// ErrInvalidCatalogFilter is returned when a category, level or status filter is unknown.
	ErrInvalidCatalogFilter = errors.New("invalid catalog filter")

	// ErrInvalidCatalogSeed is returned when the embedded catalog contains an unknown variant.
	ErrInvalidCatalogSeed = errors.New("invalid catalog seed")

	// ErrForbidden is returned when the user lacks the role required by an admin resource.
	ErrForbidden = errors.New("forbidden")
)

// CatalogErrorCode defines error codes for catalog and admin errors.
// Format: CAT-XXYYYY / ADM-XXYYYY where XX is category and YYYY is specific error.
type CatalogErrorCode string

const (
	ErrCodeCourseNotFound       CatalogErrorCode = "CAT-010001"
	ErrCodeInvalidCatalogFilter CatalogErrorCode = "CAT-010002"

	ErrCodeForbidden         CatalogErrorCode = "ADM-010001"
	ErrCodeInvalidUserFilter CatalogErrorCode = "ADM-010002"
)

// CatalogError represents a catalog or admin error with code and message.
type CatalogError struct {
	Code    CatalogErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new CatalogError with the given code and message.
func NewCatalogError(code CatalogErrorCode, message string, err error) *CatalogError {
	return &CatalogError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Package error defines domain-specific errors for the financial education platform.
package error

import "errors"

// Simulation domain errors.
var (
	// ErrSimulationNotFound is returned when a saved simulation does not exist.
	ErrSimulationNotFound = errors.New("simulation not found")

	// ErrInvalidSimulationInput is returned when the simulator form fails validation.
	ErrInvalidSimulationInput = errors.New("invalid simulation input")

	// ErrUnauthorizedSimulationAccess is returned when a user reads another user's simulation.
	ErrUnauthorizedSimulationAccess = errors.New("unauthorized access to simulation")

	// ErrInvalidSimulationKind is returned for an unknown simulator name.
	ErrInvalidSimulationKind = errors.New("invalid simulation kind")

	// ErrReportDeliveryFailed is returned when the simulation report e-mail cannot be sent.
	ErrReportDeliveryFailed = errors.New("failed to deliver simulation report")
)

// SimulationErrorCode defines error codes for simulation errors.
// Format: SIM-XXYYYY where XX is category and YYYY is specific error.
type SimulationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSimulationInput SimulationErrorCode = "SIM-010001"
	ErrCodeInvalidSimulationKind  SimulationErrorCode = "SIM-010002"
	ErrCodeMissingSimulationField SimulationErrorCode = "SIM-010003"

	// Access errors (02XXXX)
	ErrCodeSimulationNotFound           SimulationErrorCode = "SIM-020001"
	ErrCodeUnauthorizedSimulationAccess SimulationErrorCode = "SIM-020002"

	// Delivery errors (03XXXX)
	ErrCodeReportDeliveryFailed SimulationErrorCode = "SIM-030001"
)

// SimulationError represents a simulation error with code and message.
// Fields holds the per-field messages when the error comes from form validation.
type SimulationError struct {
	Code    SimulationErrorCode
	Message string
	Fields  map[string]string
	Err     error
}

// Error implements the error interface.
func (e *SimulationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SimulationError) Unwrap() error {
	return e.Err
}

// NewSimulationError creates a new SimulationError with the given code and message.
func NewSimulationError(code SimulationErrorCode, message string, err error) *SimulationError {
	return &SimulationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewSimulationValidationError creates a SimulationError carrying field errors.
func NewSimulationValidationError(fields map[string]string) *SimulationError {
	return &SimulationError{
		Code:    ErrCodeInvalidSimulationInput,
		Message: "simulation input is invalid",
		Fields:  fields,
		Err:     ErrInvalidSimulationInput,
	}
}

package md2html

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ValidationError represents a bad --src parameter
	ValidationError ErrorType = "validation_error"

	// IOError represents I/O-related errors
	IOError ErrorType = "io_error"

	// RenderError represents markdown rendering errors
	RenderError ErrorType = "render_error"

	// ConfigError represents configuration-related errors
	ConfigError ErrorType = "config_error"
)

// ExitBadParameter is the process exit status for a missing or invalid --src.
const ExitBadParameter = 9

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
	Code    string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap implements the error unwrapping interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Type:    ValidationError,
		Message: message,
		Err:     err,
		Code:    "VALID001",
	}
}

// NewIOError creates a new I/O error
func NewIOError(message string, err error) *AppError {
	return &AppError{
		Type:    IOError,
		Message: message,
		Err:     err,
		Code:    "IO001",
	}
}

// NewRenderError creates a new rendering error
func NewRenderError(message string, err error) *AppError {
	return &AppError{
		Type:    RenderError,
		Message: message,
		Err:     err,
		Code:    "RENDER001",
	}
}

// NewConfigError creates a new configuration error
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ConfigError,
		Message: message,
		Err:     err,
		Code:    "CONF001",
	}
}

// IsErrorType reports whether err wraps an AppError of the given type.
func IsErrorType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// ExitCode maps an error returned by the CLI to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if IsErrorType(err, ValidationError) {
		return ExitBadParameter
	}
	return 1
}

package app

import (
	"errors"
	"fmt"
)

// ErrCancelled signals that the user declined to continue. It is not a
// failure; the CLI maps it to a clean exit.
var ErrCancelled = errors.New("cancelled by user")

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates the request was rejected before any side
	// effects.
	ValidationFailed AppErrorType = iota
	// TargetConflict indicates the target path is already occupied.
	TargetConflict
	// GeneratorFailed indicates the external scaffolding generator failed.
	GeneratorFailed
	// PatchFailed indicates a post-generation file edit failed.
	PatchFailed
	// InstallFailed indicates the dependency install failed.
	InstallFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewTargetConflictError creates a target conflict error.
func NewTargetConflictError(message string, cause error) *AppError {
	return NewAppError(TargetConflict, message, cause)
}

// NewGeneratorError creates a generator error.
func NewGeneratorError(message string, cause error) *AppError {
	return NewAppError(GeneratorFailed, message, cause)
}

// NewPatchError creates a patch error.
func NewPatchError(message string, cause error) *AppError {
	return NewAppError(PatchFailed, message, cause)
}

// NewInstallError creates an install error.
func NewInstallError(message string, cause error) *AppError {
	return NewAppError(InstallFailed, message, cause)
}

package errors

import (
	"errors"
	"fmt"
)

// Error codes shared across the module.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeForbidden       = "FORBIDDEN"
	CodeInternal        = "INTERNAL"
	CodeUnavailable     = "UNAVAILABLE"
)

// AppError is the module's standard error shape.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError with an explicit code.
func New(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Wrap attaches a message to err under CodeInternal, preserving err as the cause.
func Wrap(err error, message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message, Err: err}
}

func NotFound(message string, err error) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, Err: err}
}

func Conflict(message string, err error) *AppError {
	return &AppError{Code: CodeConflict, Message: message, Err: err}
}

func InvalidArgument(message string, err error) *AppError {
	return &AppError{Code: CodeInvalidArgument, Message: message, Err: err}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{Code: CodeForbidden, Message: message, Err: err}
}

func Internal(message string, err error) *AppError {
	return &AppError{Code: CodeInternal, Message: message, Err: err}
}

// Unavailable marks a resource that is gone for good, such as a closed
// channel endpoint. Used by pkg/chanio's Disconnected/Closed sentinels.
func Unavailable(message string, err error) *AppError {
	return &AppError{Code: CodeUnavailable, Message: message, Err: err}
}

// As and Is re-export the standard library so callers only import this package.
var (
	As = errors.As
	Is = errors.Is
)

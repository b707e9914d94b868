package errors

import (
	"fmt"
	"time"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped error to errors.Is and errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_INTERNAL,
		Message:   "Internal error",
		Timestamp: time.Now(),
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		Code:      ErrorCode_INVALID_ARGUMENT,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func ErrInvalidConfig(err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_INVALID_CONFIG,
		Message:   "Invalid configuration",
		Timestamp: time.Now(),
	}
}

// Model Errors
func ErrModelUnavailable(model string, err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_MODEL_UNAVAILABLE,
		Message:   "Model temporarily unavailable",
		Timestamp: time.Now(),
	}.WithDetail("model", model)
}

func ErrClassificationFailed(err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_CLASSIFICATION_FAILED,
		Message:   "Text classification failed",
		Timestamp: time.Now(),
	}
}

func ErrExternalAPIFailed(service string, err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_EXTERNAL_API_FAILED,
		Message:   fmt.Sprintf("External API call failed: %s", service),
		Timestamp: time.Now(),
	}
}

// IO Errors
func ErrInputUnreadable(path string, err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_INPUT_UNREADABLE,
		Message:   "Input transcript could not be read",
		Timestamp: time.Now(),
	}.WithDetail("path", path)
}

func ErrOutputWriteFailed(path string, err error) AppError {
	return AppError{
		Raw:       err,
		Code:      ErrorCode_OUTPUT_WRITE_FAILED,
		Message:   "Report could not be written",
		Timestamp: time.Now(),
	}.WithDetail("path", path)
}

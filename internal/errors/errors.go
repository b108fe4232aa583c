package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorType classifies where an error came from, which decides how it is
// surfaced to the user.
type ErrorType string

const (
	// ErrorTypeValidation is a local input failure. Never reaches the network.
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeNetwork means no response was received from the backend.
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeServer means the backend responded with an error status.
	ErrorTypeServer ErrorType = "server"
	// ErrorTypeStorage is a local persistent storage failure.
	ErrorTypeStorage ErrorType = "storage"
	// ErrorTypeInternal is everything else.
	ErrorTypeInternal ErrorType = "internal"
)

// AppError is an application error with enough context to pick the right
// user-facing message.
type AppError struct {
	Type     ErrorType
	Code     string
	Status   int // HTTP status for ErrorTypeServer, zero otherwise
	Message  string
	Internal error
	Source   string
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// Is matches AppErrors on type and code, so predefined errors work with
// errors.Is even after being rebuilt with a different message.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return errors.Is(e.Internal, target)
}

// New creates a new AppError.
func New(errorType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Source:  caller(),
	}
}

// Wrap wraps an existing error into an AppError.
func Wrap(err error, errorType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:     errorType,
		Code:     code,
		Message:  message,
		Internal: err,
		Source:   caller(),
	}
}

func caller() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d", file, line)
}

// NewValidationError reports a local input failure.
func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, "VALIDATION", message)
}

// NewNetworkError reports that the backend could not be reached at all.
// The message tells the user which base URL was tried.
func NewNetworkError(err error, baseURL string) *AppError {
	return Wrap(err, ErrorTypeNetwork, "UNREACHABLE",
		fmt.Sprintf("Cannot connect to server. Please ensure the backend is running on %s", baseURL))
}

// NewServerError reports a response carrying an error status.
func NewServerError(status int, message string) *AppError {
	e := New(ErrorTypeServer, "SERVER", message)
	e.Status = status
	return e
}

// NewStorageError reports a local persistent storage failure.
func NewStorageError(err error) *AppError {
	return Wrap(err, ErrorTypeStorage, "STORAGE", "Local storage operation failed")
}

// Predefined errors
var (
	// ErrRequestInFlight rejects a submit while a previous request for the
	// same workflow is still outstanding.
	ErrRequestInFlight = New(ErrorTypeValidation, "IN_FLIGHT", "A request is already in progress, please wait")
	// ErrCorruptState marks unparseable persisted session data. The store
	// discards it and falls back to logged out.
	ErrCorruptState = New(ErrorTypeStorage, "CORRUPT_STATE", "Persisted session data is corrupt")
)

// LogFields returns structured logging fields for the error.
func (e *AppError) LogFields() []any {
	fields := []any{
		"error_type", e.Type,
		"error_code", e.Code,
		"error_message", e.Message,
		"source", e.Source,
	}
	if e.Status != 0 {
		fields = append(fields, "status", e.Status)
	}
	if e.Internal != nil {
		fields = append(fields, "internal_error", e.Internal.Error())
	}
	return fields
}

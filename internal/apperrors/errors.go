package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource is in a state that does not allow the operation.
var ErrConflict = errors.New("conflict")

// ErrUnauthenticated indicates that no usable bearer token is available.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrBackend indicates the ERP backend rejected or failed a request.
var ErrBackend = errors.New("backend error")

// AppError carries an HTTP-ish status code and a user facing message alongside the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// BackendError is a failed ERP backend call. Message is the server's own message, if any.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", ErrBackend.Error(), e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrBackend.Error(), e.StatusCode, e.Message)
}

func (e *BackendError) Unwrap() error {
	return ErrBackend
}

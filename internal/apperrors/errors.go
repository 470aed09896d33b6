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

// ErrSessionAlreadyOpen is returned when a cash session is opened while another one is still open.
var ErrSessionAlreadyOpen = errors.New("a cash session is already open")

// ErrSessionClosed is returned when a closed cash session is mutated.
var ErrSessionClosed = errors.New("cash session is closed")

// ErrReferenced indicates a delete of a resource that other records still point to.
var ErrReferenced = errors.New("resource is still referenced")

// ErrUnknownEvent indicates an event type the engine cannot apply or decode.
var ErrUnknownEvent = errors.New("unknown event type")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
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

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

// ErrForbidden indicates that the acting user lacks the capability required
// for the operation. Distinct from ErrInvalidTransition so callers can render
// "not allowed" separately from "not possible right now".
var ErrForbidden = errors.New("operation not permitted for user")

// ErrConflict indicates a concurrent modification race; the caller should
// re-read the resource and retry.
var ErrConflict = errors.New("resource was modified concurrently")

// ErrStorage indicates a blob store failure. The underlying cause is wrapped.
var ErrStorage = errors.New("storage error")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrInvalidTransition is the sentinel all InvalidTransitionError values match.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a document status transition that is not in
// the lifecycle table. It carries both states so callers can explain why.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// Is makes errors.Is(err, ErrInvalidTransition) work for wrapped values.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// NewInvalidTransitionError builds an InvalidTransitionError for the given pair.
func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

// AppError wraps lower-level failures (database, blob store) with a message
// and an HTTP-ish code, preserving the cause for errors.Is/As.
type AppError struct {
	Code    int
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates an AppError wrapping cause.
func NewAppError(code int, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each failure category. Concrete error values wrap one of
// these, so callers can classify with errors.Is without inspecting types.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrObjectNotFound    = errors.New("object not found")
	ErrStateConflict     = errors.New("state conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotification      = errors.New("notification failed")
)

// sanitize removes line breaks from interpolated values so a single error
// always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value is malformed or outside
// its legal domain.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that an object with the given identifier does
// not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given
// parameter name and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), e.ID, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// StateConflictError indicates that an operation is not allowed for the
// current status of an order. The caller must re-fetch current state before
// retrying.
type StateConflictError struct {
	Operation string
	Status    string
	Cause     error
}

// NewStateConflictError creates a StateConflictError for the given operation
// and current status.
func NewStateConflictError(operation string, status string) *StateConflictError {
	return &StateConflictError{Operation: operation, Status: status}
}

// NewStateConflictErrorWithCause creates a StateConflictError wrapping an
// underlying cause.
func NewStateConflictErrorWithCause(operation string, status string, cause error) *StateConflictError {
	return &StateConflictError{Operation: operation, Status: status, Cause: cause}
}

func (e *StateConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is not allowed while order is %s (cause: %s)",
			ErrStateConflict, sanitize(e.Operation), sanitize(e.Status), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s is not allowed while order is %s",
		ErrStateConflict, sanitize(e.Operation), sanitize(e.Status))
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// InvalidTransitionError indicates that a requested status change is not in
// the legal transition table.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// source and target statuses.
func NewInvalidTransitionError(from string, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError
// wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from string, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (cause: %s)",
			ErrInvalidTransition, sanitize(e.From), sanitize(e.To), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, sanitize(e.From), sanitize(e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NotificationError indicates that a best-effort notification could not be
// delivered. It is logged by the dispatcher and never propagated to the
// operation that triggered the notification.
type NotificationError struct {
	Kind  string
	Cause error
}

// NewNotificationError creates a NotificationError for the given notification
// kind wrapping the delivery failure.
func NewNotificationError(kind string, cause error) *NotificationError {
	return &NotificationError{Kind: kind, Cause: cause}
}

func (e *NotificationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrNotification, sanitize(e.Kind), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrNotification, sanitize(e.Kind))
}

func (e *NotificationError) Unwrap() error {
	return ErrNotification
}

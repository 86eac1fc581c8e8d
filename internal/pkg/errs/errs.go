package errs

import (
	"errors"
	"fmt"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrConflict          = errors.New("state conflict")
	ErrConcurrentUpdate  = errors.New("concurrent update")
)

// ObjectNotFoundError reports that an entity referenced by the caller does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, e.ID), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports caller-supplied data that violates a precondition.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError reports a numeric value outside its bounds.
// A nil Max means the range is open above.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
}

func NewValueIsOutOfRangeError(paramName string, value, min, max any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: min, Max: max}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %v, min value is %v", ErrValueIsOutOfRange, e.ParamName, e.Value, e.Min)
	if e.Max != nil {
		msg += fmt.Sprintf(", max value is %v", e.Max)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() []error {
	return []error{ErrValueIsOutOfRange, ErrValueIsInvalid}
}

// StatusConflictError reports an entity whose current state forbids the requested
// transition. Current is always part of the message.
type StatusConflictError struct {
	Entity  string
	ID      any
	Action  string
	Current string
}

func NewStatusConflictError(entity string, id any, action, current string) *StatusConflictError {
	return &StatusConflictError{Entity: entity, ID: id, Action: action, Current: current}
}

func (e *StatusConflictError) Error() string {
	if e.ID == nil {
		return fmt.Sprintf("%s: cannot %s %s in status %s", ErrConflict, e.Action, e.Entity, e.Current)
	}
	return fmt.Sprintf("%s: cannot %s %s %v in status %s", ErrConflict, e.Action, e.Entity, e.ID, e.Current)
}

func (e *StatusConflictError) Unwrap() error {
	return ErrConflict
}

// ConcurrentUpdateError reports that a transaction lost a race against another writer.
// It matches both ErrConcurrentUpdate (retryable) and ErrConflict (what callers see
// once retries are exhausted).
type ConcurrentUpdateError struct {
	Entity string
	ID     any
	Cause  error
}

func NewConcurrentUpdateError(entity string, id any) *ConcurrentUpdateError {
	return &ConcurrentUpdateError{Entity: entity, ID: id}
}

func NewConcurrentUpdateErrorWithCause(entity string, id any, cause error) *ConcurrentUpdateError {
	return &ConcurrentUpdateError{Entity: entity, ID: id, Cause: cause}
}

func (e *ConcurrentUpdateError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %v was modified by another transaction", ErrConcurrentUpdate, e.Entity, e.ID), e.Cause)
}

func (e *ConcurrentUpdateError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrConcurrentUpdate, ErrConflict, e.Cause}
	}
	return []error{ErrConcurrentUpdate, ErrConflict}
}

// IsValidation reports whether err belongs to the validation family.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) || errors.Is(err, ErrValueIsRequired)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

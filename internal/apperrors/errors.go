package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that the store rejected a row because its business key already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStore indicates that the persistence layer reported a failure for the request.
var ErrStore = errors.New("store error")

// ValidationError carries every failed rule message, in the order the rules were evaluated.
type ValidationError struct {
	Messages []string
}

// NewValidationError builds a ValidationError from the collected rule messages.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d rule(s)", len(e.Messages))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// StoreError wraps a failure reported by the database so the handler can surface its message.
type StoreError struct {
	Message string
	Err     error
}

// NewStoreError wraps err with the message reported by the store.
func NewStoreError(message string, err error) *StoreError {
	return &StoreError{Message: message, Err: err}
}

func (e *StoreError) Error() string {
	return "store error: " + e.Message
}

// Is lets errors.Is(err, ErrStore) match any StoreError.
func (e *StoreError) Is(target error) bool { return target == ErrStore }

func (e *StoreError) Unwrap() error { return e.Err }

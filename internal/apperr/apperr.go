// Package apperr defines the error taxonomy surfaced at service boundaries.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the caller.
type Kind string

const (
	// KindValidation marks malformed client input; carries field detail.
	KindValidation Kind = "VALIDATION"
	// KindNotFound marks a missing job, user or company.
	KindNotFound Kind = "NOT_FOUND"
	// KindInternal marks store or infrastructure failure. This is the one
	// failure mode deliberately not swallowed: returning empty results on a
	// broken store would mislead callers.
	KindInternal Kind = "INTERNAL"
)

// ValidationError reports one or more invalid input fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

// Validation builds a ValidationError with a single field message.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// ValidationFields builds a ValidationError from a field→message map.
func ValidationFields(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NotFoundError reports a missing entity by kind and id.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// NotFound builds a NotFoundError.
func NotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// InternalError wraps an infrastructure failure.
type InternalError struct {
	Op    string
	Cause error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error in %s: %v", e.Op, e.Cause)
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

// Internal wraps err as an InternalError for operation op.
func Internal(op string, err error) *InternalError {
	return &InternalError{Op: op, Cause: err}
}

// KindOf classifies err, defaulting to KindInternal for unknown errors.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return KindNotFound
	}
	return KindInternal
}

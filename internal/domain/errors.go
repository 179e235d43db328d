package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Application lifecycle errors. They are user-actionable and are returned to
// the caller verbatim.
var (
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrDuplicateApplication = errors.New("application already exists")
	ErrAlreadyContacted     = errors.New("candidate already contacted")
	ErrNoPublishedJobs      = errors.New("recruiter has no published jobs")
	ErrAmbiguousJob         = errors.New("job must be selected")
	ErrInvariant            = errors.New("invariant violated")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// TransitionError is returned when a status change is not allowed by the
// transition table. It carries the current status so callers can show it.
type TransitionError struct {
	From ApplicationStatus
	To   ApplicationStatus
}

func (e *TransitionError) Error() string {
	if e.From.IsTerminal() {
		return fmt.Sprintf("cannot change status from terminal status %q", e.From)
	}
	return fmt.Sprintf("cannot change status from %q to %q", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// AlreadyContactedError is returned when a contact would not advance an
// existing application.
type AlreadyContactedError struct {
	ApplicationID string
	Status        ApplicationStatus
}

func (e *AlreadyContactedError) Error() string {
	return fmt.Sprintf("candidate already contacted: application %s is %q", e.ApplicationID, e.Status)
}

func (e *AlreadyContactedError) Unwrap() error { return ErrAlreadyContacted }

// AmbiguousJobError is returned by the contact flow when the recruiter has
// more than one published job and none was chosen. Jobs lists the options.
type AmbiguousJobError struct {
	Jobs []JobSummary
}

func (e *AmbiguousJobError) Error() string {
	return fmt.Sprintf("job must be selected: recruiter has %d published jobs", len(e.Jobs))
}

func (e *AmbiguousJobError) Unwrap() error { return ErrAmbiguousJob }

// InvariantError signals a programming fault detected right before
// persisting state. The operation is aborted.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Detail)
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }

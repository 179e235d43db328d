package application

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// ApplyInput holds the parameters for a candidate application.
type ApplyInput struct {
	JobID     uuid.UUID
	CoverNote *string
}

// Validate checks all fields and collects all errors.
func (i ApplyInput) Validate() error {
	if i.JobID == uuid.Nil {
		return domain.NewValidationError("job_id", "required")
	}
	return nil
}

// ContactInput holds the parameters for a recruiter reaching out to a
// candidate. RecruiterID may be left empty by recruiters acting for
// themselves. JobID is optional.
type ContactInput struct {
	CandidateID uuid.UUID
	RecruiterID uuid.UUID
	JobID       *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ContactInput) Validate() error {
	var errs []domain.FieldError

	if i.CandidateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "candidate_id", Message: "required"})
	}
	if i.JobID != nil && *i.JobID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "job_id", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangeStatusInput holds the parameters for a recruiter or admin status change.
type ChangeStatusInput struct {
	AppID  uuid.UUID
	Status domain.ApplicationStatus
	Notes  *string // written to the caller role's notes field
}

// Validate checks all fields and collects all errors.
func (i ChangeStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.AppID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Notes != nil && len(*i.Notes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateNotesInput holds the parameters for a notes-only update.
// Nil fields are left unchanged; an empty string clears the field.
type UpdateNotesInput struct {
	AppID          uuid.UUID
	RecruiterNotes *string
	AdminNotes     *string
}

// Validate checks all fields and collects all errors.
func (i UpdateNotesInput) Validate() error {
	var errs []domain.FieldError

	if i.AppID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
	}
	if i.RecruiterNotes == nil && i.AdminNotes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.RecruiterNotes != nil && len(*i.RecruiterNotes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "recruiter_notes", Message: "max 5000 characters"})
	}
	if i.AdminNotes != nil && len(*i.AdminNotes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "admin_notes", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds paging for ListForActor.
type ListInput struct {
	IncludeArchived bool
	Limit           int
	Offset          int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MaxNotesLength caps recruiter and admin notes in bytes.
const MaxNotesLength = 5000

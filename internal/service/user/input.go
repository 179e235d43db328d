package user

import "github.com/heartmarshall/recruitment-backend/internal/domain"

// UpdateSettingsInput holds parameters for the settings update.
type UpdateSettingsInput struct {
	NotesEnabled *bool
}

// Validate validates the update settings input.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.NotesEnabled == nil {
		errs = append(errs, domain.FieldError{Field: "notesEnabled", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

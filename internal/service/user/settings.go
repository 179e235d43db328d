package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// GetSettings returns the recruiter's feature switches. Other roles have no
// settings and get ErrForbidden.
func (s *Service) GetSettings(ctx context.Context, actor domain.Actor) (domain.RecruiterSettings, error) {
	if actor.Role != domain.UserRoleRecruiter {
		return domain.RecruiterSettings{}, domain.ErrForbidden
	}

	enabled, err := s.settings.GetNotesEnabled(ctx, actor.UserID)
	if err != nil {
		return domain.RecruiterSettings{}, fmt.Errorf("user.GetSettings: %w", err)
	}

	return domain.RecruiterSettings{RecruiterID: actor.UserID, NotesEnabled: enabled}, nil
}

// UpdateSettings changes the recruiter's feature switches. Turning notes off
// hides existing notes from the recruiter's views but keeps them stored.
func (s *Service) UpdateSettings(ctx context.Context, actor domain.Actor, input UpdateSettingsInput) (domain.RecruiterSettings, error) {
	if actor.Role != domain.UserRoleRecruiter {
		return domain.RecruiterSettings{}, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return domain.RecruiterSettings{}, err
	}

	if err := s.settings.SetNotesEnabled(ctx, actor.UserID, *input.NotesEnabled); err != nil {
		return domain.RecruiterSettings{}, fmt.Errorf("user.UpdateSettings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", actor.UserID.String()),
		slog.Bool("notes_enabled", *input.NotesEnabled),
	)

	return domain.RecruiterSettings{RecruiterID: actor.UserID, NotesEnabled: *input.NotesEnabled}, nil
}

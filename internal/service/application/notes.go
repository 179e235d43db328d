package application

import (
	"context"
	"fmt"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// UpdateNotes writes recruiter and/or admin notes without changing status.
// Recruiters may only write their own notes, and only with notes enabled.
// Admin notes are admin-only.
func (s *Service) UpdateNotes(ctx context.Context, actor domain.Actor, input UpdateNotesInput) (*domain.Application, error) {
	if actor.Role != domain.UserRoleRecruiter && actor.Role != domain.UserRoleAdmin {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.AdminNotes != nil && actor.Role != domain.UserRoleAdmin {
		return nil, domain.ErrForbidden
	}

	var app *domain.Application
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		app, getErr = s.apps.GetByID(txCtx, input.AppID)
		if getErr != nil {
			return fmt.Errorf("get application: %w", getErr)
		}
		if !canAccess(actor, app) {
			return domain.ErrForbidden
		}

		if input.RecruiterNotes != nil {
			if actor.Role == domain.UserRoleRecruiter {
				if err := s.requireNotesEnabled(txCtx, actor); err != nil {
					return err
				}
			}
			app.RecruiterNotes = trimOrNil(input.RecruiterNotes)
		}
		if input.AdminNotes != nil {
			app.AdminNotes = trimOrNil(input.AdminNotes)
		}

		if actor.Role == domain.UserRoleAdmin {
			app.AdminActions = append(app.AdminActions, domain.AdminAction{
				AdminID:   actor.UserID,
				Action:    domain.AdminActionNotes,
				Timestamp: s.now(),
			})
		}

		return s.save(txCtx, app)
	})
	if err != nil {
		return nil, err
	}

	return app, nil
}

// writeNotes stores notes in the field owned by actor's role.
func (s *Service) writeNotes(ctx context.Context, actor domain.Actor, app *domain.Application, notes *string) error {
	switch actor.Role {
	case domain.UserRoleRecruiter:
		if err := s.requireNotesEnabled(ctx, actor); err != nil {
			return err
		}
		app.RecruiterNotes = trimOrNil(notes)
	case domain.UserRoleAdmin:
		app.AdminNotes = trimOrNil(notes)
	default:
		return domain.ErrForbidden
	}
	return nil
}

func (s *Service) requireNotesEnabled(ctx context.Context, actor domain.Actor) error {
	enabled, err := s.settings.GetNotesEnabled(ctx, actor.UserID)
	if err != nil {
		return fmt.Errorf("get notes setting: %w", err)
	}
	if !enabled {
		return fmt.Errorf("%w: notes are disabled for this recruiter", domain.ErrForbidden)
	}
	return nil
}

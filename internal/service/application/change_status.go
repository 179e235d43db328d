package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// ChangeStatus moves an application to a new status on behalf of its
// recruiter or an admin. Withdrawal is reserved for the candidate.
// Optional notes go to the caller's own notes field.
func (s *Service) ChangeStatus(ctx context.Context, actor domain.Actor, input ChangeStatusInput) (*domain.Application, error) {
	if actor.Role != domain.UserRoleRecruiter && actor.Role != domain.UserRoleAdmin {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Status == domain.StatusWithdrawn {
		return nil, fmt.Errorf("%w: only the candidate can withdraw an application", domain.ErrForbidden)
	}

	var (
		app  *domain.Application
		from domain.ApplicationStatus
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		app, getErr = s.apps.GetByID(txCtx, input.AppID)
		if getErr != nil {
			return fmt.Errorf("get application: %w", getErr)
		}
		if !canAccess(actor, app) {
			return domain.ErrForbidden
		}

		from = app.Status
		if err := domain.ValidateTransition(from, input.Status); err != nil {
			return err
		}

		now := s.now()
		app.Status = input.Status
		app.LastActivityAt = now
		if app.Status == domain.StatusWithdrawn {
			app.WithdrawnAt = ptr(now)
		}

		if input.Notes != nil {
			if err := s.writeNotes(txCtx, actor, app, input.Notes); err != nil {
				return err
			}
		}

		if actor.Role == domain.UserRoleAdmin {
			app.AdminActions = append(app.AdminActions, domain.AdminAction{
				AdminID:   actor.UserID,
				Action:    domain.AdminActionStatusChange,
				Details:   fmt.Sprintf("%s -> %s", from, app.Status),
				Timestamp: now,
			})
		}

		return s.save(txCtx, app)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "application status changed",
		slog.String("application_id", app.ID.String()),
		slog.String("actor_id", actor.UserID.String()),
		slog.String("from", from.String()),
		slog.String("to", app.Status.String()),
	)

	s.notify(ctx, app, from, app.Status)

	return app, nil
}

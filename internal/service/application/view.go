package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// View returns the role-filtered representation of an application.
// Job seekers may only view their own applications and recruiters only
// those addressed to them; admins may view all.
func (s *Service) View(ctx context.Context, actor domain.Actor, appID uuid.UUID) (domain.PublicView, error) {
	app, err := s.apps.GetByID(ctx, appID)
	if err != nil {
		return domain.PublicView{}, fmt.Errorf("get application: %w", err)
	}
	if !canAccess(actor, app) {
		return domain.PublicView{}, domain.ErrForbidden
	}

	notesEnabled, err := s.notesEnabledFor(ctx, actor)
	if err != nil {
		return domain.PublicView{}, fmt.Errorf("get notes setting: %w", err)
	}

	return s.present(app, actor, notesEnabled), nil
}

// RecordFirstView moves an application from applied to viewed the first
// time its recruiter opens it. Any other caller, status or an already
// stamped ViewedAt makes it a no-op. The current application is returned.
func (s *Service) RecordFirstView(ctx context.Context, actor domain.Actor, appID uuid.UUID) (*domain.Application, error) {
	var (
		app     *domain.Application
		changed bool
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		app, getErr = s.apps.GetByID(txCtx, appID)
		if getErr != nil {
			return fmt.Errorf("get application: %w", getErr)
		}

		if actor.Role != domain.UserRoleRecruiter || app.RecruiterID != actor.UserID {
			return nil
		}
		if app.Status != domain.StatusApplied || app.ViewedAt != nil {
			return nil
		}
		if err := domain.ValidateTransition(app.Status, domain.StatusViewed); err != nil {
			return err
		}

		app.Status = domain.StatusViewed
		app.ViewedAt = ptr(s.now())

		if err := s.apps.Save(txCtx, app); err != nil {
			return fmt.Errorf("save application: %w", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.InfoContext(ctx, "application viewed",
			slog.String("application_id", app.ID.String()),
			slog.String("recruiter_id", actor.UserID.String()),
		)
	}

	return app, nil
}

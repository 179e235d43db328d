package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// Withdraw lets a candidate withdraw their own application.
func (s *Service) Withdraw(ctx context.Context, actor domain.Actor, appID uuid.UUID) (*domain.Application, error) {
	if actor.Role != domain.UserRoleJobSeeker {
		return nil, domain.ErrForbidden
	}

	var app *domain.Application
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		app, getErr = s.apps.GetByID(txCtx, appID)
		if getErr != nil {
			return fmt.Errorf("get application: %w", getErr)
		}
		if app.CandidateID != actor.UserID {
			return domain.ErrForbidden
		}
		if err := domain.ValidateTransition(app.Status, domain.StatusWithdrawn); err != nil {
			return err
		}

		now := s.now()
		app.Status = domain.StatusWithdrawn
		app.WithdrawnAt = ptr(now)
		app.LastActivityAt = now

		return s.save(txCtx, app)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "application withdrawn",
		slog.String("application_id", app.ID.String()),
		slog.String("candidate_id", actor.UserID.String()),
	)

	return app, nil
}

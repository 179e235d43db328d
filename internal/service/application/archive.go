package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// Archive sets or clears the caller's own archive flag. Archived
// applications stay addressable by id. Admin toggles are recorded in the
// admin log.
func (s *Service) Archive(ctx context.Context, actor domain.Actor, appID uuid.UUID, archived bool) (*domain.Application, error) {
	var app *domain.Application
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		app, getErr = s.apps.GetByID(txCtx, appID)
		if getErr != nil {
			return fmt.Errorf("get application: %w", getErr)
		}
		if !canAccess(actor, app) {
			return domain.ErrForbidden
		}
		if app.ArchivedFor(actor.Role) == archived {
			return nil
		}

		switch actor.Role {
		case domain.UserRoleJobSeeker:
			app.ArchivedByJobSeeker = archived
		case domain.UserRoleRecruiter:
			app.ArchivedByRecruiter = archived
		case domain.UserRoleAdmin:
			app.ArchivedByAdmin = archived
			action := domain.AdminActionArchive
			if !archived {
				action = domain.AdminActionUnarchive
			}
			app.AdminActions = append(app.AdminActions, domain.AdminAction{
				AdminID:   actor.UserID,
				Action:    action,
				Timestamp: s.now(),
			})
		}

		return s.save(txCtx, app)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "application archive flag set",
		slog.String("application_id", app.ID.String()),
		slog.String("role", actor.Role.String()),
		slog.Bool("archived", archived),
	)

	return app, nil
}

package application

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// Render builds the representation of app that a viewer with role may
// receive. Fields are copied by whitelist: anything not listed for a role is
// left nil. notesEnabled gates recruiter notes for recruiters.
func Render(app *domain.Application, role domain.UserRole, notesEnabled bool) domain.PublicView {
	view := domain.PublicView{
		ID:             app.ID,
		Status:         app.Status,
		JobID:          app.JobID,
		RecruiterID:    app.RecruiterID,
		CandidateID:    app.CandidateID,
		CoverNote:      app.CoverNote,
		AppliedAt:      app.AppliedAt,
		LastActivityAt: app.LastActivityAt,
		ViewedAt:       app.ViewedAt,
		WithdrawnAt:    app.WithdrawnAt,
		Archived:       app.ArchivedFor(role),
	}

	switch role {
	case domain.UserRoleJobSeeker:
	case domain.UserRoleRecruiter:
		view.Published = ptr(app.Published)
		if notesEnabled {
			view.RecruiterNotes = app.RecruiterNotes
		}
	case domain.UserRoleAdmin:
		view.Published = ptr(app.Published)
		view.RecruiterNotes = app.RecruiterNotes
		view.AdminNotes = app.AdminNotes
		view.AdminActions = slices.Clone(app.AdminActions)
	default:
		// Unknown roles get the most restrictive projection.
	}

	return view
}

// guardOutput clears every field role may never receive. It runs on each
// view leaving the service regardless of how the view was built and reports
// whether anything had to be removed.
func guardOutput(view *domain.PublicView, role domain.UserRole) bool {
	stripped := false
	mark := func(present bool) {
		if present {
			stripped = true
		}
	}

	if role != domain.UserRoleAdmin {
		mark(view.AdminNotes != nil || len(view.AdminActions) > 0)
		view.AdminNotes = nil
		view.AdminActions = nil
	}
	if role != domain.UserRoleAdmin && role != domain.UserRoleRecruiter {
		mark(view.RecruiterNotes != nil || view.Published != nil)
		view.RecruiterNotes = nil
		view.Published = nil
	}

	return stripped
}

// present renders app for actor and applies the output guard.
func (s *Service) present(app *domain.Application, actor domain.Actor, notesEnabled bool) domain.PublicView {
	view := Render(app, actor.Role, notesEnabled)
	if guardOutput(&view, actor.Role) {
		s.log.Warn("output guard stripped restricted fields",
			slog.String("application_id", app.ID.String()),
			slog.String("role", actor.Role.String()),
		)
	}
	return view
}

// Present renders an application returned by a mutation for its caller.
func (s *Service) Present(ctx context.Context, actor domain.Actor, app *domain.Application) (domain.PublicView, error) {
	notesEnabled, err := s.notesEnabledFor(ctx, actor)
	if err != nil {
		return domain.PublicView{}, fmt.Errorf("present application: %w", err)
	}
	return s.present(app, actor, notesEnabled), nil
}

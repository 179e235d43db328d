package application

import (
	"context"
	"fmt"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// ListForActor returns the caller's applications, most recently active
// first. Applications the caller archived are left out unless
// IncludeArchived is set.
func (s *Service) ListForActor(ctx context.Context, actor domain.Actor, input ListInput) ([]domain.PublicView, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	filter := domain.ApplicationFilter{
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	switch actor.Role {
	case domain.UserRoleJobSeeker:
		filter.CandidateID = &actor.UserID
	case domain.UserRoleRecruiter:
		filter.RecruiterID = &actor.UserID
	case domain.UserRoleAdmin:
	default:
		return nil, 0, domain.ErrForbidden
	}
	if !input.IncludeArchived {
		filter.HiddenFor = actor.Role
	}

	apps, total, err := s.apps.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}

	notesEnabled, err := s.notesEnabledFor(ctx, actor)
	if err != nil {
		return nil, 0, fmt.Errorf("get notes setting: %w", err)
	}

	views := make([]domain.PublicView, 0, len(apps))
	for _, app := range apps {
		views = append(views, s.present(app, actor, notesEnabled))
	}

	return views, total, nil
}

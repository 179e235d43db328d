// Package user serves the caller's own account: the profile and the
// recruiter feature switches.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type settingsRepo interface {
	GetNotesEnabled(ctx context.Context, recruiterID uuid.UUID) (bool, error)
	SetNotesEnabled(ctx context.Context, recruiterID uuid.UUID, enabled bool) error
}

// Service implements profile and settings operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	settings settingsRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, settings settingsRepo) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		settings: settings,
	}
}

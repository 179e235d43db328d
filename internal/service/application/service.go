// Package application enforces the application lifecycle: who may move an
// application between which statuses, and what each role may see.
package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

type applicationStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	FindOne(ctx context.Context, f domain.ApplicationFilter) (*domain.Application, error)
	List(ctx context.Context, f domain.ApplicationFilter) ([]*domain.Application, int, error)
	Create(ctx context.Context, app *domain.Application) error
	Save(ctx context.Context, app *domain.Application) error
}

type jobCatalog interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	ListPublishedByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]domain.Job, error)
}

type recruiterSettings interface {
	GetNotesEnabled(ctx context.Context, recruiterID uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type statusNotifier interface {
	NotifyStatusChange(ctx context.Context, app *domain.Application, from, to domain.ApplicationStatus)
}

// DefaultCoverNoteMaxLength is the cover note cap in characters.
const DefaultCoverNoteMaxLength = 300

// Service provides application lifecycle operations.
type Service struct {
	apps     applicationStore
	jobs     jobCatalog
	settings recruiterSettings
	tx       txManager
	notifier statusNotifier
	log      *slog.Logger

	coverNoteMax int
	now          func() time.Time
}

// NewService creates a new Application service. A non-positive coverNoteMax
// falls back to DefaultCoverNoteMaxLength.
func NewService(
	log *slog.Logger,
	apps applicationStore,
	jobs jobCatalog,
	settings recruiterSettings,
	tx txManager,
	notifier statusNotifier,
	coverNoteMax int,
) *Service {
	if coverNoteMax <= 0 {
		coverNoteMax = DefaultCoverNoteMaxLength
	}
	return &Service{
		apps:         apps,
		jobs:         jobs,
		settings:     settings,
		tx:           tx,
		notifier:     notifier,
		log:          log.With("service", "application"),
		coverNoteMax: coverNoteMax,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// canAccess reports whether actor is a party to app or an admin.
func canAccess(actor domain.Actor, app *domain.Application) bool {
	switch actor.Role {
	case domain.UserRoleJobSeeker:
		return app.CandidateID == actor.UserID
	case domain.UserRoleRecruiter:
		return app.RecruiterID == actor.UserID
	case domain.UserRoleAdmin:
		return true
	}
	return false
}

// notesEnabledFor returns the recruiter notes switch relevant to actor.
// Admins always see notes; job seekers never do.
func (s *Service) notesEnabledFor(ctx context.Context, actor domain.Actor) (bool, error) {
	switch actor.Role {
	case domain.UserRoleAdmin:
		return true, nil
	case domain.UserRoleRecruiter:
		return s.settings.GetNotesEnabled(ctx, actor.UserID)
	}
	return false, nil
}

// notify sends the candidate-facing status email when the transition
// warrants one. Delivery failures never reach the caller.
func (s *Service) notify(ctx context.Context, app *domain.Application, from, to domain.ApplicationStatus) {
	if from == to || !domain.NotifiesCandidate(to) || s.notifier == nil {
		return
	}
	s.notifier.NotifyStatusChange(ctx, app, from, to)
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func ptr[T any](v T) *T {
	return &v
}

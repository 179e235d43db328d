// Package dispatch sends scheduled job-alert and heartbeat emails for saved
// searches. One Run call is one pass over all active saved searches.
package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/config"
	"github.com/heartmarshall/recruitment-backend/internal/domain"
	"github.com/heartmarshall/recruitment-backend/internal/telemetry"
)

type savedSearchStore interface {
	ListActive(ctx context.Context) ([]domain.SavedSearch, error)
	UpdateTimestamps(ctx context.Context, id uuid.UUID, stamps domain.DispatchStamps) error
}

type matchEngine interface {
	Match(ctx context.Context, criteria domain.SearchCriteria, since time.Time) ([]domain.JobSummary, error)
}

type userDirectory interface {
	GetNameAndEmail(ctx context.Context, userID uuid.UUID) (name, email string, err error)
}

type emailSender interface {
	Send(ctx context.Context, msg domain.EmailMessage) domain.SendResult
}

const (
	dailyWindow  = 24 * time.Hour
	weeklyWindow = 7 * 24 * time.Hour

	// userAlertCooldown is how long a job alert recorded in the run blocks
	// further alerts to the same user.
	userAlertCooldown = 24 * time.Hour

	defaultHeartbeatInterval = 30 * 24 * time.Hour

	// scheduleTolerance lets a run that fires slightly early still treat a
	// search as due, so a daily cron does not slip to every other day.
	scheduleTolerance = 10 * time.Minute
)

// Dispatcher runs dispatch passes.
type Dispatcher struct {
	searches savedSearchStore
	matcher  matchEngine
	users    userDirectory
	sender   emailSender
	metrics  *telemetry.DispatchMetrics
	log      *slog.Logger

	workers           int
	searchTimeout     time.Duration
	runTimeout        time.Duration
	heartbeatInterval time.Duration
	baseURL           string
}

// NewDispatcher creates a Dispatcher. metrics may be nil.
func NewDispatcher(
	log *slog.Logger,
	cfg config.DispatchConfig,
	searches savedSearchStore,
	matcher matchEngine,
	users userDirectory,
	sender emailSender,
	metrics *telemetry.DispatchMetrics,
) *Dispatcher {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	heartbeat := cfg.HeartbeatInterval
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeatInterval
	}
	return &Dispatcher{
		searches:          searches,
		matcher:           matcher,
		users:             users,
		sender:            sender,
		metrics:           metrics,
		log:               log.With("service", "dispatch"),
		workers:           workers,
		searchTimeout:     cfg.SearchTimeout,
		runTimeout:        cfg.RunTimeout,
		heartbeatInterval: heartbeat,
		baseURL:           cfg.AppBaseURL,
	}
}

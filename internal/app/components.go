package app

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/recruitment-backend/internal/adapter/email"
	"github.com/heartmarshall/recruitment-backend/internal/adapter/postgres"
	applicationrepo "github.com/heartmarshall/recruitment-backend/internal/adapter/postgres/application"
	"github.com/heartmarshall/recruitment-backend/internal/adapter/postgres/job"
	"github.com/heartmarshall/recruitment-backend/internal/adapter/postgres/savedsearch"
	"github.com/heartmarshall/recruitment-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/recruitment-backend/internal/config"
	"github.com/heartmarshall/recruitment-backend/internal/service/application"
	"github.com/heartmarshall/recruitment-backend/internal/service/dispatch"
	usersvc "github.com/heartmarshall/recruitment-backend/internal/service/user"
	"github.com/heartmarshall/recruitment-backend/internal/telemetry"
)

// Components is the wired service graph shared by the server and the
// one-shot dispatch command.
type Components struct {
	Applications *application.Service
	Users        *usersvc.Service
	Dispatcher   *dispatch.Dispatcher
	Metrics      *telemetry.Registry
}

// NewComponents builds repositories, the email sender and the services on
// top of pool. Metrics are registered on a fresh registry.
func NewComponents(cfg *config.Config, log *slog.Logger, pool *pgxpool.Pool) (*Components, error) {
	registry := telemetry.NewRegistry()
	dispatchMetrics, err := telemetry.NewDispatchMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("register dispatch metrics: %w", err)
	}

	txManager := postgres.NewTxManager(pool)
	users := user.New(pool)
	jobs := job.New(pool)
	sender := email.NewSender(log, cfg.Email)

	apps := application.NewService(
		log,
		applicationrepo.New(pool),
		jobs,
		users,
		txManager,
		application.NewStatusMailer(log, users, sender),
		cfg.Applications.CoverNoteMaxLength,
	)

	dispatcher := dispatch.NewDispatcher(
		log,
		cfg.Dispatch,
		savedsearch.New(pool),
		jobs,
		users,
		sender,
		dispatchMetrics,
	)

	return &Components{
		Applications: apps,
		Users:        usersvc.NewService(log, users, users),
		Dispatcher:   dispatcher,
		Metrics:      registry,
	}, nil
}

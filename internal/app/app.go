package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/recruitment-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recruitment-backend/internal/auth"
	"github.com/heartmarshall/recruitment-backend/internal/config"
	"github.com/heartmarshall/recruitment-backend/internal/telemetry"
	"github.com/heartmarshall/recruitment-backend/internal/transport/middleware"
	"github.com/heartmarshall/recruitment-backend/internal/transport/rest"
)

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	components, err := NewComponents(cfg, logger, pool)
	if err != nil {
		return err
	}

	handler, stop, err := NewHTTPHandler(cfg, logger, pool, components)
	if err != nil {
		return err
	}
	defer stop()

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// NewHTTPHandler assembles the router and the middleware chain. The returned
// stop func releases background work owned by the middleware.
func NewHTTPHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, c *Components) (http.Handler, func(), error) {
	httpMetrics, err := telemetry.NewHTTPMetrics(c.Metrics)
	if err != nil {
		return nil, nil, fmt.Errorf("register http metrics: %w", err)
	}

	routes := rest.Routes{
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		Applications: rest.NewApplicationHandler(c.Applications, logger),
		Users:        rest.NewUserHandler(c.Users, logger),
		Metrics:      c.Metrics.Handler(),
	}
	if cfg.Dispatch.TriggerEnabled() {
		routes.Dispatch = rest.NewDispatchHandler(c.Dispatcher, cfg.Dispatch.TriggerTokenHash, logger)
	} else {
		logger.Info("dispatch trigger disabled: no token hash configured")
	}

	var (
		limit middleware.Middleware
		stop  = func() {}
	)
	if cfg.RateLimit.RequestsPerMinute > 0 {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
		limit, stop = rateLimiter.Middleware(), rateLimiter.Stop
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Route metrics wrap the mux directly so the matched pattern is visible.
	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limit,
		middleware.Auth(jwtManager, logger),
		middleware.Logger(logger),
	)(httpMetrics.Middleware(rest.NewRouter(routes)))

	return handler, stop, nil
}

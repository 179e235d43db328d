// Command dispatch performs one notification run: job alerts for due saved
// searches and monthly heartbeats. It is intended to be invoked by an
// external scheduler.
//
// Per-search failures are reported in the summary and do not change the exit
// code. Exit codes: 0 = run completed, 1 = run could not start.
//
// With -hash-token it prints the bcrypt hash of the given trigger token for
// DISPATCH_TRIGGER_TOKEN_HASH and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/recruitment-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recruitment-backend/internal/app"
	"github.com/heartmarshall/recruitment-backend/internal/auth"
	"github.com/heartmarshall/recruitment-backend/internal/config"
)

func main() {
	hashToken := flag.String("hash-token", "", "print the bcrypt hash of a trigger token and exit")
	flag.Parse()

	if *hashToken != "" {
		hash, err := auth.HashSecret(*hashToken)
		if err != nil {
			log.Fatalf("hash token: %v", err)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if os.Getenv("DATABASE_APPLICATION_NAME") == "" {
		cfg.Database.ApplicationName = "recruitment-dispatch"
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	components, err := app.NewComponents(cfg, logger, pool)
	if err != nil {
		logger.Error("build components", slog.String("error", err.Error()))
		os.Exit(1)
	}

	summary, err := components.Dispatcher.Run(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("dispatch run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if summary.Errors > 0 {
		logger.Warn("dispatch run finished with errors", slog.Int("errors", summary.Errors))
	}
}

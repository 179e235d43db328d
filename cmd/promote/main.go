// Command promote sets a user's role by email address. It is used to
// bootstrap the first admin and to turn accounts into recruiters.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/recruitment-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recruitment-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/recruitment-backend/internal/app"
	"github.com/heartmarshall/recruitment-backend/internal/config"
	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to update")
	role := flag.String("role", string(domain.UserRoleAdmin), "new role: job_seeker, recruiter or admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin]")
		os.Exit(1)
	}
	target := domain.UserRole(*role)
	if !target.IsValid() {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *role)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	u, err := user.New(pool).SetRole(ctx, *email, target)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Error("no user with this email", slog.String("email", *email))
		} else {
			logger.Error("update role", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}

	logger.Info("role updated",
		slog.String("user_id", u.ID.String()),
		slog.String("role", string(u.Role)),
	)
}

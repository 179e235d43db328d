// Package testhelper provides a migrated PostgreSQL for integration tests
// and seed helpers for the recruitment schema.
package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/recruitment-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recruitment-backend/internal/config"
)

// DSNEnv points the helpers at an existing throwaway database instead of a
// container. The database is migrated but never cleaned.
const DSNEnv = "TEST_DATABASE_DSN"

const (
	pgImage  = "postgres:17-alpine"
	pgUser   = "recruitment"
	pgPass   = "recruitment"
	pgDBName = "recruitment_test"
)

var shared struct {
	once sync.Once
	dsn  string
	err  error
}

// SetupTestDB returns a pool on a migrated database shared by the whole
// test binary. The pool is closed on test cleanup. Skipped with -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: database tests are skipped in short mode")
	}

	shared.once.Do(func() {
		shared.dsn, shared.err = provision()
	})
	if shared.err != nil {
		t.Fatalf("testhelper: provision database: %v", shared.err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, testDBConfig(shared.dsn))
	if err != nil {
		t.Fatalf("testhelper: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func testDBConfig(dsn string) config.DatabaseConfig {
	return config.DatabaseConfig{
		DSN:              dsn,
		MaxConns:         8,
		MaxConnLifetime:  time.Hour,
		MaxConnIdleTime:  time.Minute,
		ApplicationName:  "recruitment-tests",
		StatementTimeout: 15 * time.Second,
	}
}

func provision() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		var err error
		if dsn, err = startContainer(ctx); err != nil {
			return "", err
		}
	}

	pool, err := postgres.NewPool(ctx, testDBConfig(dsn))
	if err != nil {
		return "", err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return dsn, nil
}

// startContainer leaves the container running until the test binary exits.
func startContainer(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPass,
				"POSTGRES_DB":       pgDBName,
			},
			// The entrypoint restarts postgres once after init.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("resolve postgres endpoint: %w", err)
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", pgUser, pgPass, endpoint, pgDBName), nil
}

//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/recruitment-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/recruitment-backend/internal/app"
	authpkg "github.com/heartmarshall/recruitment-backend/internal/auth"
	"github.com/heartmarshall/recruitment-backend/internal/config"
	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

const (
	jwtSecret    = "test-secret-at-least-32-chars-long!!"
	jwtIssuer    = "test-issuer"
	triggerToken = "e2e-trigger-token"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	tokenHash, err := authpkg.HashSecret(triggerToken)
	require.NoError(t, err)

	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      jwtSecret,
			JWTIssuer:      jwtIssuer,
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		// Limiter off: every test shares the httptest client address.
		RateLimit:    config.RateLimitConfig{},
		Applications: config.ApplicationsConfig{CoverNoteMaxLength: 300},
		Dispatch: config.DispatchConfig{
			Workers:           2,
			SearchTimeout:     10 * time.Second,
			RunTimeout:        time.Minute,
			HeartbeatInterval: 30 * 24 * time.Hour,
			TriggerTokenHash:  tokenHash,
			AppBaseURL:        "http://jobs.test",
		},
		Email: config.EmailConfig{
			From:     "no-reply@jobs.test",
			FromName: "Jobs",
			DryRun:   true,
		},
	}
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg := testConfig(t)

	components, err := app.NewComponents(cfg, logger, pool)
	require.NoError(t, err)

	handler, stop, err := app.NewHTTPHandler(cfg, logger, pool, components)
	require.NoError(t, err)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(jwtSecret, jwtIssuer, 15*time.Minute),
	}
}

// userToken seeds a user with the given role and returns it with a valid
// access token.
func (ts *testServer) userToken(t *testing.T, role domain.UserRole) (domain.User, string) {
	t.Helper()

	u := testhelper.SeedUser(t, ts.Pool, role)
	tok, err := ts.jwt.GenerateAccessToken(u.ID, u.Role)
	require.NoError(t, err)
	return u, tok
}

// do sends a JSON request and returns the status code and decoded body.
// A nil body sends no payload.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if resp.ContentLength != 0 {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		if len(raw) > 0 {
			require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
		}
	}
	return resp.StatusCode, result
}

// applicationStatus reads the stored status directly from the database.
func (ts *testServer) applicationStatus(t *testing.T, id string) string {
	t.Helper()

	var status string
	err := ts.Pool.QueryRow(context.Background(),
		`SELECT status FROM applications WHERE id = $1`, uuid.MustParse(id),
	).Scan(&status)
	require.NoError(t, err)
	return status
}

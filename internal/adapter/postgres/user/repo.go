// Package user implements the user directory and recruiter settings using PostgreSQL.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/recruitment-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// Repo provides user and recruiter-settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, name, role, created_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE lower(email) = lower($1)`

const createSQL = `
INSERT INTO users (id, email, name, role, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + userColumns

const setRoleSQL = `
UPDATE users SET role = $2
WHERE lower(email) = lower($1)
RETURNING ` + userColumns

const getNotesEnabledSQL = `
SELECT notes_enabled FROM recruiter_settings WHERE recruiter_id = $1`

const setNotesEnabledSQL = `
INSERT INTO recruiter_settings (recruiter_id, notes_enabled, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (recruiter_id) DO UPDATE
SET notes_enabled = EXCLUDED.notes_enabled, updated_at = EXCLUDED.updated_at`

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by case-insensitive email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// Create inserts a user.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	created, err := scanUser(querier.QueryRow(ctx, createSQL,
		u.ID, u.Email, u.Name, string(u.Role), createdAt.UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// SetRole changes the role of the user with the given email and returns the
// updated user. An unknown email is reported as domain.ErrNotFound.
func (r *Repo) SetRole(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, setRoleSQL, email, string(role)))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// GetNameAndEmail resolves the display name and address used for outgoing mail.
// A user without an email address is reported as domain.ErrNotFound.
func (r *Repo) GetNameAndEmail(ctx context.Context, userID uuid.UUID) (string, string, error) {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	if strings.TrimSpace(u.Email) == "" {
		return "", "", fmt.Errorf("user %s email: %w", userID, domain.ErrNotFound)
	}
	return u.Name, u.Email, nil
}

// ---------------------------------------------------------------------------
// Recruiter settings
// ---------------------------------------------------------------------------

// GetNotesEnabled reports whether the recruiter may keep private notes.
// A recruiter without a settings row has notes disabled.
func (r *Repo) GetNotesEnabled(ctx context.Context, recruiterID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var enabled bool
	err := querier.QueryRow(ctx, getNotesEnabledSQL, recruiterID).Scan(&enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, postgres.MapError(err, "recruiter_settings", recruiterID)
	}
	return enabled, nil
}

// SetNotesEnabled upserts the recruiter's notes switch.
func (r *Repo) SetNotesEnabled(ctx context.Context, recruiterID uuid.UUID, enabled bool) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, setNotesEnabledSQL, recruiterID, enabled); err != nil {
		return postgres.MapError(err, "recruiter_settings", recruiterID)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &role, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}

// Package application implements the Application repository using PostgreSQL.
// Point queries use raw SQL; filter-driven queries are built with squirrel.
// Save is optimistic: it only updates the row when the stored version still
// matches the version the caller read.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/recruitment-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

const (
	uxJobCandidate   = "ux_applications_job_candidate"
	uxGeneralContact = "ux_applications_general_contact"
)

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new application repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

var columns = []string{
	"id", "status", "job_id", "recruiter_id", "candidate_id", "cover_note",
	"applied_at", "last_activity_at", "viewed_at", "withdrawn_at",
	"archived_by_job_seeker", "archived_by_recruiter", "archived_by_admin",
	"published", "recruiter_notes", "admin_notes", "version",
}

const getByIDSQL = `
SELECT id, status, job_id, recruiter_id, candidate_id, cover_note,
       applied_at, last_activity_at, viewed_at, withdrawn_at,
       archived_by_job_seeker, archived_by_recruiter, archived_by_admin,
       published, recruiter_notes, admin_notes, version
FROM applications
WHERE id = $1`

const createSQL = `
INSERT INTO applications (
    id, status, job_id, recruiter_id, candidate_id, cover_note,
    applied_at, last_activity_at, viewed_at, withdrawn_at,
    archived_by_job_seeker, archived_by_recruiter, archived_by_admin,
    published, recruiter_notes, admin_notes, version
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, 1)`

const saveSQL = `
UPDATE applications SET
    status = $3,
    job_id = $4,
    cover_note = $5,
    applied_at = $6,
    last_activity_at = $7,
    viewed_at = $8,
    withdrawn_at = $9,
    archived_by_job_seeker = $10,
    archived_by_recruiter = $11,
    archived_by_admin = $12,
    published = $13,
    recruiter_notes = $14,
    admin_notes = $15,
    version = version + 1
WHERE id = $1 AND version = $2`

const existsSQL = `SELECT EXISTS(SELECT 1 FROM applications WHERE id = $1)`

const countActionsSQL = `
SELECT count(*) FROM application_admin_actions WHERE application_id = $1`

const insertActionSQL = `
INSERT INTO application_admin_actions (application_id, admin_id, action, details, created_at)
VALUES ($1, $2, $3, $4, $5)`

const getActionsSQL = `
SELECT application_id, admin_id, action, details, created_at
FROM application_admin_actions
WHERE application_id = ANY($1::uuid[])
ORDER BY application_id, created_at, id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an application with its admin log.
// Returns domain.ErrNotFound if the application does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	app, err := scanApplication(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	if err := r.attachActions(ctx, querier, []*domain.Application{app}); err != nil {
		return nil, err
	}

	return app, nil
}

// FindOne returns the most recently active application matching f,
// or nil, nil when none matches.
func (r *Repo) FindOne(ctx context.Context, f domain.ApplicationFilter) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(columns...).
		From("applications").
		Where(where(f)).
		OrderBy("last_activity_at DESC", "id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find application query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find application: %w", err)
	}
	apps, err := scanApplications(rows)
	if err != nil {
		return nil, fmt.Errorf("find application: %w", err)
	}
	if len(apps) == 0 {
		return nil, nil
	}

	if err := r.attachActions(ctx, querier, apps); err != nil {
		return nil, err
	}

	return apps[0], nil
}

// List returns a page of applications matching f ordered by last activity,
// plus the total number of matches.
func (r *Repo) List(ctx context.Context, f domain.ApplicationFilter) ([]*domain.Application, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := psql.Select("count(*)").From("applications").Where(where(f)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count applications query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
	}

	limit, offset := page(f)
	query, args, err := psql.Select(columns...).
		From("applications").
		Where(where(f)).
		OrderBy("last_activity_at DESC", "id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list applications query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	apps, err := scanApplications(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}

	if err := r.attachActions(ctx, querier, apps); err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new application with version 1 together with its admin log.
// A second non-archived application for the same (job, candidate) or general
// contact (recruiter, candidate) results in domain.ErrDuplicateApplication.
func (r *Repo) Create(ctx context.Context, app *domain.Application) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		app.ID,
		string(app.Status),
		app.JobID,
		app.RecruiterID,
		app.CandidateID,
		app.CoverNote,
		utc(app.AppliedAt),
		utc(app.LastActivityAt),
		utcPtr(app.ViewedAt),
		utcPtr(app.WithdrawnAt),
		app.ArchivedByJobSeeker,
		app.ArchivedByRecruiter,
		app.ArchivedByAdmin,
		app.Published,
		app.RecruiterNotes,
		app.AdminNotes,
	)
	if err != nil {
		return mapWriteError(err, app.ID)
	}
	app.Version = 1

	if err := insertActions(ctx, querier, app.ID, app.AdminActions); err != nil {
		return err
	}

	return nil
}

// Save persists app if its Version still matches the stored row and bumps
// Version on success. A stale version yields domain.ErrConflict; a missing
// row yields domain.ErrNotFound. Admin actions beyond the stored count are
// appended.
func (r *Repo) Save(ctx context.Context, app *domain.Application) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, saveSQL,
		app.ID,
		app.Version,
		string(app.Status),
		app.JobID,
		app.CoverNote,
		utc(app.AppliedAt),
		utc(app.LastActivityAt),
		utcPtr(app.ViewedAt),
		utcPtr(app.WithdrawnAt),
		app.ArchivedByJobSeeker,
		app.ArchivedByRecruiter,
		app.ArchivedByAdmin,
		app.Published,
		app.RecruiterNotes,
		app.AdminNotes,
	)
	if err != nil {
		return mapWriteError(err, app.ID)
	}

	if ct.RowsAffected() == 0 {
		var exists bool
		if err := querier.QueryRow(ctx, existsSQL, app.ID).Scan(&exists); err != nil {
			return postgres.MapError(err, "application", app.ID)
		}
		if !exists {
			return fmt.Errorf("application %s: %w", app.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("application %s version %d: %w", app.ID, app.Version, domain.ErrConflict)
	}
	app.Version++

	var stored int
	if err := querier.QueryRow(ctx, countActionsSQL, app.ID).Scan(&stored); err != nil {
		return postgres.MapError(err, "application", app.ID)
	}
	if stored < len(app.AdminActions) {
		if err := insertActions(ctx, querier, app.ID, app.AdminActions[stored:]); err != nil {
			return err
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Admin log helpers
// ---------------------------------------------------------------------------

func insertActions(ctx context.Context, querier postgres.Querier, appID uuid.UUID, actions []domain.AdminAction) error {
	if len(actions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, a := range actions {
		batch.Queue(insertActionSQL, appID, a.AdminID, string(a.Action), a.Details, utc(a.Timestamp))
	}

	br := querier.SendBatch(ctx, batch)
	defer br.Close()

	for range actions {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, "application admin action", appID)
		}
	}

	return nil
}

func (r *Repo) attachActions(ctx context.Context, querier postgres.Querier, apps []*domain.Application) error {
	if len(apps) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(apps))
	byID := make(map[uuid.UUID]*domain.Application, len(apps))
	for i, a := range apps {
		ids[i] = a.ID
		byID[a.ID] = a
	}

	rows, err := querier.Query(ctx, getActionsSQL, ids)
	if err != nil {
		return fmt.Errorf("get admin actions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			appID  uuid.UUID
			action domain.AdminAction
			kind   string
		)
		if err := rows.Scan(&appID, &action.AdminID, &kind, &action.Details, &action.Timestamp); err != nil {
			return fmt.Errorf("scan admin action: %w", err)
		}
		action.Action = domain.AdminActionType(kind)
		if app, ok := byID[appID]; ok {
			app.AdminActions = append(app.AdminActions, action)
		}
	}

	return rows.Err()
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var (
		app    domain.Application
		status string
	)

	err := row.Scan(
		&app.ID, &status, &app.JobID, &app.RecruiterID, &app.CandidateID, &app.CoverNote,
		&app.AppliedAt, &app.LastActivityAt, &app.ViewedAt, &app.WithdrawnAt,
		&app.ArchivedByJobSeeker, &app.ArchivedByRecruiter, &app.ArchivedByAdmin,
		&app.Published, &app.RecruiterNotes, &app.AdminNotes, &app.Version,
	)
	if err != nil {
		return nil, err
	}
	app.Status = domain.ApplicationStatus(status)

	return &app, nil
}

func scanApplications(rows pgx.Rows) ([]*domain.Application, error) {
	defer rows.Close()

	apps := []*domain.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}

// mapWriteError turns violations of the one-open-application indexes into
// domain.ErrDuplicateApplication and defers everything else to MapError.
func mapWriteError(err error, id uuid.UUID) error {
	if postgres.IsUniqueViolation(err, uxJobCandidate) || postgres.IsUniqueViolation(err, uxGeneralContact) {
		return fmt.Errorf("application %s: %w", id, domain.ErrDuplicateApplication)
	}
	return postgres.MapError(err, "application", id)
}

func utc(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := utc(*t)
	return &v
}

// Package savedsearch implements the SavedSearch repository using PostgreSQL.
// Criteria are stored as JSONB and are opaque to the repository beyond
// serialization. The dispatcher is the only writer of the two timestamp columns.
package savedsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/recruitment-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// Repo provides saved search persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new saved search repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const searchColumns = `id, user_id, criteria, frequency, active, last_sent, last_heartbeat_sent, created_at`

const listActiveSQL = `
SELECT ` + searchColumns + `
FROM saved_searches
WHERE active
ORDER BY created_at, id`

const getByIDSQL = `
SELECT ` + searchColumns + `
FROM saved_searches
WHERE id = $1`

const createSQL = `
INSERT INTO saved_searches (id, user_id, criteria, frequency, active, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + searchColumns

// COALESCE keeps the stored value for stamps the caller did not set.
const updateTimestampsSQL = `
UPDATE saved_searches
SET last_sent = COALESCE($2, last_sent),
    last_heartbeat_sent = COALESCE($3, last_heartbeat_sent)
WHERE id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// ListActive returns every active saved search in creation order. A row whose
// criteria cannot be decoded is still returned, with CriteriaErr set, so one
// bad row does not hide the others.
func (r *Repo) ListActive(ctx context.Context) ([]domain.SavedSearch, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listActiveSQL)
	if err != nil {
		return nil, fmt.Errorf("list active saved searches: %w", err)
	}
	defer rows.Close()

	searches := []domain.SavedSearch{}
	for rows.Next() {
		s, err := scanSearch(rows)
		if err != nil {
			return nil, fmt.Errorf("list active saved searches: %w", err)
		}
		searches = append(searches, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active saved searches: %w", err)
	}

	return searches, nil
}

// GetByID returns a saved search by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedSearch, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSearch(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "saved_search", id)
	}
	if s.CriteriaErr != nil {
		return nil, s.CriteriaErr
	}

	return s, nil
}

// Create inserts a new saved search.
func (r *Repo) Create(ctx context.Context, s *domain.SavedSearch) (*domain.SavedSearch, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	raw, err := marshalCriteria(s.Criteria)
	if err != nil {
		return nil, fmt.Errorf("saved_search %s: %w", s.ID, err)
	}

	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	created, err := scanSearch(querier.QueryRow(ctx, createSQL,
		s.ID, s.UserID, raw, string(s.Frequency), s.Active, createdAt.UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "saved_search", s.ID)
	}

	return created, nil
}

// UpdateTimestamps writes the dispatcher stamps that are set in stamps.
// Returns domain.ErrNotFound if the saved search does not exist.
func (r *Repo) UpdateTimestamps(ctx context.Context, id uuid.UUID, stamps domain.DispatchStamps) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, updateTimestampsSQL, id, utcPtr(stamps.LastSent), utcPtr(stamps.LastHeartbeatSent))
	if err != nil {
		return postgres.MapError(err, "saved_search", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("saved_search %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSearch(row pgx.Row) (*domain.SavedSearch, error) {
	var (
		s         domain.SavedSearch
		raw       []byte
		frequency string
	)

	if err := row.Scan(&s.ID, &s.UserID, &raw, &frequency, &s.Active, &s.LastSent, &s.LastHeartbeatSent, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Frequency = domain.AlertFrequency(frequency)

	criteria, err := unmarshalCriteria(raw)
	if err != nil {
		s.CriteriaErr = fmt.Errorf("saved_search %s: %w", s.ID, err)
	} else {
		s.Criteria = criteria
	}

	return &s, nil
}

// ---------------------------------------------------------------------------
// JSONB serialization helpers for SearchCriteria
// ---------------------------------------------------------------------------

// criteriaJSON is the storage shape of domain.SearchCriteria.
// Domain types have no json tags, so the repo layer handles serialization.
type criteriaJSON struct {
	Keyword  string `json:"keyword,omitempty"`
	Location string `json:"location,omitempty"`
	Category string `json:"category,omitempty"`
	Language string `json:"language,omitempty"`
	Remote   *bool  `json:"remote,omitempty"`
}

func marshalCriteria(c domain.SearchCriteria) ([]byte, error) {
	return json.Marshal(criteriaJSON{
		Keyword:  c.Keyword,
		Location: c.Location,
		Category: c.Category,
		Language: c.Language,
		Remote:   c.Remote,
	})
}

func unmarshalCriteria(data []byte) (domain.SearchCriteria, error) {
	if len(data) == 0 {
		return domain.SearchCriteria{}, nil
	}

	var j criteriaJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return domain.SearchCriteria{}, fmt.Errorf("unmarshal criteria: %w", err)
	}

	return domain.SearchCriteria{
		Keyword:  j.Keyword,
		Location: j.Location,
		Category: j.Category,
		Language: j.Language,
		Remote:   j.Remote,
	}, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC().Truncate(time.Microsecond)
	return &v
}

// Package job implements the job catalogue used by the application flows
// and the saved-search match engine.
package job

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/recruitment-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// MatchLimit caps the number of jobs returned for one saved search.
const MatchLimit = 50

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides job reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new job repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var jobColumns = []string{
	"id", "recruiter_id", "title", "company", "location", "category", "language", "remote", "published", "posted_at",
}

const getByIDSQL = `
SELECT id, recruiter_id, title, company, location, category, language, remote, published, posted_at
FROM jobs
WHERE id = $1`

const listPublishedByRecruiterSQL = `
SELECT id, recruiter_id, title, company, location, category, language, remote, published, posted_at
FROM jobs
WHERE recruiter_id = $1 AND published
ORDER BY posted_at DESC, id`

// GetByID returns a job by primary key.
// Returns domain.ErrNotFound if the job does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	j, err := scanJob(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "job", id)
	}

	return j, nil
}

// ListPublishedByRecruiter returns the recruiter's published jobs, newest first.
func (r *Repo) ListPublishedByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]domain.Job, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listPublishedByRecruiterSQL, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("list published jobs: %w", err)
	}

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, fmt.Errorf("list published jobs: %w", err)
	}

	return jobs, nil
}

// Match returns published jobs posted after since that satisfy criteria,
// newest first. It has no side effects and returns the same result for the
// same window as long as the catalogue does not change.
func (r *Repo) Match(ctx context.Context, criteria domain.SearchCriteria, since time.Time) ([]domain.JobSummary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := matchQuery(criteria, since).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build match query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("match jobs: %w", err)
	}

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, fmt.Errorf("match jobs: %w", err)
	}

	summaries := make([]domain.JobSummary, len(jobs))
	for i := range jobs {
		summaries[i] = jobs[i].Summary()
	}

	return summaries, nil
}

func matchQuery(criteria domain.SearchCriteria, since time.Time) sq.SelectBuilder {
	c := criteria.Normalize()

	conds := sq.And{
		sq.Eq{"published": true},
		sq.Gt{"posted_at": since.UTC()},
	}
	if c.Keyword != "" {
		pattern := likePattern(c.Keyword)
		conds = append(conds, sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"company": pattern},
		})
	}
	if c.Location != "" {
		conds = append(conds, sq.ILike{"location": likePattern(c.Location)})
	}
	if c.Category != "" {
		conds = append(conds, sq.Eq{"lower(category)": c.Category})
	}
	if c.Language != "" {
		conds = append(conds, sq.Eq{"lower(language)": c.Language})
	}
	if c.Remote != nil {
		conds = append(conds, sq.Eq{"remote": *c.Remote})
	}

	return psql.Select(jobColumns...).
		From("jobs").
		Where(conds).
		OrderBy("posted_at DESC", "id").
		Limit(MatchLimit)
}

// likePattern wraps s in % after escaping LIKE metacharacters.
func likePattern(s string) string {
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + s + "%"
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(&j.ID, &j.RecruiterID, &j.Title, &j.Company, &j.Location,
		&j.Category, &j.Language, &j.Remote, &j.Published, &j.PostedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

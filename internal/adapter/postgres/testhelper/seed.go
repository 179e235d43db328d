package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role. Recruiters also get a
// recruiter_settings row with notes disabled.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	if role == domain.UserRoleRecruiter {
		_, err = pool.Exec(ctx,
			`INSERT INTO recruiter_settings (recruiter_id, notes_enabled) VALUES ($1, false)`,
			user.ID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedUser insert recruiter_settings: %v", err)
		}
	}

	return user
}

// SeedJob creates a job owned by recruiterID.
func SeedJob(t *testing.T, pool *pgxpool.Pool, recruiterID uuid.UUID, published bool) domain.Job {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	job := domain.Job{
		ID:          uuid.New(),
		RecruiterID: recruiterID,
		Title:       "Go Developer " + suffix,
		Company:     "Acme " + suffix,
		Location:    "Berlin",
		Category:    "engineering",
		Language:    "en",
		Remote:      true,
		Published:   published,
		PostedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO jobs (id, recruiter_id, title, company, location, category, language, remote, published, posted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		job.ID, job.RecruiterID, job.Title, job.Company, job.Location, job.Category,
		job.Language, job.Remote, job.Published, job.PostedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedJob: %v", err)
	}

	return job
}

// SeedApplication inserts an application for candidateID. jobID may be nil
// for a general contact.
func SeedApplication(
	t *testing.T,
	pool *pgxpool.Pool,
	recruiterID, candidateID uuid.UUID,
	jobID *uuid.UUID,
	status domain.ApplicationStatus,
) domain.Application {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	app := domain.Application{
		ID:             uuid.New(),
		Status:         status,
		JobID:          jobID,
		RecruiterID:    recruiterID,
		CandidateID:    candidateID,
		AppliedAt:      now,
		LastActivityAt: now,
		Published:      true,
		Version:        1,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO applications (id, status, job_id, recruiter_id, candidate_id, applied_at, last_activity_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.ID, string(app.Status), app.JobID, app.RecruiterID, app.CandidateID, app.AppliedAt, app.LastActivityAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication: %v", err)
	}

	return app
}

// SeedSavedSearch creates an active saved search for userID.
func SeedSavedSearch(
	t *testing.T,
	pool *pgxpool.Pool,
	userID uuid.UUID,
	criteria domain.SearchCriteria,
	frequency domain.AlertFrequency,
) domain.SavedSearch {
	t.Helper()
	ctx := context.Background()

	raw, err := json.Marshal(map[string]any{
		"keyword":  criteria.Keyword,
		"location": criteria.Location,
		"category": criteria.Category,
		"language": criteria.Language,
		"remote":   criteria.Remote,
	})
	if err != nil {
		t.Fatalf("testhelper: SeedSavedSearch marshal criteria: %v", err)
	}

	search := domain.SavedSearch{
		ID:        uuid.New(),
		UserID:    userID,
		Criteria:  criteria,
		Frequency: frequency,
		Active:    true,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO saved_searches (id, user_id, criteria, frequency, active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		search.ID, search.UserID, raw, string(search.Frequency), search.Active, search.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSavedSearch: %v", err)
	}

	return search
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posting owned by a recruiter.
type Job struct {
	ID          uuid.UUID
	RecruiterID uuid.UUID
	Title       string
	Company     string
	Location    string
	Category    string
	Language    string
	Remote      bool
	Published   bool
	PostedAt    time.Time
}

// Summary returns the candidate-facing projection of the job.
func (j *Job) Summary() JobSummary {
	return JobSummary{
		ID:       j.ID,
		Title:    j.Title,
		Company:  j.Company,
		Location: j.Location,
		PostedAt: j.PostedAt,
	}
}

// JobSummary is the candidate-facing projection of a job used in alert
// emails and in the ambiguous-job error of the contact flow.
type JobSummary struct {
	ID       uuid.UUID
	Title    string
	Company  string
	Location string
	PostedAt time.Time
}

package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// Contact records a recruiter reaching out to a candidate. The resulting
// status is always contacted.
//
// An existing live application between the two parties is advanced to
// contacted unless it is terminal or already further along, in which case
// AlreadyContactedError is returned. Otherwise a new application is created
// for the given job, or for the recruiter's only published job when none is
// given.
func (s *Service) Contact(ctx context.Context, actor domain.Actor, input ContactInput) (*domain.Application, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	recruiterID, err := contactingRecruiter(actor, input.RecruiterID)
	if err != nil {
		return nil, err
	}

	var (
		app  *domain.Application
		from domain.ApplicationStatus
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, findErr := s.apps.FindOne(txCtx, domain.ApplicationFilter{
			RecruiterID: &recruiterID,
			CandidateID: &input.CandidateID,
			Archived:    ptr(false),
		})
		if findErr != nil {
			return fmt.Errorf("find application: %w", findErr)
		}

		now := s.now()

		if existing != nil {
			app, from = existing, existing.Status
			if app.Status.IsTerminal() || domain.StatusPriority(app.Status) > domain.StatusPriority(domain.StatusContacted) {
				return &domain.AlreadyContactedError{ApplicationID: app.ID.String(), Status: app.Status}
			}
			if err := domain.ValidateTransition(app.Status, domain.StatusContacted); err != nil {
				return err
			}

			if input.JobID != nil && app.JobID == nil {
				job, jobErr := s.contactJob(txCtx, recruiterID, *input.JobID)
				if jobErr != nil {
					return jobErr
				}
				app.JobID = &job.ID
			}

			app.Status = domain.StatusContacted
			app.LastActivityAt = now
			s.logContact(app, actor, now)

			if err := assertContactStatus(app); err != nil {
				return err
			}
			return s.save(txCtx, app)
		}

		job, jobErr := s.resolveContactJob(txCtx, recruiterID, input.JobID)
		if jobErr != nil {
			return jobErr
		}

		app = &domain.Application{
			ID:             uuid.New(),
			Status:         domain.StatusContacted,
			JobID:          &job.ID,
			RecruiterID:    recruiterID,
			CandidateID:    input.CandidateID,
			AppliedAt:      now,
			LastActivityAt: now,
			Published:      true,
		}
		s.logContact(app, actor, now)

		if err := assertContactStatus(app); err != nil {
			return err
		}
		if createErr := s.apps.Create(txCtx, app); createErr != nil {
			return fmt.Errorf("create application: %w", createErr)
		}
		return nil
	})
	if err != nil {
		if inv, ok := asInvariant(err); ok {
			s.log.ErrorContext(ctx, "contact aborted", slog.String("op", inv.Op), slog.String("detail", inv.Detail))
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "candidate contacted",
		slog.String("application_id", app.ID.String()),
		slog.String("recruiter_id", recruiterID.String()),
		slog.String("candidate_id", input.CandidateID.String()),
		slog.String("previous_status", from.String()),
	)

	s.notify(ctx, app, from, app.Status)

	return app, nil
}

// contactingRecruiter resolves on whose behalf the contact is made.
// Recruiters may only contact as themselves; admins must name a recruiter.
func contactingRecruiter(actor domain.Actor, requested uuid.UUID) (uuid.UUID, error) {
	switch actor.Role {
	case domain.UserRoleRecruiter:
		if requested != uuid.Nil && requested != actor.UserID {
			return uuid.Nil, domain.ErrForbidden
		}
		return actor.UserID, nil
	case domain.UserRoleAdmin:
		if requested == uuid.Nil {
			return uuid.Nil, domain.NewValidationError("recruiter_id", "required")
		}
		return requested, nil
	}
	return uuid.Nil, domain.ErrForbidden
}

// resolveContactJob picks the job for a new contact: the explicit one, or
// the recruiter's single published job.
func (s *Service) resolveContactJob(ctx context.Context, recruiterID uuid.UUID, jobID *uuid.UUID) (*domain.Job, error) {
	if jobID != nil {
		return s.contactJob(ctx, recruiterID, *jobID)
	}

	jobs, err := s.jobs.ListPublishedByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("list published jobs: %w", err)
	}

	switch len(jobs) {
	case 0:
		return nil, domain.ErrNoPublishedJobs
	case 1:
		return &jobs[0], nil
	}

	summaries := make([]domain.JobSummary, 0, len(jobs))
	for i := range jobs {
		summaries = append(summaries, jobs[i].Summary())
	}
	return nil, &domain.AmbiguousJobError{Jobs: summaries}
}

// contactJob loads an explicitly chosen job and checks it belongs to the
// recruiter and is published.
func (s *Service) contactJob(ctx context.Context, recruiterID, jobID uuid.UUID) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if job.RecruiterID != recruiterID {
		return nil, domain.ErrForbidden
	}
	if !job.Published {
		return nil, fmt.Errorf("job %s: %w", job.ID, domain.ErrNotFound)
	}
	return job, nil
}

func (s *Service) logContact(app *domain.Application, actor domain.Actor, now time.Time) {
	if actor.Role != domain.UserRoleAdmin {
		return
	}
	app.AdminActions = append(app.AdminActions, domain.AdminAction{
		AdminID:   actor.UserID,
		Action:    domain.AdminActionContact,
		Details:   fmt.Sprintf("contacted on behalf of recruiter %s", app.RecruiterID),
		Timestamp: now,
	})
}

// assertContactStatus refuses to persist a contact in any status other than
// contacted. applied is reserved for candidate-initiated applications.
func assertContactStatus(app *domain.Application) error {
	if app.Status != domain.StatusContacted {
		return &domain.InvariantError{
			Op:     "contact",
			Detail: fmt.Sprintf("application %s would be persisted as %q", app.ID, app.Status),
		}
	}
	return nil
}

func asInvariant(err error) (*domain.InvariantError, bool) {
	var inv *domain.InvariantError
	ok := errors.As(err, &inv)
	return inv, ok
}

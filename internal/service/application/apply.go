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

// Apply records a candidate's application to a published job.
//
// A live application for the same job fails with ErrDuplicateApplication.
// A live general contact from the job's recruiter is promoted in place, and
// an archived application for the same job is restored instead of creating
// a second record.
func (s *Service) Apply(ctx context.Context, actor domain.Actor, input ApplyInput) (*domain.Application, error) {
	if actor.Role != domain.UserRoleJobSeeker {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if !job.Published {
		return nil, fmt.Errorf("job %s: %w", job.ID, domain.ErrNotFound)
	}

	coverNote := sanitizeCoverNote(input.CoverNote, s.coverNoteMax)
	candidateID := actor.UserID

	var (
		app     *domain.Application
		outcome string
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		live, findErr := s.apps.FindOne(txCtx, domain.ApplicationFilter{
			JobID:       &job.ID,
			CandidateID: &candidateID,
			Archived:    ptr(false),
		})
		if findErr != nil {
			return fmt.Errorf("find application: %w", findErr)
		}
		if live != nil {
			return domain.ErrDuplicateApplication
		}

		now := s.now()

		contact, findErr := s.apps.FindOne(txCtx, domain.ApplicationFilter{
			RecruiterID:    &job.RecruiterID,
			CandidateID:    &candidateID,
			GeneralContact: true,
			Archived:       ptr(false),
		})
		if findErr != nil {
			return fmt.Errorf("find general contact: %w", findErr)
		}
		if contact != nil {
			app, outcome = contact, "promoted"
			app.JobID = &job.ID
			resetToApplied(app, coverNote, now)
			return s.save(txCtx, app)
		}

		archived, findErr := s.apps.FindOne(txCtx, domain.ApplicationFilter{
			JobID:       &job.ID,
			CandidateID: &candidateID,
			Archived:    ptr(true),
		})
		if findErr != nil {
			return fmt.Errorf("find archived application: %w", findErr)
		}
		if archived != nil {
			app, outcome = archived, "restored"
			app.ArchivedByJobSeeker = false
			app.ArchivedByRecruiter = false
			app.ArchivedByAdmin = false
			resetToApplied(app, coverNote, now)
			return s.save(txCtx, app)
		}

		app, outcome = &domain.Application{
			ID:             uuid.New(),
			Status:         domain.StatusApplied,
			JobID:          &job.ID,
			RecruiterID:    job.RecruiterID,
			CandidateID:    candidateID,
			CoverNote:      coverNote,
			AppliedAt:      now,
			LastActivityAt: now,
			Published:      true,
		}, "created"
		if createErr := s.apps.Create(txCtx, app); createErr != nil {
			if errors.Is(createErr, domain.ErrDuplicateApplication) {
				return createErr
			}
			return fmt.Errorf("create application: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "application submitted",
		slog.String("application_id", app.ID.String()),
		slog.String("job_id", job.ID.String()),
		slog.String("candidate_id", candidateID.String()),
		slog.String("outcome", outcome),
	)

	return app, nil
}

// resetToApplied puts app back at the start of the lifecycle as a fresh
// candidate application.
func resetToApplied(app *domain.Application, coverNote *string, now time.Time) {
	app.Status = domain.StatusApplied
	app.CoverNote = coverNote
	app.AppliedAt = now
	app.LastActivityAt = now
	app.ViewedAt = nil
	app.WithdrawnAt = nil
}

func (s *Service) save(ctx context.Context, app *domain.Application) error {
	if err := s.apps.Save(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return err
		}
		return fmt.Errorf("save application: %w", err)
	}
	return nil
}

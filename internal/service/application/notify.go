package application

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

type userDirectory interface {
	GetNameAndEmail(ctx context.Context, userID uuid.UUID) (name, email string, err error)
}

type emailSender interface {
	Send(ctx context.Context, msg domain.EmailMessage) domain.SendResult
}

// StatusMailer emails candidates when their application status changes.
// It never fails the caller: the status change is already committed when
// it runs, so problems are only logged.
type StatusMailer struct {
	users  userDirectory
	sender emailSender
	log    *slog.Logger
}

// NewStatusMailer creates a StatusMailer.
func NewStatusMailer(log *slog.Logger, users userDirectory, sender emailSender) *StatusMailer {
	return &StatusMailer{
		users:  users,
		sender: sender,
		log:    log.With("service", "status_mailer"),
	}
}

// NotifyStatusChange sends the transactional status email for app.
func (m *StatusMailer) NotifyStatusChange(ctx context.Context, app *domain.Application, from, to domain.ApplicationStatus) {
	attrs := []any{
		slog.String("application_id", app.ID.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	}

	name, email, err := m.users.GetNameAndEmail(ctx, app.CandidateID)
	if err != nil {
		m.log.WarnContext(ctx, "status email skipped: candidate not resolved", append(attrs, slog.String("error", err.Error()))...)
		return
	}

	subject, line := statusCopy(to)
	if name == "" {
		name = "there"
	}
	text := fmt.Sprintf("Hi %s,\n\n%s\n", name, line)
	body := fmt.Sprintf("<p>Hi %s,</p><p>%s</p>", html.EscapeString(name), html.EscapeString(line))

	res := m.sender.Send(ctx, domain.EmailMessage{
		To:       email,
		Subject:  subject,
		HTML:     body,
		Text:     text,
		Category: domain.EmailCategoryTransactional,
		Tags:     []string{"application-status", to.String()},
	})
	if !res.Success {
		m.log.ErrorContext(ctx, "status email failed", append(attrs, slog.Any("error", res.Err))...)
		return
	}

	m.log.InfoContext(ctx, "status email sent", attrs...)
}

// statusCopy returns the subject and message for a status the candidate is
// told about.
func statusCopy(s domain.ApplicationStatus) (subject, line string) {
	switch s {
	case domain.StatusContacted:
		return "A recruiter reached out to you", "A recruiter is interested in your profile and has contacted you."
	case domain.StatusInterviewing:
		return "You have been invited to interview", "Your application moved to the interview stage."
	case domain.StatusOffered:
		return "You received an offer", "Good news: the recruiter has made you an offer."
	case domain.StatusRejected:
		return "Update on your application", "The recruiter decided not to move forward with your application."
	case domain.StatusApplied, domain.StatusViewed, domain.StatusHired, domain.StatusAccepted, domain.StatusWithdrawn:
		return "Update on your application", fmt.Sprintf("Your application is now %s.", s)
	default:
		panic(fmt.Sprintf("application: unknown status %q", string(s)))
	}
}

// Package email delivers outgoing mail. Sender wraps a Transport with a
// send-rate limit and retries with exponential backoff.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/recruitment-backend/internal/config"
	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// Sender implements the EmailSender contract on top of a Transport.
type Sender struct {
	transport Transport
	from      mail.Address
	limiter   *rate.Limiter
	log       *slog.Logger

	maxTries       uint
	initialBackoff time.Duration
	maxBackoff     time.Duration
	now            func() time.Time
}

// NewSender creates a Sender from config. DryRun or an empty SMTP host
// selects the logging transport.
func NewSender(log *slog.Logger, cfg config.EmailConfig) *Sender {
	var t Transport
	if cfg.DryRun || cfg.SMTPHost == "" {
		t = NewLogTransport(log)
	} else {
		t = NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password, cfg.SendTimeout)
	}
	return newSender(log, cfg, t)
}

func newSender(log *slog.Logger, cfg config.EmailConfig, t Transport) *Sender {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	return &Sender{
		transport:      t,
		from:           mail.Address{Name: cfg.FromName, Address: cfg.From},
		limiter:        rate.NewLimiter(limit, 1),
		log:            log.With("adapter", "email"),
		maxTries:       cfg.MaxRetries + 1,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		now:            time.Now,
	}
}

// Send delivers msg. It blocks on the rate limiter and retries transient
// failures; SMTP 5xx replies and malformed messages fail at once.
// The outcome is always reported through SendResult.
func (s *Sender) Send(ctx context.Context, msg domain.EmailMessage) domain.SendResult {
	data, err := buildMessage(s.from, msg, s.now())
	if err != nil {
		return domain.SendResult{Err: fmt.Errorf("build message: %w", err)}
	}
	to, _ := mail.ParseAddress(msg.To)

	attempts := 0
	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		attempts++
		if err := s.limiter.Wait(ctx); err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		if err := s.transport.Deliver(ctx, s.from.Address, []string{to.Address}, data); err != nil {
			if isPermanent(err) {
				return struct{}{}, backoff.Permanent(err)
			}
			return struct{}{}, err
		}
		return struct{}{}, nil
	},
		backoff.WithBackOff(s.newBackOff()),
		backoff.WithMaxTries(s.maxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			s.log.WarnContext(ctx, "email delivery failed, retrying",
				slog.String("to", to.Address),
				slog.Int("attempt", attempts),
				slog.Duration("retry_in", next),
				slog.String("error", err.Error()),
			)
		}),
	)
	if err != nil {
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			err = perm.Unwrap()
		}
		s.log.ErrorContext(ctx, "email delivery failed",
			slog.String("to", to.Address),
			slog.String("category", string(msg.Category)),
			slog.Int("attempts", attempts),
			slog.String("error", err.Error()),
		)
		return domain.SendResult{Err: fmt.Errorf("deliver email: %w", err)}
	}

	s.log.DebugContext(ctx, "email delivered",
		slog.String("to", to.Address),
		slog.String("category", string(msg.Category)),
		slog.Int("attempts", attempts),
	)
	return domain.SendResult{Success: true}
}

func (s *Sender) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	if s.initialBackoff > 0 {
		b.InitialInterval = s.initialBackoff
	}
	if s.maxBackoff > 0 {
		b.MaxInterval = s.maxBackoff
	}
	return b
}

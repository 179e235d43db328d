package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// Run processes every active saved search once, as of now.
//
// The only error returned is a failure to list saved searches. Failures of
// individual searches are logged with the saved search id, counted in
// Summary.Errors and never stop the run. A user receives at most one job
// alert per run. Saved searches of one user are handled in list order by a
// single worker; different users are handled in parallel.
func (d *Dispatcher) Run(ctx context.Context, now time.Time) (Summary, error) {
	start := time.Now()
	if d.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.runTimeout)
		defer cancel()
	}

	searches, err := d.searches.ListActive(ctx)
	if err != nil {
		d.metrics.RecordFailedRun(time.Since(start))
		d.log.ErrorContext(ctx, "dispatch run aborted", slog.String("error", err.Error()))
		return Summary{}, fmt.Errorf("list saved searches: %w", err)
	}

	st := newRunState()

	var g errgroup.Group
	g.SetLimit(d.workers)
	for _, group := range groupByUser(searches) {
		g.Go(func() error {
			for _, s := range group {
				st.report(d.processSearch(ctx, st, s, now))
			}
			return nil
		})
	}
	_ = g.Wait()

	summary := st.finish()
	summary.TotalSearches = len(searches)

	took := time.Since(start)
	d.metrics.RecordRun(summary.counts(), took, time.Now())
	d.log.InfoContext(ctx, "dispatch run completed",
		slog.Int("total_searches", summary.TotalSearches),
		slog.Int("processed", summary.Processed),
		slog.Int("emails_sent", summary.EmailsSent),
		slog.Int("heartbeat_sent", summary.HeartbeatSent),
		slog.Int("suppressed", summary.Suppressed),
		slog.Int("skipped", summary.Skipped),
		slog.Int("errors", summary.Errors),
		slog.Duration("took", took),
	)

	return summary, nil
}

// groupByUser splits searches by owner, keeping list order inside each group
// and ordering groups by first appearance.
func groupByUser(searches []domain.SavedSearch) [][]domain.SavedSearch {
	index := make(map[uuid.UUID]int)
	var groups [][]domain.SavedSearch
	for _, s := range searches {
		i, ok := index[s.UserID]
		if !ok {
			i = len(groups)
			index[s.UserID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], s)
	}
	return groups
}

// processSearch runs one saved search through the dispatch steps and
// reports how it ended. Panics are converted into a failed outcome.
func (d *Dispatcher) processSearch(ctx context.Context, st *runState, s domain.SavedSearch, now time.Time) (res outcome) {
	log := d.log.With(slog.String("saved_search_id", s.ID.String()), slog.String("user_id", s.UserID.String()))

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			log.ErrorContext(ctx, "saved search failed", slog.String("error", err.Error()))
			res = outcome{kind: outcomeFailed, processed: res.processed, err: err}
		}
	}()

	w, ok := window(s.Frequency)
	if !ok || !eligible(s.LastSent, w, now) {
		return outcome{kind: outcomeSkipped}
	}

	if s.CriteriaErr != nil {
		log.ErrorContext(ctx, "saved search failed", slog.String("step", "criteria"), slog.String("error", s.CriteriaErr.Error()))
		return outcome{kind: outcomeFailed, err: s.CriteriaErr}
	}

	sctx := ctx
	if d.searchTimeout > 0 {
		var cancel context.CancelFunc
		sctx, cancel = context.WithTimeout(ctx, d.searchTimeout)
		defer cancel()
	}

	name, email, err := d.users.GetNameAndEmail(sctx, s.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.WarnContext(ctx, "saved search skipped: user or email missing")
			return outcome{kind: outcomeSkipped}
		}
		log.ErrorContext(ctx, "saved search failed", slog.String("step", "resolve_user"), slog.String("error", err.Error()))
		return outcome{kind: outcomeFailed, err: err}
	}
	if email == "" {
		log.WarnContext(ctx, "saved search skipped: user or email missing")
		return outcome{kind: outcomeSkipped}
	}
	recipient := recipient{name: name, email: email}

	res.processed = true

	granted, err := st.reserve(ctx, s.UserID, now)
	if err != nil {
		log.ErrorContext(ctx, "saved search failed", slog.String("step", "reserve"), slog.String("error", err.Error()))
		return outcome{kind: outcomeFailed, processed: true, err: err}
	}
	if !granted {
		log.InfoContext(ctx, "job alert suppressed: user already alerted in this run")
		return outcome{kind: outcomeSuppressed, processed: true}
	}

	committed := false
	defer func() {
		if !committed {
			st.release(s.UserID)
		}
	}()

	jobs, err := d.matcher.Match(sctx, s.Criteria, matchSince(s.LastSent, w, now))
	if err != nil {
		log.ErrorContext(ctx, "saved search failed", slog.String("step", "match"), slog.String("error", err.Error()))
		return outcome{kind: outcomeFailed, processed: true, err: err}
	}

	if len(jobs) == 0 {
		return d.sendHeartbeat(sctx, log, s, recipient, now)
	}

	msg, err := d.alertMessage(s, recipient, jobs)
	if err != nil {
		log.ErrorContext(ctx, "saved search failed", slog.String("step", "render_alert"), slog.String("error", err.Error()))
		return outcome{kind: outcomeFailed, processed: true, err: err}
	}
	if sent := d.sender.Send(sctx, msg); !sent.Success {
		err := sendError(sent)
		log.ErrorContext(ctx, "saved search failed", slog.String("step", "send_alert"), slog.String("error", err.Error()))
		return outcome{kind: outcomeFailed, processed: true, err: err}
	}

	// The alert is out: the cap holds even if the stamp below fails.
	st.commit(s.UserID, now)
	committed = true

	if err := d.searches.UpdateTimestamps(sctx, s.ID, domain.DispatchStamps{LastSent: &now}); err != nil {
		log.ErrorContext(ctx, "job alert sent but last_sent not stored", slog.String("error", err.Error()))
		return outcome{kind: outcomeAlertSent, processed: true, err: err}
	}

	log.InfoContext(ctx, "job alert sent", slog.Int("jobs", len(jobs)))
	return outcome{kind: outcomeAlertSent, processed: true}
}

// sendHeartbeat handles a search with no new matches. Heartbeats have their
// own monthly cadence, are not subject to the alert cap and leave
// last_sent untouched.
func (d *Dispatcher) sendHeartbeat(ctx context.Context, log *slog.Logger, s domain.SavedSearch, to recipient, now time.Time) outcome {
	if !heartbeatDue(s.LastHeartbeatSent, d.heartbeatInterval, now) {
		return outcome{kind: outcomeNothingToSend, processed: true}
	}

	msg, err := d.heartbeatMessage(s, to)
	if err != nil {
		log.ErrorContext(ctx, "saved search failed", slog.String("step", "render_heartbeat"), slog.String("error", err.Error()))
		return outcome{kind: outcomeFailed, processed: true, err: err}
	}
	if sent := d.sender.Send(ctx, msg); !sent.Success {
		err := sendError(sent)
		log.ErrorContext(ctx, "saved search failed", slog.String("step", "send_heartbeat"), slog.String("error", err.Error()))
		return outcome{kind: outcomeFailed, processed: true, err: err}
	}

	if err := d.searches.UpdateTimestamps(ctx, s.ID, domain.DispatchStamps{LastHeartbeatSent: &now}); err != nil {
		log.ErrorContext(ctx, "heartbeat sent but last_heartbeat_sent not stored", slog.String("error", err.Error()))
		return outcome{kind: outcomeHeartbeatSent, processed: true, err: err}
	}

	log.InfoContext(ctx, "heartbeat sent")
	return outcome{kind: outcomeHeartbeatSent, processed: true}
}

func sendError(res domain.SendResult) error {
	if res.Err != nil {
		return res.Err
	}
	return errors.New("email not accepted")
}

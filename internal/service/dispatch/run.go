package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/telemetry"
)

// Summary is the observable result of one run.
type Summary struct {
	TotalSearches int
	Processed     int // eligible searches with a resolvable user
	EmailsSent    int // job alerts
	HeartbeatSent int
	Suppressed    int // blocked by the one-alert-per-user cap
	Skipped       int // never, not yet due, or no usable user
	Errors        int
}

func (s Summary) counts() telemetry.RunCounts {
	return telemetry.RunCounts{
		TotalSearches: s.TotalSearches,
		Processed:     s.Processed,
		EmailsSent:    s.EmailsSent,
		HeartbeatSent: s.HeartbeatSent,
		Suppressed:    s.Suppressed,
		Skipped:       s.Skipped,
		Errors:        s.Errors,
	}
}

type outcomeKind int

const (
	outcomeSkipped outcomeKind = iota
	outcomeSuppressed
	outcomeNothingToSend
	outcomeAlertSent
	outcomeHeartbeatSent
	outcomeFailed
)

// outcome is the completion event of one saved search.
type outcome struct {
	kind      outcomeKind
	processed bool
	err       error // set for outcomeFailed; may accompany a sent email whose stamp failed
}

type eventKind int

const (
	eventReserve eventKind = iota
	eventCommit
	eventRelease
	eventDone
)

type event struct {
	kind  eventKind
	user  uuid.UUID
	at    time.Time
	reply chan bool // eventReserve only
	res   outcome   // eventDone only
}

// runState is the memory of one run. A single goroutine owns the per-user
// alert maps and the summary; workers talk to it only through events, so
// the cap check and the recording of a sent alert cannot interleave.
type runState struct {
	events chan event
	done   chan struct{}

	userLastAlertSent   map[uuid.UUID]time.Time
	jobAlertCountsInRun map[uuid.UUID]int
	inflight            map[uuid.UUID]bool
	waiting             map[uuid.UUID][]event

	summary Summary
}

func newRunState() *runState {
	st := &runState{
		events:              make(chan event),
		done:                make(chan struct{}),
		userLastAlertSent:   make(map[uuid.UUID]time.Time),
		jobAlertCountsInRun: make(map[uuid.UUID]int),
		inflight:            make(map[uuid.UUID]bool),
		waiting:             make(map[uuid.UUID][]event),
	}
	go st.loop()
	return st
}

func (st *runState) loop() {
	defer close(st.done)

	for ev := range st.events {
		switch ev.kind {
		case eventReserve:
			switch {
			case st.capped(ev.user, ev.at):
				ev.reply <- false
			case st.inflight[ev.user]:
				st.waiting[ev.user] = append(st.waiting[ev.user], ev)
			default:
				st.inflight[ev.user] = true
				ev.reply <- true
			}

		case eventCommit:
			st.userLastAlertSent[ev.user] = ev.at
			st.jobAlertCountsInRun[ev.user]++
			delete(st.inflight, ev.user)
			for _, w := range st.waiting[ev.user] {
				w.reply <- false
			}
			delete(st.waiting, ev.user)

		case eventRelease:
			delete(st.inflight, ev.user)
			if queue := st.waiting[ev.user]; len(queue) > 0 {
				next := queue[0]
				st.waiting[ev.user] = queue[1:]
				st.inflight[ev.user] = true
				next.reply <- true
			}

		case eventDone:
			st.tally(ev.res)
		}
	}
}

// capped reports whether user already got a job alert in this run.
func (st *runState) capped(user uuid.UUID, now time.Time) bool {
	if last, ok := st.userLastAlertSent[user]; ok && now.Sub(last) < userAlertCooldown {
		return true
	}
	return st.jobAlertCountsInRun[user] >= 1
}

func (st *runState) tally(res outcome) {
	if res.processed {
		st.summary.Processed++
	}
	switch res.kind {
	case outcomeSkipped:
		st.summary.Skipped++
	case outcomeSuppressed:
		st.summary.Suppressed++
	case outcomeAlertSent:
		st.summary.EmailsSent++
	case outcomeHeartbeatSent:
		st.summary.HeartbeatSent++
	case outcomeNothingToSend, outcomeFailed:
	}
	if res.err != nil {
		st.summary.Errors++
	}
}

// reserve asks for the exclusive right to send user a job alert. It returns
// false when the user is capped. While another search of the same user holds
// a reservation the call waits for that search to commit or release.
func (st *runState) reserve(ctx context.Context, user uuid.UUID, now time.Time) (bool, error) {
	reply := make(chan bool, 1)
	select {
	case st.events <- event{kind: eventReserve, user: user, at: now, reply: reply}:
	case <-ctx.Done():
		return false, ctx.Err()
	}
	select {
	case ok := <-reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// commit records a sent alert and ends the reservation.
func (st *runState) commit(user uuid.UUID, at time.Time) {
	st.events <- event{kind: eventCommit, user: user, at: at}
}

// release ends a reservation without recording an alert.
func (st *runState) release(user uuid.UUID) {
	st.events <- event{kind: eventRelease, user: user}
}

func (st *runState) report(res outcome) {
	st.events <- event{kind: eventDone, res: res}
}

// finish stops the owner goroutine and returns the tallied summary.
func (st *runState) finish() Summary {
	close(st.events)
	<-st.done
	return st.summary
}

package dispatch

import (
	"fmt"
	"time"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// window returns the alert cadence for f. ok is false for never.
func window(f domain.AlertFrequency) (d time.Duration, ok bool) {
	switch f {
	case domain.FrequencyDaily:
		return dailyWindow, true
	case domain.FrequencyWeekly:
		return weeklyWindow, true
	case domain.FrequencyNever:
		return 0, false
	default:
		panic(fmt.Sprintf("dispatch: unknown alert frequency %q", string(f)))
	}
}

// eligible reports whether a search with the given cadence is due at now.
// A search that was never sent is always due.
func eligible(lastSent *time.Time, w time.Duration, now time.Time) bool {
	return lastSent == nil || elapsed(*lastSent, w, now)
}

// elapsed reports whether more than w, less scheduleTolerance, has passed
// since last.
func elapsed(last time.Time, w time.Duration, now time.Time) bool {
	return now.Sub(last) > w-scheduleTolerance
}

// matchSince is the lower bound passed to the match engine: the last alert,
// or the start of the eligibility window for a search never sent.
func matchSince(lastSent *time.Time, w time.Duration, now time.Time) time.Time {
	if lastSent != nil {
		return *lastSent
	}
	return now.Add(-w)
}

// heartbeatDue reports whether a heartbeat may be sent at now.
func heartbeatDue(last *time.Time, interval time.Duration, now time.Time) bool {
	return last == nil || elapsed(*last, interval, now)
}

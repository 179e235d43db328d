package domain

import (
	"fmt"
	"slices"
)

// transitions is the application state machine. Terminal statuses have no
// row. The legacy accepted status is only ever read from stored rows and is
// never a target. The table is shared by server-side enforcement and the pre-flight
// endpoint that publishes it to clients.
var transitions = map[ApplicationStatus][]ApplicationStatus{
	StatusApplied: {
		StatusViewed, StatusContacted, StatusInterviewing, StatusOffered, StatusRejected, StatusWithdrawn,
	},
	StatusViewed: {
		StatusContacted, StatusInterviewing, StatusOffered, StatusRejected, StatusWithdrawn,
	},
	StatusContacted: {
		StatusInterviewing, StatusOffered, StatusRejected, StatusWithdrawn,
	},
	StatusInterviewing: {
		StatusOffered, StatusHired, StatusRejected, StatusWithdrawn,
	},
	StatusOffered: {
		StatusHired, StatusRejected, StatusWithdrawn,
	},
}

// AllowedNext returns the statuses reachable from s in one step.
// The result is a copy; terminal statuses yield an empty slice.
func AllowedNext(s ApplicationStatus) []ApplicationStatus {
	if s.IsTerminal() {
		return []ApplicationStatus{}
	}
	return slices.Clone(transitions[s])
}

// ValidateTransition checks a status change against the transition table.
// A same-status write is accepted for non-terminal statuses and rejected for
// terminal ones, exactly like a real change out of a terminal status.
func ValidateTransition(from, to ApplicationStatus) error {
	if !from.IsValid() {
		return NewValidationError("status", fmt.Sprintf("unknown current status %q", from))
	}
	if !to.IsValid() {
		return NewValidationError("status", fmt.Sprintf("unknown target status %q", to))
	}
	if from.IsTerminal() {
		return &TransitionError{From: from, To: to}
	}
	if from == to {
		return nil
	}
	if !slices.Contains(transitions[from], to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// StatusPriority orders progress states: applied < viewed < contacted <
// interviewing < offered < hired. Rejected and withdrawn are outside the
// progress order and rank 0; callers check IsTerminal first.
func StatusPriority(s ApplicationStatus) int {
	switch s {
	case StatusApplied:
		return 1
	case StatusViewed:
		return 2
	case StatusContacted:
		return 3
	case StatusInterviewing:
		return 4
	case StatusOffered:
		return 5
	case StatusHired, StatusAccepted:
		return 6
	case StatusRejected, StatusWithdrawn:
		return 0
	default:
		panic(fmt.Sprintf("domain: unknown application status %q", string(s)))
	}
}

// TransitionTable returns the full table keyed by source status, including
// empty rows for terminal statuses.
func TransitionTable() map[ApplicationStatus][]ApplicationStatus {
	table := make(map[ApplicationStatus][]ApplicationStatus, len(AllApplicationStatuses))
	for _, s := range AllApplicationStatuses {
		table[s] = AllowedNext(s)
	}
	return table
}

// NotifiesCandidate reports whether entering s sends the candidate an email.
func NotifiesCandidate(s ApplicationStatus) bool {
	switch s {
	case StatusContacted, StatusInterviewing, StatusOffered, StatusRejected:
		return true
	case StatusApplied, StatusViewed, StatusHired, StatusAccepted, StatusWithdrawn:
		return false
	default:
		panic(fmt.Sprintf("domain: unknown application status %q", string(s)))
	}
}

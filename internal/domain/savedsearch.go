package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchCriteria is the stored filter of a saved search. The core passes it
// through to the match engine without interpreting it.
type SearchCriteria struct {
	Keyword  string
	Location string
	Category string
	Language string
	Remote   *bool
}

// SavedSearch is a user-owned search with a job-alert cadence.
// LastSent and LastHeartbeatSent are written only by the dispatcher.
type SavedSearch struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Criteria          SearchCriteria
	Frequency         AlertFrequency
	Active            bool
	LastSent          *time.Time
	LastHeartbeatSent *time.Time
	CreatedAt         time.Time

	// CriteriaErr is set when the stored criteria could not be decoded.
	// Criteria is then zero and the search must not be matched.
	CriteriaErr error
}

// DispatchStamps carries the dispatcher-owned timestamps to persist.
// A nil field is left unchanged.
type DispatchStamps struct {
	LastSent          *time.Time
	LastHeartbeatSent *time.Time
}

// EmailMessage is one outgoing email.
type EmailMessage struct {
	To       string
	Subject  string
	HTML     string
	Text     string
	Category EmailCategory
	Tags     []string
}

// SendResult reports the outcome of one send.
type SendResult struct {
	Success bool
	Err     error
}

package domain

import "fmt"

// ApplicationStatus is the lifecycle state of an Application.
type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "applied"
	StatusViewed       ApplicationStatus = "viewed"
	StatusContacted    ApplicationStatus = "contacted"
	StatusInterviewing ApplicationStatus = "interviewing"
	StatusOffered      ApplicationStatus = "offered"
	StatusHired        ApplicationStatus = "hired"
	StatusAccepted     ApplicationStatus = "accepted" // legacy, terminal
	StatusRejected     ApplicationStatus = "rejected"
	StatusWithdrawn    ApplicationStatus = "withdrawn"
)

// AllApplicationStatuses lists every status. The transition table, the
// priority order and the enum switches must cover each of them.
var AllApplicationStatuses = []ApplicationStatus{
	StatusApplied,
	StatusViewed,
	StatusContacted,
	StatusInterviewing,
	StatusOffered,
	StatusHired,
	StatusAccepted,
	StatusRejected,
	StatusWithdrawn,
}

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusApplied, StatusViewed, StatusContacted, StatusInterviewing, StatusOffered,
		StatusHired, StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// IsTerminal reports whether no transition may leave s.
func (s ApplicationStatus) IsTerminal() bool {
	switch s {
	case StatusWithdrawn, StatusRejected, StatusHired, StatusAccepted:
		return true
	case StatusApplied, StatusViewed, StatusContacted, StatusInterviewing, StatusOffered:
		return false
	default:
		panic(fmt.Sprintf("domain: unknown application status %q", string(s)))
	}
}

// ParseApplicationStatus converts external input into a status.
func ParseApplicationStatus(raw string) (ApplicationStatus, error) {
	s := ApplicationStatus(raw)
	if !s.IsValid() {
		return "", NewValidationError("status", fmt.Sprintf("unknown status %q", raw))
	}
	return s, nil
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleJobSeeker UserRole = "job_seeker"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleJobSeeker, UserRoleRecruiter, UserRoleAdmin:
		return true
	}
	return false
}

// AlertFrequency is the cadence of job-alert emails for a saved search.
type AlertFrequency string

const (
	FrequencyDaily  AlertFrequency = "daily"
	FrequencyWeekly AlertFrequency = "weekly"
	FrequencyNever  AlertFrequency = "never"
)

func (f AlertFrequency) String() string { return string(f) }

func (f AlertFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyNever:
		return true
	}
	return false
}

// EmailCategory distinguishes transactional mail from notification mail for
// downstream unsubscribe handling.
type EmailCategory string

const (
	EmailCategoryTransactional EmailCategory = "transactional"
	EmailCategoryNotification  EmailCategory = "notification"
)

func (c EmailCategory) String() string { return string(c) }

// AdminActionType names the kind of entry in an application's admin log.
type AdminActionType string

const (
	AdminActionStatusChange AdminActionType = "status_change"
	AdminActionArchive      AdminActionType = "archive"
	AdminActionUnarchive    AdminActionType = "unarchive"
	AdminActionNotes        AdminActionType = "notes_update"
	AdminActionContact      AdminActionType = "contact"
)

func (a AdminActionType) String() string { return string(a) }

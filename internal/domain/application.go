package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application links a candidate to a recruiter, optionally for a specific job.
// Applications are never deleted; they are archived per actor or end in a
// terminal status.
type Application struct {
	ID          uuid.UUID
	Status      ApplicationStatus
	JobID       *uuid.UUID // nil for a general contact
	RecruiterID uuid.UUID
	CandidateID uuid.UUID
	CoverNote   *string

	AppliedAt      time.Time
	LastActivityAt time.Time
	ViewedAt       *time.Time
	WithdrawnAt    *time.Time

	ArchivedByJobSeeker bool
	ArchivedByRecruiter bool
	ArchivedByAdmin     bool

	Published bool

	RecruiterNotes *string
	AdminNotes     *string
	AdminActions   []AdminAction

	// Version is the optimistic-concurrency token; Save fails with ErrConflict
	// when it no longer matches the stored row.
	Version int
}

// IsGeneralContact reports whether the application has no job attached.
func (a *Application) IsGeneralContact() bool {
	return a.JobID == nil
}

// IsArchived reports whether any actor archived the application.
func (a *Application) IsArchived() bool {
	return a.ArchivedByJobSeeker || a.ArchivedByRecruiter || a.ArchivedByAdmin
}

// ArchivedFor reports whether the application is hidden from role's default listings.
func (a *Application) ArchivedFor(role UserRole) bool {
	switch role {
	case UserRoleJobSeeker:
		return a.ArchivedByJobSeeker
	case UserRoleRecruiter:
		return a.ArchivedByRecruiter
	case UserRoleAdmin:
		return a.ArchivedByAdmin
	}
	return false
}

// AdminAction is an append-only audit entry written by admin operations.
type AdminAction struct {
	AdminID   uuid.UUID
	Action    AdminActionType
	Details   string
	Timestamp time.Time
}

// Actor is the authenticated caller of an application operation.
type Actor struct {
	UserID uuid.UUID
	Role   UserRole
}

// PublicView is the role-filtered representation of an Application returned
// to callers. Fields a role may not see are left nil.
type PublicView struct {
	ID             uuid.UUID
	Status         ApplicationStatus
	JobID          *uuid.UUID
	RecruiterID    uuid.UUID
	CandidateID    uuid.UUID
	CoverNote      *string
	AppliedAt      time.Time
	LastActivityAt time.Time
	ViewedAt       *time.Time
	WithdrawnAt    *time.Time
	Archived       bool

	Published      *bool
	RecruiterNotes *string
	AdminNotes     *string
	AdminActions   []AdminAction
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the minimal view of a marketplace account needed by the core.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      UserRole
	CreatedAt time.Time
}

// RecruiterSettings holds per-recruiter feature switches.
type RecruiterSettings struct {
	RecruiterID  uuid.UUID
	NotesEnabled bool
	UpdatedAt    time.Time
}

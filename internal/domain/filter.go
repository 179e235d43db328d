package domain

import "github.com/google/uuid"

// ApplicationFilter selects applications for FindOne and List.
// Nil fields do not filter.
type ApplicationFilter struct {
	JobID       *uuid.UUID
	RecruiterID *uuid.UUID
	CandidateID *uuid.UUID

	// GeneralContact restricts the result to applications without a job.
	GeneralContact bool

	// Archived filters on "archived by any actor". Nil matches both.
	Archived *bool

	// HiddenFor excludes applications archived by that role's own flag.
	// Empty role disables the filter.
	HiddenFor UserRole

	Limit  int
	Offset int
}

package application

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const archivedAnyExpr = `(archived_by_job_seeker OR archived_by_recruiter OR archived_by_admin)`

// where translates an ApplicationFilter into squirrel predicates.
func where(f domain.ApplicationFilter) sq.And {
	conds := sq.And{}

	if f.JobID != nil {
		conds = append(conds, sq.Eq{"job_id": *f.JobID})
	}
	if f.GeneralContact {
		conds = append(conds, sq.Eq{"job_id": nil})
	}
	if f.RecruiterID != nil {
		conds = append(conds, sq.Eq{"recruiter_id": *f.RecruiterID})
	}
	if f.CandidateID != nil {
		conds = append(conds, sq.Eq{"candidate_id": *f.CandidateID})
	}
	if f.Archived != nil {
		if *f.Archived {
			conds = append(conds, sq.Expr(archivedAnyExpr))
		} else {
			conds = append(conds, sq.Expr("NOT "+archivedAnyExpr))
		}
	}
	if col := archiveColumn(f.HiddenFor); col != "" {
		conds = append(conds, sq.Eq{col: false})
	}

	return conds
}

// archiveColumn returns the archive flag column owned by role.
func archiveColumn(role domain.UserRole) string {
	switch role {
	case domain.UserRoleJobSeeker:
		return "archived_by_job_seeker"
	case domain.UserRoleRecruiter:
		return "archived_by_recruiter"
	case domain.UserRoleAdmin:
		return "archived_by_admin"
	}
	return ""
}

// page clamps limit and offset.
func page(f domain.ApplicationFilter) (limit, offset uint64) {
	l := f.Limit
	if l <= 0 {
		l = defaultLimit
	}
	if l > maxLimit {
		l = maxLimit
	}
	o := f.Offset
	if o < 0 {
		o = 0
	}
	return uint64(l), uint64(o)
}

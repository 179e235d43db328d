package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// SQLSTATE codes the repositories react to.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

var sqlStateErrors = map[string]error{
	codeUniqueViolation:      domain.ErrAlreadyExists,
	codeForeignKeyViolation:  domain.ErrNotFound,
	codeCheckViolation:       domain.ErrValidation,
	codeSerializationFailure: domain.ErrConflict,
	codeDeadlockDetected:     domain.ErrConflict,
}

// MapError wraps err with the entity and id and translates driver errors to
// domain sentinels. Context errors keep their identity.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", entity, id, translate(err))
}

func translate(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := sqlStateErrors[pgErr.Code]; ok {
			return sentinel
		}
	}
	return err
}

// IsUniqueViolation reports whether err is a unique_violation on constraint.
// An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

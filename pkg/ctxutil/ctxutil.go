// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the authenticated caller in the context.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromCtx extracts the authenticated caller.
// Returns false if the value is missing, has a nil user id or an unknown role.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok || actor.UserID == uuid.Nil || !actor.Role.IsValid() {
		return domain.Actor{}, false
	}
	return actor, true
}

// UserIDFromCtx extracts the caller's user id.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	actor, ok := ActorFromCtx(ctx)
	return actor.UserID, ok
}

// RoleFromCtx extracts the caller's role.
func RoleFromCtx(ctx context.Context) (domain.UserRole, bool) {
	actor, ok := ActorFromCtx(ctx)
	return actor.Role, ok
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

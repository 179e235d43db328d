package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
	"github.com/heartmarshall/recruitment-backend/internal/service/user"
	"github.com/heartmarshall/recruitment-backend/pkg/ctxutil"
)

type userService interface {
	GetProfile(ctx context.Context, actor domain.Actor) (*domain.User, error)
	GetSettings(ctx context.Context, actor domain.Actor) (domain.RecruiterSettings, error)
	UpdateSettings(ctx context.Context, actor domain.Actor, input user.UpdateSettingsInput) (domain.RecruiterSettings, error)
}

// UserHandler serves the caller's own profile and settings.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type profileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type settingsRequest struct {
	NotesEnabled *bool `json:"notesEnabled"`
}

type settingsResponse struct {
	NotesEnabled bool `json:"notesEnabled"`
}

// Me handles GET /api/v1/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := ctxutil.ActorFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	u, err := h.svc.GetProfile(r.Context(), actor)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	})
}

// Settings handles GET /api/v1/me/settings.
func (h *UserHandler) Settings(w http.ResponseWriter, r *http.Request) {
	actor, ok := ctxutil.ActorFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	s, err := h.svc.GetSettings(r.Context(), actor)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, settingsResponse{NotesEnabled: s.NotesEnabled})
}

// UpdateSettings handles PATCH /api/v1/me/settings.
func (h *UserHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	actor, ok := ctxutil.ActorFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req settingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	s, err := h.svc.UpdateSettings(r.Context(), actor, user.UpdateSettingsInput{NotesEnabled: req.NotesEnabled})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, settingsResponse{NotesEnabled: s.NotesEnabled})
}

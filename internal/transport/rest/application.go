package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
	"github.com/heartmarshall/recruitment-backend/internal/service/application"
	"github.com/heartmarshall/recruitment-backend/pkg/ctxutil"
)

type applicationService interface {
	View(ctx context.Context, actor domain.Actor, appID uuid.UUID) (domain.PublicView, error)
	RecordFirstView(ctx context.Context, actor domain.Actor, appID uuid.UUID) (*domain.Application, error)
	Apply(ctx context.Context, actor domain.Actor, input application.ApplyInput) (*domain.Application, error)
	Contact(ctx context.Context, actor domain.Actor, input application.ContactInput) (*domain.Application, error)
	ChangeStatus(ctx context.Context, actor domain.Actor, input application.ChangeStatusInput) (*domain.Application, error)
	Withdraw(ctx context.Context, actor domain.Actor, appID uuid.UUID) (*domain.Application, error)
	Archive(ctx context.Context, actor domain.Actor, appID uuid.UUID, archived bool) (*domain.Application, error)
	UpdateNotes(ctx context.Context, actor domain.Actor, input application.UpdateNotesInput) (*domain.Application, error)
	ListForActor(ctx context.Context, actor domain.Actor, input application.ListInput) ([]domain.PublicView, int, error)
	Present(ctx context.Context, actor domain.Actor, app *domain.Application) (domain.PublicView, error)
}

// ApplicationHandler serves the application lifecycle endpoints.
type ApplicationHandler struct {
	svc applicationService
	log *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(svc applicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: logger.With("handler", "application")}
}

type applyRequest struct {
	JobID     uuid.UUID `json:"jobId"`
	CoverNote *string   `json:"coverNote"`
}

type contactRequest struct {
	CandidateID uuid.UUID  `json:"candidateId"`
	RecruiterID uuid.UUID  `json:"recruiterId"`
	JobID       *uuid.UUID `json:"jobId"`
}

type changeStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

type archiveRequest struct {
	Archived bool `json:"archived"`
}

type notesRequest struct {
	RecruiterNotes *string `json:"recruiterNotes"`
	AdminNotes     *string `json:"adminNotes"`
}

type applicationResponse struct {
	ID             string                `json:"id"`
	Status         string                `json:"status"`
	JobID          *string               `json:"jobId"`
	RecruiterID    string                `json:"recruiterId"`
	CandidateID    string                `json:"candidateId"`
	CoverNote      *string               `json:"coverNote"`
	AppliedAt      time.Time             `json:"appliedAt"`
	LastActivityAt time.Time             `json:"lastActivityAt"`
	ViewedAt       *time.Time            `json:"viewedAt"`
	WithdrawnAt    *time.Time            `json:"withdrawnAt"`
	Archived       bool                  `json:"archived"`
	Published      *bool                 `json:"published,omitempty"`
	RecruiterNotes *string               `json:"recruiterNotes,omitempty"`
	AdminNotes     *string               `json:"adminNotes,omitempty"`
	AdminActions   []adminActionResponse `json:"adminActions,omitempty"`
}

type adminActionResponse struct {
	AdminID   string    `json:"adminId"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type listResponse struct {
	Items []applicationResponse `json:"items"`
	Total int                   `json:"total"`
}

type jobResponse struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Company  string    `json:"company"`
	Location string    `json:"location,omitempty"`
	PostedAt time.Time `json:"postedAt"`
}

// Get handles GET /api/v1/applications/{id}. A recruiter opening an applied
// application for the first time marks it viewed before it is rendered.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}

	if _, err := h.svc.RecordFirstView(r.Context(), actor, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	view, err := h.svc.View(r.Context(), actor, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplicationResponse(view))
}

// List handles GET /api/v1/applications?includeArchived=&limit=&offset=.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var input application.ListInput
	var err error
	if input.IncludeArchived, err = queryBool(r, "includeArchived"); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	views, total, err := h.svc.ListForActor(r.Context(), actor, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := listResponse{Items: make([]applicationResponse, len(views)), Total: total}
	for i, v := range views {
		resp.Items[i] = toApplicationResponse(v)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Apply handles POST /api/v1/applications.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	var req applyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	app, err := h.svc.Apply(r.Context(), actor, application.ApplyInput{JobID: req.JobID, CoverNote: req.CoverNote})
	h.respond(w, r, actor, http.StatusCreated, app, err)
}

// Contact handles POST /api/v1/contacts.
func (h *ApplicationHandler) Contact(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	app, err := h.svc.Contact(r.Context(), actor, application.ContactInput{
		CandidateID: req.CandidateID,
		RecruiterID: req.RecruiterID,
		JobID:       req.JobID,
	})
	h.respond(w, r, actor, http.StatusOK, app, err)
}

// ChangeStatus handles PATCH /api/v1/applications/{id}/status.
func (h *ApplicationHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	var req changeStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	status, err := domain.ParseApplicationStatus(req.Status)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	app, err := h.svc.ChangeStatus(r.Context(), actor, application.ChangeStatusInput{
		AppID:  id,
		Status: status,
		Notes:  req.Notes,
	})
	h.respond(w, r, actor, http.StatusOK, app, err)
}

// Withdraw handles POST /api/v1/applications/{id}/withdraw.
func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	app, err := h.svc.Withdraw(r.Context(), actor, id)
	h.respond(w, r, actor, http.StatusOK, app, err)
}

// Archive handles PUT /api/v1/applications/{id}/archive.
func (h *ApplicationHandler) Archive(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	var req archiveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	app, err := h.svc.Archive(r.Context(), actor, id, req.Archived)
	h.respond(w, r, actor, http.StatusOK, app, err)
}

// UpdateNotes handles PATCH /api/v1/applications/{id}/notes.
func (h *ApplicationHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	var req notesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	app, err := h.svc.UpdateNotes(r.Context(), actor, application.UpdateNotesInput{
		AppID:          id,
		RecruiterNotes: req.RecruiterNotes,
		AdminNotes:     req.AdminNotes,
	})
	h.respond(w, r, actor, http.StatusOK, app, err)
}

// Transitions handles GET /api/v1/applications/transitions. Clients use it
// to offer only the status changes the server will accept.
func (h *ApplicationHandler) Transitions(w http.ResponseWriter, r *http.Request) {
	table := domain.TransitionTable()
	resp := make(map[string][]string, len(table))
	for from, next := range table {
		names := make([]string, len(next))
		for i, s := range next {
			names[i] = s.String()
		}
		resp[from.String()] = names
	}
	writeJSON(w, http.StatusOK, resp)
}

// respond renders the result of a mutation for its caller.
func (h *ApplicationHandler) respond(w http.ResponseWriter, r *http.Request, actor domain.Actor, status int, app *domain.Application, err error) {
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	view, err := h.svc.Present(r.Context(), actor, app)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, status, toApplicationResponse(view))
}

func (h *ApplicationHandler) actor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, ok := ctxutil.ActorFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return domain.Actor{}, false
	}
	return actor, true
}

func (h *ApplicationHandler) actorAndID(w http.ResponseWriter, r *http.Request) (domain.Actor, uuid.UUID, bool) {
	actor, ok := h.actor(w, r)
	if !ok {
		return domain.Actor{}, uuid.Nil, false
	}
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return domain.Actor{}, uuid.Nil, false
	}
	return actor, id, true
}

func toApplicationResponse(v domain.PublicView) applicationResponse {
	resp := applicationResponse{
		ID:             v.ID.String(),
		Status:         v.Status.String(),
		RecruiterID:    v.RecruiterID.String(),
		CandidateID:    v.CandidateID.String(),
		CoverNote:      v.CoverNote,
		AppliedAt:      v.AppliedAt,
		LastActivityAt: v.LastActivityAt,
		ViewedAt:       v.ViewedAt,
		WithdrawnAt:    v.WithdrawnAt,
		Archived:       v.Archived,
		Published:      v.Published,
		RecruiterNotes: v.RecruiterNotes,
		AdminNotes:     v.AdminNotes,
	}
	if v.JobID != nil {
		id := v.JobID.String()
		resp.JobID = &id
	}
	for _, a := range v.AdminActions {
		resp.AdminActions = append(resp.AdminActions, adminActionResponse{
			AdminID:   a.AdminID.String(),
			Action:    string(a.Action),
			Details:   a.Details,
			Timestamp: a.Timestamp,
		})
	}
	return resp
}

func toJobResponse(j domain.JobSummary) jobResponse {
	return jobResponse{
		ID:       j.ID.String(),
		Title:    j.Title,
		Company:  j.Company,
		Location: j.Location,
		PostedAt: j.PostedAt,
	}
}

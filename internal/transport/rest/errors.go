package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

type transitionErrorResponse struct {
	Error         string   `json:"error"`
	CurrentStatus string   `json:"currentStatus"`
	Allowed       []string `json:"allowed"`
}

type alreadyContactedResponse struct {
	Error         string `json:"error"`
	ApplicationID string `json:"applicationId"`
	CurrentStatus string `json:"currentStatus"`
}

type ambiguousJobResponse struct {
	Error string        `json:"error"`
	Jobs  []jobResponse `json:"jobs"`
}

// handleError maps domain errors to HTTP responses. Anything unmapped is
// logged and answered with 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		validation *domain.ValidationError
		transition *domain.TransitionError
		contacted  *domain.AlreadyContactedError
		ambiguous  *domain.AmbiguousJobError
		invariant  *domain.InvariantError
	)

	switch {
	case errors.As(err, &invariant):
		log.ErrorContext(r.Context(), "invariant violated", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")

	case errors.As(err, &transition):
		allowed := domain.AllowedNext(transition.From)
		names := make([]string, len(allowed))
		for i, s := range allowed {
			names[i] = s.String()
		}
		writeJSON(w, http.StatusUnprocessableEntity, transitionErrorResponse{
			Error:         transition.Error(),
			CurrentStatus: transition.From.String(),
			Allowed:       names,
		})

	case errors.As(err, &contacted):
		writeJSON(w, http.StatusConflict, alreadyContactedResponse{
			Error:         contacted.Error(),
			ApplicationID: contacted.ApplicationID,
			CurrentStatus: contacted.Status.String(),
		})

	case errors.As(err, &ambiguous):
		jobs := make([]jobResponse, len(ambiguous.Jobs))
		for i, j := range ambiguous.Jobs {
			jobs[i] = toJobResponse(j)
		}
		writeJSON(w, http.StatusConflict, ambiguousJobResponse{Error: ambiguous.Error(), Jobs: jobs})

	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")

	case errors.As(err, &validation):
		resp := errorResponse{Error: "validation failed"}
		for _, f := range validation.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: f.Field, Message: f.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)

	case errors.Is(err, domain.ErrNoPublishedJobs):
		writeError(w, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, domain.ErrDuplicateApplication):
		writeError(w, http.StatusConflict, "application already exists")

	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "conflict, retry the request")

	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")

	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")

	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

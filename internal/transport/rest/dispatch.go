package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/recruitment-backend/internal/auth"
	"github.com/heartmarshall/recruitment-backend/internal/service/dispatch"
)

type dispatchRunner interface {
	Run(ctx context.Context, now time.Time) (dispatch.Summary, error)
}

// DispatchHandler exposes the notification dispatcher to an external
// scheduler. Runs are not coordinated across processes.
type DispatchHandler struct {
	runner    dispatchRunner
	tokenHash string
	running   atomic.Bool
	now       func() time.Time
	log       *slog.Logger
}

// NewDispatchHandler creates a DispatchHandler. tokenHash is the bcrypt hash
// of the bearer token callers must present.
func NewDispatchHandler(runner dispatchRunner, tokenHash string, logger *slog.Logger) *DispatchHandler {
	return &DispatchHandler{
		runner:    runner,
		tokenHash: tokenHash,
		now:       func() time.Time { return time.Now().UTC() },
		log:       logger.With("handler", "dispatch"),
	}
}

type summaryResponse struct {
	TotalSearches int `json:"totalSearches"`
	Processed     int `json:"processed"`
	EmailsSent    int `json:"emailsSent"`
	HeartbeatSent int `json:"heartbeatSent"`
	Suppressed    int `json:"suppressed"`
	Skipped       int `json:"skipped"`
	Errors        int `json:"errors"`
}

// Run handles POST /internal/dispatch/run. It answers 409 while another run
// started by this process is still in progress.
func (h *DispatchHandler) Run(w http.ResponseWriter, r *http.Request) {
	if !auth.SecretMatches(h.tokenHash, extractBearer(r)) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if !h.running.CompareAndSwap(false, true) {
		writeError(w, http.StatusConflict, "dispatch run already in progress")
		return
	}
	defer h.running.Store(false)

	// A caller hanging up must not cut a run short.
	ctx := context.WithoutCancel(r.Context())
	summary, err := h.runner.Run(ctx, h.now())
	if err != nil {
		h.log.ErrorContext(ctx, "dispatch run failed", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "dispatch run failed")
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		TotalSearches: summary.TotalSearches,
		Processed:     summary.Processed,
		EmailsSent:    summary.EmailsSent,
		HeartbeatSent: summary.HeartbeatSent,
		Suppressed:    summary.Suppressed,
		Skipped:       summary.Skipped,
		Errors:        summary.Errors,
	})
}

func extractBearer(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

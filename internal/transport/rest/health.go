package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and health endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.probeDB(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health reports every component with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.probeDB(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probeDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func httpStatus(status string) int {
	if status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

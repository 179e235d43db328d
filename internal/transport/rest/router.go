package rest

import (
	"net/http"

	"github.com/heartmarshall/recruitment-backend/internal/transport/middleware"
)

// Routes holds the handlers mounted by NewRouter. Users, Dispatch and Metrics
// are optional.
type Routes struct {
	Health       *HealthHandler
	Applications *ApplicationHandler
	Users        *UserHandler
	Dispatch     *DispatchHandler
	Metrics      http.Handler
}

// NewRouter registers every endpoint. Application endpoints require an
// authenticated caller; probes, metrics and the dispatch trigger do not.
func NewRouter(routes Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", routes.Health.Live)
	mux.HandleFunc("GET /ready", routes.Health.Ready)
	mux.HandleFunc("GET /health", routes.Health.Health)

	if routes.Metrics != nil {
		mux.Handle("GET /metrics", routes.Metrics)
	}
	if routes.Dispatch != nil {
		mux.HandleFunc("POST /internal/dispatch/run", routes.Dispatch.Run)
	}

	apps := routes.Applications
	mux.HandleFunc("GET /api/v1/applications/transitions", apps.Transitions)

	authed := func(h http.HandlerFunc) http.Handler { return middleware.RequireActor(h) }
	mux.Handle("GET /api/v1/applications", authed(apps.List))
	mux.Handle("POST /api/v1/applications", authed(apps.Apply))
	mux.Handle("GET /api/v1/applications/{id}", authed(apps.Get))
	mux.Handle("PATCH /api/v1/applications/{id}/status", authed(apps.ChangeStatus))
	mux.Handle("POST /api/v1/applications/{id}/withdraw", authed(apps.Withdraw))
	mux.Handle("PUT /api/v1/applications/{id}/archive", authed(apps.Archive))
	mux.Handle("PATCH /api/v1/applications/{id}/notes", authed(apps.UpdateNotes))
	mux.Handle("POST /api/v1/contacts", authed(apps.Contact))

	if routes.Users != nil {
		mux.Handle("GET /api/v1/me", authed(routes.Users.Me))
		mux.Handle("GET /api/v1/me/settings", authed(routes.Users.Settings))
		mux.Handle("PATCH /api/v1/me/settings", authed(routes.Users.UpdateSettings))
	}

	return mux
}

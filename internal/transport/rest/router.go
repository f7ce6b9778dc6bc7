package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/learning-continuity/internal/transport/middleware"
)

// NewRouter mounts the health probes at the root and the API under /v1.
// mw wraps every route, probes included, and must resolve the caller
// identity (middleware.Identity) for the /v1 routes to accept requests.
func NewRouter(h *Handler, health *HealthHandler, mw middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	if mw != nil {
		r.Use(mw)
	}

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/sessions", h.ListSessions)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Put("/", h.PutSession)
			r.Get("/", h.GetSession)
			r.Post("/progress", h.UpdateProgress)
			r.Post("/bookmarks", h.AddBookmark)
		})

		r.Get("/continue", h.Continue)
		r.Get("/insights", h.Insights)
		r.Get("/streak", h.Streak)
		r.Put("/streak/goals", h.SetGoals)
	})

	return r
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// read-only routes
	router.Group(func(r chi.Router) {
		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUser)
		r.Get("/projects", h.listProjects)
		r.Get("/projects/{id}", h.getProject)
		r.Get("/assignments", h.listAssignments)

		r.Get("/healthz", h.healthz)
		r.Get("/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.metricsHandler())
	})

	// routes requiring an admin principal
	router.Group(func(r chi.Router) {
		r.Use(h.adminOnly)

		r.Get("/", h.diagnostics)
		r.Post("/users", h.createUser)
		r.Post("/projects", h.createProject)
		r.Put("/assignments", h.upsertAssignment)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/job/all", h.listJobs)
		r.Get("/api/job/categories", h.categories)
		r.Get("/api/job/{id}", h.getJob)
	})

	// routes for any authenticated account
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/profile", h.profile)
		r.Put("/api/user/interests", h.updateInterests)
		r.Put("/api/user/linkedin", h.updateLinkedIn)

		r.Post("/api/job/apply/{id}", h.apply)
		r.Get("/api/job/applied", h.applied)
	})

	// admin-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireAdmin)

		r.Post("/api/job/create", h.createJob)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

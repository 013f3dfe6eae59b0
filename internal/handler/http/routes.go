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

	router.Route("/api", func(r chi.Router) {
		r.Get("/profile", h.getProfilesIn)
		r.Get("/profile/mine", h.getOwnProfiles)
		r.Get("/profile/{id}", h.getProfile)
		r.Post("/profile", h.createProfile)
		r.Put("/profile/{id}", h.editProfile)

		r.Get("/user/{id}/profile", h.getUserProfiles)

		r.Post("/session", h.createSession)
		r.Get("/version", h.getServerVersion)
	})

	return router
}

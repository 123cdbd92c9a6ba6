package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the collector's route tree.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)

	router.Post("/api/logs", h.intake)

	return router
}

package services

import "github.com/go-chi/chi/v5"

// Routes returns service content routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	return r
}

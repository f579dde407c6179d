package concept

import "github.com/go-chi/chi/v5"

// Routes returns concept routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	return r
}

package inquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns public inquiry routes behind the given rate limiter
func (h *Handler) Routes(limit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	if limit != nil {
		r.Use(limit)
	}
	r.Post("/", h.Submit)

	return r
}

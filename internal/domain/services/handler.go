package services

import (
	"errors"
	"net/http"

	"github.com/familysoo/studio-web/internal/pkg/contentful"
	"github.com/familysoo/studio-web/internal/pkg/errorhandler"
	"github.com/familysoo/studio-web/internal/pkg/response"
)

// CacheControl tags successful responses for shared caches.
const CacheControl = "public, s-maxage=60, stale-while-revalidate=60"

// Handler handles service-line content requests
type Handler struct {
	svc *Service
}

// NewHandler creates services handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/services?type=
// @Summary Service-line portfolio entries
// @Tags Content
// @Produce json
// @Param type query string true "family | baby | remindWedding"
// @Success 200 {object} ListResponse
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /services [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	contentType := r.URL.Query().Get("type")

	env, err := h.svc.Fetch(r.Context(), contentType)
	if err != nil {
		h.writeError(w, r, contentType, err)
		return
	}

	w.Header().Set("Cache-Control", CacheControl)
	response.Raw(w, http.StatusOK, ListResponse{
		Success:     true,
		ContentType: contentType,
		Data:        env.ItemsOrEmpty(),
		Total:       env.Total,
		Includes:    env.IncludesOrEmpty(),
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, contentType string, err error) {
	ctx := r.Context()

	switch {
	case errors.Is(err, contentful.ErrNotConfigured):
		errorhandler.HandleError(ctx, w, http.StatusInternalServerError, "CONFIG_ERROR", MsgNotConfigured, err)
	case errors.Is(err, ErrTypeRequired):
		response.BadRequest(w, MsgTypeRequired)
	case errors.Is(err, ErrTypeNotAllowed):
		response.BadRequest(w, MsgTypeNotAllowed)
	default:
		status := 0
		body := ""
		var apiErr *contentful.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
			body = apiErr.Body
		}
		errorhandler.LogExternalServiceError(ctx, "contentful", "entries?content_type="+contentType, status, err, body)
		response.ErrorWithDetails(w, http.StatusInternalServerError, "UPSTREAM_ERROR", MsgUpstreamFailed, Details(err))
	}
}

// Details is the error message shown to clients, or a generic one when empty.
func Details(err error) string {
	if err == nil || err.Error() == "" {
		return MsgUnknownError
	}
	return err.Error()
}

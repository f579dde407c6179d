package concept

import (
	"errors"
	"net/http"

	"github.com/familysoo/studio-web/internal/pkg/contentful"
	"github.com/familysoo/studio-web/internal/pkg/errorhandler"
	"github.com/familysoo/studio-web/internal/pkg/response"
)

// CacheControl tags successful responses for shared caches.
const CacheControl = "public, s-maxage=300, stale-while-revalidate=300"

// Handler handles concept requests
type Handler struct {
	svc *Service
}

// NewHandler creates concept handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/concepts?service=
// @Summary Shooting concepts
// @Tags Content
// @Produce json
// @Param service query string false "베이비 | 가족 | 리마인드 웨딩"
// @Success 200 {object} ListResponse
// @Failure 500 {object} response.Response
// @Router /concepts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	service := r.URL.Query().Get("service")

	env, err := h.svc.Fetch(ctx, service)
	if err != nil {
		if errors.Is(err, contentful.ErrNotConfigured) {
			errorhandler.HandleError(ctx, w, http.StatusInternalServerError, "CONFIG_ERROR", MsgNotConfigured, err)
			return
		}
		status := 0
		body := ""
		var apiErr *contentful.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
			body = apiErr.Body
		}
		errorhandler.LogExternalServiceError(ctx, "contentful", "entries?content_type="+ContentType, status, err, body)
		response.ErrorWithDetails(w, http.StatusInternalServerError, "UPSTREAM_ERROR", MsgUpstreamFailed, details(err))
		return
	}

	w.Header().Set("Cache-Control", CacheControl)
	response.Raw(w, http.StatusOK, ListResponse{
		Success:  true,
		Data:     env.ItemsOrEmpty(),
		Total:    env.Total,
		Includes: env.IncludesOrEmpty(),
	})
}

func details(err error) string {
	if err == nil || err.Error() == "" {
		return MsgUnknownError
	}
	return err.Error()
}

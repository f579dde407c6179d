package inquiry

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/familysoo/studio-web/internal/middleware"
	"github.com/familysoo/studio-web/internal/pkg/errorhandler"
	"github.com/familysoo/studio-web/internal/pkg/response"
	"github.com/familysoo/studio-web/internal/pkg/validator"
)

const maxBodyBytes = 64 << 10

// Handler handles inquiry HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates inquiry handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Submit handles POST /api/inquiries (public)
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateInquiryRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.BadRequest(w, MsgInvalidBody)
		return
	}
	req.Normalize()

	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(ctx, errs)
		response.ValidationError(w, errs)
		return
	}

	inquiry, err := h.svc.Submit(ctx, &req, middleware.ClientIP(r), r.UserAgent())
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.ValidationError(w, map[string]string{"preferred_date": "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD)"})
			return
		}
		response.InternalError(w)
		return
	}

	response.Created(w, &InquirySubmittedResponse{
		InquiryID: inquiry.ID,
		Message:   MsgSubmitted,
	})
}

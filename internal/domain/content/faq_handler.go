package content

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/familysoo/studio-web/internal/pkg/errorhandler"
	"github.com/familysoo/studio-web/internal/pkg/response"
)

// CacheControl tags FAQ responses; the list only changes on deploy.
const CacheControl = "public, max-age=300"

// FAQItem represents a FAQ question/answer
type FAQItem struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SortOrder int    `json:"sort_order"`
}

// FAQSource provides the FAQ list.
type FAQSource interface {
	FAQ(ctx context.Context) ([]FAQItem, error)
}

// StaticFAQ serves a fixed list.
type StaticFAQ []FAQItem

// FAQ returns the list ordered by SortOrder.
func (s StaticFAQ) FAQ(context.Context) ([]FAQItem, error) {
	items := append([]FAQItem(nil), s...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })
	return items, nil
}

// NewStaticFAQ numbers question/answer pairs in the given order.
// ids are "faq-1", "faq-2", ...
func NewStaticFAQ(entries []FAQItem) StaticFAQ {
	out := make(StaticFAQ, len(entries))
	for i, e := range entries {
		e.SortOrder = i + 1
		if e.ID == "" {
			e.ID = fmt.Sprintf("faq-%d", i+1)
		}
		out[i] = e
	}
	return out
}

// FAQHandler handles FAQ HTTP requests
type FAQHandler struct {
	source FAQSource
}

// NewFAQHandler creates FAQ handler
func NewFAQHandler(source FAQSource) *FAQHandler {
	return &FAQHandler{source: source}
}

// ListResponse is the GET /faq payload.
type ListResponse struct {
	Items   []FAQItem            `json:"items"`
	Grouped map[string][]FAQItem `json:"grouped"`
	Total   int                  `json:"total"`
}

// List handles GET /faq
// @Summary Frequently asked questions
// @Tags FAQ
// @Produce json
// @Param category query string false "Category"
// @Success 200 {object} response.Response{data=ListResponse}
// @Failure 500 {object} response.Response
// @Router /faq [get]
func (h *FAQHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	all, err := h.source.FAQ(r.Context())
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "INTERNAL_ERROR", "FAQ를 불러오지 못했습니다.", err)
		return
	}

	items := make([]FAQItem, 0, len(all))
	for _, item := range all {
		if category == "" || item.Category == category {
			items = append(items, item)
		}
	}

	// Group by category
	grouped := make(map[string][]FAQItem)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	w.Header().Set("Cache-Control", CacheControl)
	response.OK(w, ListResponse{
		Items:   items,
		Grouped: grouped,
		Total:   len(items),
	})
}

// GetCategories handles GET /faq/categories
// @Summary FAQ categories
// @Tags FAQ
// @Produce json
// @Success 200 {object} response.Response{data=[]string}
// @Failure 500 {object} response.Response
// @Router /faq/categories [get]
func (h *FAQHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.source.FAQ(r.Context())
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "INTERNAL_ERROR", "FAQ를 불러오지 못했습니다.", err)
		return
	}

	seen := map[string]bool{}
	categories := []string{}
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	sort.Strings(categories)

	w.Header().Set("Cache-Control", CacheControl)
	response.OK(w, categories)
}

// Routes returns FAQ routes
func (h *FAQHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/categories", h.GetCategories)

	return r
}

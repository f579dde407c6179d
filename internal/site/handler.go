package site

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/familysoo/studio-web/internal/domain/concept"
	"github.com/familysoo/studio-web/internal/domain/inquiry"
	"github.com/familysoo/studio-web/internal/domain/portfolio"
	"github.com/familysoo/studio-web/internal/middleware"
	"github.com/familysoo/studio-web/internal/pkg/contentful"
	"github.com/familysoo/studio-web/internal/pkg/logger"
	"github.com/familysoo/studio-web/internal/pkg/validator"
)

// ServiceGridLimit caps the grid on a service page; the rest is on /portfolio.
const ServiceGridLimit = 12

// PortfolioLoader loads transformed gallery items.
type PortfolioLoader interface {
	Load(ctx context.Context, ct portfolio.ContentType, opts portfolio.Options) ([]portfolio.Item, error)
	LoadAll(ctx context.Context, opts portfolio.Options) ([]portfolio.Item, error)
}

// ConceptLoader loads grouped concepts for a service label.
type ConceptLoader interface {
	Load(ctx context.Context, service string) ([]concept.Group, error)
}

// InquirySubmitter stores contact-form submissions.
type InquirySubmitter interface {
	Submit(ctx context.Context, req *inquiry.CreateInquiryRequest, ip, userAgent string) (*inquiry.Inquiry, error)
}

// Handler renders the public pages.
type Handler struct {
	copy      *Copy
	tmpl      *Templates
	portfolio PortfolioLoader
	concepts  ConceptLoader
	inquiries InquirySubmitter
}

// NewHandler creates the site handler
func NewHandler(copy *Copy, tmpl *Templates, portfolio PortfolioLoader, concepts ConceptLoader, inquiries InquirySubmitter) *Handler {
	return &Handler{
		copy:      copy,
		tmpl:      tmpl,
		portfolio: portfolio,
		concepts:  concepts,
		inquiries: inquiries,
	}
}

type homeView struct {
	Home     HomeCopy
	Services []ServiceCopy
	Gallery  *GalleryView
}

type serviceView struct {
	Service  ServiceCopy
	Gallery  *GalleryView
	Concepts ConceptView
}

type portfolioView struct {
	Gallery *GalleryView
}

// Option is a select option.
type Option struct {
	Value string
	Label string
}

type contactView struct {
	Values     inquiry.CreateInquiryRequest
	Errors     map[string]string
	Success    string
	ShootTypes []Option
	Headcounts []Option
	FAQ        []FAQEntry
}

// Routes returns page routes. limit guards the contact form.
func (h *Handler) Routes(limit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Home)
	r.Get("/about", h.About)
	r.Get("/services", h.Services)
	r.Get("/services/{slug}", h.Service)
	r.Get("/portfolio", h.Portfolio)
	r.Get("/contact", h.Contact)
	r.Group(func(r chi.Router) {
		if limit != nil {
			r.Use(limit)
		}
		r.Post("/contact", h.SubmitContact)
	})

	return r
}

// Home handles GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolio.LoadAll(r.Context(), optionsFor(r))
	var g *GalleryView
	if err != nil {
		g = h.galleryError(r, err)
	} else {
		g = PortfolioGallery(r.URL.Path, r.URL.Query(), items, ServiceGridLimit)
		g.MoreHref = "/portfolio"
		g.MoreLabel = "포트폴리오 더 보기"
	}
	g.Title = "포트폴리오"

	h.render(w, r, http.StatusOK, "home", &Page{
		Transparent: true,
		ScrollLock:  g.ScrollLocked(),
		Body: homeView{
			Home:     h.copy.Home,
			Services: h.copy.Services,
			Gallery:  g,
		},
	})
}

// About handles GET /about
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	hero := h.copy.Page("about")
	h.render(w, r, http.StatusOK, "about", &Page{
		Title: hero.Title,
		Hero:  h.hero(hero),
		Body:  h.copy.About,
	})
}

// Services handles GET /services
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	hero := h.copy.Page("services")
	h.render(w, r, http.StatusOK, "services", &Page{
		Title: hero.Title,
		Hero:  h.hero(hero),
		Body:  h.copy.Services,
	})
}

// Service handles GET /services/{slug}
func (h *Handler) Service(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	svc, ok := h.copy.Service(chi.URLParam(r, "slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	var g *GalleryView
	items, err := h.portfolio.Load(ctx, svc.ContentType, optionsFor(r))
	if err != nil {
		g = h.galleryError(r, err)
	} else {
		g = SingleGallery(r.URL.Path, r.URL.Query(), items, ServiceGridLimit)
		g.MoreHref = link("/portfolio", nil, map[string]string{ParamMain: svc.ContentType.Label()})
		g.MoreLabel = svc.MoreLabel
	}
	g.Title = svc.PortfolioTitle
	g.Description = h.tmpl.renderer.Inline(svc.PortfolioDescription)

	view := serviceView{
		Service:  svc,
		Gallery:  g,
		Concepts: h.conceptView(ctx, concept.ServiceFor(svc.ContentType)),
	}

	h.render(w, r, http.StatusOK, "service", &Page{
		Title:      svc.Title,
		Hero:       h.hero(svc.Hero()),
		ScrollLock: g.ScrollLocked(),
		Body:       view,
	})
}

// Portfolio handles GET /portfolio
func (h *Handler) Portfolio(w http.ResponseWriter, r *http.Request) {
	var g *GalleryView
	items, err := h.portfolio.LoadAll(r.Context(), optionsFor(r))
	if err != nil {
		g = h.galleryError(r, err)
	} else {
		g = PortfolioGallery(r.URL.Path, r.URL.Query(), items, 0)
	}

	hero := h.copy.Page("portfolio")
	h.render(w, r, http.StatusOK, "portfolio", &Page{
		Title:      hero.Title,
		Hero:       h.hero(hero),
		ScrollLock: g.ScrollLocked(),
		Body:       portfolioView{Gallery: g},
	})
}

// Contact handles GET /contact
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	view := h.contactView(inquiry.CreateInquiryRequest{}, nil)
	if r.URL.Query().Get("sent") == "1" {
		view.Success = inquiry.MsgSubmitted
	}
	h.renderContact(w, r, http.StatusOK, view)
}

// SubmitContact handles POST /contact
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	if err := r.ParseForm(); err != nil {
		h.renderContact(w, r, http.StatusBadRequest, h.contactView(inquiry.CreateInquiryRequest{}, map[string]string{"_": inquiry.MsgInvalidBody}))
		return
	}

	req := inquiry.FromForm(r.PostForm)
	req.Normalize()

	if errs := validator.Validate(&req); errs != nil {
		h.renderContact(w, r, http.StatusUnprocessableEntity, h.contactView(req, errs))
		return
	}

	if _, err := h.inquiries.Submit(ctx, &req, middleware.ClientIP(r), r.UserAgent()); err != nil {
		status := http.StatusInternalServerError
		errs := map[string]string{"_": "문의 접수 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."}
		if errors.Is(err, inquiry.ErrInvalidDate) {
			status = http.StatusUnprocessableEntity
			errs = map[string]string{"preferred_date": "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD)"}
		}
		h.renderContact(w, r, status, h.contactView(req, errs))
		return
	}

	http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
}

func (h *Handler) contactView(values inquiry.CreateInquiryRequest, errs map[string]string) *contactView {
	return &contactView{
		Values: values,
		Errors: errs,
		ShootTypes: []Option{
			{Value: string(inquiry.ShootFamily), Label: inquiry.ShootFamily.Label()},
			{Value: string(inquiry.ShootRemind), Label: inquiry.ShootRemind.Label()},
			{Value: string(inquiry.ShootBaby), Label: inquiry.ShootBaby.Label()},
		},
		Headcounts: []Option{
			{Value: "1", Label: "1명"},
			{Value: "2", Label: "2명"},
			{Value: "3", Label: "3명"},
			{Value: "4", Label: "4명"},
			{Value: "5+", Label: "5명 이상"},
		},
		FAQ: h.copy.FAQ,
	}
}

func (h *Handler) renderContact(w http.ResponseWriter, r *http.Request, status int, view *contactView) {
	hero := h.copy.Page("contact")
	h.render(w, r, status, "contact", &Page{
		Title: hero.Title,
		Hero:  h.hero(hero),
		Body:  view,
	})
}

func (h *Handler) conceptView(ctx context.Context, service string) ConceptView {
	view := ConceptView{
		Title:       concept.DefaultTitle,
		Description: concept.DefaultDescription,
		Empty:       concept.MsgEmpty,
	}
	groups, err := h.concepts.Load(ctx, service)
	if err != nil {
		logger.LogWarn(ctx, "Concept section unavailable", "service", service, "error", err.Error())
		view.Error = concept.MsgLoadFailed
		return view
	}
	view.Groups = groups
	return view
}

func (h *Handler) galleryError(r *http.Request, err error) *GalleryView {
	ctx := r.Context()
	if errors.Is(err, contentful.ErrNotConfigured) {
		logger.LogWarn(ctx, "Portfolio skipped: content API not configured")
	} else {
		logger.LogError(ctx, err, "Portfolio load failed", "path", r.URL.Path)
	}
	return &GalleryView{Error: MsgPortfolioFailed, RetryHref: r.URL.RequestURI()}
}

func (h *Handler) hero(c HeroCopy) *HeroView {
	return &HeroView{Title: c.Title, Description: h.tmpl.renderer.Inline(c.Description)}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, page *Page) {
	page.Path = r.URL.Path
	page.Studio = h.copy.Studio
	page.Nav = Navigation(h.copy.Nav, r.URL.Path)
	if page.Crumbs == nil {
		page.Crumbs = Breadcrumbs(h.copy.Nav, r.URL.Path)
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, name, page); err != nil {
		logger.LogError(r.Context(), err, "Template render failed", "page", name)
		http.Error(w, "template exec error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// optionsFor picks mobile thumbnails for phone user agents.
func optionsFor(r *http.Request) portfolio.Options {
	return portfolio.Options{Mobile: strings.Contains(r.UserAgent(), "Mobi")}
}

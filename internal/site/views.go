package site

import (
	"html/template"
	"net/url"

	"github.com/familysoo/studio-web/internal/domain/concept"
	"github.com/familysoo/studio-web/internal/domain/portfolio"
	"github.com/familysoo/studio-web/internal/gallery"
)

// Query parameters that address the gallery state.
const (
	ParamCategory = "category"
	ParamMain     = "main"
	ParamSub      = "sub"
	ParamPhoto    = "photo"
)

// Inline error copy.
const (
	MsgPortfolioFailed = "포트폴리오를 불러오는데 실패했습니다."
	MsgPortfolioEmpty  = "등록된 작품이 없습니다."
	RetryLabel         = "다시 시도"
)

// Page is the data passed to the base layout.
type Page struct {
	Title       string
	Path        string
	Studio      Studio
	Nav         []NavLink
	Hero        *HeroView
	Crumbs      []Crumb
	ScrollLock  bool
	Transparent bool
	Body        any
}

// HeroView is a rendered page hero.
type HeroView struct {
	Title       string
	Description template.HTML
}

// Tab is a filter button rendered as a link.
type Tab struct {
	Label  string
	Href   string
	Active bool
}

// Tile is one thumbnail in the grid.
type Tile struct {
	ID       string
	Title    string
	Thumb    string
	Style    template.CSS
	Href     string
	Category string
	Width    int
	Height   int
}

// GalleryView is a filterable grid with an optional open lightbox.
type GalleryView struct {
	Title       string
	Description template.HTML
	Tabs        []Tab
	SubTabs     []Tab
	Tiles       []Tile
	Count       int
	MoreHref    string
	MoreLabel   string
	Error       string
	RetryHref   string
	Lightbox    *LightboxView
}

// ScrollLocked reports whether the page behind the lightbox must not scroll.
func (g *GalleryView) ScrollLocked() bool {
	return g != nil && g.Lightbox != nil
}

// Empty reports whether the grid has nothing to show and no error.
func (g *GalleryView) Empty() bool {
	return g.Error == "" && len(g.Tiles) == 0
}

// LightboxView is the open single-image viewer.
type LightboxView struct {
	Title     string
	ImageURL  string
	Original  string
	Position  int
	Total     int
	PrevHref  string
	NextHref  string
	CloseHref string
	Prefetch  []string
}

// ConceptView is a concept section for one service.
type ConceptView struct {
	Title       string
	Description string
	Groups      []concept.Group
	Error       string
	Empty       string
}

// link returns path with q modified by set; empty values remove a key.
func link(path string, q url.Values, set map[string]string) string {
	next := url.Values{}
	for k, v := range q {
		next[k] = append([]string(nil), v...)
	}
	for k, v := range set {
		if v == "" {
			next.Del(k)
			continue
		}
		next.Set(k, v)
	}
	if enc := next.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

// galleryState keeps only the parameters that address gallery state.
func galleryState(q url.Values, keys ...string) url.Values {
	out := url.Values{}
	for _, k := range keys {
		if v := q.Get(k); v != "" {
			out.Set(k, v)
		}
	}
	return out
}

func tiles(path string, state url.Values, items []portfolio.Item) []Tile {
	out := make([]Tile, 0, len(items))
	for _, it := range items {
		out = append(out, Tile{
			ID:       it.ID,
			Title:    it.Title,
			Thumb:    it.ImageURL,
			Style:    template.CSS("aspect-ratio: " + it.AspectRatio.CSS()),
			Href:     link(path, state, map[string]string{ParamPhoto: it.ID}),
			Category: it.Category,
			Width:    it.Width,
			Height:   it.Height,
		})
	}
	return out
}

// lightboxView opens the photo addressed by state over items. Prev and next
// wrap around; the neighbours become prefetch hints.
func lightboxView(path string, state url.Values, items []portfolio.Item) *LightboxView {
	photo := state.Get(ParamPhoto)
	if photo == "" {
		return nil
	}

	lb := gallery.NewLightbox(nil)
	if !lb.OpenItem(items, photo) || !lb.ScrollLocked() {
		return nil
	}
	current, _ := lb.Current()
	prev, next := gallery.Neighbours(lb.Index(), lb.Len())

	view := &LightboxView{
		Title:     current.Title,
		ImageURL:  lb.CurrentURL(),
		Original:  current.OriginalURL,
		Position:  lb.Index() + 1,
		Total:     lb.Len(),
		PrevHref:  link(path, state, map[string]string{ParamPhoto: items[prev].ID}),
		NextHref:  link(path, state, map[string]string{ParamPhoto: items[next].ID}),
		CloseHref: link(path, state, map[string]string{ParamPhoto: ""}),
	}

	nextURL := items[next].FullURL()
	prevURL := items[prev].FullURL()
	if next != lb.Index() && nextURL != "" {
		view.Prefetch = append(view.Prefetch, nextURL)
	}
	if prev != lb.Index() && prevURL != "" && prevURL != nextURL {
		view.Prefetch = append(view.Prefetch, prevURL)
	}
	return view
}

// SingleGallery builds a service-page grid filtered by ?category=.
// maxItems caps the grid; 0 shows everything.
func SingleGallery(path string, q url.Values, items []portfolio.Item, maxItems int) *GalleryView {
	g := gallery.New(items, portfolio.Categories(items))
	g.Select(q.Get(ParamCategory))

	state := galleryState(q, ParamCategory, ParamPhoto)
	if g.Active() == g.Categories()[0] {
		state.Del(ParamCategory)
	}

	view := &GalleryView{}
	for i, c := range g.Categories() {
		value := c
		if i == 0 {
			value = ""
		}
		view.Tabs = append(view.Tabs, Tab{
			Label:  c,
			Href:   link(path, state, map[string]string{ParamCategory: value, ParamPhoto: ""}),
			Active: c == g.Active(),
		})
	}

	visible := g.Visible()
	view.Count = len(visible)
	if maxItems > 0 && len(visible) > maxItems {
		visible = visible[:maxItems]
	}
	view.Tiles = tiles(path, state, visible)
	view.Lightbox = lightboxView(path, state, visible)
	return view
}

// PortfolioGallery builds the two-level grid filtered by ?main= and ?sub=.
// maxItems caps the grid and the lightbox alike; 0 shows everything.
func PortfolioGallery(path string, q url.Values, items []portfolio.Item, maxItems int) *GalleryView {
	t := gallery.NewTwoLevel(items, nil)
	t.SelectMain(q.Get(ParamMain))
	t.SelectSub(q.Get(ParamSub))

	state := url.Values{}
	if t.Main() != t.MainCategories()[0] {
		state.Set(ParamMain, t.Main())
	}
	if t.Sub() != gallery.All {
		state.Set(ParamSub, t.Sub())
	}
	if p := q.Get(ParamPhoto); p != "" {
		state.Set(ParamPhoto, p)
	}

	view := &GalleryView{}
	for i, m := range t.MainCategories() {
		value := m
		if i == 0 {
			value = ""
		}
		view.Tabs = append(view.Tabs, Tab{
			Label:  m,
			Href:   link(path, state, map[string]string{ParamMain: value, ParamSub: "", ParamPhoto: ""}),
			Active: m == t.Main(),
		})
	}
	if subs := t.SubCategories(); len(subs) > 1 {
		for _, s := range subs {
			value := s
			if s == gallery.All {
				value = ""
			}
			view.SubTabs = append(view.SubTabs, Tab{
				Label:  s,
				Href:   link(path, state, map[string]string{ParamSub: value, ParamPhoto: ""}),
				Active: s == t.Sub(),
			})
		}
	}

	visible := t.Visible()
	view.Count = len(visible)
	if maxItems > 0 && len(visible) > maxItems {
		visible = visible[:maxItems]
	}
	view.Tiles = tiles(path, state, visible)
	view.Lightbox = lightboxView(path, state, visible)
	return view
}

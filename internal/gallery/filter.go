// Package gallery holds the category filter, lightbox and prefetch state
// behind the portfolio grids.
package gallery

import "github.com/familysoo/studio-web/internal/domain/portfolio"

// All is the "no filter" category label.
const All = portfolio.AllCategory

// Gallery is a single-level category filter over a fixed item list.
type Gallery struct {
	items      []portfolio.Item
	categories []string
	active     string
}

// New creates a gallery. When categories is empty it is derived from the items.
// The first category is active initially.
func New(items []portfolio.Item, categories []string) *Gallery {
	if len(categories) == 0 {
		categories = portfolio.Categories(items)
	}
	return &Gallery{
		items:      items,
		categories: categories,
		active:     categories[0],
	}
}

// Categories returns the tab labels.
func (g *Gallery) Categories() []string { return g.categories }

// Active returns the selected category.
func (g *Gallery) Active() string { return g.active }

// Select activates category. Unknown labels select the default category.
func (g *Gallery) Select(category string) {
	for _, c := range g.categories {
		if c == category {
			g.active = category
			return
		}
	}
	g.active = g.categories[0]
}

// IsAll reports whether the current selection shows every item.
func (g *Gallery) IsAll() bool {
	return g.active == All || g.active == g.categories[0]
}

// Visible returns the items passing the current filter.
func (g *Gallery) Visible() []portfolio.Item {
	if g.IsAll() {
		return g.items
	}
	out := make([]portfolio.Item, 0, len(g.items))
	for _, it := range g.items {
		if it.Category == g.active {
			out = append(out, it)
		}
	}
	return out
}

// Count is len(Visible()).
func (g *Gallery) Count() int { return len(g.Visible()) }

// TwoLevel filters by service line first, then by sub-category.
type TwoLevel struct {
	items []portfolio.Item
	mains []string
	main  string
	sub   string
}

// NewTwoLevel creates a two-level filter; mains defaults to "전체" plus every
// service line label.
func NewTwoLevel(items []portfolio.Item, mains []string) *TwoLevel {
	if len(mains) == 0 {
		mains = []string{All}
		for _, ct := range portfolio.ContentTypes {
			mains = append(mains, ct.Label())
		}
	}
	return &TwoLevel{items: items, mains: mains, main: mains[0], sub: All}
}

// MainCategories returns the top-level tab labels.
func (t *TwoLevel) MainCategories() []string { return t.mains }

// Main returns the selected main category.
func (t *TwoLevel) Main() string { return t.main }

// Sub returns the selected sub-category.
func (t *TwoLevel) Sub() string { return t.sub }

// SelectMain changes the main category and resets the sub-category to "전체".
func (t *TwoLevel) SelectMain(main string) {
	t.main = t.mains[0]
	for _, m := range t.mains {
		if m == main {
			t.main = main
			break
		}
	}
	t.sub = All
}

// SelectSub changes the sub-category within the current main category.
// Labels not offered by SubCategories reset it to "전체".
func (t *TwoLevel) SelectSub(sub string) {
	for _, s := range t.SubCategories() {
		if s == sub {
			t.sub = sub
			return
		}
	}
	t.sub = All
}

func (t *TwoLevel) mainItems() []portfolio.Item {
	if t.main == All || t.main == t.mains[0] {
		return t.items
	}
	out := make([]portfolio.Item, 0, len(t.items))
	for _, it := range t.items {
		if it.MainCategory == t.main {
			out = append(out, it)
		}
	}
	return out
}

// SubCategories lists "전체" plus the sub-categories present under the main selection.
func (t *TwoLevel) SubCategories() []string {
	out := []string{All}
	seen := map[string]bool{All: true}
	for _, it := range t.mainItems() {
		if it.SubCategory == "" || seen[it.SubCategory] {
			continue
		}
		seen[it.SubCategory] = true
		out = append(out, it.SubCategory)
	}
	return out
}

// Visible returns the items under both selections.
func (t *TwoLevel) Visible() []portfolio.Item {
	base := t.mainItems()
	if t.sub == All {
		return base
	}
	out := make([]portfolio.Item, 0, len(base))
	for _, it := range base {
		if it.SubCategory == t.sub {
			out = append(out, it)
		}
	}
	return out
}

// Count is len(Visible()).
func (t *TwoLevel) Count() int { return len(t.Visible()) }

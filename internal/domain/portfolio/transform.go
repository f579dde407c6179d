package portfolio

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/familysoo/studio-web/internal/pkg/contentful"
	"github.com/familysoo/studio-web/internal/pkg/imageurl"
)

// MissingOrder sorts entries without an order after all ordered ones.
const MissingOrder = 999999

// Options tune URL renditions.
type Options struct {
	Mobile bool
}

// DecodeEntries decodes raw API items of a portfolio content type.
func DecodeEntries(items json.RawMessage) []Entry {
	return contentful.DecodeEntries[Fields](items)
}

// Transform flattens entries and their linked assets into gallery items.
// Unresolved links are dropped. The result depends only on the input.
func Transform(entries []Entry, assets []contentful.Asset, ct ContentType) []Item {
	return TransformWithOptions(entries, assets, ct, Options{})
}

// TransformWithOptions is Transform with rendition options.
func TransformWithOptions(entries []Entry, assets []contentful.Asset, ct ContentType, opts Options) []Item {
	idx := contentful.IndexAssets(assets)
	sorted := SortEntries(entries)

	items := make([]Item, 0, len(sorted))
	for _, entry := range sorted {
		category := entry.Fields.Category
		if category == "" {
			category = ct.Label()
		}
		titleBase := entry.Fields.Title
		if titleBase == "" {
			titleBase = category
		}

		for i, link := range entry.Fields.Images {
			asset, ok := idx.Resolve(link)
			if !ok {
				continue
			}

			raw := asset.URL()
			item := Item{
				ID:           entry.Sys.ID + "-" + strconv.Itoa(i),
				Title:        titleBase + " " + strconv.Itoa(i+1),
				ImageURL:     imageurl.Thumbnail(raw, opts.Mobile),
				LightboxURL:  imageurl.Full(raw),
				OriginalURL:  imageurl.Normalize(raw),
				AspectRatio:  aspectPalette[len(items)%len(aspectPalette)],
				Category:     category,
				ContentType:  ct,
				MainCategory: ct.Label(),
				SubCategory:  category,
			}
			if dims := asset.Fields.File.Details.Image; dims != nil {
				item.Width = dims.Width
				item.Height = dims.Height
			}
			items = append(items, item)
		}
	}
	return items
}

// SortEntries returns a copy ordered by Fields.Order, missing orders last.
func SortEntries(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderOf(sorted[i]) < orderOf(sorted[j])
	})
	return sorted
}

func orderOf(e Entry) float64 {
	if e.Fields.Order == nil {
		return MissingOrder
	}
	return *e.Fields.Order
}

// Categories lists "전체" followed by the distinct entry categories in first-seen order.
func Categories(items []Item) []string {
	seen := map[string]bool{AllCategory: true}
	out := []string{AllCategory}
	for _, it := range items {
		if it.Category == "" || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return out
}

// AllCategory is the label meaning "no filter".
const AllCategory = "전체"

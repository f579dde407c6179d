package portfolio

import (
	"strings"

	"github.com/familysoo/studio-web/internal/pkg/contentful"
)

// ContentType is one of the three service lines.
type ContentType string

const (
	Family        ContentType = "family"
	Baby          ContentType = "baby"
	RemindWedding ContentType = "remindWedding"
)

// ContentTypes in display order.
var ContentTypes = []ContentType{Family, Baby, RemindWedding}

// Valid reports whether ct is a known service line.
func (ct ContentType) Valid() bool {
	switch ct {
	case Family, Baby, RemindWedding:
		return true
	}
	return false
}

// Label is the default category label for the service line.
func (ct ContentType) Label() string {
	switch ct {
	case Family:
		return "가족사진"
	case Baby:
		return "성장앨범"
	case RemindWedding:
		return "리마인드웨딩"
	}
	return ""
}

// Slug is the path segment of the service page.
func (ct ContentType) Slug() string {
	if ct == RemindWedding {
		return "remind-wedding"
	}
	return string(ct)
}

// ContentTypeFromSlug maps a service page slug back to its content type.
func ContentTypeFromSlug(slug string) (ContentType, bool) {
	for _, ct := range ContentTypes {
		if ct.Slug() == slug {
			return ct, true
		}
	}
	return "", false
}

// AspectRatio is a cosmetic display ratio such as "4/3".
type AspectRatio string

// aspectPalette is cycled by the running item count.
var aspectPalette = [...]AspectRatio{"4/3", "1/1", "3/4", "5/4", "4/5", "3/2", "2/3"}

// CSS renders the ratio for the aspect-ratio property, e.g. "4 / 3".
func (a AspectRatio) CSS() string {
	return strings.Replace(string(a), "/", " / ", 1)
}

// Fields is the field set of family, baby and remindWedding entries.
type Fields struct {
	Title    string            `json:"title,omitempty"`
	Category string            `json:"category,omitempty"`
	Order    *float64          `json:"order,omitempty"`
	Images   []contentful.Link `json:"images,omitempty"`
}

// Entry is a portfolio entry of one service line.
type Entry = contentful.Entry[Fields]

// Item is one (entry, image) pair ready for the gallery.
type Item struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	ImageURL     string      `json:"imageUrl"`
	LightboxURL  string      `json:"lightboxUrl,omitempty"`
	OriginalURL  string      `json:"originalUrl,omitempty"`
	AspectRatio  AspectRatio `json:"aspectRatio"`
	Category     string      `json:"category"`
	ContentType  ContentType `json:"contentType"`
	MainCategory string      `json:"mainCategory,omitempty"`
	SubCategory  string      `json:"subCategory,omitempty"`
	Width        int         `json:"width,omitempty"`
	Height       int         `json:"height,omitempty"`
}

// FullURL is the lightbox image, falling back to the thumbnail.
func (it Item) FullURL() string {
	if it.LightboxURL != "" {
		return it.LightboxURL
	}
	return it.ImageURL
}

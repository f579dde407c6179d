// Package imageurl builds resized image URLs for the Contentful Images API.
package imageurl

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultQuality       = 75
	DefaultFormat        = "webp"
	MaxWidth             = 4000
	ThumbnailWidth       = 600
	MobileThumbnailWidth = 400
)

// Options control the rendition. Zero Quality and empty Format mean the defaults.
type Options struct {
	Width   int
	Quality int
	Format  string
}

// Normalize turns protocol-relative URLs into https URLs.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}

// Optimize appends w/q/fm parameters to the normalized URL.
// Anything that is not an absolute URL is returned normalized and untouched.
func Optimize(raw string, opts Options) string {
	normalized := Normalize(raw)
	if normalized == "" {
		return ""
	}

	u, err := url.Parse(normalized)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return normalized
	}

	quality := opts.Quality
	if quality == 0 {
		quality = DefaultQuality
	}
	format := opts.Format
	if format == "" {
		format = DefaultFormat
	}

	var params []string
	if opts.Width > 0 && opts.Width <= MaxWidth {
		params = append(params, "w="+strconv.Itoa(opts.Width))
	}
	if quality >= 1 && quality <= 100 {
		params = append(params, "q="+strconv.Itoa(quality))
	}
	if format == "webp" {
		params = append(params, "fm=webp")
	}

	// keep foreign parameters, replace ours
	var kept []string
	for _, pair := range strings.Split(u.RawQuery, "&") {
		if pair == "" {
			continue
		}
		key := pair
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key = pair[:i]
		}
		if key == "w" || key == "q" || key == "fm" {
			continue
		}
		kept = append(kept, pair)
	}
	u.RawQuery = strings.Join(append(kept, params...), "&")
	u.ForceQuery = false

	return u.String()
}

// Thumbnail is the grid rendition.
func Thumbnail(raw string, mobile bool) string {
	width := ThumbnailWidth
	if mobile {
		width = MobileThumbnailWidth
	}
	return Optimize(raw, Options{Width: width})
}

// Full is the lightbox rendition, without a width cap.
func Full(raw string) string {
	return Optimize(raw, Options{})
}

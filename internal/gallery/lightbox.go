package gallery

import (
	"context"
	"time"

	"github.com/familysoo/studio-web/internal/domain/portfolio"
	"github.com/familysoo/studio-web/internal/pkg/logger"
)

// Key is a keyboard key name as reported by browsers.
type Key string

const (
	KeyLeft   Key = "ArrowLeft"
	KeyRight  Key = "ArrowRight"
	KeyEscape Key = "Escape"
)

// AdjacentPrefetcher warms the neighbours of the shown image.
type AdjacentPrefetcher interface {
	Adjacent(ctx context.Context, items []portfolio.Item, index int)
}

// Lightbox is the single-image viewer over a filtered item list.
// It is not safe for concurrent use; one owner drives it.
type Lightbox struct {
	items  []portfolio.Item
	index  int
	open   bool
	loaded bool

	// start of the current main-image load, for latency logging only
	loadStarted time.Time

	prefetcher AdjacentPrefetcher
	now        func() time.Time
}

// NewLightbox creates a closed lightbox. prefetcher may be nil.
func NewLightbox(prefetcher AdjacentPrefetcher) *Lightbox {
	return &Lightbox{prefetcher: prefetcher, now: time.Now, index: -1}
}

// Open shows items[index]. items is the currently filtered list.
func (l *Lightbox) Open(items []portfolio.Item, index int) bool {
	if index < 0 || index >= len(items) {
		return false
	}
	l.items = append([]portfolio.Item(nil), items...)
	l.index = index
	l.open = true
	l.startLoad()
	return true
}

// OpenItem opens the item with the given id.
func (l *Lightbox) OpenItem(items []portfolio.Item, id string) bool {
	for i, it := range items {
		if it.ID == id {
			return l.Open(items, i)
		}
	}
	return false
}

// Close hides the viewer and releases the scroll lock.
func (l *Lightbox) Close() {
	l.open = false
	l.loaded = false
	l.items = nil
	l.index = -1
}

// Next moves forward, wrapping from the last item to the first.
func (l *Lightbox) Next() {
	if !l.open || len(l.items) == 0 {
		return
	}
	l.index = (l.index + 1) % len(l.items)
	l.startLoad()
}

// Prev moves back, wrapping from the first item to the last.
func (l *Lightbox) Prev() {
	if !l.open || len(l.items) == 0 {
		return
	}
	l.index = (l.index - 1 + len(l.items)) % len(l.items)
	l.startLoad()
}

// HandleKey applies a key binding. Keys are ignored while closed.
func (l *Lightbox) HandleKey(key Key) bool {
	if !l.open {
		return false
	}
	switch key {
	case KeyLeft:
		l.Prev()
	case KeyRight:
		l.Next()
	case KeyEscape:
		l.Close()
	default:
		return false
	}
	return true
}

func (l *Lightbox) startLoad() {
	l.loaded = false
	l.loadStarted = l.now()
}

// IsOpen reports whether an image is shown.
func (l *Lightbox) IsOpen() bool { return l.open }

// ScrollLocked reports whether page scrolling is disabled.
func (l *Lightbox) ScrollLocked() bool { return l.open }

// Loaded reports whether the loading indicator is dismissed.
func (l *Lightbox) Loaded() bool { return l.loaded }

// Index is the position in the filtered list, or -1 when closed.
func (l *Lightbox) Index() int { return l.index }

// Len is the size of the list being browsed.
func (l *Lightbox) Len() int { return len(l.items) }

// Current returns the shown item.
func (l *Lightbox) Current() (portfolio.Item, bool) {
	if !l.open {
		return portfolio.Item{}, false
	}
	return l.items[l.index], true
}

// CurrentURL is the image being loaded: the full rendition, else the thumbnail.
func (l *Lightbox) CurrentURL() string {
	it, ok := l.Current()
	if !ok {
		return ""
	}
	return it.FullURL()
}

// ImageLoaded records that url finished loading and starts the adjacent prefetch.
// Completions for an image that is no longer shown are ignored.
func (l *Lightbox) ImageLoaded(ctx context.Context, url string) (time.Duration, bool) {
	if !l.open || url != l.CurrentURL() || l.loaded {
		return 0, false
	}
	l.loaded = true
	took := l.now().Sub(l.loadStarted)

	logger.LogDebug(ctx, "Lightbox image loaded",
		"index", l.index,
		"url", url,
		"took_ms", took.Milliseconds(),
	)

	if l.prefetcher != nil {
		l.prefetcher.Adjacent(ctx, l.items, l.index)
	}
	return took, true
}

// ImageFailed dismisses the loading indicator for a failed image.
func (l *Lightbox) ImageFailed(ctx context.Context, url string, err error) bool {
	if !l.open || url != l.CurrentURL() || l.loaded {
		return false
	}
	l.loaded = true
	logger.LogWarn(ctx, "Lightbox image failed to load",
		"index", l.index,
		"url", url,
		"error", errString(err),
	)
	return true
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Neighbours returns the wrapped previous and next indexes of index in a list of n.
func Neighbours(index, n int) (prev, next int) {
	if n <= 0 {
		return -1, -1
	}
	return (index - 1 + n) % n, (index + 1) % n
}

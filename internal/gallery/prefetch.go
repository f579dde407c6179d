package gallery

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/familysoo/studio-web/internal/domain/portfolio"
	"github.com/familysoo/studio-web/internal/pkg/logger"
)

// Loader fetches an image without displaying it.
type Loader interface {
	Load(ctx context.Context, url string) error
}

// PrefetchConfig holds the delays of the adjacent prefetch.
type PrefetchConfig struct {
	// SettleDelay runs after the main image loads, before the next image.
	SettleDelay time.Duration
	// PrevDelay runs between the next and the previous image.
	PrevDelay time.Duration
}

// DefaultPrefetchConfig waits 500ms, then 1s before the previous image.
func DefaultPrefetchConfig() PrefetchConfig {
	return PrefetchConfig{SettleDelay: 500 * time.Millisecond, PrevDelay: time.Second}
}

// Prefetcher warms neighbouring images. Each URL is loaded at most once
// successfully; failures are logged and may be retried by a later call.
type Prefetcher struct {
	loader Loader
	cfg    PrefetchConfig

	mu   sync.Mutex
	done map[string]struct{}

	group singleflight.Group
	wg    sync.WaitGroup
}

// NewPrefetcher creates a prefetcher.
func NewPrefetcher(loader Loader, cfg PrefetchConfig) *Prefetcher {
	return &Prefetcher{
		loader: loader,
		cfg:    cfg,
		done:   make(map[string]struct{}),
	}
}

// Adjacent prefetches the next image and then, after PrevDelay, the previous one.
// It returns immediately; ctx cancellation stops pending work.
func (p *Prefetcher) Adjacent(ctx context.Context, items []portfolio.Item, index int) {
	n := len(items)
	if n < 2 || index < 0 || index >= n {
		return
	}
	prev, next := Neighbours(index, n)
	nextURL := items[next].FullURL()
	prevURL := items[prev].FullURL()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		if !sleepCtx(ctx, p.cfg.SettleDelay) {
			return
		}
		_ = p.Prefetch(ctx, nextURL)

		if prevURL == nextURL {
			return
		}
		if !sleepCtx(ctx, p.cfg.PrevDelay) {
			return
		}
		_ = p.Prefetch(ctx, prevURL)
	}()
}

// Prefetch loads url unless it was already prefetched. Concurrent calls for
// the same url share one load.
func (p *Prefetcher) Prefetch(ctx context.Context, url string) error {
	if url == "" || p.Prefetched(url) {
		return nil
	}

	_, err, _ := p.group.Do(url, func() (interface{}, error) {
		if p.Prefetched(url) {
			return nil, nil
		}
		if err := p.loader.Load(ctx, url); err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.done[url] = struct{}{}
		p.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		logger.LogWarn(ctx, "Image prefetch failed", "url", url, "error", err.Error())
		return err
	}

	logger.LogDebug(ctx, "Image prefetched", "url", url)
	return nil
}

// Prefetched reports whether url has been loaded successfully.
func (p *Prefetcher) Prefetched(url string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.done[url]
	return ok
}

// Wait blocks until every scheduled prefetch has finished or given up.
func (p *Prefetcher) Wait() {
	p.wg.Wait()
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

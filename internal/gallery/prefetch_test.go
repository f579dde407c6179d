package gallery

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeLoader struct {
	mu    sync.Mutex
	order []string
	calls map[string]int
	fail  map[string]bool
	block chan struct{}
	count atomic.Int32
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{calls: map[string]int{}, fail: map[string]bool{}}
}

func (f *fakeLoader) Load(ctx context.Context, url string) error {
	f.count.Add(1)
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.order = append(f.order, url)
	f.calls[url]++
	if f.fail[url] {
		return errors.New("image http error: status=404")
	}
	return nil
}

func (f *fakeLoader) loaded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.order...)
}

func TestAdjacentLoadsNextThenPrev(t *testing.T) {
	defer goleak.VerifyNone(t)

	items := threeItems()
	loader := newFakeLoader()
	p := NewPrefetcher(loader, PrefetchConfig{})

	p.Adjacent(context.Background(), items, 0)
	p.Wait()

	assert.Equal(t, []string{items[1].FullURL(), items[2].FullURL()}, loader.loaded())
	assert.True(t, p.Prefetched(items[1].FullURL()))
	assert.True(t, p.Prefetched(items[2].FullURL()))
}

func TestAdjacentSkipsAlreadyPrefetched(t *testing.T) {
	defer goleak.VerifyNone(t)

	items := threeItems()
	loader := newFakeLoader()
	p := NewPrefetcher(loader, PrefetchConfig{})

	p.Adjacent(context.Background(), items, 0)
	p.Wait()
	p.Adjacent(context.Background(), items, 0)
	p.Wait()

	for url, n := range loader.calls {
		assert.Equal(t, 1, n, "url %s loaded more than once", url)
	}
}

func TestAdjacentWithTwoItemsLoadsTheOtherOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	items := threeItems()[:2]
	loader := newFakeLoader()
	p := NewPrefetcher(loader, PrefetchConfig{})

	p.Adjacent(context.Background(), items, 0)
	p.Wait()

	assert.Equal(t, []string{items[1].FullURL()}, loader.loaded())
}

func TestAdjacentIgnoresSingleItemAndBadIndex(t *testing.T) {
	loader := newFakeLoader()
	p := NewPrefetcher(loader, PrefetchConfig{})

	p.Adjacent(context.Background(), threeItems()[:1], 0)
	p.Adjacent(context.Background(), threeItems(), 7)
	p.Wait()

	assert.Empty(t, loader.loaded())
}

func TestPrefetchFailureIsNotRemembered(t *testing.T) {
	defer goleak.VerifyNone(t)

	loader := newFakeLoader()
	loader.fail["https://cdn.test/broken"] = true
	p := NewPrefetcher(loader, PrefetchConfig{})

	err := p.Prefetch(context.Background(), "https://cdn.test/broken")
	require.Error(t, err)
	assert.False(t, p.Prefetched("https://cdn.test/broken"))

	loader.fail["https://cdn.test/broken"] = false
	require.NoError(t, p.Prefetch(context.Background(), "https://cdn.test/broken"))
	assert.True(t, p.Prefetched("https://cdn.test/broken"))
}

func TestPrefetchCollapsesConcurrentDuplicates(t *testing.T) {
	defer goleak.VerifyNone(t)

	loader := newFakeLoader()
	loader.block = make(chan struct{})
	p := NewPrefetcher(loader, PrefetchConfig{})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Prefetch(context.Background(), "https://cdn.test/same")
		}()
	}

	require.Eventually(t, func() bool { return loader.count.Load() >= 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(loader.block)
	wg.Wait()

	assert.Equal(t, 1, loader.calls["https://cdn.test/same"])
}

func TestAdjacentStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	loader := newFakeLoader()
	p := NewPrefetcher(loader, PrefetchConfig{SettleDelay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	p.Adjacent(ctx, threeItems(), 0)
	cancel()
	p.Wait()

	assert.Empty(t, loader.loaded())
}

func TestLightboxDrivesPrefetcher(t *testing.T) {
	defer goleak.VerifyNone(t)

	items := threeItems()
	loader := newFakeLoader()
	p := NewPrefetcher(loader, PrefetchConfig{})
	lb := NewLightbox(p)

	lb.Open(items, 2)
	_, ok := lb.ImageLoaded(context.Background(), lb.CurrentURL())
	require.True(t, ok)
	p.Wait()

	// next of the last item wraps to the first
	assert.Equal(t, []string{items[0].FullURL(), items[1].FullURL()}, loader.loaded())
}

func TestSequenceLatest(t *testing.T) {
	var s Sequence
	first := s.Next()
	second := s.Next()

	assert.False(t, s.Latest(first))
	assert.True(t, s.Latest(second))
}

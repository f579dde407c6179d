package gallery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familysoo/studio-web/internal/domain/portfolio"
)

type recordingPrefetcher struct {
	calls []int
}

func (r *recordingPrefetcher) Adjacent(_ context.Context, _ []portfolio.Item, index int) {
	r.calls = append(r.calls, index)
}

func threeItems() []portfolio.Item {
	return []portfolio.Item{
		item("a", "돌", portfolio.Baby),
		item("b", "돌", portfolio.Baby),
		item("c", "돌", portfolio.Baby),
	}
}

func TestLightboxWrapsAround(t *testing.T) {
	lb := NewLightbox(nil)
	require.True(t, lb.Open(threeItems(), 0))

	lb.Prev()
	assert.Equal(t, 2, lb.Index())

	lb.Next()
	assert.Equal(t, 0, lb.Index())

	lb.Next()
	lb.Next()
	assert.Equal(t, 2, lb.Index())
	lb.Next()
	assert.Equal(t, 0, lb.Index())
}

func TestLightboxKeysMatchControls(t *testing.T) {
	lb := NewLightbox(nil)
	lb.Open(threeItems(), 0)

	assert.True(t, lb.HandleKey(KeyLeft))
	assert.Equal(t, 2, lb.Index())
	assert.True(t, lb.HandleKey(KeyRight))
	assert.Equal(t, 0, lb.Index())
	assert.False(t, lb.HandleKey(Key("Enter")))

	assert.True(t, lb.HandleKey(KeyEscape))
	assert.False(t, lb.IsOpen())
	assert.False(t, lb.ScrollLocked())
	assert.Equal(t, -1, lb.Index())
}

func TestLightboxKeysIgnoredWhileClosed(t *testing.T) {
	lb := NewLightbox(nil)
	for _, k := range []Key{KeyLeft, KeyRight, KeyEscape} {
		assert.False(t, lb.HandleKey(k))
	}
	assert.False(t, lb.IsOpen())
}

func TestLightboxOpenByIDWithinFilteredList(t *testing.T) {
	g := New(sampleItems(), nil)
	g.Select("돌")

	lb := NewLightbox(nil)
	require.True(t, lb.OpenItem(g.Visible(), "b3"))
	assert.Equal(t, 1, lb.Index())
	assert.Equal(t, 2, lb.Len())
	assert.True(t, lb.ScrollLocked())
	assert.False(t, lb.Loaded())

	assert.False(t, NewLightbox(nil).OpenItem(g.Visible(), "f1"))
}

func TestLightboxOpenRejectsOutOfRange(t *testing.T) {
	lb := NewLightbox(nil)
	assert.False(t, lb.Open(threeItems(), 3))
	assert.False(t, lb.Open(nil, 0))
	assert.False(t, lb.IsOpen())
}

func TestLightboxCurrentURLFallsBackToThumbnail(t *testing.T) {
	items := threeItems()
	items[1].LightboxURL = ""

	lb := NewLightbox(nil)
	lb.Open(items, 0)
	assert.Equal(t, items[0].LightboxURL, lb.CurrentURL())
	lb.Next()
	assert.Equal(t, items[1].ImageURL, lb.CurrentURL())
}

func TestLightboxImageLoadedTriggersPrefetchOnce(t *testing.T) {
	pf := &recordingPrefetcher{}
	lb := NewLightbox(pf)
	clock := time.Unix(100, 0)
	lb.now = func() time.Time { return clock }

	lb.Open(threeItems(), 1)
	clock = clock.Add(250 * time.Millisecond)

	took, ok := lb.ImageLoaded(context.Background(), lb.CurrentURL())
	require.True(t, ok)
	assert.Equal(t, 250*time.Millisecond, took)
	assert.True(t, lb.Loaded())
	assert.Equal(t, []int{1}, pf.calls)

	_, ok = lb.ImageLoaded(context.Background(), lb.CurrentURL())
	assert.False(t, ok, "second completion must be ignored")
	assert.Equal(t, []int{1}, pf.calls)
}

func TestLightboxIgnoresStaleCompletions(t *testing.T) {
	pf := &recordingPrefetcher{}
	lb := NewLightbox(pf)
	lb.Open(threeItems(), 0)
	stale := lb.CurrentURL()
	lb.Next()

	_, ok := lb.ImageLoaded(context.Background(), stale)
	assert.False(t, ok)
	assert.False(t, lb.Loaded())
	assert.Empty(t, pf.calls)
}

func TestLightboxFailedImageStillCountsAsLoaded(t *testing.T) {
	pf := &recordingPrefetcher{}
	lb := NewLightbox(pf)
	lb.Open(threeItems(), 0)

	assert.True(t, lb.ImageFailed(context.Background(), lb.CurrentURL(), errors.New("404")))
	assert.True(t, lb.Loaded())
	assert.Empty(t, pf.calls, "failed images do not prefetch neighbours")

	lb.Next()
	assert.False(t, lb.Loaded(), "navigation restarts loading")
}

func TestNeighbours(t *testing.T) {
	prev, next := Neighbours(0, 3)
	assert.Equal(t, 2, prev)
	assert.Equal(t, 1, next)

	prev, next = Neighbours(0, 0)
	assert.Equal(t, -1, prev)
	assert.Equal(t, -1, next)
}

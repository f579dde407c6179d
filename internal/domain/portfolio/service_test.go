package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familysoo/studio-web/internal/pkg/contentful"
)

type fakeFetcher struct {
	mu      sync.Mutex
	queries []contentful.Query
	bodies  map[string]string
	err     error
}

func (f *fakeFetcher) Entries(ctx context.Context, q contentful.Query) (*contentful.Envelope, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var env contentful.Envelope
	if err := json.Unmarshal([]byte(f.bodies[q.ContentType]), &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func bodyFor(entryID, assetID string) string {
	return `{"total":1,"items":[{"sys":{"id":"` + entryID + `"},"fields":{"images":[{"sys":{"id":"` + assetID + `"}}]}}],
	"includes":{"Asset":[{"sys":{"id":"` + assetID + `"},"fields":{"file":{"url":"//cdn.test/` + assetID + `.jpg"}}}]}}`
}

func TestServiceLoad(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{"baby": bodyFor("b1", "a1")}}

	items, err := NewService(f).Load(context.Background(), Baby, Options{})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b1-0", items[0].ID)
	assert.Equal(t, "성장앨범", items[0].Category)
	require.Len(t, f.queries, 1)
	assert.Equal(t, RevalidateWindow, f.queries[0].MaxAge)
}

func TestServiceLoadRejectsUnknownType(t *testing.T) {
	f := &fakeFetcher{}
	_, err := NewService(f).Load(context.Background(), ContentType("pets"), Options{})
	require.Error(t, err)
	assert.Empty(t, f.queries)
}

func TestServiceLoadAllKeepsDisplayOrder(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{
		"family":        bodyFor("f1", "a1"),
		"baby":          bodyFor("b1", "a2"),
		"remindWedding": bodyFor("r1", "a3"),
	}}

	items, err := NewService(f).LoadAll(context.Background(), Options{})

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"f1-0", "b1-0", "r1-0"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestServiceLoadAllPropagatesErrors(t *testing.T) {
	f := &fakeFetcher{err: errors.New("contentful http error: status=500 body=")}

	_, err := NewService(f).LoadAll(context.Background(), Options{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=500")
}

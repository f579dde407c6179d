package concept

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familysoo/studio-web/internal/domain/portfolio"
	"github.com/familysoo/studio-web/internal/pkg/contentful"
)

func order(v float64) *float64 { return &v }

func entry(id, name, category string, ord *float64, image string) Entry {
	e := Entry{Sys: contentful.Sys{ID: id}}
	e.Fields.Name = name
	e.Fields.Service = ServiceBaby
	e.Fields.Category = category
	e.Fields.Order = ord
	if image != "" {
		e.Fields.Image = &contentful.Link{Sys: contentful.Sys{ID: image, Type: "Link", LinkType: "Asset"}}
	}
	return e
}

func TestTransformConceptsResolvesImages(t *testing.T) {
	entries := []Entry{
		entry("c1", "한복", "백일 기념 테마", order(1), "a1"),
		entry("c2", "꽃", "", nil, "missing"),
		entry("c3", "케이크", "첫돌 기념 테마", order(2), ""),
		entry("c4", "풍선", "", nil, "nofile"),
	}
	assets := []contentful.Asset{
		{Sys: contentful.Sys{ID: "a1"}, Fields: contentful.AssetFields{File: &contentful.AssetFile{URL: "//images.ctfassets.net/a1.jpg"}}},
		{Sys: contentful.Sys{ID: "nofile"}},
	}

	concepts := TransformConcepts(entries, assets)
	require.Len(t, concepts, 4)

	assert.Equal(t, "https://images.ctfassets.net/a1.jpg", concepts[0].ImageURL)
	assert.Empty(t, concepts[1].ImageURL)
	assert.Empty(t, concepts[2].ImageURL)
	assert.Empty(t, concepts[3].ImageURL)
	assert.Equal(t, "c1", concepts[0].ID)
	assert.Equal(t, ServiceBaby, concepts[0].Service)
}

func TestTransformConceptsKeepsAbsoluteURL(t *testing.T) {
	entries := []Entry{entry("c1", "한복", "", nil, "a1")}
	assets := []contentful.Asset{
		{Sys: contentful.Sys{ID: "a1"}, Fields: contentful.AssetFields{File: &contentful.AssetFile{URL: "https://cdn.example.com/a1.jpg"}}},
	}

	concepts := TransformConcepts(entries, assets)
	assert.Equal(t, "https://cdn.example.com/a1.jpg", concepts[0].ImageURL)
}

func TestGroupConceptsOrdersAndGroups(t *testing.T) {
	concepts := []Concept{
		{ID: "late", Category: "추가 선택 컨셉"},
		{ID: "b2", Category: "백일 기념 테마", Order: order(2)},
		{ID: "none", Order: order(3)},
		{ID: "d1", Category: "첫돌 기념 테마", Order: order(1)},
		{ID: "b0", Category: "백일 기념 테마", Order: order(0)},
	}

	groups := GroupConcepts(concepts)

	ids := func(g Group) []string {
		out := make([]string, 0, len(g.Concepts))
		for _, c := range g.Concepts {
			out = append(out, c.ID)
		}
		return out
	}

	got := make(map[string][]string)
	var categories []string
	for _, g := range groups {
		categories = append(categories, g.Category)
		got[g.Category] = ids(g)
	}

	want := []string{"백일 기념 테마", "첫돌 기념 테마", DefaultCategory, "추가 선택 컨셉"}
	if diff := cmp.Diff(want, categories); diff != "" {
		t.Fatalf("group order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"b0", "b2"}, got["백일 기념 테마"])
	assert.Equal(t, []string{"none"}, got[DefaultCategory])
	assert.Equal(t, "late", concepts[0].ID, "input must not be reordered")
}

func TestGroupConceptsEmpty(t *testing.T) {
	assert.Empty(t, GroupConcepts(nil))
}

func TestShowBadge(t *testing.T) {
	assert.True(t, Concept{Recommend: true, RecommendLabel: "BEST"}.ShowBadge())
	assert.False(t, Concept{Recommend: true}.ShowBadge())
	assert.False(t, Concept{RecommendLabel: "BEST"}.ShowBadge())
}

func TestServiceFor(t *testing.T) {
	assert.Equal(t, ServiceFamily, ServiceFor(portfolio.Family))
	assert.Equal(t, ServiceBaby, ServiceFor(portfolio.Baby))
	assert.Equal(t, ServiceRemindWedding, ServiceFor(portfolio.RemindWedding))
	assert.Empty(t, ServiceFor("other"))
}

func TestDecodeEntriesSkipsMalformed(t *testing.T) {
	raw := json.RawMessage(`[{"sys":{"id":"c1"},"fields":{"name":"한복","recommend":true}}, 42]`)

	entries := DecodeEntries(raw)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Fields.Recommend)
}

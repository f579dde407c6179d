package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/familysoo/studio-web/internal/domain/portfolio"
)

func ids(items []portfolio.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func item(id, category string, ct portfolio.ContentType) portfolio.Item {
	return portfolio.Item{
		ID:           id,
		ImageURL:     "https://cdn.test/" + id + "?w=600",
		LightboxURL:  "https://cdn.test/" + id + "?q=75",
		Category:     category,
		ContentType:  ct,
		MainCategory: ct.Label(),
		SubCategory:  category,
	}
}

func sampleItems() []portfolio.Item {
	return []portfolio.Item{
		item("b1", "돌", portfolio.Baby),
		item("b2", "백일", portfolio.Baby),
		item("f1", "야외", portfolio.Family),
		item("b3", "돌", portfolio.Baby),
		item("r1", "야외", portfolio.RemindWedding),
	}
}

func TestGalleryDefaultShowsEverything(t *testing.T) {
	items := sampleItems()
	g := New(items, nil)

	assert.Equal(t, []string{"전체", "돌", "백일", "야외"}, g.Categories())
	assert.Equal(t, "전체", g.Active())
	assert.Equal(t, len(items), g.Count())
}

func TestGallerySelectFiltersByCategory(t *testing.T) {
	g := New(sampleItems(), nil)

	g.Select("돌")
	assert.Equal(t, []string{"b1", "b3"}, ids(g.Visible()))
	assert.Equal(t, 2, g.Count())

	g.Select("전체")
	assert.Equal(t, 5, g.Count())
}

func TestGalleryFirstCategoryMeansNoFilter(t *testing.T) {
	// home page style tabs without an explicit "전체"
	g := New(sampleItems(), []string{"가족사진", "야외", "돌"})

	assert.True(t, g.IsAll())
	assert.Equal(t, 5, g.Count())

	g.Select("야외")
	assert.Equal(t, []string{"f1", "r1"}, ids(g.Visible()))

	g.Select("가족사진")
	assert.Equal(t, 5, g.Count())
}

func TestGalleryUnknownCategoryFallsBackToDefault(t *testing.T) {
	g := New(sampleItems(), nil)
	g.Select("돌")
	g.Select("없는 카테고리")
	assert.Equal(t, "전체", g.Active())
}

func TestTwoLevelMainChangeResetsSub(t *testing.T) {
	tl := NewTwoLevel(sampleItems(), nil)
	assert.Equal(t, []string{"전체", "가족사진", "성장앨범", "리마인드웨딩"}, tl.MainCategories())

	tl.SelectMain("성장앨범")
	assert.Equal(t, []string{"전체", "돌", "백일"}, tl.SubCategories())
	tl.SelectSub("백일")
	assert.Equal(t, []string{"b2"}, ids(tl.Visible()))

	tl.SelectMain("가족사진")
	assert.Equal(t, "전체", tl.Sub())
	assert.Equal(t, []string{"f1"}, ids(tl.Visible()))
	assert.Equal(t, 1, tl.Count())
}

func TestTwoLevelSubOutsideMainIsRejected(t *testing.T) {
	tl := NewTwoLevel(sampleItems(), nil)
	tl.SelectMain("리마인드웨딩")
	tl.SelectSub("돌")
	assert.Equal(t, "전체", tl.Sub())
	assert.Equal(t, []string{"r1"}, ids(tl.Visible()))
}

func TestTwoLevelAllMainWithSub(t *testing.T) {
	tl := NewTwoLevel(sampleItems(), nil)
	tl.SelectSub("야외")
	assert.Equal(t, []string{"f1", "r1"}, ids(tl.Visible()))
}

func TestTwoLevelSubCategoriesDoNotRepeatAll(t *testing.T) {
	tl := NewTwoLevel([]portfolio.Item{
		item("a", All, portfolio.Baby),
		item("b", "돌", portfolio.Baby),
	}, nil)

	tl.SelectMain("성장앨범")

	assert.Equal(t, []string{"전체", "돌"}, tl.SubCategories())
}

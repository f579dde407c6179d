package concept

import (
	"encoding/json"
	"sort"

	"github.com/familysoo/studio-web/internal/domain/portfolio"
	"github.com/familysoo/studio-web/internal/pkg/contentful"
	"github.com/familysoo/studio-web/internal/pkg/imageurl"
)

// Service labels as stored in the concept "service" field.
const (
	ServiceBaby          = "베이비"
	ServiceFamily        = "가족"
	ServiceRemindWedding = "리마인드 웨딩"
)

// DefaultCategory groups concepts that have no category.
const DefaultCategory = "기본 컨셉"

// Section copy.
const (
	DefaultTitle       = "촬영 테마 소개"
	DefaultDescription = "아래 다양한 테마 중에서 원하시는 컨셉을 선택하여 촬영합니다"
	MsgEmpty           = "등록된 컨셉이 없습니다."
	MsgLoadFailed      = "컨셉 데이터를 불러오는데 실패했습니다."
)

// Services lists the accepted service labels.
var Services = []string{ServiceBaby, ServiceFamily, ServiceRemindWedding}

// ServiceFor maps a portfolio service line to its concept service label.
func ServiceFor(ct portfolio.ContentType) string {
	switch ct {
	case portfolio.Family:
		return ServiceFamily
	case portfolio.Baby:
		return ServiceBaby
	case portfolio.RemindWedding:
		return ServiceRemindWedding
	}
	return ""
}

// Fields is the field set of a concept entry.
type Fields struct {
	Name           string           `json:"name"`
	Service        string           `json:"service"`
	Description    string           `json:"description"`
	Image          *contentful.Link `json:"image,omitempty"`
	Category       string           `json:"category,omitempty"`
	Recommend      bool             `json:"recommend,omitempty"`
	RecommendLabel string           `json:"recommendLabel,omitempty"`
	Order          *float64         `json:"order,omitempty"`
}

// Entry is a concept entry.
type Entry = contentful.Entry[Fields]

// Concept is a shooting theme shown on a service page.
type Concept struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Service        string   `json:"service"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	Category       string   `json:"category,omitempty"`
	Recommend      bool     `json:"recommend"`
	RecommendLabel string   `json:"recommendLabel,omitempty"`
	Order          *float64 `json:"order,omitempty"`
}

// ShowBadge reports whether the recommend badge is rendered.
func (c Concept) ShowBadge() bool {
	return c.Recommend && c.RecommendLabel != ""
}

// Group is one category of concepts.
type Group struct {
	Category string    `json:"category"`
	Concepts []Concept `json:"concepts"`
}

// DecodeEntries decodes raw upstream items into concept entries.
func DecodeEntries(items json.RawMessage) []Entry {
	return contentful.DecodeEntries[Fields](items)
}

// TransformConcepts maps entries to concepts, resolving images against assets.
// A concept whose image is missing from assets, or has no file URL, gets no image.
func TransformConcepts(entries []Entry, assets []contentful.Asset) []Concept {
	index := contentful.IndexAssets(assets)

	concepts := make([]Concept, 0, len(entries))
	for _, e := range entries {
		c := Concept{
			ID:             e.Sys.ID,
			Name:           e.Fields.Name,
			Service:        e.Fields.Service,
			Description:    e.Fields.Description,
			Category:       e.Fields.Category,
			Recommend:      e.Fields.Recommend,
			RecommendLabel: e.Fields.RecommendLabel,
			Order:          e.Fields.Order,
		}
		if e.Fields.Image != nil {
			if asset, ok := index.Resolve(*e.Fields.Image); ok {
				c.ImageURL = imageurl.Normalize(asset.URL())
			}
		}
		concepts = append(concepts, c)
	}
	return concepts
}

// GroupConcepts sorts concepts by order and groups them by category.
// Groups appear in the order their first concept does after sorting.
func GroupConcepts(concepts []Concept) []Group {
	sorted := make([]Concept, len(concepts))
	copy(sorted, concepts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderOf(sorted[i]) < orderOf(sorted[j])
	})

	var groups []Group
	position := make(map[string]int)
	for _, c := range sorted {
		category := c.Category
		if category == "" {
			category = DefaultCategory
		}
		i, ok := position[category]
		if !ok {
			i = len(groups)
			position[category] = i
			groups = append(groups, Group{Category: category})
		}
		groups[i].Concepts = append(groups[i].Concepts, c)
	}
	return groups
}

func orderOf(c Concept) float64 {
	if c.Order == nil {
		return portfolio.MissingOrder
	}
	return *c.Order
}

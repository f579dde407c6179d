package concept

import (
	"context"
	"time"

	"github.com/familysoo/studio-web/internal/pkg/contentful"
)

const (
	// ContentType is the upstream content type of concepts.
	ContentType = "concept"
	// RevalidateWindow is how long a concept response may be reused.
	RevalidateWindow = 5 * time.Minute
)

// Fetcher is the upstream content API.
type Fetcher interface {
	Configured() bool
	Entries(ctx context.Context, q contentful.Query) (*contentful.Envelope, error)
}

// Service fetches concept entries, optionally filtered by service label.
type Service struct {
	fetcher Fetcher
}

// NewService creates concept service
func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Query is the upstream query for concepts of a service; an empty service matches all.
func Query(service string) contentful.Query {
	q := contentful.Query{
		ContentType: ContentType,
		Include:     2,
		MaxAge:      RevalidateWindow,
	}
	if service != "" {
		q.Fields = map[string]string{"service": service}
	}
	return q
}

// Fetch returns the raw upstream envelope.
func (s *Service) Fetch(ctx context.Context, service string) (*contentful.Envelope, error) {
	if !s.fetcher.Configured() {
		return nil, contentful.ErrNotConfigured
	}
	return s.fetcher.Entries(ctx, Query(service))
}

// Load fetches, transforms and groups the concepts of a service.
func (s *Service) Load(ctx context.Context, service string) ([]Group, error) {
	env, err := s.Fetch(ctx, service)
	if err != nil {
		return nil, err
	}
	return GroupConcepts(TransformConcepts(DecodeEntries(env.Items), env.Assets())), nil
}

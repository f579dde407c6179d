package services

import (
	"context"

	"github.com/familysoo/studio-web/internal/domain/portfolio"
	"github.com/familysoo/studio-web/internal/pkg/contentful"
	"github.com/familysoo/studio-web/internal/pkg/validator"
)

// Fetcher is the upstream content API.
type Fetcher interface {
	Configured() bool
	Entries(ctx context.Context, q contentful.Query) (*contentful.Envelope, error)
}

// Service validates the requested service line and fetches its entries.
type Service struct {
	fetcher Fetcher
}

// NewService creates services service
func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Fetch returns the raw upstream envelope for contentType.
// Configuration is checked before the parameter.
func (s *Service) Fetch(ctx context.Context, contentType string) (*contentful.Envelope, error) {
	if !s.fetcher.Configured() {
		return nil, contentful.ErrNotConfigured
	}
	if contentType == "" {
		return nil, ErrTypeRequired
	}
	if err := validator.ValidateVar(contentType, "content_type"); err != nil {
		return nil, ErrTypeNotAllowed
	}
	return s.fetcher.Entries(ctx, portfolio.Query(portfolio.ContentType(contentType)))
}

package portfolio

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/familysoo/studio-web/internal/pkg/contentful"
)

// RevalidateWindow is how long a service-line response may be reused.
const RevalidateWindow = 60 * time.Second

// EntriesFetcher fetches one page of entries.
type EntriesFetcher interface {
	Entries(ctx context.Context, q contentful.Query) (*contentful.Envelope, error)
}

// Service loads gallery items for the pages and the CLI.
type Service struct {
	fetcher EntriesFetcher
}

// NewService creates portfolio service
func NewService(fetcher EntriesFetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Query is the upstream query for a service line.
func Query(ct ContentType) contentful.Query {
	return contentful.Query{ContentType: string(ct), MaxAge: RevalidateWindow}
}

// Load fetches and transforms one service line.
func (s *Service) Load(ctx context.Context, ct ContentType, opts Options) ([]Item, error) {
	if !ct.Valid() {
		return nil, fmt.Errorf("portfolio: unknown content type %q", ct)
	}
	env, err := s.fetcher.Entries(ctx, Query(ct))
	if err != nil {
		return nil, err
	}
	return TransformWithOptions(DecodeEntries(env.Items), env.Assets(), ct, opts), nil
}

// LoadAll fetches every service line concurrently and concatenates them in display order.
func (s *Service) LoadAll(ctx context.Context, opts Options) ([]Item, error) {
	results := make([][]Item, len(ContentTypes))

	g, gctx := errgroup.WithContext(ctx)
	for i, ct := range ContentTypes {
		g.Go(func() error {
			items, err := s.Load(gctx, ct, opts)
			if err != nil {
				return fmt.Errorf("load %s: %w", ct, err)
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Item
	for _, items := range results {
		all = append(all, items...)
	}
	return all, nil
}

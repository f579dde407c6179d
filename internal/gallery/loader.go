package gallery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

// HTTPLoader downloads images and discards the bytes. A circuit breaker stops
// prefetching against an image CDN that keeps failing.
type HTTPLoader struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// LoaderConfig configures the HTTP loader.
type LoaderConfig struct {
	Timeout     time.Duration
	MaxFailures uint32
	OpenFor     time.Duration
}

// NewHTTPLoader creates an HTTP image loader.
func NewHTTPLoader(client *http.Client, cfg LoaderConfig) *HTTPLoader {
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	openFor := cfg.OpenFor
	if openFor <= 0 {
		openFor = 30 * time.Second
	}

	st := gobreaker.Settings{
		Name:        "image-cdn",
		MaxRequests: 1,
		Timeout:     openFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Info().Str("name", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state")
		},
	}

	return &HTTPLoader{client: client, breaker: gobreaker.NewCircuitBreaker(st)}
}

// Load fetches url and drains the body.
func (l *HTTPLoader) Load(ctx context.Context, url string) error {
	_, err := l.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("image request error: %w", err)
		}
		req.Header.Set("Accept", "image/webp,image/*;q=0.8")

		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("image fetch error: %w", err)
		}
		defer resp.Body.Close()

		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			return nil, fmt.Errorf("image read error: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("image http error: status=%d", resp.StatusCode)
		}
		return nil, nil
	})
	return err
}

// State exposes the breaker state for diagnostics.
func (l *HTTPLoader) State() gobreaker.State {
	return l.breaker.State()
}

package contentful

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultBaseURL     = "https://cdn.contentful.com"
	defaultEnvironment = "master"
	maxErrorBody       = 512
)

// ErrNotConfigured is returned when the space id or access token is empty.
var ErrNotConfigured = errors.New("contentful config error: space id or access token is empty")

// APIError is a non-2xx answer from the delivery API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("contentful http error: status=%d body=%s", e.StatusCode, e.Body)
}

// Config holds client settings.
type Config struct {
	BaseURL     string
	SpaceID     string
	AccessToken string
	Environment string
	Timeout     time.Duration
	UserAgent   string
}

// Client talks to the Contentful Content Delivery API.
type Client struct {
	baseURL     string
	spaceID     string
	token       string
	environment string
	ua          string
	http        *http.Client
	cache       Cache
}

// NewClient creates a new Contentful client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	baseURL := cfg.BaseURL
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	env := cfg.Environment
	if env == "" {
		env = defaultEnvironment
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		spaceID:     cfg.SpaceID,
		token:       cfg.AccessToken,
		environment: env,
		ua:          cfg.UserAgent,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		cache: noopCache{},
	}
}

// WithCache sets the cache used for queries that carry a MaxAge.
func (c *Client) WithCache(cache Cache) *Client {
	if cache == nil {
		cache = noopCache{}
	}
	c.cache = cache
	return c
}

// Configured reports whether both secrets are set.
func (c *Client) Configured() bool {
	return c != nil && strings.TrimSpace(c.spaceID) != "" && strings.TrimSpace(c.token) != ""
}

// Query selects entries of one content type.
type Query struct {
	ContentType string
	// Include is the link resolution depth; 0 leaves the API default.
	Include int
	// Fields become fields.<name>=<value> filters.
	Fields map[string]string
	// MaxAge is how long a cached body may be served; 0 disables caching.
	MaxAge time.Duration
}

// Encode renders the query string in a stable order.
func (q Query) Encode() string {
	var b strings.Builder
	b.WriteString("content_type=")
	b.WriteString(url.QueryEscape(q.ContentType))
	if q.Include > 0 {
		b.WriteString("&include=")
		b.WriteString(strconv.Itoa(q.Include))
	}

	names := make([]string, 0, len(q.Fields))
	for name := range q.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := q.Fields[name]
		if value == "" {
			continue
		}
		b.WriteString("&fields.")
		b.WriteString(url.QueryEscape(name))
		b.WriteString("=")
		b.WriteString(url.QueryEscape(value))
	}
	return b.String()
}

// Entries fetches one page of entries. Exactly one request is sent on a cache miss.
func (c *Client) Entries(ctx context.Context, q Query) (*Envelope, error) {
	if c == nil || c.http == nil {
		return nil, fmt.Errorf("contentful request error: client is nil")
	}
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	rawQuery := q.Encode()
	cacheKey := "contentful:" + c.spaceID + ":" + c.environment + ":" + rawQuery

	if q.MaxAge > 0 {
		if body, ok := c.cache.Get(ctx, cacheKey); ok {
			env, err := decodeEnvelope(body)
			if err == nil {
				return env, nil
			}
			log.Warn().Err(err).Str("key", cacheKey).Msg("Discarding unreadable cached contentful body")
		}
	}

	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.baseURL, url.PathEscape(c.spaceID), url.PathEscape(c.environment), rawQuery)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("contentful request error: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyRequestError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("contentful read error: status=%d: %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: truncate(string(body), maxErrorBody)}
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("content_type", q.ContentType).
		Int("total", env.Total).
		Dur("took", time.Since(start)).
		Msg("Contentful entries fetched")

	if q.MaxAge > 0 {
		c.cache.Set(ctx, cacheKey, body, q.MaxAge)
	}

	return env, nil
}

func decodeEnvelope(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("contentful decode error: %w", err)
	}
	return &env, nil
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}

func classifyRequestError(ctx context.Context, err error) error {
	if isTimeoutError(ctx, err) {
		return fmt.Errorf("contentful timeout: %w", err)
	}
	if isNetworkError(err) {
		return fmt.Errorf("contentful network error: %w", err)
	}
	return fmt.Errorf("contentful request error: %w", err)
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}

	return false
}

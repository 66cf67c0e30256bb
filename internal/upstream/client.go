// Package upstream performs every provider HTTP call in the system. All
// fetches funnel through one Client so the response cache, the rate limiter
// and the per-host circuit breakers are shared across sports and providers.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/fixturebot/fixturebot/internal/cache"
	"github.com/fixturebot/fixturebot/internal/pkg/models"
)

type Options struct {
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Client is a cached, timeout-bounded JSON GET client, safe for concurrent
// use. It never retries; callers decide whether a failure is fatal to their
// operation or just skips one data source.
type Client struct {
	httpClient *http.Client
	cache      *cache.Cache
	limiter    *rate.Limiter
	userAgent  string

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

func New(c *cache.Cache, opts Options) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = "fixturebot/1.0"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 25 * time.Second
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 8
	}
	if opts.Burst <= 0 {
		opts.Burst = 16
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		cache:      c,
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst),
		userAgent:  opts.UserAgent,
		breakers:   make(map[string]*gobreaker.CircuitBreaker),
	}
}

// GetJSON fetches rawURL with the given query parameters and unmarshals the
// body into v. The cache is consulted first; on a miss the body is stored
// before returning. Every failure comes back as *models.UpstreamError and is
// never cached.
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values, v any) error {
	key := rawURL
	if len(params) > 0 {
		// Encode sorts keys, so equivalent parameter sets share one entry.
		key = rawURL + "?" + params.Encode()
	}

	if body, ok := c.cache.Get(key); ok {
		if err := json.Unmarshal(body, v); err != nil {
			return &models.UpstreamError{Message: fmt.Sprintf("decode cached body for %s: %v", rawURL, err)}
		}
		return nil
	}

	body, err := c.fetch(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &models.UpstreamError{Message: fmt.Sprintf("decode body from %s: %v", rawURL, err)}
	}
	c.cache.Put(key, body)
	return nil
}

func (c *Client) fetch(ctx context.Context, fullURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &models.UpstreamError{Message: fmt.Sprintf("rate limiter: %v", err)}
	}

	cb, err := c.breakerFor(fullURL)
	if err != nil {
		return nil, err
	}
	res, err := cb.Execute(func() (any, error) {
		return c.do(ctx, fullURL)
	})
	if err != nil {
		if ue, ok := err.(*models.UpstreamError); ok {
			return nil, ue
		}
		// Breaker open or half-open refusal.
		return nil, &models.UpstreamError{Message: err.Error()}
	}
	return res.([]byte), nil
}

func (c *Client) do(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &models.UpstreamError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &models.UpstreamError{Message: fmt.Sprintf("GET %s: %v", fullURL, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &models.UpstreamError{Status: resp.StatusCode, Message: fmt.Sprintf("GET %s", fullURL)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.UpstreamError{Message: fmt.Sprintf("read body from %s: %v", fullURL, err)}
	}
	return body, nil
}

func (c *Client) breakerFor(fullURL string) (*gobreaker.CircuitBreaker, error) {
	u, err := url.Parse(fullURL)
	if err != nil {
		return nil, &models.UpstreamError{Message: fmt.Sprintf("parse url %s: %v", fullURL, err)}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	cb, ok := c.breakers[u.Host]
	if !ok {
		cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    u.Host,
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		})
		c.breakers[u.Host] = cb
	}
	return cb, nil
}

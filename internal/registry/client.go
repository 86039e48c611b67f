// Package registry asks public package registries whether a name is taken.
// Each adapter normalizes one registry's API into NamespaceCheck values;
// lookup failures degrade to status unknown instead of failing the run.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/namelens/namelens/internal/cache"
	"github.com/namelens/namelens/internal/model"
	"github.com/namelens/namelens/internal/util"
	"github.com/namelens/namelens/internal/worker"
)

// Client is the shared HTTP client behind every adapter. It applies the
// user agent, body cap, per-host rate limit and response cache uniformly.
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	cache      cache.Cache
	cacheTTL   time.Duration
	limiter    *worker.Limiter
}

// NewClient builds a client from configuration. Cache and limiter are
// optional; a nil cache disables caching, a nil limiter disables throttling.
func NewClient(cfg model.HTTPConfig, store cache.Cache, cacheTTL time.Duration, limiter *worker.Limiter) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		cache:     store,
		cacheTTL:  cacheTTL,
		limiter:   limiter,
	}
}

// cachedResponse is the envelope stored per lookup
type cachedResponse struct {
	StatusCode int    `json:"status_code"`
	Body       []byte `json:"body"`
}

// Get fetches rawURL and returns the status code and capped body.
// Definitive responses (2xx and 404) are cached under the given namespace.
func (c *Client) Get(ctx context.Context, namespace, rawURL string) (int, []byte, error) {
	key := cache.Key(namespace, rawURL)

	if c.cache != nil {
		if data, found := c.cache.Get(key); found {
			var cached cachedResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached.StatusCode, cached.Body, nil
			}
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, rawURL); err != nil {
			return 0, nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/html;q=0.9, */*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}

	// Only definitive answers are worth remembering: a 500 or 429 today
	// says nothing about availability tomorrow.
	if c.cache != nil && (resp.StatusCode/100 == 2 || resp.StatusCode == 404) {
		if data, err := json.Marshal(cachedResponse{StatusCode: resp.StatusCode, Body: body}); err == nil {
			_ = c.cache.Set(key, data, c.cacheTTL)
		}
	}

	return resp.StatusCode, body, nil
}

// GetJSON fetches rawURL and decodes the body into out
func (c *Client) GetJSON(ctx context.Context, namespace, rawURL string, out interface{}) (int, error) {
	status, body, err := c.Get(ctx, namespace, rawURL)
	if err != nil {
		return status, err
	}
	if status/100 != 2 {
		return status, nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return status, fmt.Errorf("decode response: %w", err)
	}
	return status, nil
}

// UserAgent exposes the configured UA for robots.txt matching
func (c *Client) UserAgent() string {
	return c.userAgent
}

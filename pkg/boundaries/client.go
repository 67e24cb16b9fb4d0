// Package boundaries provides administrative-boundary lookup against a GAUL
// style boundary service. It is the resolver's last network-backed tier:
// callers treat every failure as non-fatal and fall through to their default.
package boundaries

import (
	"context"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/terralens-cli/internal/model"
)

// ErrBoundaryUnavailable covers every lookup failure: service unreachable,
// non-OK status, malformed payload, or zero matching features. The resolver
// swallows it and proceeds to the default tier.
var ErrBoundaryUnavailable = eris.New("boundaries: lookup unavailable")

// Admin levels queried, in order. Level 1 is state/province, level 0 country.
var adminLevels = []int{1, 0}

// Client looks up a named administrative boundary.
type Client interface {
	// LookupAdmin finds an exact-name boundary match, trying the
	// state/province level first, then the country level.
	LookupAdmin(ctx context.Context, name string) (model.Region, error)
}

// Option configures the boundary client.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithRateLimit sets the requests-per-second limit for boundary queries.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

// WithTimeout bounds each lookup request.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.timeout = d
	}
}

// WithBreaker sets how many consecutive failures trip the breaker and how
// long it stays open.
func WithBreaker(threshold int, cooldown time.Duration) Option {
	return func(c *client) {
		c.breaker = newBreaker(threshold, cooldown)
	}
}

type client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
	breaker    *breaker
}

// NewClient creates a boundary client for the given service base URL.
func NewClient(baseURL string, opts ...Option) Client {
	c := &client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(10, 10),
		timeout:    10 * time.Second,
		breaker:    newBreaker(5, 30*time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LookupAdmin queries each admin level for an exact name match and returns
// the first polygon found.
func (c *client) LookupAdmin(ctx context.Context, name string) (model.Region, error) {
	if !c.breaker.allow() {
		return model.Region{}, eris.Wrap(ErrBoundaryUnavailable, "breaker open")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var lastErr error
	for _, level := range adminLevels {
		region, err := c.queryLevel(ctx, name, level)
		if err == nil {
			c.breaker.recordSuccess()
			return region, nil
		}
		lastErr = err
	}

	c.breaker.recordFailure()
	return model.Region{}, lastErr
}

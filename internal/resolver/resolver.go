// Package resolver maps free-text location strings to geographic regions via
// a strictly ordered cascade of matching strategies. Earlier tiers are higher
// precision, later tiers higher recall; the final tier is a hard-coded
// default, so resolution never fails.
package resolver

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/terralens-cli/internal/gazetteer"
	"github.com/sells-group/terralens-cli/internal/model"
)

// DefaultRegion is the documented fallback when every tier misses: the
// Chennai metropolitan bounding box.
var DefaultRegion = model.NewRegion(80.0, 12.8, 80.3, 13.2)

// Resolution is a resolved region plus the cascade tier that produced it.
// The tier is diagnostic; callers must not branch on it.
type Resolution struct {
	Region model.Region         `json:"region"`
	Tier   model.ResolutionTier `json:"tier"`
}

// BoundaryLookup is the optional remote tier: an administrative-boundary
// service queried by exact name. A nil lookup disables the tier.
type BoundaryLookup interface {
	LookupAdmin(ctx context.Context, name string) (model.Region, error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBoundaryLookup enables the remote administrative-boundary tier.
func WithBoundaryLookup(bl BoundaryLookup) Option {
	return func(r *Resolver) {
		r.boundary = bl
	}
}

// WithDefaultRegion overrides the hard-coded default region.
func WithDefaultRegion(region model.Region) Option {
	return func(r *Resolver) {
		r.defaultRegion = region
	}
}

// WithBoundaryTimeout bounds the remote tier's call.
func WithBoundaryTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		r.boundaryTimeout = d
	}
}

// Resolver runs the resolution cascade against an immutable gazetteer.
// Safe for concurrent use.
type Resolver struct {
	gaz             *gazetteer.Gazetteer
	boundary        BoundaryLookup
	defaultRegion   model.Region
	boundaryTimeout time.Duration
	strategies      []strategy
}

// New creates a Resolver over the given gazetteer.
func New(gaz *gazetteer.Gazetteer, opts ...Option) *Resolver {
	r := &Resolver{
		gaz:             gaz,
		defaultRegion:   DefaultRegion,
		boundaryTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.strategies = []strategy{
		{model.TierExact, matchExact},
		{model.TierSubstring, matchSubstring},
		{model.TierAlias, matchAlias},
		{model.TierFuzzy, matchTokenFuzzy},
	}
	return r
}

// Resolve maps a location string to a region. It never fails: when every
// tier misses, the default region is returned and the fallback is logged.
func (r *Resolver) Resolve(ctx context.Context, location string) Resolution {
	log := zap.L().With(zap.String("component", "resolver"), zap.String("location", location))

	input := gazetteer.Normalize(location)
	if input != "" {
		for _, s := range r.strategies {
			region, ok := s.match(input, r.gaz)
			if !ok {
				continue
			}
			if err := region.Validate(); err != nil {
				// A curated tier producing empty geometry is a table bug;
				// escalate to the next tier rather than the caller.
				log.Warn("discarding empty region from tier", zap.String("tier", string(s.tier)), zap.Error(err))
				continue
			}
			log.Debug("location resolved", zap.String("tier", string(s.tier)), zap.String("region", region.String()))
			return Resolution{Region: region, Tier: s.tier}
		}

		if region, ok := r.resolveBoundary(ctx, location); ok {
			log.Debug("location resolved", zap.String("tier", string(model.TierBoundary)), zap.String("region", region.String()))
			return Resolution{Region: region, Tier: model.TierBoundary}
		}
	}

	// LocationDefaultedWarning: always logged, never raised.
	log.Warn("location fell through to default region", zap.String("region", r.defaultRegion.String()))
	return Resolution{Region: r.defaultRegion, Tier: model.TierDefault}
}

// resolveBoundary runs the remote tier. Every failure is swallowed: the tier
// is best-effort by contract and retries belong to the caller, not here.
func (r *Resolver) resolveBoundary(ctx context.Context, location string) (model.Region, bool) {
	if r.boundary == nil {
		return model.Region{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, r.boundaryTimeout)
	defer cancel()

	region, err := r.boundary.LookupAdmin(ctx, location)
	if err != nil {
		zap.L().Debug("resolver: boundary tier unavailable", zap.String("location", location), zap.Error(err))
		return model.Region{}, false
	}
	if err := region.Validate(); err != nil {
		zap.L().Warn("resolver: boundary tier returned empty region", zap.String("location", location), zap.Error(err))
		return model.Region{}, false
	}
	return region, true
}

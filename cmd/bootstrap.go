package main

import (
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/terralens-cli/internal/analysis"
	"github.com/sells-group/terralens-cli/internal/classifier"
	"github.com/sells-group/terralens-cli/internal/config"
	"github.com/sells-group/terralens-cli/internal/gazetteer"
	"github.com/sells-group/terralens-cli/internal/model"
	"github.com/sells-group/terralens-cli/internal/provider"
	"github.com/sells-group/terralens-cli/internal/resolver"
	"github.com/sells-group/terralens-cli/pkg/boundaries"
)

// loadGazetteer returns the configured gazetteer, falling back to the
// builtin table when no file is configured.
func loadGazetteer(cfg *config.Config) (*gazetteer.Gazetteer, error) {
	if cfg.Gazetteer.Path == "" {
		return gazetteer.Builtin(), nil
	}
	return gazetteer.LoadFile(cfg.Gazetteer.Path)
}

// buildResolver wires the cascade from config: gazetteer, optional remote
// boundary tier, optional default-region override.
func buildResolver(cfg *config.Config) (*resolver.Resolver, error) {
	gaz, err := loadGazetteer(cfg)
	if err != nil {
		return nil, err
	}

	opts := []resolver.Option{
		resolver.WithBoundaryTimeout(time.Duration(cfg.Boundaries.TimeoutSecs) * time.Second),
	}

	if cfg.Boundaries.BaseURL != "" {
		bc := boundaries.NewClient(cfg.Boundaries.BaseURL,
			boundaries.WithRateLimit(cfg.Boundaries.RateLimit),
			boundaries.WithTimeout(time.Duration(cfg.Boundaries.TimeoutSecs)*time.Second),
			boundaries.WithBreaker(cfg.Boundaries.BreakerThreshold, time.Duration(cfg.Boundaries.BreakerCooldown)*time.Second),
		)
		opts = append(opts, resolver.WithBoundaryLookup(bc))
	}

	if dr := cfg.Resolver.DefaultRegion; len(dr) == 4 {
		region := model.NewRegion(dr[0], dr[1], dr[2], dr[3])
		if err := region.Validate(); err != nil {
			return nil, eris.Wrap(err, "bootstrap: configured default region")
		}
		opts = append(opts, resolver.WithDefaultRegion(region))
	}

	return resolver.New(gaz, opts...), nil
}

// buildEngine wires the full analysis engine from config.
func buildEngine(cfg *config.Config) (*analysis.Engine, error) {
	res, err := buildResolver(cfg)
	if err != nil {
		return nil, err
	}

	var prov provider.RasterProvider
	switch cfg.Provider.Kind {
	case "", "synthetic":
		prov = provider.NewSynthetic(cfg.Provider.GridSize)
	default:
		return nil, eris.Errorf("bootstrap: unknown provider kind %q", cfg.Provider.Kind)
	}

	var opts []analysis.Option
	if cfg.Classify.RulesPath != "" {
		rules, err := classifier.LoadRuleFile(cfg.Classify.RulesPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, analysis.WithRules(rules))
	}

	return analysis.NewEngine(res, prov, cfg.Classify.Workers, opts...), nil
}

// Package analysis orchestrates one request end to end: resolve the region,
// acquire layers, run the classifier, summarize. It holds no state across
// requests.
package analysis

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/terralens-cli/internal/classifier"
	"github.com/sells-group/terralens-cli/internal/model"
	"github.com/sells-group/terralens-cli/internal/planner"
	"github.com/sells-group/terralens-cli/internal/provider"
	"github.com/sells-group/terralens-cli/internal/raster"
	"github.com/sells-group/terralens-cli/internal/resolver"
)

// Request is one analysis invocation.
type Request struct {
	Query      string `json:"query"`
	Location   string `json:"location"`
	TimePeriod string `json:"time_period"`
}

// Result is the full output of one analysis run.
type Result struct {
	ID         uuid.UUID                `json:"id"`
	Plan       *planner.Plan            `json:"plan"`
	Resolution resolver.Resolution      `json:"resolution"`
	Zones      *raster.ZoneGrid         `json:"zones,omitempty"`
	Scores     *raster.Grid             `json:"scores,omitempty"`
	Change     *classifier.ChangeResult `json:"change,omitempty"`
	Stats      *Stats                   `json:"stats"`
}

// Engine wires the resolver, the raster provider, and the classifier.
type Engine struct {
	resolver *resolver.Resolver
	provider provider.RasterProvider
	workers  int
	rules    map[string]classifier.RuleSet
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules overrides the built-in rule tables for the analysis types the map
// names; others keep their defaults.
func WithRules(rules map[string]classifier.RuleSet) Option {
	return func(e *Engine) {
		e.rules = rules
	}
}

// NewEngine creates an analysis engine. workers bounds classifier
// parallelism; zero means one worker per CPU.
func NewEngine(res *resolver.Resolver, prov provider.RasterProvider, workers int, opts ...Option) *Engine {
	e := &Engine{resolver: res, provider: prov, workers: workers}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ruleSet returns the override for an analysis type, or the built-ins.
func (e *Engine) ruleSet(at model.AnalysisType, criteria []classifier.Criterion, bands []classifier.Band) ([]classifier.Criterion, []classifier.Band) {
	if rs, ok := e.rules[at.String()]; ok {
		return rs.Criteria, rs.Bands
	}
	return criteria, bands
}

// Run executes one analysis request. The time period is validated before any
// layer is requested; classification errors abort the run with no partial
// zone grid.
func (e *Engine) Run(ctx context.Context, req Request) (*Result, error) {
	plan, err := planner.PlanFromQuery(req.Query, req.Location, req.TimePeriod)
	if err != nil {
		return nil, err
	}

	log := zap.L().With(
		zap.String("component", "analysis"),
		zap.String("analysis_type", plan.AnalysisType.String()),
		zap.String("location", req.Location),
	)

	res := e.resolver.Resolve(ctx, req.Location)
	log.Info("region resolved",
		zap.String("tier", string(res.Tier)),
		zap.String("region", res.Region.String()),
	)

	layers, err := e.provider.Layers(ctx, res.Region, plan.TimePeriod, plan.RequiredLayers)
	if err != nil {
		return nil, eris.Wrap(err, "analysis: acquire layers")
	}

	result := &Result{
		ID:         uuid.New(),
		Plan:       plan,
		Resolution: res,
	}

	switch plan.AnalysisType {
	case model.AnalysisFloodRisk:
		criteria, bands := e.ruleSet(plan.AnalysisType, classifier.FloodCriteria(), classifier.FloodBands())
		cr, err := classifier.Classify(ctx, layers, criteria, bands, e.workers)
		if err != nil {
			return nil, err
		}
		result.Zones = cr.Zones
		result.Scores = cr.Scores
		result.Stats = zoneStats(cr, bands)

	case model.AnalysisSolarSuitability:
		criteria, bands := e.ruleSet(plan.AnalysisType, classifier.SolarCriteria(), classifier.SolarBands())
		cr, err := classifier.Classify(ctx, layers, criteria, bands, e.workers)
		if err != nil {
			return nil, err
		}
		result.Zones = cr.Zones
		result.Scores = cr.Scores
		result.Stats = zoneStats(cr, bands)

	case model.AnalysisDeforestation:
		ch, err := classifier.DetectChange(ctx, layers)
		if err != nil {
			return nil, err
		}
		result.Change = ch
		result.Stats = changeStats(ch)

	default:
		return nil, eris.Errorf("analysis: type %q not implemented", plan.AnalysisType)
	}

	log.Info("analysis complete", zap.String("id", result.ID.String()))
	return result, nil
}

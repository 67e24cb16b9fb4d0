package classifier

import (
	"context"
	"runtime"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/terralens-cli/internal/raster"
)

// Result carries the zone grid plus the raw per-cell score grid. The scores
// are kept as a side artifact: banding is lossy, so they cannot be recovered
// from the zones alone.
type Result struct {
	Zones  *raster.ZoneGrid `json:"zones"`
	Scores *raster.Grid     `json:"scores"`
}

// Classify evaluates every criterion per cell, accumulates the signed
// weighted score, and discretizes it through the band table.
//
// Cells are independent, so rows are fanned out across workers; the output is
// identical for any worker count. All referenced layers are resolved before
// the first cell is touched — a missing layer aborts the whole analysis with
// raster.ErrMissingLayer rather than producing a degraded grid.
func Classify(ctx context.Context, layers *raster.LayerSet, criteria []Criterion, bands []Band, workers int) (*Result, error) {
	if err := ValidateBands(bands); err != nil {
		return nil, err
	}
	if len(criteria) == 0 {
		return nil, eris.New("classifier: no criteria")
	}

	// Bind each criterion to its layer up front (fail fast).
	bound := make([]*raster.Grid, len(criteria))
	for i, c := range criteria {
		g, err := layers.Layer(c.Predicate.Layer)
		if err != nil {
			return nil, eris.Wrap(err, "classifier: criterion "+c.Name)
		}
		bound[i] = g
	}

	w, h := bound[0].Width, bound[0].Height
	zones := raster.NewZoneGrid(w, h, bound[0].Bounds)
	scores := raster.NewGrid(w, h, bound[0].Bounds)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < h; y++ {
		y := y
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for x := 0; x < w; x++ {
				var score float64
				for i, c := range criteria {
					if c.Predicate.Eval(bound[i].At(x, y)) {
						score += c.Weight
					}
				}
				scores.Set(x, y, score)
				zones.Set(x, y, zoneFor(bands, score))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "classifier: classify")
	}

	zap.L().Debug("classifier: grid classified",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("criteria", len(criteria)),
		zap.Int("workers", workers),
	)

	return &Result{Zones: zones, Scores: scores}, nil
}

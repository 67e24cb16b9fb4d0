package provider

import (
	"context"
	"math"

	"github.com/rotisserie/eris"

	"github.com/sells-group/terralens-cli/internal/model"
	"github.com/sells-group/terralens-cli/internal/raster"
)

// Synthetic generates deterministic layers from the region geometry. It
// exists for development and tests: the values are smooth, reproducible
// fields that exercise every rule table without any imagery backend.
type Synthetic struct {
	// GridSize is the width and height of generated layers.
	GridSize int
}

// NewSynthetic creates a synthetic provider with the given grid size.
func NewSynthetic(gridSize int) *Synthetic {
	if gridSize <= 0 {
		gridSize = 64
	}
	return &Synthetic{GridSize: gridSize}
}

// Layers generates each requested layer. Unknown layer names are an error so
// that misconfigured plans fail loudly in development too.
func (s *Synthetic) Layers(ctx context.Context, region model.Region, period model.TimePeriod, names []string) (*raster.LayerSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grids := make(map[string]*raster.Grid, len(names))
	for _, name := range names {
		gen, ok := generators[name]
		if !ok {
			return nil, eris.Errorf("provider: no synthetic generator for layer %q", name)
		}
		g := raster.NewGrid(s.GridSize, s.GridSize, region)
		for y := 0; y < s.GridSize; y++ {
			for x := 0; x < s.GridSize; x++ {
				// u, v in [0, 1) across the grid.
				u := float64(x) / float64(s.GridSize)
				v := float64(y) / float64(s.GridSize)
				g.Set(x, y, gen(u, v, period))
			}
		}
		grids[name] = g
	}

	ls, err := raster.NewLayerSet(grids)
	if err != nil {
		return nil, eris.Wrap(err, "provider: synthetic layer set")
	}
	return ls, nil
}

// generators map layer names to deterministic field functions. Shapes are
// chosen so each analysis produces all of its zones somewhere on the grid.
var generators = map[string]func(u, v float64, period model.TimePeriod) float64{
	raster.LayerElevation: func(u, v float64, _ model.TimePeriod) float64 {
		// Coastal gradient: near sea level on the left, rising inland.
		return 120*u*u + 3*math.Sin(8*v)
	},
	raster.LayerPrecipitation: func(u, v float64, _ model.TimePeriod) float64 {
		return 60 + 50*math.Sin(3*u+2*v)
	},
	raster.LayerBackscatter: func(u, v float64, _ model.TimePeriod) float64 {
		return -6 - 10*math.Abs(math.Sin(5*u)*math.Cos(3*v))
	},
	raster.LayerSlope: func(u, v float64, _ model.TimePeriod) float64 {
		return 25 * u * math.Abs(math.Sin(4*v))
	},
	raster.LayerAspect: func(u, v float64, _ model.TimePeriod) float64 {
		return 360 * u
	},
	raster.LayerIrradiance: func(u, v float64, _ model.TimePeriod) float64 {
		return 4.2 + 1.4*v
	},
	raster.LayerLandCover: func(u, v float64, _ model.TimePeriod) float64 {
		switch {
		case u < 0.15:
			return raster.CoverWater
		case u < 0.3:
			return raster.CoverUrban
		case u < 0.65:
			return raster.CoverBareSoil
		default:
			return raster.CoverVegetation
		}
	},
	raster.LayerNDVI: func(u, v float64, _ model.TimePeriod) float64 {
		return 0.6 * math.Sin(3*u+v)
	},
	raster.LayerNDVIStart: func(u, v float64, _ model.TimePeriod) float64 {
		return 0.2 + 0.5*v
	},
	raster.LayerNDVIEnd: func(u, v float64, _ model.TimePeriod) float64 {
		// Vegetation loss concentrated on the right half of the grid.
		base := 0.2 + 0.5*v
		if u > 0.5 {
			return base - 0.35
		}
		return base
	},
}

// Package provider defines the raster-layer acquisition boundary. The real
// imagery backend is an external collaborator; the core only depends on this
// interface.
package provider

import (
	"context"

	"github.com/sells-group/terralens-cli/internal/model"
	"github.com/sells-group/terralens-cli/internal/raster"
)

// RasterProvider returns region-clipped, spatially aligned layers for an
// analysis request. Implementations must honor the documented per-layer
// value semantics (elevation in meters, backscatter in dB, NDVI in [-1, 1]).
type RasterProvider interface {
	// Layers fetches the named layers for a region and time period.
	Layers(ctx context.Context, region model.Region, period model.TimePeriod, names []string) (*raster.LayerSet, error)
}

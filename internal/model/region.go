// Package model holds the core value types shared across the analysis pipeline.
package model

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// ErrEmptyRegion indicates a region with zero area or inverted bounds. The
// resolver treats this as an internal bug and never lets it reach a caller.
var ErrEmptyRegion = eris.New("model: empty region geometry")

// Region is a geographic extent used to clip raster layers for one analysis.
// It is always a valid bounding box; when produced from an administrative
// boundary lookup it additionally carries the source polygon.
type Region struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`

	// Polygon is set only for regions derived from an administrative
	// boundary query. The bounding box above is always populated.
	Polygon *geom.MultiPolygon `json:"-"`
}

// NewRegion builds a bounding-box region.
func NewRegion(minLon, minLat, maxLon, maxLat float64) Region {
	return Region{MinLon: minLon, MinLat: minLat, MaxLon: maxLon, MaxLat: maxLat}
}

// RegionFromPolygon builds a region from an administrative boundary polygon,
// deriving the bounding box from the polygon's extent.
func RegionFromPolygon(mp *geom.MultiPolygon) Region {
	b := mp.Bounds()
	return Region{
		MinLon:  b.Min(0),
		MinLat:  b.Min(1),
		MaxLon:  b.Max(0),
		MaxLat:  b.Max(1),
		Polygon: mp,
	}
}

// Validate returns ErrEmptyRegion when the bounds are inverted or zero-area.
func (r Region) Validate() error {
	if !(r.MinLon < r.MaxLon) || !(r.MinLat < r.MaxLat) {
		return eris.Wrap(ErrEmptyRegion, fmt.Sprintf("bounds [%g, %g, %g, %g]", r.MinLon, r.MinLat, r.MaxLon, r.MaxLat))
	}
	return nil
}

// Contains reports whether the point lies inside the bounding box.
func (r Region) Contains(lon, lat float64) bool {
	return lon >= r.MinLon && lon <= r.MaxLon && lat >= r.MinLat && lat <= r.MaxLat
}

// Area returns the bounding-box area in square degrees.
func (r Region) Area() float64 {
	return (r.MaxLon - r.MinLon) * (r.MaxLat - r.MinLat)
}

func (r Region) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]", r.MinLon, r.MinLat, r.MaxLon, r.MaxLat)
}

package raster

import (
	"sort"

	"github.com/rotisserie/eris"
)

// Canonical layer names. Per-layer value semantics are fixed by the raster
// provider contract: elevation in meters, precipitation in mm, backscatter in
// dB, slope and aspect in degrees, vegetation index in [-1, 1], irradiance in
// kWh/m²/day, landcover as a class code.
const (
	LayerElevation     = "elevation"
	LayerPrecipitation = "precipitation"
	LayerBackscatter   = "backscatter"
	LayerSlope         = "slope"
	LayerAspect        = "aspect"
	LayerNDVI          = "ndvi"
	LayerNDVIStart     = "ndvi_start"
	LayerNDVIEnd       = "ndvi_end"
	LayerIrradiance    = "irradiance"
	LayerLandCover     = "landcover"
)

// Land cover class codes for the landcover layer.
const (
	CoverWater      = 1.0
	CoverUrban      = 2.0
	CoverBareSoil   = 3.0
	CoverVegetation = 4.0
)

// ErrMissingLayer indicates a classification rule referencing a layer absent
// from the supplied layer set. Fatal: the analysis aborts rather than
// treating missing data as zero.
var ErrMissingLayer = eris.New("raster: referenced layer missing from layer set")

// LayerSet is the named collection of region-clipped, spatially aligned
// layers handed to the classifier. Built per analysis request and discarded
// after use.
type LayerSet struct {
	grids map[string]*Grid
}

// NewLayerSet builds a layer set, enforcing that all layers share one shape.
func NewLayerSet(grids map[string]*Grid) (*LayerSet, error) {
	var ref *Grid
	for name, g := range grids {
		if ref == nil {
			ref = g
			continue
		}
		if !ref.SameShape(g) {
			return nil, eris.Wrap(ErrShapeMismatch, name)
		}
	}
	return &LayerSet{grids: grids}, nil
}

// Layer returns the named layer or ErrMissingLayer.
func (ls *LayerSet) Layer(name string) (*Grid, error) {
	g, ok := ls.grids[name]
	if !ok {
		return nil, eris.Wrap(ErrMissingLayer, name)
	}
	return g, nil
}

// Has reports whether the named layer is present.
func (ls *LayerSet) Has(name string) bool {
	_, ok := ls.grids[name]
	return ok
}

// Names returns the layer names in sorted order.
func (ls *LayerSet) Names() []string {
	names := make([]string, 0, len(ls.grids))
	for name := range ls.grids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Shape returns the shared width and height, or zeros for an empty set.
func (ls *LayerSet) Shape() (w, h int) {
	for _, g := range ls.grids {
		return g.Width, g.Height
	}
	return 0, 0
}

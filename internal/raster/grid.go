// Package raster provides the grid types consumed and produced by the
// classification engine. Layers in one analysis share a spatial shape;
// nothing here resamples or reprojects.
package raster

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/terralens-cli/internal/model"
)

// ErrShapeMismatch indicates two grids that do not share a spatial shape.
var ErrShapeMismatch = eris.New("raster: grid shape mismatch")

// Grid is a scalar field over a region, sampled row-major on a W×H lattice.
// Cell (0,0) is the north-west corner.
type Grid struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Bounds model.Region `json:"bounds"`
	Cells  []float64    `json:"cells"`
}

// NewGrid allocates a zero-filled grid.
func NewGrid(width, height int, bounds model.Region) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Bounds: bounds,
		Cells:  make([]float64, width*height),
	}
}

// At returns the cell value at column x, row y.
func (g *Grid) At(x, y int) float64 { return g.Cells[y*g.Width+x] }

// Set writes the cell value at column x, row y.
func (g *Grid) Set(x, y int, v float64) { g.Cells[y*g.Width+x] = v }

// SameShape reports whether two grids share width and height.
func (g *Grid) SameShape(o *Grid) bool {
	return g.Width == o.Width && g.Height == o.Height
}

// ZoneGrid is the discretized output raster: one small non-negative integer
// zone id per cell, aligned to the input layers' grid.
type ZoneGrid struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Bounds model.Region `json:"bounds"`
	Zones  []int        `json:"zones"`
}

// NewZoneGrid allocates a zero-filled zone grid.
func NewZoneGrid(width, height int, bounds model.Region) *ZoneGrid {
	return &ZoneGrid{
		Width:  width,
		Height: height,
		Bounds: bounds,
		Zones:  make([]int, width*height),
	}
}

// At returns the zone id at column x, row y.
func (z *ZoneGrid) At(x, y int) int { return z.Zones[y*z.Width+x] }

// Set writes the zone id at column x, row y.
func (z *ZoneGrid) Set(x, y int, zone int) { z.Zones[y*z.Width+x] = zone }

// BoolGrid marks cells satisfying a per-cell condition.
type BoolGrid struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Bounds model.Region `json:"bounds"`
	Cells  []bool       `json:"cells"`
}

// NewBoolGrid allocates a false-filled boolean grid.
func NewBoolGrid(width, height int, bounds model.Region) *BoolGrid {
	return &BoolGrid{
		Width:  width,
		Height: height,
		Bounds: bounds,
		Cells:  make([]bool, width*height),
	}
}

// At returns the flag at column x, row y.
func (b *BoolGrid) At(x, y int) bool { return b.Cells[y*b.Width+x] }

// Set writes the flag at column x, row y.
func (b *BoolGrid) Set(x, y int, v bool) { b.Cells[y*b.Width+x] = v }

// CountTrue returns the number of set cells.
func (b *BoolGrid) CountTrue() int {
	n := 0
	for _, v := range b.Cells {
		if v {
			n++
		}
	}
	return n
}

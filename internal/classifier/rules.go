package classifier

import (
	"math"

	"github.com/sells-group/terralens-cli/internal/raster"
)

// FloodCriteria is the flood risk rule table. Elevation below sea-adjacent
// thresholds, heavy precipitation, low SAR backscatter (standing water), and
// flat terrain each contribute to the score.
func FloodCriteria() []Criterion {
	return []Criterion{
		{Name: "very_low_elevation", Predicate: Predicate{Layer: raster.LayerElevation, Op: OpLT, Value: 5}, Weight: 2},
		{Name: "low_elevation", Predicate: Predicate{Layer: raster.LayerElevation, Op: OpLT, Value: 15}, Weight: 1},
		{Name: "very_high_precipitation", Predicate: Predicate{Layer: raster.LayerPrecipitation, Op: OpGT, Value: 80}, Weight: 2},
		{Name: "high_precipitation", Predicate: Predicate{Layer: raster.LayerPrecipitation, Op: OpGT, Value: 40}, Weight: 1},
		{Name: "strong_water_signal", Predicate: Predicate{Layer: raster.LayerBackscatter, Op: OpLT, Value: -12}, Weight: 2},
		{Name: "water_signal", Predicate: Predicate{Layer: raster.LayerBackscatter, Op: OpLT, Value: -8}, Weight: 1},
		{Name: "flat_slope", Predicate: Predicate{Layer: raster.LayerSlope, Op: OpLT, Value: 2}, Weight: 1},
	}
}

// FloodBands maps flood scores to risk zones: >=4 high, [2,4) medium,
// [1,2) low, below 1 none.
func FloodBands() []Band {
	return []Band{
		{MinScore: 4, Zone: 3, Label: "high"},
		{MinScore: 2, Zone: 2, Label: "medium"},
		{MinScore: 1, Zone: 1, Label: "low"},
		{MinScore: math.Inf(-1), Zone: 0, Label: "none"},
	}
}

// SolarCriteria is the solar farm suitability rule table. The landcover
// layer carries class codes (water, urban, bare soil, vegetation); water and
// urban cells take a -3 penalty that can push the score below zero, which the
// unbounded bottom band absorbs.
func SolarCriteria() []Criterion {
	return []Criterion{
		{Name: "very_low_slope", Predicate: Predicate{Layer: raster.LayerSlope, Op: OpLT, Value: 5}, Weight: 2},
		{Name: "low_slope", Predicate: Predicate{Layer: raster.LayerSlope, Op: OpLT, Value: 15}, Weight: 1},
		{Name: "excellent_aspect", Predicate: Predicate{Layer: raster.LayerAspect, Op: OpBetween, Value: 160, High: 200}, Weight: 2},
		{Name: "good_aspect", Predicate: Predicate{Layer: raster.LayerAspect, Op: OpBetween, Value: 135, High: 225}, Weight: 1},
		{Name: "excellent_land_cover", Predicate: Predicate{Layer: raster.LayerLandCover, Op: OpBetween, Value: raster.CoverBareSoil - 0.5, High: raster.CoverBareSoil + 0.5}, Weight: 2},
		{Name: "good_land_cover", Predicate: Predicate{Layer: raster.LayerLandCover, Op: OpGT, Value: raster.CoverUrban + 0.5}, Weight: 1},
		{Name: "unsuitable_land_cover", Predicate: Predicate{Layer: raster.LayerLandCover, Op: OpLT, Value: raster.CoverUrban + 0.5}, Weight: -3},
		{Name: "excellent_irradiance", Predicate: Predicate{Layer: raster.LayerIrradiance, Op: OpGT, Value: 5.2}, Weight: 1},
		{Name: "good_irradiance", Predicate: Predicate{Layer: raster.LayerIrradiance, Op: OpGT, Value: 4.5}, Weight: 0.5},
	}
}

// SolarBands maps suitability scores to zones: >=5 high, [3,5) medium,
// [1,3) low, below 1 not suitable. The -Inf floor is what keeps the table
// total when the unsuitable-landcover penalty drives a score negative.
func SolarBands() []Band {
	return []Band{
		{MinScore: 5, Zone: 3, Label: "high"},
		{MinScore: 3, Zone: 2, Label: "medium"},
		{MinScore: 1, Zone: 1, Label: "low"},
		{MinScore: math.Inf(-1), Zone: 0, Label: "not_suitable"},
	}
}

package model

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestRegionValidate(t *testing.T) {
	tests := []struct {
		name    string
		region  Region
		wantErr bool
	}{
		{"valid bbox", NewRegion(80.0, 12.8, 80.3, 13.2), false},
		{"zero area", NewRegion(80.0, 12.8, 80.0, 13.2), true},
		{"inverted lon", NewRegion(80.3, 12.8, 80.0, 13.2), true},
		{"inverted lat", NewRegion(80.0, 13.2, 80.3, 12.8), true},
		{"zero value", Region{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.region.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, eris.Is(err, ErrEmptyRegion))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRegionContains(t *testing.T) {
	r := NewRegion(80.0, 12.8, 80.3, 13.2)
	assert.True(t, r.Contains(80.1, 13.0))
	assert.True(t, r.Contains(80.0, 12.8)) // boundary inclusive
	assert.False(t, r.Contains(79.9, 13.0))
	assert.False(t, r.Contains(80.1, 13.3))
}

func TestRegionFromPolygon(t *testing.T) {
	mp := geom.NewMultiPolygon(geom.XY).SetSRID(4326)
	poly := geom.NewPolygon(geom.XY)
	err := poly.Push(geom.NewLinearRingFlat(geom.XY, []float64{
		76.0, 8.0,
		77.5, 8.0,
		77.5, 12.8,
		76.0, 12.8,
		76.0, 8.0,
	}))
	require.NoError(t, err)
	require.NoError(t, mp.Push(poly))

	r := RegionFromPolygon(mp)
	require.NoError(t, r.Validate())
	assert.InDelta(t, 76.0, r.MinLon, 1e-9)
	assert.InDelta(t, 8.0, r.MinLat, 1e-9)
	assert.InDelta(t, 77.5, r.MaxLon, 1e-9)
	assert.InDelta(t, 12.8, r.MaxLat, 1e-9)
	assert.NotNil(t, r.Polygon)
}

func TestParseAnalysisType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    AnalysisType
		wantErr bool
	}{
		{"flood", "flood_risk", AnalysisFloodRisk, false},
		{"solar upper", "SOLAR_SUITABILITY", AnalysisSolarSuitability, false},
		{"declared unimplemented", "wildfire_risk", AnalysisWildfireRisk, false},
		{"unknown", "earthquake", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, err := ParseAnalysisType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, eris.Is(err, ErrUnknownAnalysisType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, at)
		})
	}
}

func TestAnalysisTypeImplemented(t *testing.T) {
	assert.True(t, AnalysisFloodRisk.Implemented())
	assert.True(t, AnalysisSolarSuitability.Implemented())
	assert.True(t, AnalysisDeforestation.Implemented())
	assert.False(t, AnalysisUrbanGrowth.Implemented())
	assert.False(t, AnalysisWildfireRisk.Implemented())
}

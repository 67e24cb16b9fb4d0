package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/terralens-cli/internal/model"
	"github.com/sells-group/terralens-cli/internal/raster"
)

func TestSyntheticLayers(t *testing.T) {
	s := NewSynthetic(16)
	region := model.NewRegion(80.0, 12.8, 80.3, 13.2)
	period := model.TimePeriod{StartYear: 2020, EndYear: 2023}

	ls, err := s.Layers(context.Background(), region, period, []string{
		raster.LayerElevation,
		raster.LayerPrecipitation,
		raster.LayerLandCover,
	})
	require.NoError(t, err)

	w, h := ls.Shape()
	assert.Equal(t, 16, w)
	assert.Equal(t, 16, h)

	lc, err := ls.Layer(raster.LayerLandCover)
	require.NoError(t, err)
	for _, v := range lc.Cells {
		assert.Contains(t, []float64{
			raster.CoverWater, raster.CoverUrban, raster.CoverBareSoil, raster.CoverVegetation,
		}, v)
	}
}

func TestSyntheticUnknownLayer(t *testing.T) {
	s := NewSynthetic(8)
	region := model.NewRegion(0, 0, 1, 1)

	_, err := s.Layers(context.Background(), region, model.TimePeriod{}, []string{"thermal"})
	assert.Error(t, err)
}

func TestSyntheticDeterministic(t *testing.T) {
	s := NewSynthetic(8)
	region := model.NewRegion(0, 0, 1, 1)
	period := model.TimePeriod{StartYear: 2018, EndYear: 2023}

	a, err := s.Layers(context.Background(), region, period, []string{raster.LayerNDVIStart})
	require.NoError(t, err)
	b, err := s.Layers(context.Background(), region, period, []string{raster.LayerNDVIStart})
	require.NoError(t, err)

	ga, err := a.Layer(raster.LayerNDVIStart)
	require.NoError(t, err)
	gb, err := b.Layer(raster.LayerNDVIStart)
	require.NoError(t, err)
	assert.Equal(t, ga.Cells, gb.Cells)
}

func TestSyntheticDefaultGridSize(t *testing.T) {
	s := NewSynthetic(0)
	assert.Equal(t, 64, s.GridSize)
}

package planner

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/terralens-cli/internal/model"
	"github.com/sells-group/terralens-cli/internal/raster"
)

func TestRouteQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  model.AnalysisType
	}{
		{"flood", "map flood risk zones", model.AnalysisFloodRisk},
		{"flooding case insensitive", "FLOODING hotspots", model.AnalysisFloodRisk},
		{"inundation", "coastal inundation study", model.AnalysisFloodRisk},
		{"solar", "find solar farm sites", model.AnalysisSolarSuitability},
		{"renewable", "renewable siting", model.AnalysisSolarSuitability},
		{"suitability", "panel suitability map", model.AnalysisSolarSuitability},
		{"deforestation", "deforestation hotspots", model.AnalysisDeforestation},
		{"tree loss", "tree cover loss", model.AnalysisDeforestation},
		{"unmatched defaults to flood", "tell me about the weather", model.AnalysisFloodRisk},
		{"flood beats solar when both present", "flood risk for solar farms", model.AnalysisFloodRisk},
		{"solar beats forest when both present", "solar potential near forest", model.AnalysisSolarSuitability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteQuery(tt.query))
		})
	}
}

func TestPlanFromQueryValidatesPeriodFirst(t *testing.T) {
	tests := []struct {
		name   string
		period string
	}{
		{"single year", "2020"},
		{"empty", ""},
		{"two digit year", "20-21"},
		{"non numeric", "abcd-efgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanFromQuery("flood risk", "chennai", tt.period)
			require.Error(t, err)
			assert.True(t, eris.Is(err, model.ErrInvalidTimePeriod))
		})
	}
}

func TestPlanFromQueryFlood(t *testing.T) {
	p, err := PlanFromQuery("flood risk assessment", "chennai", "2020-2023")
	require.NoError(t, err)

	assert.Equal(t, model.AnalysisFloodRisk, p.AnalysisType)
	assert.Equal(t, "chennai", p.Location)
	assert.Equal(t, 2020, p.TimePeriod.StartYear)
	assert.Equal(t, 2023, p.TimePeriod.EndYear)
	assert.Len(t, p.Steps, 5)
	assert.Equal(t, []string{
		raster.LayerElevation,
		raster.LayerPrecipitation,
		raster.LayerBackscatter,
		raster.LayerSlope,
	}, p.RequiredLayers)

	for i, s := range p.Steps {
		assert.Equal(t, i+1, s.Number)
		assert.NotEmpty(t, s.Description)
		assert.NotEmpty(t, s.Method)
	}
}

func TestPlanAnalysisSolar(t *testing.T) {
	tp := model.TimePeriod{StartYear: 2021, EndYear: 2022}
	p, err := PlanAnalysis(model.AnalysisSolarSuitability, "bengaluru", tp)
	require.NoError(t, err)

	assert.Len(t, p.Steps, 5)
	assert.Equal(t, []string{
		raster.LayerSlope,
		raster.LayerAspect,
		raster.LayerLandCover,
		raster.LayerIrradiance,
	}, p.RequiredLayers)
	assert.Contains(t, p.OutputLayers, "suitability_zones")
}

func TestPlanAnalysisDeforestation(t *testing.T) {
	tp := model.TimePeriod{StartYear: 2018, EndYear: 2023}
	p, err := PlanAnalysis(model.AnalysisDeforestation, "kerala", tp)
	require.NoError(t, err)

	assert.Len(t, p.Steps, 4)
	assert.Equal(t, []string{raster.LayerNDVIStart, raster.LayerNDVIEnd}, p.RequiredLayers)
	assert.Contains(t, p.OutputLayers, "deforested_areas")
}

func TestPlanAnalysisUnimplemented(t *testing.T) {
	tp := model.TimePeriod{StartYear: 2020, EndYear: 2021}
	_, err := PlanAnalysis(model.AnalysisUrbanGrowth, "chennai", tp)
	assert.Error(t, err)
}

func TestPlanStepsReferenceKnownDatasets(t *testing.T) {
	catalog := Catalog()
	tp := model.TimePeriod{StartYear: 2020, EndYear: 2023}

	for _, at := range []model.AnalysisType{
		model.AnalysisFloodRisk,
		model.AnalysisSolarSuitability,
		model.AnalysisDeforestation,
	} {
		p, err := PlanAnalysis(at, "chennai", tp)
		require.NoError(t, err)
		for _, s := range p.Steps {
			for _, ds := range s.Datasets {
				_, ok := catalog[ds]
				assert.True(t, ok, "step %d of %s references unknown dataset %q", s.Number, at, ds)
			}
		}
	}
}

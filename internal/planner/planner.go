package planner

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/terralens-cli/internal/model"
	"github.com/sells-group/terralens-cli/internal/raster"
)

// Step is one stage in a workflow plan.
type Step struct {
	Number      int      `json:"number"`
	Description string   `json:"description"`
	Method      string   `json:"method"`
	Datasets    []string `json:"datasets,omitempty"`
}

// Plan is a complete workflow plan for one analysis request.
type Plan struct {
	AnalysisType model.AnalysisType `json:"analysis_type"`
	Location     string             `json:"location"`
	TimePeriod   model.TimePeriod   `json:"time_period"`
	Steps        []Step             `json:"steps"`
	OutputLayers []string           `json:"output_layers"`
	// RequiredLayers names the raster layers the classifier will consume.
	RequiredLayers []string `json:"required_layers"`
}

// Keyword routing tables: the first family with a hit in the query wins, in
// this order. An unmatched query defaults to flood risk.
var (
	floodKeywords  = []string{"flood", "flooding", "flood-prone", "inundation", "water"}
	solarKeywords  = []string{"solar", "renewable", "energy", "farm", "suitability"}
	forestKeywords = []string{"deforestation", "forest", "vegetation", "tree"}
)

// RouteQuery maps a free-text query to an analysis type by keyword.
func RouteQuery(query string) model.AnalysisType {
	q := strings.ToLower(query)
	for _, kw := range floodKeywords {
		if strings.Contains(q, kw) {
			return model.AnalysisFloodRisk
		}
	}
	for _, kw := range solarKeywords {
		if strings.Contains(q, kw) {
			return model.AnalysisSolarSuitability
		}
	}
	for _, kw := range forestKeywords {
		if strings.Contains(q, kw) {
			return model.AnalysisDeforestation
		}
	}
	return model.AnalysisFloodRisk
}

// PlanFromQuery validates the time period, routes the query to an analysis
// type, and builds its step plan. The time period is checked before anything
// else so a malformed period never reaches layer acquisition.
func PlanFromQuery(query, location, timePeriod string) (*Plan, error) {
	tp, err := model.ParseTimePeriod(timePeriod)
	if err != nil {
		return nil, err
	}
	return PlanAnalysis(RouteQuery(query), location, tp)
}

// PlanAnalysis builds the step plan for a known analysis type.
func PlanAnalysis(at model.AnalysisType, location string, tp model.TimePeriod) (*Plan, error) {
	if !at.Implemented() {
		return nil, eris.Errorf("planner: analysis type %q is declared but not implemented", at)
	}

	p := &Plan{
		AnalysisType: at,
		Location:     location,
		TimePeriod:   tp,
	}

	switch at {
	case model.AnalysisFloodRisk:
		p.Steps = []Step{
			{Number: 1, Description: "Define region of interest for " + location, Method: "Administrative boundary extraction"},
			{Number: 2, Description: "Extract elevation data and compute slope", Method: "DEM analysis and slope calculation", Datasets: []string{"srtm"}},
			{Number: 3, Description: "Analyze precipitation patterns", Method: "Rainfall intensity and frequency analysis", Datasets: []string{"chirps"}},
			{Number: 4, Description: "Identify flood-prone areas using SAR imagery", Method: "Water body detection using Sentinel-1", Datasets: []string{"sentinel1"}},
			{Number: 5, Description: "Combine factors to create flood risk map", Method: "Multi-criteria analysis"},
		}
		p.OutputLayers = []string{"elevation", "slope", "precipitation", "flood_risk_zones"}
		p.RequiredLayers = []string{
			raster.LayerElevation,
			raster.LayerPrecipitation,
			raster.LayerBackscatter,
			raster.LayerSlope,
		}

	case model.AnalysisSolarSuitability:
		p.Steps = []Step{
			{Number: 1, Description: "Define region of interest for " + location, Method: "Administrative boundary extraction"},
			{Number: 2, Description: "Analyze slope and aspect for solar panel orientation", Method: "DEM-based slope and aspect analysis", Datasets: []string{"srtm"}},
			{Number: 3, Description: "Assess land cover and land use", Method: "Land cover classification using Sentinel-2", Datasets: []string{"sentinel2"}},
			{Number: 4, Description: "Calculate solar irradiance potential", Method: "Solar radiation modeling", Datasets: []string{"srtm"}},
			{Number: 5, Description: "Generate solar suitability map", Method: "Multi-criteria suitability analysis"},
		}
		p.OutputLayers = []string{"slope", "aspect", "landcover", "irradiance", "suitability_zones"}
		p.RequiredLayers = []string{
			raster.LayerSlope,
			raster.LayerAspect,
			raster.LayerLandCover,
			raster.LayerIrradiance,
		}

	case model.AnalysisDeforestation:
		p.Steps = []Step{
			{Number: 1, Description: "Define region of interest for " + location, Method: "Administrative boundary extraction"},
			{Number: 2, Description: "Calculate NDVI for period start and end", Method: "Vegetation index analysis using Sentinel-2", Datasets: []string{"sentinel2"}},
			{Number: 3, Description: "Detect forest cover changes", Method: "Change detection using NDVI thresholds", Datasets: []string{"sentinel2"}},
			{Number: 4, Description: "Quantify deforestation areas", Method: "Spatial analysis and statistics"},
		}
		p.OutputLayers = []string{"ndvi_start", "ndvi_end", "ndvi_change", "deforested_areas"}
		p.RequiredLayers = []string{
			raster.LayerNDVIStart,
			raster.LayerNDVIEnd,
		}
	}

	return p, nil
}

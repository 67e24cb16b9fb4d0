package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// AnalysisType identifies one of the supported analysis workflows.
type AnalysisType string

const (
	AnalysisFloodRisk        AnalysisType = "flood_risk"
	AnalysisSolarSuitability AnalysisType = "solar_suitability"
	AnalysisDeforestation    AnalysisType = "deforestation"

	// Declared but not yet implemented.
	AnalysisUrbanGrowth   AnalysisType = "urban_growth"
	AnalysisAgricultural  AnalysisType = "agricultural_suitability"
	AnalysisWildfireRisk  AnalysisType = "wildfire_risk"
	AnalysisLandUseChange AnalysisType = "land_use_change"
)

// AnalysisTypes lists every declared analysis type in a fixed order.
var AnalysisTypes = []AnalysisType{
	AnalysisFloodRisk,
	AnalysisSolarSuitability,
	AnalysisDeforestation,
	AnalysisUrbanGrowth,
	AnalysisAgricultural,
	AnalysisWildfireRisk,
	AnalysisLandUseChange,
}

// ErrUnknownAnalysisType indicates a value outside the declared enumeration.
var ErrUnknownAnalysisType = eris.New("model: unknown analysis type")

// ParseAnalysisType validates a raw string against the declared enumeration.
func ParseAnalysisType(s string) (AnalysisType, error) {
	at := AnalysisType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AnalysisTypes {
		if at == known {
			return at, nil
		}
	}
	return "", eris.Wrap(ErrUnknownAnalysisType, s)
}

// Implemented reports whether a built-in workflow exists for the type.
func (at AnalysisType) Implemented() bool {
	switch at {
	case AnalysisFloodRisk, AnalysisSolarSuitability, AnalysisDeforestation:
		return true
	}
	return false
}

func (at AnalysisType) String() string { return string(at) }

// ResolutionTier records which cascade tier produced a resolved region.
// Diagnostics only; callers must not branch on it for correctness.
type ResolutionTier string

const (
	TierExact     ResolutionTier = "exact"
	TierSubstring ResolutionTier = "substring"
	TierAlias     ResolutionTier = "alias"
	TierFuzzy     ResolutionTier = "fuzzy"
	TierBoundary  ResolutionTier = "boundary"
	TierDefault   ResolutionTier = "default"
)

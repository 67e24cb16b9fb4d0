package analysis

import (
	"math"

	"github.com/sells-group/terralens-cli/internal/classifier"
)

// ZoneCount summarizes one zone of the output grid.
type ZoneCount struct {
	Zone    int     `json:"zone"`
	Label   string  `json:"label,omitempty"`
	Cells   int     `json:"cells"`
	Percent float64 `json:"percent"`
}

// Stats is the per-run summary: zone histogram plus raw score spread. The
// score figures cannot be recomputed from the zone grid (banding is lossy),
// which is why the engine carries them through.
type Stats struct {
	TotalCells int         `json:"total_cells"`
	Zones      []ZoneCount `json:"zones,omitempty"`
	ScoreMin   float64     `json:"score_min,omitempty"`
	ScoreMax   float64     `json:"score_max,omitempty"`
	ScoreMean  float64     `json:"score_mean,omitempty"`

	// Change-detection figures, set only for deforestation runs.
	ForestStartCells int     `json:"forest_start_cells,omitempty"`
	ForestEndCells   int     `json:"forest_end_cells,omitempty"`
	DeforestedCells  int     `json:"deforested_cells,omitempty"`
	DeforestedPct    float64 `json:"deforested_pct,omitempty"`
}

// zoneStats summarizes a weighted-classification result.
func zoneStats(cr *classifier.Result, bands []classifier.Band) *Stats {
	total := len(cr.Zones.Zones)
	counts := make(map[int]int)
	for _, z := range cr.Zones.Zones {
		counts[z]++
	}

	st := &Stats{TotalCells: total}
	for _, b := range bands {
		n := counts[b.Zone]
		st.Zones = append(st.Zones, ZoneCount{
			Zone:    b.Zone,
			Label:   b.Label,
			Cells:   n,
			Percent: pct(n, total),
		})
	}

	st.ScoreMin = math.Inf(1)
	st.ScoreMax = math.Inf(-1)
	var sum float64
	for _, s := range cr.Scores.Cells {
		st.ScoreMin = math.Min(st.ScoreMin, s)
		st.ScoreMax = math.Max(st.ScoreMax, s)
		sum += s
	}
	if total > 0 {
		st.ScoreMean = sum / float64(total)
	}
	return st
}

// changeStats summarizes a deforestation result.
func changeStats(ch *classifier.ChangeResult) *Stats {
	total := len(ch.Change.Cells)
	forestStart := ch.ForestStart.CountTrue()
	deforested := ch.Deforested.CountTrue()
	return &Stats{
		TotalCells:       total,
		ForestStartCells: forestStart,
		ForestEndCells:   ch.ForestEnd.CountTrue(),
		DeforestedCells:  deforested,
		DeforestedPct:    pct(deforested, forestStart),
	}
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*10000) / 100
}

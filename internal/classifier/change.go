package classifier

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/terralens-cli/internal/raster"
)

// Deforestation thresholds on the vegetation index.
const (
	forestNDVIThreshold = 0.3
	// significantDecrease flags cells whose NDVI dropped by more than this.
	significantDecrease = -0.1
)

// ChangeResult holds the deforestation change-detection outputs.
type ChangeResult struct {
	ForestStart *raster.BoolGrid `json:"forest_start"`
	ForestEnd   *raster.BoolGrid `json:"forest_end"`
	// Deforested marks cells that were forest at the start of the period and
	// whose end NDVI fell below the forest threshold.
	Deforested *raster.BoolGrid `json:"deforested"`
	// Change is the signed NDVI difference (end minus start).
	Change *raster.Grid `json:"change"`
	// SignificantDecrease marks cells where Change < -0.1.
	SignificantDecrease *raster.BoolGrid `json:"significant_decrease"`
}

// DetectChange runs the deforestation analysis over the ndvi_start and
// ndvi_end layers. This is an explicit two-layer conjunction, deliberately
// not expressed through the weighted scoring engine: "deforested" requires
// forest at the start AND loss at the end, which a per-layer score sum cannot
// represent.
func DetectChange(ctx context.Context, layers *raster.LayerSet) (*ChangeResult, error) {
	start, err := layers.Layer(raster.LayerNDVIStart)
	if err != nil {
		return nil, eris.Wrap(err, "classifier: change detection")
	}
	end, err := layers.Layer(raster.LayerNDVIEnd)
	if err != nil {
		return nil, eris.Wrap(err, "classifier: change detection")
	}
	if !start.SameShape(end) {
		return nil, eris.Wrap(raster.ErrShapeMismatch, "ndvi layers")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w, h := start.Width, start.Height
	res := &ChangeResult{
		ForestStart:         raster.NewBoolGrid(w, h, start.Bounds),
		ForestEnd:           raster.NewBoolGrid(w, h, start.Bounds),
		Deforested:          raster.NewBoolGrid(w, h, start.Bounds),
		Change:              raster.NewGrid(w, h, start.Bounds),
		SignificantDecrease: raster.NewBoolGrid(w, h, start.Bounds),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s, e := start.At(x, y), end.At(x, y)
			forestStart := s > forestNDVIThreshold
			res.ForestStart.Set(x, y, forestStart)
			res.ForestEnd.Set(x, y, e > forestNDVIThreshold)
			res.Deforested.Set(x, y, forestStart && e < forestNDVIThreshold)
			diff := e - s
			res.Change.Set(x, y, diff)
			res.SignificantDecrease.Set(x, y, diff < significantDecrease)
		}
	}

	return res, nil
}

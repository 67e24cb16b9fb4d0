package gazetteer

import (
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/sells-group/terralens-cli/internal/model"
)

// ImportShapefile reads polygon features from a shapefile and returns
// gazetteer entries named by the given attribute field, with regions derived
// from each feature's bounding box.
func ImportShapefile(path, nameField string) ([]Entry, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "gazetteer: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	nameIdx := fieldIndex(reader, nameField)
	if nameIdx < 0 {
		return nil, eris.Errorf("gazetteer: shapefile field %q not found", nameField)
	}

	log := zap.L().With(zap.String("component", "gazetteer.import"))

	var entries []Entry
	for reader.Next() {
		_, shape := reader.Shape()
		if shape == nil {
			continue
		}

		name := strings.TrimSpace(reader.Attribute(nameIdx))
		if name == "" {
			continue
		}

		mp := polygonToMultiPolygon(shape)
		if mp == nil {
			log.Debug("skipping non-polygon feature", zap.String("name", name))
			continue
		}

		region := model.RegionFromPolygon(mp)
		if err := region.Validate(); err != nil {
			log.Warn("skipping degenerate feature", zap.String("name", name), zap.Error(err))
			continue
		}
		// Drop the polygon: gazetteer entries are bounding boxes.
		region.Polygon = nil
		entries = append(entries, Entry{Name: name, Region: region})
	}

	log.Info("shapefile imported", zap.String("path", path), zap.Int("entries", len(entries)))
	return entries, nil
}

// fieldIndex finds a shapefile attribute field by name, case-insensitive.
func fieldIndex(reader *shp.Reader, name string) int {
	for i, f := range reader.Fields() {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), name) {
			return i
		}
	}
	return -1
}

// polygonToMultiPolygon converts a shapefile Polygon to a geom.MultiPolygon.
func polygonToMultiPolygon(s shp.Shape) *geom.MultiPolygon {
	p, ok := s.(*shp.Polygon)
	if !ok || p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY).SetSRID(4326)

	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		var end int32
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		} else {
			end = int32(len(p.Points))
		}

		flat := make([]float64, 0, (end-start)*2)
		for j := start; j < end; j++ {
			flat = append(flat, p.Points[j].X, p.Points[j].Y)
		}

		ring := geom.NewLinearRingFlat(geom.XY, flat)
		poly := geom.NewPolygon(geom.XY)
		if err := poly.Push(ring); err != nil {
			zap.L().Debug("gazetteer: skipping malformed polygon ring", zap.Int32("part", i), zap.Error(err))
			continue
		}
		if err := mp.Push(poly); err != nil {
			zap.L().Debug("gazetteer: skipping malformed polygon part", zap.Int32("part", i), zap.Error(err))
			continue
		}
	}

	if mp.NumPolygons() == 0 {
		return nil
	}
	return mp
}

package gazetteer

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/terralens-cli/internal/model"
)

// ImportXLSX reads gazetteer entries from a spreadsheet. The first sheet is
// used; the first row is a header. Expected columns, in order:
// name, min_lon, min_lat, max_lon, max_lat.
func ImportXLSX(path string) ([]Entry, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "gazetteer: open xlsx %s", path)
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("gazetteer: xlsx %s has no sheets", path)
	}

	var entries []Entry
	for i, row := range f.Sheets[0].Rows {
		if i == 0 {
			continue // header
		}
		if len(row.Cells) < 5 {
			continue
		}

		name := strings.TrimSpace(row.Cells[0].Value)
		if name == "" {
			continue
		}

		var coords [4]float64
		ok := true
		for j := 0; j < 4; j++ {
			v, parseErr := strconv.ParseFloat(strings.TrimSpace(row.Cells[j+1].Value), 64)
			if parseErr != nil {
				ok = false
				break
			}
			coords[j] = v
		}
		if !ok {
			return nil, eris.Errorf("gazetteer: xlsx row %d has non-numeric bounds", i+1)
		}

		entries = append(entries, Entry{
			Name:   name,
			Region: model.NewRegion(coords[0], coords[1], coords[2], coords[3]),
		})
	}

	return entries, nil
}

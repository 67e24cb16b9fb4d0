package gazetteer

import (
	"github.com/sells-group/terralens-cli/internal/model"
)

// Builtin returns the curated South India gazetteer shipped with the binary.
// Coordinates are WGS84 bounding boxes [minLon, minLat, maxLon, maxLat].
func Builtin() *Gazetteer {
	entries := []Entry{
		{Name: "chennai", Region: model.NewRegion(80.0, 12.8, 80.3, 13.2)},
		{Name: "bangalore", Region: model.NewRegion(77.4, 12.8, 77.8, 13.2)},
		{Name: "bengaluru", Region: model.NewRegion(77.4, 12.8, 77.8, 13.2)},
		{Name: "kochi", Region: model.NewRegion(76.2, 9.9, 76.4, 10.1)},
		{Name: "hyderabad", Region: model.NewRegion(78.3, 17.2, 78.6, 17.6)},
		{Name: "madurai", Region: model.NewRegion(78.0, 9.8, 78.2, 10.0)},
		{Name: "coimbatore", Region: model.NewRegion(76.9, 11.0, 77.1, 11.2)},
		{Name: "mysore", Region: model.NewRegion(76.6, 12.2, 76.8, 12.4)},
		{Name: "thiruvananthapuram", Region: model.NewRegion(76.9, 8.4, 77.1, 8.6)},
		{Name: "visakhapatnam", Region: model.NewRegion(83.2, 17.6, 83.4, 17.8)},
		{Name: "tamil nadu", Region: model.NewRegion(76.0, 8.0, 80.5, 13.5)},
		{Name: "karnataka", Region: model.NewRegion(74.0, 11.0, 78.5, 18.5)},
		{Name: "kerala", Region: model.NewRegion(74.0, 8.0, 77.5, 12.8)},
		{Name: "andhra pradesh", Region: model.NewRegion(76.0, 12.0, 84.5, 19.5)},
		{Name: "telangana", Region: model.NewRegion(77.0, 15.5, 81.0, 19.5)},
		{Name: "goa", Region: model.NewRegion(73.7, 14.5, 74.2, 15.8)},
		{Name: "puducherry", Region: model.NewRegion(79.7, 11.9, 79.9, 12.1)},
		{Name: "india", Region: model.NewRegion(68.0, 6.0, 97.0, 37.0)},
	}

	aliases := map[string]string{
		"madras":         "chennai",
		"bengaluru city": "bangalore",
		"cochin":         "kochi",
		"trivandrum":     "thiruvananthapuram",
		"vizag":          "visakhapatnam",
		"mysuru":         "mysore",
		"kovai":          "coimbatore",
		"pondicherry":    "puducherry",
		"pondy":          "puducherry",
	}

	g, err := New(entries, aliases)
	if err != nil {
		// The builtin table is compile-time data; a construction failure is a
		// programming error.
		panic(err)
	}
	return g
}

package gazetteer

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

const (
	rtreeDims        = 2
	rtreeMinChildren = 3
	rtreeMaxChildren = 8

	// pointTolerance pads point queries so boundary hits are not lost to
	// floating-point rounding.
	pointTolerance = 1e-9
)

// indexedEntry wraps an entry to implement rtreego.Spatial.
type indexedEntry struct {
	entry Entry
	rect  *rtreego.Rect
}

func (ie *indexedEntry) Bounds() *rtreego.Rect { return ie.rect }

// spatialIndex is an R-tree over entry bounding boxes, used for reverse
// (point → entries) lookups.
type spatialIndex struct {
	tree *rtreego.Rtree
}

func newSpatialIndex(entries []Entry) *spatialIndex {
	tree := rtreego.NewTree(rtreeDims, rtreeMinChildren, rtreeMaxChildren)
	for _, e := range entries {
		rect, err := rtreego.NewRect(
			rtreego.Point{e.Region.MinLon, e.Region.MinLat},
			[]float64{e.Region.MaxLon - e.Region.MinLon, e.Region.MaxLat - e.Region.MinLat},
		)
		if err != nil {
			// Entries were validated at construction; skip anything the tree
			// still refuses.
			continue
		}
		tree.Insert(&indexedEntry{entry: e, rect: rect})
	}
	return &spatialIndex{tree: tree}
}

// locate returns entries whose boxes contain the point, smallest area first
// so the most specific location leads.
func (si *spatialIndex) locate(lon, lat float64) []Entry {
	pt := rtreego.Point{lon, lat}
	hits := si.tree.SearchIntersect(pt.ToRect(pointTolerance))

	entries := make([]Entry, 0, len(hits))
	for _, h := range hits {
		ie := h.(*indexedEntry)
		if ie.entry.Region.Contains(lon, lat) {
			entries = append(entries, ie.entry)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Region.Area() < entries[j].Region.Area()
	})
	return entries
}

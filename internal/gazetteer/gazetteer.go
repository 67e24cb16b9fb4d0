// Package gazetteer holds the curated mapping from known location names to
// regions, plus the alias table. Tables are built once at process start and
// never mutated, so concurrent lookups need no locking.
package gazetteer

import (
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"

	"github.com/sells-group/terralens-cli/internal/model"
)

// Normalize canonicalizes a location string for table lookups: trimmed,
// case-folded, inner whitespace collapsed. A fresh Caser per call, since
// casers are stateful and lookups run concurrently.
func Normalize(s string) string {
	return strings.Join(strings.Fields(cases.Fold().String(s)), " ")
}

// Entry is one curated location.
type Entry struct {
	Name   string
	Region model.Region
}

// Gazetteer is the immutable curated location table. Entries keep their
// construction order so that substring and fuzzy matching iterate
// deterministically.
type Gazetteer struct {
	entries []Entry
	byName  map[string]int
	aliases map[string]string // normalized alias → canonical key
	index   *spatialIndex
}

// New builds a gazetteer from entries and an alias table. Entry names and
// alias keys are normalized; aliases must map to a known entry. Entries with
// invalid regions are rejected outright rather than left to surface later.
func New(entries []Entry, aliases map[string]string) (*Gazetteer, error) {
	g := &Gazetteer{
		byName:  make(map[string]int, len(entries)),
		aliases: make(map[string]string, len(aliases)),
	}
	for _, e := range entries {
		key := Normalize(e.Name)
		if key == "" {
			return nil, eris.New("gazetteer: entry with empty name")
		}
		if err := e.Region.Validate(); err != nil {
			return nil, eris.Wrap(err, "gazetteer: entry "+key)
		}
		if _, dup := g.byName[key]; dup {
			return nil, eris.New("gazetteer: duplicate entry " + key)
		}
		g.byName[key] = len(g.entries)
		g.entries = append(g.entries, Entry{Name: key, Region: e.Region})
	}
	for alias, canonical := range aliases {
		g.aliases[Normalize(alias)] = Normalize(canonical)
	}
	g.index = newSpatialIndex(g.entries)
	return g, nil
}

// Lookup returns the region for an exact normalized key.
func (g *Gazetteer) Lookup(name string) (model.Region, bool) {
	i, ok := g.byName[Normalize(name)]
	if !ok {
		return model.Region{}, false
	}
	return g.entries[i].Region, true
}

// Canonical resolves an alias to its canonical key, if the alias is known
// and its target exists.
func (g *Gazetteer) Canonical(alias string) (string, bool) {
	canonical, ok := g.aliases[Normalize(alias)]
	if !ok {
		return "", false
	}
	if _, exists := g.byName[canonical]; !exists {
		return "", false
	}
	return canonical, true
}

// Entries returns the entries in fixed construction order. The slice is
// shared; callers must not mutate it.
func (g *Gazetteer) Entries() []Entry { return g.entries }

// Len returns the number of entries.
func (g *Gazetteer) Len() int { return len(g.entries) }

// Locate returns the entries whose bounding boxes contain the point,
// smallest area first.
func (g *Gazetteer) Locate(lon, lat float64) []Entry {
	return g.index.locate(lon, lat)
}

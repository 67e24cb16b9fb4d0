package gazetteer

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/terralens-cli/internal/model"
)

// fileEntry is the YAML form of one gazetteer entry.
type fileEntry struct {
	Name string `yaml:"name"`
	// Bounds is [minLon, minLat, maxLon, maxLat].
	Bounds [4]float64 `yaml:"bounds"`
}

// File is the on-disk gazetteer document.
type File struct {
	Entries []fileEntry       `yaml:"entries"`
	Aliases map[string]string `yaml:"aliases"`
}

// LoadFile reads a gazetteer from a YAML file.
func LoadFile(path string) (*Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "gazetteer: read %s", path)
	}

	// The YAML has a top-level "gazetteer" key.
	var wrapper struct {
		Gazetteer File `yaml:"gazetteer"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "gazetteer: parse file")
	}

	f := wrapper.Gazetteer
	entries := make([]Entry, 0, len(f.Entries))
	for _, fe := range f.Entries {
		entries = append(entries, Entry{
			Name:   fe.Name,
			Region: model.NewRegion(fe.Bounds[0], fe.Bounds[1], fe.Bounds[2], fe.Bounds[3]),
		})
	}

	g, err := New(entries, f.Aliases)
	if err != nil {
		return nil, eris.Wrapf(err, "gazetteer: build from %s", path)
	}
	return g, nil
}

// WriteFile writes a gazetteer to YAML, entries in table order.
func WriteFile(path string, g *Gazetteer) error {
	f := File{Aliases: map[string]string{}}
	for _, e := range g.Entries() {
		f.Entries = append(f.Entries, fileEntry{
			Name:   e.Name,
			Bounds: [4]float64{e.Region.MinLon, e.Region.MinLat, e.Region.MaxLon, e.Region.MaxLat},
		})
	}
	for alias, canonical := range g.aliases {
		f.Aliases[alias] = canonical
	}

	wrapper := struct {
		Gazetteer File `yaml:"gazetteer"`
	}{Gazetteer: f}

	data, err := yaml.Marshal(wrapper)
	if err != nil {
		return eris.Wrap(err, "gazetteer: marshal file")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "gazetteer: write %s", path)
	}
	return nil
}

package gazetteer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/terralens-cli/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase passthrough", "chennai", "chennai"},
		{"uppercase folded", "CHENNAI", "chennai"},
		{"trimmed", "  chennai  ", "chennai"},
		{"inner whitespace collapsed", "tamil \t nadu", "tamil nadu"},
		{"mixed", "  Tamil   NADU ", "tamil nadu"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestBuiltinLookup(t *testing.T) {
	g := Builtin()

	r, ok := g.Lookup("bengaluru")
	require.True(t, ok)
	assert.Equal(t, model.NewRegion(77.4, 12.8, 77.8, 13.2), r)

	r, ok = g.Lookup("  BANGALORE ")
	require.True(t, ok)
	assert.Equal(t, model.NewRegion(77.4, 12.8, 77.8, 13.2), r)

	_, ok = g.Lookup("atlantis")
	assert.False(t, ok)
}

func TestAliases(t *testing.T) {
	g := Builtin()

	canonical, ok := g.Canonical("madras")
	require.True(t, ok)
	assert.Equal(t, "chennai", canonical)

	canonical, ok = g.Canonical("TRIVANDRUM")
	require.True(t, ok)
	assert.Equal(t, "thiruvananthapuram", canonical)

	_, ok = g.Canonical("gotham")
	assert.False(t, ok)
}

func TestNewRejectsBadEntries(t *testing.T) {
	_, err := New([]Entry{
		{Name: "nowhere", Region: model.NewRegion(10, 10, 10, 20)},
	}, nil)
	require.Error(t, err)

	_, err = New([]Entry{
		{Name: "a", Region: model.NewRegion(0, 0, 1, 1)},
		{Name: "A ", Region: model.NewRegion(0, 0, 2, 2)},
	}, nil)
	require.Error(t, err, "duplicate normalized names must be rejected")
}

func TestEntriesOrderIsDeterministic(t *testing.T) {
	entries := []Entry{
		{Name: "beta", Region: model.NewRegion(0, 0, 1, 1)},
		{Name: "alpha", Region: model.NewRegion(1, 1, 2, 2)},
		{Name: "gamma", Region: model.NewRegion(2, 2, 3, 3)},
	}
	g, err := New(entries, nil)
	require.NoError(t, err)

	got := g.Entries()
	require.Len(t, got, 3)
	assert.Equal(t, "beta", got[0].Name)
	assert.Equal(t, "alpha", got[1].Name)
	assert.Equal(t, "gamma", got[2].Name)
}

func TestLocate(t *testing.T) {
	g := Builtin()

	// A point in Chennai is inside both the city box and the India box;
	// the city must come first (smallest area).
	entries := g.Locate(80.15, 13.0)
	require.NotEmpty(t, entries)
	assert.Equal(t, "chennai", entries[0].Name)

	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].Region.Area(), entries[i].Region.Area())
	}

	// Middle of the Atlantic: nothing.
	assert.Empty(t, g.Locate(-30.0, 20.0))
}

func TestFileRoundTrip(t *testing.T) {
	g, err := New([]Entry{
		{Name: "chennai", Region: model.NewRegion(80.0, 12.8, 80.3, 13.2)},
		{Name: "kerala", Region: model.NewRegion(74.0, 8.0, 77.5, 12.8)},
	}, map[string]string{"madras": "chennai"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gazetteer.yaml")
	require.NoError(t, WriteFile(path, g))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.Len(), loaded.Len())

	r, ok := loaded.Lookup("chennai")
	require.True(t, ok)
	assert.Equal(t, model.NewRegion(80.0, 12.8, 80.3, 13.2), r)

	canonical, ok := loaded.Canonical("madras")
	require.True(t, ok)
	assert.Equal(t, "chennai", canonical)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

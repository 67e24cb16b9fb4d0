package classifier

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRules(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestLoadRuleFile(t *testing.T) {
	path := writeRules(t, `
rules:
  flood_risk:
    criteria:
      - name: very_low_elevation
        predicate: {layer: elevation, op: lt, value: 5}
        weight: 2
      - name: moderate_aspect
        predicate: {layer: aspect, op: between, value: 135, high: 225}
        weight: 0.5
    bands:
      - {min_score: 2, zone: 2, label: high}
      - {min_score: 1, zone: 1, label: low}
      - {min_score: -.inf, zone: 0, label: none}
`)

	rules, err := LoadRuleFile(path)
	require.NoError(t, err)
	require.Contains(t, rules, "flood_risk")

	rs := rules["flood_risk"]
	require.Len(t, rs.Criteria, 2)
	assert.Equal(t, "elevation", rs.Criteria[0].Predicate.Layer)
	assert.Equal(t, OpLT, rs.Criteria[0].Predicate.Op)
	assert.InDelta(t, 0.5, rs.Criteria[1].Weight, 1e-9)
	assert.InDelta(t, 225, rs.Criteria[1].Predicate.High, 1e-9)

	require.Len(t, rs.Bands, 3)
	assert.True(t, math.IsInf(rs.Bands[2].MinScore, -1))
	assert.NoError(t, ValidateBands(rs.Bands))
}

func TestLoadRuleFileRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			"missing floor band",
			`
rules:
  flood_risk:
    criteria:
      - name: a
        predicate: {layer: elevation, op: lt, value: 5}
        weight: 1
    bands:
      - {min_score: 1, zone: 1}
      - {min_score: 0, zone: 0}
`,
		},
		{
			"unknown op",
			`
rules:
  flood_risk:
    criteria:
      - name: a
        predicate: {layer: elevation, op: eq, value: 5}
        weight: 1
    bands:
      - {min_score: -.inf, zone: 0}
`,
		},
		{
			"criterion without layer",
			`
rules:
  flood_risk:
    criteria:
      - name: a
        predicate: {op: lt, value: 5}
        weight: 1
    bands:
      - {min_score: -.inf, zone: 0}
`,
		},
		{
			"no criteria",
			`
rules:
  flood_risk:
    bands:
      - {min_score: -.inf, zone: 0}
`,
		},
		{"no rule sets", `rules: {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRuleFile(writeRules(t, tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadRuleFileMissing(t *testing.T) {
	_, err := LoadRuleFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.False(t, eris.Is(err, ErrBandTable))
}

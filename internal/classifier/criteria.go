// Package classifier implements the multi-criteria raster classification
// engine: a declarative table of weighted per-cell predicates accumulated
// into a signed score, discretized into zones by an ordered band table.
package classifier

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Op is a per-cell comparison operator.
type Op string

const (
	OpLT      Op = "lt"
	OpGT      Op = "gt"
	OpBetween Op = "between"
)

// Predicate is a boolean test of one layer's cell value against literal
// thresholds.
type Predicate struct {
	Layer string  `yaml:"layer" json:"layer"`
	Op    Op      `yaml:"op" json:"op"`
	Value float64 `yaml:"value" json:"value"`
	// High is the exclusive upper bound for OpBetween; ignored otherwise.
	High float64 `yaml:"high,omitempty" json:"high,omitempty"`
}

// Eval applies the predicate to a single cell value.
func (p Predicate) Eval(v float64) bool {
	switch p.Op {
	case OpLT:
		return v < p.Value
	case OpGT:
		return v > p.Value
	case OpBetween:
		return v > p.Value && v < p.High
	}
	return false
}

// Criterion is one weighted rule. Weight is signed and may be a half-integer;
// negative weights are penalties.
type Criterion struct {
	Name      string    `yaml:"name" json:"name"`
	Predicate Predicate `yaml:"predicate" json:"predicate"`
	Weight    float64   `yaml:"weight" json:"weight"`
}

// Band maps a score range to a zone id. A cell whose score is >= MinScore
// falls into the first (highest-MinScore) matching band.
type Band struct {
	MinScore float64 `yaml:"min_score" json:"min_score"`
	Zone     int     `yaml:"zone" json:"zone"`
	Label    string  `yaml:"label" json:"label"`
}

// ErrBandTable indicates a band table that does not partition the score line.
var ErrBandTable = eris.New("classifier: band table not total")

// ValidateBands checks that bands are ordered by strictly descending
// MinScore and that the final band catches every possible score. Totality is
// an authoring invariant of the table; it is checked once at construction,
// not per cell.
func ValidateBands(bands []Band) error {
	if len(bands) == 0 {
		return eris.Wrap(ErrBandTable, "empty")
	}
	for i := 1; i < len(bands); i++ {
		if !(bands[i].MinScore < bands[i-1].MinScore) {
			return eris.Wrap(ErrBandTable, fmt.Sprintf("bands %d and %d not strictly descending", i-1, i))
		}
	}
	last := bands[len(bands)-1]
	if !isNegInf(last.MinScore) {
		return eris.Wrap(ErrBandTable, fmt.Sprintf("lowest band starts at %g, want -Inf floor", last.MinScore))
	}
	return nil
}

// zoneFor scans bands highest threshold first and returns the zone of the
// first band whose lower bound is <= score. ValidateBands guarantees a match.
func zoneFor(bands []Band, score float64) int {
	for _, b := range bands {
		if score >= b.MinScore {
			return b.Zone
		}
	}
	// Unreachable for a validated table.
	return bands[len(bands)-1].Zone
}

func isNegInf(v float64) bool { return v < 0 && v*2 == v }

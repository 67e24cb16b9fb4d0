package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrInvalidTimePeriod indicates a time period string that does not parse
// into two 4-digit years. This is a caller error and is surfaced before any
// layer is requested.
var ErrInvalidTimePeriod = eris.New("model: invalid time period format, want \"<startYear>-<endYear>\"")

// TimePeriod is an inclusive year range for an analysis.
type TimePeriod struct {
	StartYear int `json:"start_year"`
	EndYear   int `json:"end_year"`
}

// ParseTimePeriod parses "<startYear>-<endYear>" by splitting on the first
// '-'. Both parts must be 4-digit years.
func ParseTimePeriod(s string) (TimePeriod, error) {
	start, end, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return TimePeriod{}, eris.Wrap(ErrInvalidTimePeriod, s)
	}
	sy, err := parseYear(start)
	if err != nil {
		return TimePeriod{}, eris.Wrap(ErrInvalidTimePeriod, s)
	}
	ey, err := parseYear(end)
	if err != nil {
		return TimePeriod{}, eris.Wrap(ErrInvalidTimePeriod, s)
	}
	return TimePeriod{StartYear: sy, EndYear: ey}, nil
}

func parseYear(s string) (int, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("year %q is not 4 digits", s)
	}
	return strconv.Atoi(s)
}

func (tp TimePeriod) String() string {
	return fmt.Sprintf("%04d-%04d", tp.StartYear, tp.EndYear)
}

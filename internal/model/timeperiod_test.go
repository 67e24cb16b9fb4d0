package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotisserie/eris"
)

func TestParseTimePeriod(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{"valid range", "2020-2023", 2020, 2023, false},
		{"valid older range", "2015-2023", 2015, 2023, false},
		{"whitespace trimmed", "  2020-2023  ", 2020, 2023, false},
		{"single year", "2020", 0, 0, true},
		{"empty", "", 0, 0, true},
		{"missing end", "2020-", 0, 0, true},
		{"missing start", "-2023", 0, 0, true},
		{"two digit year", "20-2023", 0, 0, true},
		{"five digit year", "20200-2023", 0, 0, true},
		{"non numeric", "abcd-efgh", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := ParseTimePeriod(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, eris.Is(err, ErrInvalidTimePeriod))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, tp.StartYear)
			assert.Equal(t, tt.wantEnd, tp.EndYear)
		})
	}
}

func TestTimePeriodString(t *testing.T) {
	tp := TimePeriod{StartYear: 2020, EndYear: 2023}
	assert.Equal(t, "2020-2023", tp.String())
}

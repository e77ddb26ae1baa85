package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRange(t *testing.T) {
	now := time.Date(2024, 5, 31, 15, 4, 5, 0, time.UTC)
	endWant := time.Date(2024, 5, 31, 23, 59, 59, 999000000, time.UTC)

	cases := []struct {
		period Period
		start  time.Time
	}{
		{Today, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)},
		{Week, time.Date(2024, 5, 24, 0, 0, 0, 0, time.UTC)},
		{Month, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}, // April 31 normalizes to May 1
		{Quarter, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		{Year, time.Date(2023, 5, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(string(tc.period), func(t *testing.T) {
			start, end, err := DateRange(tc.period, now)
			require.NoError(t, err)
			assert.True(t, tc.start.Equal(start), "start %v", start)
			assert.True(t, endWant.Equal(end), "end %v", end)
		})
	}
}

func TestDateRange_Unknown(t *testing.T) {
	_, _, err := DateRange(Period("decade"), time.Now())
	assert.True(t, errors.Is(err, ErrUnknownPeriod))
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod(" Month ")
	require.NoError(t, err)
	assert.Equal(t, Month, p)

	_, err = ParsePeriod("fortnight")
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		since     string
		until     string
		wantSince *time.Time
		wantUntil *time.Time
		wantErr   bool
	}{
		{
			name: "both empty",
		},
		{
			name:      "since only",
			since:     "2024-03-01",
			wantSince: timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:      "until only, end of day",
			until:     "2024-03-31",
			wantUntil: timePtr(time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC)),
		},
		{
			name:      "both bounds",
			since:     "2024-01-01",
			until:     "2024-01-01",
			wantSince: timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			wantUntil: timePtr(time.Date(2024, 1, 1, 23, 59, 59, 999999999, time.UTC)),
		},
		{
			name:    "invalid since",
			since:   "01-01-2024",
			wantErr: true,
		},
		{
			name:    "invalid until",
			until:   "not a date",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateRange(tt.since, tt.until)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidDateFormatError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSince, got.Since)
			assert.Equal(t, tt.wantUntil, got.Until)
		})
	}
}

func TestDateRangeContains(t *testing.T) {
	t.Parallel()

	r, err := ParseDateRange("2024-01-10", "2024-01-20")
	require.NoError(t, err)

	assert.False(t, r.Contains(time.Date(2024, 1, 9, 23, 59, 59, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)))
	// Until is inclusive for the whole day.
	assert.True(t, r.Contains(time.Date(2024, 1, 20, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)))
}

func TestDateRangeContainsUnbounded(t *testing.T) {
	t.Parallel()

	var r DateRange
	assert.True(t, r.IsZero())
	assert.True(t, r.Contains(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2999, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDateRangeSinceAfterUntilMatchesNothing(t *testing.T) {
	t.Parallel()

	r, err := ParseDateRange("2024-02-01", "2024-01-01")
	require.NoError(t, err)

	assert.False(t, r.Contains(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)))
}

func timePtr(t time.Time) *time.Time {
	return &t
}

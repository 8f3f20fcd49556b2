package types

import (
	"testing"
	"time"

	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2025-01-01", "2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, time.January, r.StartDate.Month())
	assert.Equal(t, 31, r.EndDate.Day())

	_, err = ParseDateRange("01/01/2025", "2025-03-31")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestParseDateRangeEndBeforeStart(t *testing.T) {
	_, err := ParseDateRange("2025-04-01", "2025-03-31")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestDateRangeSpanCap(t *testing.T) {
	// Exactly five years is allowed.
	_, err := ParseDateRange("2020-01-01", "2025-01-01")
	assert.NoError(t, err)

	// A day over the cap is rejected at the input boundary.
	_, err = ParseDateRange("2020-01-01", "2025-01-02")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestNewDateRangeFromPreset(t *testing.T) {
	now := time.Date(2025, time.August, 26, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		preset    DateRangePreset
		wantStart string
		wantEnd   string
	}{
		{DateRangePresetCurrentMonth, "2025-08-01", "2025-08-26"},
		{DateRangePresetLast3Months, "2025-06-01", "2025-08-26"},
		{DateRangePresetLast6Months, "2025-03-01", "2025-08-26"},
		{DateRangePresetYearToDate, "2025-01-01", "2025-08-26"},
		{DateRangePresetLastYear, "2024-01-01", "2024-12-31"},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			r, err := NewDateRangeFromPreset(tt.preset, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, r.StartDate.Format(DateFormat))
			assert.Equal(t, tt.wantEnd, r.EndDate.Format(DateFormat))
		})
	}

	_, err := NewDateRangeFromPreset("all_time", now)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestDateRangePresetAcrossYearBoundary(t *testing.T) {
	// Last 3 months from mid-January reaches back into the previous year.
	now := time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)
	r, err := NewDateRangeFromPreset(DateRangePresetLast3Months, now)
	require.NoError(t, err)
	assert.Equal(t, "2024-11-01", r.StartDate.Format(DateFormat))
}

func TestDateRangeContains(t *testing.T) {
	r, err := ParseDateRange("2025-01-01", "2025-01-31")
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2025, time.January, 31, 23, 0, 0, 0, time.UTC)),
		"end bound is inclusive through the whole end date")
	assert.True(t, r.Contains(r.StartDate))
	assert.False(t, r.Contains(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC)))
}

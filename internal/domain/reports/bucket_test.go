package reports

import (
	"testing"
	"time"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func dateRange(start, end string) types.DateRange {
	return types.DateRange{StartDate: date(start), EndDate: date(end)}
}

func TestMonthlyBuckets(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantKeys  []string
		wantFirst string
		wantLast  string
	}{
		{
			name:     "single month when start and end share a month",
			start:    "2025-03-05",
			end:      "2025-03-28",
			wantKeys: []string{"2025-03"},
		},
		{
			name:     "quarter yields three buckets including the empty middle",
			start:    "2025-01-01",
			end:      "2025-03-31",
			wantKeys: []string{"2025-01", "2025-02", "2025-03"},
		},
		{
			name:     "year boundary does not skip a month",
			start:    "2024-12-15",
			end:      "2025-02-10",
			wantKeys: []string{"2024-12", "2025-01", "2025-02"},
		},
		{
			name:  "full year has twelve buckets with no drift",
			start: "2024-01-01",
			end:   "2024-12-31",
			wantKeys: []string{
				"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06",
				"2024-07", "2024-08", "2024-09", "2024-10", "2024-11", "2024-12",
			},
		},
		{
			name:     "start on the 31st still steps whole calendar months",
			start:    "2025-01-31",
			end:      "2025-04-02",
			wantKeys: []string{"2025-01", "2025-02", "2025-03", "2025-04"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := MonthlyBuckets(dateRange(tt.start, tt.end))
			require.Len(t, buckets, len(tt.wantKeys))

			seen := map[string]bool{}
			for i, b := range buckets {
				assert.Equal(t, tt.wantKeys[i], b.Key)
				assert.False(t, seen[b.Key], "duplicate bucket key %s", b.Key)
				seen[b.Key] = true

				assert.Equal(t, 1, b.PeriodStart.Day())
				assert.Equal(t, b.Key, b.PeriodStart.Format(BucketKeyFormat))
				assert.Equal(t, b.Key, b.PeriodEnd.Format(BucketKeyFormat))
				assert.True(t, b.Revenue.IsZero())
				assert.Zero(t, b.PaymentCount)
			}
		})
	}
}

func TestMonthlyBucketsLabels(t *testing.T) {
	buckets := MonthlyBuckets(dateRange("2024-11-10", "2025-01-20"))
	require.Len(t, buckets, 3)
	assert.Equal(t, "Nov 2024", buckets[0].Label)
	assert.Equal(t, "Dec 2024", buckets[1].Label)
	assert.Equal(t, "Jan 2025", buckets[2].Label)
}

func TestMonthlyBucketsPeriodBounds(t *testing.T) {
	buckets := MonthlyBuckets(dateRange("2024-02-10", "2024-02-20"))
	require.Len(t, buckets, 1)
	assert.Equal(t, date("2024-02-01"), buckets[0].PeriodStart)
	// 2024 is a leap year.
	assert.Equal(t, date("2024-02-29"), buckets[0].PeriodEnd)
}

func TestMonthlyBucketsInvertedRange(t *testing.T) {
	assert.Nil(t, MonthlyBuckets(dateRange("2025-05-01", "2025-04-30")))
	assert.Nil(t, MonthlyBuckets(types.DateRange{}))
}

func TestMonthlyBucketsLengthProperty(t *testing.T) {
	// length == monthsBetween(start, end) + 1 for a five year span.
	buckets := MonthlyBuckets(dateRange("2020-06-15", "2025-06-14"))
	assert.Len(t, buckets, 61)
	for i := 1; i < len(buckets); i++ {
		prev := buckets[i-1].PeriodStart
		assert.Equal(t, prev.AddDate(0, 1, 0), buckets[i].PeriodStart,
			"buckets must be strictly increasing by one calendar month")
	}
}

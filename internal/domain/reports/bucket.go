package reports

import (
	"time"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
	"github.com/shopspring/decimal"
)

const (
	// BucketKeyFormat is the canonical YYYY-MM grouping key.
	BucketKeyFormat = "2006-01"
	// BucketLabelFormat is the human-readable month label.
	BucketLabelFormat = "Jan 2006"
)

// Bucket is a single calendar-month aggregation unit within a reporting
// period. Buckets are transient: they exist only for the lifetime of one
// report computation and are rebuilt from scratch on every request.
type Bucket struct {
	Key          string          `json:"key"`
	Label        string          `json:"label"`
	PeriodStart  time.Time       `json:"period_start"`
	PeriodEnd    time.Time       `json:"period_end"`
	Revenue      decimal.Decimal `json:"revenue"`
	PaymentCount int             `json:"payment_count"`
	AmountDue    decimal.Decimal `json:"amount_due"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	Outstanding  decimal.Decimal `json:"outstanding"`
}

// MonthlyBuckets produces one bucket per calendar month from the start
// month through the end month inclusive, with no gaps and no duplicates.
// A range inside a single month yields exactly one bucket. Returns nil when
// the range is inverted or incomplete.
//
// Iteration steps by one calendar month from the first of the month, never
// by a fixed number of days, so year boundaries and short months cannot
// cause drift or skipped months.
func MonthlyBuckets(r types.DateRange) []*Bucket {
	if r.StartDate.IsZero() || r.EndDate.IsZero() || r.EndDate.Before(r.StartDate) {
		return nil
	}

	cur := firstOfMonth(r.StartDate)
	last := firstOfMonth(r.EndDate)

	var buckets []*Bucket
	for !cur.After(last) {
		buckets = append(buckets, &Bucket{
			Key:         cur.Format(BucketKeyFormat),
			Label:       cur.Format(BucketLabelFormat),
			PeriodStart: cur,
			PeriodEnd:   cur.AddDate(0, 1, -1),
			Revenue:     decimal.Zero,
			AmountDue:   decimal.Zero,
			AmountPaid:  decimal.Zero,
			Outstanding: decimal.Zero,
		})
		cur = cur.AddDate(0, 1, 0)
	}
	return buckets
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

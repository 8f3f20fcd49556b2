package reports

import (
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/invoice"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/payment"
	"github.com/shopspring/decimal"
)

// indexBuckets builds a month-key lookup over the ordered bucket sequence.
func indexBuckets(buckets []*Bucket) map[string]*Bucket {
	idx := make(map[string]*Bucket, len(buckets))
	for _, b := range buckets {
		idx[b.Key] = b
	}
	return idx
}

// AggregatePayments folds payments into the buckets by the payment date's
// truncated month key. Payments whose month has no matching bucket are
// silently dropped; they are never double-counted into an edge bucket.
func AggregatePayments(buckets []*Bucket, payments []*payment.Payment) {
	idx := indexBuckets(buckets)
	for _, p := range payments {
		b, ok := idx[p.PaymentDate.Format(BucketKeyFormat)]
		if !ok {
			continue
		}
		b.Revenue = b.Revenue.Add(p.Amount)
		b.PaymentCount++
	}
}

// AggregateInvoices folds rent invoices into the buckets by the due date's
// truncated month key, accumulating amounts due, amounts paid and the
// outstanding remainder. Outstanding is clamped at zero per invoice, so an
// overpaid invoice never reduces the bucket's outstanding total.
func AggregateInvoices(buckets []*Bucket, invoices []*invoice.Invoice) {
	idx := indexBuckets(buckets)
	for _, inv := range invoices {
		b, ok := idx[inv.DueDate.Format(BucketKeyFormat)]
		if !ok {
			continue
		}
		b.AmountDue = b.AmountDue.Add(inv.AmountDue)
		b.AmountPaid = b.AmountPaid.Add(inv.AmountPaid)
		b.Outstanding = b.Outstanding.Add(inv.Outstanding())
	}
}

// Totals holds the sums across an entire bucket sequence.
type Totals struct {
	Revenue      decimal.Decimal `json:"revenue"`
	PaymentCount int             `json:"payment_count"`
	AmountDue    decimal.Decimal `json:"amount_due"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	Outstanding  decimal.Decimal `json:"outstanding"`
}

// SumBuckets reduces the bucket sequence to range-wide totals.
func SumBuckets(buckets []*Bucket) Totals {
	t := Totals{
		Revenue:     decimal.Zero,
		AmountDue:   decimal.Zero,
		AmountPaid:  decimal.Zero,
		Outstanding: decimal.Zero,
	}
	for _, b := range buckets {
		t.Revenue = t.Revenue.Add(b.Revenue)
		t.PaymentCount += b.PaymentCount
		t.AmountDue = t.AmountDue.Add(b.AmountDue)
		t.AmountPaid = t.AmountPaid.Add(b.AmountPaid)
		t.Outstanding = t.Outstanding.Add(b.Outstanding)
	}
	return t
}

package invoice

import (
	"time"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice is a rent invoice for a unit and billing period. InvoiceStatus is
// derived by the billing backend; this service only reads it.
type Invoice struct {
	ID            string              `json:"id"`
	UnitID        string              `json:"unit_id"`
	TenantID      string              `json:"tenant_id"`
	PeriodStart   time.Time           `json:"period_start"`
	PeriodEnd     time.Time           `json:"period_end"`
	DueDate       time.Time           `json:"due_date"`
	AmountDue     decimal.Decimal     `json:"amount_due"`
	AmountPaid    decimal.Decimal     `json:"amount_paid"`
	InvoiceStatus types.InvoiceStatus `json:"invoice_status"`
	PaidAt        *time.Time          `json:"paid_at,omitempty"`
	types.BaseModel
}

// Outstanding returns the unpaid remainder, clamped at zero. Overpaid
// invoices never contribute a negative balance.
func (i *Invoice) Outstanding() decimal.Decimal {
	outstanding := i.AmountDue.Sub(i.AmountPaid)
	if outstanding.IsPositive() {
		return outstanding
	}
	return decimal.Zero
}

// IsPaidOnTime reports whether the invoice was fully settled by its due
// date. Invoices the billing backend never marked paid are not on time.
func (i *Invoice) IsPaidOnTime() bool {
	if i.InvoiceStatus != types.InvoiceStatusPaid || i.PaidAt == nil {
		return false
	}
	return !i.PaidAt.After(i.DueDate)
}

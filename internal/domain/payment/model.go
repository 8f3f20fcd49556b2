package payment

import (
	"time"

	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
	"github.com/shopspring/decimal"
)

// Payment is a recorded rent payment. Payments are immutable in this
// system's view: once recorded they are never updated or deleted here.
type Payment struct {
	ID          string              `json:"id"`
	TenantID    string              `json:"tenant_id"`
	UnitID      string              `json:"unit_id"`
	Amount      decimal.Decimal     `json:"amount"`
	PaymentDate time.Time           `json:"payment_date"`
	Method      types.PaymentMethod `json:"method"`
	TxnRef      string              `json:"txn_ref,omitempty"`
	types.BaseModel
}

// Validate validates the payment before it is persisted.
func (p *Payment) Validate() error {
	if p.TenantID == "" {
		return ierr.NewError("tenant_id is required").
			WithHint("Payment must reference a tenant").
			Mark(ierr.ErrValidation)
	}
	if p.Amount.IsZero() || p.Amount.IsNegative() {
		return ierr.NewError("amount must be positive").
			WithHint("Payment amount must be greater than zero").
			WithReportableDetails(map[string]interface{}{
				"amount": p.Amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if p.PaymentDate.IsZero() {
		return ierr.NewError("payment_date is required").
			WithHint("Payment must carry the date it was made").
			Mark(ierr.ErrValidation)
	}
	if err := p.Method.Validate(); err != nil {
		return err
	}
	return nil
}

package types

import (
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
)

// PaymentMethod enumerates how rent was paid.
type PaymentMethod string

const (
	PaymentMethodMpesa        PaymentMethod = "MPESA"
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCheque       PaymentMethod = "CHEQUE"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodMpesa,
		PaymentMethodCash,
		PaymentMethodBankTransfer,
		PaymentMethodCheque,
		PaymentMethodOther:
		return nil
	}
	return ierr.NewErrorf("invalid payment method: %s", m).
		WithHint("method must be one of MPESA, CASH, BANK_TRANSFER, CHEQUE, OTHER").
		Mark(ierr.ErrValidation)
}

// PaymentFilter represents the filter options for payments.
type PaymentFilter struct {
	*QueryFilter
	*TimeRangeFilter
	TenantIDs  []string        `json:"tenant_ids,omitempty" form:"tenant_ids"`
	UnitIDs    []string        `json:"unit_ids,omitempty" form:"unit_ids"`
	Methods    []PaymentMethod `json:"methods,omitempty" form:"methods"`
	PropertyID string          `json:"property_id,omitempty" form:"property_id"`
}

// NewPaymentFilter creates a payment filter with default pagination.
func NewPaymentFilter() *PaymentFilter {
	return &PaymentFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// NewNoLimitPaymentFilter creates an unpaginated payment filter for report
// aggregation.
func NewNoLimitPaymentFilter() *PaymentFilter {
	return &PaymentFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *PaymentFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if err := f.TimeRangeFilter.Validate(); err != nil {
		return err
	}
	for _, m := range f.Methods {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

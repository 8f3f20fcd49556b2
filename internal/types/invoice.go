package types

import (
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
)

// InvoiceStatus enumerates rent invoice payment states. The status is
// derived server-side by the billing backend; this service only reads it.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusPartial InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusOverdue:
		return nil
	}
	return ierr.NewErrorf("invalid invoice status: %s", s).
		WithHint("status must be one of PENDING, PARTIAL, PAID, OVERDUE").
		Mark(ierr.ErrValidation)
}

// InvoiceFilter represents the filter options for rent invoices.
type InvoiceFilter struct {
	*QueryFilter
	*TimeRangeFilter
	TenantIDs       []string        `json:"tenant_ids,omitempty" form:"tenant_ids"`
	UnitIDs         []string        `json:"unit_ids,omitempty" form:"unit_ids"`
	InvoiceStatuses []InvoiceStatus `json:"invoice_statuses,omitempty" form:"invoice_statuses"`
	PropertyID      string          `json:"property_id,omitempty" form:"property_id"`
}

// NewInvoiceFilter creates an invoice filter with default pagination.
func NewInvoiceFilter() *InvoiceFilter {
	return &InvoiceFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// NewNoLimitInvoiceFilter creates an unpaginated invoice filter for report
// aggregation.
func NewNoLimitInvoiceFilter() *InvoiceFilter {
	return &InvoiceFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *InvoiceFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if err := f.TimeRangeFilter.Validate(); err != nil {
		return err
	}
	for _, s := range f.InvoiceStatuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

package dto

import (
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/invoice"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// ListInvoicesRequest filters the invoice listing.
type ListInvoicesRequest struct {
	DateRangeRequest
	TenantID   string `form:"tenant_id" json:"tenant_id,omitempty"`
	UnitID     string `form:"unit_id" json:"unit_id,omitempty"`
	PropertyID string `form:"property_id" json:"property_id,omitempty"`
	Status     string `form:"status" json:"status,omitempty"`
	Limit      *int   `form:"limit" json:"limit,omitempty"`
	Offset     *int   `form:"offset" json:"offset,omitempty"`
}

// ToFilter builds the repository filter for the listing.
func (r *ListInvoicesRequest) ToFilter(dateRange types.DateRange) *types.InvoiceFilter {
	filter := types.NewInvoiceFilter()
	if r.Limit != nil {
		filter.QueryFilter.Limit = r.Limit
	}
	if r.Offset != nil {
		filter.QueryFilter.Offset = r.Offset
	}
	filter.TimeRangeFilter = &types.TimeRangeFilter{
		StartTime: &dateRange.StartDate,
		EndTime:   &dateRange.EndDate,
	}
	if r.TenantID != "" {
		filter.TenantIDs = []string{r.TenantID}
	}
	if r.UnitID != "" {
		filter.UnitIDs = []string{r.UnitID}
	}
	if r.PropertyID != "" {
		filter.PropertyID = r.PropertyID
	}
	if r.Status != "" {
		filter.InvoiceStatuses = []types.InvoiceStatus{types.InvoiceStatus(r.Status)}
	}
	return filter
}

// InvoiceResponse is the wire shape of an invoice, with the clamped
// outstanding balance precomputed.
type InvoiceResponse struct {
	*invoice.Invoice
	Outstanding string `json:"outstanding"`
}

func NewInvoiceResponse(inv *invoice.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		Invoice:     inv,
		Outstanding: inv.Outstanding().Round(2).String(),
	}
}

// ListInvoicesResponse is a paginated invoice listing.
type ListInvoicesResponse struct {
	Items []*InvoiceResponse `json:"items"`
	Total int                `json:"total"`
}

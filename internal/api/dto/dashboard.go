package dto

import (
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// GetDashboardRequest selects the dashboard window.
type GetDashboardRequest struct {
	DateRangeRequest
}

// DashboardResponse combines the overview sections. Sections that failed
// to load are omitted; the dashboard itself never errors on a partial
// failure.
type DashboardResponse struct {
	DateRange        DateRangeResponse           `json:"date_range"`
	FinancialSummary *FinancialSummary           `json:"financial_summary,omitempty"`
	Occupancy        *OccupancyReportResponse    `json:"occupancy,omitempty"`
	RecentPayments   []*PaymentResponse          `json:"recent_payments,omitempty"`
	InvoiceStatus    map[types.InvoiceStatus]int `json:"invoice_status,omitempty"`
}

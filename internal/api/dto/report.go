package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/reports"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// GetFinancialReportRequest selects the financial report window.
type GetFinancialReportRequest struct {
	DateRangeRequest
	PropertyID string `form:"property_id" json:"property_id,omitempty"`
}

// DateRangeResponse echoes the resolved reporting window.
type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func NewDateRangeResponse(r types.DateRange) DateRangeResponse {
	return DateRangeResponse{
		StartDate: r.StartDate.Format(types.DateFormat),
		EndDate:   r.EndDate.Format(types.DateFormat),
	}
}

// BucketResponse is one calendar month of the report.
type BucketResponse struct {
	Key           string          `json:"key"`
	Label         string          `json:"label"`
	Revenue       decimal.Decimal `json:"revenue"`
	PaymentCount  int             `json:"payment_count"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	GrowthPercent decimal.Decimal `json:"growth_percent"`
}

// NewBucketResponses converts aggregated buckets, computing month over
// month revenue growth. The first bucket has no predecessor so its
// growth is zero.
func NewBucketResponses(buckets []*reports.Bucket) []BucketResponse {
	out := make([]BucketResponse, 0, len(buckets))
	for i, b := range buckets {
		growth := decimal.Zero
		if i > 0 {
			growth = reports.GrowthPercent(b.Revenue, buckets[i-1].Revenue)
		}
		out = append(out, BucketResponse{
			Key:           b.Key,
			Label:         b.Label,
			Revenue:       b.Revenue.Round(2),
			PaymentCount:  b.PaymentCount,
			AmountDue:     b.AmountDue.Round(2),
			AmountPaid:    b.AmountPaid.Round(2),
			Outstanding:   b.Outstanding.Round(2),
			GrowthPercent: growth.Round(2),
		})
	}
	return out
}

// FinancialSummary carries the range totals and derived metrics.
type FinancialSummary struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalDue         decimal.Decimal `json:"total_due"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetIncome        decimal.Decimal `json:"net_income"`
	CollectionRate   decimal.Decimal `json:"collection_rate"`
	AveragePayment   decimal.Decimal `json:"average_payment"`
	PaymentCount     int             `json:"payment_count"`
	// Expense tracking is not implemented; expenses are always zero and
	// net income equals revenue.
	ExpensesTracked bool `json:"expenses_tracked"`
}

// FinancialReportResponse is the bucketed financial report.
type FinancialReportResponse struct {
	DateRange DateRangeResponse `json:"date_range"`
	Buckets   []BucketResponse  `json:"buckets"`
	Summary   FinancialSummary  `json:"summary"`
}

// GetOccupancyReportRequest selects the occupancy report window.
type GetOccupancyReportRequest struct {
	DateRangeRequest
	PropertyID string `form:"property_id" json:"property_id,omitempty"`
}

// PropertyOccupancy is one property's occupancy position.
type PropertyOccupancy struct {
	PropertyID    string          `json:"property_id"`
	PropertyName  string          `json:"property_name"`
	TotalUnits    int             `json:"total_units"`
	OccupiedUnits int             `json:"occupied_units"`
	OccupancyRate decimal.Decimal `json:"occupancy_rate"`
}

// OccupancyTrendPoint is one month of the occupancy trend, counting
// tenancies that overlap the month.
type OccupancyTrendPoint struct {
	Period        string          `json:"period"`
	PeriodLabel   string          `json:"period_label"`
	OccupiedUnits int             `json:"occupied_units"`
	OccupancyRate decimal.Decimal `json:"occupancy_rate"`
}

// OccupancyReportResponse is the occupancy report.
type OccupancyReportResponse struct {
	DateRange     DateRangeResponse     `json:"date_range"`
	TotalUnits    int                   `json:"total_units"`
	OccupiedUnits int                   `json:"occupied_units"`
	OccupancyRate decimal.Decimal       `json:"occupancy_rate"`
	Properties    []PropertyOccupancy   `json:"properties"`
	Trend         []OccupancyTrendPoint `json:"trend"`
}

// GetTenantAnalyticsRequest selects the tenant analytics window.
type GetTenantAnalyticsRequest struct {
	DateRangeRequest
	PropertyID string `form:"property_id" json:"property_id,omitempty"`
}

// TenantAggregateResponse is one tenant's payment position.
type TenantAggregateResponse struct {
	TenantID           string          `json:"tenant_id"`
	TenantName         string          `json:"tenant_name"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	PaymentCount       int             `json:"payment_count"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	LastPaymentDate    *time.Time      `json:"last_payment_date,omitempty"`
	RiskScore          decimal.Decimal `json:"risk_score"`
	RiskLevel          types.RiskLevel `json:"risk_level,omitempty"`
}

func NewTenantAggregateResponse(a *reports.TenantAggregate) TenantAggregateResponse {
	resp := TenantAggregateResponse{
		TenantID:           a.TenantID,
		TenantName:         a.TenantName,
		TotalPaid:          a.TotalPaid.Round(2),
		PaymentCount:       a.PaymentCount,
		OutstandingBalance: a.OutstandingBalance.Round(2),
		RiskScore:          a.RiskScore.Round(2),
		RiskLevel:          a.RiskLevel,
	}
	if !a.LastPaymentDate.IsZero() {
		last := a.LastPaymentDate
		resp.LastPaymentDate = &last
	}
	return resp
}

// TenantAnalyticsResponse is the tenant analytics report.
type TenantAnalyticsResponse struct {
	DateRange         DateRangeResponse         `json:"date_range"`
	TopTenants        []TenantAggregateResponse `json:"top_tenants"`
	HighRiskTenants   []TenantAggregateResponse `json:"high_risk_tenants"`
	MediumRiskTenants []TenantAggregateResponse `json:"medium_risk_tenants"`
	RetentionRate     decimal.Decimal           `json:"retention_rate"`
	OnTimeRate        decimal.Decimal           `json:"on_time_rate"`
	TenantCount       int                       `json:"tenant_count"`
}

// GetPropertyPerformanceRequest selects the property performance window.
type GetPropertyPerformanceRequest struct {
	DateRangeRequest
}

// PropertyPerformanceResponse ranks properties by revenue.
type PropertyPerformanceResponse struct {
	DateRange  DateRangeResponse           `json:"date_range"`
	Properties []PropertyAggregateResponse `json:"properties"`
}

// PropertyAggregateResponse is one property's performance position.
type PropertyAggregateResponse struct {
	PropertyID     string          `json:"property_id"`
	PropertyName   string          `json:"property_name"`
	Revenue        decimal.Decimal `json:"revenue"`
	AmountDue      decimal.Decimal `json:"amount_due"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	CollectionRate decimal.Decimal `json:"collection_rate"`
	TotalUnits     int             `json:"total_units"`
	OccupiedUnits  int             `json:"occupied_units"`
	OccupancyRate  decimal.Decimal `json:"occupancy_rate"`
}

func NewPropertyAggregateResponse(a *reports.PropertyAggregate) PropertyAggregateResponse {
	return PropertyAggregateResponse{
		PropertyID:     a.PropertyID,
		PropertyName:   a.PropertyName,
		Revenue:        a.Revenue.Round(2),
		AmountDue:      a.AmountDue.Round(2),
		AmountPaid:     a.AmountPaid.Round(2),
		CollectionRate: a.CollectionRate.Round(2),
		TotalUnits:     a.TotalUnits,
		OccupiedUnits:  a.OccupiedUnits,
		OccupancyRate:  a.OccupancyRate.Round(2),
	}
}

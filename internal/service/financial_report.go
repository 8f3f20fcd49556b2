package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/cache"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/invoice"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/payment"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/reports"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

const financialReportCachePrefix = "report:financial"

// financialReportCacheScope is the key prefix covering every cached
// financial report for one landlord. Payment creation deletes by this
// prefix to invalidate stale reports.
func financialReportCacheScope(landlordID string) string {
	return fmt.Sprintf("%s:%s", financialReportCachePrefix, landlordID)
}

func financialReportCacheKey(landlordID string, r types.DateRange, propertyID string) string {
	return fmt.Sprintf("%s:%s:%s:%s",
		financialReportCacheScope(landlordID),
		r.StartDate.Format(time.DateOnly),
		r.EndDate.Format(time.DateOnly),
		propertyID,
	)
}

// FinancialReportService computes the bucketed financial report.
type FinancialReportService interface {
	GetFinancialReport(ctx context.Context, req dto.GetFinancialReportRequest) (*dto.FinancialReportResponse, error)
}

type financialReportService struct {
	ServiceParams
}

func NewFinancialReportService(params ServiceParams) FinancialReportService {
	return &financialReportService{
		ServiceParams: params,
	}
}

func (s *financialReportService) GetFinancialReport(ctx context.Context, req dto.GetFinancialReportRequest) (*dto.FinancialReportResponse, error) {
	dateRange, err := req.Resolve(time.Now().UTC())
	if err != nil {
		return nil, err
	}

	cacheKey := financialReportCacheKey(types.GetLandlordID(ctx), dateRange, req.PropertyID)
	if s.Cache != nil {
		if val, found := s.Cache.Get(ctx, cacheKey); found {
			if cached, ok := cache.UnmarshalCacheValue[dto.FinancialReportResponse](val); ok {
				return cached, nil
			}
		}
	}

	buckets := reports.MonthlyBuckets(dateRange)
	payments := s.fetchPayments(ctx, dateRange, req.PropertyID)
	invoices := s.fetchInvoices(ctx, dateRange, req.PropertyID)

	reports.AggregatePayments(buckets, payments)
	reports.AggregateInvoices(buckets, invoices)
	totals := reports.SumBuckets(buckets)

	response := &dto.FinancialReportResponse{
		DateRange: dto.NewDateRangeResponse(dateRange),
		Buckets:   dto.NewBucketResponses(buckets),
		Summary:   newFinancialSummary(totals),
	}
	if s.Cache != nil {
		s.Cache.Set(ctx, cacheKey, response, s.Config.Cache.TTL())
	}
	return response, nil
}

// fetchPayments returns the payments in range. A repository failure
// degrades the report to zero payment sums instead of failing it.
func (s *financialReportService) fetchPayments(ctx context.Context, dateRange types.DateRange, propertyID string) []*payment.Payment {
	filter := types.NewNoLimitPaymentFilter()
	filter.TimeRangeFilter = &types.TimeRangeFilter{
		StartTime: &dateRange.StartDate,
		EndTime:   &dateRange.EndDate,
	}
	filter.PropertyID = propertyID

	payments, err := s.PaymentRepo.List(ctx, filter)
	if err != nil {
		s.Logger.WithContext(ctx).Warnw("failed to fetch payments, continuing with empty set",
			"error", err,
		)
		return nil
	}
	return payments
}

// fetchInvoices returns the invoices due in range, degrading to empty on
// failure like fetchPayments.
func (s *financialReportService) fetchInvoices(ctx context.Context, dateRange types.DateRange, propertyID string) []*invoice.Invoice {
	filter := types.NewNoLimitInvoiceFilter()
	filter.TimeRangeFilter = &types.TimeRangeFilter{
		StartTime: &dateRange.StartDate,
		EndTime:   &dateRange.EndDate,
	}
	filter.PropertyID = propertyID

	invoices, err := s.InvoiceRepo.List(ctx, filter)
	if err != nil {
		s.Logger.WithContext(ctx).Warnw("failed to fetch invoices, continuing with empty set",
			"error", err,
		)
		return nil
	}
	return invoices
}

func newFinancialSummary(totals reports.Totals) dto.FinancialSummary {
	// Expense tracking is not implemented, so net income equals revenue.
	expenses := decimal.Zero
	return dto.FinancialSummary{
		TotalRevenue:     totals.Revenue.Round(2),
		TotalDue:         totals.AmountDue.Round(2),
		TotalPaid:        totals.AmountPaid.Round(2),
		TotalOutstanding: totals.Outstanding.Round(2),
		TotalExpenses:    expenses,
		NetIncome:        reports.NetIncome(totals.Revenue, expenses).Round(2),
		CollectionRate:   reports.CollectionRate(totals.AmountPaid, totals.AmountDue).Round(2),
		AveragePayment:   reports.AveragePayment(totals.Revenue, totals.PaymentCount).Round(2),
		PaymentCount:     totals.PaymentCount,
		ExpensesTracked:  false,
	}
}

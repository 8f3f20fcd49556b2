package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// recentPaymentsLimit bounds the dashboard's recent payments section.
const recentPaymentsLimit = 5

// DashboardService assembles the landlord overview. Each section is
// fetched independently; a failing section is logged and omitted so one
// bad dependency never blanks the whole dashboard.
type DashboardService interface {
	GetDashboard(ctx context.Context, req dto.GetDashboardRequest) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	ServiceParams
}

func NewDashboardService(params ServiceParams) DashboardService {
	return &dashboardService{
		ServiceParams: params,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, req dto.GetDashboardRequest) (*dto.DashboardResponse, error) {
	dateRange, err := req.Resolve(time.Now().UTC())
	if err != nil {
		return nil, err
	}

	response := &dto.DashboardResponse{
		DateRange: dto.NewDateRangeResponse(dateRange),
	}

	financial, err := NewFinancialReportService(s.ServiceParams).GetFinancialReport(ctx, dto.GetFinancialReportRequest{
		DateRangeRequest: req.DateRangeRequest,
	})
	if err != nil {
		s.Logger.WithContext(ctx).Errorw("failed to get financial summary", "error", err)
	} else {
		response.FinancialSummary = &financial.Summary
	}

	occupancy, err := NewOccupancyReportService(s.ServiceParams).GetOccupancyReport(ctx, dto.GetOccupancyReportRequest{
		DateRangeRequest: req.DateRangeRequest,
	})
	if err != nil {
		s.Logger.WithContext(ctx).Errorw("failed to get occupancy section", "error", err)
	} else {
		response.Occupancy = occupancy
	}

	recent, err := s.getRecentPayments(ctx, dateRange)
	if err != nil {
		s.Logger.WithContext(ctx).Errorw("failed to get recent payments", "error", err)
	} else {
		response.RecentPayments = recent
	}

	counts, err := s.InvoiceRepo.CountByStatus(ctx)
	if err != nil {
		s.Logger.WithContext(ctx).Errorw("failed to get invoice status counts", "error", err)
	} else {
		response.InvoiceStatus = counts
	}

	return response, nil
}

func (s *dashboardService) getRecentPayments(ctx context.Context, dateRange types.DateRange) ([]*dto.PaymentResponse, error) {
	filter := types.NewPaymentFilter()
	filter.QueryFilter.Limit = lo.ToPtr(recentPaymentsLimit)
	filter.TimeRangeFilter = &types.TimeRangeFilter{
		StartTime: &dateRange.StartDate,
		EndTime:   &dateRange.EndDate,
	}

	payments, err := s.PaymentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, &dto.PaymentResponse{Payment: p})
	}
	return items, nil
}

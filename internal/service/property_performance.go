package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/reports"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/unit"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// PropertyPerformanceService ranks properties by revenue with collection
// and occupancy rates alongside.
type PropertyPerformanceService interface {
	GetPropertyPerformance(ctx context.Context, req dto.GetPropertyPerformanceRequest) (*dto.PropertyPerformanceResponse, error)
}

type propertyPerformanceService struct {
	ServiceParams
}

func NewPropertyPerformanceService(params ServiceParams) PropertyPerformanceService {
	return &propertyPerformanceService{
		ServiceParams: params,
	}
}

func (s *propertyPerformanceService) GetPropertyPerformance(ctx context.Context, req dto.GetPropertyPerformanceRequest) (*dto.PropertyPerformanceResponse, error) {
	dateRange, err := req.Resolve(time.Now().UTC())
	if err != nil {
		return nil, err
	}

	properties, err := s.PropertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	units, err := s.UnitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	propertyByUnit := make(map[string]string, len(units))
	for _, u := range units {
		propertyByUnit[u.ID] = u.PropertyID
	}

	occupiedUnitIDs := fetchOccupiedUnitIDs(ctx, s.ServiceParams)

	byID := make(map[string]*reports.PropertyAggregate, len(properties))
	aggregates := make([]*reports.PropertyAggregate, 0, len(properties))
	for _, p := range properties {
		agg := &reports.PropertyAggregate{
			PropertyID:   p.ID,
			PropertyName: p.Name,
		}
		byID[p.ID] = agg
		aggregates = append(aggregates, agg)
	}

	unitsByProperty := lo.GroupBy(units, func(u *unit.Unit) string {
		return u.PropertyID
	})
	for propertyID, agg := range byID {
		active := lo.Filter(unitsByProperty[propertyID], func(u *unit.Unit, _ int) bool {
			return u.IsActive
		})
		agg.TotalUnits = len(active)
		agg.OccupiedUnits = lo.CountBy(active, func(u *unit.Unit) bool {
			return occupiedUnitIDs[u.ID]
		})
		agg.OccupancyRate = reports.OccupancyRate(agg.OccupiedUnits, agg.TotalUnits)
	}

	s.foldPayments(ctx, dateRange, byID, propertyByUnit)
	s.foldInvoices(ctx, dateRange, byID, propertyByUnit)

	for _, agg := range aggregates {
		agg.CollectionRate = reports.CollectionRate(agg.AmountPaid, agg.AmountDue)
	}

	return &dto.PropertyPerformanceResponse{
		DateRange: dto.NewDateRangeResponse(dateRange),
		Properties: lo.Map(reports.RankPropertiesByRevenue(aggregates),
			func(a *reports.PropertyAggregate, _ int) dto.PropertyAggregateResponse {
				return dto.NewPropertyAggregateResponse(a)
			}),
	}, nil
}

func (s *propertyPerformanceService) foldPayments(ctx context.Context, dateRange types.DateRange, byID map[string]*reports.PropertyAggregate, propertyByUnit map[string]string) {
	filter := types.NewNoLimitPaymentFilter()
	filter.TimeRangeFilter = &types.TimeRangeFilter{
		StartTime: &dateRange.StartDate,
		EndTime:   &dateRange.EndDate,
	}

	payments, err := s.PaymentRepo.List(ctx, filter)
	if err != nil {
		s.Logger.WithContext(ctx).Warnw("failed to fetch payments, continuing with empty set",
			"error", err,
		)
		return
	}
	for _, p := range payments {
		if agg, ok := byID[propertyByUnit[p.UnitID]]; ok {
			agg.Revenue = agg.Revenue.Add(p.Amount)
		}
	}
}

func (s *propertyPerformanceService) foldInvoices(ctx context.Context, dateRange types.DateRange, byID map[string]*reports.PropertyAggregate, propertyByUnit map[string]string) {
	filter := types.NewNoLimitInvoiceFilter()
	filter.TimeRangeFilter = &types.TimeRangeFilter{
		StartTime: &dateRange.StartDate,
		EndTime:   &dateRange.EndDate,
	}

	invoices, err := s.InvoiceRepo.List(ctx, filter)
	if err != nil {
		s.Logger.WithContext(ctx).Warnw("failed to fetch invoices, continuing with empty set",
			"error", err,
		)
		return
	}
	for _, inv := range invoices {
		if agg, ok := byID[propertyByUnit[inv.UnitID]]; ok {
			agg.AmountDue = agg.AmountDue.Add(inv.AmountDue)
			agg.AmountPaid = agg.AmountPaid.Add(inv.AmountPaid)
		}
	}
}

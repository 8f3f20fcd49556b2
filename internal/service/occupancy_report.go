package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/property"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/reports"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/tenant"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/unit"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// OccupancyReportService computes unit occupancy per property and
// overall.
type OccupancyReportService interface {
	GetOccupancyReport(ctx context.Context, req dto.GetOccupancyReportRequest) (*dto.OccupancyReportResponse, error)
}

type occupancyReportService struct {
	ServiceParams
}

func NewOccupancyReportService(params ServiceParams) OccupancyReportService {
	return &occupancyReportService{
		ServiceParams: params,
	}
}

func (s *occupancyReportService) GetOccupancyReport(ctx context.Context, req dto.GetOccupancyReportRequest) (*dto.OccupancyReportResponse, error) {
	dateRange, err := req.Resolve(time.Now().UTC())
	if err != nil {
		return nil, err
	}

	properties, err := s.PropertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if req.PropertyID != "" {
		properties = lo.Filter(properties, func(p *property.Property, _ int) bool {
			return p.ID == req.PropertyID
		})
	}

	units, err := s.UnitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Occupancy counts ACTIVE tenants holding a unit. A repository
	// failure degrades the report to zero occupied units.
	tenants := s.fetchTenants(ctx)
	occupiedUnitIDs := make(map[string]bool, len(tenants))
	for _, t := range tenants {
		if t.TenantStatus == types.TenantStatusActive && t.CurrentUnitID != "" {
			occupiedUnitIDs[t.CurrentUnitID] = true
		}
	}

	response := &dto.OccupancyReportResponse{
		DateRange:  dto.NewDateRangeResponse(dateRange),
		Properties: make([]dto.PropertyOccupancy, 0, len(properties)),
	}

	unitsByProperty := lo.GroupBy(units, func(u *unit.Unit) string {
		return u.PropertyID
	})

	countedUnits := make(map[string]bool)
	for _, p := range properties {
		propertyUnits := lo.Filter(unitsByProperty[p.ID], func(u *unit.Unit, _ int) bool {
			return u.IsActive
		})
		occupied := 0
		for _, u := range propertyUnits {
			countedUnits[u.ID] = true
			if occupiedUnitIDs[u.ID] {
				occupied++
			}
		}

		response.Properties = append(response.Properties, dto.PropertyOccupancy{
			PropertyID:    p.ID,
			PropertyName:  p.Name,
			TotalUnits:    len(propertyUnits),
			OccupiedUnits: occupied,
			OccupancyRate: reports.OccupancyRate(occupied, len(propertyUnits)).Round(2),
		})

		response.TotalUnits += len(propertyUnits)
		response.OccupiedUnits += occupied
	}

	response.OccupancyRate = reports.OccupancyRate(response.OccupiedUnits, response.TotalUnits).Round(2)
	response.Trend = buildOccupancyTrend(dateRange, tenants, countedUnits, response.TotalUnits)
	return response, nil
}

// fetchTenants returns every tenant in scope regardless of status, so
// the trend can count tenancies that have since ended. Degrades to an
// empty slice on repository failure.
func (s *occupancyReportService) fetchTenants(ctx context.Context) []*tenant.Tenant {
	filter := types.NewTenantFilter()
	filter.QueryFilter = types.NewNoLimitQueryFilter()

	tenants, err := s.TenantRepo.List(ctx, filter)
	if err != nil {
		s.Logger.WithContext(ctx).Warnw("failed to fetch tenants, continuing with empty set",
			"error", err,
		)
		return nil
	}
	return tenants
}

// buildOccupancyTrend counts, per calendar month of the range, units held
// by a tenancy overlapping that month. A tenancy overlaps a month when it
// began on or before the month's end and either has not ended or ended on
// or after the month's start.
func buildOccupancyTrend(r types.DateRange, tenants []*tenant.Tenant, countedUnits map[string]bool, totalUnits int) []dto.OccupancyTrendPoint {
	buckets := reports.MonthlyBuckets(r)
	trend := make([]dto.OccupancyTrendPoint, 0, len(buckets))

	for _, b := range buckets {
		held := make(map[string]bool)
		for _, t := range tenants {
			if t.CurrentUnitID == "" || !countedUnits[t.CurrentUnitID] {
				continue
			}
			if t.MoveInDate.After(b.PeriodEnd) {
				continue
			}
			if t.MoveOutDate != nil && t.MoveOutDate.Before(b.PeriodStart) {
				continue
			}
			held[t.CurrentUnitID] = true
		}
		trend = append(trend, dto.OccupancyTrendPoint{
			Period:        b.Key,
			PeriodLabel:   b.Label,
			OccupiedUnits: len(held),
			OccupancyRate: reports.OccupancyRate(len(held), totalUnits).Round(2),
		})
	}
	return trend
}

// fetchOccupiedUnitIDs returns the units held by ACTIVE tenants. Used by
// the property performance report.
func fetchOccupiedUnitIDs(ctx context.Context, params ServiceParams) map[string]bool {
	filter := types.NewTenantFilter()
	filter.QueryFilter = types.NewNoLimitQueryFilter()
	filter.TenantStatuses = []types.TenantStatus{types.TenantStatusActive}

	tenants, err := params.TenantRepo.List(ctx, filter)
	if err != nil {
		params.Logger.WithContext(ctx).Warnw("failed to fetch tenants, continuing with empty set",
			"error", err,
		)
		return map[string]bool{}
	}

	occupied := make(map[string]bool, len(tenants))
	for _, t := range tenants {
		if t.CurrentUnitID != "" {
			occupied[t.CurrentUnitID] = true
		}
	}
	return occupied
}

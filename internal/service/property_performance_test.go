package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/invoice"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/payment"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/property"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/tenant"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/unit"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/testutil"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

type PropertyPerformanceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PropertyPerformanceService
}

func TestPropertyPerformanceService(t *testing.T) {
	suite.Run(t, new(PropertyPerformanceServiceSuite))
}

func (s *PropertyPerformanceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewPropertyPerformanceService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		PaymentRepo:  stores.PaymentRepo,
		InvoiceRepo:  stores.InvoiceRepo,
		TenantRepo:   stores.TenantRepo,
		UnitRepo:     stores.UnitRepo,
		PropertyRepo: stores.PropertyRepo,
	})
}

func (s *PropertyPerformanceServiceSuite) seed() {
	ctx := s.GetContext()
	stores := s.GetStores()

	for _, p := range []struct{ id, name string }{
		{"prop_a", "Kilimani Court"},
		{"prop_b", "Westside Flats"},
	} {
		s.Require().NoError(stores.PropertyRepo.Add(ctx, &property.Property{
			ID:        p.id,
			Name:      p.name,
			BaseModel: types.GetDefaultBaseModel(ctx),
		}))
	}

	for _, u := range []struct{ id, propertyID string }{
		{"unit_a1", "prop_a"},
		{"unit_b1", "prop_b"},
	} {
		s.Require().NoError(stores.UnitRepo.Add(ctx, &unit.Unit{
			ID:          u.id,
			PropertyID:  u.propertyID,
			UnitLabel:   u.id,
			MonthlyRent: decimal.NewFromInt(20000),
			IsActive:    true,
			BaseModel:   types.GetDefaultBaseModel(ctx),
		}))
	}

	s.Require().NoError(stores.TenantRepo.Create(ctx, &tenant.Tenant{
		ID:            "ten_1",
		FullName:      "Achieng",
		TenantStatus:  types.TenantStatusActive,
		CurrentUnitID: "unit_b1",
		MoveInDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}))

	for _, p := range []struct {
		id, unitID string
		amount     int64
		day        time.Time
	}{
		{"pay_1", "unit_a1", 10000, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"pay_2", "unit_b1", 25000, time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)},
	} {
		s.Require().NoError(stores.PaymentRepo.Create(ctx, &payment.Payment{
			ID:          p.id,
			TenantID:    "ten_1",
			UnitID:      p.unitID,
			Amount:      decimal.NewFromInt(p.amount),
			PaymentDate: p.day,
			Method:      types.PaymentMethodCash,
			BaseModel:   types.GetDefaultBaseModel(ctx),
		}))
	}

	s.Require().NoError(stores.InvoiceRepo.Add(ctx, &invoice.Invoice{
		ID:            "inv_1",
		TenantID:      "ten_1",
		UnitID:        "unit_b1",
		DueDate:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		AmountDue:     decimal.NewFromInt(25000),
		AmountPaid:    decimal.NewFromInt(20000),
		InvoiceStatus: types.InvoiceStatusPartial,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}))
}

func (s *PropertyPerformanceServiceSuite) TestRankedByRevenue() {
	s.seed()

	report, err := s.service.GetPropertyPerformance(s.GetContext(), dto.GetPropertyPerformanceRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-01-31"},
	})
	s.Require().NoError(err)
	s.Require().Len(report.Properties, 2)

	s.Equal("Westside Flats", report.Properties[0].PropertyName)
	s.True(report.Properties[0].Revenue.Equal(decimal.NewFromInt(25000)))
	// 20000 of 25000 collected.
	s.True(report.Properties[0].CollectionRate.Equal(decimal.NewFromInt(80)))
	s.Equal(1, report.Properties[0].OccupiedUnits)
	s.True(report.Properties[0].OccupancyRate.Equal(decimal.NewFromInt(100)))

	s.Equal("Kilimani Court", report.Properties[1].PropertyName)
	s.True(report.Properties[1].Revenue.Equal(decimal.NewFromInt(10000)))
	s.True(report.Properties[1].CollectionRate.IsZero())
	s.True(report.Properties[1].OccupancyRate.IsZero())
}

func (s *PropertyPerformanceServiceSuite) TestNoPropertiesEmptyReport() {
	report, err := s.service.GetPropertyPerformance(s.GetContext(), dto.GetPropertyPerformanceRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-01-31"},
	})
	s.Require().NoError(err)
	s.Empty(report.Properties)
}

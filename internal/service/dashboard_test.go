package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/invoice"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/payment"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/testutil"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

type DashboardServiceSuite struct {
	testutil.BaseServiceTestSuite
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) params() ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		PaymentRepo:  stores.PaymentRepo,
		InvoiceRepo:  stores.InvoiceRepo,
		TenantRepo:   stores.TenantRepo,
		UnitRepo:     stores.UnitRepo,
		PropertyRepo: stores.PropertyRepo,
	}
}

func (s *DashboardServiceSuite) request() dto.GetDashboardRequest {
	return dto.GetDashboardRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-01-31"},
	}
}

func (s *DashboardServiceSuite) TestAllSectionsPresent() {
	err := s.GetStores().PaymentRepo.Create(s.GetContext(), &payment.Payment{
		ID:          "pay_1",
		TenantID:    "ten_1",
		UnitID:      "unit_1",
		Amount:      decimal.NewFromInt(12000),
		PaymentDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Method:      types.PaymentMethodCash,
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)

	err = s.GetStores().InvoiceRepo.Add(s.GetContext(), &invoice.Invoice{
		ID:            "inv_1",
		TenantID:      "ten_1",
		UnitID:        "unit_1",
		DueDate:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		AmountDue:     decimal.NewFromInt(12000),
		AmountPaid:    decimal.NewFromInt(12000),
		InvoiceStatus: types.InvoiceStatusPaid,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)

	svc := NewDashboardService(s.params())
	resp, err := svc.GetDashboard(s.GetContext(), s.request())
	s.Require().NoError(err)

	s.Require().NotNil(resp.FinancialSummary)
	s.True(resp.FinancialSummary.TotalRevenue.Equal(decimal.NewFromInt(12000)))
	s.NotNil(resp.Occupancy)
	s.Len(resp.RecentPayments, 1)
	s.Equal(1, resp.InvoiceStatus[types.InvoiceStatusPaid])
}

func (s *DashboardServiceSuite) TestRecentPaymentsCapped() {
	for day := 1; day <= 8; day++ {
		err := s.GetStores().PaymentRepo.Create(s.GetContext(), &payment.Payment{
			ID:          fmt.Sprintf("pay_%d", day),
			TenantID:    "ten_1",
			UnitID:      "unit_1",
			Amount:      decimal.NewFromInt(1000),
			PaymentDate: time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC),
			Method:      types.PaymentMethodCash,
			BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
		})
		s.Require().NoError(err)
	}

	svc := NewDashboardService(s.params())
	resp, err := svc.GetDashboard(s.GetContext(), s.request())
	s.Require().NoError(err)

	// Newest first, capped at five.
	s.Require().Len(resp.RecentPayments, 5)
	s.Equal("pay_8", resp.RecentPayments[0].ID)
	s.Equal("pay_4", resp.RecentPayments[4].ID)

	// The financial summary still folds every payment in range.
	s.Require().NotNil(resp.FinancialSummary)
	s.Equal(8, resp.FinancialSummary.PaymentCount)
}

func (s *DashboardServiceSuite) TestFailingSectionSkippedNotFatal() {
	params := s.params()
	params.InvoiceRepo = testutil.NewFailingInvoiceStore()
	svc := NewDashboardService(params)

	resp, err := svc.GetDashboard(s.GetContext(), s.request())
	s.Require().NoError(err)

	// Financial summary degrades to payments only; the invoice status
	// section is dropped entirely.
	s.NotNil(resp.FinancialSummary)
	s.Nil(resp.InvoiceStatus)
	s.NotNil(resp.Occupancy)
}

func (s *DashboardServiceSuite) TestEmptyDashboardIsZeroValued() {
	svc := NewDashboardService(s.params())
	resp, err := svc.GetDashboard(s.GetContext(), s.request())
	s.Require().NoError(err)

	s.Require().NotNil(resp.FinancialSummary)
	s.True(resp.FinancialSummary.TotalRevenue.IsZero())
	s.Empty(resp.RecentPayments)
}

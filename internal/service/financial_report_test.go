package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/cache"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/invoice"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/payment"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/tenant"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/unit"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/testutil"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

type FinancialReportServiceSuite struct {
	testutil.BaseServiceTestSuite
	service FinancialReportService
}

func TestFinancialReportService(t *testing.T) {
	suite.Run(t, new(FinancialReportServiceSuite))
}

func (s *FinancialReportServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewFinancialReportService(s.params())
}

func (s *FinancialReportServiceSuite) params() ServiceParams {
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

func (s *FinancialReportServiceSuite) seedPayment(id string, day time.Time, amount float64) {
	err := s.GetStores().PaymentRepo.Create(s.GetContext(), &payment.Payment{
		ID:          id,
		TenantID:    "ten_1",
		UnitID:      "unit_1",
		Amount:      decimal.NewFromFloat(amount),
		PaymentDate: day,
		Method:      types.PaymentMethodCash,
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)
}

func (s *FinancialReportServiceSuite) seedInvoice(id string, due time.Time, amountDue, amountPaid float64) {
	err := s.GetStores().InvoiceRepo.Add(s.GetContext(), &invoice.Invoice{
		ID:            id,
		TenantID:      "ten_1",
		UnitID:        "unit_1",
		DueDate:       due,
		AmountDue:     decimal.NewFromFloat(amountDue),
		AmountPaid:    decimal.NewFromFloat(amountPaid),
		InvoiceStatus: types.InvoiceStatusPartial,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)
}

func (s *FinancialReportServiceSuite) TestBucketedReport() {
	s.seedPayment("pay_1", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), 1000)
	s.seedPayment("pay_2", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), 500)
	s.seedInvoice("inv_1", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 1200, 1000)

	report, err := s.service.GetFinancialReport(s.GetContext(), dto.GetFinancialReportRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-03-31"},
	})
	s.Require().NoError(err)
	s.Require().Len(report.Buckets, 3)

	s.Equal("2026-01", report.Buckets[0].Key)
	s.Equal("Jan 2026", report.Buckets[0].Label)
	s.True(report.Buckets[0].Revenue.Equal(decimal.NewFromInt(1000)))
	s.Equal(1, report.Buckets[0].PaymentCount)

	s.True(report.Buckets[1].Revenue.IsZero())
	s.Equal(0, report.Buckets[1].PaymentCount)

	s.True(report.Buckets[2].Revenue.Equal(decimal.NewFromInt(500)))

	s.True(report.Summary.TotalRevenue.Equal(decimal.NewFromInt(1500)))
	s.Equal(2, report.Summary.PaymentCount)
	s.True(report.Summary.TotalOutstanding.Equal(decimal.NewFromInt(200)))
	// 1000 paid of 1200 due.
	s.True(report.Summary.CollectionRate.Equal(decimal.RequireFromString("83.33")))
	s.True(report.Summary.AveragePayment.Equal(decimal.NewFromInt(750)))
	s.False(report.Summary.ExpensesTracked)
	s.True(report.Summary.NetIncome.Equal(report.Summary.TotalRevenue))
}

func (s *FinancialReportServiceSuite) TestGrowthPercentPerBucket() {
	s.seedPayment("pay_1", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), 1000)
	s.seedPayment("pay_2", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), 1500)

	report, err := s.service.GetFinancialReport(s.GetContext(), dto.GetFinancialReportRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-02-28"},
	})
	s.Require().NoError(err)
	s.Require().Len(report.Buckets, 2)

	// First bucket has no predecessor.
	s.True(report.Buckets[0].GrowthPercent.IsZero())
	s.True(report.Buckets[1].GrowthPercent.Equal(decimal.NewFromInt(50)))
}

func (s *FinancialReportServiceSuite) TestGrowthFromZeroPreviousIsZero() {
	s.seedPayment("pay_1", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), 900)

	report, err := s.service.GetFinancialReport(s.GetContext(), dto.GetFinancialReportRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-02-28"},
	})
	s.Require().NoError(err)
	s.True(report.Buckets[0].Revenue.IsZero())
	s.True(report.Buckets[1].GrowthPercent.IsZero())
}

func (s *FinancialReportServiceSuite) TestEmptyDataZeroValuedReport() {
	report, err := s.service.GetFinancialReport(s.GetContext(), dto.GetFinancialReportRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-01-31"},
	})
	s.Require().NoError(err)
	s.Require().Len(report.Buckets, 1)
	s.True(report.Summary.TotalRevenue.IsZero())
	s.True(report.Summary.CollectionRate.IsZero())
	s.True(report.Summary.AveragePayment.IsZero())
}

func (s *FinancialReportServiceSuite) TestInvoiceRepoFailureDegradesNotFails() {
	s.seedPayment("pay_1", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), 1000)

	params := s.params()
	params.InvoiceRepo = testutil.NewFailingInvoiceStore()
	svc := NewFinancialReportService(params)

	report, err := svc.GetFinancialReport(s.GetContext(), dto.GetFinancialReportRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-01-31"},
	})
	s.Require().NoError(err)
	s.True(report.Summary.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	s.True(report.Summary.TotalDue.IsZero())
	s.True(report.Summary.TotalOutstanding.IsZero())
}

func (s *FinancialReportServiceSuite) TestCachedReportReused() {
	params := s.params()
	params.Cache = cache.NewInMemoryCache(s.GetLogger())
	svc := NewFinancialReportService(params)

	s.seedPayment("pay_1", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), 1000)

	req := dto.GetFinancialReportRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-01-31"},
	}
	first, err := svc.GetFinancialReport(s.GetContext(), req)
	s.Require().NoError(err)
	s.True(first.Summary.TotalRevenue.Equal(decimal.NewFromInt(1000)))

	// Writing to the store behind the cache's back does not change the
	// cached report.
	s.seedPayment("pay_2", time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), 500)
	second, err := svc.GetFinancialReport(s.GetContext(), req)
	s.Require().NoError(err)
	s.True(second.Summary.TotalRevenue.Equal(decimal.NewFromInt(1000)))
}

func (s *FinancialReportServiceSuite) TestPaymentCreationInvalidatesCache() {
	params := s.params()
	params.Cache = cache.NewInMemoryCache(s.GetLogger())
	reportSvc := NewFinancialReportService(params)
	paymentSvc := NewPaymentService(params)

	err := s.GetStores().TenantRepo.Create(s.GetContext(), &tenant.Tenant{
		ID:           "ten_1",
		FullName:     "Achieng",
		TenantStatus: types.TenantStatusActive,
		MoveInDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)
	err = s.GetStores().UnitRepo.Add(s.GetContext(), &unit.Unit{
		ID:          "unit_1",
		PropertyID:  "prop_1",
		UnitLabel:   "A1",
		MonthlyRent: decimal.NewFromInt(20000),
		IsActive:    true,
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)

	req := dto.GetFinancialReportRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-01-31"},
	}
	first, err := reportSvc.GetFinancialReport(s.GetContext(), req)
	s.Require().NoError(err)
	s.True(first.Summary.TotalRevenue.IsZero())

	_, err = paymentSvc.CreatePayment(s.GetContext(), dto.CreatePaymentRequest{
		TenantID:    "ten_1",
		UnitID:      "unit_1",
		Amount:      decimal.NewFromInt(1500),
		PaymentDate: "2026-01-15",
		Method:      types.PaymentMethodCash,
	})
	s.Require().NoError(err)

	refreshed, err := reportSvc.GetFinancialReport(s.GetContext(), req)
	s.Require().NoError(err)
	s.True(refreshed.Summary.TotalRevenue.Equal(decimal.NewFromInt(1500)))
}

func (s *FinancialReportServiceSuite) TestInvertedRangeRejected() {
	_, err := s.service.GetFinancialReport(s.GetContext(), dto.GetFinancialReportRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-03-01", EndDate: "2026-01-01"},
	})
	s.Error(err)
}

func (s *FinancialReportServiceSuite) TestRangeOverFiveYearsRejected() {
	_, err := s.service.GetFinancialReport(s.GetContext(), dto.GetFinancialReportRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2020-01-01", EndDate: "2026-01-02"},
	})
	s.Error(err)
}

func (s *FinancialReportServiceSuite) TestLandlordScopeIsolation() {
	s.seedPayment("pay_mine", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), 1000)

	otherCtx := types.SetLandlordID(s.GetContext(), "landlord_other")
	err := s.GetStores().PaymentRepo.Create(otherCtx, &payment.Payment{
		ID:          "pay_theirs",
		TenantID:    "ten_x",
		UnitID:      "unit_x",
		Amount:      decimal.NewFromInt(5000),
		PaymentDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Method:      types.PaymentMethodCash,
		BaseModel:   types.GetDefaultBaseModel(otherCtx),
	})
	s.Require().NoError(err)

	report, err := s.service.GetFinancialReport(s.GetContext(), dto.GetFinancialReportRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-01-31"},
	})
	s.Require().NoError(err)
	s.True(report.Summary.TotalRevenue.Equal(decimal.NewFromInt(1000)))
}

package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/invoice"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/payment"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/tenant"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/testutil"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

type TenantAnalyticsServiceSuite struct {
	testutil.BaseServiceTestSuite
	service TenantAnalyticsService
}

func TestTenantAnalyticsService(t *testing.T) {
	suite.Run(t, new(TenantAnalyticsServiceSuite))
}

func (s *TenantAnalyticsServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewTenantAnalyticsService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		PaymentRepo:  stores.PaymentRepo,
		InvoiceRepo:  stores.InvoiceRepo,
		TenantRepo:   stores.TenantRepo,
		UnitRepo:     stores.UnitRepo,
		PropertyRepo: stores.PropertyRepo,
	})
}

func (s *TenantAnalyticsServiceSuite) seedTenant(id, name string, status types.TenantStatus, movedOut *time.Time) {
	err := s.GetStores().TenantRepo.Create(s.GetContext(), &tenant.Tenant{
		ID:           id,
		FullName:     name,
		TenantStatus: status,
		MoveInDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		MoveOutDate:  movedOut,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)
}

func (s *TenantAnalyticsServiceSuite) seedPayment(id, tenantID string, day time.Time, amount float64) {
	err := s.GetStores().PaymentRepo.Create(s.GetContext(), &payment.Payment{
		ID:          id,
		TenantID:    tenantID,
		UnitID:      "unit_1",
		Amount:      decimal.NewFromFloat(amount),
		PaymentDate: day,
		Method:      types.PaymentMethodMpesa,
		TxnRef:      "QA" + id,
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)
}

func (s *TenantAnalyticsServiceSuite) seedBalance(id, tenantID string, outstanding float64) {
	err := s.GetStores().InvoiceRepo.Add(s.GetContext(), &invoice.Invoice{
		ID:            id,
		TenantID:      tenantID,
		UnitID:        "unit_1",
		DueDate:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		AmountDue:     decimal.NewFromFloat(outstanding),
		AmountPaid:    decimal.Zero,
		InvoiceStatus: types.InvoiceStatusOverdue,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)
}

func (s *TenantAnalyticsServiceSuite) seedSettledInvoice(id, tenantID string, due, paidAt time.Time) {
	err := s.GetStores().InvoiceRepo.Add(s.GetContext(), &invoice.Invoice{
		ID:            id,
		TenantID:      tenantID,
		UnitID:        "unit_1",
		DueDate:       due,
		AmountDue:     decimal.NewFromInt(15000),
		AmountPaid:    decimal.NewFromInt(15000),
		InvoiceStatus: types.InvoiceStatusPaid,
		PaidAt:        &paidAt,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)
}

func (s *TenantAnalyticsServiceSuite) request() dto.GetTenantAnalyticsRequest {
	return dto.GetTenantAnalyticsRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-03-31"},
	}
}

func (s *TenantAnalyticsServiceSuite) TestTopPayersDescending() {
	s.seedTenant("ten_a", "Achieng", types.TenantStatusActive, nil)
	s.seedTenant("ten_b", "Baraka", types.TenantStatusActive, nil)
	s.seedTenant("ten_c", "Chebet", types.TenantStatusActive, nil)

	s.seedPayment("pay_1", "ten_a", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), 3000)
	s.seedPayment("pay_2", "ten_b", time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), 9000)
	s.seedPayment("pay_3", "ten_c", time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC), 6000)

	analytics, err := s.service.GetTenantAnalytics(s.GetContext(), s.request())
	s.Require().NoError(err)
	s.Require().Len(analytics.TopTenants, 3)
	s.Equal("Baraka", analytics.TopTenants[0].TenantName)
	s.Equal("Chebet", analytics.TopTenants[1].TenantName)
	s.Equal("Achieng", analytics.TopTenants[2].TenantName)
}

func (s *TenantAnalyticsServiceSuite) TestPaymentsOutsideRangeExcludedFromTotals() {
	s.seedTenant("ten_a", "Achieng", types.TenantStatusActive, nil)
	s.seedPayment("pay_in", "ten_a", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 2000)
	s.seedPayment("pay_before", "ten_a", time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), 7000)

	analytics, err := s.service.GetTenantAnalytics(s.GetContext(), s.request())
	s.Require().NoError(err)
	s.Require().Len(analytics.TopTenants, 1)
	s.True(analytics.TopTenants[0].TotalPaid.Equal(decimal.NewFromInt(2000)))
	s.Equal(1, analytics.TopTenants[0].PaymentCount)
}

func (s *TenantAnalyticsServiceSuite) TestRiskTiers() {
	// Balance 30000 contributes 30; last payment 70 days before the
	// range end contributes 40. Score 70 lands in the high band.
	s.seedTenant("ten_high", "Korir", types.TenantStatusActive, nil)
	s.seedBalance("inv_high", "ten_high", 30000)
	s.seedPayment("pay_high", "ten_high", time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -70), 1000)

	// 20000 -> 20 plus 55 days -> 25. Score 45 is medium.
	s.seedTenant("ten_med", "Mwangi", types.TenantStatusActive, nil)
	s.seedBalance("inv_med", "ten_med", 20000)
	s.seedPayment("pay_med", "ten_med", time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -55), 1000)

	// No balance, paid recently. Excluded from both tiers.
	s.seedTenant("ten_safe", "Njeri", types.TenantStatusActive, nil)
	s.seedPayment("pay_safe", "ten_safe", time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC), 1000)

	analytics, err := s.service.GetTenantAnalytics(s.GetContext(), s.request())
	s.Require().NoError(err)

	s.Require().Len(analytics.HighRiskTenants, 1)
	s.Equal("Korir", analytics.HighRiskTenants[0].TenantName)
	s.True(analytics.HighRiskTenants[0].RiskScore.Equal(decimal.NewFromInt(70)))

	s.Require().Len(analytics.MediumRiskTenants, 1)
	s.Equal("Mwangi", analytics.MediumRiskTenants[0].TenantName)
	s.True(analytics.MediumRiskTenants[0].RiskScore.Equal(decimal.NewFromInt(45)))
}

func (s *TenantAnalyticsServiceSuite) TestRetentionRate() {
	movedOut := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	s.seedTenant("ten_a", "Achieng", types.TenantStatusActive, nil)
	s.seedTenant("ten_b", "Baraka", types.TenantStatusActive, nil)
	s.seedTenant("ten_c", "Chebet", types.TenantStatusInactive, &movedOut)

	analytics, err := s.service.GetTenantAnalytics(s.GetContext(), s.request())
	s.Require().NoError(err)
	// 2 retained, 1 lost.
	s.True(analytics.RetentionRate.Equal(decimal.RequireFromString("66.67")))
	s.Equal(3, analytics.TenantCount)
}

func (s *TenantAnalyticsServiceSuite) TestOnTimeRate() {
	s.seedTenant("ten_a", "Achieng", types.TenantStatusActive, nil)

	// Two settled on time, one settled late, all due within the range.
	s.seedSettledInvoice("inv_early", "ten_a",
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC))
	s.seedSettledInvoice("inv_due_day", "ten_a",
		time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC))
	s.seedSettledInvoice("inv_late", "ten_a",
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))

	// Settled outside the range and still unpaid inside it, neither counts.
	s.seedSettledInvoice("inv_out_of_range", "ten_a",
		time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))
	s.seedBalance("inv_open", "ten_a", 15000)

	analytics, err := s.service.GetTenantAnalytics(s.GetContext(), s.request())
	s.Require().NoError(err)
	// 2 of 3 settled invoices on time.
	s.True(analytics.OnTimeRate.Equal(decimal.RequireFromString("66.67")),
		"on-time rate = %s", analytics.OnTimeRate)
}

func (s *TenantAnalyticsServiceSuite) TestNoTenantsZeroValued() {
	analytics, err := s.service.GetTenantAnalytics(s.GetContext(), s.request())
	s.Require().NoError(err)
	s.Empty(analytics.TopTenants)
	s.Empty(analytics.HighRiskTenants)
	s.Empty(analytics.MediumRiskTenants)
	s.True(analytics.RetentionRate.IsZero())
	s.True(analytics.OnTimeRate.IsZero())
}

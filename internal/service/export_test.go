package service

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/payment"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/tenant"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/testutil"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

type ExportServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ExportService
}

func TestExportService(t *testing.T) {
	suite.Run(t, new(ExportServiceSuite))
}

func (s *ExportServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewExportService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		PaymentRepo:  stores.PaymentRepo,
		InvoiceRepo:  stores.InvoiceRepo,
		TenantRepo:   stores.TenantRepo,
		UnitRepo:     stores.UnitRepo,
		PropertyRepo: stores.PropertyRepo,
	})
}

func (s *ExportServiceSuite) TestFinancialExportTable() {
	err := s.GetStores().PaymentRepo.Create(s.GetContext(), &payment.Payment{
		ID:          "pay_1",
		TenantID:    "ten_1",
		UnitID:      "unit_1",
		Amount:      decimal.NewFromInt(8000),
		PaymentDate: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Method:      types.PaymentMethodCash,
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)

	table, csvBody, err := s.service.ExportFinancialReport(s.GetContext(), dto.ExportReportRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-02-28"},
	})
	s.Require().NoError(err)

	s.Equal([]string{"month", "revenue", "payment_count", "amount_due", "amount_paid", "outstanding", "growth_percent"}, table.Headers)
	s.Require().Len(table.Rows, 2)
	s.Equal("Jan 2026", table.Rows[0][0])
	s.Equal("8000", table.Rows[0][1])
	s.Equal("Feb 2026", table.Rows[1][0])
	s.Equal("0", table.Rows[1][1])

	lines := strings.Split(strings.TrimSpace(csvBody), "\n")
	s.Require().Len(lines, 3)
	s.Equal("month,revenue,payment_count,amount_due,amount_paid,outstanding,growth_percent", strings.TrimSpace(lines[0]))
	s.Contains(lines[1], "Jan 2026")
}

func (s *ExportServiceSuite) TestTenantExportTable() {
	err := s.GetStores().TenantRepo.Create(s.GetContext(), &tenant.Tenant{
		ID:           "ten_1",
		FullName:     "Achieng",
		TenantStatus: types.TenantStatusActive,
		MoveInDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)

	err = s.GetStores().PaymentRepo.Create(s.GetContext(), &payment.Payment{
		ID:          "pay_1",
		TenantID:    "ten_1",
		UnitID:      "unit_1",
		Amount:      decimal.NewFromInt(5000),
		PaymentDate: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Method:      types.PaymentMethodCash,
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)

	table, csvBody, err := s.service.ExportTenantAnalytics(s.GetContext(), dto.ExportReportRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-01-31"},
	})
	s.Require().NoError(err)

	s.Equal([]string{"tenant_name", "total_paid", "payment_count", "outstanding_balance", "risk_score", "risk_level"}, table.Headers)
	s.Require().Len(table.Rows, 1)
	s.Equal("Achieng", table.Rows[0][0])
	s.Equal("5000", table.Rows[0][1])
	s.Contains(csvBody, "Achieng")
}

func (s *ExportServiceSuite) TestEmptyExportHasHeadersOnly() {
	table, _, err := s.service.ExportTenantAnalytics(s.GetContext(), dto.ExportReportRequest{
		DateRangeRequest: dto.DateRangeRequest{StartDate: "2026-01-01", EndDate: "2026-01-31"},
	})
	s.Require().NoError(err)
	s.NotEmpty(table.Headers)
	s.Empty(table.Rows)
}

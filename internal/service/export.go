package service

import (
	"context"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
)

// ExportService flattens reports into the headers-plus-rows table
// contract and renders them as CSV.
type ExportService interface {
	ExportFinancialReport(ctx context.Context, req dto.ExportReportRequest) (*dto.ReportTable, string, error)
	ExportTenantAnalytics(ctx context.Context, req dto.ExportReportRequest) (*dto.ReportTable, string, error)
}

type exportService struct {
	ServiceParams
}

func NewExportService(params ServiceParams) ExportService {
	return &exportService{
		ServiceParams: params,
	}
}

type financialExportRow struct {
	Month        string `csv:"month"`
	Revenue      string `csv:"revenue"`
	PaymentCount string `csv:"payment_count"`
	AmountDue    string `csv:"amount_due"`
	AmountPaid   string `csv:"amount_paid"`
	Outstanding  string `csv:"outstanding"`
	Growth       string `csv:"growth_percent"`
}

func (s *exportService) ExportFinancialReport(ctx context.Context, req dto.ExportReportRequest) (*dto.ReportTable, string, error) {
	report, err := NewFinancialReportService(s.ServiceParams).GetFinancialReport(ctx, dto.GetFinancialReportRequest{
		DateRangeRequest: req.DateRangeRequest,
		PropertyID:       req.PropertyID,
	})
	if err != nil {
		return nil, "", err
	}

	rows := make([]*financialExportRow, 0, len(report.Buckets))
	for _, b := range report.Buckets {
		rows = append(rows, &financialExportRow{
			Month:        b.Label,
			Revenue:      b.Revenue.String(),
			PaymentCount: intString(b.PaymentCount),
			AmountDue:    b.AmountDue.String(),
			AmountPaid:   b.AmountPaid.String(),
			Outstanding:  b.Outstanding.String(),
			Growth:       b.GrowthPercent.String(),
		})
	}

	csvBody, err := gocsv.MarshalString(&rows)
	if err != nil {
		return nil, "", ierr.WithError(err).
			WithHint("Failed to render the CSV export").
			Mark(ierr.ErrSystem)
	}

	table := &dto.ReportTable{
		Headers: []string{"month", "revenue", "payment_count", "amount_due", "amount_paid", "outstanding", "growth_percent"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.Month, r.Revenue, r.PaymentCount, r.AmountDue, r.AmountPaid, r.Outstanding, r.Growth,
		})
	}
	return table, csvBody, nil
}

type tenantExportRow struct {
	TenantName   string `csv:"tenant_name"`
	TotalPaid    string `csv:"total_paid"`
	PaymentCount string `csv:"payment_count"`
	Outstanding  string `csv:"outstanding_balance"`
	RiskScore    string `csv:"risk_score"`
	RiskLevel    string `csv:"risk_level"`
}

func (s *exportService) ExportTenantAnalytics(ctx context.Context, req dto.ExportReportRequest) (*dto.ReportTable, string, error) {
	analytics, err := NewTenantAnalyticsService(s.ServiceParams).GetTenantAnalytics(ctx, dto.GetTenantAnalyticsRequest{
		DateRangeRequest: req.DateRangeRequest,
		PropertyID:       req.PropertyID,
	})
	if err != nil {
		return nil, "", err
	}

	rows := make([]*tenantExportRow, 0, len(analytics.TopTenants))
	for _, t := range analytics.TopTenants {
		rows = append(rows, &tenantExportRow{
			TenantName:   t.TenantName,
			TotalPaid:    t.TotalPaid.String(),
			PaymentCount: intString(t.PaymentCount),
			Outstanding:  t.OutstandingBalance.String(),
			RiskScore:    t.RiskScore.String(),
			RiskLevel:    string(t.RiskLevel),
		})
	}

	csvBody, err := gocsv.MarshalString(&rows)
	if err != nil {
		return nil, "", ierr.WithError(err).
			WithHint("Failed to render the CSV export").
			Mark(ierr.ErrSystem)
	}

	table := &dto.ReportTable{
		Headers: []string{"tenant_name", "total_paid", "payment_count", "outstanding_balance", "risk_score", "risk_level"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.TenantName, r.TotalPaid, r.PaymentCount, r.Outstanding, r.RiskScore, r.RiskLevel,
		})
	}
	return table, csvBody, nil
}

func intString(n int) string {
	return strconv.Itoa(n)
}

package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/dto"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/service"
)

type ReportHandler struct {
	financialService service.FinancialReportService
	occupancyService service.OccupancyReportService
	tenantService    service.TenantAnalyticsService
	propertyService  service.PropertyPerformanceService
	exportService    service.ExportService
	logger           *logger.Logger
}

func NewReportHandler(
	financialService service.FinancialReportService,
	occupancyService service.OccupancyReportService,
	tenantService service.TenantAnalyticsService,
	propertyService service.PropertyPerformanceService,
	exportService service.ExportService,
	logger *logger.Logger,
) *ReportHandler {
	return &ReportHandler{
		financialService: financialService,
		occupancyService: occupancyService,
		tenantService:    tenantService,
		propertyService:  propertyService,
		exportService:    exportService,
		logger:           logger,
	}
}

// GetFinancialReport returns the bucketed financial report.
func (h *ReportHandler) GetFinancialReport(c *gin.Context) {
	var req dto.GetFinancialReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.financialService.GetFinancialReport(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetOccupancyReport returns occupancy per property and overall.
func (h *ReportHandler) GetOccupancyReport(c *gin.Context) {
	var req dto.GetOccupancyReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.occupancyService.GetOccupancyReport(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetTenantAnalytics returns payer rankings, risk tiers and retention.
func (h *ReportHandler) GetTenantAnalytics(c *gin.Context) {
	var req dto.GetTenantAnalyticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.tenantService.GetTenantAnalytics(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPropertyPerformance returns the property revenue ranking.
func (h *ReportHandler) GetPropertyPerformance(c *gin.Context) {
	var req dto.GetPropertyPerformanceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.propertyService.GetPropertyPerformance(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ExportFinancialReport streams the financial report as a CSV download.
func (h *ReportHandler) ExportFinancialReport(c *gin.Context) {
	h.export(c, "financial_report", h.exportService.ExportFinancialReport)
}

// ExportTenantAnalytics streams the tenant analytics as a CSV download.
func (h *ReportHandler) ExportTenantAnalytics(c *gin.Context) {
	h.export(c, "tenant_analytics", h.exportService.ExportTenantAnalytics)
}

func (h *ReportHandler) export(
	c *gin.Context,
	name string,
	fn func(ctx context.Context, req dto.ExportReportRequest) (*dto.ReportTable, string, error),
) {
	var req dto.ExportReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	// The flat table is also available as JSON for spreadsheet-less
	// consumers.
	table, csvBody, err := fn(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, table)
		return
	}

	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", []byte(csvBody))
}

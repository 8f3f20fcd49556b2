package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/v1"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/config"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/rest/middleware"
)

// Handlers groups the HTTP handlers wired into the router.
type Handlers struct {
	Health    *v1.HealthHandler
	Payment   *v1.PaymentHandler
	Invoice   *v1.InvoiceHandler
	Report    *v1.ReportHandler
	Dashboard *v1.DashboardHandler
}

// NewRouter assembles the gin engine with the standard middleware chain.
func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	if cfg.Deployment.Mode == config.ModeProd {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = log.GetGinLogger()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.SentryMiddleware(cfg))
	router.Use(middleware.LoggingMiddleware(log))

	router.GET("/health", handlers.Health.Health)

	scoped := router.Group("/v1")
	scoped.Use(middleware.RequestContextMiddleware())
	scoped.Use(middleware.SentryLandlordContextMiddleware)
	scoped.Use(middleware.ErrorHandlerMiddleware(log))
	{
		payments := scoped.Group("/payments")
		{
			payments.POST("", handlers.Payment.CreatePayment)
			payments.GET("", handlers.Payment.ListPayments)
			payments.GET("/:id", handlers.Payment.GetPayment)
		}

		invoices := scoped.Group("/invoices")
		{
			invoices.GET("", handlers.Invoice.ListInvoices)
			invoices.GET("/:id", handlers.Invoice.GetInvoice)
		}

		reports := scoped.Group("/reports")
		{
			reports.GET("/financial", handlers.Report.GetFinancialReport)
			reports.GET("/financial/export", handlers.Report.ExportFinancialReport)
			reports.GET("/occupancy", handlers.Report.GetOccupancyReport)
			reports.GET("/tenants", handlers.Report.GetTenantAnalytics)
			reports.GET("/tenants/export", handlers.Report.ExportTenantAnalytics)
			reports.GET("/properties", handlers.Report.GetPropertyPerformance)
		}

		scoped.GET("/dashboard", handlers.Dashboard.GetDashboard)
	}

	return router
}

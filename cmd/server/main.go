package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api"
	v1 "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/api/v1"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/cache"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/config"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/invoice"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/payment"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/property"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/tenant"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/unit"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/integration/mpesa"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/postgres"
	pgrepo "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/repository/postgres"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/sentry"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/service"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			postgres.NewClient,
			newDBClient,
			cache.Initialize,
			mpesa.NewClient,

			pgrepo.NewPaymentRepository,
			pgrepo.NewInvoiceRepository,
			pgrepo.NewTenantRepository,
			pgrepo.NewUnitRepository,
			pgrepo.NewPropertyRepository,

			newServiceParams,
			service.NewPaymentService,
			service.NewInvoiceService,
			service.NewFinancialReportService,
			service.NewOccupancyReportService,
			service.NewTenantAnalyticsService,
			service.NewPropertyPerformanceService,
			service.NewDashboardService,
			service.NewExportService,

			v1.NewHealthHandler,
			v1.NewPaymentHandler,
			v1.NewInvoiceHandler,
			v1.NewReportHandler,
			v1.NewDashboardHandler,

			newHandlers,
			api.NewRouter,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			startServer,
		),
	)
	app.Run()
}

func newDBClient(client *postgres.Client) postgres.IClient {
	return client
}

func newServiceParams(
	cfg *config.Configuration,
	log *logger.Logger,
	c cache.Cache,
	mpesaClient mpesa.Client,
	paymentRepo payment.Repository,
	invoiceRepo invoice.Repository,
	tenantRepo tenant.Repository,
	unitRepo unit.Repository,
	propertyRepo property.Repository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:       log,
		Config:       cfg,
		Cache:        c,
		PaymentRepo:  paymentRepo,
		InvoiceRepo:  invoiceRepo,
		TenantRepo:   tenantRepo,
		UnitRepo:     unitRepo,
		PropertyRepo: propertyRepo,
		MpesaClient:  mpesaClient,
	}
}

func newHandlers(
	health *v1.HealthHandler,
	paymentHandler *v1.PaymentHandler,
	invoiceHandler *v1.InvoiceHandler,
	reportHandler *v1.ReportHandler,
	dashboardHandler *v1.DashboardHandler,
) api.Handlers {
	return api.Handlers{
		Health:    health,
		Payment:   paymentHandler,
		Invoice:   invoiceHandler,
		Report:    reportHandler,
		Dashboard: dashboardHandler,
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	router *gin.Engine,
	db *postgres.Client,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Errorw("server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return db.Close()
		},
	})
}

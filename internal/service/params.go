package service

import (
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/cache"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/config"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/invoice"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/payment"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/property"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/tenant"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/unit"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/integration/mpesa"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
)

// ServiceParams carries the shared dependencies injected into every
// service. Services embed it and construct sibling services from it when
// they need cross-cutting functionality.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache

	// Repositories
	PaymentRepo  payment.Repository
	InvoiceRepo  invoice.Repository
	TenantRepo   tenant.Repository
	UnitRepo     unit.Repository
	PropertyRepo property.Repository

	// Integrations
	MpesaClient mpesa.Client
}

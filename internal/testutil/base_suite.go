package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/config"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
)

// Stores bundles the in-memory repositories handed to services under
// test.
type Stores struct {
	PaymentRepo  *InMemoryPaymentStore
	InvoiceRepo  *InMemoryInvoiceStore
	TenantRepo   *InMemoryTenantStore
	UnitRepo     *InMemoryUnitStore
	PropertyRepo *InMemoryPropertyStore
}

// BaseServiceTestSuite provides the shared scaffolding for service
// tests: a scoped context, fresh in-memory stores per test, a logger and
// a default config.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	cfg    *config.Configuration
	log    *logger.Logger
	stores Stores
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.cfg = config.GetDefaultConfig()
	s.log = GetLogger()
	s.stores = Stores{
		PaymentRepo:  NewInMemoryPaymentStore(),
		InvoiceRepo:  NewInMemoryInvoiceStore(),
		TenantRepo:   NewInMemoryTenantStore(),
		UnitRepo:     NewInMemoryUnitStore(),
		PropertyRepo: NewInMemoryPropertyStore(),
	}
}

func (s *BaseServiceTestSuite) TearDownTest() {
	s.stores.PaymentRepo.Clear()
	s.stores.InvoiceRepo.Clear()
	s.stores.TenantRepo.Clear()
	s.stores.UnitRepo.Clear()
	s.stores.PropertyRepo.Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.log
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

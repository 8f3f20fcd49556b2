package testutil

import (
	"context"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/invoice"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/payment"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

func storeUnavailable() error {
	return ierr.NewError("store unavailable").
		WithHint("The data store is unreachable").
		Mark(ierr.ErrDatabase)
}

// FailingInvoiceStore implements invoice.Repository and fails every
// call. Used to exercise degraded-report behavior.
type FailingInvoiceStore struct{}

func NewFailingInvoiceStore() *FailingInvoiceStore {
	return &FailingInvoiceStore{}
}

func (s *FailingInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	return nil, storeUnavailable()
}

func (s *FailingInvoiceStore) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	return nil, storeUnavailable()
}

func (s *FailingInvoiceStore) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	return 0, storeUnavailable()
}

func (s *FailingInvoiceStore) CountByStatus(ctx context.Context) (map[types.InvoiceStatus]int, error) {
	return nil, storeUnavailable()
}

// FailingPaymentStore implements payment.Repository and fails every
// call.
type FailingPaymentStore struct{}

func NewFailingPaymentStore() *FailingPaymentStore {
	return &FailingPaymentStore{}
}

func (s *FailingPaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	return storeUnavailable()
}

func (s *FailingPaymentStore) Get(ctx context.Context, id string) (*payment.Payment, error) {
	return nil, storeUnavailable()
}

func (s *FailingPaymentStore) List(ctx context.Context, filter *types.PaymentFilter) ([]*payment.Payment, error) {
	return nil, storeUnavailable()
}

func (s *FailingPaymentStore) Count(ctx context.Context, filter *types.PaymentFilter) (int, error) {
	return 0, storeUnavailable()
}

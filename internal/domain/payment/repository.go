package payment

import (
	"context"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// Repository defines the interface for payment persistence operations.
// There is intentionally no Update or Delete: recorded payments are
// immutable.
type Repository interface {
	// Create records a new payment
	Create(ctx context.Context, p *Payment) error

	// Get retrieves a payment by id within the landlord scope
	Get(ctx context.Context, id string) (*Payment, error)

	// List retrieves payments matching the filter within the landlord scope
	List(ctx context.Context, filter *types.PaymentFilter) ([]*Payment, error)

	// Count returns the number of payments matching the filter
	Count(ctx context.Context, filter *types.PaymentFilter) (int, error)
}

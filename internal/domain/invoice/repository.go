package invoice

import (
	"context"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// Repository defines read access to rent invoices. Invoices are owned and
// mutated by the billing backend; this service never writes them.
type Repository interface {
	// Get retrieves an invoice by id within the landlord scope
	Get(ctx context.Context, id string) (*Invoice, error)

	// List retrieves invoices matching the filter within the landlord scope
	List(ctx context.Context, filter *types.InvoiceFilter) ([]*Invoice, error)

	// Count returns the number of invoices matching the filter, ignoring
	// pagination
	Count(ctx context.Context, filter *types.InvoiceFilter) (int, error)

	// CountByStatus returns invoice counts per status within the landlord scope
	CountByStatus(ctx context.Context) (map[types.InvoiceStatus]int, error)
}

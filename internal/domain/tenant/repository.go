package tenant

import (
	"context"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// Repository defines the interface for tenant persistence operations.
type Repository interface {
	// Create creates a new tenant
	Create(ctx context.Context, t *Tenant) error

	// Get retrieves a tenant by id within the landlord scope
	Get(ctx context.Context, id string) (*Tenant, error)

	// List retrieves tenants matching the filter within the landlord scope
	List(ctx context.Context, filter *types.TenantFilter) ([]*Tenant, error)

	// Update updates a tenant's mutable fields
	Update(ctx context.Context, t *Tenant) error
}

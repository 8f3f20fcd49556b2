package unit

import (
	"context"
)

// Repository defines read access to units within the landlord scope.
type Repository interface {
	// Get retrieves a unit by id
	Get(ctx context.Context, id string) (*Unit, error)

	// List retrieves all units in the landlord scope
	List(ctx context.Context) ([]*Unit, error)

	// ListByProperty retrieves units belonging to a property
	ListByProperty(ctx context.Context, propertyID string) ([]*Unit, error)
}

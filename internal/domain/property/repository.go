package property

import (
	"context"
)

// Repository defines read access to properties within the landlord scope.
type Repository interface {
	// Get retrieves a property by id
	Get(ctx context.Context, id string) (*Property, error)

	// List retrieves all properties in the landlord scope
	List(ctx context.Context) ([]*Property, error)
}

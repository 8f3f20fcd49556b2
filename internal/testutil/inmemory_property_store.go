package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/property"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// InMemoryPropertyStore implements property.Repository. The read-only
// interface has no Create, so tests seed it with Add.
type InMemoryPropertyStore struct {
	*InMemoryStore[*property.Property]
}

func NewInMemoryPropertyStore() *InMemoryPropertyStore {
	return &InMemoryPropertyStore{
		InMemoryStore: NewInMemoryStore[*property.Property](),
	}
}

// Add seeds a property into the store.
func (s *InMemoryPropertyStore) Add(ctx context.Context, p *property.Property) error {
	if p == nil {
		return ierr.NewError("property cannot be nil").
			WithHint("Property cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if p.LandlordID == "" {
		p.LandlordID = types.GetLandlordID(ctx)
	}
	copied := *p
	return s.InMemoryStore.Create(ctx, p.ID, &copied)
}

func (s *InMemoryPropertyStore) Get(ctx context.Context, id string) (*property.Property, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.LandlordID != types.GetLandlordID(ctx) {
		return nil, ierr.NewError("property not found").
			WithHint("Property not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

func (s *InMemoryPropertyStore) List(ctx context.Context) ([]*property.Property, error) {
	properties, err := s.InMemoryStore.List(ctx, nil, propertyFilterFn, propertySortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list properties").
			Mark(ierr.ErrDatabase)
	}
	return lo.Map(properties, func(p *property.Property, _ int) *property.Property {
		copied := *p
		return &copied
	}), nil
}

func propertyFilterFn(ctx context.Context, p *property.Property, _ interface{}) bool {
	if p == nil {
		return false
	}
	if p.LandlordID != types.GetLandlordID(ctx) {
		return false
	}
	return p.Status != types.StatusDeleted
}

func propertySortFn(i, j *property.Property) bool {
	if i == nil || j == nil {
		return false
	}
	return i.Name < j.Name
}

func (s *InMemoryPropertyStore) Clear() {
	s.InMemoryStore.Clear()
}

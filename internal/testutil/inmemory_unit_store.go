package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/unit"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// InMemoryUnitStore implements unit.Repository. The read-only interface
// has no Create, so tests seed it with Add.
type InMemoryUnitStore struct {
	*InMemoryStore[*unit.Unit]
}

func NewInMemoryUnitStore() *InMemoryUnitStore {
	return &InMemoryUnitStore{
		InMemoryStore: NewInMemoryStore[*unit.Unit](),
	}
}

// Add seeds a unit into the store.
func (s *InMemoryUnitStore) Add(ctx context.Context, u *unit.Unit) error {
	if u == nil {
		return ierr.NewError("unit cannot be nil").
			WithHint("Unit cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if u.LandlordID == "" {
		u.LandlordID = types.GetLandlordID(ctx)
	}
	return s.InMemoryStore.Create(ctx, u.ID, copyUnit(u))
}

func copyUnit(u *unit.Unit) *unit.Unit {
	if u == nil {
		return nil
	}
	copied := *u
	return &copied
}

func (s *InMemoryUnitStore) Get(ctx context.Context, id string) (*unit.Unit, error) {
	u, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || u.LandlordID != types.GetLandlordID(ctx) {
		return nil, ierr.NewError("unit not found").
			WithHint("Unit not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyUnit(u), nil
}

func (s *InMemoryUnitStore) List(ctx context.Context) ([]*unit.Unit, error) {
	units, err := s.InMemoryStore.List(ctx, nil, unitFilterFn, unitSortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list units").
			Mark(ierr.ErrDatabase)
	}
	return lo.Map(units, func(u *unit.Unit, _ int) *unit.Unit {
		return copyUnit(u)
	}), nil
}

func (s *InMemoryUnitStore) ListByProperty(ctx context.Context, propertyID string) ([]*unit.Unit, error) {
	units, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(units, func(u *unit.Unit, _ int) bool {
		return u.PropertyID == propertyID
	}), nil
}

func unitFilterFn(ctx context.Context, u *unit.Unit, _ interface{}) bool {
	if u == nil {
		return false
	}
	if u.LandlordID != types.GetLandlordID(ctx) {
		return false
	}
	return u.Status != types.StatusDeleted
}

func unitSortFn(i, j *unit.Unit) bool {
	if i == nil || j == nil {
		return false
	}
	return i.UnitLabel < j.UnitLabel
}

func (s *InMemoryUnitStore) Clear() {
	s.InMemoryStore.Clear()
}

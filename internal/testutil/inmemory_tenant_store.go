package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/tenant"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// InMemoryTenantStore implements tenant.Repository
type InMemoryTenantStore struct {
	*InMemoryStore[*tenant.Tenant]
	units *unitPropertyIndex
}

func NewInMemoryTenantStore() *InMemoryTenantStore {
	return &InMemoryTenantStore{
		InMemoryStore: NewInMemoryStore[*tenant.Tenant](),
		units:         newUnitPropertyIndex(),
	}
}

// RegisterUnit records the property a unit belongs to so property_id
// filters behave like the SQL join.
func (s *InMemoryTenantStore) RegisterUnit(unitID, propertyID string) {
	s.units.set(unitID, propertyID)
}

func copyTenant(t *tenant.Tenant) *tenant.Tenant {
	if t == nil {
		return nil
	}
	copied := *t
	if t.MoveOutDate != nil {
		moveOut := *t.MoveOutDate
		copied.MoveOutDate = &moveOut
	}
	return &copied
}

func (s *InMemoryTenantStore) Create(ctx context.Context, t *tenant.Tenant) error {
	if t == nil {
		return ierr.NewError("tenant cannot be nil").
			WithHint("Tenant cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if t.LandlordID == "" {
		t.LandlordID = types.GetLandlordID(ctx)
	}

	err := s.InMemoryStore.Create(ctx, t.ID, copyTenant(t))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create tenant").
			WithReportableDetails(map[string]interface{}{
				"id": t.ID,
			}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryTenantStore) Get(ctx context.Context, id string) (*tenant.Tenant, error) {
	t, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || t.LandlordID != types.GetLandlordID(ctx) {
		return nil, ierr.NewError("tenant not found").
			WithHint("Tenant not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyTenant(t), nil
}

func (s *InMemoryTenantStore) List(ctx context.Context, filter *types.TenantFilter) ([]*tenant.Tenant, error) {
	if filter == nil {
		filter = types.NewTenantFilter()
	}

	tenants, err := s.InMemoryStore.List(ctx, filter, s.tenantFilterFn, tenantSortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list tenants").
			Mark(ierr.ErrDatabase)
	}
	tenants = applyPagination(tenants, filter.QueryFilter)
	return lo.Map(tenants, func(t *tenant.Tenant, _ int) *tenant.Tenant {
		return copyTenant(t)
	}), nil
}

func (s *InMemoryTenantStore) Update(ctx context.Context, t *tenant.Tenant) error {
	if t == nil {
		return ierr.NewError("tenant cannot be nil").
			WithHint("Tenant cannot be nil").
			Mark(ierr.ErrValidation)
	}

	err := s.InMemoryStore.Update(ctx, t.ID, copyTenant(t))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update tenant").
			WithReportableDetails(map[string]interface{}{
				"id": t.ID,
			}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryTenantStore) tenantFilterFn(ctx context.Context, t *tenant.Tenant, filter interface{}) bool {
	if t == nil {
		return false
	}
	if t.LandlordID != types.GetLandlordID(ctx) {
		return false
	}
	if t.Status == types.StatusDeleted {
		return false
	}

	f, ok := filter.(*types.TenantFilter)
	if !ok || f == nil {
		return true
	}

	if len(f.TenantStatuses) > 0 && !lo.Contains(f.TenantStatuses, t.TenantStatus) {
		return false
	}
	if len(f.UnitIDs) > 0 && !lo.Contains(f.UnitIDs, t.CurrentUnitID) {
		return false
	}
	if f.PropertyID != "" && !s.units.belongsTo(t.CurrentUnitID, f.PropertyID) {
		return false
	}
	return true
}

func tenantSortFn(i, j *tenant.Tenant) bool {
	if i == nil || j == nil {
		return false
	}
	return i.FullName < j.FullName
}

func (s *InMemoryTenantStore) Clear() {
	s.InMemoryStore.Clear()
}

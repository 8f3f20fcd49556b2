package types

import (
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
)

// TenantStatus enumerates occupancy states for a tenant.
type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "ACTIVE"
	TenantStatusInactive TenantStatus = "INACTIVE"
)

func (s TenantStatus) String() string {
	return string(s)
}

func (s TenantStatus) Validate() error {
	switch s {
	case TenantStatusActive, TenantStatusInactive:
		return nil
	}
	return ierr.NewErrorf("invalid tenant status: %s", s).
		WithHint("status must be ACTIVE or INACTIVE").
		Mark(ierr.ErrValidation)
}

// TenantFilter represents the filter options for tenants.
type TenantFilter struct {
	*QueryFilter
	TenantStatuses []TenantStatus `json:"tenant_statuses,omitempty" form:"tenant_statuses"`
	UnitIDs        []string       `json:"unit_ids,omitempty" form:"unit_ids"`
	PropertyID     string         `json:"property_id,omitempty" form:"property_id"`
}

// NewTenantFilter creates a tenant filter with default pagination.
func NewTenantFilter() *TenantFilter {
	return &TenantFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *TenantFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	for _, s := range f.TenantStatuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

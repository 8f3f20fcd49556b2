package tenant

import (
	"time"

	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// Tenant is a renter, possibly assigned to a unit.
type Tenant struct {
	ID            string             `json:"id"`
	FullName      string             `json:"full_name"`
	Phone         string             `json:"phone,omitempty"`
	Email         string             `json:"email,omitempty"`
	TenantStatus  types.TenantStatus `json:"tenant_status"`
	CurrentUnitID string             `json:"current_unit_id,omitempty"`
	MoveInDate    time.Time          `json:"move_in_date"`
	MoveOutDate   *time.Time         `json:"move_out_date,omitempty"`
	types.BaseModel
}

// Validate validates the tenant.
func (t *Tenant) Validate() error {
	if t.FullName == "" {
		return ierr.NewError("full_name is required").
			WithHint("Tenant must have a name").
			Mark(ierr.ErrValidation)
	}
	if err := t.TenantStatus.Validate(); err != nil {
		return err
	}
	if t.MoveOutDate != nil && t.MoveOutDate.Before(t.MoveInDate) {
		return ierr.NewError("move_out_date before move_in_date").
			WithHint("Move-out date must not be earlier than move-in date").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// MovedOutWithin reports whether the tenant ended their tenancy inside the
// given range. Used by the retention rate as the "lost" side.
func (t *Tenant) MovedOutWithin(r types.DateRange) bool {
	if t.MoveOutDate == nil {
		return false
	}
	return r.Contains(*t.MoveOutDate)
}

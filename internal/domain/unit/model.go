package unit

import (
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
	"github.com/shopspring/decimal"
)

// Unit is a rentable unit within a property.
type Unit struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"property_id"`
	UnitLabel   string          `json:"unit_label"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	IsActive    bool            `json:"is_active"`
	types.BaseModel
}

// Validate validates the unit.
func (u *Unit) Validate() error {
	if u.PropertyID == "" {
		return ierr.NewError("property_id is required").
			WithHint("Unit must belong to a property").
			Mark(ierr.ErrValidation)
	}
	if u.UnitLabel == "" {
		return ierr.NewError("unit_label is required").
			WithHint("Unit must have a label").
			Mark(ierr.ErrValidation)
	}
	if u.MonthlyRent.IsNegative() {
		return ierr.NewError("monthly_rent must not be negative").
			WithHint("Monthly rent must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	return nil
}

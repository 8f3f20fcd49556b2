package property

import (
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// Property is a building or compound owned by the landlord in scope.
type Property struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	types.BaseModel
}

// Validate validates the property.
func (p *Property) Validate() error {
	if p.Name == "" {
		return ierr.NewError("name is required").
			WithHint("Property must have a name").
			Mark(ierr.ErrValidation)
	}
	return nil
}

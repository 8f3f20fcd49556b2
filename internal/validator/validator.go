package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"

	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRequest runs struct tag validation and converts failures into
// the standard validation error shape.
func ValidateRequest(req interface{}) error {
	if err := getValidator().Struct(req); err != nil {
		details := map[string]interface{}{}
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				details[fe.Field()] = fe.Tag()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}

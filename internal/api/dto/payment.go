package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/payment"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/validator"
)

// CreatePaymentRequest records a rent payment.
type CreatePaymentRequest struct {
	TenantID    string              `json:"tenant_id" validate:"required"`
	UnitID      string              `json:"unit_id" validate:"required"`
	Amount      decimal.Decimal     `json:"amount"`
	PaymentDate string              `json:"payment_date" validate:"required"`
	Method      types.PaymentMethod `json:"method" validate:"required"`
	TxnRef      string              `json:"txn_ref,omitempty"`
}

func (r *CreatePaymentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ierr.NewError("amount must be positive").
			WithHint("Payment amount must be greater than zero").
			WithReportableDetails(map[string]interface{}{
				"amount": r.Amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if err := r.Method.Validate(); err != nil {
		return err
	}
	if r.Method == types.PaymentMethodMpesa && r.TxnRef == "" {
		return ierr.NewError("txn_ref is required for mpesa payments").
			WithHint("Provide the M-PESA transaction reference").
			Mark(ierr.ErrValidation)
	}
	if _, err := time.Parse(types.DateFormat, r.PaymentDate); err != nil {
		return ierr.WithError(err).
			WithHint("payment_date must be an ISO date, e.g. 2026-01-31").
			WithReportableDetails(map[string]interface{}{
				"payment_date": r.PaymentDate,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToPayment builds the domain payment. Validate must have passed.
func (r *CreatePaymentRequest) ToPayment(ctx context.Context) *payment.Payment {
	paymentDate, _ := time.Parse(types.DateFormat, r.PaymentDate)
	return &payment.Payment{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		TenantID:    r.TenantID,
		UnitID:      r.UnitID,
		Amount:      r.Amount,
		PaymentDate: paymentDate,
		Method:      r.Method,
		TxnRef:      r.TxnRef,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

// PaymentResponse is the wire shape of a recorded payment.
type PaymentResponse struct {
	*payment.Payment
	// Verified is set when the payment reference was checked against the
	// gateway and the amounts matched.
	Verified *bool `json:"verified,omitempty"`
}

// ListPaymentsRequest filters the payment listing.
type ListPaymentsRequest struct {
	DateRangeRequest
	TenantID   string `form:"tenant_id" json:"tenant_id,omitempty"`
	UnitID     string `form:"unit_id" json:"unit_id,omitempty"`
	PropertyID string `form:"property_id" json:"property_id,omitempty"`
	Method     string `form:"method" json:"method,omitempty"`
	Limit      *int   `form:"limit" json:"limit,omitempty"`
	Offset     *int   `form:"offset" json:"offset,omitempty"`
}

// ToFilter builds the repository filter for the listing.
func (r *ListPaymentsRequest) ToFilter(dateRange types.DateRange) *types.PaymentFilter {
	filter := types.NewPaymentFilter()
	if r.Limit != nil {
		filter.QueryFilter.Limit = r.Limit
	}
	if r.Offset != nil {
		filter.QueryFilter.Offset = r.Offset
	}
	filter.TimeRangeFilter = &types.TimeRangeFilter{
		StartTime: &dateRange.StartDate,
		EndTime:   &dateRange.EndDate,
	}
	if r.TenantID != "" {
		filter.TenantIDs = []string{r.TenantID}
	}
	if r.UnitID != "" {
		filter.UnitIDs = []string{r.UnitID}
	}
	if r.PropertyID != "" {
		filter.PropertyID = r.PropertyID
	}
	if r.Method != "" {
		filter.Methods = []types.PaymentMethod{types.PaymentMethod(r.Method)}
	}
	return filter
}

// ListPaymentsResponse is a paginated payment listing.
type ListPaymentsResponse struct {
	Items []*PaymentResponse `json:"items"`
	Total int                `json:"total"`
}

package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/payment"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// InMemoryPaymentStore implements payment.Repository
type InMemoryPaymentStore struct {
	*InMemoryStore[*payment.Payment]
	units *unitPropertyIndex
}

func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore: NewInMemoryStore[*payment.Payment](),
		units:         newUnitPropertyIndex(),
	}
}

// RegisterUnit records the property a unit belongs to so property_id
// filters behave like the SQL join.
func (s *InMemoryPaymentStore) RegisterUnit(unitID, propertyID string) {
	s.units.set(unitID, propertyID)
}

func copyPayment(p *payment.Payment) *payment.Payment {
	if p == nil {
		return nil
	}
	copied := *p
	return &copied
}

func (s *InMemoryPaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	if p == nil {
		return ierr.NewError("payment cannot be nil").
			WithHint("Payment cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if p.LandlordID == "" {
		p.LandlordID = types.GetLandlordID(ctx)
	}

	err := s.InMemoryStore.Create(ctx, p.ID, copyPayment(p))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to record payment").
			WithReportableDetails(map[string]interface{}{
				"id": p.ID,
			}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryPaymentStore) Get(ctx context.Context, id string) (*payment.Payment, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.LandlordID != types.GetLandlordID(ctx) {
		return nil, ierr.NewError("payment not found").
			WithHint("Payment not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyPayment(p), nil
}

func (s *InMemoryPaymentStore) List(ctx context.Context, filter *types.PaymentFilter) ([]*payment.Payment, error) {
	if filter == nil {
		filter = types.NewPaymentFilter()
	}

	payments, err := s.InMemoryStore.List(ctx, filter, s.paymentFilterFn, paymentSortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments").
			Mark(ierr.ErrDatabase)
	}
	payments = applyPagination(payments, filter.QueryFilter)
	return lo.Map(payments, func(p *payment.Payment, _ int) *payment.Payment {
		return copyPayment(p)
	}), nil
}

func (s *InMemoryPaymentStore) Count(ctx context.Context, filter *types.PaymentFilter) (int, error) {
	if filter == nil {
		filter = types.NewPaymentFilter()
	}
	return s.InMemoryStore.Count(ctx, filter, s.paymentFilterFn)
}

func (s *InMemoryPaymentStore) paymentFilterFn(ctx context.Context, p *payment.Payment, filter interface{}) bool {
	if p == nil {
		return false
	}
	if p.LandlordID != types.GetLandlordID(ctx) {
		return false
	}
	if p.Status == types.StatusDeleted {
		return false
	}

	f, ok := filter.(*types.PaymentFilter)
	if !ok || f == nil {
		return true
	}

	if len(f.TenantIDs) > 0 && !lo.Contains(f.TenantIDs, p.TenantID) {
		return false
	}
	if len(f.UnitIDs) > 0 && !lo.Contains(f.UnitIDs, p.UnitID) {
		return false
	}
	if len(f.Methods) > 0 && !lo.Contains(f.Methods, p.Method) {
		return false
	}
	if f.PropertyID != "" && !s.units.belongsTo(p.UnitID, f.PropertyID) {
		return false
	}

	// The time range applies to the payment date, not created_at.
	if f.TimeRangeFilter != nil {
		if f.StartTime != nil && p.PaymentDate.Before(*f.StartTime) {
			return false
		}
		if f.EndTime != nil && p.PaymentDate.After(*f.EndTime) {
			return false
		}
	}
	return true
}

func paymentSortFn(i, j *payment.Payment) bool {
	if i == nil || j == nil {
		return false
	}
	return i.PaymentDate.After(j.PaymentDate)
}

func (s *InMemoryPaymentStore) Clear() {
	s.InMemoryStore.Clear()
}

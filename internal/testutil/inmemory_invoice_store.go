package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/invoice"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// InMemoryInvoiceStore implements invoice.Repository. The read-only
// interface has no Create, so tests seed it with Add.
type InMemoryInvoiceStore struct {
	*InMemoryStore[*invoice.Invoice]
	units *unitPropertyIndex
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore[*invoice.Invoice](),
		units:         newUnitPropertyIndex(),
	}
}

// RegisterUnit records the property a unit belongs to so property_id
// filters behave like the SQL join.
func (s *InMemoryInvoiceStore) RegisterUnit(unitID, propertyID string) {
	s.units.set(unitID, propertyID)
}

// Add seeds an invoice into the store.
func (s *InMemoryInvoiceStore) Add(ctx context.Context, inv *invoice.Invoice) error {
	if inv == nil {
		return ierr.NewError("invoice cannot be nil").
			WithHint("Invoice cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if inv.LandlordID == "" {
		inv.LandlordID = types.GetLandlordID(ctx)
	}
	return s.InMemoryStore.Create(ctx, inv.ID, copyInvoice(inv))
}

func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}
	copied := *inv
	if inv.PaidAt != nil {
		paidAt := *inv.PaidAt
		copied.PaidAt = &paidAt
	}
	return &copied
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || inv.LandlordID != types.GetLandlordID(ctx) {
		return nil, ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(inv), nil
}

func (s *InMemoryInvoiceStore) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	if filter == nil {
		filter = types.NewInvoiceFilter()
	}

	invoices, err := s.InMemoryStore.List(ctx, filter, s.invoiceFilterFn, invoiceSortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}
	invoices = applyPagination(invoices, filter.QueryFilter)
	return lo.Map(invoices, func(inv *invoice.Invoice, _ int) *invoice.Invoice {
		return copyInvoice(inv)
	}), nil
}

func (s *InMemoryInvoiceStore) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	count, err := s.InMemoryStore.Count(ctx, filter, s.invoiceFilterFn)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count invoices").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (s *InMemoryInvoiceStore) CountByStatus(ctx context.Context) (map[types.InvoiceStatus]int, error) {
	invoices, err := s.InMemoryStore.List(ctx, nil, s.invoiceFilterFn, nil)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrDatabase)
	}

	counts := make(map[types.InvoiceStatus]int)
	for _, inv := range invoices {
		counts[inv.InvoiceStatus]++
	}
	return counts, nil
}

func (s *InMemoryInvoiceStore) invoiceFilterFn(ctx context.Context, inv *invoice.Invoice, filter interface{}) bool {
	if inv == nil {
		return false
	}
	if inv.LandlordID != types.GetLandlordID(ctx) {
		return false
	}
	if inv.Status == types.StatusDeleted {
		return false
	}

	f, ok := filter.(*types.InvoiceFilter)
	if !ok || f == nil {
		return true
	}

	if len(f.TenantIDs) > 0 && !lo.Contains(f.TenantIDs, inv.TenantID) {
		return false
	}
	if len(f.UnitIDs) > 0 && !lo.Contains(f.UnitIDs, inv.UnitID) {
		return false
	}
	if len(f.InvoiceStatuses) > 0 && !lo.Contains(f.InvoiceStatuses, inv.InvoiceStatus) {
		return false
	}
	if f.PropertyID != "" && !s.units.belongsTo(inv.UnitID, f.PropertyID) {
		return false
	}

	// The time range applies to the due date.
	if f.TimeRangeFilter != nil {
		if f.StartTime != nil && inv.DueDate.Before(*f.StartTime) {
			return false
		}
		if f.EndTime != nil && inv.DueDate.After(*f.EndTime) {
			return false
		}
	}
	return true
}

func invoiceSortFn(i, j *invoice.Invoice) bool {
	if i == nil || j == nil {
		return false
	}
	return i.DueDate.After(j.DueDate)
}

func (s *InMemoryInvoiceStore) Clear() {
	s.InMemoryStore.Clear()
}

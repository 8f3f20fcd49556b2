package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	domainInvoice "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/invoice"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/postgres"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
	"github.com/lib/pq"
)

const invoiceColumns = `id, unit_id, tenant_id, period_start, period_end, due_date,
	amount_due, amount_paid, invoice_status, paid_at,
	landlord_id, status, created_at, updated_at, created_by, updated_by`

type invoiceRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewInvoiceRepository creates a new rent invoice repository
func NewInvoiceRepository(client postgres.IClient, logger *logger.Logger) domainInvoice.Repository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*domainInvoice.Invoice, error) {
	row := r.client.QueryRowContext(ctx, `
		SELECT `+invoiceColumns+`
		FROM rent_invoices
		WHERE id = $1 AND landlord_id = $2 AND status != $3`,
		id, types.GetLandlordID(ctx), types.StatusDeleted,
	)

	inv, err := scanInvoice(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("invoice not found").
				WithHint("No rent invoice exists with the given id").
				WithReportableDetails(map[string]interface{}{"invoice_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get invoice").
			Mark(ierr.ErrDatabase)
	}
	return inv, nil
}

func (r *invoiceRepository) List(ctx context.Context, filter *types.InvoiceFilter) ([]*domainInvoice.Invoice, error) {
	query, args := r.buildListQuery(ctx, "SELECT "+invoiceColumns, filter, true)

	rows, err := r.client.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var invoices []*domainInvoice.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan invoice row").
				Mark(ierr.ErrDatabase)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate invoice rows").
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}

func (r *invoiceRepository) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	query, args := r.buildListQuery(ctx, "SELECT COUNT(*)", filter, false)

	var count int
	if err := r.client.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count invoices").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

// buildListQuery assembles the filtered invoice query. The landlord scope
// from the context is always the first predicate.
func (r *invoiceRepository) buildListQuery(ctx context.Context, selectClause string, filter *types.InvoiceFilter, paginate bool) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(selectClause)
	sb.WriteString(" FROM rent_invoices WHERE landlord_id = $1 AND status != $2")
	args := []interface{}{types.GetLandlordID(ctx), types.StatusDeleted}

	if filter == nil {
		return sb.String(), args
	}

	if len(filter.TenantIDs) > 0 {
		args = append(args, pq.Array(filter.TenantIDs))
		sb.WriteString(fmt.Sprintf(" AND tenant_id = ANY($%d)", len(args)))
	}
	if len(filter.UnitIDs) > 0 {
		args = append(args, pq.Array(filter.UnitIDs))
		sb.WriteString(fmt.Sprintf(" AND unit_id = ANY($%d)", len(args)))
	}
	if len(filter.InvoiceStatuses) > 0 {
		statuses := make([]string, len(filter.InvoiceStatuses))
		for i, s := range filter.InvoiceStatuses {
			statuses[i] = string(s)
		}
		args = append(args, pq.Array(statuses))
		sb.WriteString(fmt.Sprintf(" AND invoice_status = ANY($%d)", len(args)))
	}
	if filter.PropertyID != "" {
		args = append(args, filter.PropertyID)
		sb.WriteString(fmt.Sprintf(" AND unit_id IN (SELECT id FROM units WHERE property_id = $%d)", len(args)))
	}
	if filter.TimeRangeFilter != nil {
		if filter.StartTime != nil {
			args = append(args, *filter.StartTime)
			sb.WriteString(fmt.Sprintf(" AND due_date >= $%d", len(args)))
		}
		if filter.EndTime != nil {
			args = append(args, *filter.EndTime)
			sb.WriteString(fmt.Sprintf(" AND due_date <= $%d", len(args)))
		}
	}

	if paginate {
		order := "DESC"
		if filter.GetOrder() == "asc" {
			order = "ASC"
		}
		sb.WriteString(" ORDER BY due_date " + order)

		if filter.QueryFilter != nil && filter.QueryFilter.Limit != nil {
			args = append(args, filter.GetLimit())
			sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
		}
		if offset := filter.GetOffset(); offset > 0 {
			args = append(args, offset)
			sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
		}
	}

	return sb.String(), args
}

func (r *invoiceRepository) CountByStatus(ctx context.Context) (map[types.InvoiceStatus]int, error) {
	rows, err := r.client.QueryContext(ctx, `
		SELECT invoice_status, COUNT(*)
		FROM rent_invoices
		WHERE landlord_id = $1 AND status != $2
		GROUP BY invoice_status`,
		types.GetLandlordID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to count invoices by status").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	counts := make(map[types.InvoiceStatus]int)
	for rows.Next() {
		var status types.InvoiceStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan invoice status count").
				Mark(ierr.ErrDatabase)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate invoice status counts").
			Mark(ierr.ErrDatabase)
	}
	return counts, nil
}

func scanInvoice(row rowScanner) (*domainInvoice.Invoice, error) {
	var inv domainInvoice.Invoice
	var paidAt sql.NullTime
	err := row.Scan(
		&inv.ID, &inv.UnitID, &inv.TenantID, &inv.PeriodStart, &inv.PeriodEnd, &inv.DueDate,
		&inv.AmountDue, &inv.AmountPaid, &inv.InvoiceStatus, &paidAt,
		&inv.LandlordID, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt, &inv.CreatedBy, &inv.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if paidAt.Valid {
		inv.PaidAt = &paidAt.Time
	}
	return &inv, nil
}

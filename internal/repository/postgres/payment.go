package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	domainPayment "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/payment"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/postgres"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
	"github.com/lib/pq"
)

const paymentColumns = `id, tenant_id, unit_id, amount, payment_date, method, txn_ref,
	landlord_id, status, created_at, updated_at, created_by, updated_by`

type paymentRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(client postgres.IClient, logger *logger.Logger) domainPayment.Repository {
	return &paymentRepository{
		client: client,
		logger: logger,
	}
}

func (r *paymentRepository) Create(ctx context.Context, p *domainPayment.Payment) error {
	r.logger.Debugw("creating payment", "payment_id", p.ID, "tenant_id", p.TenantID)

	_, err := r.client.ExecContext(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.TenantID, p.UnitID, p.Amount, p.PaymentDate, p.Method, p.TxnRef,
		p.LandlordID, p.Status, p.CreatedAt, p.UpdatedAt, p.CreatedBy, p.UpdatedBy,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return ierr.WithError(err).
				WithHint("A payment with this id already exists").
				WithReportableDetails(map[string]interface{}{"payment_id": p.ID}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to record payment").
			WithReportableDetails(map[string]interface{}{"payment_id": p.ID}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *paymentRepository) Get(ctx context.Context, id string) (*domainPayment.Payment, error) {
	row := r.client.QueryRowContext(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE id = $1 AND landlord_id = $2 AND status != $3`,
		id, types.GetLandlordID(ctx), types.StatusDeleted,
	)

	p, err := scanPayment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("payment not found").
				WithHint("No payment exists with the given id").
				WithReportableDetails(map[string]interface{}{"payment_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get payment").
			Mark(ierr.ErrDatabase)
	}
	return p, nil
}

func (r *paymentRepository) List(ctx context.Context, filter *types.PaymentFilter) ([]*domainPayment.Payment, error) {
	query, args := r.buildListQuery(ctx, "SELECT "+paymentColumns, filter, true)

	rows, err := r.client.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var payments []*domainPayment.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan payment row").
				Mark(ierr.ErrDatabase)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate payment rows").
			Mark(ierr.ErrDatabase)
	}
	return payments, nil
}

func (r *paymentRepository) Count(ctx context.Context, filter *types.PaymentFilter) (int, error) {
	query, args := r.buildListQuery(ctx, "SELECT COUNT(*)", filter, false)

	var count int
	if err := r.client.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count payments").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

// buildListQuery assembles the filtered payment query. The landlord scope
// from the context is always the first predicate.
func (r *paymentRepository) buildListQuery(ctx context.Context, selectClause string, filter *types.PaymentFilter, paginate bool) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(selectClause)
	sb.WriteString(" FROM payments WHERE landlord_id = $1 AND status != $2")
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
	if len(filter.Methods) > 0 {
		methods := make([]string, len(filter.Methods))
		for i, m := range filter.Methods {
			methods[i] = string(m)
		}
		args = append(args, pq.Array(methods))
		sb.WriteString(fmt.Sprintf(" AND method = ANY($%d)", len(args)))
	}
	if filter.PropertyID != "" {
		args = append(args, filter.PropertyID)
		sb.WriteString(fmt.Sprintf(" AND unit_id IN (SELECT id FROM units WHERE property_id = $%d)", len(args)))
	}
	if filter.TimeRangeFilter != nil {
		if filter.StartTime != nil {
			args = append(args, *filter.StartTime)
			sb.WriteString(fmt.Sprintf(" AND payment_date >= $%d", len(args)))
		}
		if filter.EndTime != nil {
			args = append(args, *filter.EndTime)
			sb.WriteString(fmt.Sprintf(" AND payment_date <= $%d", len(args)))
		}
	}

	if paginate {
		order := "DESC"
		if filter.GetOrder() == "asc" {
			order = "ASC"
		}
		sb.WriteString(" ORDER BY payment_date " + order)

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

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*domainPayment.Payment, error) {
	var p domainPayment.Payment
	var unitID, txnRef sql.NullString
	err := row.Scan(
		&p.ID, &p.TenantID, &unitID, &p.Amount, &p.PaymentDate, &p.Method, &txnRef,
		&p.LandlordID, &p.Status, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	p.UnitID = unitID.String
	p.TxnRef = txnRef.String
	return &p, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	domainTenant "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/tenant"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/postgres"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
	"github.com/lib/pq"
)

const tenantColumns = `id, full_name, phone, email, tenant_status, current_unit_id,
	move_in_date, move_out_date,
	landlord_id, status, created_at, updated_at, created_by, updated_by`

type tenantRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(client postgres.IClient, logger *logger.Logger) domainTenant.Repository {
	return &tenantRepository{
		client: client,
		logger: logger,
	}
}

func (r *tenantRepository) Create(ctx context.Context, t *domainTenant.Tenant) error {
	r.logger.Debugw("creating tenant", "tenant_id", t.ID, "full_name", t.FullName)

	_, err := r.client.ExecContext(ctx, `
		INSERT INTO tenants (`+tenantColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		t.ID, t.FullName, t.Phone, t.Email, t.TenantStatus, t.CurrentUnitID,
		t.MoveInDate, t.MoveOutDate,
		t.LandlordID, t.Status, t.CreatedAt, t.UpdatedAt, t.CreatedBy, t.UpdatedBy,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return ierr.WithError(err).
				WithHint("A tenant with this id already exists").
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create tenant").
			WithReportableDetails(map[string]interface{}{"tenant_id": t.ID}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *tenantRepository) Get(ctx context.Context, id string) (*domainTenant.Tenant, error) {
	row := r.client.QueryRowContext(ctx, `
		SELECT `+tenantColumns+`
		FROM tenants
		WHERE id = $1 AND landlord_id = $2 AND status != $3`,
		id, types.GetLandlordID(ctx), types.StatusDeleted,
	)

	t, err := scanTenant(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("tenant not found").
				WithHint("No tenant exists with the given id").
				WithReportableDetails(map[string]interface{}{"tenant_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get tenant").
			Mark(ierr.ErrDatabase)
	}
	return t, nil
}

func (r *tenantRepository) List(ctx context.Context, filter *types.TenantFilter) ([]*domainTenant.Tenant, error) {
	var sb strings.Builder
	sb.WriteString("SELECT " + tenantColumns + " FROM tenants WHERE landlord_id = $1 AND status != $2")
	args := []interface{}{types.GetLandlordID(ctx), types.StatusDeleted}

	if filter != nil {
		if len(filter.TenantStatuses) > 0 {
			statuses := make([]string, len(filter.TenantStatuses))
			for i, s := range filter.TenantStatuses {
				statuses[i] = string(s)
			}
			args = append(args, pq.Array(statuses))
			sb.WriteString(fmt.Sprintf(" AND tenant_status = ANY($%d)", len(args)))
		}
		if len(filter.UnitIDs) > 0 {
			args = append(args, pq.Array(filter.UnitIDs))
			sb.WriteString(fmt.Sprintf(" AND current_unit_id = ANY($%d)", len(args)))
		}
		if filter.PropertyID != "" {
			args = append(args, filter.PropertyID)
			sb.WriteString(fmt.Sprintf(" AND current_unit_id IN (SELECT id FROM units WHERE property_id = $%d)", len(args)))
		}
	}

	sb.WriteString(" ORDER BY full_name ASC")

	rows, err := r.client.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list tenants").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var tenants []*domainTenant.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan tenant row").
				Mark(ierr.ErrDatabase)
		}
		tenants = append(tenants, t)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate tenant rows").
			Mark(ierr.ErrDatabase)
	}
	return tenants, nil
}

func (r *tenantRepository) Update(ctx context.Context, t *domainTenant.Tenant) error {
	t.UpdatedAt = time.Now().UTC()
	t.UpdatedBy = types.GetUserID(ctx)

	result, err := r.client.ExecContext(ctx, `
		UPDATE tenants
		SET full_name = $1, phone = $2, email = $3, tenant_status = $4,
			current_unit_id = $5, move_out_date = $6, updated_at = $7, updated_by = $8
		WHERE id = $9 AND landlord_id = $10`,
		t.FullName, t.Phone, t.Email, t.TenantStatus,
		t.CurrentUnitID, t.MoveOutDate, t.UpdatedAt, t.UpdatedBy,
		t.ID, types.GetLandlordID(ctx),
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update tenant").
			WithReportableDetails(map[string]interface{}{"tenant_id": t.ID}).
			Mark(ierr.ErrDatabase)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ierr.NewError("tenant not found").
			WithHint("No tenant exists with the given id").
			WithReportableDetails(map[string]interface{}{"tenant_id": t.ID}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func scanTenant(row rowScanner) (*domainTenant.Tenant, error) {
	var t domainTenant.Tenant
	var phone, email, unitID sql.NullString
	var moveOut sql.NullTime
	err := row.Scan(
		&t.ID, &t.FullName, &phone, &email, &t.TenantStatus, &unitID,
		&t.MoveInDate, &moveOut,
		&t.LandlordID, &t.Status, &t.CreatedAt, &t.UpdatedAt, &t.CreatedBy, &t.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	t.Phone = phone.String
	t.Email = email.String
	t.CurrentUnitID = unitID.String
	if moveOut.Valid {
		t.MoveOutDate = &moveOut.Time
	}
	return &t, nil
}

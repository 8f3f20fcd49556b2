package postgres

import (
	"context"
	"database/sql"

	domainUnit "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/unit"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/postgres"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

const unitColumns = `id, property_id, unit_label, monthly_rent, is_active,
	landlord_id, status, created_at, updated_at, created_by, updated_by`

type unitRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(client postgres.IClient, logger *logger.Logger) domainUnit.Repository {
	return &unitRepository{
		client: client,
		logger: logger,
	}
}

func (r *unitRepository) Get(ctx context.Context, id string) (*domainUnit.Unit, error) {
	row := r.client.QueryRowContext(ctx, `
		SELECT `+unitColumns+`
		FROM units
		WHERE id = $1 AND landlord_id = $2 AND status != $3`,
		id, types.GetLandlordID(ctx), types.StatusDeleted,
	)

	u, err := scanUnit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("unit not found").
				WithHint("No unit exists with the given id").
				WithReportableDetails(map[string]interface{}{"unit_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get unit").
			Mark(ierr.ErrDatabase)
	}
	return u, nil
}

func (r *unitRepository) List(ctx context.Context) ([]*domainUnit.Unit, error) {
	return r.list(ctx, `
		SELECT `+unitColumns+`
		FROM units
		WHERE landlord_id = $1 AND status != $2
		ORDER BY unit_label ASC`,
		types.GetLandlordID(ctx), types.StatusDeleted,
	)
}

func (r *unitRepository) ListByProperty(ctx context.Context, propertyID string) ([]*domainUnit.Unit, error) {
	return r.list(ctx, `
		SELECT `+unitColumns+`
		FROM units
		WHERE landlord_id = $1 AND status != $2 AND property_id = $3
		ORDER BY unit_label ASC`,
		types.GetLandlordID(ctx), types.StatusDeleted, propertyID,
	)
}

func (r *unitRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domainUnit.Unit, error) {
	rows, err := r.client.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list units").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var units []*domainUnit.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan unit row").
				Mark(ierr.ErrDatabase)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate unit rows").
			Mark(ierr.ErrDatabase)
	}
	return units, nil
}

func scanUnit(row rowScanner) (*domainUnit.Unit, error) {
	var u domainUnit.Unit
	err := row.Scan(
		&u.ID, &u.PropertyID, &u.UnitLabel, &u.MonthlyRent, &u.IsActive,
		&u.LandlordID, &u.Status, &u.CreatedAt, &u.UpdatedAt, &u.CreatedBy, &u.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

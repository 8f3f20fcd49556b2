package postgres

import (
	"context"
	"database/sql"

	domainProperty "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/domain/property"
	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/postgres"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

const propertyColumns = `id, name, location,
	landlord_id, status, created_at, updated_at, created_by, updated_by`

type propertyRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(client postgres.IClient, logger *logger.Logger) domainProperty.Repository {
	return &propertyRepository{
		client: client,
		logger: logger,
	}
}

func (r *propertyRepository) Get(ctx context.Context, id string) (*domainProperty.Property, error) {
	row := r.client.QueryRowContext(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE id = $1 AND landlord_id = $2 AND status != $3`,
		id, types.GetLandlordID(ctx), types.StatusDeleted,
	)

	p, err := scanProperty(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("property not found").
				WithHint("No property exists with the given id").
				WithReportableDetails(map[string]interface{}{"property_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get property").
			Mark(ierr.ErrDatabase)
	}
	return p, nil
}

func (r *propertyRepository) List(ctx context.Context) ([]*domainProperty.Property, error) {
	rows, err := r.client.QueryContext(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE landlord_id = $1 AND status != $2
		ORDER BY name ASC`,
		types.GetLandlordID(ctx), types.StatusDeleted,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list properties").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var properties []*domainProperty.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan property row").
				Mark(ierr.ErrDatabase)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate property rows").
			Mark(ierr.ErrDatabase)
	}
	return properties, nil
}

func scanProperty(row rowScanner) (*domainProperty.Property, error) {
	var p domainProperty.Property
	var location sql.NullString
	err := row.Scan(
		&p.ID, &p.Name, &location,
		&p.LandlordID, &p.Status, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	p.Location = location.String
	return &p, nil
}

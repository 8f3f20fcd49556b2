package types

import (
	"context"
	"time"

	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
)

// Status is the lifecycle status shared by all persisted entities.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
	StatusDeleted  Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusArchived, StatusDeleted:
		return nil
	}
	return ierr.NewErrorf("invalid status: %s", s).
		WithHint("status must be one of active, archived, deleted").
		Mark(ierr.ErrValidation)
}

// BaseModel carries the columns every table shares. LandlordID is the
// tenancy boundary: all lookups are scoped to it.
type BaseModel struct {
	LandlordID string    `db:"landlord_id" json:"landlord_id"`
	Status     Status    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
	CreatedBy  string    `db:"created_by" json:"created_by,omitempty"`
	UpdatedBy  string    `db:"updated_by" json:"updated_by,omitempty"`
}

// GetDefaultBaseModel returns a BaseModel populated from the request context.
func GetDefaultBaseModel(ctx context.Context) BaseModel {
	now := time.Now().UTC()
	return BaseModel{
		LandlordID: GetLandlordID(ctx),
		Status:     StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
		CreatedBy:  GetUserID(ctx),
		UpdatedBy:  GetUserID(ctx),
	}
}

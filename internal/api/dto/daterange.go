package dto

import (
	"time"

	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

// DateRangeRequest carries the reporting window selection. Either a
// preset or an explicit start_date/end_date pair; explicit dates win
// when both are present.
type DateRangeRequest struct {
	StartDate string `form:"start_date" json:"start_date,omitempty"`
	EndDate   string `form:"end_date" json:"end_date,omitempty"`
	Preset    string `form:"preset" json:"preset,omitempty"`
}

// Resolve turns the request into a validated date range. When nothing is
// supplied the current month is used.
func (r *DateRangeRequest) Resolve(now time.Time) (types.DateRange, error) {
	if r.StartDate != "" || r.EndDate != "" {
		if r.StartDate == "" || r.EndDate == "" {
			return types.DateRange{}, ierr.NewError("start_date and end_date must be provided together").
				WithHint("Provide both start_date and end_date, or use a preset").
				Mark(ierr.ErrValidation)
		}
		return types.ParseDateRange(r.StartDate, r.EndDate)
	}

	preset := types.DateRangePreset(r.Preset)
	if r.Preset == "" {
		preset = types.DateRangePresetCurrentMonth
	}
	return types.NewDateRangeFromPreset(preset, now)
}

package types

import (
	"time"

	ierr "github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/errors"
)

// DateFormat is the wire format for report date parameters.
const DateFormat = "2006-01-02"

// MaxReportSpanYears caps how wide a reporting range may be. The cap is
// enforced here, at the input boundary, not inside the aggregation library.
const MaxReportSpanYears = 5

// DateRangePreset names a relative reporting window resolved against "now".
type DateRangePreset string

const (
	DateRangePresetCurrentMonth DateRangePreset = "current_month"
	DateRangePresetLast3Months  DateRangePreset = "last_3_months"
	DateRangePresetLast6Months  DateRangePreset = "last_6_months"
	DateRangePresetYearToDate   DateRangePreset = "year_to_date"
	DateRangePresetLastYear     DateRangePreset = "last_year"
)

func (p DateRangePreset) Validate() error {
	switch p {
	case DateRangePresetCurrentMonth,
		DateRangePresetLast3Months,
		DateRangePresetLast6Months,
		DateRangePresetYearToDate,
		DateRangePresetLastYear:
		return nil
	}
	return ierr.NewErrorf("invalid date range preset: %s", p).
		WithHint("preset must be one of current_month, last_3_months, last_6_months, year_to_date, last_year").
		Mark(ierr.ErrValidation)
}

// DateRange is an inclusive calendar-date range. Both bounds are dates, not
// instants; time-of-day components are zeroed in UTC.
type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// NewDateRangeFromPreset resolves a preset against the supplied clock time.
func NewDateRangeFromPreset(preset DateRangePreset, now time.Time) (DateRange, error) {
	if err := preset.Validate(); err != nil {
		return DateRange{}, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	switch preset {
	case DateRangePresetCurrentMonth:
		return DateRange{StartDate: monthStart, EndDate: today}, nil
	case DateRangePresetLast3Months:
		return DateRange{StartDate: monthStart.AddDate(0, -2, 0), EndDate: today}, nil
	case DateRangePresetLast6Months:
		return DateRange{StartDate: monthStart.AddDate(0, -5, 0), EndDate: today}, nil
	case DateRangePresetYearToDate:
		return DateRange{
			StartDate: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   today,
		}, nil
	case DateRangePresetLastYear:
		return DateRange{
			StartDate: time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(now.Year()-1, time.December, 31, 0, 0, 0, 0, time.UTC),
		}, nil
	}

	// Unreachable: Validate rejects unknown presets.
	return DateRange{}, ierr.NewErrorf("unhandled preset: %s", preset).Mark(ierr.ErrInternal)
}

// ParseDateRange parses ISO start/end date strings into a validated range.
func ParseDateRange(startDate, endDate string) (DateRange, error) {
	start, err := time.ParseInLocation(DateFormat, startDate, time.UTC)
	if err != nil {
		return DateRange{}, ierr.WithError(err).
			WithHintf("start_date must be in %s format", DateFormat).
			WithReportableDetails(map[string]interface{}{"start_date": startDate}).
			Mark(ierr.ErrValidation)
	}
	end, err := time.ParseInLocation(DateFormat, endDate, time.UTC)
	if err != nil {
		return DateRange{}, ierr.WithError(err).
			WithHintf("end_date must be in %s format", DateFormat).
			WithReportableDetails(map[string]interface{}{"end_date": endDate}).
			Mark(ierr.ErrValidation)
	}

	r := DateRange{StartDate: start, EndDate: end}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate rejects inverted ranges and ranges wider than the span cap.
func (r DateRange) Validate() error {
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return ierr.NewError("date range is incomplete").
			WithHint("both start_date and end_date are required").
			Mark(ierr.ErrValidation)
	}
	if r.EndDate.Before(r.StartDate) {
		return ierr.NewError("end_date before start_date").
			WithHint("end_date must not be earlier than start_date").
			WithReportableDetails(map[string]interface{}{
				"start_date": r.StartDate.Format(DateFormat),
				"end_date":   r.EndDate.Format(DateFormat),
			}).
			Mark(ierr.ErrValidation)
	}
	if r.EndDate.After(r.StartDate.AddDate(MaxReportSpanYears, 0, 0)) {
		return ierr.NewErrorf("date range exceeds %d years", MaxReportSpanYears).
			WithHintf("reporting range must not exceed %d years", MaxReportSpanYears).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Contains reports whether t falls on or between the range bounds. The end
// bound is inclusive through the whole end date.
func (r DateRange) Contains(t time.Time) bool {
	if t.Before(r.StartDate) {
		return false
	}
	return t.Before(r.EndDate.AddDate(0, 0, 1))
}

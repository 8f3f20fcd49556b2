package reports

import (
	"sort"
	"time"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
	"github.com/shopspring/decimal"
)

// TenantAggregate is the per-tenant reduction used by tenant analytics.
type TenantAggregate struct {
	TenantID           string          `json:"tenant_id"`
	TenantName         string          `json:"tenant_name"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	PaymentCount       int             `json:"payment_count"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	LastPaymentDate    time.Time       `json:"last_payment_date,omitempty"`
	RiskScore          decimal.Decimal `json:"risk_score"`
	RiskLevel          types.RiskLevel `json:"risk_level,omitempty"`
}

// PropertyAggregate is the per-property reduction used by the property
// performance report.
type PropertyAggregate struct {
	PropertyID     string          `json:"property_id"`
	PropertyName   string          `json:"property_name"`
	Revenue        decimal.Decimal `json:"revenue"`
	AmountDue      decimal.Decimal `json:"amount_due"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	CollectionRate decimal.Decimal `json:"collection_rate"`
	TotalUnits     int             `json:"total_units"`
	OccupiedUnits  int             `json:"occupied_units"`
	OccupancyRate  decimal.Decimal `json:"occupancy_rate"`
}

var (
	fifty    = decimal.NewFromInt(50)
	thousand = decimal.NewFromInt(1000)
)

// RiskScore combines outstanding balance and payment recency into a 0..100
// scalar:
//
//	min(50, balance/1000) + min(50, max(0, daysSinceLastPayment-30))
//
// Each component is capped at 50 before summing, so no input can push the
// score past 100. The downstream band thresholds assume exactly this
// linear-with-cap shape.
func RiskScore(outstandingBalance decimal.Decimal, daysSinceLastPayment int) decimal.Decimal {
	balanceComponent := outstandingBalance.Div(thousand)
	if balanceComponent.IsNegative() {
		balanceComponent = decimal.Zero
	}
	if balanceComponent.GreaterThan(fifty) {
		balanceComponent = fifty
	}

	recencyDays := daysSinceLastPayment - 30
	if recencyDays < 0 {
		recencyDays = 0
	}
	if recencyDays > 50 {
		recencyDays = 50
	}

	return balanceComponent.Add(decimal.NewFromInt(int64(recencyDays)))
}

// ClassifyRisk maps a risk score onto the fixed triage bands. Scores below
// the medium threshold carry no band and are excluded from both risk lists.
func ClassifyRisk(score decimal.Decimal) types.RiskLevel {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(types.RiskScoreHighThreshold)):
		return types.RiskLevelHigh
	case score.GreaterThanOrEqual(decimal.NewFromInt(types.RiskScoreMediumThreshold)):
		return types.RiskLevelMedium
	default:
		return types.RiskLevelNone
	}
}

// DaysBetween returns the number of whole days from one instant to another,
// never negative.
func DaysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

// TopTenantsByPaid returns the TopTenantsLimit largest tenants by total
// paid, descending. The sort is stable, so equal totals keep their
// insertion order. The input slice is not modified.
func TopTenantsByPaid(aggregates []*TenantAggregate) []*TenantAggregate {
	ranked := make([]*TenantAggregate, len(aggregates))
	copy(ranked, aggregates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalPaid.GreaterThan(ranked[j].TotalPaid)
	})
	if len(ranked) > types.TopTenantsLimit {
		ranked = ranked[:types.TopTenantsLimit]
	}
	return ranked
}

// RankTenantsByRisk returns the tenants in the given band sorted by risk
// score descending, stable on ties.
func RankTenantsByRisk(aggregates []*TenantAggregate, level types.RiskLevel) []*TenantAggregate {
	var banded []*TenantAggregate
	for _, a := range aggregates {
		if a.RiskLevel == level {
			banded = append(banded, a)
		}
	}
	sort.SliceStable(banded, func(i, j int) bool {
		return banded[i].RiskScore.GreaterThan(banded[j].RiskScore)
	})
	return banded
}

// RankPropertiesByRevenue sorts property aggregates by revenue descending,
// stable on ties. The input slice is not modified.
func RankPropertiesByRevenue(aggregates []*PropertyAggregate) []*PropertyAggregate {
	ranked := make([]*PropertyAggregate, len(aggregates))
	copy(ranked, aggregates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	return ranked
}

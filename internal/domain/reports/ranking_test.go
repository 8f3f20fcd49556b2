package reports

import (
	"fmt"
	"testing"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskScoreFormula(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		days    int
		want    string
	}{
		{"no balance, recent payment", 0, 10, "0"},
		{"balance component only", 20000, 0, "20"},
		{"recency component only", 0, 60, "30"},
		{"both components", 30000, 45, "45"},
		{"balance capped at 50", 1000000, 0, "50"},
		{"recency capped at 50", 0, 365, "50"},
		{"both capped, never exceeds 100", 99999999, 9999, "100"},
		{"recency under grace period ignored", 0, 30, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RiskScore(dec(tt.balance), tt.days)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"RiskScore(%d, %d) = %s, want %s", tt.balance, tt.days, got, tt.want)
		})
	}
}

func TestRiskScoreMonotonicAndCapped(t *testing.T) {
	prev := decimal.Zero
	for _, balance := range []int64{0, 1000, 10000, 50000, 100000, 10000000} {
		score := RiskScore(dec(balance), 0)
		assert.True(t, score.GreaterThanOrEqual(prev),
			"score must be non-decreasing in balance")
		prev = score
	}

	prev = decimal.Zero
	for _, days := range []int{0, 30, 31, 60, 80, 81, 400} {
		score := RiskScore(decimal.Zero, days)
		assert.True(t, score.GreaterThanOrEqual(prev),
			"score must be non-decreasing in days since last payment")
		prev = score
	}

	assert.True(t, RiskScore(dec(1<<40), 1<<20).LessThanOrEqual(dec(100)),
		"score must never exceed 100")
}

func TestClassifyRiskBands(t *testing.T) {
	assert.Equal(t, types.RiskLevelHigh, ClassifyRisk(dec(100)))
	assert.Equal(t, types.RiskLevelHigh, ClassifyRisk(dec(70)))
	assert.Equal(t, types.RiskLevelMedium, ClassifyRisk(decimal.RequireFromString("69.99")))
	assert.Equal(t, types.RiskLevelMedium, ClassifyRisk(dec(40)))
	assert.Equal(t, types.RiskLevelNone, ClassifyRisk(decimal.RequireFromString("39.9")))
	assert.Equal(t, types.RiskLevelNone, ClassifyRisk(decimal.Zero))
}

func TestTopTenantsByPaid(t *testing.T) {
	// 15 tenants with distinct totals: exactly the 10 largest come back,
	// descending.
	var aggs []*TenantAggregate
	for i := 1; i <= 15; i++ {
		aggs = append(aggs, &TenantAggregate{
			TenantID:  fmt.Sprintf("ten_%02d", i),
			TotalPaid: dec(int64(i * 1000)),
		})
	}

	top := TopTenantsByPaid(aggs)
	require.Len(t, top, types.TopTenantsLimit)
	assert.True(t, top[0].TotalPaid.Equal(dec(15000)))
	assert.True(t, top[9].TotalPaid.Equal(dec(6000)))
	for i := 1; i < len(top); i++ {
		assert.True(t, top[i-1].TotalPaid.GreaterThanOrEqual(top[i].TotalPaid))
	}

	// Input order preserved.
	assert.Equal(t, "ten_01", aggs[0].TenantID)
}

func TestTopTenantsByPaidStableOnTies(t *testing.T) {
	aggs := []*TenantAggregate{
		{TenantID: "ten_a", TotalPaid: dec(500)},
		{TenantID: "ten_b", TotalPaid: dec(500)},
		{TenantID: "ten_c", TotalPaid: dec(900)},
	}
	top := TopTenantsByPaid(aggs)
	require.Len(t, top, 3)
	assert.Equal(t, "ten_c", top[0].TenantID)
	// Equal totals keep insertion order.
	assert.Equal(t, "ten_a", top[1].TenantID)
	assert.Equal(t, "ten_b", top[2].TenantID)
}

func TestTopTenantsByPaidFewerThanLimit(t *testing.T) {
	aggs := []*TenantAggregate{
		{TenantID: "ten_a", TotalPaid: dec(100)},
		{TenantID: "ten_b", TotalPaid: dec(300)},
	}
	top := TopTenantsByPaid(aggs)
	require.Len(t, top, 2)
	assert.Equal(t, "ten_b", top[0].TenantID)
}

func TestRankTenantsByRisk(t *testing.T) {
	aggs := []*TenantAggregate{
		{TenantID: "ten_safe", RiskScore: dec(10), RiskLevel: types.RiskLevelNone},
		{TenantID: "ten_med", RiskScore: dec(45), RiskLevel: types.RiskLevelMedium},
		{TenantID: "ten_high2", RiskScore: dec(72), RiskLevel: types.RiskLevelHigh},
		{TenantID: "ten_high1", RiskScore: dec(95), RiskLevel: types.RiskLevelHigh},
	}

	high := RankTenantsByRisk(aggs, types.RiskLevelHigh)
	require.Len(t, high, 2)
	assert.Equal(t, "ten_high1", high[0].TenantID)
	assert.Equal(t, "ten_high2", high[1].TenantID)

	medium := RankTenantsByRisk(aggs, types.RiskLevelMedium)
	require.Len(t, medium, 1)
	assert.Equal(t, "ten_med", medium[0].TenantID)

	// Unclassified tenants appear in neither list.
	for _, a := range append(high, medium...) {
		assert.NotEqual(t, "ten_safe", a.TenantID)
	}
}

func TestRankPropertiesByRevenue(t *testing.T) {
	aggs := []*PropertyAggregate{
		{PropertyID: "prop_a", Revenue: dec(1000)},
		{PropertyID: "prop_b", Revenue: dec(5000)},
		{PropertyID: "prop_c", Revenue: dec(3000)},
	}
	ranked := RankPropertiesByRevenue(aggs)
	require.Len(t, ranked, 3)
	assert.Equal(t, "prop_b", ranked[0].PropertyID)
	assert.Equal(t, "prop_c", ranked[1].PropertyID)
	assert.Equal(t, "prop_a", ranked[2].PropertyID)
	// Input untouched.
	assert.Equal(t, "prop_a", aggs[0].PropertyID)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 31, DaysBetween(date("2025-01-01"), date("2025-02-01")))
	assert.Equal(t, 0, DaysBetween(date("2025-02-01"), date("2025-01-01")))
	assert.Equal(t, 0, DaysBetween(date("2025-01-01"), date("2025-01-01")))
}

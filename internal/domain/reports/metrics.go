package reports

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// NetIncome returns revenue minus expenses. Expense tracking is not wired to
// any collaborator yet, so callers currently pass decimal.Zero and expose an
// explicit "not tracked" flag rather than fabricating expense data.
func NetIncome(revenue, expenses decimal.Decimal) decimal.Decimal {
	return revenue.Sub(expenses)
}

// CollectionRate returns amounts paid over amounts due as a percentage.
// A zero denominator yields 0, never a division error. Rates above 100 from
// data anomalies (overpayment) are passed through unclamped.
func CollectionRate(totalPaid, totalDue decimal.Decimal) decimal.Decimal {
	if totalDue.IsZero() {
		return decimal.Zero
	}
	return totalPaid.Div(totalDue).Mul(hundred)
}

// OccupancyRate returns occupied units over total units as a percentage,
// 0 when there are no units.
func OccupancyRate(occupiedUnits, totalUnits int) decimal.Decimal {
	if totalUnits == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(occupiedUnits)).
		Div(decimal.NewFromInt(int64(totalUnits))).
		Mul(hundred)
}

// AveragePayment returns the mean payment amount, 0 when there are no
// payments.
func AveragePayment(totalPaid decimal.Decimal, paymentCount int) decimal.Decimal {
	if paymentCount == 0 {
		return decimal.Zero
	}
	return totalPaid.Div(decimal.NewFromInt(int64(paymentCount)))
}

// GrowthPercent returns the relative change from previous to current as a
// percentage. A zero previous period yields 0 growth rather than an
// undefined or infinite value; growth from nothing is reported as flat.
func GrowthPercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// OnTimeRate returns the share of settled invoices paid by their due date,
// as a percentage. 0 when nothing has been settled.
func OnTimeRate(onTime, settled int) decimal.Decimal {
	if settled == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(onTime)).
		Div(decimal.NewFromInt(int64(settled))).
		Mul(hundred)
}

// RetentionRate returns retained over retained+lost as a percentage, 0 when
// both are zero.
func RetentionRate(retained, lost int) decimal.Decimal {
	denominator := retained + lost
	if denominator == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(retained)).
		Div(decimal.NewFromInt(int64(denominator))).
		Mul(hundred)
}

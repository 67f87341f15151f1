package calculation

import (
	"math"

	money "github.com/finch/networth/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DaysPerYear is the compounding period count used to turn an annual rate into a daily one.
const DaysPerYear = 365

// GrowthScale is the number of decimal places kept on a grown value. Each day's
// multiplication would otherwise add the factor's digits to net worth.
const GrowthScale = 16

var decimalOne = decimal.NewFromInt(1)

// DailyGrowthFactor returns apy^(1/365). This is the only place the engine leaves
// decimal arithmetic: the root is taken in float64 and converted back. A rate of 0
// gives a factor of 0. Rates whose root is not a finite real number (negative or
// non-finite) yield exactly 1 (no growth).
func DailyGrowthFactor(apy decimal.Decimal) decimal.Decimal {
	base, _ := apy.Float64()
	f := math.Pow(base, 1.0/DaysPerYear)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimalOne
	}
	return decimal.NewFromFloat(f)
}

// Grow compounds value by one day at the given annual rate, rounded to GrowthScale places.
func Grow(value money.Money, apy decimal.Decimal) money.Money {
	return money.NewMoneyFromDecimal(value.Decimal.Mul(DailyGrowthFactor(apy)).Round(GrowthScale))
}

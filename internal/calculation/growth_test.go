package calculation

import (
	"math"
	"testing"

	money "github.com/finch/networth/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDailyGrowthFactor(t *testing.T) {
	tests := []struct {
		name string
		apy  decimal.Decimal
		want float64
	}{
		{"no growth", decimal.NewFromInt(1), 1},
		{"ten percent", decimal.RequireFromString("1.1"), math.Pow(1.1, 1.0/365)},
		{"shrinking", decimal.RequireFromString("0.97"), math.Pow(0.97, 1.0/365)},
		{"zero rate collapses", decimal.Zero, 0},
		{"negative rate falls back", decimal.NewFromInt(-2), 1},
		{"small negative rate falls back", decimal.RequireFromString("-0.5"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailyGrowthFactor(tt.apy).InexactFloat64()
			assert.InDelta(t, tt.want, got, 1e-15)
		})
	}
}

func TestDailyGrowthCompoundsToAnnualRate(t *testing.T) {
	factor := DailyGrowthFactor(decimal.RequireFromString("1.1"))
	year := decimal.NewFromInt(1)
	for i := 0; i < DaysPerYear; i++ {
		year = year.Mul(factor)
	}
	assert.InDelta(t, 1.1, year.InexactFloat64(), 1e-9)
}

func TestGrow(t *testing.T) {
	grown := Grow(money.NewMoney(100), decimal.RequireFromString("1.1"))
	assert.InDelta(t, 100.0261157, grown.InexactFloat64(), 1e-6)

	same := Grow(money.NewMoney(100), decimal.NewFromInt(1))
	assert.True(t, same.Equal(money.NewMoney(100)))
}

func TestGrowKeepsScaleBounded(t *testing.T) {
	apy := decimal.RequireFromString("1.1")
	value := money.NewMoney(100)
	for i := 0; i < DaysPerYear; i++ {
		value = Grow(value, apy)
		assert.GreaterOrEqual(t, value.Exponent(), int32(-GrowthScale), "day %d", i+1)
	}
	assert.InDelta(t, 110.0, value.InexactFloat64(), 1e-6)
	assert.LessOrEqual(t, len(value.Decimal.String()), 3+1+GrowthScale)
}

func TestGrowAtZeroRate(t *testing.T) {
	assert.True(t, Grow(money.NewMoney(100), decimal.Zero).IsZero())
}

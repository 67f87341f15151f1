package calculation

import (
	"testing"
	"time"

	"github.com/finch/networth/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func singleClass(date int64, class domain.AssetClass, apy string, description string) domain.Allocation {
	return domain.Allocation{
		Date:        date,
		Description: description,
		Schema: []domain.AllocationEntry{{
			AssetClass:            class,
			AnnualizedPerformance: decimal.RequireFromString(apy),
			Proportion:            decimal.NewFromInt(100),
		}},
	}
}

func TestResolveAllocationLatestWins(t *testing.T) {
	jan := day(2025, time.January, 1)
	mar := day(2025, time.March, 1)
	jun := day(2025, time.June, 1)
	allocations := []domain.Allocation{
		singleClass(mar, domain.Equity, "1.05", "march"),
		singleClass(jan, domain.Cash, "1.00", "january"),
		singleClass(jun, domain.ETF, "1.10", "june"),
	}

	tests := []struct {
		name   string
		date   int64
		want   string
		wantOK bool
	}{
		{"before any allocation", day(2024, time.December, 31), "", false},
		{"on first date", jan, "january", true},
		{"between first and second", day(2025, time.February, 10), "january", true},
		{"closer allocation wins over earliest", day(2025, time.April, 1), "march", true},
		{"never a later allocation", day(2025, time.May, 31), "march", true},
		{"after last", day(2026, time.January, 1), "june", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveAllocation(allocations, tt.date)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got.Description)
		})
	}
}

func TestResolveAllocationTieUsesListOrder(t *testing.T) {
	jan := day(2025, time.January, 1)
	allocations := []domain.Allocation{
		singleClass(jan, domain.Cash, "1.00", "first"),
		singleClass(jan, domain.Equity, "1.05", "second"),
	}
	got, ok := ResolveAllocation(allocations, jan)
	assert.True(t, ok)
	assert.Equal(t, "second", got.Description)
}

func TestCalculateAPYFromAllocation(t *testing.T) {
	single := singleClass(0, domain.ETF, "1.1", "")
	assert.True(t, CalculateAPYFromAllocation(single).Equal(decimal.RequireFromString("1.1")))

	blended := domain.Allocation{Schema: []domain.AllocationEntry{
		{AssetClass: domain.Equity, AnnualizedPerformance: decimal.RequireFromString("1.2"), Proportion: decimal.NewFromInt(80)},
		{AssetClass: domain.Loan, AnnualizedPerformance: decimal.RequireFromString("0.7"), Proportion: decimal.NewFromInt(20)},
	}}
	apy := CalculateAPYFromAllocation(blended)
	assert.True(t, apy.Equal(decimal.RequireFromString("1.1")), "got %s", apy)

	assert.True(t, CalculateAPYFromAllocation(domain.Allocation{}).IsZero())
}

func TestEffectiveAllocationDefaultsToCash(t *testing.T) {
	alloc, apy := EffectiveAllocation(nil, day(2025, time.January, 1))
	assert.Equal(t, "Default", alloc.Description)
	assert.Len(t, alloc.Schema, 1)
	assert.Equal(t, domain.Cash, alloc.Schema[0].AssetClass)
	assert.True(t, apy.Equal(decimal.NewFromInt(1)))
	assert.True(t, DailyGrowthFactor(apy).Equal(decimal.NewFromInt(1)), "default allocation must not grow")
}

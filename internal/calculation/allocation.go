package calculation

import (
	"github.com/finch/networth/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// DefaultAllocation is used for days before the first dated allocation: everything in
// cash with a growth factor of exactly 1, so net worth does not grow.
func DefaultAllocation() domain.Allocation {
	return domain.Allocation{
		Description: "Default",
		Schema: []domain.AllocationEntry{{
			Name:                  "Cash",
			AssetClass:            domain.Cash,
			AnnualizedPerformance: decimal.NewFromInt(1),
			Proportion:            decimalHundred,
		}},
	}
}

// ResolveAllocation returns the allocation in effect on date: the one with the greatest
// Date not after date. Among equal dates the later list entry wins.
func ResolveAllocation(allocations []domain.Allocation, date int64) (domain.Allocation, bool) {
	best := -1
	for i, a := range allocations {
		if a.Date > date {
			continue
		}
		if best < 0 || a.Date >= allocations[best].Date {
			best = i
		}
	}
	if best < 0 {
		return domain.Allocation{}, false
	}
	return allocations[best], true
}

// CalculateAPYFromAllocation blends the schema performances weighted by proportion.
func CalculateAPYFromAllocation(a domain.Allocation) decimal.Decimal {
	apy := decimal.Zero
	for _, e := range a.Schema {
		apy = apy.Add(e.Proportion.Mul(e.AnnualizedPerformance).Div(decimalHundred))
	}
	return apy
}

// EffectiveAllocation resolves the allocation for date, falling back to DefaultAllocation,
// and returns it with its blended APY.
func EffectiveAllocation(allocations []domain.Allocation, date int64) (domain.Allocation, decimal.Decimal) {
	a, ok := ResolveAllocation(allocations, date)
	if !ok {
		a = DefaultAllocation()
	}
	return a, CalculateAPYFromAllocation(a)
}

package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AssetClass groups holdings that share a growth assumption.
type AssetClass string

const (
	Cash       AssetClass = "cash"
	Equity     AssetClass = "equity"
	ETF        AssetClass = "etf"
	Fixed      AssetClass = "fixed"
	Loan       AssetClass = "loan"
	MutualFund AssetClass = "mutual_fund"
)

// AssetClassAPY pairs an asset class with its default annualized performance.
type AssetClassAPY struct {
	Class AssetClass      `yaml:"class" json:"class"`
	APY   decimal.Decimal `yaml:"apy" json:"apy"`
}

// DefaultAssetClassAPYs lists the growth factor assumed for each class (1.05 = +5%/yr).
func DefaultAssetClassAPYs() []AssetClassAPY {
	return []AssetClassAPY{
		{Class: Cash, APY: decimal.RequireFromString("1.00")},
		{Class: Equity, APY: decimal.RequireFromString("1.05")},
		{Class: ETF, APY: decimal.RequireFromString("1.10")},
		{Class: Fixed, APY: decimal.RequireFromString("1.02")},
		{Class: Loan, APY: decimal.RequireFromString("0.97")},
		{Class: MutualFund, APY: decimal.RequireFromString("1.20")},
	}
}

// DefaultAPY returns the default performance for class, or 1.0 for unknown classes.
func DefaultAPY(class AssetClass) decimal.Decimal {
	for _, a := range DefaultAssetClassAPYs() {
		if a.Class == class {
			return a.APY
		}
	}
	return decimal.NewFromInt(1)
}

// AllocationEntry is one asset class share of an allocation. Proportion is a percent.
type AllocationEntry struct {
	Name                  string          `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	AssetClass            AssetClass      `yaml:"asset_class" json:"asset_class" toml:"asset_class"`
	AnnualizedPerformance decimal.Decimal `yaml:"annualized_performance" json:"annualized_performance" toml:"annualized_performance"`
	Proportion            decimal.Decimal `yaml:"proportion" json:"proportion" toml:"proportion"`
}

// Allocation describes how net worth is spread across asset classes from Date onwards.
type Allocation struct {
	Date        int64             `yaml:"date" json:"date" toml:"date"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Schema      []AllocationEntry `yaml:"schema" json:"schema" toml:"schema"`
}

var (
	minProportionTotal = decimal.NewFromInt(98)
	maxProportionTotal = decimal.NewFromInt(102)
)

// TotalProportion sums the schema proportions.
func (a Allocation) TotalProportion() decimal.Decimal {
	total := decimal.Zero
	for _, e := range a.Schema {
		total = total.Add(e.Proportion)
	}
	return total
}

// Validate checks the proportions add up to roughly 100 percent.
func (a Allocation) Validate() error {
	if len(a.Schema) == 0 {
		return fmt.Errorf("allocation schema is empty")
	}
	total := a.TotalProportion()
	if total.LessThan(minProportionTotal) || total.GreaterThan(maxProportionTotal) {
		return fmt.Errorf("allocation proportions sum to %s, want between 98 and 102", total.String())
	}
	return nil
}

// Transform is a percentage shock applied to one asset class (-30 = lose 30%).
type Transform struct {
	AssetClass AssetClass      `yaml:"asset_class" json:"asset_class" toml:"asset_class"`
	Change     decimal.Decimal `yaml:"change" json:"change" toml:"change"`
}

// Event is a one-time market shock that fires on the first projected day at or after Start.
type Event struct {
	ID         string      `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	Name       string      `yaml:"name" json:"name" toml:"name"`
	Start      int64       `yaml:"start" json:"start" toml:"start"`
	Transforms []Transform `yaml:"transforms" json:"transforms" toml:"transforms"`
}

// ChangeFor returns the first change defined for class.
func (e Event) ChangeFor(class AssetClass) (decimal.Decimal, bool) {
	for _, t := range e.Transforms {
		if t.AssetClass == class {
			return t.Change, true
		}
	}
	return decimal.Zero, false
}

// Validate checks the event fields.
func (e Event) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("event name is required")
	}
	if e.Start < 0 {
		return fmt.Errorf("event start cannot be negative")
	}
	for _, t := range e.Transforms {
		if t.Change.LessThan(decimal.NewFromInt(-100)) {
			return fmt.Errorf("change for %s cannot be below -100%%", t.AssetClass)
		}
	}
	return nil
}

// Plan holds the cash flows, allocations and events a projection runs on.
type Plan struct {
	ID          string       `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	Name        string       `yaml:"name" json:"name" toml:"name"`
	Recurrings  []Recurring  `yaml:"recurrings" json:"recurrings" toml:"recurrings"`
	Allocations []Allocation `yaml:"allocations" json:"allocations" toml:"allocations"`
	Events      []Event      `yaml:"events" json:"events" toml:"events"`
}

// Validate checks every recurring, allocation and event of the plan.
func (p Plan) Validate() error {
	for i, r := range p.Recurrings {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("recurring %d (%s): %w", i, r.Name, err)
		}
	}
	for i, a := range p.Allocations {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("allocation %d: %w", i, err)
		}
	}
	for i, e := range p.Events {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

// Clone returns a copy whose slices can be changed without touching p.
func (p Plan) Clone() Plan {
	c := p
	c.Recurrings = append([]Recurring(nil), p.Recurrings...)
	c.Allocations = append([]Allocation(nil), p.Allocations...)
	c.Events = append([]Event(nil), p.Events...)
	return c
}

package domain

import (
	"fmt"
	"strings"

	money "github.com/finch/networth/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FrequencyKind is the calendar unit a recurring aligns to.
type FrequencyKind string

const (
	Daily    FrequencyKind = "daily"
	Weekly   FrequencyKind = "weekly"
	Monthly  FrequencyKind = "monthly"
	Annually FrequencyKind = "annually"
)

// UnmarshalText accepts the kind case-insensitively so YAML, JSON and TOML documents agree.
func (k *FrequencyKind) UnmarshalText(text []byte) error {
	switch kind := FrequencyKind(strings.ToLower(strings.TrimSpace(string(text)))); kind {
	case Daily, Weekly, Monthly, Annually:
		*k = kind
		return nil
	default:
		return fmt.Errorf("unknown frequency %q (want daily, weekly, monthly or annually)", string(text))
	}
}

// Frequency says how often a recurring pays: every EveryN-th aligned Kind occurrence.
type Frequency struct {
	Kind   FrequencyKind `yaml:"kind" json:"kind" toml:"kind"`
	EveryN int           `yaml:"every_n" json:"every_n" toml:"every_n"`
}

// Every returns EveryN, normalized to at least 1.
func (f Frequency) Every() int {
	if f.EveryN < 1 {
		return 1
	}
	return f.EveryN
}

// Recurring is a repeating cash flow (Amount) or a compounding interest stream
// (Principal + Interest percent) active within [Start, End).
type Recurring struct {
	ID        string          `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	Name      string          `yaml:"name" json:"name" toml:"name"`
	Start     int64           `yaml:"start" json:"start" toml:"start"`
	End       int64           `yaml:"end" json:"end" toml:"end"`
	Principal money.Money     `yaml:"principal" json:"principal" toml:"principal"`
	Amount    money.Money     `yaml:"amount" json:"amount" toml:"amount"`
	Interest  decimal.Decimal `yaml:"interest" json:"interest" toml:"interest"`
	Frequency Frequency       `yaml:"frequency" json:"frequency" toml:"frequency"`
}

// IsCompounding reports whether the recurring pays interest on a principal.
func (r Recurring) IsCompounding() bool {
	return !r.Principal.IsZero()
}

// Validate enforces the recurring invariants at the edge. The projection engine
// itself never rejects a recurring.
func (r Recurring) Validate() error {
	if r.Start < 0 || r.End < 0 {
		return fmt.Errorf("start and end must not be negative")
	}
	if r.End < r.Start {
		return fmt.Errorf("end must not be before start")
	}
	if r.Interest.IsNegative() {
		return fmt.Errorf("interest cannot be negative")
	}
	switch {
	case r.Principal.IsZero() && r.Interest.IsZero() && !r.Amount.IsZero():
	case r.Amount.IsZero() && !r.Principal.IsZero():
	default:
		return fmt.Errorf("only one of principal and amount can be non-zero, and interest must be zero if amount is non-zero")
	}
	switch r.Frequency.Kind {
	case Daily, Weekly, Monthly, Annually:
	default:
		return fmt.Errorf("unknown frequency %q", r.Frequency.Kind)
	}
	if r.Frequency.EveryN < 0 {
		return fmt.Errorf("frequency every_n cannot be negative")
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/finch/networth/internal/domain"
	"github.com/finch/networth/pkg/dateutil"
	money "github.com/finch/networth/pkg/decimal"
	"github.com/shopspring/decimal"
)

// InputParser handles parsing of user profile documents
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a user profile from a YAML, JSON or TOML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.User, error) {
	format, err := FormatForPath(filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(format, data)
}

// Parse decodes and validates a profile document held in memory
func (ip *InputParser) Parse(format DocumentFormat, data []byte) (*domain.User, error) {
	var user domain.User
	if err := Decode(format, data, &user); err != nil {
		return nil, err
	}

	if err := ip.ValidateUser(&user); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &user, nil
}

// ValidateUser validates the loaded profile
func (ip *InputParser) ValidateUser(user *domain.User) error {
	if user.Name == "" {
		return fmt.Errorf("user name is required")
	}

	for i, plan := range user.Plans {
		if plan.Name == "" {
			return fmt.Errorf("plan %d: plan name is required", i)
		}
		if err := plan.Validate(); err != nil {
			return fmt.Errorf("plan %q validation failed: %w", plan.Name, err)
		}
	}

	for i, r := range user.Recurrings {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("recurring %d (%s) validation failed: %w", i, r.Name, err)
		}
	}

	if err := ip.validateSnapshots(user.Snapshots); err != nil {
		return fmt.Errorf("snapshot history validation failed: %w", err)
	}

	return nil
}

// validateSnapshots checks the history is in time order
func (ip *InputParser) validateSnapshots(snapshots []domain.Snapshot) error {
	for i, s := range snapshots {
		if s.SnapshotTime < 0 {
			return fmt.Errorf("snapshot %d: time cannot be negative", i)
		}
		if i > 0 && s.SnapshotTime < snapshots[i-1].SnapshotTime {
			return fmt.Errorf("snapshot %d: taken before snapshot %d", i, i-1)
		}
	}
	return nil
}

// CreateExampleProfile creates an example profile anchored at now
func (ip *InputParser) CreateExampleProfile(now time.Time) *domain.User {
	today := dateutil.FromEpoch(now.Unix()).Truncate(24 * time.Hour)
	ts := today.Unix()
	payday := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).Unix()

	return &domain.User{
		Name: "Example",
		Plans: []domain.Plan{{
			Name: "Baseline",
			Recurrings: []domain.Recurring{
				{
					Name:      "Salary",
					Start:     payday,
					End:       dateutil.AddDays(payday, 10*365),
					Amount:    money.NewMoneyFromInt(4200),
					Frequency: domain.Frequency{Kind: domain.Monthly, EveryN: 1},
				},
				{
					Name:      "Rent",
					Start:     payday,
					End:       dateutil.AddDays(payday, 10*365),
					Amount:    money.NewMoneyFromInt(-1800),
					Frequency: domain.Frequency{Kind: domain.Monthly, EveryN: 1},
				},
				{
					Name:      "Savings Bond",
					Start:     ts,
					End:       dateutil.AddDays(ts, 5*365),
					Principal: money.NewMoneyFromInt(5000),
					Interest:  decimal.RequireFromString("0.4"),
					Frequency: domain.Frequency{Kind: domain.Monthly, EveryN: 3},
				},
			},
			Allocations: []domain.Allocation{{
				Date:        ts,
				Description: "Starting Mix",
				Schema: []domain.AllocationEntry{
					{Name: "Checking", AssetClass: domain.Cash, AnnualizedPerformance: domain.DefaultAPY(domain.Cash), Proportion: decimal.NewFromInt(30)},
					{Name: "Index Fund", AssetClass: domain.Equity, AnnualizedPerformance: domain.DefaultAPY(domain.Equity), Proportion: decimal.NewFromInt(50)},
					{Name: "Bonds", AssetClass: domain.Fixed, AnnualizedPerformance: domain.DefaultAPY(domain.Fixed), Proportion: decimal.NewFromInt(20)},
				},
			}},
			Events: []domain.Event{{
				Name:  "Market Correction",
				Start: dateutil.AddDays(ts, 180),
				Transforms: []domain.Transform{
					{AssetClass: domain.Equity, Change: decimal.NewFromInt(-15)},
				},
			}},
		}},
		Recurrings: []domain.Recurring{{
			Name:      "Coffee",
			Start:     ts,
			End:       dateutil.AddDays(ts, 365),
			Amount:    money.NewMoney(-4.5),
			Frequency: domain.Frequency{Kind: domain.Daily, EveryN: 1},
		}},
		Snapshots: []domain.Snapshot{{
			NetWorth:     money.NewMoneyFromInt(25000),
			SnapshotTime: ts,
		}},
	}
}

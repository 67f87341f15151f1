package domain

import (
	money "github.com/finch/networth/pkg/decimal"
)

// Snapshot is an observed net worth measurement. Running totals are cumulative
// across the snapshot history.
type Snapshot struct {
	NetWorth        money.Money `yaml:"net_worth" json:"net_worth" toml:"net_worth"`
	RunningIncome   money.Money `yaml:"running_income" json:"running_income" toml:"running_income"`
	RunningSavings  money.Money `yaml:"running_savings" json:"running_savings" toml:"running_savings"`
	RunningSpending money.Money `yaml:"running_spending" json:"running_spending" toml:"running_spending"`
	SnapshotTime    int64       `yaml:"snapshot_time" json:"snapshot_time" toml:"snapshot_time"`
}

// AccountBalance is the balance of one linked account as reported by the aggregator.
type AccountBalance struct {
	ID      string      `yaml:"id" json:"id" toml:"id"`
	Name    string      `yaml:"name" json:"name" toml:"name"`
	Type    string      `yaml:"type" json:"type" toml:"type"` // depository, credit, loan, investment
	Balance money.Money `yaml:"balance" json:"balance" toml:"balance"`
}

// User is the persisted document the projection reads from.
type User struct {
	ID         string      `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	Name       string      `yaml:"name" json:"name" toml:"name"`
	Plans      []Plan      `yaml:"plans" json:"plans" toml:"plans"`
	Recurrings []Recurring `yaml:"recurrings" json:"recurrings" toml:"recurrings"`
	Snapshots  []Snapshot  `yaml:"snapshots" json:"snapshots" toml:"snapshots"`
}

// LastSnapshot returns the most recent snapshot, or a zero snapshot when there is none.
func (u *User) LastSnapshot() (Snapshot, bool) {
	if len(u.Snapshots) == 0 {
		return Snapshot{}, false
	}
	return u.Snapshots[len(u.Snapshots)-1], true
}

// AppendSnapshot records a fresh measurement. The running totals of s are per-period
// amounts and are accumulated onto the previous snapshot's totals.
func (u *User) AppendSnapshot(s Snapshot) {
	if prev, ok := u.LastSnapshot(); ok {
		s.RunningIncome = s.RunningIncome.Add(prev.RunningIncome)
		s.RunningSavings = s.RunningSavings.Add(prev.RunningSavings)
		s.RunningSpending = s.RunningSpending.Add(prev.RunningSpending)
	}
	u.Snapshots = append(u.Snapshots, s)
}

package domain

import (
	"testing"

	money "github.com/finch/networth/pkg/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLastSnapshot(t *testing.T) {
	var u User
	_, ok := u.LastSnapshot()
	assert.False(t, ok)

	u.Snapshots = []Snapshot{{SnapshotTime: 1}, {SnapshotTime: 2}}
	last, ok := u.LastSnapshot()
	assert.True(t, ok)
	assert.Equal(t, int64(2), last.SnapshotTime)
}

func TestAppendSnapshotAccumulatesRunningTotals(t *testing.T) {
	var u User
	u.AppendSnapshot(Snapshot{
		NetWorth:        money.NewMoney(1000),
		RunningIncome:   money.NewMoney(100),
		RunningSpending: money.NewMoney(-40),
		RunningSavings:  money.NewMoney(60),
		SnapshotTime:    10,
	})
	u.AppendSnapshot(Snapshot{
		NetWorth:        money.NewMoney(1050),
		RunningIncome:   money.NewMoney(50),
		RunningSpending: money.NewMoney(-10),
		RunningSavings:  money.NewMoney(40),
		SnapshotTime:    20,
	})

	assert.Len(t, u.Snapshots, 2)
	last := u.Snapshots[1]
	assert.True(t, last.NetWorth.Equal(money.NewMoney(1050)), "net worth is not cumulative")
	assert.True(t, last.RunningIncome.Equal(money.NewMoney(150)))
	assert.True(t, last.RunningSpending.Equal(money.NewMoney(-50)))
	assert.True(t, last.RunningSavings.Equal(money.NewMoney(100)))
}

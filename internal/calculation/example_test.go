package calculation

import (
	"testing"
	"time"

	money "github.com/finch/networth/pkg/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleTimeseries(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	series := ExampleTimeseries(now)

	require.Len(t, series, (54+108)*7)
	assert.True(t, series[0].NetWorth.Equal(money.NewMoney(1000)))
	assert.True(t, series[1].NetWorth.Equal(money.NewMoney(977.93)), "first step subtracts 22.07")
	assert.Equal(t, now.Unix(), series[54*7].Date)
	for i := 1; i < len(series); i++ {
		assert.Greater(t, series[i].Date, series[i-1].Date)
	}
}

package calculation

import (
	"time"

	"github.com/finch/networth/internal/domain"
	"github.com/finch/networth/pkg/dateutil"
	money "github.com/finch/networth/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ExampleTimeseries builds a synthetic demo series around now: 54 weeks of jittery
// history followed by 108 weeks of steady 0.3% daily growth. Values are tracked in
// integer cents.
func ExampleTimeseries(now time.Time) []domain.TimeseriesEntry {
	today := now.Unix()
	start := dateutil.AddDays(today, -54*7)
	end := dateutil.AddDays(today, 108*7)

	var series []domain.TimeseriesEntry
	cents := int64(100000)
	emit := func(ts int64) {
		series = append(series, domain.TimeseriesEntry{
			Date:     ts,
			NetWorth: money.NewMoneyFromDecimal(decimal.New(cents, -2)),
		})
	}

	for i := int64(0); start < today; i++ {
		emit(start)
		if i%3 == 0 {
			cents += -321*i - 2207
		} else {
			cents += 231*i + 1408
		}
		start = dateutil.AddDays(start, 1)
	}
	for ; today < end; today = dateutil.AddDays(today, 1) {
		emit(today)
		cents += cents * 3 / 1000
	}
	return series
}

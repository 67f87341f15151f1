package calculation

import (
	"github.com/finch/networth/internal/domain"
	"github.com/finch/networth/pkg/dateutil"
	money "github.com/finch/networth/pkg/decimal"
)

// ProjectionEngine simulates net worth day by day under a plan.
type ProjectionEngine struct {
	Debug  bool // Log the per-day breakdown
	Logger Logger
}

// NewProjectionEngine creates a projection engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

func (pe *ProjectionEngine) logger() Logger {
	if pe.Logger == nil {
		return NopLogger{}
	}
	return pe.Logger
}

// Simulate projects net worth for days days after startDate, starting from startNetWorth.
// Each day resolves the allocation, fires at most one due event, compounds net worth by
// one day of the blended APY and adds the recurring payments. Recurring and event state
// is built fresh for every call, so the plan is never modified and repeated calls agree.
func (pe *ProjectionEngine) Simulate(plan domain.Plan, days int, startNetWorth money.Money, startDate int64) []domain.TimeseriesEntry {
	if days <= 0 {
		return []domain.TimeseriesEntry{}
	}
	log := pe.logger()

	endDate := dateutil.AddDays(startDate, days)
	states := make([]*RecurringState, 0, len(plan.Recurrings))
	for _, r := range plan.Recurrings {
		rs := NewRecurringState(r)
		if !rs.overlaps(startDate, endDate) {
			continue
		}
		states = append(states, rs)
	}
	pending := append([]domain.Event(nil), plan.Events...)

	series := make([]domain.TimeseriesEntry, 0, days)
	netWorth := startNetWorth
	for d := 1; d <= days; d++ {
		date := dateutil.AddDays(startDate, d)

		allocation, apy := EffectiveAllocation(plan.Allocations, date)

		before := len(pending)
		netWorth, pending = ApplyDueEvent(pending, date, allocation, netWorth)
		if pe.Debug && len(pending) < before {
			log.Debugf("%s: event fired, net worth now %s", dateutil.FormatDate(date), netWorth)
		}

		payments := money.Zero()
		for _, rs := range states {
			payments = payments.Add(rs.TakePayment(date))
		}

		netWorth = Grow(netWorth, apy).Add(payments)

		if pe.Debug {
			log.Debugf("%s: apy=%s payments=%s net_worth=%s", dateutil.FormatDate(date), apy.String(), payments, netWorth)
		}
		series = append(series, domain.TimeseriesEntry{Date: date, NetWorth: netWorth})
	}
	return series
}

package calculation

import (
	"github.com/finch/networth/internal/domain"
	money "github.com/finch/networth/pkg/decimal"
	"github.com/shopspring/decimal"
)

// EventMultiplier computes the factor an event applies to net worth under allocation.
// Entries whose class the event shocks contribute proportion*(100+change)/100, the rest
// contribute their proportion unchanged; the sum is divided by 100.
func EventMultiplier(event domain.Event, allocation domain.Allocation) decimal.Decimal {
	total := decimal.Zero
	for _, e := range allocation.Schema {
		share := e.Proportion
		if change, ok := event.ChangeFor(e.AssetClass); ok {
			share = share.Mul(decimalHundred.Add(change)).Div(decimalHundred)
		}
		total = total.Add(share)
	}
	return total.Div(decimalHundred)
}

// ApplyDueEvent fires the first pending event whose Start is at or before date and
// returns the shocked net worth together with the events still pending. At most one
// event fires per call. The pending slice passed in is left untouched.
func ApplyDueEvent(pending []domain.Event, date int64, allocation domain.Allocation, netWorth money.Money) (money.Money, []domain.Event) {
	for i, ev := range pending {
		if ev.Start > date {
			continue
		}
		remaining := make([]domain.Event, 0, len(pending)-1)
		remaining = append(remaining, pending[:i]...)
		remaining = append(remaining, pending[i+1:]...)
		return netWorth.Mul(EventMultiplier(ev, allocation)), remaining
	}
	return netWorth, pending
}

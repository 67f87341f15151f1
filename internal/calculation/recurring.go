package calculation

import (
	"github.com/finch/networth/internal/domain"
	"github.com/finch/networth/pkg/dateutil"
	money "github.com/finch/networth/pkg/decimal"
)

// RecurringState carries the per-projection state of one recurring: how many aligned
// occurrences have been seen and, for compounding recurrings, the grown principal.
// TakePayment must be called once per simulated day in ascending date order.
type RecurringState struct {
	def       domain.Recurring
	every     int
	seen      int
	principal money.Money
}

// NewRecurringState wraps r for a single projection run. r itself is never modified.
func NewRecurringState(r domain.Recurring) *RecurringState {
	return &RecurringState{
		def:       r,
		every:     r.Frequency.Every(),
		principal: r.Principal,
	}
}

// Principal returns the current, possibly compounded, principal.
func (rs *RecurringState) Principal() money.Money {
	return rs.principal
}

// IsActive reports whether the recurring falls due on date: inside [Start, End) and
// on the same weekday/day-of-month/day-of-year as Start for its frequency.
func (rs *RecurringState) IsActive(date int64) bool {
	if date < rs.def.Start || date >= rs.def.End {
		return false
	}
	switch rs.def.Frequency.Kind {
	case domain.Weekly:
		return dateutil.SameWeekday(rs.def.Start, date)
	case domain.Monthly:
		return dateutil.SameDayOfMonth(rs.def.Start, date)
	case domain.Annually:
		return dateutil.SameDayOfYear(rs.def.Start, date)
	default:
		return true
	}
}

// TakePayment returns what the recurring contributes on date. Only every Nth aligned
// occurrence pays; compounding recurrings pay their interest and grow the principal.
func (rs *RecurringState) TakePayment(date int64) money.Money {
	if !rs.IsActive(date) {
		return money.Zero()
	}
	rs.seen++
	if rs.seen%rs.every != 0 {
		return money.Zero()
	}
	if !rs.principal.IsZero() {
		delta := rs.principal.Percent(rs.def.Interest)
		rs.principal = rs.principal.Add(delta)
		return delta
	}
	return rs.def.Amount
}

// overlaps reports whether the recurring can be active anywhere in (from, to].
func (rs *RecurringState) overlaps(from, to int64) bool {
	return rs.def.Start <= to && rs.def.End > from
}

package main

import (
	"fmt"
	"os"
	"strconv"

	calc "github.com/finch/networth/internal/calculation"
	"github.com/finch/networth/internal/config"
	"github.com/finch/networth/pkg/dateutil"
	money "github.com/finch/networth/pkg/decimal"
)

// Prints the day-by-day breakdown of a projection as CSV:
// allocation in force, blended APY, fired event, payments and net worth.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_projection <profile-file> [days]")
		return
	}
	days := 90
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			panic(err)
		}
		days = n
	}

	p := config.NewInputParser()
	user, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	now := calc.Now()
	plan := calc.EffectivePlan(user, now)
	netWorth, date := money.Zero(), now.Unix()
	if last, ok := user.LastSnapshot(); ok {
		netWorth, date = last.NetWorth, last.SnapshotTime
	}
	start := netWorth

	states := make([]*calc.RecurringState, 0, len(plan.Recurrings))
	for _, r := range plan.Recurrings {
		states = append(states, calc.NewRecurringState(r))
	}
	pending := append(plan.Events[:0:0], plan.Events...)

	fmt.Println("Day,Date,Allocation,APY,Event,Payments,NetWorth")
	for d := 1; d <= days; d++ {
		day := dateutil.AddDays(date, d)
		alloc, apy := calc.EffectiveAllocation(plan.Allocations, day)

		fired := ""
		before := len(pending)
		netWorth, pending = calc.ApplyDueEvent(pending, day, alloc, netWorth)
		if len(pending) < before {
			fired = "yes"
		}

		payments := money.Zero()
		for _, s := range states {
			payments = payments.Add(s.TakePayment(day))
		}
		netWorth = calc.Grow(netWorth, apy).Add(payments)

		fmt.Printf("%d,%s,%q,%s,%s,%s,%s\n", d, dateutil.FormatDate(day), alloc.Description,
			apy.StringFixed(4), fired, payments.String(), netWorth.String())
	}

	// Cross-check against the engine.
	series := calc.NewProjectionEngine().Simulate(plan, days, start, date)
	if len(series) > 0 && !series[len(series)-1].NetWorth.Equal(netWorth) {
		fmt.Fprintf(os.Stderr, "mismatch: engine ends at %s, breakdown at %s\n", series[len(series)-1].NetWorth, netWorth)
		os.Exit(1)
	}
}

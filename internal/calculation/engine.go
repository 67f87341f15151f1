package calculation

import (
	"time"

	"github.com/finch/networth/internal/domain"
	money "github.com/finch/networth/pkg/decimal"
)

// DefaultProjectionDays is the horizon used when callers do not pick one.
const DefaultProjectionDays = 365

// BuildTimeseries projects days days ahead from the user's last snapshot under the
// effective plan and prepends the snapshot history. Without any snapshot the projection
// starts from zero net worth at now.
func (pe *ProjectionEngine) BuildTimeseries(u *domain.User, days int, now time.Time) domain.TimeseriesResponse {
	plan := EffectivePlan(u, now)

	startNetWorth, startDate := money.Zero(), now.Unix()
	if last, ok := u.LastSnapshot(); ok {
		startNetWorth, startDate = last.NetWorth, last.SnapshotTime
	} else {
		pe.logger().Warnf("no snapshots for user %q, projecting from zero net worth", u.Name)
	}

	projected := pe.Simulate(plan, days, startNetWorth, startDate)
	pe.logger().Infof("projected %d days for %q from %s", len(projected), plan.Name, startNetWorth)

	return domain.TimeseriesResponse{
		Start:  startDate,
		Series: AssembleTimeseries(u.Snapshots, projected),
	}
}

// BuildPlanResponse pairs the user's plan with its timeseries.
func (pe *ProjectionEngine) BuildPlanResponse(u *domain.User, days int, now time.Time) domain.PlanResponse {
	return domain.PlanResponse{
		Plan:       UserPlan(u, now),
		Timeseries: pe.BuildTimeseries(u, days, now),
	}
}

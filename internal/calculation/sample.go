package calculation

import (
	"time"

	"github.com/finch/networth/internal/domain"
	money "github.com/finch/networth/pkg/decimal"
	"github.com/shopspring/decimal"
)

// SamplePlan is substituted for users who have not authored a plan yet. It holds an
// empty-window recurring, a single all-cash allocation and one equity event, all dated now.
// The recurring never pays but still passes validation, so the plan can be persisted.
func SamplePlan(now time.Time) domain.Plan {
	ts := now.Unix()
	return domain.Plan{
		Name: "Sample Plan",
		Recurrings: []domain.Recurring{{
			Name:      "Sample Recurring",
			Start:     ts,
			End:       ts,
			Amount:    money.NewMoneyFromInt(100),
			Frequency: domain.Frequency{Kind: domain.Monthly, EveryN: 1},
		}},
		Allocations: []domain.Allocation{{
			Date:        ts,
			Description: "Sample Allocation",
			Schema: []domain.AllocationEntry{{
				Name:                  "Savings Account",
				AssetClass:            domain.Cash,
				AnnualizedPerformance: decimal.RequireFromString("1.05"),
				Proportion:            decimalHundred,
			}},
		}},
		Events: []domain.Event{{
			Name:  "Sample Event",
			Start: ts,
			Transforms: []domain.Transform{{
				AssetClass: domain.Equity,
				Change:     decimal.NewFromInt(10),
			}},
		}},
	}
}

// UserPlan returns the user's first plan, or the sample plan when there is none.
func UserPlan(u *domain.User, now time.Time) domain.Plan {
	if len(u.Plans) == 0 {
		return SamplePlan(now)
	}
	return u.Plans[0]
}

// EffectivePlan returns the plan a projection for u runs on: UserPlan with
// the user's own recurrings appended. u is not modified.
func EffectivePlan(u *domain.User, now time.Time) domain.Plan {
	plan := UserPlan(u, now).Clone()
	plan.Recurrings = append(plan.Recurrings, u.Recurrings...)
	return plan
}

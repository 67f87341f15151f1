package service

import (
	"context"

	"github.com/finch/networth/internal/apperr"
	"github.com/finch/networth/internal/calculation"
	"github.com/finch/networth/internal/domain"
	money "github.com/finch/networth/pkg/decimal"
)

// PlanUpdate carries the plan fields to replace; nil fields are left alone.
type PlanUpdate struct {
	Name        *string
	Recurrings  *[]domain.Recurring
	Allocations *[]domain.Allocation
	Events      *[]domain.Event
}

// GetPlan returns the user's plan, or the sample plan, with its projection.
func (s *Service) GetPlan(ctx context.Context) (domain.PlanResponse, error) {
	user, err := s.load(ctx)
	if err != nil {
		return domain.PlanResponse{}, err
	}
	if err := s.refreshSnapshots(ctx, user); err != nil {
		return domain.PlanResponse{}, err
	}
	return s.engine.BuildPlanResponse(user, s.days, calculation.Now()), nil
}

// NewPlan stores plan as the user's plan, replacing any existing one.
func (s *Service) NewPlan(ctx context.Context, plan domain.Plan) (domain.PlanResponse, error) {
	if plan.Name == "" {
		return domain.PlanResponse{}, apperr.BadRequest("plan name is required")
	}
	if err := plan.Validate(); err != nil {
		return domain.PlanResponse{}, apperr.BadRequest("invalid plan: %v", err)
	}

	user, err := s.load(ctx)
	if err != nil {
		return domain.PlanResponse{}, err
	}

	plan = plan.Clone()
	assignIDs(&plan)
	setUserPlan(user, plan)

	if err := s.save(ctx, user); err != nil {
		return domain.PlanResponse{}, err
	}
	s.logger.Infof("created plan %q (%s)", plan.Name, plan.ID)

	return domain.PlanResponse{
		Plan:       plan,
		Timeseries: s.engine.BuildTimeseries(user, s.days, calculation.Now()),
	}, nil
}

// UpdatePlan applies update to the user's plan and stores the result. A user without a
// plan starts from the sample plan.
func (s *Service) UpdatePlan(ctx context.Context, update PlanUpdate) (domain.PlanResponse, error) {
	user, err := s.load(ctx)
	if err != nil {
		return domain.PlanResponse{}, err
	}

	plan := calculation.UserPlan(user, calculation.Now()).Clone()
	if update.Name != nil {
		plan.Name = *update.Name
	}
	if update.Recurrings != nil {
		plan.Recurrings = *update.Recurrings
	}
	if update.Allocations != nil {
		plan.Allocations = *update.Allocations
	}
	if update.Events != nil {
		plan.Events = *update.Events
	}
	if err := plan.Validate(); err != nil {
		return domain.PlanResponse{}, apperr.BadRequest("invalid plan: %v", err)
	}

	assignIDs(&plan)
	setUserPlan(user, plan)

	if err := s.save(ctx, user); err != nil {
		return domain.PlanResponse{}, err
	}
	s.logger.Infof("updated plan %q", plan.Name)

	return domain.PlanResponse{
		Plan:       plan,
		Timeseries: s.engine.BuildTimeseries(user, s.days, calculation.Now()),
	}, nil
}

// DeletePlan removes the user's plan and returns it. Later projections use the
// sample plan again.
func (s *Service) DeletePlan(ctx context.Context) (domain.Plan, error) {
	user, err := s.load(ctx)
	if err != nil {
		return domain.Plan{}, err
	}
	if len(user.Plans) == 0 {
		return domain.Plan{}, apperr.NotFound("user %q has no plan", user.Name)
	}

	removed := user.Plans[0]
	user.Plans = nil
	if err := s.save(ctx, user); err != nil {
		return domain.Plan{}, err
	}
	s.logger.Infof("deleted plan %q", removed.Name)
	return removed, nil
}

// UpdateHoldingsAllocation appends a "Current Holdings" allocation derived from the
// linked account balances to the user's plan.
func (s *Service) UpdateHoldingsAllocation(ctx context.Context) (domain.PlanResponse, error) {
	if s.accounts == nil {
		return domain.PlanResponse{}, apperr.Internal("no account source configured")
	}

	user, err := s.load(ctx)
	if err != nil {
		return domain.PlanResponse{}, err
	}
	if err := s.refreshSnapshots(ctx, user); err != nil {
		return domain.PlanResponse{}, err
	}

	accounts, err := s.accounts.Accounts(ctx)
	if err != nil {
		return domain.PlanResponse{}, apperr.Internal("failed to fetch accounts: %v", err)
	}
	netWorth := money.Zero()
	if last, ok := user.LastSnapshot(); ok {
		netWorth = last.NetWorth
	}

	now := calculation.Now()
	plan := calculation.UserPlan(user, now).Clone()
	alloc := calculation.AllocationFromAccounts(accounts, netWorth, now)
	plan.Allocations = append(plan.Allocations, alloc)
	assignIDs(&plan)
	setUserPlan(user, plan)

	if err := s.save(ctx, user); err != nil {
		return domain.PlanResponse{}, err
	}
	s.logger.Infof("added holdings allocation with %d accounts at net worth %s", len(accounts), netWorth)

	return domain.PlanResponse{
		Plan:       plan,
		Timeseries: s.engine.BuildTimeseries(user, s.days, now),
	}, nil
}

// AssetClasses lists the known asset classes with their default APYs.
func (s *Service) AssetClasses() []domain.AssetClassAPY {
	return domain.DefaultAssetClassAPYs()
}

func setUserPlan(user *domain.User, plan domain.Plan) {
	if len(user.Plans) == 0 {
		user.Plans = append(user.Plans, plan)
		return
	}
	user.Plans[0] = plan
}

// assignIDs gives the plan and its recurrings and events an id where they lack one.
func assignIDs(plan *domain.Plan) {
	if plan.ID == "" {
		plan.ID = newID()
	}
	for i := range plan.Recurrings {
		if plan.Recurrings[i].ID == "" {
			plan.Recurrings[i].ID = newID()
		}
	}
	for i := range plan.Events {
		if plan.Events[i].ID == "" {
			plan.Events[i].ID = newID()
		}
	}
}

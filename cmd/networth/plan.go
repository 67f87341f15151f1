package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/finch/networth/internal/calculation"
	"github.com/finch/networth/internal/config"
	"github.com/finch/networth/internal/domain"
	"github.com/finch/networth/internal/output"
	"github.com/finch/networth/internal/storage"
	"github.com/finch/networth/pkg/dateutil"
)

func newPlanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show and manage the projection plan",
	}
	cmd.AddCommand(
		newPlanShowCmd(a),
		newPlanInitCmd(a),
		newPlanDeleteCmd(a),
		newPlanHoldingsCmd(a),
	)
	return cmd
}

func newPlanShowCmd(a *app) *cobra.Command {
	var planOnly bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the plan (or the sample plan) and its projection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.svc.GetPlan(cmd.Context())
			if err != nil {
				return hint(err)
			}
			return a.printPlanResponse(cmd, resp, planOnly)
		},
	}
	cmd.Flags().BoolVar(&planOnly, "plan-only", false, "skip the timeseries")
	return cmd
}

func newPlanInitCmd(a *app) *cobra.Command {
	var (
		userName string
		planName string
		example  bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the profile if needed and store a starter plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := calculation.Now()

			_, err := a.store.Load(ctx)
			switch {
			case errors.Is(err, storage.ErrNoProfile):
				user := &domain.User{Name: userName}
				if example {
					user = config.NewInputParser().CreateExampleProfile(now)
				}
				if err := a.store.Save(ctx, user); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created profile %s\n", a.store.Path())
			case err != nil:
				return err
			}
			if example {
				return nil
			}

			plan := calculation.SamplePlan(now)
			plan.Name = planName
			resp, err := a.svc.NewPlan(ctx, plan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored plan %q (%s)\n", resp.Plan.Name, resp.Plan.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&userName, "user", "me", "user name for a new profile")
	cmd.Flags().StringVar(&planName, "name", "My Plan", "plan name")
	cmd.Flags().BoolVar(&example, "example", false, "write a fully populated example profile instead")
	return cmd
}

func newPlanDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Remove the plan; projections fall back to the sample plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			removed, err := a.svc.DeletePlan(cmd.Context())
			if err != nil {
				return hint(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted plan %q\n", removed.Name)
			return nil
		},
	}
}

func newPlanHoldingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "holdings",
		Short: "Append a Current Holdings allocation built from --accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.accountsPath == "" {
				return fmt.Errorf("--accounts is required")
			}
			resp, err := a.svc.UpdateHoldingsAllocation(cmd.Context())
			if err != nil {
				return hint(err)
			}
			alloc := resp.Plan.Allocations[len(resp.Plan.Allocations)-1]
			printAllocation(cmd.OutOrStdout(), alloc)
			return nil
		},
	}
}

func (a *app) printPlanResponse(cmd *cobra.Command, resp domain.PlanResponse, planOnly bool) error {
	out := cmd.OutOrStdout()
	if output.NormalizeFormatName(a.settings.Format) == "json" {
		var v any = resp
		if planOnly {
			v = resp.Plan
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	printPlan(out, resp.Plan)
	if planOnly {
		return nil
	}
	fmt.Fprintln(out)
	return a.render(cmd, &resp.Timeseries, "")
}

func printPlan(w io.Writer, plan domain.Plan) {
	fmt.Fprintf(w, "Plan: %s", plan.Name)
	if plan.ID != "" {
		fmt.Fprintf(w, " (%s)", plan.ID)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Recurrings (%d):\n", len(plan.Recurrings))
	for _, r := range plan.Recurrings {
		printRecurring(w, r)
	}
	fmt.Fprintf(w, "Allocations (%d):\n", len(plan.Allocations))
	for _, alloc := range plan.Allocations {
		printAllocation(w, alloc)
	}
	fmt.Fprintf(w, "Events (%d):\n", len(plan.Events))
	for _, e := range plan.Events {
		fmt.Fprintf(w, "  %s  %s\n", dateutil.FormatDate(e.Start), e.Name)
		for _, t := range e.Transforms {
			fmt.Fprintf(w, "    %-12s %s%%\n", t.AssetClass, t.Change.StringFixed(2))
		}
	}
}

func printAllocation(w io.Writer, alloc domain.Allocation) {
	fmt.Fprintf(w, "  from %s  %s (apy %s)\n", dateutil.FormatDate(alloc.Date), alloc.Description,
		calculation.CalculateAPYFromAllocation(alloc).StringFixed(4))
	for _, e := range alloc.Schema {
		fmt.Fprintf(w, "    %-12s %-20s %7s%%  perf %s\n", e.AssetClass, e.Name, e.Proportion.StringFixed(2), e.AnnualizedPerformance.StringFixed(2))
	}
}

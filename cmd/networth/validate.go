package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finch/networth/internal/config"
	"github.com/finch/networth/internal/domain"
	"github.com/finch/networth/pkg/dateutil"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check a profile document without projecting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.settings.ProfilePath
			if len(args) == 1 {
				path = args[0]
			}
			user, err := config.NewInputParser().LoadFromFile(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: OK\n", path)
			fmt.Fprintf(out, "  user %q: %d plans, %d recurrings, %d snapshots\n",
				user.Name, len(user.Plans), len(user.Recurrings), len(user.Snapshots))
			if last, ok := user.LastSnapshot(); ok {
				fmt.Fprintf(out, "  last snapshot %s: %s\n", dateutil.FormatDate(last.SnapshotTime), last.NetWorth.Format())
			}
			for _, p := range user.Plans {
				warnUnusedAllocations(cmd, p)
			}
			return nil
		},
	}
}

// warnUnusedAllocations points out allocations that share a date with a later one and
// so never take effect.
func warnUnusedAllocations(cmd *cobra.Command, p domain.Plan) {
	for i, a := range p.Allocations {
		for _, b := range p.Allocations[i+1:] {
			if a.Date == b.Date {
				fmt.Fprintf(cmd.OutOrStdout(), "  warning: plan %q allocation %q on %s is shadowed by %q\n",
					p.Name, a.Description, dateutil.FormatDate(a.Date), b.Description)
				break
			}
		}
	}
}

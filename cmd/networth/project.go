package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/finch/networth/internal/calculation"
	"github.com/finch/networth/internal/domain"
)

func newProjectCmd(a *app) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the snapshot history followed by the projected net worth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ts, err := a.svc.GetTimeseries(cmd.Context())
			if err != nil {
				return hint(err)
			}
			return a.render(cmd, &ts, outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "write a timestamped report into this directory instead of stdout")
	return cmd
}

func newExampleCmd(a *app) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print a synthetic demo series around today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := calculation.Now().UTC().Truncate(24 * time.Hour)
			ts := domain.TimeseriesResponse{
				Start:  now.Unix(),
				Series: calculation.ExampleTimeseries(now),
			}
			return a.render(cmd, &ts, outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "write a timestamped report into this directory instead of stdout")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAssetClassesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "asset-classes",
		Short: "List asset classes with their default annualized performance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", "Class", "Default APY")
			for _, c := range a.svc.AssetClasses() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", c.Class, c.APY.StringFixed(2))
			}
			return nil
		},
	}
}

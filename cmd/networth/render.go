package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finch/networth/internal/domain"
	"github.com/finch/networth/internal/output"
)

func outputFormatNames() []string {
	return append(output.AvailableFormatterNames(), "all")
}

// render prints ts in the configured format, or writes report files when dir is set
// or the format is binary.
func (a *app) render(cmd *cobra.Command, ts *domain.TimeseriesResponse, dir string) error {
	format := a.settings.Format
	if dir != "" || output.IsBinary(format) || output.NormalizeFormatName(format) == "all" {
		if dir == "" {
			dir = "."
		}
		files, err := output.GenerateReport(ts, format, dir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f)
		}
		a.logger.Debugf("wrote %d report files", len(files))
		return nil
	}

	f := output.GetFormatterByName(format)
	if f == nil {
		return output.UnsupportedFormatError(format)
	}
	data, err := f.Format(ts)
	if err != nil {
		return fmt.Errorf("%s output: %w", f.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

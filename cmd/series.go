package cmd

import (
	"github.com/huangsam/vegwatch/core"
	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/spf13/cobra"
)

// seriesCmd shows the normalized series without evaluating it.
var seriesCmd = &cobra.Command{
	Use:   "series <samples-path>",
	Short: "Show the normalized series and its cleaning diagnostics.",
	Long: `Normalize a time series and print the clean chronological samples
without running any change statistic.

Use this to audit what the evaluator would actually see: which samples
were excluded for null or non-finite values, and how many same-date
duplicates were folded into their average.

Examples:
  # Inspect the normalized series
  vegwatch series field42.csv

  # Export the clean samples as JSON
  vegwatch series field42.csv --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSeries(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot normalize series", err)
		}
	},
}

package cmd

import (
	"github.com/huangsam/vegwatch/core"
	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/spf13/cobra"
)

// evaluateCmd performs a single-series change evaluation.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <samples-path>",
	Short: "Evaluate one time series for significant change.",
	Long: `Normalize a vegetation-index time series and assess whether a significant
change occurred between its older and newer halves.

The samples file holds (date, value) observations as CSV or JSON. Null
values (cloud cover, sensor gaps) are excluded with diagnostics, samples
sharing an acquisition date are averaged, and the clean series is split
at its midpoint for comparison.

Three statistics are available via --statistic:
- splitmean: explainable threshold on the mean shift (default)
- ttest:     Welch two-sample t-test for step changes in noisy series
- trend:     Mann-Kendall test for gradual monotonic drift

Examples:
  # Evaluate with the default split-mean heuristic
  vegwatch evaluate field42.csv

  # Tighten the change threshold
  vegwatch evaluate field42.csv --threshold 0.05

  # Use a significance test instead of the heuristic
  vegwatch evaluate field42.csv --statistic ttest --alpha 0.01

  # Export the assessment as JSON
  vegwatch evaluate field42.csv --output json --output-file result.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEvaluate(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run evaluation", err)
		}
	},
}

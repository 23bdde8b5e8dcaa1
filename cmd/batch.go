package cmd

import (
	"github.com/huangsam/vegwatch/core"
	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/spf13/cobra"
)

// batchCmd evaluates many AOI series concurrently.
var batchCmd = &cobra.Command{
	Use:   "batch <samples-dir-or-manifest>",
	Short: "Evaluate many AOI series and rank them by change confidence.",
	Long: `Evaluate a fleet of AOI time series concurrently and rank the results
by change confidence, most confident first.

The target is either a directory of sample files (the AOI name is the
file name without extension) or a JSON manifest of [{aoi, path}] entries.
Series that fail to evaluate are reported at the bottom of the ranking
instead of aborting the batch; the batch only fails when every series
fails.

Examples:
  # Evaluate every series in a directory
  vegwatch batch ./fields/

  # Evaluate an explicit manifest with more workers
  vegwatch batch fleet.json --workers 8

  # Show only the top 5 most changed AOIs
  vegwatch batch ./fields/ --limit 5

  # Export the ranking to CSV for reporting
  vegwatch batch ./fields/ --output csv --output-file ranking.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBatch(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run batch evaluation", err)
		}
	},
}

package cmd

import (
	"github.com/huangsam/vegwatch/core"
	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/spf13/cobra"
)

// statisticsCmd explains what each change statistic measures.
var statisticsCmd = &cobra.Command{
	Use:   "statistics",
	Short: "Explain the available change statistics.",
	Long: `Display the formal definitions of all change statistics.

For each statistic, shows:
- What it is designed to detect
- How the change decision is made
- How the confidence score is derived
- Its main caveat

Use this to pick the right statistic per series:
- splitmean when you want an explainable threshold rule
- ttest when a step change must survive noisy observations
- trend when degradation is gradual rather than abrupt

Examples:
  # Show all statistic definitions
  vegwatch statistics

  # Machine-readable form for docs or tooling
  vegwatch statistics --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStatistics(cfg); err != nil {
			contract.LogFatal("Cannot display statistics", err)
		}
	},
}

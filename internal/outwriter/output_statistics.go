package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/huangsam/vegwatch/schema"
)

// buildStatisticsRenderModel constructs the static definitions of every
// statistic mode. This is display data only; the actual implementations
// live in the core package.
func buildStatisticsRenderModel() *schema.StatisticsRenderModel {
	return &schema.StatisticsRenderModel{
		Title:       "Vegwatch Change Statistics",
		Description: "Each statistic compares the older half of a series against the newer half",
		Statistics: []schema.StatisticInfo{
			{
				Name:     schema.SplitMeanStat,
				Purpose:  "Explainable default - magnitude of the shift between halves",
				Decision: "change when |mean(first) - mean(second)| > threshold (strict)",
				Score:    "confidence = min(delta * scale_factor, 1.0)",
				Caveat:   "a heuristic, not a significance test; ignores within-segment variability",
			},
			{
				Name:     schema.TTestStat,
				Purpose:  "Step change with noise awareness - Welch two-sample t-test",
				Decision: "change when two-sided p < alpha",
				Score:    "confidence = 1 - p, clamped to [0,1]",
				Caveat:   "needs at least two samples per segment; assumes roughly normal noise",
			},
			{
				Name:     schema.TrendStat,
				Purpose:  "Gradual monotonic drift - Mann-Kendall trend test",
				Decision: "change when two-sided p < alpha",
				Score:    "confidence = 1 - p, clamped to [0,1]",
				Caveat:   "detects drift over the full window, not a step between halves",
			},
		},
	}
}

// PrintStatisticDefinitions outputs the statistic-mode reference, dispatching
// based on the output format configured.
func PrintStatisticDefinitions(cfg *contract.Config) error {
	model := buildStatisticsRenderModel()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "JSON statistic definitions")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"name", "purpose", "decision", "score", "caveat"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, info := range model.Statistics {
					row := []string{string(info.Name), info.Purpose, info.Decision, info.Score, info.Caveat}
					if err := csvWriter.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
		}, "CSV statistic definitions")
	default:
		printStatisticsText(model)
		return nil
	}
}

func printStatisticsText(model *schema.StatisticsRenderModel) {
	fmt.Printf("%s\n%s\n\n", model.Title, model.Description)
	for _, info := range model.Statistics {
		name := string(info.Name)
		if info.Name == schema.SplitMeanStat {
			name += " (default)"
		}
		fmt.Printf("%s\n", contract.HighColor.Sprint(name))
		fmt.Printf("  Purpose:  %s\n", info.Purpose)
		fmt.Printf("  Decision: %s\n", info.Decision)
		fmt.Printf("  Score:    %s\n", info.Score)
		fmt.Printf("  Caveat:   %s\n\n", info.Caveat)
	}
}

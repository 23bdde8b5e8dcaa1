package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/huangsam/vegwatch/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintAssessment outputs a single change assessment, dispatching based on
// the output format configured.
func PrintAssessment(assessment schema.ChangeAssessment, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONAssessment(assessment, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVAssessment(assessment, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printAssessmentTable(assessment, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing assessment table output: %w", err)
		}
	}
	return nil
}

// printJSONAssessment handles opening the file and calling the JSON writer.
func printJSONAssessment(assessment schema.ChangeAssessment, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, assessment)
	}, "JSON assessment")
}

// printCSVAssessment handles opening the file and calling the CSV writer.
func printCSVAssessment(assessment schema.ChangeAssessment, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, assessmentCSVHeader, func(csvWriter *csv.Writer) error {
			return csvWriter.Write(assessmentCSVRow(assessment, fmtFloat))
		})
	}, "CSV assessment")
}

// printAssessmentTable prints the assessment as a two-column field table.
func printAssessmentTable(assessment schema.ChangeAssessment, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Field", "Value"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignLeft
	})

	data := [][]string{
		{"Change", formatChange(assessment.ChangeDetected)},
		{"Confidence", fmtFloat(assessment.Confidence)},
		{"Label", labelFor(assessment.Confidence, cfg)},
		{"Mean", fmtFloat(assessment.Mean)},
		{"First segment mean", fmtFloat(assessment.FirstSegmentMean)},
		{"Second segment mean", fmtFloat(assessment.SecondSegmentMean)},
		{"Raw delta", fmtFloat(assessment.RawDelta)},
		{"Samples", fmt.Sprintf("%d", assessment.SampleCount)},
		{"Date range", fmt.Sprintf("%s to %s", assessment.DateRange.Start, assessment.DateRange.End)},
		{"Statistic", string(assessment.Statistic)},
	}
	if assessment.ExcludedSamples > 0 {
		data = append(data, []string{"Excluded samples", fmt.Sprintf("%d", assessment.ExcludedSamples)})
	}
	if assessment.DuplicatesMerged > 0 {
		data = append(data, []string{
			"Duplicates merged",
			fmt.Sprintf("%d (%s)", assessment.DuplicatesMerged, assessment.DedupePolicy),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Evaluation completed in %v. Statistic: %s\n", duration, assessment.Statistic)
	return nil
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/huangsam/vegwatch/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// seriesRenderModel shapes the normalized-series audit view for JSON output.
type seriesRenderModel struct {
	Samples          []schema.Sample     `json:"samples"`
	SampleCount      int                 `json:"sample_count"`
	Excluded         int                 `json:"excluded_samples"`
	DuplicatesMerged int                 `json:"duplicates_merged"`
	DedupePolicy     schema.DedupePolicy `json:"dedupe_policy"`
}

// PrintSeries outputs a normalized series plus its diagnostics, dispatching
// based on the output format configured.
func PrintSeries(series *schema.Series, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	model := seriesRenderModel{
		Samples:          series.Samples,
		SampleCount:      series.Len(),
		Excluded:         series.Excluded,
		DuplicatesMerged: series.DuplicatesMerged,
		DedupePolicy:     schema.AveragePolicy,
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "JSON series")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"date", "value"}, func(csvWriter *csv.Writer) error {
				for _, sample := range series.Samples {
					row := []string{sample.Date.Format(schema.DateFormat), fmtFloat(sample.Value)}
					if err := csvWriter.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
		}, "CSV series")
	default:
		return printSeriesTable(model, fmtFloat)
	}
}

func printSeriesTable(model seriesRenderModel, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Date", "Value"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, sample := range model.Samples {
		data = append(data, []string{sample.Date.Format(schema.DateFormat), fmtFloat(sample.Value)})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("%d valid samples. Excluded: %d, duplicates merged: %d (%s)\n",
		model.SampleCount, model.Excluded, model.DuplicatesMerged, model.DedupePolicy)
	return nil
}

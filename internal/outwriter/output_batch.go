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

// PrintBatchResults outputs ranked batch results, dispatching based on the
// output format configured.
func PrintBatchResults(result schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONBatch(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVBatch(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printBatchTable(result, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing batch table output: %w", err)
		}
	}
	return nil
}

func printJSONBatch(result schema.BatchResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "JSON batch results")
}

func printCSVBatch(result schema.BatchResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, assessmentCSVHeader, func(csvWriter *csv.Writer) error {
			for _, entry := range result.Entries {
				if entry.Assessment == nil {
					continue
				}
				if err := csvWriter.Write(assessmentCSVRow(*entry.Assessment, fmtFloat)); err != nil {
					return err
				}
			}
			return nil
		})
	}, "CSV batch results")
}

// printBatchTable prints the ranked batch entries in a table.
func printBatchTable(result schema.BatchResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Rank", "AOI", "Confidence", "Label", "Change", "Mean", "Delta", "Samples", "Range"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	aoiWidth := getMaxTableAOIWidth(cfg)
	var data [][]string
	for i, entry := range result.Entries {
		if entry.Assessment == nil {
			data = append(data, []string{
				fmt.Sprintf("%d", i+1),
				contract.TruncatePath(entry.AOI, aoiWidth),
				"-", "-", "error", "-", "-", "-",
				contract.TruncatePath(entry.Err, aoiWidth),
			})
			continue
		}
		a := entry.Assessment
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			contract.TruncatePath(entry.AOI, aoiWidth),
			fmtFloat(a.Confidence),
			labelFor(a.Confidence, cfg),
			formatChange(a.ChangeDetected),
			fmtFloat(a.Mean),
			fmtFloat(a.RawDelta),
			fmt.Sprintf("%d", a.SampleCount),
			fmt.Sprintf("%s..%s", a.DateRange.Start, a.DateRange.End),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Batch evaluation completed in %v with %d workers. Failed series: %d\n", duration, cfg.Workers, result.Failed)
	return nil
}

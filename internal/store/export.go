package store

import (
	"errors"
	"fmt"

	"github.com/huangsam/vegwatch/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of run tracking data to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the assessment store
	assessmentStore := Manager.GetAssessmentStore()
	if assessmentStore == nil {
		return errors.New("run tracking is not initialized")
	}

	// Check if there's any data to export
	status, err := assessmentStore.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run tracking data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total evaluation runs: %d\n", status.TotalRuns)
	fmt.Printf("Total assessment rows: %d\n", status.TableSizes[assessmentsTable])

	// Retrieve all evaluation runs
	runs, err := assessmentStore.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve evaluation runs: %w", err)
	}

	// Retrieve all assessment rows
	assessments, err := assessmentStore.GetAllAssessments()
	if err != nil {
		return fmt.Errorf("failed to retrieve assessments: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetAssessments := parquet.ConvertAssessmentRecords(assessments)

	// Write evaluation runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteEvaluationRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write evaluation runs: %w", err)
	}
	fmt.Printf("Exported %d evaluation runs to: %s\n", len(parquetRuns), runsFile)

	// Write assessments to Parquet
	assessmentsFile := outputFile + ".assessments.parquet"
	if err := parquet.WriteSeriesAssessmentsParquet(parquetAssessments, assessmentsFile); err != nil {
		return fmt.Errorf("failed to write assessments: %w", err)
	}
	fmt.Printf("Exported %d assessment rows to: %s\n", len(parquetAssessments), assessmentsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}

// Package parquet provides data structures and functions for exporting vegwatch
// run tracking data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/vegwatch/schema"
	"github.com/parquet-go/parquet-go"
)

// EvaluationRun represents a single vegwatch evaluation run with metadata.
// This struct maps to the vegwatch_runs database table.
type EvaluationRun struct {
	// RunID is the unique identifier for this evaluation run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the evaluation began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the evaluation completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the evaluation run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalSeries is the number of series evaluated in this run
	TotalSeries int32 `parquet:"total_series,snappy"`

	// ConfigParams contains the JSON-encoded evaluation parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// SeriesAssessment represents the assessment of a single series in a run.
// This struct maps to the vegwatch_assessments database table.
type SeriesAssessment struct {
	// RunID references the parent evaluation run
	RunID int64 `parquet:"run_id,snappy"`

	// AOI identifies the area of interest the series belongs to
	AOI string `parquet:"aoi,snappy"`

	// EvaluatedAt is when this series was assessed (stored as TIMESTAMP with nanosecond precision)
	EvaluatedAt time.Time `parquet:"evaluated_at,snappy"`

	// SampleCount is the number of valid samples after normalization
	SampleCount int32 `parquet:"sample_count,snappy"`

	// Mean is the overall mean index value of the series
	Mean float64 `parquet:"mean,snappy"`

	// FirstSegmentMean is the mean of the older half of the series
	FirstSegmentMean float64 `parquet:"first_segment_mean,snappy"`

	// SecondSegmentMean is the mean of the newer half of the series
	SecondSegmentMean float64 `parquet:"second_segment_mean,snappy"`

	// RawDelta is the absolute difference between segment means
	RawDelta float64 `parquet:"raw_delta,snappy"`

	// ChangeDetected indicates whether the statistic flagged a change
	ChangeDetected bool `parquet:"change_detected,snappy"`

	// Confidence is the change confidence score in [0,1]
	Confidence float64 `parquet:"confidence,snappy"`

	// Statistic indicates which change statistic was used
	Statistic string `parquet:"statistic,snappy"`

	// RangeStart is the earliest observation date (YYYY-MM-DD)
	RangeStart string `parquet:"range_start,snappy"`

	// RangeEnd is the latest observation date (YYYY-MM-DD)
	RangeEnd string `parquet:"range_end,snappy"`
}

// WriteEvaluationRunsParquet writes a slice of EvaluationRun structs to a Parquet file.
func WriteEvaluationRunsParquet(data []EvaluationRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the EvaluationRun struct tags
	writer := parquet.NewGenericWriter[EvaluationRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteSeriesAssessmentsParquet writes a slice of SeriesAssessment structs to a Parquet file.
func WriteSeriesAssessmentsParquet(data []SeriesAssessment, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the SeriesAssessment struct tags
	writer := parquet.NewGenericWriter[SeriesAssessment](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to EvaluationRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []EvaluationRun {
	result := make([]EvaluationRun, len(records))
	for i, record := range records {
		result[i] = EvaluationRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalSeries:   int32(record.TotalSeries),
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertAssessmentRecords converts schema.AssessmentRecord to SeriesAssessment for Parquet export.
func ConvertAssessmentRecords(records []schema.AssessmentRecord) []SeriesAssessment {
	result := make([]SeriesAssessment, len(records))
	for i, record := range records {
		result[i] = SeriesAssessment{
			RunID:             record.RunID,
			AOI:               record.AOI,
			EvaluatedAt:       record.EvaluatedAt,
			SampleCount:       int32(record.SampleCount),
			Mean:              record.Mean,
			FirstSegmentMean:  record.FirstSegmentMean,
			SecondSegmentMean: record.SecondSegmentMean,
			RawDelta:          record.RawDelta,
			ChangeDetected:    record.ChangeDetected,
			Confidence:        record.Confidence,
			Statistic:         record.Statistic,
			RangeStart:        record.RangeStart,
			RangeEnd:          record.RangeEnd,
		}
	}
	return result
}

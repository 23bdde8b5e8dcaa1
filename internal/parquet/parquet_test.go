package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/vegwatch/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEvaluationRunsParquet(t *testing.T) {
	end := time.Date(2024, 6, 1, 12, 0, 5, 0, time.UTC)
	duration := int32(5000)
	params := `{"statistic":"splitmean"}`
	runs := []EvaluationRun{
		{
			RunID:         1,
			StartTime:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			EndTime:       &end,
			RunDurationMs: &duration,
			TotalSeries:   3,
			ConfigParams:  &params,
		},
		{
			RunID:     2,
			StartTime: time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC),
		},
	}

	path := filepath.Join(t.TempDir(), "runs.parquet")
	require.NoError(t, WriteEvaluationRunsParquet(runs, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[EvaluationRun](file)
	defer func() { _ = reader.Close() }()

	got := make([]EvaluationRun, 2)
	n, err := reader.Read(got)
	require.Equal(t, 2, n)
	_ = err // io.EOF is expected once all rows are consumed

	assert.Equal(t, int64(1), got[0].RunID)
	assert.Equal(t, int32(3), got[0].TotalSeries)
	require.NotNil(t, got[0].RunDurationMs)
	assert.Equal(t, int32(5000), *got[0].RunDurationMs)
	require.NotNil(t, got[0].ConfigParams)
	assert.Equal(t, params, *got[0].ConfigParams)

	assert.Equal(t, int64(2), got[1].RunID)
	assert.Nil(t, got[1].EndTime)
	assert.Nil(t, got[1].RunDurationMs)
}

func TestWriteSeriesAssessmentsParquet(t *testing.T) {
	assessments := []SeriesAssessment{
		{
			RunID:             1,
			AOI:               "plot-1",
			EvaluatedAt:       time.Date(2024, 6, 1, 12, 0, 1, 0, time.UTC),
			SampleCount:       10,
			Mean:              0.5,
			FirstSegmentMean:  0.7,
			SecondSegmentMean: 0.3,
			RawDelta:          0.4,
			ChangeDetected:    true,
			Confidence:        0.8,
			Statistic:         "splitmean",
			RangeStart:        "2024-01-01",
			RangeEnd:          "2024-05-31",
		},
	}

	path := filepath.Join(t.TempDir(), "assessments.parquet")
	require.NoError(t, WriteSeriesAssessmentsParquet(assessments, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[SeriesAssessment](file)
	defer func() { _ = reader.Close() }()

	got := make([]SeriesAssessment, 1)
	n, _ := reader.Read(got)
	require.Equal(t, 1, n)
	assert.Equal(t, assessments[0], got[0])
}

func TestConvertRunRecords(t *testing.T) {
	end := time.Now()
	duration := int32(1200)
	params := `{"workers":4}`
	records := []schema.RunRecord{
		{
			RunID:         7,
			StartTime:     end.Add(-time.Second),
			EndTime:       &end,
			RunDurationMs: &duration,
			TotalSeries:   5,
			ConfigParams:  &params,
		},
	}

	converted := ConvertRunRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, int64(7), converted[0].RunID)
	assert.Equal(t, int32(5), converted[0].TotalSeries)
	assert.Equal(t, &duration, converted[0].RunDurationMs)
	assert.Equal(t, &params, converted[0].ConfigParams)
}

func TestConvertAssessmentRecords(t *testing.T) {
	records := []schema.AssessmentRecord{
		{
			RunID:          7,
			AOI:            "plot-9",
			EvaluatedAt:    time.Now(),
			SampleCount:    12,
			Mean:           0.4,
			ChangeDetected: false,
			Confidence:     0.2,
			Statistic:      "trend",
			RangeStart:     "2024-01-01",
			RangeEnd:       "2024-03-01",
		},
	}

	converted := ConvertAssessmentRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, "plot-9", converted[0].AOI)
	assert.Equal(t, int32(12), converted[0].SampleCount)
	assert.Equal(t, "trend", converted[0].Statistic)
	assert.False(t, converted[0].ChangeDetected)
}

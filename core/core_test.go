package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/huangsam/vegwatch/internal/store"
	"github.com/huangsam/vegwatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig(samplesPath string) *contract.Config {
	return &contract.Config{
		SamplesPath: samplesPath,
		ResultLimit: contract.DefaultResultLimit,
		Workers:     contract.DefaultWorkers,
		Precision:   contract.DefaultPrecision,
		Output:      schema.TextOut,
		Statistic:   schema.SplitMeanStat,
		Threshold:   DefaultThreshold,
		ScaleFactor: DefaultScaleFactor,
		Alpha:       DefaultAlpha,
	}
}

func writeSamplesCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetEvaluateResult_RecordsRun(t *testing.T) {
	path := writeSamplesCSV(t, t.TempDir(), "forest.csv",
		"date,value\n2024-01-01,0.8\n2024-01-02,0.8\n2024-01-03,0.2\n2024-01-04,0.2\n")
	cfg := testConfig(path)

	assessmentStore := &store.MockAssessmentStore{}
	assessmentStore.On("BeginRun", mock.Anything, cfg.Params()).Return(int64(7), nil)
	assessmentStore.On("RecordAssessment", int64(7), mock.Anything).Return(nil)
	assessmentStore.On("EndRun", int64(7), mock.Anything, 1).Return(nil)
	mgr := &store.MockStoreManager{}
	mgr.On("GetAssessmentStore").Return(assessmentStore)

	assessment, err := GetEvaluateResult(context.Background(), cfg, mgr)
	require.NoError(t, err)
	assert.True(t, assessment.ChangeDetected)
	assert.Equal(t, path, assessment.AOI)
	assert.Equal(t, 4, assessment.SampleCount)

	mgr.AssertExpectations(t)
	assessmentStore.AssertExpectations(t)
}

func TestGetEvaluateResult_NoStoreConfigured(t *testing.T) {
	path := writeSamplesCSV(t, t.TempDir(), "forest.csv",
		"2024-01-01,0.5\n2024-01-02,0.5\n")
	cfg := testConfig(path)

	mgr := &store.MockStoreManager{}
	mgr.On("GetAssessmentStore").Return(nil)

	assessment, err := GetEvaluateResult(context.Background(), cfg, mgr)
	require.NoError(t, err)
	assert.False(t, assessment.ChangeDetected)
	mgr.AssertExpectations(t)
}

func TestGetEvaluateResult_MissingFile(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "absent.csv"))

	_, err := GetEvaluateResult(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestGetEvaluateResult_TrackingFailureDoesNotFailEvaluation(t *testing.T) {
	path := writeSamplesCSV(t, t.TempDir(), "forest.csv",
		"2024-01-01,0.5\n2024-01-02,0.5\n")
	cfg := testConfig(path)

	assessmentStore := &store.MockAssessmentStore{}
	assessmentStore.On("BeginRun", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)
	mgr := &store.MockStoreManager{}
	mgr.On("GetAssessmentStore").Return(assessmentStore)

	_, err := GetEvaluateResult(context.Background(), cfg, mgr)
	require.NoError(t, err)
	assessmentStore.AssertNotCalled(t, "RecordAssessment", mock.Anything, mock.Anything)
	assessmentStore.AssertNotCalled(t, "EndRun", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetBatchResult_Directory(t *testing.T) {
	dir := t.TempDir()
	writeSamplesCSV(t, dir, "cleared.csv", "2024-01-01,0.9\n2024-01-02,0.9\n2024-01-03,0.1\n2024-01-04,0.1\n")
	writeSamplesCSV(t, dir, "intact.csv", "2024-01-01,0.7\n2024-01-02,0.7\n2024-01-03,0.7\n2024-01-04,0.7\n")
	cfg := testConfig(dir)

	assessmentStore := &store.MockAssessmentStore{}
	assessmentStore.On("BeginRun", mock.Anything, mock.Anything).Return(int64(3), nil)
	assessmentStore.On("RecordAssessment", int64(3), mock.Anything).Return(nil).Times(2)
	assessmentStore.On("EndRun", int64(3), mock.Anything, 2).Return(nil)
	mgr := &store.MockStoreManager{}
	mgr.On("GetAssessmentStore").Return(assessmentStore)

	result, err := GetBatchResult(context.Background(), cfg, mgr)
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "cleared", result.Entries[0].AOI)
	assert.Equal(t, "intact", result.Entries[1].AOI)
	assert.Equal(t, 0, result.Failed)
	assessmentStore.AssertExpectations(t)
}

func TestGetBatchResult_LimitTruncates(t *testing.T) {
	dir := t.TempDir()
	writeSamplesCSV(t, dir, "a.csv", "2024-01-01,0.9\n2024-01-02,0.1\n")
	writeSamplesCSV(t, dir, "b.csv", "2024-01-01,0.5\n2024-01-02,0.5\n")
	writeSamplesCSV(t, dir, "c.csv", "2024-01-01,0.6\n2024-01-02,0.5\n")
	cfg := testConfig(dir)
	cfg.ResultLimit = 1

	mgr := &store.MockStoreManager{}
	mgr.On("GetAssessmentStore").Return(nil)

	result, err := GetBatchResult(context.Background(), cfg, mgr)
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "a", result.Entries[0].AOI)
}

func TestGetBatchResult_AllFailed(t *testing.T) {
	dir := t.TempDir()
	writeSamplesCSV(t, dir, "bad.csv", "not-a-date,0.5\n")
	cfg := testConfig(dir)

	mgr := &store.MockStoreManager{}
	mgr.On("GetAssessmentStore").Return(nil)

	_, err := GetBatchResult(context.Background(), cfg, mgr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to evaluate")
}

func TestGetSeriesResult(t *testing.T) {
	path := writeSamplesCSV(t, t.TempDir(), "audit.csv",
		"date,value\n2024-01-02,0.4\n2024-01-01,0.6\n2024-01-03,\n")
	cfg := testConfig(path)

	series, err := GetSeriesResult(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, series.Samples, 2)
	assert.Equal(t, "2024-01-01", series.Samples[0].Date.Format(schema.DateFormat))
	assert.Equal(t, 1, series.Excluded)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := testConfig("whatever.csv")
	cfg.Statistic = schema.TrendStat
	cfg.Threshold = 0.25
	cfg.ScaleFactor = 1.5
	cfg.Alpha = 0.01

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, schema.TrendStat, opts.Statistic)
	assert.Equal(t, 0.25, opts.Threshold)
	assert.Equal(t, 1.5, opts.ScaleFactor)
	assert.Equal(t, 0.01, opts.Alpha)
	assert.Empty(t, opts.AOI)
}

func TestRecordRun_ZeroRunIDSkipsTracking(t *testing.T) {
	assessmentStore := &store.MockAssessmentStore{}
	assessmentStore.On("BeginRun", mock.Anything, mock.Anything).Return(int64(0), nil)
	mgr := &store.MockStoreManager{}
	mgr.On("GetAssessmentStore").Return(assessmentStore)

	cfg := testConfig("unused.csv")
	recordRun(cfg, mgr, time.Now(), []schema.ChangeAssessment{{AOI: "x"}})

	assessmentStore.AssertNotCalled(t, "RecordAssessment", mock.Anything, mock.Anything)
	assessmentStore.AssertNotCalled(t, "EndRun", mock.Anything, mock.Anything, mock.Anything)
}

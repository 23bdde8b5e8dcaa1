package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/huangsam/vegwatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource serves in-memory sample sequences keyed by ref.
type stubSource struct {
	series map[string][]schema.RawSample
}

func (s *stubSource) Ready(_ context.Context) error {
	return nil
}

func (s *stubSource) Fetch(_ context.Context, ref string) ([]schema.RawSample, error) {
	raw, ok := s.series[ref]
	if !ok {
		return nil, fmt.Errorf("no series for %s", ref)
	}
	return raw, nil
}

func TestEvaluateBatch_RanksByConfidence(t *testing.T) {
	source := &stubSource{series: map[string][]schema.RawSample{
		"big":    rawSeries(0.9, 0.9, 0.1, 0.1),
		"small":  rawSeries(0.50, 0.50, 0.45, 0.45),
		"stable": rawSeries(0.5, 0.5, 0.5, 0.5),
	}}
	items := []schema.BatchItem{
		{AOI: "stable", Path: "stable"},
		{AOI: "big", Path: "big"},
		{AOI: "small", Path: "small"},
	}

	result := evaluateBatch(context.Background(), items, source, DefaultOptions(), 2)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, 0, result.Failed)

	assert.Equal(t, "big", result.Entries[0].AOI)
	assert.Equal(t, "small", result.Entries[1].AOI)
	assert.Equal(t, "stable", result.Entries[2].AOI)
	assert.True(t, result.Entries[0].Assessment.ChangeDetected)
	assert.False(t, result.Entries[2].Assessment.ChangeDetected)
}

func TestEvaluateBatch_FailedSeriesRankLast(t *testing.T) {
	source := &stubSource{series: map[string][]schema.RawSample{
		"good": rawSeries(0.8, 0.8, 0.2, 0.2),
		"empty": {
			{Date: "2024-01-01", Value: nil},
		},
	}}
	items := []schema.BatchItem{
		{AOI: "empty", Path: "empty"},
		{AOI: "good", Path: "good"},
		{AOI: "missing", Path: "missing"},
	}

	result := evaluateBatch(context.Background(), items, source, DefaultOptions(), 4)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, 2, result.Failed)

	assert.Equal(t, "good", result.Entries[0].AOI)
	require.NotNil(t, result.Entries[0].Assessment)

	// Errors sort last, alphabetical between themselves
	assert.Equal(t, "empty", result.Entries[1].AOI)
	assert.NotEmpty(t, result.Entries[1].Err)
	assert.Equal(t, "missing", result.Entries[2].AOI)
	assert.NotEmpty(t, result.Entries[2].Err)
}

func TestEvaluateBatch_AOICarriedIntoAssessment(t *testing.T) {
	source := &stubSource{series: map[string][]schema.RawSample{
		"field-7": rawSeries(0.5, 0.6),
	}}
	items := []schema.BatchItem{{AOI: "field-7", Path: "field-7"}}

	result := evaluateBatch(context.Background(), items, source, DefaultOptions(), 1)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "field-7", result.Entries[0].Assessment.AOI)
}

func TestEvaluateBatch_DeterministicAcrossWorkerCounts(t *testing.T) {
	series := map[string][]schema.RawSample{}
	items := make([]schema.BatchItem, 0, 20)
	for i := range 20 {
		aoi := fmt.Sprintf("aoi-%02d", i)
		series[aoi] = rawSeries(0.5, 0.5+float64(i)*0.01)
		items = append(items, schema.BatchItem{AOI: aoi, Path: aoi})
	}
	source := &stubSource{series: series}

	serial := evaluateBatch(context.Background(), items, source, DefaultOptions(), 1)
	parallel := evaluateBatch(context.Background(), items, source, DefaultOptions(), 8)

	assert.Equal(t, serial, parallel)
}

func TestRankEntries_TieBreakByAOI(t *testing.T) {
	conf := func(c float64) *schema.ChangeAssessment {
		return &schema.ChangeAssessment{Confidence: c}
	}
	entries := []schema.BatchEntry{
		{AOI: "b", Assessment: conf(0.5)},
		{AOI: "a", Assessment: conf(0.5)},
		{AOI: "c", Assessment: conf(0.9)},
	}

	rankEntries(entries)
	assert.Equal(t, "c", entries[0].AOI)
	assert.Equal(t, "a", entries[1].AOI)
	assert.Equal(t, "b", entries[2].AOI)
}

package core

import (
	"testing"

	"github.com/huangsam/vegwatch/schema"
	"github.com/stretchr/testify/assert"
)

func TestSplitMean_NoChangeOnFlatSeries(t *testing.T) {
	s := &splitMeanStatistic{}
	out := s.Compute([]float64{0.5, 0.5}, []float64{0.5, 0.5}, DefaultOptions())

	assert.False(t, out.ChangeDetected)
	assert.Equal(t, 0.0, out.Confidence)
	assert.Equal(t, 0.0, out.RawDelta)
	assert.Equal(t, 0.5, out.FirstSegmentMean)
	assert.Equal(t, 0.5, out.SecondSegmentMean)
}

func TestSplitMean_DetectsLargeShift(t *testing.T) {
	s := &splitMeanStatistic{}
	out := s.Compute([]float64{0.8, 0.8}, []float64{0.3, 0.3}, DefaultOptions())

	assert.True(t, out.ChangeDetected)
	assert.InDelta(t, 0.5, out.RawDelta, 1e-12)
	assert.InDelta(t, 1.0, out.Confidence, 1e-12) // 0.5 * 2.0 caps at 1
}

func TestSplitMean_ThresholdIsStrict(t *testing.T) {
	s := &splitMeanStatistic{}
	opts := DefaultOptions()
	opts.Threshold = 0.25

	// Delta exactly at the threshold must not trigger. The values here are
	// exact in binary so the comparison really is equality.
	out := s.Compute([]float64{0.5}, []float64{0.75}, opts)
	assert.Equal(t, 0.25, out.RawDelta)
	assert.False(t, out.ChangeDetected)

	// Just above it must
	out = s.Compute([]float64{0.5}, []float64{0.8}, opts)
	assert.True(t, out.ChangeDetected)
}

func TestSplitMean_DeltaIsSymmetric(t *testing.T) {
	s := &splitMeanStatistic{}
	opts := DefaultOptions()

	up := s.Compute([]float64{0.3}, []float64{0.8}, opts)
	down := s.Compute([]float64{0.8}, []float64{0.3}, opts)

	assert.Equal(t, up.RawDelta, down.RawDelta)
	assert.Equal(t, up.ChangeDetected, down.ChangeDetected)
	assert.Equal(t, up.Confidence, down.Confidence)
}

func TestSplitMean_ConfidenceScaling(t *testing.T) {
	s := &splitMeanStatistic{}
	opts := DefaultOptions()
	opts.ScaleFactor = 2.0

	out := s.Compute([]float64{0.5}, []float64{0.8}, opts)
	assert.InDelta(t, 0.6, out.Confidence, 1e-12) // 0.3 * 2.0

	opts.ScaleFactor = 10.0
	out = s.Compute([]float64{0.5}, []float64{0.8}, opts)
	assert.Equal(t, 1.0, out.Confidence) // clamped
}

func TestSplitMean_Name(t *testing.T) {
	s := &splitMeanStatistic{}
	assert.Equal(t, schema.SplitMeanStat, s.Name())
}

func TestStatisticFor_Dispatch(t *testing.T) {
	assert.Equal(t, schema.SplitMeanStat, statisticFor(schema.SplitMeanStat).Name())
	assert.Equal(t, schema.TTestStat, statisticFor(schema.TTestStat).Name())
	assert.Equal(t, schema.TrendStat, statisticFor(schema.TrendStat).Name())

	// Unknown modes fall back to the default statistic
	assert.Equal(t, schema.SplitMeanStat, statisticFor(schema.StatisticMode("bogus")).Name())
}

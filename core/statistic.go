package core

import (
	"github.com/huangsam/vegwatch/schema"
)

// Default evaluation parameters. Threshold and scale factor are in index
// units (e.g. NDVI's [-1,1] range); alpha is a significance level for the
// test-based statistics.
const (
	DefaultThreshold   = 0.1
	DefaultScaleFactor = 2.0
	DefaultAlpha       = 0.05
)

// Options controls a single evaluation. The zero value is not usable; start
// from DefaultOptions and override as needed.
type Options struct {
	AOI         string               // Optional AOI name carried into the assessment
	Statistic   schema.StatisticMode // Which change statistic to apply
	Threshold   float64              // Split-mean decision threshold (index units)
	ScaleFactor float64              // Split-mean confidence scale
	Alpha       float64              // Significance level for ttest/trend
}

// DefaultOptions returns the documented defaults with the split-mean statistic.
func DefaultOptions() Options {
	return Options{
		Statistic:   schema.SplitMeanStat,
		Threshold:   DefaultThreshold,
		ScaleFactor: DefaultScaleFactor,
		Alpha:       DefaultAlpha,
	}
}

// Outcome is what a SegmentStatistic produces from the two halves of a
// series. RawDelta is always the absolute segment-mean difference, whatever
// statistic decided the change flag, so outputs stay comparable across modes.
type Outcome struct {
	FirstSegmentMean  float64
	SecondSegmentMean float64
	RawDelta          float64
	ChangeDetected    bool
	Confidence        float64
}

// SegmentStatistic is the capability the engine is polymorphic over:
// compute a change statistic from the first and second segment of a series.
// Implementations must be pure; both segments are guaranteed non-empty.
type SegmentStatistic interface {
	Name() schema.StatisticMode
	Compute(first, second []float64, opts Options) Outcome
}

// statisticFor maps a mode to its implementation, defaulting to split-mean.
func statisticFor(mode schema.StatisticMode) SegmentStatistic {
	switch mode {
	case schema.TTestStat:
		return &tTestStatistic{}
	case schema.TrendStat:
		return &trendStatistic{}
	default:
		return &splitMeanStatistic{}
	}
}

// mean computes the arithmetic mean. It assumes a non-empty slice.
func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// variance computes the unbiased sample variance. It assumes len >= 2.
func variance(values []float64, m float64) float64 {
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values)-1)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

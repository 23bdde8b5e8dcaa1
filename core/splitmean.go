package core

import (
	"github.com/huangsam/vegwatch/schema"
)

// splitMeanStatistic is the default change heuristic: compare the mean of the
// older half against the mean of the newer half.
//
// This is a simple, explainable heuristic, not a statistical significance
// test. A large swing between halves is flagged as change; nothing is said
// about whether the swing exceeds natural variability. Use the ttest or
// trend statistics when that distinction matters.
type splitMeanStatistic struct{}

func (s *splitMeanStatistic) Name() schema.StatisticMode {
	return schema.SplitMeanStat
}

// Compute flags a change when the absolute segment-mean difference strictly
// exceeds the threshold. A delta exactly equal to the threshold does NOT
// trigger detection. Confidence is min(delta*scale, 1).
func (s *splitMeanStatistic) Compute(first, second []float64, opts Options) Outcome {
	firstMean := mean(first)
	secondMean := mean(second)
	delta := abs(firstMean - secondMean)

	confidence := delta * opts.ScaleFactor
	if confidence > 1.0 {
		confidence = 1.0
	}

	return Outcome{
		FirstSegmentMean:  firstMean,
		SecondSegmentMean: secondMean,
		RawDelta:          delta,
		ChangeDetected:    delta > opts.Threshold,
		Confidence:        confidence,
	}
}

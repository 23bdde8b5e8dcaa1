package core

import (
	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/huangsam/vegwatch/schema"
)

// assemble packages the engine outcome into the caller-facing assessment.
// Pure data transformation; the only logic is label derivation.
func assemble(series *schema.Series, overallMean float64, outcome Outcome, opts Options) schema.ChangeAssessment {
	return schema.ChangeAssessment{
		AOI:               opts.AOI,
		Mean:              overallMean,
		ChangeDetected:    outcome.ChangeDetected,
		Confidence:        outcome.Confidence,
		SampleCount:       series.Len(),
		FirstSegmentMean:  outcome.FirstSegmentMean,
		SecondSegmentMean: outcome.SecondSegmentMean,
		RawDelta:          outcome.RawDelta,
		DateRange: schema.DateRange{
			Start: series.Start().Format(schema.DateFormat),
			End:   series.End().Format(schema.DateFormat),
		},
		Statistic:        opts.Statistic,
		DedupePolicy:     schema.AveragePolicy,
		ExcludedSamples:  series.Excluded,
		DuplicatesMerged: series.DuplicatesMerged,
		Label:            contract.GetPlainLabel(outcome.Confidence),
	}
}

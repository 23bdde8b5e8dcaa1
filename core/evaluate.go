package core

import (
	"github.com/huangsam/vegwatch/schema"
)

// Evaluate runs the full normalize-compute-assemble flow on raw samples.
// It is deterministic and independent of the input ordering: the same sample
// set always yields the same assessment. Errors are ErrEmptySeries or an
// *InvalidDateError; there are no partial results.
func Evaluate(raw []schema.RawSample, opts Options) (schema.ChangeAssessment, error) {
	series, err := Normalize(raw)
	if err != nil {
		return schema.ChangeAssessment{}, err
	}
	return EvaluateSeries(series, opts), nil
}

// EvaluateSeries runs the statistic engine on an already normalized series.
// The series must be non-empty, which Normalize guarantees.
//
// The series splits at floor(n/2): with odd n the extra sample belongs to the
// second (newer) segment. This rule is fixed so that confidence values are
// reproducible across runs and implementations.
func EvaluateSeries(series *schema.Series, opts Options) schema.ChangeAssessment {
	opts = opts.withDefaults()
	values := series.Values()
	overallMean := mean(values)

	// A single sample has no history to compare against. Not an error:
	// report the mean with no change and zero confidence.
	if len(values) < 2 {
		outcome := Outcome{FirstSegmentMean: overallMean, SecondSegmentMean: overallMean}
		return assemble(series, overallMean, outcome, opts)
	}

	mid := len(values) / 2
	statistic := statisticFor(opts.Statistic)
	outcome := statistic.Compute(values[:mid], values[mid:], opts)
	return assemble(series, overallMean, outcome, opts)
}

// withDefaults fills unset numeric parameters with the documented defaults.
func (o Options) withDefaults() Options {
	if o.Statistic == "" {
		o.Statistic = schema.SplitMeanStat
	}
	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	}
	if o.ScaleFactor == 0 {
		o.ScaleFactor = DefaultScaleFactor
	}
	if o.Alpha == 0 {
		o.Alpha = DefaultAlpha
	}
	return o
}

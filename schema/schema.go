// Package schema has configs, models and shared types for all parts of vegwatch.
package schema

import "time"

// DateFormat is the calendar date representation used for all sample dates.
// Acquisition dates carry no meaningful time-of-day component, so the full
// RFC3339 form is deliberately not accepted.
const DateFormat = time.DateOnly

// RawSample is a single observation as supplied by a data-acquisition
// collaborator: an acquisition date plus a nullable index reading.
// A nil Value means the acquisition produced no usable reading for the AOI
// (for example, full cloud cover).
type RawSample struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// Sample is one validated observation inside a normalized series.
type Sample struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series is a chronologically ordered sequence of valid samples plus the
// normalization diagnostics. It is constructed once per evaluation and must
// be treated as immutable afterwards.
type Series struct {
	Samples          []Sample // Strictly increasing by date
	Excluded         int      // Samples dropped for null/NaN/Inf values
	DuplicatesMerged int      // Extra same-date samples folded by averaging
}

// Len returns the number of valid samples in the series.
func (s *Series) Len() int {
	return len(s.Samples)
}

// Values returns the index readings in chronological order.
func (s *Series) Values() []float64 {
	values := make([]float64, len(s.Samples))
	for i, sample := range s.Samples {
		values[i] = sample.Value
	}
	return values
}

// Start returns the earliest date in the series.
// It assumes the series is non-empty, which the normalizer guarantees.
func (s *Series) Start() time.Time {
	return s.Samples[0].Date
}

// End returns the latest date in the series.
func (s *Series) End() time.Time {
	return s.Samples[len(s.Samples)-1].Date
}

// DateRange bounds the observation window of an assessment.
// Dates are serialized as ISO-8601 YYYY-MM-DD strings.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ChangeAssessment is the output record of one evaluation. Ownership
// transfers entirely to the caller; the evaluator retains no state.
type ChangeAssessment struct {
	AOI               string        `json:"aoi,omitempty"`
	Mean              float64       `json:"mean"`
	ChangeDetected    bool          `json:"change_detected"`
	Confidence        float64       `json:"confidence"`
	SampleCount       int           `json:"sample_count"`
	FirstSegmentMean  float64       `json:"first_segment_mean"`
	SecondSegmentMean float64       `json:"second_segment_mean"`
	RawDelta          float64       `json:"raw_delta"`
	DateRange         DateRange     `json:"date_range"`
	Statistic         StatisticMode `json:"statistic"`
	DedupePolicy      DedupePolicy  `json:"dedupe_policy"`
	ExcludedSamples   int           `json:"excluded_samples"`
	DuplicatesMerged  int           `json:"duplicates_merged"`
	Label             string        `json:"label"`
}

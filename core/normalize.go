package core

import (
	"math"
	"sort"
	"time"

	"github.com/huangsam/vegwatch/schema"
)

// Normalize validates raw samples into a clean chronological series.
//
// Every date must parse as ISO-8601 YYYY-MM-DD; the first failure aborts with
// an InvalidDateError. Samples with nil, NaN or infinite values are excluded
// from statistics but counted in the series diagnostics. Samples sharing a
// date are folded into their arithmetic mean (AveragePolicy), so the output
// is strictly increasing by date. An empty result yields ErrEmptySeries.
func Normalize(raw []schema.RawSample) (*schema.Series, error) {
	excluded := 0
	grouped := make(map[time.Time][]float64)

	for _, sample := range raw {
		date, err := time.Parse(schema.DateFormat, sample.Date)
		if err != nil {
			return nil, &InvalidDateError{Input: sample.Date, Err: err}
		}
		if sample.Value == nil || math.IsNaN(*sample.Value) || math.IsInf(*sample.Value, 0) {
			excluded++
			continue
		}
		grouped[date] = append(grouped[date], *sample.Value)
	}

	if len(grouped) == 0 {
		return nil, ErrEmptySeries
	}

	duplicates := 0
	samples := make([]schema.Sample, 0, len(grouped))
	for date, values := range grouped {
		duplicates += len(values) - 1
		samples = append(samples, schema.Sample{Date: date, Value: averageSorted(values)})
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Date.Before(samples[j].Date)
	})

	return &schema.Series{
		Samples:          samples,
		Excluded:         excluded,
		DuplicatesMerged: duplicates,
	}, nil
}

// averageSorted sums values in ascending numeric order so the result does not
// depend on the input ordering of duplicate-date samples.
func averageSorted(values []float64) float64 {
	if len(values) == 1 {
		return values[0]
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	return sum / float64(len(sorted))
}

package core

import (
	"math"
	"sort"

	"github.com/huangsam/vegwatch/schema"
)

// trendStatistic applies the Mann-Kendall trend test over the full series.
// It detects monotonic drift rather than a step between halves, which suits
// gradual processes like canopy loss or regrowth.
type trendStatistic struct{}

func (s *trendStatistic) Name() schema.StatisticMode {
	return schema.TrendStat
}

// Compute concatenates the segments back into chronological order and runs
// the test on the whole series. Change is flagged when the two-sided p-value
// falls below alpha; confidence is 1-p clamped to [0,1]. Fewer than three
// samples yield a degenerate no-change outcome.
func (s *trendStatistic) Compute(first, second []float64, opts Options) Outcome {
	firstMean := mean(first)
	secondMean := mean(second)

	out := Outcome{
		FirstSegmentMean:  firstMean,
		SecondSegmentMean: secondMean,
		RawDelta:          abs(firstMean - secondMean),
	}

	values := make([]float64, 0, len(first)+len(second))
	values = append(values, first...)
	values = append(values, second...)
	if len(values) < 3 {
		return out
	}

	sStat := kendallS(values)
	varS := kendallVariance(values)
	if varS <= 0 {
		return out
	}

	// Continuity correction on the normal approximation of S.
	var z float64
	switch {
	case sStat > 0:
		z = (float64(sStat) - 1) / math.Sqrt(varS)
	case sStat < 0:
		z = (float64(sStat) + 1) / math.Sqrt(varS)
	}

	p := math.Erfc(math.Abs(z) / math.Sqrt2)
	out.ChangeDetected = p < opts.Alpha
	out.Confidence = clamp01(1 - p)
	return out
}

// kendallS computes the Mann-Kendall S statistic: the number of concordant
// minus discordant pairs in chronological order.
func kendallS(values []float64) int {
	s := 0
	for i := 0; i < len(values)-1; i++ {
		for j := i + 1; j < len(values); j++ {
			switch {
			case values[j] > values[i]:
				s++
			case values[j] < values[i]:
				s--
			}
		}
	}
	return s
}

// kendallVariance computes Var(S) with the standard tie correction.
func kendallVariance(values []float64) float64 {
	n := float64(len(values))
	varS := n * (n - 1) * (2*n + 5) / 18

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	i := 0
	for i < len(sorted) {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if t := float64(j - i); t > 1 {
			varS -= t * (t - 1) * (2*t + 5) / 18
		}
		i = j
	}
	return varS
}

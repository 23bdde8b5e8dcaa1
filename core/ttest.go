package core

import (
	"math"

	"github.com/huangsam/vegwatch/schema"
)

// tTestStatistic applies Welch's two-sample t-test between the segments.
// Unlike the split-mean heuristic it accounts for within-segment variability,
// so a modest shift in a noisy series is not flagged as change.
type tTestStatistic struct{}

func (s *tTestStatistic) Name() schema.StatisticMode {
	return schema.TTestStat
}

// Compute flags a change when the two-sided p-value falls below alpha.
// Confidence is 1-p clamped to [0,1]. Segments with fewer than two samples
// have undefined variance and yield a degenerate no-change outcome.
func (s *tTestStatistic) Compute(first, second []float64, opts Options) Outcome {
	firstMean := mean(first)
	secondMean := mean(second)
	delta := abs(firstMean - secondMean)

	out := Outcome{
		FirstSegmentMean:  firstMean,
		SecondSegmentMean: secondMean,
		RawDelta:          delta,
	}

	n1 := float64(len(first))
	n2 := float64(len(second))
	if len(first) < 2 || len(second) < 2 {
		return out
	}

	v1 := variance(first, firstMean)
	v2 := variance(second, secondMean)
	se2 := v1/n1 + v2/n2

	if se2 == 0 {
		// Both segments are constant. Any nonzero shift is unambiguous.
		if delta > 0 {
			out.ChangeDetected = true
			out.Confidence = 1.0
		}
		return out
	}

	t := (firstMean - secondMean) / math.Sqrt(se2)

	// Welch-Satterthwaite degrees of freedom.
	num := se2 * se2
	den := (v1/n1)*(v1/n1)/(n1-1) + (v2/n2)*(v2/n2)/(n2-1)
	df := num / den

	p := studentTwoSidedP(math.Abs(t), df)
	out.ChangeDetected = p < opts.Alpha
	out.Confidence = clamp01(1 - p)
	return out
}

// studentTwoSidedP returns the two-sided p-value for |t| under a Student's t
// distribution with df degrees of freedom, via the regularized incomplete
// beta function: P(|T| >= t) = I_{df/(df+t^2)}(df/2, 1/2).
func studentTwoSidedP(t, df float64) float64 {
	if math.IsNaN(t) || math.IsNaN(df) || df <= 0 {
		return 1
	}
	x := df / (df + t*t)
	return regIncompleteBeta(df/2, 0.5, x)
}

// regIncompleteBeta computes the regularized incomplete beta function
// I_x(a, b) using the continued-fraction expansion.
func regIncompleteBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	lgA, _ := math.Lgamma(a)
	lgB, _ := math.Lgamma(b)
	lgAB, _ := math.Lgamma(a + b)
	front := math.Exp(lgAB - lgA - lgB + a*math.Log(x) + b*math.Log(1-x))

	if x < (a+1)/(a+b+2) {
		return front * betaContinuedFraction(a, b, x) / a
	}
	return 1 - front*betaContinuedFraction(b, a, 1-x)/b
}

// betaContinuedFraction evaluates the continued fraction for the incomplete
// beta function by the modified Lentz method.
func betaContinuedFraction(a, b, x float64) float64 {
	const (
		maxIterations = 200
		epsilon       = 3e-14
		tiny          = 1e-30
	)

	qab := a + b
	qap := a + 1
	qam := a - 1
	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < tiny {
		d = tiny
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIterations; m++ {
		fm := float64(m)
		m2 := 2 * fm

		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		h *= d * c

		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		del := d * c
		h *= del

		if math.Abs(del-1) < epsilon {
			break
		}
	}
	return h
}

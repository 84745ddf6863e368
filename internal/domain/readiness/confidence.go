package readiness

import "math"

// DefaultZ is the normal quantile for a 95% confidence interval.
const DefaultZ = 1.96

// Interval is a closed confidence interval for an accuracy proportion.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Width returns the interval width.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// WilsonInterval computes the Wilson score interval for an observed
// accuracy over n attempts. Unlike the naive normal approximation it stays
// honest at small n: with no data at all it returns [0, 1], maximal
// uncertainty, and its width shrinks monotonically as n grows. Bounds are
// clamped into [0, 1].
func WilsonInterval(accuracy float64, n int, z float64) Interval {
	if n == 0 {
		return Interval{Lower: 0, Upper: 1}
	}

	nf := float64(n)
	z2 := z * z
	denom := 1 + z2/nf
	center := (accuracy + z2/(2*nf)) / denom
	margin := z * math.Sqrt(accuracy*(1-accuracy)/nf+z2/(4*nf*nf)) / denom

	return Interval{
		Lower: math.Max(0, center-margin),
		Upper: math.Min(1, center+margin),
	}
}

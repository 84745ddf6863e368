package readiness

import "math"

// PassProbability maps a readiness score to a pass probability with a
// logistic curve: 1 / (1 + e^(-k·(score-r0))). The curve is strictly
// increasing, equals 0.5 exactly at score r0, and approaches but never
// reaches 0 and 1 for finite scores.
func PassProbability(score float64, p PassProbabilityParams) float64 {
	prob := 1 / (1 + math.Exp(-p.K*(score-p.R0)))
	// Extreme scores saturate float64 to exactly 0 or 1; clamp to keep
	// the promised open interval.
	if prob <= 0 {
		return math.SmallestNonzeroFloat64
	}
	if prob >= 1 {
		return math.Nextafter(1, 0)
	}
	return prob
}

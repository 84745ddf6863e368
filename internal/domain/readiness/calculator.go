package readiness

import "math"

// Blend boundaries for EstimatedAccuracy: below minRecentAttempts the
// recent window is ignored, from fullRecentAttempts on it stands alone,
// and in between the two estimates are mixed linearly. The linear ramp
// avoids a discontinuity at either boundary.
const (
	minRecentAttempts  = 5
	fullRecentAttempts = 20
)

// RecencyPenalty converts days since the last study session into a score
// deduction, growing linearly at DecayRate per day until it saturates at
// MaxPenalty. A negative daysSinceStudy yields a negative penalty, i.e. a
// score bonus; callers own clamping if their clock can run backwards.
func RecencyPenalty(daysSinceStudy float64, p RecencyPenaltyParams) float64 {
	return math.Min(p.MaxPenalty, p.DecayRate*daysSinceStudy)
}

// ScoreInput bundles the learner-level signals feeding the headline score.
type ScoreInput struct {
	RecentAccuracy  float64
	OverallAccuracy float64
	Coverage        float64
	Mastery         float64
	TestsPassed     int
	TestsTaken      int
	DaysSinceStudy  float64
}

// Score computes the weighted composite readiness score. With weights
// summing to 100 the result sits on a 0-100 scale before the recency
// penalty; large penalties can push it below zero and that is deliberate,
// as it keeps "hasn't studied in months" visibly distinct from "just
// started".
func Score(in ScoreInput, cfg Config) float64 {
	testRate := float64(in.TestsPassed) / math.Max(float64(in.TestsTaken), 1)

	w := cfg.Weights
	score := w.RecentAccuracy*in.RecentAccuracy +
		w.OverallAccuracy*in.OverallAccuracy +
		w.Coverage*in.Coverage +
		w.Mastery*in.Mastery +
		w.TestRate*testRate

	return score - RecencyPenalty(in.DaysSinceStudy, cfg.RecencyPenalty)
}

// EstimatedAccuracy blends the recent-window accuracy with the lifetime
// accuracy according to how many recent attempts exist. With fewer than
// minRecentAttempts the recent figure is pure noise and the lifetime one
// is returned; from fullRecentAttempts on the recent figure is trusted
// outright.
func EstimatedAccuracy(recentAcc, overallAcc float64, recentCount int) float64 {
	switch {
	case recentCount >= fullRecentAttempts:
		return recentAcc
	case recentCount < minRecentAttempts:
		return overallAcc
	}
	alpha := float64(recentCount) / fullRecentAttempts
	return alpha*recentAcc + (1-alpha)*overallAcc
}

// AccuracyTrend is the signed change between the current recent accuracy
// and a previous snapshot's figure. Positive means improving.
func AccuracyTrend(recentAcc, previousAcc float64) float64 {
	return recentAcc - previousAcc
}

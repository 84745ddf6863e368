package readiness

// BetaModifier selects the risk multiplier for a topic from its coverage.
// The low band is half-open: a coverage exactly at HighThreshold already
// counts as well covered.
func BetaModifier(coverage float64, p CoverageBetaParams) float64 {
	switch {
	case coverage < p.LowThreshold:
		return p.Low
	case coverage < p.HighThreshold:
		return p.Mid
	}
	return p.High
}

// ExpectedScore is the number of exam questions the learner is expected to
// answer correctly in a topic, given its exam weight and estimated accuracy.
func ExpectedScore(weight float64, acc float64) float64 {
	return weight * acc
}

// ExpectedQuestionsLost is the complement: exam questions expected to be
// missed in the topic.
func ExpectedQuestionsLost(weight float64, acc float64) float64 {
	return weight * (1 - acc)
}

// RiskScore is the expected questions lost amplified or dampened by the
// coverage band. It is zero iff accuracy is perfect and peaks at
// weight × beta when accuracy is zero.
func RiskScore(weight, acc, coverage float64, p CoverageBetaParams) float64 {
	return weight * (1 - acc) * BetaModifier(coverage, p)
}

// PriorityScore discounts raw risk by demonstrated mastery, so topics the
// learner has already proven out fall to the bottom of the practice queue
// even when their raw risk is nonzero.
func PriorityScore(risk, mastery float64) float64 {
	return risk * (1 - mastery)
}

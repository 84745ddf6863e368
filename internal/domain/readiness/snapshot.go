package readiness

import "time"

// AttemptAggregate is the per-subelement input produced by the attempt
// store. Accuracy pointers are nil when the learner has no attempts in the
// corresponding window; the model treats nil as zero signal rather than
// zero accuracy.
type AttemptAggregate struct {
	RecentAccuracy      *float64 `json:"recent_accuracy"`
	OverallAccuracy     *float64 `json:"overall_accuracy"`
	Coverage            float64  `json:"coverage"`
	Mastery             float64  `json:"mastery"`
	AttemptsCount       int      `json:"attempts_count"`
	RecentAttemptsCount int      `json:"recent_attempts_count"`
}

// LearnerStats are the learner-level (cross-topic) inputs computed by the
// attempt store: blended-window accuracies, aggregate coverage and mastery,
// mock-exam results, and study recency.
type LearnerStats struct {
	RecentAccuracy      *float64 `json:"recent_accuracy"`
	OverallAccuracy     *float64 `json:"overall_accuracy"`
	Coverage            float64  `json:"coverage"`
	Mastery             float64  `json:"mastery"`
	TestsPassed         int      `json:"tests_passed"`
	TestsTaken          int      `json:"tests_taken"`
	DaysSinceStudy      float64  `json:"days_since_study"`
	TotalAttempts       int      `json:"total_attempts"`
	UniqueQuestionsSeen int      `json:"unique_questions_seen"`
	RecentAttemptsCount int      `json:"recent_attempts_count"`
}

// SubelementMetric is the computed per-topic result.
type SubelementMetric struct {
	Accuracy              float64  `json:"accuracy"`
	RecentAccuracy        float64  `json:"recent_accuracy"`
	Coverage              float64  `json:"coverage"`
	Mastery               float64  `json:"mastery"`
	RiskScore             float64  `json:"risk_score"`
	ExpectedScore         float64  `json:"expected_score"`
	ExpectedQuestionsLost float64  `json:"expected_questions_lost"`
	PriorityScore         float64  `json:"priority_score"`
	Confidence            Interval `json:"confidence"`
	Weight                int      `json:"weight"`
	PoolSize              int      `json:"pool_size"`
	AttemptsCount         int      `json:"attempts_count"`
	RecentAttemptsCount   int      `json:"recent_attempts_count"`
}

// Snapshot is the complete readiness picture at one instant. It is created
// fresh on every computation and never mutated; a later computation
// supersedes it rather than updating it in place.
type Snapshot struct {
	ReadinessScore      float64                     `json:"readiness_score"`
	PassProbability     float64                     `json:"pass_probability"`
	ExpectedExamScore   float64                     `json:"expected_exam_score"`
	Subelements         map[string]SubelementMetric `json:"subelements"`
	TotalAttempts       int                         `json:"total_attempts"`
	UniqueQuestionsSeen int                         `json:"unique_questions_seen"`
	ConfigVersion       string                      `json:"config_version"`
	CalculatedAt        time.Time                   `json:"calculated_at"`
}

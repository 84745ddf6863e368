package readiness

import (
	"time"

	"github.com/hamready/backend/internal/domain/exam"
)

// Compute is the single entry point of the scoring model. It maps every
// subelement of the exam structure to a SubelementMetric, reduces the
// per-topic expected scores into an expected exam score, and derives the
// headline readiness score and pass probability from the learner-level
// stats. It performs no I/O and keeps no state: identical inputs produce
// an identical Snapshot, so callers may recompute freely.
//
// A subelement missing from aggregates is treated as never attempted.
// Out-of-range inputs are rejected with an InputError; cfg is assumed to
// have been validated at load time.
func Compute(aggregates map[string]AttemptAggregate, structure exam.Structure, learner LearnerStats, cfg Config, now time.Time) (*Snapshot, error) {
	if err := validateLearner(learner); err != nil {
		return nil, err
	}

	metrics := make(map[string]SubelementMetric, len(structure.Subelements))
	expectedExamScore := 0.0

	for _, sub := range structure.Subelements {
		if sub.ExamQuestions <= 0 {
			return nil, &InputError{Subelement: sub.Code, Field: "exam_questions", Value: float64(sub.ExamQuestions)}
		}
		if sub.PoolQuestions <= 0 {
			return nil, &InputError{Subelement: sub.Code, Field: "pool_questions", Value: float64(sub.PoolQuestions)}
		}

		agg := aggregates[sub.Code] // zero value = unseen topic
		if err := validateAggregate(sub.Code, agg); err != nil {
			return nil, err
		}

		acc := EstimatedAccuracy(deref(agg.RecentAccuracy), deref(agg.OverallAccuracy), agg.RecentAttemptsCount)
		weight := float64(sub.ExamQuestions)
		risk := RiskScore(weight, acc, agg.Coverage, cfg.CoverageBeta)
		expected := ExpectedScore(weight, acc)

		metrics[sub.Code] = SubelementMetric{
			Accuracy:              acc,
			RecentAccuracy:        deref(agg.RecentAccuracy),
			Coverage:              agg.Coverage,
			Mastery:               agg.Mastery,
			RiskScore:             risk,
			ExpectedScore:         expected,
			ExpectedQuestionsLost: ExpectedQuestionsLost(weight, acc),
			PriorityScore:         PriorityScore(risk, agg.Mastery),
			Confidence:            WilsonInterval(acc, agg.AttemptsCount, DefaultZ),
			Weight:                sub.ExamQuestions,
			PoolSize:              sub.PoolQuestions,
			AttemptsCount:         agg.AttemptsCount,
			RecentAttemptsCount:   agg.RecentAttemptsCount,
		}

		expectedExamScore += expected
	}

	blended := EstimatedAccuracy(deref(learner.RecentAccuracy), deref(learner.OverallAccuracy), learner.RecentAttemptsCount)
	score := Score(ScoreInput{
		RecentAccuracy:  blended,
		OverallAccuracy: deref(learner.OverallAccuracy),
		Coverage:        learner.Coverage,
		Mastery:         learner.Mastery,
		TestsPassed:     learner.TestsPassed,
		TestsTaken:      learner.TestsTaken,
		DaysSinceStudy:  learner.DaysSinceStudy,
	}, cfg)

	return &Snapshot{
		ReadinessScore:      score,
		PassProbability:     PassProbability(score, cfg.PassProbability),
		ExpectedExamScore:   expectedExamScore,
		Subelements:         metrics,
		TotalAttempts:       learner.TotalAttempts,
		UniqueQuestionsSeen: learner.UniqueQuestionsSeen,
		ConfigVersion:       cfg.Version,
		CalculatedAt:        now.UTC(),
	}, nil
}

func validateAggregate(code string, agg AttemptAggregate) error {
	if err := checkUnit(code, "recent_accuracy", agg.RecentAccuracy); err != nil {
		return err
	}
	if err := checkUnit(code, "overall_accuracy", agg.OverallAccuracy); err != nil {
		return err
	}
	if agg.Coverage < 0 || agg.Coverage > 1 {
		return &InputError{Subelement: code, Field: "coverage", Value: agg.Coverage}
	}
	if agg.Mastery < 0 || agg.Mastery > 1 {
		return &InputError{Subelement: code, Field: "mastery", Value: agg.Mastery}
	}
	if agg.AttemptsCount < 0 {
		return &InputError{Subelement: code, Field: "attempts_count", Value: float64(agg.AttemptsCount)}
	}
	if agg.RecentAttemptsCount < 0 {
		return &InputError{Subelement: code, Field: "recent_attempts_count", Value: float64(agg.RecentAttemptsCount)}
	}
	return nil
}

func validateLearner(st LearnerStats) error {
	if err := checkUnit("", "recent_accuracy", st.RecentAccuracy); err != nil {
		return err
	}
	if err := checkUnit("", "overall_accuracy", st.OverallAccuracy); err != nil {
		return err
	}
	if st.Coverage < 0 || st.Coverage > 1 {
		return &InputError{Field: "coverage", Value: st.Coverage}
	}
	if st.Mastery < 0 || st.Mastery > 1 {
		return &InputError{Field: "mastery", Value: st.Mastery}
	}
	if st.TestsPassed < 0 {
		return &InputError{Field: "tests_passed", Value: float64(st.TestsPassed)}
	}
	if st.TestsTaken < 0 {
		return &InputError{Field: "tests_taken", Value: float64(st.TestsTaken)}
	}
	if st.TestsPassed > st.TestsTaken {
		return &InputError{Field: "tests_passed", Value: float64(st.TestsPassed)}
	}
	if st.TotalAttempts < 0 {
		return &InputError{Field: "total_attempts", Value: float64(st.TotalAttempts)}
	}
	if st.UniqueQuestionsSeen < 0 {
		return &InputError{Field: "unique_questions_seen", Value: float64(st.UniqueQuestionsSeen)}
	}
	if st.RecentAttemptsCount < 0 {
		return &InputError{Field: "recent_attempts_count", Value: float64(st.RecentAttemptsCount)}
	}
	return nil
}

func checkUnit(code, field string, v *float64) error {
	if v != nil && (*v < 0 || *v > 1) {
		return &InputError{Subelement: code, Field: field, Value: *v}
	}
	return nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

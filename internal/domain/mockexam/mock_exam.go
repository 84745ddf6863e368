package mockexam

import (
	"errors"
	"fmt"
	"time"

	"github.com/hamready/backend/internal/domain/exam"
	"github.com/hamready/backend/internal/id"
)

var ErrAlreadyCompleted = errors.New("mock exam already completed")

// MockExam is a full-length practice run of the real exam form. Completing
// one feeds the tests-taken / tests-passed signal of the readiness score.
type MockExam struct {
	ID             string
	LearnerID      string
	Class          exam.LicenseClass
	TotalQuestions int
	PassingScore   int
	StartedAt      time.Time
	Score          *int // correct answers, nil until completed
	Passed         *bool
	CompletedAt    *time.Time
}

// New starts a mock exam sized to the official form of the license class.
func New(learnerID string, structure exam.Structure, now time.Time) *MockExam {
	return &MockExam{
		ID:             id.New(),
		LearnerID:      learnerID,
		Class:          structure.Class,
		TotalQuestions: structure.TotalQuestions,
		PassingScore:   structure.PassingScore,
		StartedAt:      now.UTC(),
	}
}

// Complete records the result. Pass/fail follows the official threshold:
// the exam is passed when the correct count reaches PassingScore.
func (m *MockExam) Complete(correct int, now time.Time) error {
	if m.Completed() {
		return ErrAlreadyCompleted
	}
	if correct < 0 || correct > m.TotalQuestions {
		return fmt.Errorf("correct count %d out of range [0, %d]", correct, m.TotalQuestions)
	}

	passed := correct >= m.PassingScore
	completedAt := now.UTC()

	m.Score = &correct
	m.Passed = &passed
	m.CompletedAt = &completedAt
	return nil
}

// Completed reports whether a result has been recorded.
func (m *MockExam) Completed() bool {
	return m.CompletedAt != nil
}

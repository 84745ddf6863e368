package mockexam_test

import (
	"errors"
	"testing"
	"time"

	"github.com/hamready/backend/internal/domain/exam"
	"github.com/hamready/backend/internal/domain/mockexam"
)

func TestNewMockExam(t *testing.T) {
	structure, err := exam.StructureFor(exam.ClassTechnician)
	if err != nil {
		t.Fatal(err)
	}

	m := mockexam.New("learner-1", structure, time.Now())

	if m.ID == "" {
		t.Error("expected a generated ID")
	}
	if m.TotalQuestions != 35 || m.PassingScore != 26 {
		t.Errorf("expected 35 questions / 26 to pass, got %d / %d", m.TotalQuestions, m.PassingScore)
	}
	if m.Completed() {
		t.Error("new mock exam must not be completed")
	}
}

func TestComplete_PassAndFail(t *testing.T) {
	structure, _ := exam.StructureFor(exam.ClassTechnician)

	pass := mockexam.New("learner-1", structure, time.Now())
	if err := pass.Complete(26, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pass.Passed == nil || !*pass.Passed {
		t.Error("26 correct out of 35 must pass")
	}

	fail := mockexam.New("learner-1", structure, time.Now())
	if err := fail.Complete(25, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fail.Passed == nil || *fail.Passed {
		t.Error("25 correct out of 35 must fail")
	}
}

func TestComplete_RejectsOutOfRangeScore(t *testing.T) {
	structure, _ := exam.StructureFor(exam.ClassTechnician)
	m := mockexam.New("learner-1", structure, time.Now())

	if err := m.Complete(36, time.Now()); err == nil {
		t.Error("expected error for score above question count")
	}
	if err := m.Complete(-1, time.Now()); err == nil {
		t.Error("expected error for negative score")
	}
	if m.Completed() {
		t.Error("failed completion must not mark the exam completed")
	}
}

func TestComplete_Twice(t *testing.T) {
	structure, _ := exam.StructureFor(exam.ClassTechnician)
	m := mockexam.New("learner-1", structure, time.Now())

	if err := m.Complete(30, time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := m.Complete(10, time.Now()); !errors.Is(err, mockexam.ErrAlreadyCompleted) {
		t.Errorf("expected ErrAlreadyCompleted, got %v", err)
	}
	if *m.Score != 30 {
		t.Errorf("second completion must not overwrite the score, got %d", *m.Score)
	}
}

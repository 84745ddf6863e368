package store_test

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/hamready/backend/internal/domain/exam"
	"github.com/hamready/backend/internal/domain/learner"
	"github.com/hamready/backend/internal/domain/mockexam"
	"github.com/hamready/backend/internal/domain/readiness"
	"github.com/hamready/backend/internal/store"
)

const window = 30 * 24 * time.Hour

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestLearner(t *testing.T, s *store.SQLiteStore) *learner.Learner {
	t.Helper()

	l := learner.New(exam.ClassTechnician, nil, time.Now())
	if err := s.CreateLearner(context.Background(), l); err != nil {
		t.Fatalf("failed to create learner: %v", err)
	}
	return l
}

func recordAttempt(t *testing.T, s *store.SQLiteStore, learnerID, sub, question string, correct bool, at time.Time) {
	t.Helper()

	err := s.RecordAttempt(context.Background(), store.Attempt{
		LearnerID:  learnerID,
		Subelement: sub,
		QuestionID: question,
		Correct:    correct,
		AnsweredAt: at,
	})
	if err != nil {
		t.Fatalf("failed to record attempt: %v", err)
	}
}

func TestLearnerRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	callsign := "KJ7ABC"
	l := learner.New(exam.ClassGeneral, &callsign, time.Now())
	if err := s.CreateLearner(ctx, l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.GetLearner(ctx, l.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Class != exam.ClassGeneral {
		t.Errorf("expected class general, got %s", got.Class)
	}
	if got.Callsign == nil || *got.Callsign != "KJ7ABC" {
		t.Errorf("callsign not preserved: %v", got.Callsign)
	}

	if _, err := s.GetLearner(ctx, "missing"); err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSubelementAggregates(t *testing.T) {
	s := newTestStore(t)
	l := newTestLearner(t, s)
	now := time.Now()

	// T1: three distinct questions; one answered correctly twice
	// (mastered), one missed, one answered correctly once.
	old := now.Add(-60 * 24 * time.Hour)
	recordAttempt(t, s, l.ID, "T1", "T1A01", true, old)
	recordAttempt(t, s, l.ID, "T1", "T1A01", true, now.Add(-time.Hour))
	recordAttempt(t, s, l.ID, "T1", "T1A02", false, now.Add(-time.Hour))
	recordAttempt(t, s, l.ID, "T1", "T1A03", true, now.Add(-2*time.Hour))

	structure, _ := exam.StructureFor(exam.ClassTechnician)
	aggs, err := s.SubelementAggregates(context.Background(), l.ID, structure, now, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	agg, ok := aggs["T1"]
	if !ok {
		t.Fatal("expected an aggregate for T1")
	}

	if agg.AttemptsCount != 4 {
		t.Errorf("expected 4 attempts, got %d", agg.AttemptsCount)
	}
	if agg.OverallAccuracy == nil || math.Abs(*agg.OverallAccuracy-0.75) > 1e-9 {
		t.Errorf("expected overall accuracy 0.75, got %v", agg.OverallAccuracy)
	}

	// Only the three attempts inside the window count as recent: 2/3.
	if agg.RecentAttemptsCount != 3 {
		t.Errorf("expected 3 recent attempts, got %d", agg.RecentAttemptsCount)
	}
	if agg.RecentAccuracy == nil || math.Abs(*agg.RecentAccuracy-2.0/3.0) > 1e-9 {
		t.Errorf("expected recent accuracy 2/3, got %v", agg.RecentAccuracy)
	}

	// 3 distinct questions out of the T1 pool of 61.
	if math.Abs(agg.Coverage-3.0/61.0) > 1e-9 {
		t.Errorf("expected coverage 3/61, got %v", agg.Coverage)
	}

	// Only T1A01 reached two correct answers: 1 of 3 seen.
	if math.Abs(agg.Mastery-1.0/3.0) > 1e-9 {
		t.Errorf("expected mastery 1/3, got %v", agg.Mastery)
	}

	// Untouched subelements are absent, not zero-filled.
	if _, ok := aggs["T2"]; ok {
		t.Error("did not expect an aggregate for untouched T2")
	}
}

func TestLearnerStats(t *testing.T) {
	s := newTestStore(t)
	l := newTestLearner(t, s)
	ctx := context.Background()
	now := time.Now()

	recordAttempt(t, s, l.ID, "T1", "T1A01", true, now.Add(-3*24*time.Hour))
	recordAttempt(t, s, l.ID, "T1", "T1A01", true, now.Add(-2*24*time.Hour))
	recordAttempt(t, s, l.ID, "T2", "T2A01", false, now.Add(-2*24*time.Hour))

	// One passed and one failed mock exam; an open one must not count.
	structure, _ := exam.StructureFor(exam.ClassTechnician)
	passed := mockexam.New(l.ID, structure, now)
	passed.Complete(30, now)
	failed := mockexam.New(l.ID, structure, now)
	failed.Complete(10, now)
	open := mockexam.New(l.ID, structure, now)

	for _, m := range []*mockexam.MockExam{passed, failed, open} {
		if err := s.SaveMockExam(ctx, m); err != nil {
			t.Fatal(err)
		}
	}
	for _, m := range []*mockexam.MockExam{passed, failed} {
		if err := s.UpdateMockExam(ctx, m); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := s.LearnerStats(ctx, l.ID, structure, now, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalAttempts != 3 || stats.UniqueQuestionsSeen != 2 {
		t.Errorf("expected 3 attempts over 2 questions, got %d over %d", stats.TotalAttempts, stats.UniqueQuestionsSeen)
	}
	if stats.OverallAccuracy == nil || math.Abs(*stats.OverallAccuracy-2.0/3.0) > 1e-9 {
		t.Errorf("expected overall accuracy 2/3, got %v", stats.OverallAccuracy)
	}
	if stats.TestsTaken != 2 || stats.TestsPassed != 1 {
		t.Errorf("expected 2 taken / 1 passed, got %d / %d", stats.TestsTaken, stats.TestsPassed)
	}
	if math.Abs(stats.Coverage-2.0/float64(structure.PoolSize())) > 1e-9 {
		t.Errorf("unexpected aggregate coverage %v", stats.Coverage)
	}
	// T1A01 is mastered (two correct), so mastery is 1 of 2 seen.
	if math.Abs(stats.Mastery-0.5) > 1e-9 {
		t.Errorf("expected mastery 0.5, got %v", stats.Mastery)
	}
	// Last attempt was two days ago.
	if stats.DaysSinceStudy < 1.9 || stats.DaysSinceStudy > 2.1 {
		t.Errorf("expected roughly 2 days since study, got %v", stats.DaysSinceStudy)
	}
}

func TestLearnerStats_NoHistory(t *testing.T) {
	s := newTestStore(t)
	l := newTestLearner(t, s)

	structure, _ := exam.StructureFor(exam.ClassTechnician)
	stats, err := s.LearnerStats(context.Background(), l.ID, structure, time.Now(), window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.OverallAccuracy != nil || stats.RecentAccuracy != nil {
		t.Error("expected nil accuracies with no attempts")
	}
	if stats.DaysSinceStudy != 0 {
		t.Errorf("expected zero days since study with no attempts, got %v", stats.DaysSinceStudy)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestStore(t)
	l := newTestLearner(t, s)
	ctx := context.Background()

	if _, err := s.LatestSnapshot(ctx, l.ID); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound before first snapshot, got %v", err)
	}

	first := &readiness.Snapshot{
		ReadinessScore:  42.5,
		PassProbability: 0.2,
		ConfigVersion:   "v1",
		CalculatedAt:    time.Now().Add(-time.Hour).UTC().Truncate(time.Second),
		Subelements: map[string]readiness.SubelementMetric{
			"T1": {Accuracy: 0.75, RiskScore: 1.8, Weight: 6, PoolSize: 61},
		},
	}
	second := &readiness.Snapshot{
		ReadinessScore: 48.0,
		ConfigVersion:  "v1",
		CalculatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	if err := s.SaveSnapshot(ctx, l.ID, first); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSnapshot(ctx, l.ID, second); err != nil {
		t.Fatal(err)
	}

	got, err := s.LatestSnapshot(ctx, l.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ReadinessScore != 48.0 {
		t.Errorf("expected the later snapshot (score 48), got %v", got.ReadinessScore)
	}
}

func TestSnapshotOrdering_SubsecondTimestamps(t *testing.T) {
	s := newTestStore(t)
	l := newTestLearner(t, s)
	ctx := context.Background()

	// Two snapshots inside the same wall-clock second: the first on the
	// whole second, the second half a second later. A trimmed-zeros time
	// format would sort the whole-second one after the fractional one.
	base := time.Date(2026, 8, 30, 10, 0, 5, 0, time.UTC)
	older := &readiness.Snapshot{ReadinessScore: 40, ConfigVersion: "v1", CalculatedAt: base}
	newer := &readiness.Snapshot{ReadinessScore: 55, ConfigVersion: "v1", CalculatedAt: base.Add(500 * time.Millisecond)}

	if err := s.SaveSnapshot(ctx, l.ID, older); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSnapshot(ctx, l.ID, newer); err != nil {
		t.Fatal(err)
	}

	got, err := s.LatestSnapshot(ctx, l.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ReadinessScore != 55 {
		t.Errorf("expected the chronologically later snapshot (score 55), got %v", got.ReadinessScore)
	}
}

func TestRecentWindow_SubsecondCutoff(t *testing.T) {
	s := newTestStore(t)
	l := newTestLearner(t, s)
	now := time.Date(2026, 8, 30, 10, 0, 5, 500_000_000, time.UTC).Add(window)

	// The attempt sits on the whole second, half a second before the
	// window cutoff, so it must not count as recent.
	recordAttempt(t, s, l.ID, "T1", "T1A01", true, time.Date(2026, 8, 30, 10, 0, 5, 0, time.UTC))

	structure, _ := exam.StructureFor(exam.ClassTechnician)
	aggs, err := s.SubelementAggregates(context.Background(), l.ID, structure, now, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	agg := aggs["T1"]
	if agg.AttemptsCount != 1 {
		t.Fatalf("expected 1 lifetime attempt, got %d", agg.AttemptsCount)
	}
	if agg.RecentAttemptsCount != 0 {
		t.Errorf("attempt before the cutoff counted as recent (%d)", agg.RecentAttemptsCount)
	}
}

func TestMockExamRoundTrip(t *testing.T) {
	s := newTestStore(t)
	l := newTestLearner(t, s)
	ctx := context.Background()

	structure, _ := exam.StructureFor(exam.ClassTechnician)
	m := mockexam.New(l.ID, structure, time.Now())
	if err := s.SaveMockExam(ctx, m); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetMockExam(ctx, m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Completed() {
		t.Error("stored exam must still be open")
	}

	if err := m.Complete(28, time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateMockExam(ctx, m); err != nil {
		t.Fatal(err)
	}

	got, err = s.GetMockExam(ctx, m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Score == nil || *got.Score != 28 {
		t.Errorf("expected score 28, got %v", got.Score)
	}
	if got.Passed == nil || !*got.Passed {
		t.Error("expected a passed exam")
	}
}

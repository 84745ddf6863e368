package store

import (
	"context"
	"errors"
	"time"

	"github.com/hamready/backend/internal/domain/exam"
	"github.com/hamready/backend/internal/domain/learner"
	"github.com/hamready/backend/internal/domain/mockexam"
	"github.com/hamready/backend/internal/domain/readiness"
)

var (
	ErrNotFound = errors.New("not found")
)

// Attempt is a single answered question, the raw event everything else is
// aggregated from.
type Attempt struct {
	LearnerID  string
	Subelement string
	QuestionID string
	Correct    bool
	AnsweredAt time.Time
}

// Store is the persistence boundary: raw attempt events in, aggregated
// readiness inputs and persisted snapshots out.
type Store interface {
	CreateLearner(ctx context.Context, l *learner.Learner) error
	GetLearner(ctx context.Context, id string) (*learner.Learner, error)
	ListLearnerIDs(ctx context.Context) ([]string, error)

	RecordAttempt(ctx context.Context, a Attempt) error
	SubelementAggregates(ctx context.Context, learnerID string, structure exam.Structure, now time.Time, recentWindow time.Duration) (map[string]readiness.AttemptAggregate, error)
	LearnerStats(ctx context.Context, learnerID string, structure exam.Structure, now time.Time, recentWindow time.Duration) (readiness.LearnerStats, error)

	SaveMockExam(ctx context.Context, m *mockexam.MockExam) error
	GetMockExam(ctx context.Context, id string) (*mockexam.MockExam, error)
	UpdateMockExam(ctx context.Context, m *mockexam.MockExam) error

	SaveSnapshot(ctx context.Context, learnerID string, snap *readiness.Snapshot) error
	LatestSnapshot(ctx context.Context, learnerID string) (*readiness.Snapshot, error)

	Close() error
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hamready/backend/internal/domain/exam"
	"github.com/hamready/backend/internal/domain/readiness"
	"github.com/hamready/backend/internal/store"
	"github.com/hamready/backend/internal/worker"
)

// recentWindow bounds the "recent accuracy" aggregation. Attempts older
// than this only contribute to the lifetime figures.
const recentWindow = 30 * 24 * time.Hour

// recomputeWorkers bounds the fan-out of batch recomputes. Per-learner
// computations are independent, so they parallelize freely.
const recomputeWorkers = 4

// ReadinessService orchestrates the scoring model: it fetches the
// aggregated inputs, runs the pure computation, and persists the resulting
// snapshot. The model itself stays free of I/O.
type ReadinessService struct {
	store  store.Store
	cfg    readiness.Config
	logger *slog.Logger
}

// NewReadinessService creates a ReadinessService. The config must already
// be validated; pass it through readiness.LoadConfig or Validate first.
func NewReadinessService(s store.Store, cfg readiness.Config, logger *slog.Logger) *ReadinessService {
	return &ReadinessService{
		store:  s,
		cfg:    cfg,
		logger: logger,
	}
}

// Recompute builds a fresh snapshot for one learner and persists it.
// Nothing is persisted on failure, so the learner's last good snapshot
// stays in place.
func (rs *ReadinessService) Recompute(ctx context.Context, learnerID string) (*readiness.Snapshot, error) {
	l, err := rs.store.GetLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	structure, err := exam.StructureFor(l.Class)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	aggregates, err := rs.store.SubelementAggregates(ctx, learnerID, structure, now, recentWindow)
	if err != nil {
		return nil, err
	}
	stats, err := rs.store.LearnerStats(ctx, learnerID, structure, now, recentWindow)
	if err != nil {
		return nil, err
	}

	snap, err := readiness.Compute(aggregates, structure, stats, rs.cfg, now)
	if err != nil {
		rs.logger.Error("readiness computation rejected inputs",
			"learner_id", learnerID,
			"error", err,
		)
		return nil, err
	}

	if err := rs.store.SaveSnapshot(ctx, learnerID, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Latest returns the learner's stored snapshot, computing the first one on
// demand.
func (rs *ReadinessService) Latest(ctx context.Context, learnerID string) (*readiness.Snapshot, error) {
	snap, err := rs.store.LatestSnapshot(ctx, learnerID)
	if errors.Is(err, store.ErrNotFound) {
		return rs.Recompute(ctx, learnerID)
	}
	return snap, err
}

// RecomputeAsync refreshes a learner's snapshot in the background, for
// callers on a request path that must not wait (e.g. attempt recording).
// Failures are logged; the previous snapshot remains authoritative.
func (rs *ReadinessService) RecomputeAsync(learnerID string) {
	go func() {
		// Deliberately detached from the request context: the recompute
		// should finish even when the originating request has already
		// been answered.
		if _, err := rs.Recompute(context.Background(), learnerID); err != nil {
			rs.logger.Error("background recompute failed",
				"learner_id", learnerID,
				"error", err,
			)
		}
	}()
}

// RecomputeAll refreshes every learner's snapshot, fanning the independent
// per-learner computations out over a worker pool. It returns the number
// of failures after all learners have been processed.
func (rs *ReadinessService) RecomputeAll(ctx context.Context) (int, error) {
	ids, err := rs.store.ListLearnerIDs(ctx)
	if err != nil {
		return 0, err
	}

	pool := worker.New[error](recomputeWorkers, len(ids)+1)
	for _, learnerID := range ids {
		learnerID := learnerID
		pool.Submit(learnerID, func() error {
			_, err := rs.Recompute(ctx, learnerID)
			return err
		})
	}
	pool.Close()

	failures := 0
	for result := range pool.Results() {
		if result.Output != nil {
			failures++
			rs.logger.Error("recompute failed",
				"learner_id", result.JobID,
				"error", result.Output,
			)
		}
	}

	rs.logger.Info("batch recompute finished",
		"learners", len(ids),
		"failures", failures,
	)
	return failures, nil
}

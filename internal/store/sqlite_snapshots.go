package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/hamready/backend/internal/domain/readiness"
)

// SaveSnapshot appends a computed snapshot. Snapshots are never updated in
// place: each computation supersedes the previous one, and keeping the
// history allows trend queries over past scores.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, learnerID string, snap *readiness.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO snapshots (learner_id, payload, config_version, calculated_at) VALUES (?, ?, ?, ?)",
		learnerID, string(payload), snap.ConfigVersion, formatTime(snap.CalculatedAt),
	)
	return err
}

// LatestSnapshot returns the most recent snapshot for a learner, the
// "last good" value callers fall back to when a recompute fails.
func (s *SQLiteStore) LatestSnapshot(ctx context.Context, learnerID string) (*readiness.Snapshot, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE learner_id = ?
		 ORDER BY calculated_at DESC, id DESC LIMIT 1`, learnerID,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var snap readiness.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

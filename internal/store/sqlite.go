package store

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hamready/backend/internal/domain/exam"
	"github.com/hamready/backend/internal/domain/learner"
	"github.com/hamready/backend/internal/domain/mockexam"
)

const schema = `
CREATE TABLE IF NOT EXISTS learners (
    id TEXT PRIMARY KEY,
    callsign TEXT,
    license_class TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS attempts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    learner_id TEXT NOT NULL,
    subelement TEXT NOT NULL,
    question_id TEXT NOT NULL,
    correct INTEGER NOT NULL,
    answered_at TEXT NOT NULL,
    FOREIGN KEY (learner_id) REFERENCES learners(id)
);

CREATE INDEX IF NOT EXISTS idx_attempts_learner ON attempts(learner_id, subelement);
CREATE INDEX IF NOT EXISTS idx_attempts_answered ON attempts(learner_id, answered_at);

CREATE TABLE IF NOT EXISTS mock_exams (
    id TEXT PRIMARY KEY,
    learner_id TEXT NOT NULL,
    license_class TEXT NOT NULL,
    total_questions INTEGER NOT NULL,
    passing_score INTEGER NOT NULL,
    score INTEGER,
    passed INTEGER,
    started_at TEXT NOT NULL,
    completed_at TEXT,
    FOREIGN KEY (learner_id) REFERENCES learners(id)
);

CREATE TABLE IF NOT EXISTS snapshots (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    learner_id TEXT NOT NULL,
    payload TEXT NOT NULL,
    config_version TEXT NOT NULL,
    calculated_at TEXT NOT NULL,
    FOREIGN KEY (learner_id) REFERENCES learners(id)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_learner ON snapshots(learner_id, calculated_at);
`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// SQLite allows only one writer at a time; a single pooled connection
	// serializes access so concurrent callers queue instead of failing
	// with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Timestamps are stored as fixed-width RFC3339 UTC strings (nanoseconds
// always printed in full, never trimmed) so lexicographic comparison in
// SQL matches chronological order. RFC3339Nano would not do: it trims
// trailing zeros, and a whole-second "…05Z" sorts after "…05.5Z".
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// ============================================================================
// Learners
// ============================================================================

func (s *SQLiteStore) CreateLearner(ctx context.Context, l *learner.Learner) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO learners (id, callsign, license_class, created_at) VALUES (?, ?, ?, ?)",
		l.ID, l.Callsign, string(l.Class), formatTime(l.CreatedAt),
	)
	return err
}

func (s *SQLiteStore) GetLearner(ctx context.Context, id string) (*learner.Learner, error) {
	var (
		l         learner.Learner
		class     string
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, callsign, license_class, created_at FROM learners WHERE id = ?", id,
	).Scan(&l.ID, &l.Callsign, &class, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	l.Class = exam.LicenseClass(class)
	if l.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *SQLiteStore) ListLearnerIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM learners")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ============================================================================
// Attempts
// ============================================================================

func (s *SQLiteStore) RecordAttempt(ctx context.Context, a Attempt) error {
	correct := 0
	if a.Correct {
		correct = 1
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO attempts (learner_id, subelement, question_id, correct, answered_at) VALUES (?, ?, ?, ?, ?)",
		a.LearnerID, a.Subelement, a.QuestionID, correct, formatTime(a.AnsweredAt),
	)
	return err
}

// ============================================================================
// Mock exams
// ============================================================================

func (s *SQLiteStore) SaveMockExam(ctx context.Context, m *mockexam.MockExam) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mock_exams (id, learner_id, license_class, total_questions, passing_score, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.LearnerID, string(m.Class), m.TotalQuestions, m.PassingScore, formatTime(m.StartedAt),
	)
	return err
}

func (s *SQLiteStore) GetMockExam(ctx context.Context, id string) (*mockexam.MockExam, error) {
	var (
		m           mockexam.MockExam
		class       string
		startedAt   string
		score       sql.NullInt64
		passed      sql.NullBool
		completedAt sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, learner_id, license_class, total_questions, passing_score, score, passed, started_at, completed_at
		 FROM mock_exams WHERE id = ?`, id,
	).Scan(&m.ID, &m.LearnerID, &class, &m.TotalQuestions, &m.PassingScore, &score, &passed, &startedAt, &completedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	m.Class = exam.LicenseClass(class)
	if m.StartedAt, err = parseTime(startedAt); err != nil {
		return nil, err
	}
	if score.Valid {
		v := int(score.Int64)
		m.Score = &v
	}
	if passed.Valid {
		v := passed.Bool
		m.Passed = &v
	}
	if completedAt.Valid {
		t, err := parseTime(completedAt.String)
		if err != nil {
			return nil, err
		}
		m.CompletedAt = &t
	}
	return &m, nil
}

func (s *SQLiteStore) UpdateMockExam(ctx context.Context, m *mockexam.MockExam) error {
	var completedAt *string
	if m.CompletedAt != nil {
		v := formatTime(*m.CompletedAt)
		completedAt = &v
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE mock_exams SET score = ?, passed = ?, completed_at = ? WHERE id = ?",
		m.Score, m.Passed, completedAt, m.ID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/hamready/backend/internal/domain/exam"
	"github.com/hamready/backend/internal/domain/readiness"
)

// A question counts as mastered once it has been answered correctly at
// least this many times.
const masteredThreshold = 2

type attemptCounts struct {
	attempts int
	correct  int
	distinct int
}

// SubelementAggregates rolls the raw attempt history up into the per-topic
// inputs of the readiness model. Subelements without attempts are simply
// absent from the returned map; the model treats them as unseen.
func (s *SQLiteStore) SubelementAggregates(ctx context.Context, learnerID string, structure exam.Structure, now time.Time, recentWindow time.Duration) (map[string]readiness.AttemptAggregate, error) {
	overall, err := s.countsBySubelement(ctx, learnerID, nil)
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(-recentWindow)
	recent, err := s.countsBySubelement(ctx, learnerID, &cutoff)
	if err != nil {
		return nil, err
	}

	mastered, err := s.masteredBySubelement(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	aggregates := make(map[string]readiness.AttemptAggregate, len(overall))
	for _, sub := range structure.Subelements {
		oc, ok := overall[sub.Code]
		if !ok {
			continue
		}

		agg := readiness.AttemptAggregate{
			AttemptsCount: oc.attempts,
		}
		if oc.attempts > 0 {
			acc := float64(oc.correct) / float64(oc.attempts)
			agg.OverallAccuracy = &acc
		}
		if rc, ok := recent[sub.Code]; ok && rc.attempts > 0 {
			acc := float64(rc.correct) / float64(rc.attempts)
			agg.RecentAccuracy = &acc
			agg.RecentAttemptsCount = rc.attempts
		}

		// Coverage is clamped: a stale pool table can leave more distinct
		// question ids in history than the current published pool holds.
		agg.Coverage = ratioCapped(oc.distinct, sub.PoolQuestions)
		if oc.distinct > 0 {
			agg.Mastery = ratioCapped(mastered[sub.Code], oc.distinct)
		}

		aggregates[sub.Code] = agg
	}
	return aggregates, nil
}

// LearnerStats rolls the whole history up into the learner-level inputs:
// cross-topic accuracies, aggregate coverage and mastery, mock-exam
// pass rate, and days since the last recorded attempt.
func (s *SQLiteStore) LearnerStats(ctx context.Context, learnerID string, structure exam.Structure, now time.Time, recentWindow time.Duration) (readiness.LearnerStats, error) {
	var stats readiness.LearnerStats

	var (
		attempts     int
		correct      sql.NullInt64
		distinctSeen int
		lastAnswered sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), SUM(correct), COUNT(DISTINCT question_id), MAX(answered_at)
		 FROM attempts WHERE learner_id = ?`, learnerID,
	).Scan(&attempts, &correct, &distinctSeen, &lastAnswered)
	if err != nil {
		return stats, err
	}

	stats.TotalAttempts = attempts
	stats.UniqueQuestionsSeen = distinctSeen
	if attempts > 0 {
		acc := float64(correct.Int64) / float64(attempts)
		stats.OverallAccuracy = &acc
	}

	cutoff := formatTime(now.Add(-recentWindow))
	var (
		recentAttempts int
		recentCorrect  sql.NullInt64
	)
	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), SUM(correct) FROM attempts WHERE learner_id = ? AND answered_at >= ?",
		learnerID, cutoff,
	).Scan(&recentAttempts, &recentCorrect)
	if err != nil {
		return stats, err
	}

	stats.RecentAttemptsCount = recentAttempts
	if recentAttempts > 0 {
		acc := float64(recentCorrect.Int64) / float64(recentAttempts)
		stats.RecentAccuracy = &acc
	}

	var masteredTotal int
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM (
		     SELECT question_id FROM attempts WHERE learner_id = ?
		     GROUP BY question_id HAVING SUM(correct) >= ?
		 )`, learnerID, masteredThreshold,
	).Scan(&masteredTotal)
	if err != nil {
		return stats, err
	}

	stats.Coverage = ratioCapped(distinctSeen, structure.PoolSize())
	if distinctSeen > 0 {
		stats.Mastery = ratioCapped(masteredTotal, distinctSeen)
	}

	var (
		testsTaken  int
		testsPassed sql.NullInt64
	)
	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), SUM(passed) FROM mock_exams WHERE learner_id = ? AND completed_at IS NOT NULL",
		learnerID,
	).Scan(&testsTaken, &testsPassed)
	if err != nil {
		return stats, err
	}

	stats.TestsTaken = testsTaken
	stats.TestsPassed = int(testsPassed.Int64)

	// A learner with no history gets zero days-since-study rather than an
	// enormous penalty on top of an already all-zero score.
	if lastAnswered.Valid {
		last, err := parseTime(lastAnswered.String)
		if err != nil {
			return stats, err
		}
		if days := now.Sub(last).Hours() / 24; days > 0 {
			stats.DaysSinceStudy = days
		}
	}

	return stats, nil
}

func (s *SQLiteStore) countsBySubelement(ctx context.Context, learnerID string, since *time.Time) (map[string]attemptCounts, error) {
	query := `SELECT subelement, COUNT(*), SUM(correct), COUNT(DISTINCT question_id)
	          FROM attempts WHERE learner_id = ?`
	args := []any{learnerID}
	if since != nil {
		query += " AND answered_at >= ?"
		args = append(args, formatTime(*since))
	}
	query += " GROUP BY subelement"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]attemptCounts)
	for rows.Next() {
		var (
			code string
			c    attemptCounts
		)
		if err := rows.Scan(&code, &c.attempts, &c.correct, &c.distinct); err != nil {
			return nil, err
		}
		counts[code] = c
	}
	return counts, rows.Err()
}

func (s *SQLiteStore) masteredBySubelement(ctx context.Context, learnerID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT subelement, COUNT(*) FROM (
		     SELECT subelement, question_id FROM attempts WHERE learner_id = ?
		     GROUP BY subelement, question_id HAVING SUM(correct) >= ?
		 ) GROUP BY subelement`, learnerID, masteredThreshold,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mastered := make(map[string]int)
	for rows.Next() {
		var (
			code  string
			count int
		)
		if err := rows.Scan(&code, &count); err != nil {
			return nil, err
		}
		mastered[code] = count
	}
	return mastered, rows.Err()
}

func ratioCapped(n, d int) float64 {
	if d <= 0 {
		return 0
	}
	r := float64(n) / float64(d)
	if r > 1 {
		return 1
	}
	return r
}

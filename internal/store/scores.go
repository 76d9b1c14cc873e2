package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("job score not found")

// JobScore is one persisted (job, profile) scoring result. Breakdown and
// Meta are stored as JSON; the scorer marshals them before handing off.
type JobScore struct {
	JobID         string
	ProfileID     string
	Score         int
	Grade         string
	BreakdownJSON string
	MetaJSON      string
	UpdatedAt     time.Time
}

const busyRetries = 5

// withRetry retries transient sqlite lock errors with bounded exponential
// backoff. The scoring core stays retry-agnostic; the policy lives here.
func (d *DB) withRetry(ctx context.Context, op string, fn func() error) error {
	delay := 10 * time.Millisecond
	var err error
	for attempt := 0; attempt < busyRetries; attempt++ {
		err = fn()
		if err == nil || !isBusy(err) {
			return err
		}
		if d.logger != nil {
			d.logger.Warn("sqlite busy, retrying",
				zap.String("op", op),
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", delay),
			)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}

// UpsertJobScore inserts or replaces the score row keyed (job_id, profile_id).
func (d *DB) UpsertJobScore(ctx context.Context, rec JobScore) error {
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}
	return d.withRetry(ctx, "upsert job score", func() error {
		_, err := d.Pool.ExecContext(ctx, `
INSERT INTO job_scores (job_id, profile_id, score, grade, breakdown, meta, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(job_id, profile_id) DO UPDATE SET
  score = excluded.score,
  grade = excluded.grade,
  breakdown = excluded.breakdown,
  meta = excluded.meta,
  updated_at = excluded.updated_at;`,
			rec.JobID, rec.ProfileID, rec.Score, rec.Grade,
			rec.BreakdownJSON, rec.MetaJSON, rec.UpdatedAt.Format(time.RFC3339),
		)
		return err
	})
}

func (d *DB) GetJobScore(ctx context.Context, jobID, profileID string) (JobScore, error) {
	row := d.Pool.QueryRowContext(ctx, `
SELECT job_id, profile_id, score, grade, breakdown, meta, updated_at
FROM job_scores
WHERE job_id = ? AND profile_id = ?;`, jobID, profileID)
	return scanScore(row)
}

// BestForJob returns the highest stored score for a job. Ties resolve to
// the earliest-inserted row, which keeps best-match deterministic.
func (d *DB) BestForJob(ctx context.Context, jobID string) (JobScore, error) {
	row := d.Pool.QueryRowContext(ctx, `
SELECT job_id, profile_id, score, grade, breakdown, meta, updated_at
FROM job_scores
WHERE job_id = ?
ORDER BY score DESC, id ASC
LIMIT 1;`, jobID)
	return scanScore(row)
}

func scanScore(row *sql.Row) (JobScore, error) {
	var rec JobScore
	var updated string
	err := row.Scan(&rec.JobID, &rec.ProfileID, &rec.Score, &rec.Grade,
		&rec.BreakdownJSON, &rec.MetaJSON, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return JobScore{}, ErrNotFound
	}
	if err != nil {
		return JobScore{}, err
	}
	rec.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return rec, nil
}

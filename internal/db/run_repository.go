package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/udisondev/questbot/internal/behavior"
)

const (
	sqlInsertInteraction = `
		INSERT INTO behavior_interactions (run_id, quest_id, guid, entry, name, count, interacted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	sqlUpsertRun = `
		INSERT INTO behavior_runs (run_id, behavior, quest_id, mob_id, required, completed, outcome, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (run_id) DO UPDATE SET
			completed = EXCLUDED.completed,
			outcome = EXCLUDED.outcome,
			finished_at = EXCLUDED.finished_at
	`
	sqlInsertBlacklisted = `
		INSERT INTO behavior_run_blacklist (run_id, guid)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	sqlSelectRunsByQuest = `
		SELECT run_id, behavior, quest_id, mob_id, required, completed, outcome, started_at, finished_at
		FROM behavior_runs
		WHERE quest_id = $1
		ORDER BY finished_at DESC
		LIMIT $2
	`
)

// RunRepository is the PostgreSQL journal of behavior runs.
// Implements behavior.Journal.
type RunRepository struct {
	db Pool
}

var _ behavior.Journal = (*RunRepository)(nil)

// NewRunRepository creates a new RunRepository.
func NewRunRepository(db Pool) *RunRepository {
	return &RunRepository{db: db}
}

// RecordInteraction appends one interaction to the journal.
func (r *RunRepository) RecordInteraction(ctx context.Context, rec behavior.InteractionRecord) error {
	_, err := r.db.Exec(ctx, sqlInsertInteraction,
		rec.RunID,
		int64(rec.QuestID),
		int64(rec.GUID),
		int64(rec.Entry),
		rec.Name,
		rec.Count,
		rec.At,
	)
	if err != nil {
		return fmt.Errorf("inserting interaction for run %s: %w", rec.RunID, err)
	}
	return nil
}

// RecordRun saves the run summary with its blacklist in one transaction.
func (r *RunRepository) RecordRun(ctx context.Context, sum behavior.RunSummary) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "runID", sum.RunID, "error", err)
		}
	}()

	_, err = tx.Exec(ctx, sqlUpsertRun,
		sum.RunID,
		sum.Behavior,
		int64(sum.QuestID),
		int64(sum.MobID),
		sum.Required,
		sum.Completed,
		string(sum.Outcome),
		sum.StartedAt,
		sum.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting run %s: %w", sum.RunID, err)
	}

	for _, guid := range sum.Blacklisted {
		if _, err := tx.Exec(ctx, sqlInsertBlacklisted, sum.RunID, int64(guid)); err != nil {
			return fmt.Errorf("inserting blacklisted guid %#x for run %s: %w", guid, sum.RunID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListRuns returns the latest runs of a quest, newest first.
// Blacklisted GUIDs are not loaded.
func (r *RunRepository) ListRuns(ctx context.Context, questID uint32, limit int) ([]behavior.RunSummary, error) {
	rows, err := r.db.Query(ctx, sqlSelectRunsByQuest, int64(questID), limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs for quest %d: %w", questID, err)
	}
	defer rows.Close()

	runs := make([]behavior.RunSummary, 0, limit)
	for rows.Next() {
		var (
			s                   behavior.RunSummary
			qID, mobID          int64
			outcome             string
			startedAt, finished time.Time
		)
		if err := rows.Scan(&s.RunID, &s.Behavior, &qID, &mobID, &s.Required, &s.Completed, &outcome, &startedAt, &finished); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		s.QuestID = uint32(qID)
		s.MobID = uint32(mobID)
		s.Outcome = behavior.Outcome(outcome)
		s.StartedAt = startedAt
		s.FinishedAt = finished
		runs = append(runs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run rows: %w", err)
	}

	return runs, nil
}

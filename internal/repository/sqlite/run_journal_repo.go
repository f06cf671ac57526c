package sqlite

import (
	"context"
	"database/sql"
	"time"

	"revsync-bot/internal/domain"
)

const timeLayout = time.RFC3339

// RunJournalRepo — локальный журнал запусков импорта и синхронизации.
type RunJournalRepo struct {
	db *sql.DB
}

func NewRunJournalRepo(db *sql.DB) *RunJournalRepo {
	return &RunJournalRepo{db: db}
}

func (r *RunJournalRepo) Append(ctx context.Context, e domain.RunEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO runs (kind, started_at, finished_at, ok, summary) VALUES (?, ?, ?, ?, ?)`,
		e.Kind,
		e.StartedAt.UTC().Format(timeLayout),
		e.FinishedAt.UTC().Format(timeLayout),
		e.OK,
		e.Summary,
	)
	return err
}

func (r *RunJournalRepo) Last(ctx context.Context, n int) ([]domain.RunEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, started_at, finished_at, ok, summary FROM runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.RunEntry
	for rows.Next() {
		var e domain.RunEntry
		var startedAt, finishedAt string
		if err := rows.Scan(&e.ID, &e.Kind, &startedAt, &finishedAt, &e.OK, &e.Summary); err != nil {
			return nil, err
		}
		e.StartedAt, _ = time.Parse(timeLayout, startedAt)
		e.FinishedAt, _ = time.Parse(timeLayout, finishedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

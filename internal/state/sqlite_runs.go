package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const runColumns = `id, root, status, started_at, completed_at,
	files_total, files_translated, files_skipped, files_failed, error`

// CreateRun creates a new running build run for root.
func (s *SQLiteStore) CreateRun(ctx context.Context, root string) (*Run, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	run := &Run{
		ID:        generateID(),
		Root:      root,
		Status:    RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}

	s.logger.Debug("creating run", slog.String("id", run.ID), slog.String("root", root))

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, root, status, started_at) VALUES (?, ?, ?, ?)`,
		run.ID, run.Root, string(run.Status), run.StartedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	return run, nil
}

// CompleteRun marks a run finished with the given status and counts.
func (s *SQLiteStore) CompleteRun(ctx context.Context, id string, status RunStatus, stats RunStats, errMsg string) error {
	if s.db == nil {
		return errNotOpened
	}

	var errValue sql.NullString
	if errMsg != "" {
		errValue = sql.NullString{String: errMsg, Valid: true}
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, completed_at = ?, files_total = ?, files_translated = ?,
		 files_skipped = ?, files_failed = ?, error = ? WHERE id = ?`,
		string(status), time.Now().UTC(), stats.Total, stats.Translated,
		stats.Skipped, stats.Failed, errValue, id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("run not found: %s", id)
	}
	return nil
}

// GetRun retrieves a run by ID.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*Run, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// GetLatestRun returns the most recently started run, or nil when there is none.
func (s *SQLiteStore) GetLatestRun(ctx context.Context) (*Run, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs ORDER BY started_at DESC LIMIT 1`)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}
	return run, nil
}

// RecordFile stores the outcome of one file in a run.
func (s *SQLiteStore) RecordFile(ctx context.Context, f *RunFile) error {
	if s.db == nil {
		return errNotOpened
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO run_files (run_id, file_path, status, output_path, error, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(run_id, file_path) DO UPDATE SET status = excluded.status,
		 output_path = excluded.output_path, error = excluded.error, duration_ms = excluded.duration_ms`,
		f.RunID, f.FilePath, string(f.Status), f.OutputPath, f.Error, f.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to record file %s: %w", f.FilePath, err)
	}
	return nil
}

// ListRunFiles returns the files recorded for a run ordered by path.
func (s *SQLiteStore) ListRunFiles(ctx context.Context, runID string) ([]*RunFile, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, file_path, status, output_path, error, duration_ms
		 FROM run_files WHERE run_id = ? ORDER BY file_path`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list run files: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var files []*RunFile
	for rows.Next() {
		f := &RunFile{}
		var status string
		var durationMS int64
		if err := rows.Scan(&f.RunID, &f.FilePath, &status, &f.OutputPath, &f.Error, &durationMS); err != nil {
			return nil, fmt.Errorf("failed to scan run file: %w", err)
		}
		f.Status = FileStatus(status)
		f.Duration = time.Duration(durationMS) * time.Millisecond
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list run files: %w", err)
	}
	return files, nil
}

func scanRun(row *sql.Row) (*Run, error) {
	run := &Run{}
	var status string
	var completedAt sql.NullTime
	var errMsg sql.NullString

	err := row.Scan(&run.ID, &run.Root, &status, &run.StartedAt, &completedAt,
		&run.Stats.Total, &run.Stats.Translated, &run.Stats.Skipped, &run.Stats.Failed, &errMsg)
	if err != nil {
		return nil, err
	}

	run.Status = RunStatus(status)
	if completedAt.Valid {
		t := completedAt.Time
		run.CompletedAt = &t
	}
	if errMsg.Valid {
		run.Error = errMsg.String
	}
	return run, nil
}

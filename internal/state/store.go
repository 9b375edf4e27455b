// Package state persists incremental build state in SQLite.
// It tracks build runs, per-file outcomes and source content hashes.
package state

import (
	"context"
	"time"
)

// Store is the persistence interface used by the build engine.
type Store interface {
	Open(path string) error
	Close() error
	Migrate() error

	GetContentHash(ctx context.Context, filePath string) (string, error)
	SetContentHash(ctx context.Context, filePath, hash string) error
	DeleteContentHash(ctx context.Context, filePath string) error

	CreateRun(ctx context.Context, root string) (*Run, error)
	CompleteRun(ctx context.Context, id string, status RunStatus, stats RunStats, errMsg string) error
	GetRun(ctx context.Context, id string) (*Run, error)
	GetLatestRun(ctx context.Context) (*Run, error)
	RecordFile(ctx context.Context, f *RunFile) error
	ListRunFiles(ctx context.Context, runID string) ([]*RunFile, error)
}

// RunStatus is the lifecycle state of a build run.
type RunStatus string

// Run statuses.
const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
	RunStatusCancelled RunStatus = "cancelled"
)

// FileStatus is the outcome of one file within a run.
type FileStatus string

// File statuses.
const (
	FileStatusTranslated FileStatus = "translated"
	FileStatusSkipped    FileStatus = "skipped"
	FileStatusFailed     FileStatus = "failed"
)

// RunStats counts file outcomes of a run.
type RunStats struct {
	Total      int `json:"total"`
	Translated int `json:"translated"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

// Run is one invocation of `js2py build`.
type Run struct {
	ID          string     `json:"id"`
	Root        string     `json:"root"`
	Status      RunStatus  `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Stats       RunStats   `json:"stats"`
	Error       string     `json:"error,omitempty"`
}

// RunFile records what happened to one source file during a run.
type RunFile struct {
	RunID      string        `json:"run_id"`
	FilePath   string        `json:"file_path"`
	Status     FileStatus    `json:"status"`
	OutputPath string        `json:"output_path,omitempty"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration"`
}

package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/leapstack-labs/js2py/internal/state"
	"golang.org/x/sync/errgroup"
)

// BuildOptions configures a build.
type BuildOptions struct {
	// Force ignores stored content hashes and translates every file.
	Force bool
}

// BuildResult summarizes a build run.
type BuildResult struct {
	RunID    string         `json:"run_id"`
	Root     string         `json:"root"`
	Files    []FileResult   `json:"files"`
	Stats    state.RunStats `json:"stats"`
	Duration time.Duration  `json:"duration"`
}

// HasErrors returns true if any file failed.
func (r *BuildResult) HasErrors() bool {
	return r.Stats.Failed > 0
}

// Failures returns the failed files.
func (r *BuildResult) Failures() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Failed() {
			failed = append(failed, f)
		}
	}
	return failed
}

// Summary returns a human-readable summary.
func (r *BuildResult) Summary() string {
	return fmt.Sprintf("Files: %d total (%d translated, %d skipped, %d failed) | Duration: %s",
		r.Stats.Total, r.Stats.Translated, r.Stats.Skipped, r.Stats.Failed,
		r.Duration.Round(time.Millisecond))
}

// Build translates every matching file under dir with bounded parallelism.
// Files whose content hash matches the stored one and whose output exists
// are skipped unless opts.Force is set. Translation failures are recorded
// per file; the returned error is reserved for discovery, state and
// cancellation failures.
func (e *Engine) Build(ctx context.Context, dir string, opts BuildOptions) (*BuildResult, error) {
	start := time.Now()

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory: %w", err)
	}

	files, err := e.Discover(root)
	if err != nil {
		return nil, err
	}

	store, err := e.ensureStore()
	if err != nil {
		return nil, err
	}

	// The run is recorded even when ctx is already done, so a cancelled
	// build still leaves a cancelled run behind.
	run, err := store.CreateRun(context.WithoutCancel(ctx), root)
	if err != nil {
		return nil, err
	}

	e.logger.Info("build started", "run_id", run.ID, "root", root, "files", len(files), "force", opts.Force)

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)

	for i, path := range files {
		g.Go(func() error {
			res, err := e.buildFile(gctx, store, path, opts.Force)
			if err != nil {
				return err
			}
			results[i] = res
			return store.RecordFile(gctx, &state.RunFile{
				RunID:      run.ID,
				FilePath:   relPath(root, path),
				Status:     res.Status,
				OutputPath: relPath(root, res.OutputPath),
				Error:      errString(res.Err),
				Duration:   res.Duration,
			})
		})
	}

	result := &BuildResult{RunID: run.ID, Root: root}
	waitErr := g.Wait()
	if waitErr == nil {
		waitErr = ctx.Err()
	}

	result.Files = results
	result.Stats = tally(results)
	result.Duration = time.Since(start)

	status, msg := state.RunStatusCompleted, ""
	switch {
	case errors.Is(waitErr, context.Canceled), errors.Is(waitErr, context.DeadlineExceeded):
		status, msg = state.RunStatusCancelled, waitErr.Error()
	case waitErr != nil:
		status, msg = state.RunStatusFailed, waitErr.Error()
	case result.HasErrors():
		status, msg = state.RunStatusFailed, fmt.Sprintf("%d file(s) failed", result.Stats.Failed)
	}

	// The run is closed out even when ctx is done.
	if err := store.CompleteRun(context.WithoutCancel(ctx), run.ID, status, result.Stats, msg); err != nil {
		e.logger.Error("failed to complete run", "run_id", run.ID, "error", err)
	}

	if waitErr != nil {
		return result, waitErr
	}

	e.logger.Info("build completed",
		"run_id", run.ID,
		"translated", result.Stats.Translated,
		"skipped", result.Stats.Skipped,
		"failed", result.Stats.Failed,
		"duration_ms", result.Duration.Milliseconds())

	return result, nil
}

// buildFile translates one file unless its stored hash is current.
// A non-nil error aborts the whole build.
func (e *Engine) buildFile(ctx context.Context, store state.Store, path string, force bool) (FileResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return FileResult{}, err
	}

	content, err := os.ReadFile(path) //nolint:gosec // G304: path comes from Discover
	if err != nil {
		return e.failed(path, fmt.Errorf("failed to read %s: %w", path, err), start), nil
	}
	hash := computeHash(content)

	if !force && e.upToDate(ctx, store, path, hash) {
		e.logger.Debug("skipping unchanged file", "path", path)
		return FileResult{
			Path:       path,
			OutputPath: e.OutputPath(path),
			Status:     state.FileStatusSkipped,
			Duration:   time.Since(start),
		}, nil
	}

	res := e.translateContent(ctx, path, content, OutputFile, start)
	if res.Failed() {
		if err := ctx.Err(); err != nil {
			return FileResult{}, err
		}
		// Forget the hash so the file is retried even if unchanged.
		return res, store.DeleteContentHash(ctx, path)
	}
	return res, store.SetContentHash(ctx, path, hash)
}

func (e *Engine) upToDate(ctx context.Context, store state.Store, path, hash string) bool {
	existing, err := store.GetContentHash(ctx, path)
	if err != nil || existing != hash {
		return false
	}
	_, err = os.Stat(e.OutputPath(path))
	return err == nil
}

func tally(results []FileResult) state.RunStats {
	var stats state.RunStats
	for _, r := range results {
		switch r.Status {
		case state.FileStatusTranslated:
			stats.Translated++
		case state.FileStatusSkipped:
			stats.Skipped++
		case state.FileStatusFailed:
			stats.Failed++
		default:
			continue
		}
		stats.Total++
	}
	return stats
}

func relPath(root, path string) string {
	if path == "" {
		return ""
	}
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

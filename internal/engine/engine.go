// Package engine translates JavaScript files on disk.
// It handles file discovery, incremental builds, batch checks and watching.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/leapstack-labs/js2py/internal/state"
	"github.com/leapstack-labs/js2py/pkg/translate"
)

// Output modes.
const (
	OutputFile   = "file"
	OutputStdout = "stdout"
)

// DefaultDebounce is how long Watch waits for file events to settle.
const DefaultDebounce = 100 * time.Millisecond

// Engine orchestrates translation of source files.
type Engine struct {
	translator translate.Translator
	logger     *slog.Logger

	output     string
	suffix     string
	extensions []string
	jobs       int
	debounce   time.Duration
	stdout     io.Writer

	statePath string
	store     state.Store
	ownStore  bool
	storeMu   sync.Mutex
}

// Config holds engine configuration.
type Config struct {
	// Indent is the translator indent width (0 uses the default).
	Indent int
	// Output is OutputFile or OutputStdout.
	Output string
	// Suffix is appended to the input path to name the output file.
	Suffix string
	// Extensions selects files when a directory is translated.
	Extensions []string
	// Jobs bounds parallel translations (0 uses NumCPU).
	Jobs int
	// StatePath is the SQLite state database used by Build.
	// Empty keeps state in memory for the lifetime of the engine.
	StatePath string
	// Store overrides the state store. The caller owns it and must
	// have opened and migrated it.
	Store state.Store
	// Debounce is the Watch settle delay (0 uses DefaultDebounce).
	Debounce time.Duration
	// Stdout receives code when Output is OutputStdout (defaults to os.Stdout).
	Stdout io.Writer
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine. The state store is opened lazily by Build.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	output := cfg.Output
	if output == "" {
		output = OutputFile
	}
	if output != OutputFile && output != OutputStdout {
		return nil, fmt.Errorf("invalid output %q: must be %q or %q", output, OutputFile, OutputStdout)
	}

	suffix := cfg.Suffix
	if suffix == "" {
		suffix = ".py"
	}

	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = []string{".js", ".mjs", ".ts"}
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	logger.Debug("initializing engine",
		"indent", cfg.Indent, "output", output, "extensions", exts, "jobs", jobs)

	return &Engine{
		translator: translate.New().WithIndent(cfg.Indent),
		logger:     logger,
		output:     output,
		suffix:     suffix,
		extensions: exts,
		jobs:       jobs,
		debounce:   debounce,
		stdout:     stdout,
		statePath:  cfg.StatePath,
		store:      cfg.Store,
	}, nil
}

// ensureStore lazily opens the state store.
func (e *Engine) ensureStore() (state.Store, error) {
	e.storeMu.Lock()
	defer e.storeMu.Unlock()

	if e.store != nil {
		return e.store, nil
	}

	path := e.statePath
	if path == "" {
		path = state.MemoryPath
	}

	e.logger.Debug("opening state store", "path", path)

	store := state.NewSQLiteStore(e.logger)
	if err := store.Open(path); err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize state schema: %w", err)
	}

	e.store = store
	e.ownStore = true
	return store, nil
}

// Translator returns the translator used for every file.
func (e *Engine) Translator() translate.Translator {
	return e.translator
}

// OutputPath returns where the translation of path is written.
func (e *Engine) OutputPath(path string) string {
	return path + e.suffix
}

// Close releases the state store if the engine opened it.
func (e *Engine) Close() error {
	e.logger.Debug("closing engine")

	e.storeMu.Lock()
	defer e.storeMu.Unlock()

	var errs []error
	if e.store != nil && e.ownStore {
		if err := e.store.Close(); err != nil {
			errs = append(errs, err)
		}
		e.store = nil
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing engine: %w", errors.Join(errs...))
	}
	return nil
}

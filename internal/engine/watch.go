package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchFunc receives the result of every build Watch performs.
type WatchFunc func(result *BuildResult, err error)

// Watch builds dir, then rebuilds whenever a matching file is written or
// created. Events are debounced. Watch blocks until ctx is done.
func (e *Engine) Watch(ctx context.Context, dir string, fn WatchFunc) error {
	root, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	fn(e.Build(ctx, root, BuildOptions{}))

	e.logger.Info("watching for changes", "root", root)

	var (
		debounce *time.Timer
		fire     <-chan time.Time
	)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 && e.isWatchableDir(event.Name) {
				if err := watchDirRecursive(watcher, event.Name); err != nil {
					e.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
				}
				continue
			}
			if !e.matches(event.Name) {
				continue
			}

			e.logger.Debug("file changed", "file", event.Name, "op", event.Op.String())
			if debounce == nil {
				debounce = time.NewTimer(e.debounce)
			} else {
				debounce.Reset(e.debounce)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			fn(e.Build(ctx, root, BuildOptions{}))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Error("watcher error", "error", err)
		}
	}
}

func (e *Engine) isWatchableDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	name := filepath.Base(path)
	return !strings.HasPrefix(name, ".") && !skipDirs[name]
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && (strings.HasPrefix(d.Name(), ".") || skipDirs[d.Name()]) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/leapstack-labs/js2py/pkg/source"
	"github.com/leapstack-labs/js2py/pkg/translate"
	"golang.org/x/sync/errgroup"
)

// FileDiagnostics holds the Check findings for one file.
type FileDiagnostics struct {
	Path        string                 `json:"path"`
	File        *source.File           `json:"-"`
	Diagnostics []translate.Diagnostic `json:"diagnostics"`
	// Err is a read, type-stripping or syntax error that prevented checking.
	Err error `json:"-"`
}

// HasErrors reports whether the file failed to parse or has error diagnostics.
func (d FileDiagnostics) HasErrors() bool {
	return d.Err != nil || translate.HasErrors(d.Diagnostics)
}

// Check parses and checks every file in paths; directories are expanded
// by extension. Results are sorted by path. The returned error is reserved
// for path resolution and cancellation.
func (e *Engine) Check(ctx context.Context, paths []string) ([]FileDiagnostics, error) {
	files, err := e.expandPaths(paths)
	if err != nil {
		return nil, err
	}

	results := make([]FileDiagnostics, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.checkFile(gctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (e *Engine) checkFile(ctx context.Context, path string) FileDiagnostics {
	res := FileDiagnostics{Path: path}

	content, err := os.ReadFile(path) //nolint:gosec // G304: path is user input by design of the CLI
	if err != nil {
		res.Err = fmt.Errorf("failed to read %s: %w", path, err)
		return res
	}

	text, err := e.sourceText(path, string(content))
	if err != nil {
		res.Err = err
		return res
	}
	res.File = source.NewFile(path, text)

	prog, err := e.parse(ctx, path, text)
	if err != nil {
		res.Err = err
		return res
	}

	res.Diagnostics = e.translator.Check(prog)
	e.logger.Debug("checked file", "path", path, "diagnostics", len(res.Diagnostics))
	return res
}

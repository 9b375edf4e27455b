package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/leapstack-labs/js2py/internal/state"
	"github.com/leapstack-labs/js2py/pkg/ast"
	"github.com/leapstack-labs/js2py/pkg/jsparse"
)

// FileResult is the outcome of translating one file. Source holds the
// JavaScript text that error spans refer to; for TypeScript inputs that is
// the type-stripped text.
type FileResult struct {
	Path       string           `json:"path"`
	OutputPath string           `json:"output_path,omitempty"`
	Code       string           `json:"-"`
	Source     string           `json:"-"`
	Status     state.FileStatus `json:"status"`
	Err        error            `json:"-"`
	Duration   time.Duration    `json:"duration"`
}

// Failed reports whether the file could not be translated.
func (r FileResult) Failed() bool { return r.Err != nil }

// TranslateFile reads, parses and translates path, then writes the result
// according to the configured output mode.
func (e *Engine) TranslateFile(ctx context.Context, path string) FileResult {
	start := time.Now()

	content, err := os.ReadFile(path) //nolint:gosec // G304: path is user input by design of the CLI
	if err != nil {
		return e.failed(path, fmt.Errorf("failed to read %s: %w", path, err), start)
	}

	return e.translateContent(ctx, path, content, e.output, start)
}

func (e *Engine) translateContent(ctx context.Context, path string, content []byte, output string, start time.Time) FileResult {
	text, err := e.sourceText(path, string(content))
	if err != nil {
		return e.failed(path, err, start)
	}

	prog, err := e.parse(ctx, path, text)
	if err != nil {
		res := e.failed(path, err, start)
		res.Source = text
		return res
	}

	code, err := e.translator.Build(prog)
	if err != nil {
		res := e.failed(path, err, start)
		res.Source = text
		return res
	}

	res := FileResult{
		Path:   path,
		Code:   code,
		Source: text,
		Status: state.FileStatusTranslated,
	}

	switch output {
	case OutputStdout:
		if _, err := fmt.Fprintln(e.stdout, code); err != nil {
			return e.failed(path, fmt.Errorf("failed to write output: %w", err), start)
		}
	default:
		res.OutputPath = e.OutputPath(path)
		if err := os.WriteFile(res.OutputPath, []byte(code+"\n"), 0o600); err != nil {
			return e.failed(path, fmt.Errorf("failed to write %s: %w", res.OutputPath, err), start)
		}
	}

	res.Duration = time.Since(start)
	e.logger.Debug("translated file", "path", path, "output", res.OutputPath, "duration", res.Duration)
	return res
}

// parse parses text, which sourceText has already stripped of types.
func (e *Engine) parse(ctx context.Context, path, text string) (*ast.Program, error) {
	prog, err := jsparse.ParseContext(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return prog, nil
}

// sourceText returns the JavaScript text that spans refer to.
func (e *Engine) sourceText(path, src string) (string, error) {
	if !isTypeScript(path) {
		return src, nil
	}
	text, err := jsparse.StripTypes(path, src)
	if err != nil {
		return "", fmt.Errorf("failed to strip types from %s: %w", path, err)
	}
	return text, nil
}

func isTypeScript(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".ts") || strings.HasSuffix(lower, ".mts")
}

func (e *Engine) failed(path string, err error, start time.Time) FileResult {
	level := e.logger.Warn
	if errors.Is(err, context.Canceled) {
		level = e.logger.Debug
	}
	level("translation failed", "path", path, "error", err)

	return FileResult{
		Path:     path,
		Status:   state.FileStatusFailed,
		Err:      err,
		Duration: time.Since(start),
	}
}

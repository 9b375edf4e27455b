package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/js2py/internal/cli/testutil"
	"github.com/leapstack-labs/js2py/internal/config"
	"github.com/leapstack-labs/js2py/pkg/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI in dir and returns stdout, stderr and the error.
func run(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(dir)
	var stdout, stderr bytes.Buffer
	err := ExecuteArgs(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRoot_Usage(t *testing.T) {
	stdout, stderr, err := run(t, t.TempDir())

	require.ErrorIs(t, err, ErrUsage)
	assert.Empty(t, stdout)
	assert.Equal(t, "Usage: js2py <source file>\n", stderr)
}

func TestRoot_TooManyArgs(t *testing.T) {
	_, stderr, err := run(t, t.TempDir(), "a.js", "b.js")
	require.Error(t, err)
	assert.Contains(t, stderr, "Error:")
}

func TestRoot_TranslateFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "app.js"), "let total = 0;\nwhile (total < 10) { total += 2; }\n")

	stdout, stderr, err := run(t, dir, "app.js")
	require.NoError(t, err, stderr)
	assert.Equal(t, "wrote python code into app.js.py\n", stdout)

	got, err := os.ReadFile(filepath.Join(dir, "app.js.py"))
	require.NoError(t, err)
	assert.Equal(t, "total = 0\nwhile total < 10:\n    total += 2\n", string(got))
}

func TestRoot_StdoutAndIndent(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "f.js"), "function f() {}\n")

	stdout, _, err := run(t, dir, "f.js", "--output", "stdout", "--indent", "2")
	require.NoError(t, err)
	assert.Equal(t, "def f():\n  "+translate.Placeholder+"\n", stdout)
	assert.NoFileExists(t, filepath.Join(dir, "f.js.py"))
}

func TestRoot_ConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, config.ConfigFileName), "indent: 3\nsuffix: .gen.py\n")
	testutil.WriteFile(t, filepath.Join(dir, "g.js"), "if (a) { b = 1; }\n")
	t.Setenv("JS2PY_SUFFIX", ".env.py")

	stdout, _, err := run(t, dir, "g.js")
	require.NoError(t, err)
	assert.Equal(t, "wrote python code into g.js.env.py\n", stdout)

	got, err := os.ReadFile(filepath.Join(dir, "g.js.env.py"))
	require.NoError(t, err)
	assert.Equal(t, "if a:\n   b = 1\n", string(got))
}

func TestRoot_TranslationError(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "bad.js"), "let ok = 1;\nx = a ** b;\n")

	stdout, stderr, err := run(t, dir, "bad.js")
	require.ErrorIs(t, err, translate.ErrUnsupportedConstruct)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "bad.js:2:5\nx = a ** b;\n    ^^^^^^\n")
	assert.Contains(t, stderr, `Error: unsupported binary operator **: "a ** b"`)
	assert.NoFileExists(t, filepath.Join(dir, "bad.js.py"))
}

func TestRoot_TranslationError_TypeScript(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "typed.ts"), "let n: number = a ** b;\n")

	_, stderr, err := run(t, dir, "typed.ts")
	require.ErrorIs(t, err, translate.ErrUnsupportedConstruct)
	// Positions refer to the type-stripped text.
	assert.Contains(t, stderr, "typed.ts:1:9\nlet n = a ** b;\n        ^^^^^^\n")
}

func TestRoot_MissingFile(t *testing.T) {
	_, stderr, err := run(t, t.TempDir(), "nope.js")
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, stderr, "Error: failed to read nope.js")
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, stderr, err := run(t, t.TempDir(), "--indent", "99", "x.js")
	require.Error(t, err)
	assert.Contains(t, stderr, "indent")
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "js2py v"+Version)
}

func TestCompletion(t *testing.T) {
	stdout, _, err := run(t, t.TempDir(), "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "js2py")

	_, _, err = run(t, t.TempDir(), "completion", "tcsh")
	require.Error(t, err)
}

func TestCheck_JSON(t *testing.T) {
	dir := testutil.SetupTestProject(t, true)

	stdout, _, err := run(t, dir, "check", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 error(s) found")

	var report struct {
		Summary struct {
			Files    int `json:"files"`
			Errors   int `json:"errors"`
			Warnings int `json:"warnings"`
		} `json:"summary"`
		Files []struct {
			Path        string `json:"path"`
			Diagnostics []struct {
				Code   string `json:"code"`
				Line   int    `json:"line"`
				Column int    `json:"column"`
			} `json:"diagnostics"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report), stdout)
	assert.Equal(t, 3, report.Summary.Files)
	assert.Equal(t, 1, report.Summary.Errors)
	require.Len(t, report.Files, 1)
	assert.Equal(t, filepath.Join("src", "broken.js"), report.Files[0].Path)
	require.Len(t, report.Files[0].Diagnostics, 1)
	assert.Equal(t, translate.CodeUnsupportedConstruct, report.Files[0].Diagnostics[0].Code)
	assert.Equal(t, 1, report.Files[0].Diagnostics[0].Line)
	assert.Equal(t, 9, report.Files[0].Diagnostics[0].Column)
}

func TestCheck_Markdown(t *testing.T) {
	dir := testutil.SetupTestProject(t, true)
	testutil.WriteFile(t, filepath.Join(dir, "src", "warn.js"), "y = -x;\n")

	stdout, stderr, err := run(t, dir, "check", "--format", "markdown")
	require.Error(t, err)

	testutil.AssertNoANSI(t, stdout)
	testutil.AssertValidMarkdown(t, stdout)
	testutil.AssertContains(t, stdout, "# Check Results")
	testutil.AssertContains(t, stdout, "## `"+filepath.Join("src", "broken.js")+"`")
	testutil.AssertContains(t, stdout, "| 1 | 9 | error | JP01 |")
	testutil.AssertContains(t, stdout, "| 1 | 5 | warning | JP10 |")
	testutil.AssertContains(t, stderr, "4 file(s) checked, 1 error(s), 1 warning(s)")
}

func TestCheck_Clean(t *testing.T) {
	dir := testutil.SetupTestProject(t, false)

	_, stderr, err := run(t, dir, "check", "src", "--format", "text")
	require.NoError(t, err, stderr)
}

func TestBuild_JSON(t *testing.T) {
	dir := testutil.SetupTestProject(t, true)

	stdout, _, err := run(t, dir, "build", "--format", "json", "-j", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 file(s) failed")

	var report struct {
		RunID string `json:"run_id"`
		Stats struct {
			Total      int `json:"total"`
			Translated int `json:"translated"`
			Failed     int `json:"failed"`
		} `json:"stats"`
		Failures []struct {
			Path  string `json:"path"`
			Error string `json:"error"`
		} `json:"failures"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report), stdout)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 3, report.Stats.Total)
	assert.Equal(t, 2, report.Stats.Translated)
	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0].Error, "unsupported")

	assert.FileExists(t, filepath.Join(dir, "src", "main.js.py"))
	assert.FileExists(t, filepath.Join(dir, config.DefaultStateFile))
}

func TestBuild_Incremental(t *testing.T) {
	dir := testutil.SetupTestProject(t, false)

	_, _, err := run(t, dir, "build", "--format", "text")
	require.NoError(t, err)

	stdout, _, err := run(t, dir, "build", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, stdout, "unchanged")

	stdout, _, err = run(t, dir, "build", "--force", "--format", "markdown")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "unchanged")
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := run(t, dir, "init", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, stdout, "js2py project initialized!")

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName), nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Indent, cfg.Indent)
	assert.Equal(t, config.Default().Serve, cfg.Serve)
	assert.Equal(t, config.DefaultExtensions(), cfg.Extensions)

	_, _, err = run(t, dir, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = run(t, dir, "init", "--force")
	require.NoError(t, err)
}

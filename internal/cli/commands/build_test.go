package commands

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leapstack-labs/js2py/internal/cli/output"
	"github.com/leapstack-labs/js2py/internal/cli/testutil"
	"github.com/leapstack-labs/js2py/internal/engine"
	"github.com/leapstack-labs/js2py/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBuildResult(t *testing.T) *engine.BuildResult {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)

	return &engine.BuildResult{
		RunID: "run-1",
		Root:  wd,
		Files: []engine.FileResult{
			{Path: filepath.Join(wd, "a.js"), OutputPath: filepath.Join(wd, "a.js.py"), Status: state.FileStatusTranslated},
			{Path: filepath.Join(wd, "b.js"), Status: state.FileStatusSkipped},
			{Path: filepath.Join(wd, "c.js"), Status: state.FileStatusFailed, Err: errors.New("unsupported binary operator **")},
		},
		Stats:    state.RunStats{Total: 3, Translated: 1, Skipped: 1, Failed: 1},
		Duration: 1500 * time.Millisecond,
	}
}

func TestRenderBuildResult_Markdown(t *testing.T) {
	tr := testutil.NewTestRendererMarkdown()
	renderBuildResult(tr.Renderer, sampleBuildResult(t))

	out := tr.Output()
	testutil.AssertOutputMode(t, tr, output.ModeMarkdown)
	testutil.AssertContains(t, out, "# Build")
	testutil.AssertContains(t, out, "run-1")
	testutil.AssertContains(t, out, "a.js")
	testutil.AssertContains(t, out, "→ a.js.py")
	testutil.AssertContains(t, out, "unchanged")
	testutil.AssertContains(t, out, "unsupported binary operator **")
	testutil.AssertContains(t, tr.ErrorOutput(),
		"Files: 3 total (1 translated, 1 skipped, 1 failed) | Duration: 1.5s")
}

func TestRenderBuildResult_JSON(t *testing.T) {
	tr := testutil.NewTestRendererJSON()
	renderBuildResult(tr.Renderer, sampleBuildResult(t))

	var report buildReport
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &report))
	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, int64(1500), report.DurationMS)
	assert.Equal(t, state.RunStats{Total: 3, Translated: 1, Skipped: 1, Failed: 1}, report.Stats)
	assert.Equal(t, []buildFailure{{Path: "c.js", Error: "unsupported binary operator **"}}, report.Failures)
}

func TestRenderBuildResult_Success(t *testing.T) {
	res := sampleBuildResult(t)
	res.Files = res.Files[:2]
	res.Stats = state.RunStats{Total: 2, Translated: 1, Skipped: 1}

	tr := testutil.NewTestRendererJSON()
	renderBuildResult(tr.Renderer, res)

	var report buildReport
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &report))
	assert.NotNil(t, report.Failures)
	assert.Empty(t, report.Failures)

	md := testutil.NewTestRendererMarkdown()
	renderBuildResult(md.Renderer, res)
	assert.Empty(t, md.ErrorOutput())
	testutil.AssertContains(t, md.Output(), "✓ Files: 2 total")
}

func TestDirArg(t *testing.T) {
	assert.Equal(t, ".", dirArg(nil))
	assert.Equal(t, "src", dirArg([]string{"src", "extra"}))
}

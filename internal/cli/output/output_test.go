package output

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{ModeAuto, true, ModeText},
		{ModeAuto, false, ModeMarkdown},
		{"", false, ModeMarkdown},
		{ModeJSON, true, ModeJSON},
		{ModeText, false, ModeText},
		{ModeMarkdown, true, ModeMarkdown},
	}

	for _, tt := range tests {
		r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
		assert.Equal(t, tt.want, r.EffectiveMode(), "mode=%q tty=%v", tt.mode, tt.isTTY)
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_NonTTYHasNoANSI(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	r := NewRendererWithTTY(out, errOut, false, ModeText)

	r.Header(1, "Check")
	r.Success("done")
	r.StatusLine("a.js", "error", "2 errors")
	r.Muted("muted")
	r.Warning("careful")
	r.Error("broken")

	assert.False(t, ansi.MatchString(out.String()), out.String())
	assert.Contains(t, out.String(), "✓ done")
	assert.Contains(t, out.String(), "✗ a.js  2 errors")
	assert.Contains(t, errOut.String(), "! careful")
	assert.Contains(t, errOut.String(), "✗ broken")
}

func TestRenderer_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)
	require.NoError(t, r.JSON(map[string]int{"files": 2}))
	assert.Equal(t, "{\n  \"files\": 2\n}\n", out.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "## Check Results", FormatHeader(2, "check results"))
	assert.Equal(t, "# X", FormatHeader(0, "x"))
	assert.Equal(t, "**File:** a.js", FormatKeyValue("File", "a.js"))
	assert.Equal(t, "```python\nx = 1\n```", FormatCodeBlock("python", "x = 1\n"))
	assert.Equal(t, `| a \| b | c |`, FormatTableRow("a | b", "c"))
	assert.Equal(t, "| --- | --- |", FormatTableSeparator(2))
}

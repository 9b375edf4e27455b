package commands

import (
	"bytes"
	"testing"

	"github.com/leapstack-labs/js2py/pkg/translate"
	"github.com/stretchr/testify/assert"
)

func newTestSession() (*replSession, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return newREPLSession(&out, &errOut, translate.New()), &out, &errOut
}

func TestREPL_TranslatesStatement(t *testing.T) {
	s, out, errOut := newTestSession()

	assert.False(t, s.handle("let x = 1;"))
	assert.Equal(t, "x = 1\n", out.String())
	assert.Empty(t, errOut.String())
	assert.Equal(t, replPrompt, s.prompt())
}

func TestREPL_MultiLine(t *testing.T) {
	s, out, _ := newTestSession()

	s.handle("if (x) {")
	assert.Equal(t, replContPrompt, s.prompt())
	assert.Empty(t, out.String())

	s.handle("  y = 2;")
	s.handle("}")
	assert.Equal(t, "if x:\n    y = 2\n", out.String())
	assert.Equal(t, replPrompt, s.prompt())
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	s, out, errOut := newTestSession()

	assert.False(t, s.handle(""))
	assert.False(t, s.handle("   "))
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestREPL_TranslationError(t *testing.T) {
	s, out, errOut := newTestSession()

	s.handle("a ** b;")
	assert.Empty(t, out.String())
	assert.Equal(t, "Error: unsupported binary operator **: \"a ** b\"\na ** b;\n^^^^^^\n", errOut.String())
	assert.Equal(t, replPrompt, s.prompt())
}

func TestREPL_SyntaxError(t *testing.T) {
	s, out, errOut := newTestSession()

	s.handle("let = ;")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error: ")
}

func TestREPL_Reset(t *testing.T) {
	s, out, _ := newTestSession()

	s.handle("while (a) {")
	s.reset()
	assert.Equal(t, replPrompt, s.prompt())

	s.handle("b = 1;")
	assert.Equal(t, "b = 1\n", out.String())
}

func TestREPL_DotCommands(t *testing.T) {
	s, out, errOut := newTestSession()

	assert.False(t, s.handle(".indent"))
	assert.Equal(t, "indent is 4\n", out.String())

	out.Reset()
	s.handle(".indent 2")
	assert.Equal(t, "indent set to 2\n", out.String())

	out.Reset()
	s.handle("while (a) {}")
	assert.Equal(t, "while a:\n  pass\n", out.String())

	s.handle(".indent 0")
	s.handle(".indent two")
	assert.Equal(t, "Usage: .indent <1-16>\nUsage: .indent <1-16>\n", errOut.String())

	errOut.Reset()
	s.handle(".nope")
	assert.Contains(t, errOut.String(), "Unknown command: .nope")

	out.Reset()
	s.handle(".help")
	assert.Contains(t, out.String(), ".indent [n]")

	assert.True(t, s.handle(".quit"))
	assert.True(t, s.handle(".EXIT"))
}

func TestREPL_DotInsideBlockIsSource(t *testing.T) {
	s, out, errOut := newTestSession()

	s.handle("f(")
	s.handle(".5)")
	assert.Empty(t, errOut.String())
	assert.Equal(t, "f(.5)\n", out.String())
}

func TestBracketDepth(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"", 0},
		{"f(x)", 0},
		{"if (a) {", 1},
		{"[[1, 2", 2},
		{"}", -1},
		{`s = "{";`, 0},
		{`s = '(' + "\"[";`, 0},
		{"t = `{`;", 0},
		{"x = 1; // {", 0},
		{"/* ( */ f(", 1},
		{"/* unterminated {", 1},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, bracketDepth(tt.src))
		})
	}
}

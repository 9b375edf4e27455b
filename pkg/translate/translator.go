package translate

import (
	"github.com/leapstack-labs/js2py/pkg/ast"
)

// DefaultIndent is the number of spaces per suite level.
const DefaultIndent = 4

// Translator converts a Program to Python source.
// The zero value is not ready for use; call New.
type Translator struct {
	source string
	indent int
}

// New returns a Translator with the default indent width.
func New() Translator {
	return Translator{indent: DefaultIndent}
}

// WithIndent returns a copy using width spaces per level.
// Non-positive widths fall back to DefaultIndent.
func (t Translator) WithIndent(width int) Translator {
	if width <= 0 {
		width = DefaultIndent
	}
	t.indent = width
	return t
}

// IndentWidth returns the configured indent width.
func (t Translator) IndentWidth() int {
	return t.indent
}

// Build translates p and returns the Python source.
// It stops at the first construct that cannot be translated; no partial
// output is returned alongside an error.
func (t Translator) Build(p *ast.Program) (string, error) {
	if p == nil {
		return "", nil
	}
	t.source = p.SourceText
	return t.printer(nil).program(p.Body)
}

// Check walks all of p and reports every construct Build would reject,
// plus warnings for lowerings that change meaning. Diagnostics are in walk
// order.
func (t Translator) Check(p *ast.Program) []Diagnostic {
	if p == nil {
		return nil
	}
	t.source = p.SourceText
	c := &collector{source: t.source}
	_, _ = t.printer(c).program(p.Body)
	return c.diags
}

func (t Translator) printer(c *collector) *printer {
	indent := t.indent
	if indent <= 0 {
		indent = DefaultIndent
	}
	return &printer{source: t.source, indent: indent, diags: c}
}

// Translate is shorthand for New().Build(p).
func Translate(p *ast.Program) (string, error) {
	return New().Build(p)
}

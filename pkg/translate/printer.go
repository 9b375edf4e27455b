package translate

import (
	"github.com/leapstack-labs/js2py/pkg/ast"
)

// printer holds the state of one translation walk.
// With a nil collector it fails fast; otherwise failures are recorded and
// the walk continues with an empty rendering for the failed node.
type printer struct {
	source string
	indent int
	diags  *collector
}

// report records err in batch mode and returns nil, or returns err unchanged
// in fail-fast mode.
func (p *printer) report(err error) error {
	if p.diags == nil {
		return err
	}
	p.diags.error(err)
	return nil
}

func (p *printer) warn(code string, span ast.Span, msg string) {
	if p.diags != nil {
		p.diags.warn(code, span, msg)
	}
}

func (p *printer) unsupported(n ast.Node) error {
	return p.unsupportedAt(n.Kind(), n.Span())
}

func (p *printer) unsupportedAt(kind string, span ast.Span) error {
	return p.report(&UnsupportedConstructError{
		Kind:   kind,
		Source: span.Slice(p.source),
		Span:   span,
	})
}

func (p *printer) missing(context string, span ast.Span) error {
	return p.report(&MissingRequiredOperandError{Context: context, Span: span})
}

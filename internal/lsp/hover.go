package lsp

import (
	"strings"

	"github.com/leapstack-labs/js2py/pkg/ast"
)

// getHover previews the Python translation of the top-level statement under
// the cursor. It returns nil when the document does not parse or the cursor
// is outside every statement.
func (s *Server) getHover(params HoverParams) *Hover {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil
	}

	a := s.analyze(doc)
	if a.prog == nil {
		return nil
	}

	offset := positionToOffset(a.lines, len(a.text), params.Position)
	stmt := statementAt(a.prog.Body, offset)
	if stmt == nil {
		return nil
	}

	rng := spanRange(a.lines, a.text, stmt.Span())
	code, err := s.translator.Build(&ast.Program{
		Body:       []ast.Statement{stmt},
		SourceText: a.prog.SourceText,
	})
	if err != nil {
		return &Hover{
			Contents: MarkupContent{Kind: MarkupKindMarkdown, Value: "**Cannot translate:** " + err.Error()},
			Range:    &rng,
		}
	}
	if strings.TrimSpace(code) == "" {
		return nil
	}

	return &Hover{
		Contents: MarkupContent{Kind: MarkupKindMarkdown, Value: "```python\n" + code + "\n```"},
		Range:    &rng,
	}
}

// statementAt returns the statement whose span contains offset.
func statementAt(body []ast.Statement, offset int) ast.Statement {
	for _, stmt := range body {
		sp := stmt.Span()
		if offset >= sp.Start && offset < sp.End {
			return stmt
		}
	}
	return nil
}

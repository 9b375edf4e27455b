package lsp

import (
	"errors"

	"github.com/leapstack-labs/js2py/pkg/ast"
	"github.com/leapstack-labs/js2py/pkg/jsparse"
	"github.com/leapstack-labs/js2py/pkg/translate"
)

// diagnosticSource names js2py in the client's problem list.
const diagnosticSource = "js2py"

// analysis is the parse and check result for one document version.
// For TypeScript documents text is the type-stripped source and all
// positions refer to it.
type analysis struct {
	text  string
	lines []int
	prog  *ast.Program
	err   error
	diags []translate.Diagnostic
}

// analyze parses and checks doc, caching the result until the next update.
func (s *Server) analyze(doc *Document) *analysis {
	if doc.analysis != nil {
		return doc.analysis
	}

	a := &analysis{text: doc.Content}
	if doc.IsTypeScript() {
		text, err := jsparse.StripTypes(URIToPath(doc.URI), doc.Content)
		if err != nil {
			a.err = err
		} else {
			a.text = text
		}
	}
	a.lines = computeLineOffsets(a.text)

	if a.err == nil {
		a.prog, a.err = jsparse.Parse(a.text)
	}
	if a.err == nil {
		a.diags = s.translator.Check(a.prog)
	}

	doc.analysis = a
	return a
}

// publishDiagnostics checks the document and publishes every finding.
func (s *Server) publishDiagnostics(uri string) {
	doc := s.documents.Get(uri)
	if doc == nil {
		return
	}

	version := doc.Version
	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Version:     &version,
		Diagnostics: s.diagnostics(doc),
	})
}

// diagnostics converts the document's analysis into LSP diagnostics.
func (s *Server) diagnostics(doc *Document) []Diagnostic {
	a := s.analyze(doc)
	result := []Diagnostic{}

	if a.err != nil {
		return append(result, errorDiagnostic(a, a.err))
	}

	for _, d := range a.diags {
		result = append(result, Diagnostic{
			Range:    spanRange(a.lines, a.text, d.Span),
			Severity: lspSeverity(d.Severity),
			Code:     d.Code,
			Source:   diagnosticSource,
			Message:  d.Message,
		})
	}
	return result
}

// errorDiagnostic reports a document that could not be parsed. Syntax errors
// point at the offending token; other failures point at the start.
func errorDiagnostic(a *analysis, err error) Diagnostic {
	d := Diagnostic{
		Severity: DiagnosticSeverityError,
		Code:     "SYNTAX",
		Source:   diagnosticSource,
		Message:  err.Error(),
	}

	var syn *jsparse.SyntaxError
	if errors.As(err, &syn) {
		d.Message = syn.Msg
		end := syn.Offset + 1
		if end > len(a.text) {
			end = len(a.text)
		}
		d.Range = spanRange(a.lines, a.text, ast.Span{Start: syn.Offset, End: end})
	}
	return d
}

func lspSeverity(s translate.Severity) DiagnosticSeverity {
	if s == translate.SeverityWarning {
		return DiagnosticSeverityWarning
	}
	return DiagnosticSeverityError
}

// Package jsparse builds pkg/ast trees from JavaScript source using the
// tree-sitter JavaScript grammar.
//
// The lowering is deliberately shallow: every grammar kind the translator
// models maps to its pkg/ast node, and everything else becomes an
// UnsupportedStatement or UnsupportedExpression carrying the grammar kind
// name and span, so the translator can report it with the exact source text.
package jsparse

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/leapstack-labs/js2py/pkg/ast"
)

// Parse parses JavaScript source into a Program.
func Parse(src string) (*ast.Program, error) {
	return ParseContext(context.Background(), src)
}

// ParseContext parses JavaScript source into a Program.
// Parsing is aborted when ctx is cancelled.
func ParseContext(ctx context.Context, src string) (*ast.Program, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	content := []byte(src)
	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(root, content)
	}

	l := &lowerer{src: content}
	return &ast.Program{
		Body:       l.statements(root),
		SourceText: src,
	}, nil
}

// syntaxError locates the first ERROR or MISSING node in document order.
func syntaxError(root *sitter.Node, src []byte) error {
	bad := firstError(root)
	if bad == nil {
		bad = root
	}
	pt := bad.StartPoint()

	msg := "unexpected input"
	switch {
	case bad.IsMissing():
		msg = fmt.Sprintf("missing %q", bad.Type())
	case bad.EndByte() > bad.StartByte():
		text := bad.Content(src)
		if len(text) > 40 {
			text = text[:40] + "..."
		}
		msg = fmt.Sprintf("unexpected %q", text)
	}

	return &SyntaxError{
		Line:   int(pt.Row) + 1,
		Column: int(pt.Column) + 1,
		Offset: int(bad.StartByte()),
		Msg:    msg,
	}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}
	if n.IsMissing() || n.Type() == "ERROR" {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := firstError(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

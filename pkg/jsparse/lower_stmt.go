package jsparse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/js2py/pkg/ast"
)

// lowerer converts tree-sitter nodes into pkg/ast nodes.
type lowerer struct {
	src []byte
}

func (l *lowerer) span(n *sitter.Node) ast.Span {
	return ast.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

func (l *lowerer) text(n *sitter.Node) string {
	return n.Content(l.src)
}

// namedChildren returns the named children of n, comments excluded.
func namedChildren(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		c := n.NamedChild(i)
		if c == nil || c.Type() == "comment" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// statements lowers every statement child of a program or statement_block.
// Declarations with several declarators contribute several statements.
func (l *lowerer) statements(n *sitter.Node) []ast.Statement {
	var out []ast.Statement
	for _, c := range namedChildren(n) {
		if c.Type() == "hash_bang_line" {
			continue
		}
		if isDeclaration(c) {
			out = append(out, l.declaration(c)...)
			continue
		}
		out = append(out, l.stmt(c))
	}
	return out
}

func isDeclaration(n *sitter.Node) bool {
	return n.Type() == "lexical_declaration" || n.Type() == "variable_declaration"
}

// stmt lowers a node in single-statement position.
func (l *lowerer) stmt(n *sitter.Node) ast.Statement {
	if n == nil {
		return nil
	}
	loc := l.span(n)

	switch n.Type() {
	case "statement_block":
		return l.block(n)
	case "empty_statement":
		return &ast.EmptyStatement{Loc: loc}
	case "if_statement":
		return l.ifStmt(n)
	case "while_statement":
		return &ast.WhileStatement{
			Loc:  loc,
			Test: l.condition(n.ChildByFieldName("condition")),
			Body: l.stmt(n.ChildByFieldName("body")),
		}
	case "function_declaration":
		return l.function(n)
	case "return_statement":
		ret := &ast.ReturnStatement{Loc: loc}
		if children := namedChildren(n); len(children) > 0 {
			ret.Argument = l.expr(children[0])
		}
		return ret
	case "lexical_declaration", "variable_declaration":
		decls := l.declaration(n)
		if len(decls) == 1 {
			return decls[0]
		}
		return &ast.BlockStatement{Loc: loc, Body: decls}
	case "expression_statement":
		children := namedChildren(n)
		if len(children) == 0 {
			return &ast.EmptyStatement{Loc: loc}
		}
		return &ast.ExpressionStatement{Loc: loc, Expression: l.expr(children[0])}
	case "continue_statement":
		if n.ChildByFieldName("label") != nil {
			return &ast.UnsupportedStatement{Loc: loc, Type: "labeled_continue"}
		}
		return &ast.ContinueStatement{Loc: loc}
	case "break_statement":
		if n.ChildByFieldName("label") != nil {
			return &ast.UnsupportedStatement{Loc: loc, Type: "labeled_break"}
		}
		return &ast.BreakStatement{Loc: loc}
	default:
		return &ast.UnsupportedStatement{Loc: loc, Type: n.Type()}
	}
}

func (l *lowerer) block(n *sitter.Node) *ast.BlockStatement {
	return &ast.BlockStatement{Loc: l.span(n), Body: l.statements(n)}
}

func (l *lowerer) ifStmt(n *sitter.Node) ast.Statement {
	s := &ast.IfStatement{
		Loc:        l.span(n),
		Test:       l.condition(n.ChildByFieldName("condition")),
		Consequent: l.stmt(n.ChildByFieldName("consequence")),
	}
	if alt := n.ChildByFieldName("alternative"); alt != nil {
		// else_clause wraps the statement that follows `else`.
		if children := namedChildren(alt); len(children) > 0 {
			s.Alternate = l.stmt(children[0])
		} else {
			s.Alternate = &ast.EmptyStatement{Loc: l.span(alt)}
		}
	}
	return s
}

// condition unwraps the parentheses the grammar requires around if/while tests.
func (l *lowerer) condition(n *sitter.Node) ast.Expression {
	if n == nil {
		return nil
	}
	if n.Type() == "parenthesized_expression" {
		if children := namedChildren(n); len(children) == 1 {
			return l.expr(children[0])
		}
	}
	return l.expr(n)
}

func (l *lowerer) function(n *sitter.Node) ast.Statement {
	loc := l.span(n)
	if first := n.Child(0); first != nil && first.Type() == "async" {
		return &ast.UnsupportedStatement{Loc: loc, Type: "async_function_declaration"}
	}

	fn := &ast.FunctionDeclaration{Loc: loc}
	if name := n.ChildByFieldName("name"); name != nil {
		fn.ID = &ast.Identifier{Loc: l.span(name), Name: l.text(name)}
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		for _, p := range namedChildren(params) {
			fn.Params = append(fn.Params, l.expr(p))
		}
	}
	if body := n.ChildByFieldName("body"); body != nil {
		fn.Body = l.block(body)
	}
	return fn
}

// declaration lowers var/let/const to one VariableDeclaration per declarator.
func (l *lowerer) declaration(n *sitter.Node) []ast.Statement {
	kind := ast.DeclarationVar
	if first := n.Child(0); first != nil {
		switch first.Type() {
		case "let":
			kind = ast.DeclarationLet
		case "const":
			kind = ast.DeclarationConst
		}
	}

	var out []ast.Statement
	for _, d := range namedChildren(n) {
		if d.Type() != "variable_declarator" {
			continue
		}
		name := d.ChildByFieldName("name")
		if name == nil || name.Type() != "identifier" {
			out = append(out, &ast.UnsupportedStatement{Loc: l.span(d), Type: "destructuring_declaration"})
			continue
		}
		decl := &ast.VariableDeclaration{
			Loc:      l.span(d),
			DeclKind: kind,
			ID:       &ast.Identifier{Loc: l.span(name), Name: l.text(name)},
		}
		if value := d.ChildByFieldName("value"); value != nil {
			decl.Init = l.expr(value)
		}
		out = append(out, decl)
	}
	return out
}

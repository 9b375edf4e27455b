package translate

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/js2py/pkg/ast"
)

func (p *printer) program(body []ast.Statement) (string, error) {
	return p.statements(body)
}

// statements renders a statement list with empty statements dropped,
// joined by newlines and right-trimmed.
func (p *printer) statements(body []ast.Statement) (string, error) {
	lines := make([]string, 0, len(body))
	for _, s := range body {
		if _, ok := s.(*ast.EmptyStatement); ok {
			continue
		}
		line, err := p.stmt(s)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace), nil
}

func (p *printer) stmt(s ast.Statement) (string, error) {
	switch stmt := s.(type) {
	case *ast.BlockStatement:
		return p.statements(stmt.Body)
	case *ast.IfStatement:
		return p.ifStmt(stmt)
	case *ast.EmptyStatement:
		return "", nil
	case *ast.FunctionDeclaration:
		return p.function(stmt)
	case *ast.ReturnStatement:
		return p.returnStmt(stmt)
	case *ast.VariableDeclaration:
		return p.variable(stmt)
	case *ast.WhileStatement:
		return p.whileStmt(stmt)
	case *ast.ExpressionStatement:
		return p.expr(stmt.Expression)
	case *ast.ContinueStatement:
		return "continue", nil
	case *ast.BreakStatement:
		return "break", nil
	case nil:
		return "", nil
	default:
		return "", p.unsupported(stmt)
	}
}

// suite renders a controlled body: placeholder when empty, then indented.
func (p *printer) suite(s ast.Statement) (string, error) {
	body, err := p.stmt(s)
	if err != nil {
		return "", err
	}
	return Indent(withPlaceholder(body), p.indent), nil
}

func (p *printer) ifStmt(s *ast.IfStatement) (string, error) {
	test, err := p.expr(s.Test)
	if err != nil {
		return "", err
	}
	consequent, err := p.suite(s.Consequent)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("if ")
	sb.WriteString(test)
	sb.WriteString(":\n")
	sb.WriteString(consequent)

	if s.Alternate != nil {
		alternate, err := p.suite(s.Alternate)
		if err != nil {
			return "", err
		}
		sb.WriteString("\nelse:\n")
		sb.WriteString(alternate)
	}
	return sb.String(), nil
}

func (p *printer) whileStmt(s *ast.WhileStatement) (string, error) {
	test, err := p.expr(s.Test)
	if err != nil {
		return "", err
	}
	body, err := p.suite(s.Body)
	if err != nil {
		return "", err
	}
	return "while " + test + ":\n" + body, nil
}

func (p *printer) function(s *ast.FunctionDeclaration) (string, error) {
	name := ""
	if s.ID == nil {
		if err := p.missing("function name", s.Loc); err != nil {
			return "", err
		}
	} else {
		name = s.ID.Name
	}

	params := make([]string, 0, len(s.Params))
	for _, param := range s.Params {
		id, ok := param.(*ast.Identifier)
		if !ok {
			if err := p.unsupportedAt("parameter "+param.Kind(), param.Span()); err != nil {
				return "", err
			}
			continue
		}
		params = append(params, id.Name)
	}

	body := ""
	if s.Body != nil {
		var err error
		if body, err = p.statements(s.Body.Body); err != nil {
			return "", err
		}
	}

	return "def " + name + "(" + strings.Join(params, ", ") + "):\n" +
		Indent(withPlaceholder(body), p.indent), nil
}

func (p *printer) returnStmt(s *ast.ReturnStatement) (string, error) {
	if s.Argument == nil {
		return "return", nil
	}
	arg, err := p.expr(s.Argument)
	if err != nil {
		return "", err
	}
	return "return " + arg, nil
}

func (p *printer) variable(s *ast.VariableDeclaration) (string, error) {
	name := ""
	if s.ID == nil {
		if err := p.missing("variable name", s.Loc); err != nil {
			return "", err
		}
	} else {
		name = s.ID.Name
	}
	if s.Init == nil {
		return "", p.missing("initializer for "+name, s.Loc)
	}
	value, err := p.expr(s.Init)
	if err != nil {
		return "", err
	}
	return name + " = " + value, nil
}

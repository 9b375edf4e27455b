package translate

import (
	"strings"

	"github.com/leapstack-labs/js2py/pkg/ast"
)

func (p *printer) expr(e ast.Expression) (string, error) {
	switch expr := e.(type) {
	case *ast.BooleanLiteral:
		if expr.Value {
			return "True", nil
		}
		return "False", nil
	case *ast.NumericLiteral:
		return expr.Raw, nil
	case *ast.StringLiteral:
		return expr.Value, nil
	case *ast.Identifier:
		return expr.Name, nil
	case *ast.NullLiteral:
		return "None", nil
	case *ast.UnaryExpression:
		return p.unary(expr)
	case *ast.BinaryExpression:
		return p.binary(expr)
	case *ast.LogicalExpression:
		return p.logical(expr)
	case *ast.StaticMemberExpression:
		return p.staticMember(expr)
	case *ast.ComputedMemberExpression:
		return p.computedMember(expr)
	case *ast.ArrayExpression:
		return p.array(expr)
	case *ast.AssignmentExpression:
		return p.assignment(expr)
	case *ast.ObjectExpression:
		return p.object(expr)
	case *ast.CallExpression:
		return p.call(expr)
	case *ast.ParenthesizedExpression:
		inner, err := p.expr(expr.Expression)
		if err != nil {
			return "", err
		}
		return "(" + inner + ")", nil
	case *ast.SpreadElement:
		arg, err := p.expr(expr.Argument)
		if err != nil {
			return "", err
		}
		return "*" + arg, nil
	case nil:
		return "", p.missing("expression", ast.Span{})
	default:
		return "", p.unsupported(expr)
	}
}

func (p *printer) unary(e *ast.UnaryExpression) (string, error) {
	arg, err := p.expr(e.Argument)
	if err != nil {
		return "", err
	}
	op, ok := unaryOperator(e.Operator)
	if !ok {
		return "", p.unsupportedAt("unary operator "+e.Operator.String(), e.Loc)
	}
	switch e.Operator {
	case ast.UnaryNot:
		return "(" + op + arg + ")", nil
	case ast.UnaryMinus:
		p.warn(CodeNegationLiteral, e.Loc, "unary negation is emitted as a literal 0 prefix")
	}
	return op + arg, nil
}

func (p *printer) binary(e *ast.BinaryExpression) (string, error) {
	left, err := p.expr(e.Left)
	if err != nil {
		return "", err
	}
	right, err := p.expr(e.Right)
	if err != nil {
		return "", err
	}
	op, ok := binaryOperator(e.Operator)
	if !ok {
		return "", p.unsupportedAt("binary operator "+e.Operator.String(), e.Loc)
	}
	if e.Operator == ast.BinaryStrictEqual || e.Operator == ast.BinaryStrictNotEqual {
		p.warn(CodeIdentityComparison, e.Loc, e.Operator.String()+" is emitted as identity comparison '"+op+"'")
	}
	return left + " " + op + " " + right, nil
}

func (p *printer) logical(e *ast.LogicalExpression) (string, error) {
	left, err := p.expr(e.Left)
	if err != nil {
		return "", err
	}
	right, err := p.expr(e.Right)
	if err != nil {
		return "", err
	}
	op, ok := logicalOperator(e.Operator)
	if !ok {
		return "", p.unsupportedAt("logical operator "+e.Operator.String(), e.Loc)
	}
	return left + " " + op + " " + right, nil
}

func (p *printer) staticMember(e *ast.StaticMemberExpression) (string, error) {
	object, err := p.expr(e.Object)
	if err != nil {
		return "", err
	}
	if e.Property.Name == "length" {
		return "len(" + object + ")", nil
	}
	return object + "." + e.Property.Name, nil
}

func (p *printer) computedMember(e *ast.ComputedMemberExpression) (string, error) {
	object, err := p.expr(e.Object)
	if err != nil {
		return "", err
	}
	index, err := p.expr(e.Expression)
	if err != nil {
		return "", err
	}
	return object + "[" + index + "]", nil
}

func (p *printer) array(e *ast.ArrayExpression) (string, error) {
	elems := make([]string, 0, len(e.Elements))
	for _, el := range e.Elements {
		if _, ok := el.(*ast.Elision); ok {
			elems = append(elems, "None")
			continue
		}
		expr, ok := el.(ast.Expression)
		if !ok {
			if err := p.unsupported(el); err != nil {
				return "", err
			}
			continue
		}
		s, err := p.expr(expr)
		if err != nil {
			return "", err
		}
		elems = append(elems, s)
	}
	return "[" + strings.Join(elems, ", ") + "]", nil
}

func (p *printer) assignment(e *ast.AssignmentExpression) (string, error) {
	var (
		left string
		err  error
	)
	switch target := e.Left.(type) {
	case *ast.Identifier:
		left = target.Name
	case *ast.StaticMemberExpression:
		left, err = p.staticMember(target)
	case *ast.ComputedMemberExpression:
		left, err = p.computedMember(target)
	default:
		kind := "<nil>"
		span := e.Loc
		if target != nil {
			kind, span = target.Kind(), target.Span()
		}
		err = p.report(&InvalidAssignmentTargetError{Kind: kind, Span: span})
	}
	if err != nil {
		return "", err
	}

	right, err := p.expr(e.Right)
	if err != nil {
		return "", err
	}
	op, ok := assignmentOperator(e.Operator)
	if !ok {
		return "", p.unsupportedAt("assignment operator "+e.Operator.String(), e.Loc)
	}
	return left + " " + op + " " + right, nil
}

func (p *printer) object(e *ast.ObjectExpression) (string, error) {
	props := make([]string, 0, len(e.Properties))
	for _, member := range e.Properties {
		switch m := member.(type) {
		case *ast.Property:
			key, err := p.propertyKey(m.Key)
			if err != nil {
				return "", err
			}
			value, err := p.expr(m.Value)
			if err != nil {
				return "", err
			}
			props = append(props, key+": "+value)
		case *ast.SpreadElement:
			arg, err := p.expr(m.Argument)
			if err != nil {
				return "", err
			}
			props = append(props, "**"+arg)
		default:
			if err := p.unsupported(m); err != nil {
				return "", err
			}
		}
	}
	return "{" + strings.Join(props, ", ") + "}", nil
}

// propertyKey quotes identifier keys; string and numeric keys pass through.
func (p *printer) propertyKey(k ast.PropertyKey) (string, error) {
	switch key := k.(type) {
	case *ast.Identifier:
		return `"` + key.Name + `"`, nil
	case *ast.StringLiteral:
		return key.Value, nil
	case *ast.NumericLiteral:
		return key.Raw, nil
	case *ast.ComputedPropertyKey:
		return p.expr(key.Expression)
	case nil:
		return "", p.missing("property key", ast.Span{})
	default:
		return "", p.unsupported(key)
	}
}

func (p *printer) call(e *ast.CallExpression) (string, error) {
	member, isMember := e.Callee.(*ast.StaticMemberExpression)

	// .push(...) reuses the object rendering so it is walked only once.
	var (
		callee string
		object string
		err    error
	)
	if isMember && member.Property.Name == "push" {
		object, err = p.expr(member.Object)
		callee = object + ".push"
	} else {
		callee, err = p.expr(e.Callee)
	}
	if err != nil {
		return "", err
	}

	args := make([]string, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		s, err := p.expr(arg)
		if err != nil {
			return "", err
		}
		args = append(args, s)
	}
	list := strings.Join(args, ", ")

	if isMember {
		if id, ok := member.Object.(*ast.Identifier); ok && id.Name == "console" && member.Property.Name == "log" {
			return "print(" + list + ")", nil
		}
		if member.Property.Name == "push" {
			return object + ".append(" + list + ")", nil
		}
	}
	if id, ok := e.Callee.(*ast.Identifier); ok && id.Name == "parseFloat" {
		return "float(" + list + ")", nil
	}
	return callee + "(" + list + ")", nil
}

package jsparse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/js2py/pkg/ast"
)

func (l *lowerer) expr(n *sitter.Node) ast.Expression {
	if n == nil {
		return nil
	}
	loc := l.span(n)

	switch n.Type() {
	case "true":
		return &ast.BooleanLiteral{Loc: loc, Value: true}
	case "false":
		return &ast.BooleanLiteral{Loc: loc, Value: false}
	case "null":
		return &ast.NullLiteral{Loc: loc}
	case "undefined", "identifier", "shorthand_property_identifier":
		return &ast.Identifier{Loc: loc, Name: l.text(n)}
	case "number":
		return &ast.NumericLiteral{Loc: loc, Raw: l.text(n)}
	case "string":
		return &ast.StringLiteral{Loc: loc, Value: l.text(n)}
	case "unary_expression":
		return l.unary(n)
	case "binary_expression":
		return l.binary(n)
	case "member_expression":
		return l.member(n)
	case "subscript_expression":
		if hasChildType(n, "optional_chain") {
			return &ast.UnsupportedExpression{Loc: loc, Type: "optional_subscript"}
		}
		return &ast.ComputedMemberExpression{
			Loc:        loc,
			Object:     l.expr(n.ChildByFieldName("object")),
			Expression: l.expr(n.ChildByFieldName("index")),
		}
	case "call_expression":
		return l.call(n)
	case "array":
		return l.array(n)
	case "object":
		return l.object(n)
	case "assignment_expression":
		return &ast.AssignmentExpression{
			Loc:      loc,
			Operator: ast.Assign,
			Left:     l.expr(n.ChildByFieldName("left")),
			Right:    l.expr(n.ChildByFieldName("right")),
		}
	case "augmented_assignment_expression":
		op, ok := ast.ParseAssignmentOperator(l.operator(n))
		if !ok {
			return &ast.UnsupportedExpression{Loc: loc, Type: n.Type()}
		}
		return &ast.AssignmentExpression{
			Loc:      loc,
			Operator: op,
			Left:     l.expr(n.ChildByFieldName("left")),
			Right:    l.expr(n.ChildByFieldName("right")),
		}
	case "parenthesized_expression":
		children := namedChildren(n)
		if len(children) != 1 || children[0].Type() == "sequence_expression" {
			return &ast.UnsupportedExpression{Loc: loc, Type: "sequence_expression"}
		}
		return &ast.ParenthesizedExpression{Loc: loc, Expression: l.expr(children[0])}
	case "spread_element":
		var arg ast.Expression
		if children := namedChildren(n); len(children) > 0 {
			arg = l.expr(children[0])
		}
		return &ast.SpreadElement{Loc: loc, Argument: arg}
	default:
		return &ast.UnsupportedExpression{Loc: loc, Type: n.Type()}
	}
}

// operator returns the text of the `operator` field.
func (l *lowerer) operator(n *sitter.Node) string {
	if op := n.ChildByFieldName("operator"); op != nil {
		return op.Type()
	}
	return ""
}

func hasChildType(n *sitter.Node, typ string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c != nil && c.Type() == typ {
			return true
		}
	}
	return false
}

func (l *lowerer) unary(n *sitter.Node) ast.Expression {
	loc := l.span(n)
	op, ok := ast.ParseUnaryOperator(l.operator(n))
	if !ok {
		return &ast.UnsupportedExpression{Loc: loc, Type: n.Type()}
	}
	return &ast.UnaryExpression{
		Loc:      loc,
		Operator: op,
		Argument: l.expr(n.ChildByFieldName("argument")),
	}
}

func (l *lowerer) binary(n *sitter.Node) ast.Expression {
	loc := l.span(n)
	text := l.operator(n)
	left := l.expr(n.ChildByFieldName("left"))
	right := l.expr(n.ChildByFieldName("right"))

	if op, ok := ast.ParseLogicalOperator(text); ok {
		return &ast.LogicalExpression{Loc: loc, Left: left, Operator: op, Right: right}
	}
	op, ok := ast.ParseBinaryOperator(text)
	if !ok {
		return &ast.UnsupportedExpression{Loc: loc, Type: n.Type()}
	}
	return &ast.BinaryExpression{Loc: loc, Left: left, Operator: op, Right: right}
}

func (l *lowerer) member(n *sitter.Node) ast.Expression {
	loc := l.span(n)
	if hasChildType(n, "optional_chain") {
		return &ast.UnsupportedExpression{Loc: loc, Type: "optional_member_expression"}
	}
	prop := n.ChildByFieldName("property")
	if prop == nil || prop.Type() != "property_identifier" {
		return &ast.UnsupportedExpression{Loc: loc, Type: "private_member_expression"}
	}
	return &ast.StaticMemberExpression{
		Loc:      loc,
		Object:   l.expr(n.ChildByFieldName("object")),
		Property: &ast.Identifier{Loc: l.span(prop), Name: l.text(prop)},
	}
}

func (l *lowerer) call(n *sitter.Node) ast.Expression {
	loc := l.span(n)
	args := n.ChildByFieldName("arguments")
	if args == nil || args.Type() != "arguments" {
		return &ast.UnsupportedExpression{Loc: loc, Type: "tagged_template"}
	}
	if hasChildType(n, "optional_chain") {
		return &ast.UnsupportedExpression{Loc: loc, Type: "optional_call"}
	}

	call := &ast.CallExpression{
		Loc:    loc,
		Callee: l.expr(n.ChildByFieldName("function")),
	}
	for _, a := range namedChildren(args) {
		call.Arguments = append(call.Arguments, l.expr(a))
	}
	return call
}

// array lowers an array literal. A comma not preceded by an element since
// the previous comma (or the opening bracket) marks a hole, so [1,,3] has one
// hole and the trailing comma in [1,2,] adds none.
func (l *lowerer) array(n *sitter.Node) ast.Expression {
	arr := &ast.ArrayExpression{Loc: l.span(n)}
	sawElem := false
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		switch {
		case c.Type() == ",":
			if !sawElem {
				arr.Elements = append(arr.Elements, &ast.Elision{Loc: ast.Span{Start: int(c.StartByte()), End: int(c.StartByte())}})
			}
			sawElem = false
		case c.IsNamed() && c.Type() != "comment":
			arr.Elements = append(arr.Elements, l.expr(c))
			sawElem = true
		}
	}
	return arr
}

func (l *lowerer) object(n *sitter.Node) ast.Expression {
	obj := &ast.ObjectExpression{Loc: l.span(n)}
	for _, c := range namedChildren(n) {
		loc := l.span(c)
		switch c.Type() {
		case "pair":
			obj.Properties = append(obj.Properties, &ast.Property{
				Loc:   loc,
				Key:   l.propertyKey(c.ChildByFieldName("key")),
				Value: l.expr(c.ChildByFieldName("value")),
			})
		case "shorthand_property_identifier":
			name := l.text(c)
			obj.Properties = append(obj.Properties, &ast.Property{
				Loc:       loc,
				Key:       &ast.Identifier{Loc: loc, Name: name},
				Value:     &ast.Identifier{Loc: loc, Name: name},
				Shorthand: true,
			})
		case "spread_element":
			var arg ast.Expression
			if children := namedChildren(c); len(children) > 0 {
				arg = l.expr(children[0])
			}
			obj.Properties = append(obj.Properties, &ast.SpreadElement{Loc: loc, Argument: arg})
		default:
			// Methods, getters and setters have no dictionary equivalent.
			obj.Properties = append(obj.Properties, &ast.Property{
				Loc:   loc,
				Key:   &ast.StringLiteral{Loc: loc, Value: `"` + c.Type() + `"`},
				Value: &ast.UnsupportedExpression{Loc: loc, Type: c.Type()},
			})
		}
	}
	return obj
}

func (l *lowerer) propertyKey(n *sitter.Node) ast.PropertyKey {
	if n == nil {
		return nil
	}
	loc := l.span(n)
	switch n.Type() {
	case "property_identifier":
		return &ast.Identifier{Loc: loc, Name: l.text(n)}
	case "string":
		return &ast.StringLiteral{Loc: loc, Value: l.text(n)}
	case "number":
		return &ast.NumericLiteral{Loc: loc, Raw: l.text(n)}
	case "computed_property_name":
		var inner ast.Expression
		if children := namedChildren(n); len(children) > 0 {
			inner = l.expr(children[0])
		}
		return &ast.ComputedPropertyKey{Loc: loc, Expression: inner}
	default:
		return &ast.ComputedPropertyKey{Loc: loc, Expression: &ast.UnsupportedExpression{Loc: loc, Type: n.Type()}}
	}
}

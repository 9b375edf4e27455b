package ast

// ---------- Expression Types ----------

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Loc   Span
	Value bool
}

// NumericLiteral keeps the literal exactly as written.
type NumericLiteral struct {
	Loc Span
	Raw string
}

// StringLiteral keeps the literal exactly as written, quotes included.
type StringLiteral struct {
	Loc   Span
	Value string
}

// NullLiteral is `null`.
type NullLiteral struct {
	Loc Span
}

// Identifier is a name reference or an identifier-name property.
type Identifier struct {
	Loc  Span
	Name string
}

// UnaryExpression is `Operator Argument`.
type UnaryExpression struct {
	Loc      Span
	Operator UnaryOperator
	Argument Expression
}

// BinaryExpression is `Left Operator Right` for non-logical operators.
type BinaryExpression struct {
	Loc      Span
	Left     Expression
	Operator BinaryOperator
	Right    Expression
}

// LogicalExpression is `Left Operator Right` for &&, || and ??.
type LogicalExpression struct {
	Loc      Span
	Left     Expression
	Operator LogicalOperator
	Right    Expression
}

// StaticMemberExpression is `Object.Property`.
type StaticMemberExpression struct {
	Loc      Span
	Object   Expression
	Property *Identifier
}

// ComputedMemberExpression is `Object[Expression]`.
type ComputedMemberExpression struct {
	Loc        Span
	Object     Expression
	Expression Expression
}

// ArrayExpression is `[Elements...]`; holes are *Elision entries.
type ArrayExpression struct {
	Loc      Span
	Elements []ArrayElement
}

// Elision is a hole in an array literal, e.g. the middle of `[1, , 3]`.
type Elision struct {
	Loc Span
}

// AssignmentExpression is `Left Operator Right`.
// Left is whatever the producer parsed; only identifiers and member
// expressions are valid targets.
type AssignmentExpression struct {
	Loc      Span
	Operator AssignmentOperator
	Left     Expression
	Right    Expression
}

// ObjectMember is an entry of an object literal: *Property or *SpreadElement.
type ObjectMember interface {
	Node
	objectMemberNode()
}

// PropertyKey is *Identifier, *StringLiteral, *NumericLiteral or
// *ComputedPropertyKey.
type PropertyKey interface {
	Node
	propertyKeyNode()
}

// ComputedPropertyKey is `[Expression]` in key position.
type ComputedPropertyKey struct {
	Loc        Span
	Expression Expression
}

// Property is `Key: Value`. Shorthand properties (`{a}`) set Shorthand and
// carry the identifier as both key and value.
type Property struct {
	Loc       Span
	Key       PropertyKey
	Value     Expression
	Shorthand bool
}

// ObjectExpression is `{Properties...}`.
type ObjectExpression struct {
	Loc        Span
	Properties []ObjectMember
}

// CallExpression is `Callee(Arguments...)`.
type CallExpression struct {
	Loc       Span
	Callee    Expression
	Arguments []Expression
}

// ParenthesizedExpression is `(Expression)` as written in the source.
type ParenthesizedExpression struct {
	Loc        Span
	Expression Expression
}

// SpreadElement is `...Argument` inside an array, call or object.
type SpreadElement struct {
	Loc      Span
	Argument Expression
}

// UnsupportedExpression stands in for any expression kind the tree does not
// model (arrow functions, templates, ternaries, ...). Type is the grammar kind.
type UnsupportedExpression struct {
	Loc  Span
	Type string
}

// Kind implements Node.
func (e *UnsupportedExpression) Kind() string { return e.Type }

func (*BooleanLiteral) exprNode()           {}
func (*NumericLiteral) exprNode()           {}
func (*StringLiteral) exprNode()            {}
func (*NullLiteral) exprNode()              {}
func (*Identifier) exprNode()               {}
func (*UnaryExpression) exprNode()          {}
func (*BinaryExpression) exprNode()         {}
func (*LogicalExpression) exprNode()        {}
func (*StaticMemberExpression) exprNode()   {}
func (*ComputedMemberExpression) exprNode() {}
func (*ArrayExpression) exprNode()          {}
func (*AssignmentExpression) exprNode()     {}
func (*ObjectExpression) exprNode()         {}
func (*CallExpression) exprNode()           {}
func (*ParenthesizedExpression) exprNode()  {}
func (*SpreadElement) exprNode()            {}
func (*UnsupportedExpression) exprNode()    {}

func (*BooleanLiteral) arrayElementNode()           {}
func (*NumericLiteral) arrayElementNode()           {}
func (*StringLiteral) arrayElementNode()            {}
func (*NullLiteral) arrayElementNode()              {}
func (*Identifier) arrayElementNode()               {}
func (*UnaryExpression) arrayElementNode()          {}
func (*BinaryExpression) arrayElementNode()         {}
func (*LogicalExpression) arrayElementNode()        {}
func (*StaticMemberExpression) arrayElementNode()   {}
func (*ComputedMemberExpression) arrayElementNode() {}
func (*ArrayExpression) arrayElementNode()          {}
func (*AssignmentExpression) arrayElementNode()     {}
func (*ObjectExpression) arrayElementNode()         {}
func (*CallExpression) arrayElementNode()           {}
func (*ParenthesizedExpression) arrayElementNode()  {}
func (*SpreadElement) arrayElementNode()            {}
func (*UnsupportedExpression) arrayElementNode()    {}
func (*Elision) arrayElementNode()                  {}

func (*Property) objectMemberNode()      {}
func (*SpreadElement) objectMemberNode() {}

func (*Identifier) propertyKeyNode()          {}
func (*StringLiteral) propertyKeyNode()       {}
func (*NumericLiteral) propertyKeyNode()      {}
func (*ComputedPropertyKey) propertyKeyNode() {}

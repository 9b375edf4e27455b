package ast

// ---------- Statement Types ----------

// BlockStatement is a braced statement list.
type BlockStatement struct {
	Loc  Span
	Body []Statement
}

// IfStatement is `if (Test) Consequent else Alternate`.
type IfStatement struct {
	Loc        Span
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil when there is no else branch
}

// EmptyStatement is a lone `;`.
type EmptyStatement struct {
	Loc Span
}

// FunctionDeclaration is `function ID(Params) { Body }`.
type FunctionDeclaration struct {
	Loc    Span
	ID     *Identifier // nil for anonymous functions
	Params []Expression
	Body   *BlockStatement // nil for a bodiless declaration
}

// ReturnStatement is `return Argument`.
type ReturnStatement struct {
	Loc      Span
	Argument Expression // nil for a bare return
}

// DeclarationKind is the keyword that introduced a variable binding.
type DeclarationKind string

// DeclarationKind constants.
const (
	DeclarationVar   DeclarationKind = "var"
	DeclarationLet   DeclarationKind = "let"
	DeclarationConst DeclarationKind = "const"
)

// VariableDeclaration binds a single identifier.
type VariableDeclaration struct {
	Loc      Span
	DeclKind DeclarationKind
	ID       *Identifier
	Init     Expression // nil when the declaration has no initializer
}

// WhileStatement is `while (Test) Body`.
type WhileStatement struct {
	Loc  Span
	Test Expression
	Body Statement
}

// ExpressionStatement wraps an expression used as a statement.
type ExpressionStatement struct {
	Loc        Span
	Expression Expression
}

// ContinueStatement is `continue`.
type ContinueStatement struct {
	Loc Span
}

// BreakStatement is `break`.
type BreakStatement struct {
	Loc Span
}

// UnsupportedStatement stands in for any statement kind the tree does not
// model (for, switch, try, class, ...). Type is the grammar kind name.
type UnsupportedStatement struct {
	Loc  Span
	Type string
}

// Kind implements Node.
func (s *UnsupportedStatement) Kind() string { return s.Type }

func (*BlockStatement) stmtNode()       {}
func (*IfStatement) stmtNode()          {}
func (*EmptyStatement) stmtNode()       {}
func (*FunctionDeclaration) stmtNode()  {}
func (*ReturnStatement) stmtNode()      {}
func (*VariableDeclaration) stmtNode()  {}
func (*WhileStatement) stmtNode()       {}
func (*ExpressionStatement) stmtNode()  {}
func (*ContinueStatement) stmtNode()    {}
func (*BreakStatement) stmtNode()       {}
func (*UnsupportedStatement) stmtNode() {}

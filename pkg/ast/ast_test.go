package ast_test

import (
	"testing"

	"github.com/leapstack-labs/js2py/pkg/ast"
	"github.com/stretchr/testify/assert"
)

func TestSpan_Slice(t *testing.T) {
	src := "if (a) b"

	tests := []struct {
		name string
		span ast.Span
		want string
	}{
		{"full", ast.Span{Start: 0, End: 8}, "if (a) b"},
		{"inner", ast.Span{Start: 4, End: 5}, "a"},
		{"empty", ast.Span{Start: 3, End: 3}, ""},
		{"clamped end", ast.Span{Start: 7, End: 100}, "b"},
		{"negative start", ast.Span{Start: -2, End: 2}, "if"},
		{"inverted", ast.Span{Start: 5, End: 2}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.span.Slice(src))
		})
	}
}

func TestSpan_IsValid(t *testing.T) {
	assert.True(t, ast.Span{Start: 0, End: 0}.IsValid(0))
	assert.True(t, ast.Span{Start: 2, End: 5}.IsValid(5))
	assert.False(t, ast.Span{Start: 2, End: 6}.IsValid(5))
	assert.False(t, ast.Span{Start: 3, End: 2}.IsValid(5))
	assert.False(t, ast.Span{Start: -1, End: 2}.IsValid(5))
	assert.Equal(t, 3, ast.Span{Start: 2, End: 5}.Len())
}

func TestNode_KindAndSpan(t *testing.T) {
	tests := []struct {
		node ast.Node
		kind string
	}{
		{&ast.IfStatement{Loc: ast.Span{Start: 1, End: 2}}, "IfStatement"},
		{&ast.WhileStatement{Loc: ast.Span{Start: 1, End: 2}}, "WhileStatement"},
		{&ast.BinaryExpression{Loc: ast.Span{Start: 1, End: 2}}, "BinaryExpression"},
		{&ast.Elision{Loc: ast.Span{Start: 1, End: 2}}, "Elision"},
		{&ast.Property{Loc: ast.Span{Start: 1, End: 2}}, "Property"},
		{&ast.UnsupportedStatement{Loc: ast.Span{Start: 1, End: 2}, Type: "for_statement"}, "for_statement"},
		{&ast.UnsupportedExpression{Loc: ast.Span{Start: 1, End: 2}, Type: "arrow_function"}, "arrow_function"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.node.Kind())
			assert.Equal(t, ast.Span{Start: 1, End: 2}, tt.node.Span())
		})
	}
}

func TestProgram_Source(t *testing.T) {
	p := &ast.Program{SourceText: "x = 1;"}
	id := &ast.Identifier{Loc: ast.Span{Start: 0, End: 1}, Name: "x"}
	assert.Equal(t, "x", p.Source(id))
}

func TestOperators_RoundTrip(t *testing.T) {
	for _, s := range []string{"==", "!=", "===", "!==", "<", "<=", ">", ">=", "+", "-", "*", "/", "%", "**", "|", "^", "&", "<<", ">>", ">>>", "in", "instanceof"} {
		op, ok := ast.ParseBinaryOperator(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, op.String())
	}
	for _, s := range []string{"!", "+", "-", "~", "typeof", "void", "delete"} {
		op, ok := ast.ParseUnaryOperator(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, op.String())
	}
	for _, s := range []string{"&&", "||", "??"} {
		op, ok := ast.ParseLogicalOperator(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, op.String())
	}
	for _, s := range []string{"=", "+=", "-=", "*=", "/=", "%=", "**=", "<<=", ">>=", ">>>=", "|=", "^=", "&=", "&&=", "||=", "??="} {
		op, ok := ast.ParseAssignmentOperator(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, op.String())
	}

	_, ok := ast.ParseBinaryOperator("<=>")
	assert.False(t, ok)
	assert.Equal(t, "?", ast.BinaryOperator(0).String())
}

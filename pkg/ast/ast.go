package ast

// Span is a half-open byte range [Start, End) into Program.SourceText.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// IsValid reports whether the span is well formed for a source of length n.
func (s Span) IsValid(n int) bool {
	return s.Start >= 0 && s.Start <= s.End && s.End <= n
}

// Slice returns the source text covered by the span.
// Out-of-range spans are clamped rather than panicking.
func (s Span) Slice(src string) string {
	start, end := s.Start, s.End
	if start < 0 {
		start = 0
	}
	if end > len(src) {
		end = len(src)
	}
	if start > end {
		return ""
	}
	return src[start:end]
}

// Node is the base interface for all syntax nodes.
type Node interface {
	// Span returns the source byte range that produced the node.
	Span() Span
	// Kind returns the variant name, e.g. "IfStatement".
	Kind() string
}

// Statement is a marker interface for statement nodes.
type Statement interface {
	Node
	stmtNode()
}

// ArrayElement is an entry of an array literal: an Expression or an Elision.
type ArrayElement interface {
	Node
	arrayElementNode()
}

// Expression is a marker interface for expression nodes.
type Expression interface {
	ArrayElement
	exprNode()
}

// Program is the root of a parsed source file.
type Program struct {
	Body       []Statement
	SourceText string
}

// Source returns the text a node was parsed from.
func (p *Program) Source(n Node) string {
	return n.Span().Slice(p.SourceText)
}

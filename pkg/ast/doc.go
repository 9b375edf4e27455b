// Package ast defines the syntax tree consumed by the translator.
//
// The tree is a closed set of node types:
//   - Statement variants (ast_stmt.go)
//   - Expression variants and array/object members (ast_expr.go)
//   - Operator enums shared by producers and consumers (operators.go)
//
// Every node reports the half-open byte range of the source it was built
// from via Span(). Span and Kind accessors live in ast_gen.go, which is
// generated by scripts/genast.
//
// The Golden Rule: pkg/ast imports ONLY stdlib.
package ast

//go:generate go run ../../scripts/genast -out ast_gen.go

// Package translate lowers a JavaScript syntax tree (pkg/ast) to Python
// source text.
//
// A Translator is a small value holding the bound source text and an indent
// width. Build walks the tree depth first and stops at the first construct it
// cannot express; Check walks the whole tree and reports every such construct
// as a Diagnostic, along with warnings for lowerings that change meaning.
//
// Usage:
//
//	code, err := translate.New().WithIndent(2).Build(program)
package translate

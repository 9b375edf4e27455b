package jsparse

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel wrapped by SyntaxError.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports source the grammar could not parse.
type SyntaxError struct {
	Line   int // 1-based line number
	Column int // 1-based column number, in bytes
	Offset int // 0-based byte offset
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Unwrap returns ErrSyntax.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

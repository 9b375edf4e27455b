// Package source resolves byte spans to human readable positions.
package source

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/js2py/pkg/ast"
)

// Position represents a location in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, in bytes
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// File is a named source text with a precomputed line index.
type File struct {
	Name    string
	Content string

	lineStarts []int
}

// NewFile indexes content for position lookups.
func NewFile(name, content string) *File {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &File{Name: name, Content: content, lineStarts: starts}
}

// LineCount returns the number of lines, counting a trailing partial line.
func (f *File) LineCount() int {
	return len(f.lineStarts)
}

// Position converts a byte offset to a line/column pair.
// Offsets outside the content are clamped.
func (f *File) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Content) {
		offset = len(f.Content)
	}
	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	}) - 1
	return Position{
		Line:   line + 1,
		Column: offset - f.lineStarts[line] + 1,
		Offset: offset,
	}
}

// Locate returns the start and end positions of a span.
func (f *File) Locate(s ast.Span) (Position, Position) {
	return f.Position(s.Start), f.Position(s.End)
}

// Line returns the text of a 1-based line without its terminator.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[n-1]
	end := len(f.Content)
	if n < len(f.lineStarts) {
		end = f.lineStarts[n] - 1
	}
	return strings.TrimSuffix(f.Content[start:end], "\r")
}

// Snippet returns the text covered by a span.
func (f *File) Snippet(s ast.Span) string {
	return s.Slice(f.Content)
}

// Caret renders the first line of a span with a marker underneath, e.g.
//
//	x = a ** b
//	    ^^^^^^
func (f *File) Caret(s ast.Span) string {
	start, end := f.Locate(s)
	line := f.Line(start.Line)

	width := s.Len()
	if end.Line != start.Line {
		width = len(line) - start.Column + 1
	}
	if width < 1 {
		width = 1
	}
	return line + "\n" + strings.Repeat(" ", start.Column-1) + strings.Repeat("^", width)
}

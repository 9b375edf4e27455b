package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/leapstack-labs/js2py/pkg/ast"
)

// Document represents an open text document in the editor.
type Document struct {
	URI        string // Document URI (file:///path/to/app.js)
	LanguageID string // Client language id, e.g. "javascript" or "typescript"
	Content    string // Full document content
	Version    int    // Version number, incremented on each change
	Lines      []int  // Byte offsets of line starts for fast position lookups

	analysis *analysis // cached for Version; reset on update
}

// DocumentStore manages open documents in memory.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]*Document
}

// NewDocumentStore creates a new document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]*Document),
	}
}

// Open adds or replaces a document in the store.
func (s *DocumentStore) Open(item TextDocumentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents[item.URI] = &Document{
		URI:        item.URI,
		LanguageID: item.LanguageID,
		Content:    item.Text,
		Version:    item.Version,
		Lines:      computeLineOffsets(item.Text),
	}
}

// Close removes a document from the store.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.documents, uri)
}

// Get retrieves a document by URI.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.documents[uri]
}

// Update modifies an existing document's content.
// It reports false when the document is not open.
func (s *DocumentStore) Update(uri string, content string, version int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[uri]
	if !ok {
		return false
	}
	doc.Content = content
	doc.Version = version
	doc.Lines = computeLineOffsets(content)
	doc.analysis = nil
	return true
}

// Len returns the number of open documents.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.documents)
}

// computeLineOffsets calculates byte offsets for each line start.
func computeLineOffsets(content string) []int {
	offsets := []int{0} // First line starts at offset 0

	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}

	return offsets
}

// PositionToOffset converts a Position to a byte offset in the document.
func (d *Document) PositionToOffset(pos Position) int {
	if d == nil || len(d.Lines) == 0 {
		return 0
	}
	return positionToOffset(d.Lines, len(d.Content), pos)
}

func positionToOffset(lines []int, size int, pos Position) int {
	line := int(pos.Line)
	if line >= len(lines) {
		return size
	}

	offset := lines[line] + int(pos.Character)
	if offset > size {
		return size
	}
	return offset
}

// OffsetToPosition converts a byte offset to a Position.
func (d *Document) OffsetToPosition(offset int) Position {
	if d == nil || len(d.Lines) == 0 {
		return Position{}
	}
	return offsetToPosition(d.Lines, len(d.Content), offset)
}

func offsetToPosition(lines []int, size, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > size {
		offset = size
	}

	line := 0
	for i, lineOffset := range lines {
		if lineOffset > offset {
			break
		}
		line = i
	}

	return Position{
		Line:      uint32(line),                 //nolint:gosec // G115: line index is non-negative
		Character: uint32(offset - lines[line]), //nolint:gosec // G115: offset is past the line start
	}
}

// GetLine returns the content of a specific line.
func (d *Document) GetLine(line int) string {
	if d == nil || line < 0 || line >= len(d.Lines) {
		return ""
	}

	start := d.Lines[line]
	end := len(d.Content)

	if line+1 < len(d.Lines) {
		end = d.Lines[line+1] - 1 // Exclude newline
		if end < start {
			end = start
		}
	}

	return d.Content[start:end]
}

// IsTypeScript reports whether the document needs type stripping before parsing.
func (d *Document) IsTypeScript() bool {
	if d.LanguageID == "typescript" {
		return true
	}
	ext := strings.ToLower(filepath.Ext(URIToPath(d.URI)))
	return ext == ".ts" || ext == ".mts"
}

// URIToPath converts a file:// URI to a file system path.
func URIToPath(uri string) string {
	const prefix = "file://"
	if !strings.HasPrefix(uri, prefix) {
		return uri
	}
	path := uri[len(prefix):]
	if unescaped, err := url.PathUnescape(path); err == nil {
		return unescaped
	}
	return path
}

// PathToURI converts a file system path to a file:// URI.
func PathToURI(path string) string {
	if strings.HasPrefix(path, "file://") {
		return path
	}
	return "file://" + path
}

// spanRange converts a span over text into an LSP range. lines must be the
// line offsets of text.
func spanRange(lines []int, text string, s ast.Span) Range {
	return Range{
		Start: offsetToPosition(lines, len(text), s.Start),
		End:   offsetToPosition(lines, len(text), s.End),
	}
}

package editor

import (
	"fmt"
	"os"

	"github.com/avosk/strand/internal/diag"
)

// Position is a 0-based line/column cursor position.
type Position struct {
	Line int
	Col  int
}

// Document is an open text buffer plus the per-document state the
// renderer reads: cursor, backing path, and attached diagnostics.
//
// Line indexing follows the usual editor convention: a line starts after
// each newline byte, so text ending in "\n" has a final empty line. That
// final empty line is what the line number gutter elides with "~".
type Document struct {
	text        []byte
	lineOffsets []int // byte offset of each line start; always has at least one entry
	path        string
	cursor      Position
	diagnostics []diag.Diagnostic
}

// NewDocument creates a document from raw text with no backing path.
func NewDocument(text []byte) *Document {
	return &Document{
		text:        text,
		lineOffsets: computeLineOffsets(text),
	}
}

// Open reads a file into a new document.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	doc := NewDocument(data)
	doc.path = path
	return doc, nil
}

// computeLineOffsets records the byte offset where each line begins.
func computeLineOffsets(text []byte) []int {
	offsets := []int{0}
	for i, b := range text {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// LineCount returns the number of lines, counting the empty line after a
// trailing newline. Never less than 1.
func (d *Document) LineCount() int {
	return len(d.lineOffsets)
}

// LineToByte returns the byte offset of the start of a line.
// Out-of-range lines clamp to the nearest valid line.
func (d *Document) LineToByte(line int) int {
	if line < 0 {
		line = 0
	}
	if line >= len(d.lineOffsets) {
		line = len(d.lineOffsets) - 1
	}
	return d.lineOffsets[line]
}

// LenBytes returns the total text length in bytes.
func (d *Document) LenBytes() int {
	return len(d.text)
}

// Line returns the text of a line without its trailing newline.
func (d *Document) Line(line int) string {
	if line < 0 || line >= len(d.lineOffsets) {
		return ""
	}
	start := d.lineOffsets[line]
	end := len(d.text)
	if line+1 < len(d.lineOffsets) {
		end = d.lineOffsets[line+1] - 1 // strip the newline
	}
	return string(d.text[start:end])
}

// Path returns the backing file path, if the document has one.
func (d *Document) Path() (string, bool) {
	return d.path, d.path != ""
}

// SetPath sets the backing file path.
func (d *Document) SetPath(path string) {
	d.path = path
}

// Cursor returns the primary cursor position.
func (d *Document) Cursor() Position {
	return d.cursor
}

// CursorLine returns the line containing the primary cursor.
func (d *Document) CursorLine() int {
	return d.cursor.Line
}

// SetCursor moves the primary cursor, clamping the line into range.
func (d *Document) SetCursor(pos Position) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if max := d.LineCount() - 1; pos.Line > max {
		pos.Line = max
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	d.cursor = pos
}

// Diagnostics returns the diagnostics attached to this document.
// The slice is owned by the document; callers must not mutate it.
func (d *Document) Diagnostics() []diag.Diagnostic {
	return d.diagnostics
}

// SetDiagnostics replaces the document's diagnostics.
// Order is preserved as delivered; when several diagnostics target one
// line, rendering uses the first in this order.
func (d *Document) SetDiagnostics(diagnostics []diag.Diagnostic) {
	d.diagnostics = diagnostics
}

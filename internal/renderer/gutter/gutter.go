// Package gutter renders the column to the left of the text area: line
// numbers, diagnostic markers, and breakpoint markers.
//
// Rendering is a two-phase protocol. At the start of a draw cycle each
// Provider binds against a Context snapshot of editor/document/view/theme
// state and returns a RenderFunc. The RenderFunc is then the hot path,
// invoked once per visible line; it must not mutate any of the bound
// state, and nothing it binds survives the cycle. If diagnostics or
// breakpoints change concurrently, the host applies the change between
// cycles, never within one.
package gutter

import (
	"strings"

	"github.com/avosk/strand/internal/editor"
	"github.com/avosk/strand/internal/renderer/core"
	"github.com/avosk/strand/internal/theme"
)

// Context is the immutable snapshot a provider binds against.
// It is constructed fresh each draw cycle.
type Context struct {
	Editor *editor.Editor
	Doc    *editor.Document
	View   *editor.View
	Theme  *theme.Theme

	// Focused reports whether the view hosting this gutter has input
	// focus. Affects selected-line styling only.
	Focused bool

	// Width is the column width allocated to this gutter, in display
	// columns. Fragments are padded or truncated to it.
	Width int
}

// RenderFunc draws the gutter fragment for one line. It appends the
// fragment to out and reports the style to draw it with; ok is false when
// the line has no mark, in which case nothing was appended and the
// composed row falls back to blank cells.
//
// A fragment must not exceed the bound width. Alignment across lines
// depends on equal-width lines producing equal-width fragments.
type RenderFunc func(line int, selected bool, out *strings.Builder) (style core.Style, ok bool)

// Provider binds a renderer for one draw cycle.
//
// A non-nil error is a precondition violation (a required theme scope is
// missing, or the document lacks state this gutter needs) and aborts the
// bind for the whole cycle. Per-line rendering never fails.
type Provider func(ctx Context) (RenderFunc, error)

// Padding is a provider that renders a blank separator column.
func Padding(Context) (RenderFunc, error) {
	return func(int, bool, *strings.Builder) (core.Style, bool) {
		return core.Style{}, false
	}, nil
}

// NumberWidth returns the column width needed for the line number gutter
// of a document with lineCount lines, at least minWidth.
func NumberWidth(lineCount, minWidth int) int {
	digits := 1
	for n := lineCount; n > 9; n /= 10 {
		digits++
	}
	if digits < minWidth {
		return minWidth
	}
	return digits
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

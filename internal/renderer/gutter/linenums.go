package gutter

import (
	"fmt"
	"strings"

	"github.com/avosk/strand/internal/editor"
	"github.com/avosk/strand/internal/renderer/core"
)

// LineNumbers is a provider that renders right-aligned line numbers.
//
// In relative mode the cursor line shows its absolute number and every
// other line shows its distance from the cursor. When the document ends
// in a newline, the resulting empty last line renders "~" instead of a
// number; whether to do so is decided once at bind time.
func LineNumbers(ctx Context) (RenderFunc, error) {
	doc := ctx.Doc
	lastLine := ctx.View.LastLine(doc)
	// Draw a number on the last visible line only if it has content,
	// i.e. its start lies strictly before the end of the text.
	drawLast := doc.LineToByte(lastLine) < doc.LenBytes()

	linenr, err := ctx.Theme.Get("ui.linenr")
	if err != nil {
		return nil, err
	}
	linenrSelect, ok := ctx.Theme.TryGet("ui.linenr.selected")
	if !ok {
		linenrSelect = linenr
	}

	currentLine := doc.CursorLine()
	mode := ctx.Editor.Config.LineNumber
	focused := ctx.Focused
	width := ctx.Width

	return func(line int, selected bool, out *strings.Builder) (core.Style, bool) {
		if line == lastLine && !drawLast {
			// The empty trailing line is a placeholder, never selected.
			fmt.Fprintf(out, "%*s", width, "~")
			return linenr, true
		}

		display := line + 1
		if mode == editor.LineNumberRelative && line != currentLine {
			display = absDiff(currentLine, line)
		}
		fmt.Fprintf(out, "%*d", width, display)

		if selected && focused {
			return linenrSelect, true
		}
		return linenr, true
	}, nil
}

package gutter

import (
	"fmt"
	"strings"

	"github.com/avosk/strand/internal/renderer/core"
)

// Entry is one gutter in a layout: a provider plus the column width it
// renders into.
type Entry struct {
	Name     string
	Provider Provider
	Width    int
}

// Layout is the ordered gutter configuration for a view. The order of
// entries is the left-to-right order of the columns on screen.
type Layout struct {
	entries []Entry
}

// NewLayout creates a layout from gutter entries.
func NewLayout(entries ...Entry) *Layout {
	return &Layout{entries: entries}
}

// DefaultLayout returns the standard gutter configuration: diagnostics,
// breakpoints, line numbers sized for the document, and a separator
// column before the text.
func DefaultLayout(lineCount, minNumberWidth int) *Layout {
	return NewLayout(
		Entry{Name: "diagnostics", Provider: Diagnostics, Width: 1},
		Entry{Name: "breakpoints", Provider: Breakpoints, Width: 1},
		Entry{Name: "line-numbers", Provider: LineNumbers, Width: NumberWidth(lineCount, minNumberWidth)},
		Entry{Name: "padding", Provider: Padding, Width: 1},
	)
}

// Width returns the total width of the layout in display columns.
func (l *Layout) Width() int {
	total := 0
	for _, e := range l.entries {
		total += e.Width
	}
	return total
}

// Entries returns the layout's entries in order.
func (l *Layout) Entries() []Entry {
	return l.entries
}

// Bound is a layout bound against one draw cycle's snapshot. It is valid
// for that cycle only; bind again next cycle.
type Bound struct {
	entries   []Entry
	renderers []RenderFunc
	width     int
}

// Bind runs every provider once against the context. Each provider sees
// the context with Width set to its own entry width. The first provider
// error aborts the bind; no partially bound gutter is returned.
func (l *Layout) Bind(ctx Context) (*Bound, error) {
	renderers := make([]RenderFunc, 0, len(l.entries))
	for _, e := range l.entries {
		ectx := ctx
		ectx.Width = e.Width
		fn, err := e.Provider(ectx)
		if err != nil {
			return nil, fmt.Errorf("binding %s gutter: %w", e.Name, err)
		}
		renderers = append(renderers, fn)
	}
	return &Bound{
		entries:   l.entries,
		renderers: renderers,
		width:     l.Width(),
	}, nil
}

// Width returns the total width of the bound gutter in display columns.
func (b *Bound) Width() int {
	return b.width
}

// RenderLine composes one gutter row: every bound renderer runs in layout
// order, and each fragment is padded to its entry width. The result
// always has exactly Width display columns.
func (b *Bound) RenderLine(line int, selected bool) []core.Cell {
	cells := make([]core.Cell, 0, b.width)
	var out strings.Builder
	for i, render := range b.renderers {
		out.Reset()
		style, ok := render(line, selected, &out)
		if !ok {
			style = core.DefaultStyle()
		}
		cells = appendFragment(cells, out.String(), style, b.entries[i].Width)
	}
	return cells
}

// appendFragment converts a fragment to styled cells, truncating past
// the column width and padding the remainder with blanks.
func appendFragment(cells []core.Cell, fragment string, style core.Style, width int) []core.Cell {
	cols := 0
	for _, r := range fragment {
		w := core.RuneWidth(r)
		if cols+w > width {
			break
		}
		cells = append(cells, core.NewCell(r, style))
		cols += w
	}
	for ; cols < width; cols++ {
		cells = append(cells, core.EmptyCell())
	}
	return cells
}

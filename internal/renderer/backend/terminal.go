package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/avosk/strand/internal/renderer/core"
)

// Terminal implements Backend on a tcell screen.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates and initializes a terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Fini restores the terminal. Must be called before process exit.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Size returns the terminal dimensions.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// SetCell places a cell at the given position.
func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

// SetRow places a run of cells; wide cells advance by their width.
func (t *Terminal) SetRow(x, y int, cells []core.Cell) {
	for _, cell := range cells {
		t.SetCell(x, y, cell)
		if cell.Width > 1 {
			x += cell.Width
		} else {
			x++
		}
	}
}

// Clear blanks the screen.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Show flushes pending drawing to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// WaitEvent blocks for the next event and reports whether the host should
// redraw (resize) or quit (any key press).
func (t *Terminal) WaitEvent() (redraw, quit bool) {
	switch t.screen.PollEvent().(type) {
	case *tcell.EventResize:
		t.screen.Sync()
		return true, false
	case *tcell.EventKey:
		return false, true
	}
	return false, false
}

// convertStyle translates a core style into a tcell style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background))

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	if s.Attributes.Has(core.AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}
	return style
}

// convertColor translates a core color into a tcell color.
func convertColor(c core.Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	case c.Indexed:
		return tcell.PaletteColor(int(c.R))
	default:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}

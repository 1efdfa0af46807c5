package backend

import (
	"strings"

	"github.com/avosk/strand/internal/renderer/core"
)

// Buffer is an in-memory Backend for tests and headless rendering.
type Buffer struct {
	width, height int
	cells         [][]core.Cell
}

// NewBuffer creates a buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{width: width, height: height}
	b.allocate()
	return b
}

func (b *Buffer) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]core.Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = core.EmptyCell()
		}
	}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// SetCell places a cell, ignoring out-of-range positions.
func (b *Buffer) SetCell(x, y int, cell core.Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = cell
}

// SetRow places a run of cells; wide cells advance by their width.
func (b *Buffer) SetRow(x, y int, cells []core.Cell) {
	for _, cell := range cells {
		b.SetCell(x, y, cell)
		if cell.Width > 1 {
			x += cell.Width
		} else {
			x++
		}
	}
}

// Cell returns the cell at a position, or an empty cell out of range.
func (b *Buffer) Cell(x, y int) core.Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return core.EmptyCell()
	}
	return b.cells[y][x]
}

// Clear blanks the buffer.
func (b *Buffer) Clear() {
	b.allocate()
}

// Show is a no-op for the in-memory buffer.
func (b *Buffer) Show() {}

// Row returns the text content of one row, without trailing blanks.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y][x]
		if c.Rune != 0 {
			sb.WriteRune(c.Rune)
		}
		if c.Width > 1 {
			x += c.Width - 1
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

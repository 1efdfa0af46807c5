// Package backend abstracts the output surface the renderer draws into.
// The Terminal backend writes through tcell; the Buffer backend keeps an
// in-memory grid for tests and headless rendering.
package backend

import (
	"github.com/avosk/strand/internal/renderer/core"
)

// Backend is a drawable cell grid.
type Backend interface {
	// Size returns the surface dimensions in columns and rows.
	Size() (width, height int)

	// SetCell places a cell at the given position.
	SetCell(x, y int, cell core.Cell)

	// SetRow places a run of cells starting at the given position.
	// Wide cells occupy their display width.
	SetRow(x, y int, cells []core.Cell)

	// Clear blanks the surface.
	Clear()

	// Show makes all drawing since the last Show visible.
	Show()
}

package editor

import (
	"github.com/google/uuid"
)

// View is one viewport onto a document: a scroll offset plus a height in
// rows. Views have stable identities so focus and selection state can be
// tracked per view.
type View struct {
	// ID uniquely identifies this view for its lifetime.
	ID uuid.UUID

	// Offset is the first visible line (0-based).
	Offset int

	// Height is the number of visible rows.
	Height int
}

// NewView creates a view with a fresh identity.
func NewView(height int) *View {
	return &View{
		ID:     uuid.New(),
		Height: height,
	}
}

// LastLine returns the last visible line of the document in this view:
// the bottom of the viewport, or the document's last line if the document
// ends inside the viewport.
func (v *View) LastLine(doc *Document) int {
	last := v.Offset + v.Height
	if n := doc.LineCount(); last > n {
		last = n
	}
	if last <= v.Offset {
		return v.Offset
	}
	return last - 1
}

// ScrollTo moves the viewport so the given line is visible.
func (v *View) ScrollTo(line int) {
	if line < v.Offset {
		v.Offset = line
	} else if v.Height > 0 && line >= v.Offset+v.Height {
		v.Offset = line - v.Height + 1
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

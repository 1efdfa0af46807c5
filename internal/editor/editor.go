// Package editor holds the session state the renderer draws from:
// configuration, open documents, views, and the shared breakpoint store.
// It carries no rendering logic of its own; the renderer borrows this
// state read-only for the duration of one draw cycle.
package editor

import (
	"github.com/avosk/strand/internal/debug"
)

// Editor is the top-level session state.
type Editor struct {
	// Config is the active editor configuration.
	Config Config

	// Breakpoints is the path-indexed breakpoint store shared with the
	// debugger integration.
	Breakpoints *debug.Store
}

// New creates an editor with the given configuration and an empty
// breakpoint store.
func New(cfg Config) *Editor {
	return &Editor{
		Config:      cfg,
		Breakpoints: debug.NewStore(),
	}
}

// Package theme maps symbolic scope names ("error", "ui.linenr.selected")
// to visual styles. Lookup is fallback-aware: a scope with no style of its
// own inherits from its parent scope, so "ui.linenr.selected" falls back
// to "ui.linenr" and then "ui".
package theme

import (
	"errors"
	"fmt"

	"github.com/avosk/strand/internal/renderer/core"
)

// ErrMissingScope is returned by Get when neither the scope nor any parent
// scope has a style. Required scopes missing from a theme are a
// configuration error, not a renderable state.
var ErrMissingScope = errors.New("theme: missing required scope")

// Theme is an immutable named style table.
// Build one with New/Load and share it read-only across draw cycles.
type Theme struct {
	name   string
	styles map[string]core.Style
}

// New creates a theme from a scope to style table.
func New(name string, styles map[string]core.Style) *Theme {
	t := &Theme{
		name:   name,
		styles: make(map[string]core.Style, len(styles)),
	}
	for scope, style := range styles {
		t.styles[scope] = style
	}
	return t
}

// Name returns the theme's display name.
func (t *Theme) Name() string {
	return t.name
}

// Get resolves a scope to its style, walking parent scopes when the exact
// scope is absent. Returns ErrMissingScope if no level matches.
func (t *Theme) Get(scope string) (core.Style, error) {
	if style, ok := t.TryGet(scope); ok {
		return style, nil
	}
	return core.Style{}, fmt.Errorf("%w: %q", ErrMissingScope, scope)
}

// TryGet resolves a scope to its style with parent-scope fallback.
// Returns false if no level matches.
func (t *Theme) TryGet(scope string) (core.Style, bool) {
	for scope != "" {
		if style, ok := t.styles[scope]; ok {
			return style, true
		}
		scope = parentScope(scope)
	}
	return core.Style{}, false
}

// parentScope strips the last dot-separated segment ("a.b.c" to "a.b").
func parentScope(scope string) string {
	for i := len(scope) - 1; i >= 0; i-- {
		if scope[i] == '.' {
			return scope[:i]
		}
	}
	return ""
}

// Default returns the built-in dark theme. It defines every scope the
// gutter requires, so it always binds cleanly.
func Default() *Theme {
	return New("strand-dark", map[string]core.Style{
		"error":              core.NewStyle(core.ColorFromRGB(244, 120, 104)),
		"warning":            core.NewStyle(core.ColorFromRGB(224, 175, 104)),
		"info":               core.NewStyle(core.ColorFromRGB(122, 162, 247)),
		"hint":               core.NewStyle(core.ColorFromRGB(97, 175, 175)),
		"ui.linenr":          core.NewStyle(core.ColorFromRGB(90, 90, 90)).Dim(),
		"ui.linenr.selected": core.NewStyle(core.ColorFromRGB(215, 215, 215)).Bold(),
		"ui.background":      core.DefaultStyle(),
		"ui.text":            core.NewStyle(core.ColorFromRGB(212, 212, 212)),
	})
}

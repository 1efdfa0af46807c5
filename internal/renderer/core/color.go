// Package core provides the shared display primitives for the renderer
// subsystem: colors, text attributes, styles, and screen cells. It exists
// so the gutter, the backends, and the theme layer can exchange values
// without importing each other.
package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents a color value.
// Supports true color (RGB) and terminal palette colors.
type Color struct {
	R, G, B uint8

	// If Indexed is true, R contains the palette index (0-255).
	// G and B are ignored in indexed mode.
	Indexed bool

	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
// Use this for transparent/inherited colors.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0}
	ColorWhite = Color{R: 255, G: 255, B: 255}
	ColorRed   = Color{R: 255, G: 0, B: 0}
	ColorGreen = Color{R: 0, G: 255, B: 0}
	ColorBlue  = Color{R: 0, G: 0, B: 255}
	ColorGray  = Color{R: 128, G: 128, B: 128}
)

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromIndex creates an indexed palette color.
// Index should be 0-255 for standard terminal palettes.
func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// ColorFromHex creates a color from a hex string ("#RRGGBB" or "#RGB",
// with or without the leading #).
func ColorFromHex(hex string) (Color, error) {
	if len(hex) == 0 || hex[0] != '#' {
		hex = "#" + hex
	}
	if len(hex) == 4 {
		// Expand the short form; colorful only parses six digits.
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	if len(hex) != 7 {
		// colorful's scanner is lenient about truncated input.
		return Color{}, fmt.Errorf("invalid hex color %q", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// IsRGB returns true if this is an explicit RGB triple.
func (c Color) IsRGB() bool {
	return !c.Indexed && !c.Default
}

// Equals returns true if two colors are identical.
func (c Color) Equals(other Color) bool {
	return c == other
}

// Hex returns the "#RRGGBB" form of an RGB color. Indexed and default
// colors have no hex form and return an empty string.
func (c Color) Hex() string {
	if !c.IsRGB() {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

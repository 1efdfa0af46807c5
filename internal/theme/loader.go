package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/avosk/strand/internal/renderer/core"
)

// themeFile is the on-disk TOML shape.
//
//	name = "mytheme"
//
//	[styles]
//	"error" = "#f47868"
//	"ui.linenr" = { fg = "#5a5a5a" }
//	"ui.linenr.selected" = { fg = "#d7d7d7", modifiers = ["bold"] }
type themeFile struct {
	Name   string         `toml:"name"`
	Styles map[string]any `toml:"styles"`
}

// Load reads a theme from a TOML file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML theme data.
func Parse(data []byte) (*Theme, error) {
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}

	styles := make(map[string]core.Style, len(file.Styles))
	for scope, raw := range file.Styles {
		style, err := parseStyle(raw)
		if err != nil {
			return nil, fmt.Errorf("theme scope %q: %w", scope, err)
		}
		styles[scope] = style
	}
	return New(file.Name, styles), nil
}

// parseStyle accepts either a bare color string (foreground shorthand) or
// a table with fg, bg, and modifiers keys.
func parseStyle(raw any) (core.Style, error) {
	style := core.DefaultStyle()

	switch v := raw.(type) {
	case string:
		fg, err := parseColor(v)
		if err != nil {
			return core.Style{}, err
		}
		style.Foreground = fg

	case map[string]any:
		for key, val := range v {
			switch key {
			case "fg":
				s, ok := val.(string)
				if !ok {
					return core.Style{}, fmt.Errorf("fg must be a string, got %T", val)
				}
				fg, err := parseColor(s)
				if err != nil {
					return core.Style{}, err
				}
				style.Foreground = fg
			case "bg":
				s, ok := val.(string)
				if !ok {
					return core.Style{}, fmt.Errorf("bg must be a string, got %T", val)
				}
				bg, err := parseColor(s)
				if err != nil {
					return core.Style{}, err
				}
				style.Background = bg
			case "modifiers":
				mods, ok := val.([]any)
				if !ok {
					return core.Style{}, fmt.Errorf("modifiers must be an array, got %T", val)
				}
				for _, m := range mods {
					name, ok := m.(string)
					if !ok {
						return core.Style{}, fmt.Errorf("modifier must be a string, got %T", m)
					}
					attr, err := parseModifier(name)
					if err != nil {
						return core.Style{}, err
					}
					style.Attributes = style.Attributes.With(attr)
				}
			default:
				return core.Style{}, fmt.Errorf("unknown style key %q", key)
			}
		}

	default:
		return core.Style{}, fmt.Errorf("style must be a string or table, got %T", raw)
	}

	return style, nil
}

// parseColor understands "default" and hex colors.
func parseColor(s string) (core.Color, error) {
	if s == "default" {
		return core.ColorDefault, nil
	}
	return core.ColorFromHex(s)
}

func parseModifier(name string) (core.Attribute, error) {
	switch name {
	case "bold":
		return core.AttrBold, nil
	case "dim":
		return core.AttrDim, nil
	case "italic":
		return core.AttrItalic, nil
	case "underlined":
		return core.AttrUnderline, nil
	case "reversed":
		return core.AttrReverse, nil
	case "crossed_out":
		return core.AttrStrikethrough, nil
	default:
		return core.AttrNone, fmt.Errorf("unknown modifier %q", name)
	}
}

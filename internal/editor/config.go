package editor

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LineNumberMode defines how the line number gutter displays numbers.
type LineNumberMode uint8

const (
	// LineNumberAbsolute shows 1-based line numbers.
	LineNumberAbsolute LineNumberMode = iota

	// LineNumberRelative shows the distance from the cursor line,
	// with the cursor line itself shown absolute.
	LineNumberRelative
)

// String returns the mode name as written in config files.
func (m LineNumberMode) String() string {
	if m == LineNumberRelative {
		return "relative"
	}
	return "absolute"
}

// ParseLineNumberMode parses a config-file mode name.
func ParseLineNumberMode(s string) (LineNumberMode, error) {
	switch s {
	case "absolute", "":
		return LineNumberAbsolute, nil
	case "relative":
		return LineNumberRelative, nil
	default:
		return LineNumberAbsolute, fmt.Errorf("unknown line-number mode %q", s)
	}
}

// Config holds the per-session editor settings the renderer reads.
type Config struct {
	// LineNumber selects absolute or relative numbering.
	LineNumber LineNumberMode

	// MinNumberWidth is the minimum column width for line numbers.
	MinNumberWidth int
}

// DefaultConfig returns the default editor configuration.
func DefaultConfig() Config {
	return Config{
		LineNumber:     LineNumberAbsolute,
		MinNumberWidth: 3,
	}
}

// configFile is the on-disk TOML shape.
//
//	[editor]
//	line-number = "relative"
//	min-number-width = 3
type configFile struct {
	Editor struct {
		LineNumber     string `toml:"line-number"`
		MinNumberWidth int    `toml:"min-number-width"`
	} `toml:"editor"`
}

// LoadConfig reads configuration from a TOML file.
// A missing file is not an error; defaults are returned.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML configuration data.
func ParseConfig(data []byte) (Config, error) {
	var file configFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg := DefaultConfig()

	mode, err := ParseLineNumberMode(file.Editor.LineNumber)
	if err != nil {
		return Config{}, err
	}
	cfg.LineNumber = mode

	if file.Editor.MinNumberWidth > 0 {
		cfg.MinNumberWidth = file.Editor.MinNumberWidth
	}
	return cfg, nil
}

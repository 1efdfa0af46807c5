package gutter

import (
	"errors"
	"strings"

	"github.com/avosk/strand/internal/debug"
	"github.com/avosk/strand/internal/renderer/core"
)

// ErrNoPath is returned when the breakpoint gutter is bound against a
// document without a backing file path. Breakpoints are keyed by path, so
// attaching this gutter to a pathless document is a caller bug.
var ErrNoPath = errors.New("gutter: breakpoint gutter requires a document with a file path")

// fadeScale dims unverified breakpoint markers to 40% brightness.
const fadeScale = 0.4

// Breakpoints is a provider that marks lines with breakpoints: a filled
// triangle when the debug adapter has verified the breakpoint, a hollow
// ring when it is still pending. Unverified markers render faded.
func Breakpoints(ctx Context) (RenderFunc, error) {
	errorStyle, err := ctx.Theme.Get("error")
	if err != nil {
		return nil, err
	}
	warningStyle, err := ctx.Theme.Get("warning")
	if err != nil {
		return nil, err
	}
	infoStyle, err := ctx.Theme.Get("info")
	if err != nil {
		return nil, err
	}

	path, ok := ctx.Doc.Path()
	if !ok {
		return nil, ErrNoPath
	}
	breakpoints := ctx.Editor.Breakpoints.ForPath(path)

	return func(line int, _ bool, out *strings.Builder) (core.Style, bool) {
		var bp *debug.Breakpoint
		for i := range breakpoints {
			if breakpoints[i].Line == line {
				bp = &breakpoints[i]
				break
			}
		}
		if bp == nil {
			return core.Style{}, false
		}

		var style core.Style
		switch {
		case bp.Condition != "" && bp.LogMessage != "":
			style = errorStyle.Underline()
		case bp.Condition != "":
			style = errorStyle
		case bp.LogMessage != "":
			style = infoStyle
		default:
			style = warningStyle
		}

		if !bp.Verified {
			style.Foreground = fade(style.Foreground)
		}

		if bp.Verified {
			out.WriteRune('▲')
		} else {
			out.WriteRune('⊚')
		}
		return style, true
	}, nil
}

// fade dims a foreground color for an unverified breakpoint. RGB channels
// scale to 40%, rounding down; indexed and default colors have no cheap
// darker variant and become gray.
func fade(c core.Color) core.Color {
	if !c.IsRGB() {
		return core.ColorGray
	}
	return core.ColorFromRGB(
		uint8(float32(c.R)*fadeScale),
		uint8(float32(c.G)*fadeScale),
		uint8(float32(c.B)*fadeScale),
	)
}

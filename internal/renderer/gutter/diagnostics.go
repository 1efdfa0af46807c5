package gutter

import (
	"strings"

	"github.com/avosk/strand/internal/diag"
	"github.com/avosk/strand/internal/renderer/core"
)

// Diagnostics is a provider that marks lines carrying diagnostics with a
// filled circle, colored by severity.
//
// When several diagnostics target one line, the first in the document's
// slice wins; that order is whatever the producer delivered.
func Diagnostics(ctx Context) (RenderFunc, error) {
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
	hintStyle, err := ctx.Theme.Get("hint")
	if err != nil {
		return nil, err
	}

	diagnostics := ctx.Doc.Diagnostics()

	return func(line int, _ bool, out *strings.Builder) (core.Style, bool) {
		for i := range diagnostics {
			if diagnostics[i].Line != line {
				continue
			}
			out.WriteRune('●')
			switch diagnostics[i].Severity {
			case diag.SeverityError:
				return errorStyle, true
			case diag.SeverityInfo:
				return infoStyle, true
			case diag.SeverityHint:
				return hintStyle, true
			default:
				// Warning, and unset severities style as warnings.
				return warningStyle, true
			}
		}
		return core.Style{}, false
	}, nil
}

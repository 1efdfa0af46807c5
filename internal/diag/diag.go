// Package diag defines the diagnostic data model consumed by the renderer.
// Diagnostics are produced elsewhere (language servers, linters) and
// attached to documents; this package only describes them.
package diag

// Severity classifies how important a diagnostic is.
// The zero value means the producer did not report a severity; for
// styling purposes an unset severity is treated as a warning.
type Severity int

const (
	SeverityUnset Severity = iota
	SeverityError
	SeverityWarning
	SeverityInfo
	SeverityHint
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unset"
	}
}

// Diagnostic is a single reported problem on a document line.
type Diagnostic struct {
	// Line is the 0-based line the diagnostic targets.
	Line int

	// Severity of the diagnostic. May be SeverityUnset.
	Severity Severity

	// Message is the human-readable description.
	Message string

	// Source identifies the producer ("compiler", "linter", ...).
	Source string
}

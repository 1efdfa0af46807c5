package gutter

import (
	"testing"

	"github.com/avosk/strand/internal/diag"
	"github.com/avosk/strand/internal/renderer/core"
	"github.com/avosk/strand/internal/theme"
)

func mustGet(t *testing.T, th *theme.Theme, scope string) core.Style {
	t.Helper()
	style, err := th.Get(scope)
	if err != nil {
		t.Fatalf("theme scope %q: %v", scope, err)
	}
	return style
}

func TestDiagnosticsNoMatch(t *testing.T) {
	ctx := newTestContext("a\nb\nc\n")
	fn, err := Diagnostics(ctx)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	for line := 0; line < 3; line++ {
		text, _, ok := renderAt(fn, line, false)
		if ok {
			t.Errorf("line %d: expected no style", line)
		}
		if text != "" {
			t.Errorf("line %d: expected empty fragment, got %q", line, text)
		}
	}
}

func TestDiagnosticsSeverityStyles(t *testing.T) {
	ctx := newTestContext("a\nb\nc\nd\ne\n")

	tests := []struct {
		severity diag.Severity
		scope    string
	}{
		{diag.SeverityError, "error"},
		{diag.SeverityWarning, "warning"},
		{diag.SeverityInfo, "info"},
		{diag.SeverityHint, "hint"},
		{diag.SeverityUnset, "warning"}, // unset styles as warning
	}

	for _, tt := range tests {
		ctx.Doc.SetDiagnostics([]diag.Diagnostic{{Line: 2, Severity: tt.severity}})
		fn, err := Diagnostics(ctx)
		if err != nil {
			t.Fatalf("%v: bind: %v", tt.severity, err)
		}

		text, style, ok := renderAt(fn, 2, false)
		if !ok {
			t.Errorf("%v: expected a style", tt.severity)
			continue
		}
		if text != "●" {
			t.Errorf("%v: fragment = %q, want ●", tt.severity, text)
		}
		if want := mustGet(t, ctx.Theme, tt.scope); !style.Equals(want) {
			t.Errorf("%v: got style %+v, want %q style", tt.severity, style, tt.scope)
		}
	}
}

func TestDiagnosticsFirstMatchWins(t *testing.T) {
	ctx := newTestContext("a\nb\n")
	ctx.Doc.SetDiagnostics([]diag.Diagnostic{
		{Line: 0, Severity: diag.SeverityHint},
		{Line: 0, Severity: diag.SeverityError},
	})

	fn, err := Diagnostics(ctx)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	_, style, ok := renderAt(fn, 0, false)
	if !ok {
		t.Fatal("expected a style")
	}
	if want := mustGet(t, ctx.Theme, "hint"); !style.Equals(want) {
		t.Errorf("expected the first diagnostic's style, got %+v", style)
	}
}

func TestDiagnosticsMissingThemeScope(t *testing.T) {
	ctx := newTestContext("a\n")
	ctx.Theme = theme.New("broken", map[string]core.Style{
		"error": core.NewStyle(core.ColorRed),
		// no warning/info/hint
	})

	if _, err := Diagnostics(ctx); err == nil {
		t.Fatal("bind should fail when a required scope is missing")
	}
}

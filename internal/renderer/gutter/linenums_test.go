package gutter

import (
	"strings"
	"testing"

	"github.com/avosk/strand/internal/editor"
	"github.com/avosk/strand/internal/renderer/core"
	"github.com/avosk/strand/internal/theme"
)

func TestLineNumbersAbsolute(t *testing.T) {
	ctx := newTestContext("a\nb\nc\nd\ne") // 5 lines, no trailing newline
	fn, err := LineNumbers(ctx)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	tests := []struct {
		line int
		want string
	}{
		{0, "  1"},
		{1, "  2"},
		{4, "  5"},
	}
	for _, tt := range tests {
		text, style, ok := renderAt(fn, tt.line, false)
		if !ok {
			t.Fatalf("line %d: expected a style", tt.line)
		}
		if text != tt.want {
			t.Errorf("line %d: fragment = %q, want %q", tt.line, text, tt.want)
		}
		// Alignment depends on every fragment filling the column.
		if got := core.StringWidth(text); got != ctx.Width {
			t.Errorf("line %d: fragment width = %d, want %d", tt.line, got, ctx.Width)
		}
		if want := mustGet(t, ctx.Theme, "ui.linenr"); !style.Equals(want) {
			t.Errorf("line %d: expected linenr style, got %+v", tt.line, style)
		}
	}
}

func TestLineNumbersRelative(t *testing.T) {
	// 100 content lines, cursor on line 50, width 3.
	ctx := newTestContext(strings.Repeat("x\n", 100))
	ctx.Editor.Config.LineNumber = editor.LineNumberRelative
	ctx.Doc.SetCursor(editor.Position{Line: 50})

	fn, err := LineNumbers(ctx)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	// Distance from the cursor, right-justified.
	if text, _, _ := renderAt(fn, 10, false); text != " 40" {
		t.Errorf("line 10: fragment = %q, want \" 40\"", text)
	}
	if text, _, _ := renderAt(fn, 51, false); text != "  1" {
		t.Errorf("line 51: fragment = %q, want \"  1\"", text)
	}

	// The cursor line shows its absolute number.
	text, style, _ := renderAt(fn, 50, true)
	if text != " 51" {
		t.Errorf("cursor line: fragment = %q, want \" 51\"", text)
	}
	if want := mustGet(t, ctx.Theme, "ui.linenr.selected"); !style.Equals(want) {
		t.Errorf("cursor line: expected selected style, got %+v", style)
	}
}

func TestLineNumbersSelectedRequiresFocus(t *testing.T) {
	ctx := newTestContext("a\nb\nc")
	ctx.Focused = false

	fn, err := LineNumbers(ctx)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	_, style, _ := renderAt(fn, 1, true)
	if want := mustGet(t, ctx.Theme, "ui.linenr"); !style.Equals(want) {
		t.Errorf("unfocused view should use the default style, got %+v", style)
	}
}

func TestLineNumbersLastLineTilde(t *testing.T) {
	// Trailing newline: the final line is empty and renders "~".
	ctx := newTestContext("a\nb\n")
	fn, err := LineNumbers(ctx)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	text, style, ok := renderAt(fn, 2, true) // selected must not matter
	if !ok {
		t.Fatal("expected a style")
	}
	if text != "  ~" {
		t.Errorf("fragment = %q, want \"  ~\"", text)
	}
	if want := mustGet(t, ctx.Theme, "ui.linenr"); !style.Equals(want) {
		t.Errorf("placeholder line must never use the selected style, got %+v", style)
	}

	// Lines above still get numbers.
	if text, _, _ := renderAt(fn, 1, false); text != "  2" {
		t.Errorf("line 1: fragment = %q, want \"  2\"", text)
	}
}

func TestLineNumbersLastLineWithContent(t *testing.T) {
	ctx := newTestContext("a\nb\nc") // last line has content
	fn, err := LineNumbers(ctx)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	if text, _, _ := renderAt(fn, 2, false); text != "  3" {
		t.Errorf("fragment = %q, want \"  3\"", text)
	}
}

func TestLineNumbersTildeRegardlessOfMode(t *testing.T) {
	ctx := newTestContext("a\nb\n")
	ctx.Editor.Config.LineNumber = editor.LineNumberRelative

	fn, err := LineNumbers(ctx)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	if text, _, _ := renderAt(fn, 2, false); text != "  ~" {
		t.Errorf("fragment = %q, want \"  ~\"", text)
	}
}

func TestLineNumbersEmptyDocument(t *testing.T) {
	ctx := newTestContext("")
	fn, err := LineNumbers(ctx)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	// The only line of an empty document is the empty last line.
	if text, _, _ := renderAt(fn, 0, false); text != "  ~" {
		t.Errorf("fragment = %q, want \"  ~\"", text)
	}
}

func TestLineNumbersSelectedFallback(t *testing.T) {
	linenr := core.NewStyle(core.ColorGray)
	ctx := newTestContext("a\nb\nc")
	ctx.Theme = theme.New("plain", map[string]core.Style{
		"ui.linenr": linenr,
		// no ui.linenr.selected
	})

	fn, err := LineNumbers(ctx)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	_, style, _ := renderAt(fn, 0, true)
	if !style.Equals(linenr) {
		t.Errorf("selected style should fall back to ui.linenr, got %+v", style)
	}
}

func TestLineNumbersMissingRequiredScope(t *testing.T) {
	ctx := newTestContext("a\n")
	ctx.Theme = theme.New("empty", nil)

	if _, err := LineNumbers(ctx); err == nil {
		t.Fatal("bind should fail without ui.linenr")
	}
}

func TestLineNumbersViewportLastLine(t *testing.T) {
	// The ~ decision applies to the last *visible* line. With the
	// viewport ending before the document does, the bottom row is a
	// content line and renders its number.
	ctx := newTestContext("a\nb\nc\nd\ne\n")
	ctx.View = editor.NewView(3) // shows lines 0..2 of 6

	fn, err := LineNumbers(ctx)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	if text, _, _ := renderAt(fn, 2, false); text != "  3" {
		t.Errorf("fragment = %q, want \"  3\"", text)
	}
}

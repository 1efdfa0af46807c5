// Command strand opens a file read-only and renders it with the full
// gutter column: diagnostic markers, breakpoint markers, and line
// numbers. It is the reference host for the gutter rendering protocol;
// editing is out of scope.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avosk/strand/internal/config"
	"github.com/avosk/strand/internal/editor"
	"github.com/avosk/strand/internal/renderer/backend"
	"github.com/avosk/strand/internal/renderer/core"
	"github.com/avosk/strand/internal/renderer/gutter"
	"github.com/avosk/strand/internal/theme"
)

type options struct {
	configPath string
	themePath  string
	filePath   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	cfg, err := editor.LoadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	th := theme.Default()
	if opts.themePath != "" {
		if th, err = theme.Load(opts.themePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	doc, err := editor.Open(opts.filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ed := editor.New(cfg)
	view := editor.NewView(0)

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer term.Fini()

	watcher, err := config.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer watcher.Close()
	for _, p := range []string{opts.configPath, opts.themePath} {
		if p != "" {
			// Best effort; a missing config file can still appear later.
			_ = watcher.Watch(p)
		}
	}

	if err := draw(term, ed, doc, view, th); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	type uiEvent struct{ redraw, quit bool }
	events := make(chan uiEvent)
	go func() {
		for {
			redraw, quit := term.WaitEvent()
			events <- uiEvent{redraw, quit}
			if quit {
				return
			}
		}
	}()

	for {
		needRedraw := false
		select {
		case ev := <-events:
			if ev.quit {
				return 0
			}
			needRedraw = ev.redraw
		case ev, ok := <-watcher.Events():
			if !ok {
				continue
			}
			// Reload between draw cycles, never within one.
			switch ev.Path {
			case opts.themePath:
				if reloaded, err := theme.Load(ev.Path); err == nil {
					th = reloaded
				}
			default:
				if cfg, err := editor.LoadConfig(ev.Path); err == nil {
					ed.Config = cfg
				}
			}
			needRedraw = true
		}
		if needRedraw {
			if err := draw(term, ed, doc, view, th); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 1
			}
		}
	}
}

// draw runs one full draw cycle: bind the gutter layout against a fresh
// snapshot, then render every visible line.
func draw(term backend.Backend, ed *editor.Editor, doc *editor.Document, view *editor.View, th *theme.Theme) error {
	width, height := term.Size()
	view.Height = height
	view.ScrollTo(doc.CursorLine())

	layout := gutter.DefaultLayout(doc.LineCount(), ed.Config.MinNumberWidth)
	bound, err := layout.Bind(gutter.Context{
		Editor:  ed,
		Doc:     doc,
		View:    view,
		Theme:   th,
		Focused: true,
	})
	if err != nil {
		return err
	}

	textStyle, ok := th.TryGet("ui.text")
	if !ok {
		textStyle = core.DefaultStyle()
	}

	term.Clear()
	cursorLine := doc.CursorLine()
	for row := 0; row < height; row++ {
		line := view.Offset + row
		if line >= doc.LineCount() {
			break
		}
		term.SetRow(0, row, bound.RenderLine(line, line == cursorLine))

		x := bound.Width()
		for _, r := range doc.Line(line) {
			if x >= width {
				break
			}
			cell := core.NewCell(r, textStyle)
			term.SetCell(x, row, cell)
			x += cell.Width
		}
	}
	term.Show()
	return nil
}

func parseFlags() (options, error) {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.themePath, "theme", "", "Path to theme file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: strand [flags] FILE\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("exactly one file argument required")
	}
	opts.filePath = flag.Arg(0)

	// Watcher events carry absolute paths; normalize up front so reload
	// events can be matched back to their source.
	for _, p := range []*string{&opts.configPath, &opts.themePath} {
		if *p == "" {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return options{}, err
		}
		*p = abs
	}
	return opts, nil
}

package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"svfacts/internal/diag"
	"svfacts/internal/source"
)

type palette struct {
	err, warn, info, note, path, gutter, caret, fix *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgBlue, color.Bold),
		note:   color.New(color.FgCyan),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		fix:    color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.path, p.gutter, p.caret, p.fix} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty writes every diagnostic in bag as
//
//	path:line:col: SEVERITY CODE: message
//	   3 | source line
//	     |     ^~~~
//
// followed by notes and fixes when enabled. Items are written in bag order;
// sort the bag first for a canonical order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.path.Sprint(location(file, start, opts.BaseDir)),
			p.severity(d.Severity).Sprint(d.Severity.String()),
			d.Code.ID(),
			d.Message)
		if file != nil {
			writeSnippet(w, p, file, start, end)
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				nf := fs.Get(n.Span.File)
				ns, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), location(nf, ns, opts.BaseDir), n.Msg)
			}
		}
		if opts.ShowFixes {
			for _, f := range d.Fixes {
				fmt.Fprintf(w, "  %s %s\n", p.fix.Sprint("fix:"), f.Title)
			}
		}
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "%d more diagnostic(s) not shown\n", n)
	}
}

func location(f *source.File, pos source.LineCol, base string) string {
	if f == nil {
		return "?"
	}
	return fmt.Sprintf("%s:%d:%d", f.DisplayPath(base), pos.Line, pos.Col)
}

// writeSnippet prints the primary line with a caret run under the span.
// Spans that cross lines are underlined to the end of the first line.
func writeSnippet(w io.Writer, p palette, f *source.File, start, end source.LineCol) {
	line := f.Line(start.Line)
	if line == "" && start.Line > 1 {
		return
	}
	line = strings.ReplaceAll(line, "\t", " ")
	num := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(num))

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	stop := len(line)
	if end.Line == start.Line && int(end.Col)-1 <= len(line) {
		stop = int(end.Col) - 1
	}
	if stop < col {
		stop = col
	}
	lead := runewidth.StringWidth(line[:col])
	width := runewidth.StringWidth(line[col:stop])
	marks := "^"
	if width > 1 {
		marks += strings.Repeat("~", width-1)
	}

	fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), line)
	fmt.Fprintf(w, " %s %s %s%s\n", pad, p.gutter.Sprint("|"), strings.Repeat(" ", lead), p.caret.Sprint(marks))
}

// Short writes one line per diagnostic with no snippet, suitable for editors
// and grep.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, base string) {
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s: %s %s: %s\n", location(fs.Get(d.Primary.File), start, base), d.Severity.String(), d.Code.ID(), d.Message)
	}
}

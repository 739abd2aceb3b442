package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"keel/internal/diag"
	"keel/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue)
	markerColor  = color.New(color.FgRed, color.Bold)
)

// Pretty renders diagnostics in a human-readable form:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    <caret underline>
//
// followed by notes in the same shape. The caller is expected to have
// sorted the bag beforehand.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for i := range bag.Items() {
		d := &bag.Items()[i]
		prettyDiagnostic(w, d, fs, opts)
	}
}

func prettyDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := severityTag(d.Severity, opts.Color)
	fmt.Fprintf(w, "%s: %s %s: %s\n", location(fs, d.Primary), sev, d.Code.ID(), d.Message)
	printContext(w, fs, d.Primary, opts)

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		tag := "note"
		if opts.Color {
			tag = noteColor.Sprint(tag)
		}
		fmt.Fprintf(w, "%s: %s: %s\n", location(fs, note.Span), tag, note.Msg)
		printContext(w, fs, note.Span, opts)
	}
}

func location(fs *source.FileSet, span source.Span) string {
	if !span.File.IsValid() {
		return "<unknown>"
	}
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", f.RelPath(fs.BaseDir()), start.Line, start.Col)
}

// printContext shows the primary source line with a caret underline, plus
// up to opts.Context surrounding lines.
func printContext(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	if !span.File.IsValid() {
		return
	}
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)

	first := start.Line
	if opts.Context > 0 && first > uint32(opts.Context) {
		first -= uint32(opts.Context)
	} else if opts.Context > 0 {
		first = 1
	}
	last := start.Line + uint32(opts.Context)

	for num := first; num <= last; num++ {
		line := f.Line(num)
		if line == "" && num != start.Line {
			continue
		}
		fmt.Fprintf(w, "%5d | %s\n", num, line)
		if num == start.Line {
			fmt.Fprintf(w, "      | %s\n", underline(line, start, end, opts.Color))
		}
	}
}

// underline builds the ^~~~ marker for the span's portion of the line.
// Columns are byte-based; display width is measured per rune so wide
// characters stay aligned.
func underline(line string, start, end source.LineCol, color bool) string {
	from := clampCol(line, start.Col)
	pad := runewidth.StringWidth(line[:from])

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		to := clampCol(line, end.Col)
		if w := runewidth.StringWidth(line[from:to]); w > 0 {
			width = w
		}
	}

	marker := "^" + strings.Repeat("~", width-1)
	if color {
		marker = markerColor.Sprint(marker)
	}
	return strings.Repeat(" ", pad) + marker
}

func clampCol(line string, col uint32) int {
	n := int(col) - 1
	if n < 0 {
		return 0
	}
	if n > len(line) {
		return len(line)
	}
	return n
}

func severityTag(sev diag.Severity, colored bool) string {
	var tag string
	var c *color.Color
	switch sev {
	case diag.SevError:
		tag, c = "error", errorColor
	case diag.SevWarning:
		tag, c = "warning", warningColor
	default:
		tag, c = "info", infoColor
	}
	if colored {
		return c.Sprint(tag)
	}
	return tag
}

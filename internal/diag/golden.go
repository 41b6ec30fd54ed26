package diag

import (
	"fmt"
	"strings"

	"svfacts/internal/source"
)

// FormatShort renders one line per diagnostic:
//
//	error SYN2001 path:line:col message
//
// Notes follow their diagnostic as "note" lines when includeNotes is set.
// Input order is kept; call Bag.Sort first for a canonical order.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	var b strings.Builder
	for _, d := range diags {
		writeShort(&b, fs, severityLabel(d.Severity), d.Code, d.Primary, d.Message)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			writeShort(&b, fs, "note", d.Code, n.Span, n.Msg)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeShort(b *strings.Builder, fs *source.FileSet, label string, code Code, sp source.Span, msg string) {
	path := "?"
	var pos source.LineCol
	if fs != nil {
		if f := fs.Get(sp.File); f != nil {
			path = f.Path
			pos, _ = fs.Resolve(sp)
		}
	}
	fmt.Fprintf(b, "%s %s %s:%d:%d %s\n", label, code.ID(), path, pos.Line, pos.Col, sanitizeMessage(msg))
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", " ")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}

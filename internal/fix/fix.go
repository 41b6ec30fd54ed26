// Package fix applies the text edits attached to diagnostics, such as the
// missing ';' or 'end' the parser inserts during recovery.
package fix

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"svfacts/internal/diag"
	"svfacts/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

type Options struct {
	// DryRun computes the new contents without writing files.
	DryRun bool
}

// AppliedFix records a fix whose edits were all accepted.
type AppliedFix struct {
	Title   string
	Code    diag.Code
	Message string
	Path    string
}

// SkippedFix is a fix that could not be applied, with the reason.
type SkippedFix struct {
	Title  string
	Path   string
	Reason string
}

// FileChange is the new content of one file.
type FileChange struct {
	Path      string
	EditCount int
	Content   []byte
}

type Result struct {
	Applied []AppliedFix
	Skipped []SkippedFix
	Changes []FileChange
}

type pendingEdit struct {
	diag.FixEdit
	order int
}

// Apply gathers the fixes of diagnostics in order and applies every one
// whose edits do not overlap an earlier accepted fix. A fix is accepted or
// rejected as a whole. Virtual files are never changed.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts Options) (*Result, error) {
	res := &Result{}
	if fs == nil {
		return res, errors.New("fix: FileSet is nil")
	}

	accepted := make(map[source.FileID][]pendingEdit)
	order := 0
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			path := pathOf(fs, d.Primary.File)
			if reason := checkFix(fs, accepted, f); reason != "" {
				res.Skipped = append(res.Skipped, SkippedFix{Title: f.Title, Path: path, Reason: reason})
				continue
			}
			for _, e := range f.Edits {
				accepted[e.Span.File] = append(accepted[e.Span.File], pendingEdit{FixEdit: e, order: order})
				order++
			}
			res.Applied = append(res.Applied, AppliedFix{Title: f.Title, Code: d.Code, Message: d.Message, Path: path})
		}
	}
	if len(res.Applied) == 0 {
		return res, ErrNoFixes
	}

	ids := make([]source.FileID, 0, len(accepted))
	for id := range accepted {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		file := fs.Get(id)
		res.Changes = append(res.Changes, FileChange{
			Path:      file.Path,
			EditCount: len(accepted[id]),
			Content:   restoreEncoding(file, applyEdits(file.Content, accepted[id])),
		})
	}
	if opts.DryRun {
		return res, nil
	}
	for _, ch := range res.Changes {
		mode := os.FileMode(0o644)
		if info, err := os.Stat(ch.Path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(ch.Path, ch.Content, mode); err != nil {
			return res, fmt.Errorf("fix: write %s: %w", ch.Path, err)
		}
	}
	return res, nil
}

// checkFix returns why f cannot be applied, or "" when it can.
func checkFix(fs *source.FileSet, accepted map[source.FileID][]pendingEdit, f diag.Fix) string {
	if len(f.Edits) == 0 {
		return "fix has no edits"
	}
	for i, e := range f.Edits {
		file := fs.Get(e.Span.File)
		switch {
		case file == nil:
			return "unknown file"
		case file.Flags&source.FileVirtual != 0:
			return "target file is virtual"
		case e.Span.End < e.Span.Start || int(e.Span.End) > len(file.Content):
			return "edit span out of range"
		}
		for _, prev := range accepted[e.Span.File] {
			if spansConflict(prev.Span, e.Span) {
				return "conflicts with an earlier fix"
			}
		}
		for _, other := range f.Edits[:i] {
			if other.Span.File == e.Span.File && spansConflict(other.Span, e.Span) {
				return "edits overlap"
			}
		}
	}
	return ""
}

// spansConflict treats spans as half-open. Two insertions never conflict;
// an insertion conflicts with a replacement strictly around it.
func spansConflict(a, b source.Span) bool {
	switch {
	case a.Start == a.End && b.Start == b.End:
		return false
	case a.Start == a.End:
		return b.Start < a.Start && a.Start < b.End
	case b.Start == b.End:
		return a.Start < b.Start && b.Start < a.End
	}
	return a.Start < b.End && b.Start < a.End
}

// applyEdits rewrites content back to front so earlier offsets stay valid.
// Insertions at one offset keep their acceptance order.
func applyEdits(content []byte, edits []pendingEdit) []byte {
	sorted := append([]pendingEdit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Span.Start != sorted[j].Span.Start {
			return sorted[i].Span.Start > sorted[j].Span.Start
		}
		return sorted[i].order > sorted[j].order
	})
	out := append([]byte(nil), content...)
	for _, e := range sorted {
		tail := append([]byte(nil), out[e.Span.End:]...)
		out = append(append(out[:e.Span.Start], e.NewText...), tail...)
	}
	return out
}

// restoreEncoding undoes the normalisation Load applied.
func restoreEncoding(file *source.File, content []byte) []byte {
	if file.Flags&source.FileNormalizedCRLF != 0 {
		content = bytes.ReplaceAll(content, []byte("\n"), []byte("\r\n"))
	}
	if file.Flags&source.FileHadBOM != 0 {
		content = append([]byte{0xEF, 0xBB, 0xBF}, content...)
	}
	return content
}

func pathOf(fs *source.FileSet, id source.FileID) string {
	if f := fs.Get(id); f != nil {
		return f.Path
	}
	return ""
}

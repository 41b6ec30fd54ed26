package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"svfacts/internal/diag"
	"svfacts/internal/parser"
	"svfacts/internal/source"
	"svfacts/internal/spelling"
)

func loadTemp(t *testing.T, fs *source.FileSet, content string) (string, source.FileID) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "top.sv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return path, id
}

func insert(id source.FileID, at uint32, text string) diag.Diagnostic {
	sp := source.Span{File: id, Start: at, End: at}
	return diag.NewError(diag.SynExpectSemicolon, sp, "missing").
		WithFix("insert "+text, diag.FixEdit{Span: sp, NewText: text})
}

func TestApplyParserFixes(t *testing.T) {
	fs := source.NewFileSet()
	path, id := loadTemp(t, fs, "module m; wire w;")
	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}
	toks := spelling.Tokens(fs.Get(id), spelling.Options{Reporter: reporter})
	parser.ParseFile(toks, parser.Options{Reporter: reporter})

	res, err := Apply(fs, bag.Items(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Applied) != 1 || len(res.Changes) != 1 {
		t.Fatalf("applied %d, changes %d", len(res.Applied), len(res.Changes))
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "module m; wire w; endmodule" {
		t.Fatalf("fixed file = %q", got)
	}
}

func TestApplySkipsConflicts(t *testing.T) {
	fs := source.NewFileSet()
	_, id := loadTemp(t, fs, "abcdef")
	replace := diag.NewError(diag.SynExpectSemicolon, source.Span{File: id, Start: 1, End: 4}, "replace").
		WithFix("replace bcd", diag.FixEdit{Span: source.Span{File: id, Start: 1, End: 4}, NewText: "X"})
	diags := []diag.Diagnostic{
		insert(id, 0, "<"),
		replace,
		insert(id, 2, "!"),
		insert(id, 6, ">"),
		insert(id, 6, ">>"),
	}
	res, err := Apply(fs, diags, Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Applied) != 4 || len(res.Skipped) != 1 || res.Skipped[0].Reason != "conflicts with an earlier fix" {
		t.Fatalf("applied %d, skipped %+v", len(res.Applied), res.Skipped)
	}
	if got := string(res.Changes[0].Content); got != "<aXef>>>" {
		t.Fatalf("content = %q", got)
	}
}

func TestApplyLeavesVirtualFiles(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<args>", []byte("a = b"))
	res, err := Apply(fs, []diag.Diagnostic{insert(id, 5, ";")}, Options{})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v", err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != "target file is virtual" {
		t.Fatalf("skipped = %+v", res.Skipped)
	}
}

func TestApplyRestoresLineEndings(t *testing.T) {
	fs := source.NewFileSet()
	_, id := loadTemp(t, fs, "\xEF\xBB\xBFa\r\nb\r\n")
	res, err := Apply(fs, []diag.Diagnostic{insert(id, 1, ";")}, Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(res.Changes[0].Content); got != "\xEF\xBB\xBFa;\r\nb\r\n" {
		t.Fatalf("content = %q", got)
	}
}

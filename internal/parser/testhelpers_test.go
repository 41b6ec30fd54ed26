package parser

import (
	"fmt"
	"strings"
	"testing"

	"svfacts/internal/diag"
	"svfacts/internal/source"
	"svfacts/internal/spelling"
	"svfacts/internal/token"
)

// lex spells src and fails the test on any spelling diagnostic.
func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sv", []byte(src))
	bag := diag.NewBag(0)
	toks := spelling.Tokens(fs.Get(id), spelling.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.Len() != 0 {
		t.Fatalf("spelling %q: %s", src, diagnosticsSummary(bag))
	}
	return toks
}

// newParser returns a parser over src that collects into the returned bag.
func newParser(t *testing.T, src string, opts Options) (*Parser, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(0)
	opts.Reporter = diag.BagReporter{Bag: bag}
	return New(lex(t, src), opts), bag
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func codes(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

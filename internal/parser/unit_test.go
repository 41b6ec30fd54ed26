package parser

import (
	"math/rand"
	"testing"
	"time"

	"svfacts/internal/diag"
	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

func TestModule(t *testing.T) {
	src := `module m #(parameter N = 1) (input clk, output logic a);
  logic a;
  assign a = b;
  always_ff @(posedge clk) a <= b;
  function void f(); endfunction
endmodule`
	p, bag := newParser(t, src, Options{})
	root := p.ParseFile()
	if p.Errors() != 0 {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
	if got := codes(bag); len(got) != 1 || got[0] != diag.SynSkippedTokens {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	want := "module m; logic a; assign (a = b); always_ff @(posedge clk) (a <= b); " +
		"<skipped function void f ( ) ; endfunction> endmodule"
	if got := root.String(); got != want {
		t.Fatalf("module =\n%s\nwant\n%s", got, want)
	}
	mod := root.Children[0]
	if mod.Kind != syntax.ModuleDeclaration || mod.Close.Kind != token.KwEndModule {
		t.Fatalf("module node = %v closed by %v", mod.Kind, mod.Close)
	}
	if mod.Find(syntax.AlwaysFFBlock) == nil || mod.Find(syntax.ContinuousAssign) == nil {
		t.Fatalf("items missing from %s", root)
	}
}

func TestUnclosedModule(t *testing.T) {
	p, bag := newParser(t, "module m; wire w;", Options{})
	root := p.ParseFile()
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynUnclosedDelimiter {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	edit := items[0].Fixes[0].Edits[0]
	if edit.NewText != " endmodule" || edit.Span.Start != 17 {
		t.Fatalf("edit = %+v", edit)
	}
	if got := root.String(); got != "module m; wire w; endmodule" {
		t.Fatalf("module = %s", got)
	}
}

func TestHeaderSkipStopsAtSemicolon(t *testing.T) {
	p, bag := newParser(t, "module m (input a; wire x; endmodule", Options{})
	root := p.ParseFile()
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynUnclosedDelimiter {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	edit := items[0].Fixes[0].Edits[0]
	if edit.NewText != ")" || edit.Span.Start != 17 {
		t.Fatalf("edit = %+v", edit)
	}
	if root.Find(syntax.DataDeclaration) == nil {
		t.Fatalf("declaration after the header was dropped: %s", root)
	}
	if got := root.String(); got != "module m; wire x; endmodule" {
		t.Fatalf("module = %s", got)
	}
}

func TestHeaderUnclosedAtEndKeyword(t *testing.T) {
	p, bag := newParser(t, "module m #(parameter N = 1 endmodule", Options{})
	p.ParseFile()
	if got := codes(bag); len(got) != 2 || got[0] != diag.SynUnclosedDelimiter || got[1] != diag.SynExpectSemicolon {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
}

func TestStrayEndKeyword(t *testing.T) {
	p, bag := newParser(t, "endmodule module m; endmodule", Options{})
	root := p.ParseFile()
	if got := codes(bag); len(got) != 1 || got[0] != diag.SynUnexpectedToken {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	if got := root.String(); got != "<skipped endmodule>\nmodule m; endmodule" {
		t.Fatalf("file = %q", got)
	}
}

func TestInterfaceAndProgramUnits(t *testing.T) {
	p, bag := newParser(t, "interface bus; endinterface program top; initial x = 1; endprogram", Options{})
	root := p.ParseFile()
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	if len(root.Children) != 2 {
		t.Fatalf("units = %d, want 2", len(root.Children))
	}
	if got := root.String(); got != "interface bus; endinterface\nprogram top; initial (x = 1); endprogram" {
		t.Fatalf("file = %q", got)
	}
}

func TestContinuousAssignNeedsAssignment(t *testing.T) {
	p, bag := newParser(t, "assign a + b;", Options{})
	p.ParseFile()
	if got := codes(bag); len(got) != 1 || got[0] != diag.SynExpectExpression {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
}

// parseTerminates runs fn and fails when it does not return in time.
func parseTerminates(t *testing.T, what string, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatalf("%s did not terminate", what)
	}
}

func synthetic(kinds ...token.Kind) []token.Token {
	toks := make([]token.Token, len(kinds))
	for i, k := range kinds {
		toks[i] = token.Token{Kind: k, Text: k.Text()}
	}
	return toks
}

func parseAllWays(toks []token.Token) {
	ParseFile(toks, Options{})
	ParseExpression(toks, Options{Property: true})
	p := New(toks, Options{})
	for !p.AtEOF() {
		before := p.pos
		p.ParseStatement()
		if p.pos == before {
			p.advance()
		}
	}
}

func TestParserTerminatesOnEveryPair(t *testing.T) {
	parseTerminates(t, "pair sweep", func() {
		for a := token.Kind(1); a < token.NumKinds; a++ {
			parseAllWays(synthetic(a))
			for b := token.Kind(1); b < token.NumKinds; b++ {
				parseAllWays(synthetic(a, b))
			}
		}
	})
}

func TestParserTerminatesOnRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	parseTerminates(t, "random sweep", func() {
		for i := 0; i < 2000; i++ {
			kinds := make([]token.Kind, 1+rng.Intn(24))
			for j := range kinds {
				kinds[j] = token.Kind(1 + rng.Intn(int(token.NumKinds)-1))
			}
			parseAllWays(synthetic(kinds...))
		}
	})
}

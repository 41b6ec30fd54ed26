package parser

import (
	"strings"
	"testing"

	"svfacts/internal/diag"
	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

func TestStatements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"nonblocking assignment", "a <= b + c;", "(a <= (b + c));"},
		{"relational under blocking assignment", "x = a <= b;", "(x = (a <= b));"},
		{"empty", ";", ";"},
		{"sequential block", "begin x = 1; y <= 2; end", "begin (x = 1); (y <= 2); end"},
		{"labelled block", "begin : blk x = 1; end : blk", "begin (x = 1); end"},
		{"parallel block", "fork a = 1; b = 2; join_any", "fork (a = 1); (b = 2); join_any"},
		{"if else", "if (a) b = 1; else b = 2;", "if (a) (b = 1); else (b = 2);"},
		{"event control", "@(posedge clk or negedge rst) q <= d;", "@(posedge clk or negedge rst) (q <= d);"},
		{"implicit event list", "@* y = a;", "@* (y = a);"},
		{"delay control", "#5 x = 1;", "#5 (x = 1);"},
		{"wait for edge", "@(posedge clk);", "@(posedge clk) ;"},
		{"declaration with modifiers", "const var int x = 1, y;", "const var int x = 1, y;"},
		{"packed and unpacked dimensions", "logic [7:0] mem [4];", "logic[7:0] mem[4];"},
		{"user type", "state_t s = IDLE;", "state_t s = IDLE;"},
		{"call statement", "$display(\"%d\", x);", "$display(\"%d\", x);"},
		{"increment", "i++;", "(i++);"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, bag := newParser(t, tt.input, Options{})
			got := p.ParseStatement()
			if bag.Len() != 0 {
				t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
			}
			if !p.AtEOF() {
				t.Fatalf("input not fully consumed, stopped at %v", p.peek())
			}
			if got.String() != tt.want {
				t.Fatalf("%q parsed as %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestNonblockingOnlyAtTop(t *testing.T) {
	p, _ := newParser(t, "x = a <= b;", Options{})
	root := p.ParseStatement()
	if root.Find(syntax.NonblockingAssignmentExpression) != nil {
		t.Fatalf("nested '<=' became a nonblocking assignment: %s", root)
	}
	if root.Find(syntax.LessThanEqualExpression) == nil {
		t.Fatalf("nested '<=' should be relational: %s", root)
	}

	p, _ = newParser(t, "x <= a <= b;", Options{})
	root = p.ParseStatement()
	nba := root.Find(syntax.NonblockingAssignmentExpression)
	if nba == nil || nba.Children[1].Kind != syntax.LessThanEqualExpression {
		t.Fatalf("x <= a <= b parsed as %s", root)
	}
}

func TestUnsupportedStatementIsSkippedWhole(t *testing.T) {
	p, bag := newParser(t, "begin case (x) 1: begin a = 1; end endcase y = 2; end", Options{})
	root := p.ParseBlock()
	if p.Errors() != 0 {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
	if got := codes(bag); len(got) != 1 || got[0] != diag.SynSkippedTokens {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	if len(root.Children) != 2 || root.Children[0].Kind != syntax.SkippedTokens {
		t.Fatalf("block = %s", root)
	}
	if got := root.Children[1].String(); got != "(y = 2);" {
		t.Fatalf("statement after case = %s", got)
	}
	if !p.AtEOF() || root.Close.Kind != token.KwEnd {
		t.Fatalf("block not closed: %s", root)
	}
}

func TestMissingSemicolonFix(t *testing.T) {
	p, bag := newParser(t, "x = 1", Options{})
	p.ParseStatement()
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynExpectSemicolon {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	fixes := items[0].Fixes
	if len(fixes) != 1 || len(fixes[0].Edits) != 1 {
		t.Fatalf("fix = %+v", fixes)
	}
	edit := fixes[0].Edits[0]
	if edit.NewText != ";" || edit.Span.Start != 5 || edit.Span.End != 5 {
		t.Fatalf("edit = %+v, want ';' at 5", edit)
	}
}

func TestMissingSemicolonKeepsNextStatement(t *testing.T) {
	p, bag := newParser(t, "begin x = 1 y = 2; end", Options{})
	root := p.ParseBlock()
	if got := codes(bag); len(got) != 1 || got[0] != diag.SynExpectSemicolon {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	if len(root.Children) != 2 || root.Children[1].String() != "(y = 2);" {
		t.Fatalf("block = %s", root)
	}
}

func TestModifiers(t *testing.T) {
	tests := []struct {
		input string
		bad   int
	}{
		{"const var", 0},
		{"var static", 0},
		{"const automatic", 0},
		{"var const", 1},
		{"static static", 1},
		{"const const var", 1},
	}
	for _, tt := range tests {
		p, bag := newParser(t, tt.input, Options{})
		mods := p.ParseModifiers()
		if mods == nil || len(mods.Tokens) != len(p.toks)-1 {
			t.Fatalf("%q: modifiers = %v", tt.input, mods)
		}
		if got := bag.Len(); got != tt.bad {
			t.Fatalf("%q: %d diagnostics, want %d: %s", tt.input, got, tt.bad, diagnosticsSummary(bag))
		}
		for _, d := range bag.Items() {
			if d.Code != diag.SynModifierNotAllowed {
				t.Fatalf("%q: unexpected %s", tt.input, d.Code)
			}
		}
	}

	p, _ := newParser(t, "int x;", Options{})
	if p.ParseModifiers() != nil || p.pos != 0 {
		t.Fatalf("non-modifier consumed")
	}
}

func TestModifierDiagnosticPointsAtOffender(t *testing.T) {
	p, bag := newParser(t, "var const int x;", Options{})
	p.ParseStatement()
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	if sp := items[0].Primary; sp.Start != 4 || sp.End != 9 {
		t.Fatalf("span = %v, want the 'const' token", sp)
	}
}

func TestParseStatements(t *testing.T) {
	res := ParseStatements(lex(t, "a = 1; b <= c;"), Options{})
	if res.Errors != 0 || len(res.Root.Children) != 2 {
		t.Fatalf("errors = %d, statements = %d", res.Errors, len(res.Root.Children))
	}
	if got := res.Root.String(); got != "(a = 1);\n(b <= c);" {
		t.Fatalf("statements = %q", got)
	}

	bag := diag.NewBag(0)
	res = ParseStatements(lex(t, "end a = 1;"), Options{Reporter: diag.BagReporter{Bag: bag}})
	if res.Errors != 1 || !strings.Contains(res.Root.String(), "(a = 1);") {
		t.Fatalf("stray end: errors = %d, tree = %q", res.Errors, res.Root.String())
	}
	if got := codes(bag); len(got) != 1 || got[0] != diag.SynUnexpectedToken {
		t.Fatalf("stray end diagnostics = %s", diagnosticsSummary(bag))
	}
}

package parser

import (
	"strings"
	"testing"

	"svfacts/internal/diag"
	"svfacts/internal/syntax"
	"svfacts/internal/token"
	"svfacts/internal/trace"
)

func TestUnclosedBlock(t *testing.T) {
	p, bag := newParser(t, "begin x = 1;", Options{})
	root := p.ParseBlock()
	if !p.AtEOF() {
		t.Fatalf("stopped at %v", p.peek())
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynUnclosedDelimiter {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	if sp := items[0].Primary; sp.Start != 0 || sp.End != 5 {
		t.Fatalf("primary = %v, want the 'begin' token", sp)
	}
	if len(items[0].Fixes) != 1 || items[0].Fixes[0].Edits[0].NewText != " end" {
		t.Fatalf("fixes = %+v", items[0].Fixes)
	}
	if got := root.String(); got != "begin (x = 1); end" {
		t.Fatalf("block = %s", got)
	}
	if root.Close.Kind != token.Unknown {
		t.Fatalf("missing closer recorded as %v", root.Close)
	}
}

func TestMismatchedEndIsConsumed(t *testing.T) {
	p, bag := newParser(t, "begin x = 1; join", Options{})
	p.ParseBlock()
	if got := codes(bag); len(got) != 1 || got[0] != diag.SynMismatchedDelimiter {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	if len(bag.Items()[0].Notes) != 1 {
		t.Fatalf("mismatch should point back at the opener")
	}
	if !p.AtEOF() {
		t.Fatalf("'join' was not consumed")
	}
}

func TestMismatchedEndOwnedByEnclosingBlock(t *testing.T) {
	p, bag := newParser(t, "fork begin x = 1; join", Options{})
	root := p.ParseBlock()
	if got := codes(bag); len(got) != 1 || got[0] != diag.SynMismatchedDelimiter {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	if root.Kind != syntax.ParallelBlockStatement || root.Close.Kind != token.KwJoin {
		t.Fatalf("fork not closed by join: %s", root)
	}
	if !p.AtEOF() {
		t.Fatalf("stopped at %v", p.peek())
	}
}

func TestMismatchedBracket(t *testing.T) {
	p, bag := newParser(t, "(a + b]", Options{})
	root := p.ParseExpression()
	p.Finish()
	if got := codes(bag); len(got) != 1 || got[0] != diag.SynMismatchedDelimiter {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	if got := root.String(); got != "(a + b)" {
		t.Fatalf("expression = %s", got)
	}
}

func TestJunkBeforeCloser(t *testing.T) {
	p, bag := newParser(t, "f(a b)", Options{})
	root := p.ParseExpression()
	p.Finish()
	if got := codes(bag); len(got) != 1 || got[0] != diag.SynUnexpectedToken {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	if !strings.Contains(bag.Items()[0].Message, "'b'") {
		t.Fatalf("message = %q", bag.Items()[0].Message)
	}
	if got := root.String(); got != "f(a)" {
		t.Fatalf("expression = %s", got)
	}
	if root.Close.Kind != token.RParen {
		t.Fatalf("call not closed")
	}
}

func TestSkipToStops(t *testing.T) {
	tests := []struct {
		name  string
		input string
		open  token.Kind
		count int
		stop  token.Kind
	}{
		{"semicolon", "a (b, c) x ; d", token.Unknown, 7, token.Semicolon},
		{"matching closer past nested brackets", "x [a)] ) y", token.LParen, 5, token.RParen},
		{"end keyword", "x y endmodule z", token.Unknown, 2, token.KwEndModule},
		{"end of input", "x y", token.LBracket, 2, token.EOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newParser(t, tt.input, Options{})
			n := p.skipTo(tt.open)
			if n == nil || len(n.Tokens) != tt.count {
				t.Fatalf("skipped %v, want %d tokens", n, tt.count)
			}
			if !p.at(tt.stop) {
				t.Fatalf("stopped at %v, want %v", p.peek(), tt.stop)
			}
		})
	}

	p, _ := newParser(t, "; x", Options{})
	if n := p.skipTo(token.Unknown); n != nil || p.pos != 0 {
		t.Fatalf("skipTo consumed its stop token")
	}
}

func TestMaxErrors(t *testing.T) {
	bag := diag.NewBag(0)
	res := ParseFile(lex(t, "+ ; + ; + ; + ;"), Options{MaxErrors: 2, Reporter: diag.BagReporter{Bag: bag}})
	if res.Errors != 4 {
		t.Fatalf("Errors = %d, want 4", res.Errors)
	}
	got := codes(bag)
	if len(got) != 3 || got[2] != diag.SynTooManyErrors {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	if len(res.Root.Children) != 4 {
		t.Fatalf("items = %d, want 4", len(res.Root.Children))
	}
}

func TestRecoveryIsTraced(t *testing.T) {
	tracer := trace.NewRingTracer(64, trace.LevelDebug)
	p, _ := newParser(t, "f(a b)", Options{Tracer: tracer, TraceParent: 7})
	p.ParseExpression()
	var found bool
	for _, ev := range tracer.Snapshot() {
		if ev.Name == "recover" && ev.Scope == trace.ScopeNode && ev.Kind == trace.KindPoint {
			found = true
			if ev.ParentID != 7 {
				t.Fatalf("parent = %d, want 7", ev.ParentID)
			}
		}
	}
	if !found {
		t.Fatalf("no recover event in %+v", tracer.Snapshot())
	}

	quiet := trace.NewRingTracer(64, trace.LevelDetail)
	p, _ = newParser(t, "f(a b)", Options{Tracer: quiet})
	p.ParseExpression()
	if n := len(quiet.Snapshot()); n != 0 {
		t.Fatalf("node events leaked at detail level: %d", n)
	}
}

package token_test

import (
	"testing"

	"svfacts/internal/source"
	"svfacts/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestEveryKindHasName(t *testing.T) {
	seen := make(map[string]token.Kind, token.NumKinds)
	for k := token.Unknown; k < token.NumKinds; k++ {
		name := k.String()
		if name == "" {
			t.Fatalf("kind %d has no name", k)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("name %q shared by kinds %d and %d", name, prev, k)
		}
		seen[name] = k
	}
}

func TestSpellingsRoundTrip(t *testing.T) {
	for k := token.Unknown; k < token.NumKinds; k++ {
		switch {
		case k.IsKeyword():
			got, ok := token.LookupKeyword(k.Text())
			if !ok || got != k {
				t.Fatalf("keyword %v does not round-trip through %q", k, k.Text())
			}
		case k.IsPunctOrOp():
			got, ok := token.LookupPunct(k.Text())
			if !ok || got != k {
				t.Fatalf("punctuation %v does not round-trip through %q", k, k.Text())
			}
		}
	}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.StringLit, token.IntLit, token.IntBase, token.UnbasedUnsizedLit,
		token.RealLit, token.TimeLit, token.OneStep,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwNull, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestKeywordAndPunctRangesDisjoint(t *testing.T) {
	for k := token.Unknown; k < token.NumKinds; k++ {
		if k.IsKeyword() && k.IsPunctOrOp() {
			t.Fatalf("%v is both keyword and punctuation", k)
		}
	}
	if token.Ident.IsKeyword() || token.UnitSystemName.IsKeyword() {
		t.Fatalf("identifiers and system names are not keywords")
	}
}

func TestOutOfRangeKind(t *testing.T) {
	k := token.NumKinds + 3
	if k.String() != "Kind(?)" || k.Text() != "" {
		t.Fatalf("out-of-range kind should render as placeholder")
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.EOF}, "end of file"},
		{token.Token{Kind: token.Ident, Text: "clk"}, "clk"},
		{token.Token{Kind: token.KwEndModule}, "endmodule"},
		{token.Token{Kind: token.IntLit}, "IntLit"},
	}
	for _, c := range cases {
		if got := c.tok.Describe(); got != c.want {
			t.Fatalf("Describe(%v) = %q, want %q", c.tok.Kind, got, c.want)
		}
	}
}

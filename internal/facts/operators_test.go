package facts_test

import (
	"testing"

	"svfacts/internal/facts"
	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

func TestXnorSynonyms(t *testing.T) {
	a := facts.BinaryExpression(token.CaretTilde)
	b := facts.BinaryExpression(token.TildeCaret)
	if a != syntax.BinaryXnorExpression || a != b {
		t.Fatalf("binary ^~ = %v, ~^ = %v; want both BinaryXnorExpression", a, b)
	}
	if facts.Precedence(a) != facts.Precedence(b) {
		t.Fatalf("synonyms have different precedence")
	}
	u1 := facts.UnaryPrefixExpression(token.CaretTilde)
	u2 := facts.UnaryPrefixExpression(token.TildeCaret)
	if u1 != syntax.UnaryBitwiseXnorExpression || u1 != u2 {
		t.Fatalf("unary ^~ = %v, ~^ = %v; want both UnaryBitwiseXnorExpression", u1, u2)
	}
}

func TestResolutionDependsOnPosition(t *testing.T) {
	cases := []struct {
		tok              token.Kind
		prefix, infix    syntax.Kind
		postfix, keyword syntax.Kind
	}{
		{token.HashHash, syntax.UnarySequenceDelayExpression, syntax.BinarySequenceDelayExpression, syntax.Unknown, syntax.Unknown},
		{token.At, syntax.UnarySequenceEventExpression, syntax.Unknown, syntax.Unknown, syntax.Unknown},
		{token.Amp, syntax.UnaryBitwiseAndExpression, syntax.BinaryAndExpression, syntax.Unknown, syntax.Unknown},
		{token.Minus, syntax.UnaryMinusExpression, syntax.SubtractExpression, syntax.Unknown, syntax.Unknown},
		{token.PlusPlus, syntax.UnaryPreincrementExpression, syntax.Unknown, syntax.PostincrementExpression, syntax.Unknown},
		{token.KwAnd, syntax.Unknown, syntax.AndSequenceExpression, syntax.Unknown, syntax.ArrayAndMethod},
		{token.KwOr, syntax.Unknown, syntax.OrSequenceExpression, syntax.Unknown, syntax.ArrayOrMethod},
		{token.KwNot, syntax.UnaryNotPropertyExpression, syntax.Unknown, syntax.Unknown, syntax.Unknown},
		{token.KwNew, syntax.Unknown, syntax.Unknown, syntax.Unknown, syntax.ConstructorName},
	}
	for _, tc := range cases {
		if got := facts.UnaryPrefixExpression(tc.tok); got != tc.prefix {
			t.Errorf("prefix %v = %v, want %v", tc.tok, got, tc.prefix)
		}
		if got := facts.BinaryExpression(tc.tok); got != tc.infix {
			t.Errorf("infix %v = %v, want %v", tc.tok, got, tc.infix)
		}
		if got := facts.UnaryPostfixExpression(tc.tok); got != tc.postfix {
			t.Errorf("postfix %v = %v, want %v", tc.tok, got, tc.postfix)
		}
		if got := facts.KeywordNameExpression(tc.tok); got != tc.keyword {
			t.Errorf("keyword name %v = %v, want %v", tc.tok, got, tc.keyword)
		}
	}
}

func TestPostfixOnlyIncrementDecrement(t *testing.T) {
	for k := token.Kind(0); k < token.NumKinds; k++ {
		got := facts.UnaryPostfixExpression(k)
		switch k {
		case token.PlusPlus, token.MinusMinus:
			if got == syntax.Unknown {
				t.Errorf("postfix %v unresolved", k)
			}
		default:
			if got != syntax.Unknown {
				t.Errorf("postfix %v = %v, want Unknown", k, got)
			}
		}
	}
}

func TestLiteralExpression(t *testing.T) {
	cases := map[token.Kind]syntax.Kind{
		token.IntLit:            syntax.IntegerLiteralExpression,
		token.UnbasedUnsizedLit: syntax.UnbasedUnsizedLiteralExpression,
		token.KwNull:            syntax.NullLiteralExpression,
		token.Dollar:            syntax.WildcardLiteralExpression,
		token.OneStep:           syntax.OneStepLiteralExpression,
		token.Ident:             syntax.Unknown,
	}
	for tok, want := range cases {
		if got := facts.LiteralExpression(tok); got != want {
			t.Errorf("LiteralExpression(%v) = %v, want %v", tok, got, want)
		}
	}
}

func TestSpecialMethodNames(t *testing.T) {
	for _, tok := range []token.Kind{token.KwUnique, token.KwAnd, token.KwOr, token.KwXor, token.KwNew} {
		if !facts.IsSpecialMethodName(facts.KeywordNameExpression(tok)) {
			t.Errorf("%v should name a special method", tok)
		}
	}
	for _, tok := range []token.Kind{token.KwThis, token.KwSuper, token.KwLocal, token.UnitSystemName} {
		if facts.IsSpecialMethodName(facts.KeywordNameExpression(tok)) {
			t.Errorf("%v should not name a special method", tok)
		}
	}
}

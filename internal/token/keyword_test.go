package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"module":         KwModule,
		"endmodule":      KwEndModule,
		"join_none":      KwJoinNone,
		"s_until_with":   KwSUntilWith,
		"sync_reject_on": KwSyncRejectOn,
		"first_match":    KwFirstMatch,
		"always_ff":      KwAlwaysFF,
		"$unit":          UnitSystemName,
		"$root":          RootSystemName,
		"xor":            KwXor,
		"accept_on":      KwAcceptOn,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Module", "ENDMODULE", // case matters
		"$display", "$bits", // system identifiers
		"foo", "endmodules", "",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestLookupPunct(t *testing.T) {
	cases := map[string]Kind{
		"^~":   CaretTilde,
		"~^":   TildeCaret,
		"|->":  PipeArrow,
		"|=>":  PipeFatArrow,
		"#-#":  HashMinusHash,
		"#=#":  HashEqHash,
		"'{":   ApostropheLBrace,
		"(*":   LParenStar,
		"*)":   StarRParen,
		"<<<=": Shl3Assign,
		"&&&":  AndAndAnd,
	}
	for text, want := range cases {
		got, ok := LookupPunct(text)
		if !ok || got != want {
			t.Fatalf("LookupPunct(%q) = %v, %v; want %v", text, got, ok, want)
		}
	}
	if MaxPunctLen != 4 {
		t.Fatalf("MaxPunctLen = %d, want 4", MaxPunctLen)
	}
}

func TestKeywordCount(t *testing.T) {
	if got := len(keywords); got != 248 {
		t.Fatalf("keyword table has %d entries, want 248", got)
	}
}

package fuzztests

import (
	"testing"

	"svfacts/internal/facts"
	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

// FuzzClassifierTotal feeds arbitrary kinds, in and out of range, through the
// tables and checks the cross-table properties that must always hold.
func FuzzClassifierTotal(f *testing.F) {
	f.Add(uint16(token.Ident), uint16(token.Plus))
	f.Add(uint16(token.KwBegin), uint16(token.KwEnd))
	f.Add(uint16(token.KwFork), uint16(token.KwJoinNone))
	f.Add(uint16(token.NumKinds), uint16(0xffff))
	f.Fuzz(func(t *testing.T, a, b uint16) {
		ka, kb := token.Kind(a), token.Kind(b)

		if op := facts.BinaryExpression(ka); op != syntax.Unknown {
			if facts.Precedence(op) == facts.PrecNone {
				t.Fatalf("binary %v has no precedence", op)
			}
			if !facts.IsPossibleExpression(ka) {
				t.Fatalf("binary operator %v cannot appear in an expression", ka)
			}
		}
		if op := facts.UnaryPrefixExpression(ka); op != syntax.Unknown && !facts.IsPossibleExpression(ka) {
			t.Fatalf("prefix operator %v cannot appear in an expression", ka)
		}
		if closer := facts.CloseOf(ka); closer != token.Unknown && !facts.IsMatchingDelims(ka, closer) {
			t.Fatalf("CloseOf(%v) = %v does not match", ka, closer)
		}
		if facts.IsMatchingDelims(ka, kb) && !facts.IsCloseDelimOrKeyword(kb) {
			t.Fatalf("%v closes %v but is not a closer", kb, ka)
		}

		sk := syntax.Kind(a)
		facts.ShouldFold(sk, int(b%32))
		facts.IsRightAssociative(sk)
		facts.IsSpecialMethodName(sk)
		facts.IsModifierAllowedAfter(ka, kb)
		facts.IsEndOfParenList(ka)
		facts.IsPossibleStatement(ka)
		facts.IsPossibleDataType(ka)
		facts.KeywordNameExpression(ka)
	})
}

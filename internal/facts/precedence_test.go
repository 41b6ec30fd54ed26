package facts_test

import (
	"sync"
	"testing"

	"svfacts/internal/facts"
	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

// operatorKinds is the image of the prefix and binary resolvers plus the
// nonblocking assignment, which the statement parser builds directly.
func operatorKinds() map[syntax.Kind]bool {
	ops := map[syntax.Kind]bool{syntax.NonblockingAssignmentExpression: true}
	for k := token.Kind(0); k < token.NumKinds; k++ {
		if s := facts.UnaryPrefixExpression(k); s != syntax.Unknown {
			ops[s] = true
		}
		if s := facts.BinaryExpression(k); s != syntax.Unknown {
			ops[s] = true
		}
	}
	return ops
}

func TestPrecedenceRange(t *testing.T) {
	ops := operatorKinds()
	for k := syntax.Kind(0); k < syntax.NumKinds; k++ {
		p := facts.Precedence(k)
		if ops[k] {
			if p < 1 || p > facts.MaxPrecedence {
				t.Errorf("operator %v has precedence %d", k, p)
			}
			continue
		}
		if p != 0 {
			t.Errorf("non-operator %v has precedence %d", k, p)
		}
	}
	if facts.Precedence(syntax.NumKinds+5) != 0 {
		t.Errorf("out-of-range kind has precedence")
	}
}

func TestPrecedenceLadder(t *testing.T) {
	// Lowest to highest binding power, one representative per level.
	ladder := []syntax.Kind{
		syntax.AlwaysPropertyExpression,
		syntax.OverlappedImplicationPropertyExpression,
		syntax.UntilPropertyExpression,
		syntax.OrSequenceExpression,
		syntax.AndSequenceExpression,
		syntax.NextTimePropertyExpression,
		syntax.IntersectSequenceExpression,
		syntax.WithinSequenceExpression,
		syntax.ThroughoutSequenceExpression,
		syntax.UnarySequenceDelayExpression,
		syntax.AssignmentExpression,
		syntax.LogicalImplicationExpression,
		syntax.LogicalOrExpression,
		syntax.LogicalAndExpression,
		syntax.BinaryOrExpression,
		syntax.BinaryXorExpression,
		syntax.BinaryAndExpression,
		syntax.EqualityExpression,
		syntax.InsideExpression,
		syntax.LogicalShiftLeftExpression,
		syntax.AddExpression,
		syntax.ModExpression,
		syntax.PowerExpression,
		syntax.UnaryBitwiseNandExpression,
	}
	for i, k := range ladder {
		if got := facts.Precedence(k); got != i+1 {
			t.Errorf("Precedence(%v) = %d, want %d", k, got, i+1)
		}
	}
}

func TestSharedLevels(t *testing.T) {
	same := [][]syntax.Kind{
		{syntax.IffPropertyExpression, syntax.UntilPropertyExpression, syntax.SUntilWithPropertyExpression, syntax.ImpliesPropertyExpression},
		{syntax.NonblockingAssignmentExpression, syntax.AssignmentExpression, syntax.ArithmeticRightShiftAssignmentExpression},
		{syntax.UnarySequenceDelayExpression, syntax.UnarySequenceEventExpression, syntax.BinarySequenceDelayExpression},
		{syntax.UnaryNotPropertyExpression, syntax.SNextTimePropertyExpression},
	}
	for _, group := range same {
		want := facts.Precedence(group[0])
		for _, k := range group[1:] {
			if got := facts.Precedence(k); got != want {
				t.Errorf("Precedence(%v) = %d, want %d like %v", k, got, want, group[0])
			}
		}
	}
}

func TestAssociativity(t *testing.T) {
	right := []syntax.Kind{
		syntax.LogicalImplicationExpression, syntax.LogicalEquivalenceExpression,
		syntax.ThroughoutSequenceExpression, syntax.IffPropertyExpression,
		syntax.UntilPropertyExpression, syntax.SUntilPropertyExpression,
		syntax.UntilWithPropertyExpression, syntax.SUntilWithPropertyExpression,
		syntax.ImpliesPropertyExpression,
		syntax.OverlappedImplicationPropertyExpression, syntax.NonOverlappedImplicationPropertyExpression,
		syntax.OverlappedFollowedByPropertyExpression, syntax.NonOverlappedFollowedByPropertyExpression,
	}
	isRight := make(map[syntax.Kind]bool, len(right))
	for _, k := range right {
		isRight[k] = true
	}
	for k := syntax.Kind(0); k < syntax.NumKinds+2; k++ {
		if got := facts.IsRightAssociative(k); got != isRight[k] {
			t.Errorf("IsRightAssociative(%v) = %v, want %v", k, got, isRight[k])
		}
	}
	if facts.IsRightAssociative(syntax.PowerExpression) {
		t.Errorf("power must stay left-associative")
	}
}

func TestShouldFold(t *testing.T) {
	cases := []struct {
		name string
		op   syntax.Kind
		min  int
		want bool
	}{
		{"tighter", syntax.MultiplyExpression, facts.PrecAdditive, true},
		{"looser", syntax.AddExpression, facts.PrecMultiplicative, false},
		{"equal left", syntax.SubtractExpression, facts.PrecAdditive, false},
		{"equal right", syntax.UntilPropertyExpression, facts.PrecUntil, true},
		{"equal right implication", syntax.OverlappedImplicationPropertyExpression, facts.PrecImplication, true},
		{"equal power", syntax.PowerExpression, facts.PrecPower, false},
		{"non-operator", syntax.IdentifierName, 0, false},
		{"unknown", syntax.Unknown, 0, false},
	}
	for _, tc := range cases {
		if got := facts.ShouldFold(tc.op, tc.min); got != tc.want {
			t.Errorf("%s: ShouldFold(%v, %d) = %v, want %v", tc.name, tc.op, tc.min, got, tc.want)
		}
	}
}

func TestTemporalOperators(t *testing.T) {
	if !facts.IsTemporalOperator(syntax.ThroughoutSequenceExpression) {
		t.Errorf("throughout should be temporal")
	}
	if !facts.IsTemporalOperator(syntax.BinarySequenceDelayExpression) {
		t.Errorf("## should be temporal")
	}
	if facts.IsTemporalOperator(syntax.AssignmentExpression) {
		t.Errorf("assignment should not be temporal")
	}
	if facts.IsTemporalOperator(syntax.IdentifierName) {
		t.Errorf("identifier should not be temporal")
	}
}

func TestConcurrentLookups(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := token.Kind(0); k < token.NumKinds; k++ {
				op := facts.BinaryExpression(k)
				if op != syntax.Unknown && facts.Precedence(op) == 0 {
					errs <- op.String()
					return
				}
				_ = facts.IsPossibleExpression(k)
				_ = facts.CloseOf(k)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Errorf("binary operator %s lost its precedence", e)
	}
}

func TestOperatorShape(t *testing.T) {
	binary := []syntax.Kind{syntax.AddExpression, syntax.BinarySequenceDelayExpression, syntax.NonblockingAssignmentExpression, syntax.InsideExpression}
	unary := []syntax.Kind{syntax.UnaryMinusExpression, syntax.UnarySequenceDelayExpression, syntax.PostincrementExpression, syntax.AlwaysPropertyExpression}
	for _, k := range binary {
		if !facts.IsBinaryOperator(k) || facts.IsUnaryOperator(k) {
			t.Errorf("%v should be binary only", k)
		}
	}
	for _, k := range unary {
		if !facts.IsUnaryOperator(k) || facts.IsBinaryOperator(k) {
			t.Errorf("%v should be unary only", k)
		}
	}
	for _, k := range []syntax.Kind{syntax.Unknown, syntax.IdentifierName, syntax.NumKinds + 1} {
		if facts.IsUnaryOperator(k) || facts.IsBinaryOperator(k) {
			t.Errorf("%v classified as an operator", k)
		}
	}
	for k := syntax.Kind(0); k < syntax.NumKinds; k++ {
		if facts.IsBinaryOperator(k) && !facts.IsOperator(k) {
			t.Errorf("binary %v has no precedence", k)
		}
	}
}

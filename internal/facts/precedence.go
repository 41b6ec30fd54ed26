package facts

import (
	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

// Binding power levels, lowest first. Level 0 means "not an operator".
const (
	PrecNone           = 0
	PrecPropertyAlways = 1  // always eventually accept_on ... (unary)
	PrecImplication    = 2  // |-> |=> #-# #=#
	PrecUntil          = 3  // until s_until until_with s_until_with implies iff
	PrecSequenceOr     = 4  // or
	PrecSequenceAnd    = 5  // and
	PrecPropertyNot    = 6  // not nexttime s_nexttime
	PrecIntersect      = 7  // intersect
	PrecWithin         = 8  // within
	PrecThroughout     = 9  // throughout
	PrecSequenceDelay  = 10 // ## @ (unary and binary)
	PrecAssignment     = 11 // = += ... <=
	PrecLogicalImplies = 12 // -> <->
	PrecLogicalOr      = 13 // ||
	PrecLogicalAnd     = 14 // &&
	PrecBitwiseOr      = 15 // |
	PrecBitwiseXor     = 16 // ^ ^~ ~^
	PrecBitwiseAnd     = 17 // &
	PrecEquality       = 18 // == != === !== ==? !=?
	PrecRelational     = 19 // < <= > >= inside
	PrecShift          = 20 // << >> <<< >>>
	PrecAdditive       = 21 // + -
	PrecMultiplicative = 22 // * / %
	PrecPower          = 23 // **
	PrecUnary          = 24 // + - ! ~ & ~& | ~| ^ ~^ ^~ ++ --
	MaxPrecedence      = PrecUnary
)

// precedence is indexed by syntax.Kind. A duplicate index is a compile
// error, so every operator kind has exactly one entry.
var precedence = [syntax.NumKinds]uint8{
	syntax.AlwaysPropertyExpression:       PrecPropertyAlways,
	syntax.SAlwaysPropertyExpression:      PrecPropertyAlways,
	syntax.EventuallyPropertyExpression:   PrecPropertyAlways,
	syntax.SEventuallyPropertyExpression:  PrecPropertyAlways,
	syntax.AcceptOnPropertyExpression:     PrecPropertyAlways,
	syntax.RejectOnPropertyExpression:     PrecPropertyAlways,
	syntax.SyncAcceptOnPropertyExpression: PrecPropertyAlways,
	syntax.SyncRejectOnPropertyExpression: PrecPropertyAlways,

	syntax.OverlappedImplicationPropertyExpression:    PrecImplication,
	syntax.NonOverlappedImplicationPropertyExpression: PrecImplication,
	syntax.OverlappedFollowedByPropertyExpression:     PrecImplication,
	syntax.NonOverlappedFollowedByPropertyExpression:  PrecImplication,

	syntax.UntilPropertyExpression:      PrecUntil,
	syntax.SUntilPropertyExpression:     PrecUntil,
	syntax.UntilWithPropertyExpression:  PrecUntil,
	syntax.SUntilWithPropertyExpression: PrecUntil,
	syntax.ImpliesPropertyExpression:    PrecUntil,
	syntax.IffPropertyExpression:        PrecUntil,

	syntax.OrSequenceExpression:  PrecSequenceOr,
	syntax.AndSequenceExpression: PrecSequenceAnd,

	syntax.UnaryNotPropertyExpression:  PrecPropertyNot,
	syntax.NextTimePropertyExpression:  PrecPropertyNot,
	syntax.SNextTimePropertyExpression: PrecPropertyNot,

	syntax.IntersectSequenceExpression:  PrecIntersect,
	syntax.WithinSequenceExpression:     PrecWithin,
	syntax.ThroughoutSequenceExpression: PrecThroughout,

	syntax.BinarySequenceDelayExpression: PrecSequenceDelay,
	syntax.UnarySequenceDelayExpression:  PrecSequenceDelay,
	syntax.UnarySequenceEventExpression:  PrecSequenceDelay,

	syntax.AssignmentExpression:                     PrecAssignment,
	syntax.AddAssignmentExpression:                  PrecAssignment,
	syntax.SubtractAssignmentExpression:             PrecAssignment,
	syntax.MultiplyAssignmentExpression:             PrecAssignment,
	syntax.DivideAssignmentExpression:               PrecAssignment,
	syntax.ModAssignmentExpression:                  PrecAssignment,
	syntax.AndAssignmentExpression:                  PrecAssignment,
	syntax.OrAssignmentExpression:                   PrecAssignment,
	syntax.XorAssignmentExpression:                  PrecAssignment,
	syntax.LogicalLeftShiftAssignmentExpression:     PrecAssignment,
	syntax.LogicalRightShiftAssignmentExpression:    PrecAssignment,
	syntax.ArithmeticLeftShiftAssignmentExpression:  PrecAssignment,
	syntax.ArithmeticRightShiftAssignmentExpression: PrecAssignment,
	syntax.NonblockingAssignmentExpression:          PrecAssignment,

	syntax.LogicalImplicationExpression: PrecLogicalImplies,
	syntax.LogicalEquivalenceExpression: PrecLogicalImplies,

	syntax.LogicalOrExpression:  PrecLogicalOr,
	syntax.LogicalAndExpression: PrecLogicalAnd,

	syntax.BinaryOrExpression:   PrecBitwiseOr,
	syntax.BinaryXorExpression:  PrecBitwiseXor,
	syntax.BinaryXnorExpression: PrecBitwiseXor,
	syntax.BinaryAndExpression:  PrecBitwiseAnd,

	syntax.EqualityExpression:           PrecEquality,
	syntax.InequalityExpression:         PrecEquality,
	syntax.CaseEqualityExpression:       PrecEquality,
	syntax.CaseInequalityExpression:     PrecEquality,
	syntax.WildcardEqualityExpression:   PrecEquality,
	syntax.WildcardInequalityExpression: PrecEquality,

	syntax.LessThanExpression:         PrecRelational,
	syntax.LessThanEqualExpression:    PrecRelational,
	syntax.GreaterThanExpression:      PrecRelational,
	syntax.GreaterThanEqualExpression: PrecRelational,
	syntax.InsideExpression:           PrecRelational,

	syntax.LogicalShiftLeftExpression:     PrecShift,
	syntax.LogicalShiftRightExpression:    PrecShift,
	syntax.ArithmeticShiftLeftExpression:  PrecShift,
	syntax.ArithmeticShiftRightExpression: PrecShift,

	syntax.AddExpression:      PrecAdditive,
	syntax.SubtractExpression: PrecAdditive,

	syntax.MultiplyExpression: PrecMultiplicative,
	syntax.DivideExpression:   PrecMultiplicative,
	syntax.ModExpression:      PrecMultiplicative,

	// Left-associative, unlike the mathematical convention.
	syntax.PowerExpression: PrecPower,

	syntax.UnaryPlusExpression:         PrecUnary,
	syntax.UnaryMinusExpression:        PrecUnary,
	syntax.UnaryLogicalNotExpression:   PrecUnary,
	syntax.UnaryBitwiseNotExpression:   PrecUnary,
	syntax.UnaryBitwiseAndExpression:   PrecUnary,
	syntax.UnaryBitwiseNandExpression:  PrecUnary,
	syntax.UnaryBitwiseOrExpression:    PrecUnary,
	syntax.UnaryBitwiseNorExpression:   PrecUnary,
	syntax.UnaryBitwiseXorExpression:   PrecUnary,
	syntax.UnaryBitwiseXnorExpression:  PrecUnary,
	syntax.UnaryPreincrementExpression: PrecUnary,
	syntax.UnaryPredecrementExpression: PrecUnary,
}

var rightAssociative = [syntax.NumKinds]bool{
	syntax.LogicalImplicationExpression:               true,
	syntax.LogicalEquivalenceExpression:               true,
	syntax.ThroughoutSequenceExpression:               true,
	syntax.IffPropertyExpression:                      true,
	syntax.UntilPropertyExpression:                    true,
	syntax.SUntilPropertyExpression:                   true,
	syntax.UntilWithPropertyExpression:                true,
	syntax.SUntilWithPropertyExpression:               true,
	syntax.ImpliesPropertyExpression:                  true,
	syntax.OverlappedImplicationPropertyExpression:    true,
	syntax.NonOverlappedImplicationPropertyExpression: true,
	syntax.OverlappedFollowedByPropertyExpression:     true,
	syntax.NonOverlappedFollowedByPropertyExpression:  true,
}

// Precedence returns the binding power of kind in [0, MaxPrecedence].
// Non-operator kinds return 0 and must never be folded.
func Precedence(kind syntax.Kind) int {
	if kind >= syntax.NumKinds {
		return PrecNone
	}
	return int(precedence[kind])
}

// IsRightAssociative reports whether chains of kind group to the right.
func IsRightAssociative(kind syntax.Kind) bool {
	if kind >= syntax.NumKinds {
		return false
	}
	return rightAssociative[kind]
}

// ShouldFold reports whether a precedence-climbing loop whose pending level
// is minPrec must consume an incoming operator of kind op: the operator
// binds tighter, or binds equally and groups to the right.
func ShouldFold(op syntax.Kind, minPrec int) bool {
	prec := Precedence(op)
	if prec == PrecNone || prec < minPrec {
		return false
	}
	if prec == minPrec && !IsRightAssociative(op) {
		return false
	}
	return true
}

// IsOperator reports whether kind has a binding power.
func IsOperator(kind syntax.Kind) bool {
	return Precedence(kind) != PrecNone
}

// IsTemporalOperator reports whether kind belongs to the sequence/property
// family (levels 1 through 10).
func IsTemporalOperator(kind syntax.Kind) bool {
	p := Precedence(kind)
	return p != PrecNone && p <= PrecSequenceDelay
}

type operatorShape uint8

const (
	shapeNone operatorShape = iota
	shapeUnary
	shapeBinary
)

// shapes is derived from the resolvers once and never written again.
var shapes = buildShapes()

func buildShapes() (s [syntax.NumKinds]operatorShape) {
	for k := token.Kind(0); k < token.NumKinds; k++ {
		if op := UnaryPrefixExpression(k); op != syntax.Unknown {
			s[op] = shapeUnary
		}
		if op := UnaryPostfixExpression(k); op != syntax.Unknown {
			s[op] = shapeUnary
		}
		if op := BinaryExpression(k); op != syntax.Unknown {
			s[op] = shapeBinary
		}
	}
	s[syntax.NonblockingAssignmentExpression] = shapeBinary
	return s
}

// IsBinaryOperator reports whether kind is an infix operator kind, including
// the nonblocking assignment built by statement parsing.
func IsBinaryOperator(kind syntax.Kind) bool {
	return kind < syntax.NumKinds && shapes[kind] == shapeBinary
}

// IsUnaryOperator reports whether kind is a prefix or postfix operator kind.
// Postfix kinds are unary but carry no precedence.
func IsUnaryOperator(kind syntax.Kind) bool {
	return kind < syntax.NumKinds && shapes[kind] == shapeUnary
}

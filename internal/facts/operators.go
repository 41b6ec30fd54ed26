package facts

import (
	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

// The same token resolves differently depending on which resolver the
// parser calls: '##' is a unary delay in prefix position and a binary
// delay in infix position, 'and' is a sequence operator in infix position
// and an array method name after '.'. Callers pick the resolver that
// matches their grammatical position.

// UnaryPrefixExpression returns the kind of the prefix operator denoted by
// kind, or syntax.Unknown.
func UnaryPrefixExpression(kind token.Kind) syntax.Kind {
	switch kind {
	case token.Plus:
		return syntax.UnaryPlusExpression
	case token.Minus:
		return syntax.UnaryMinusExpression
	case token.Amp:
		return syntax.UnaryBitwiseAndExpression
	case token.TildeAmp:
		return syntax.UnaryBitwiseNandExpression
	case token.Pipe:
		return syntax.UnaryBitwiseOrExpression
	case token.TildePipe:
		return syntax.UnaryBitwiseNorExpression
	case token.Caret:
		return syntax.UnaryBitwiseXorExpression
	case token.CaretTilde, token.TildeCaret:
		return syntax.UnaryBitwiseXnorExpression
	case token.PlusPlus:
		return syntax.UnaryPreincrementExpression
	case token.MinusMinus:
		return syntax.UnaryPredecrementExpression
	case token.Tilde:
		return syntax.UnaryBitwiseNotExpression
	case token.Bang:
		return syntax.UnaryLogicalNotExpression
	case token.HashHash:
		return syntax.UnarySequenceDelayExpression
	case token.At:
		return syntax.UnarySequenceEventExpression
	case token.KwAcceptOn:
		return syntax.AcceptOnPropertyExpression
	case token.KwRejectOn:
		return syntax.RejectOnPropertyExpression
	case token.KwSyncAcceptOn:
		return syntax.SyncAcceptOnPropertyExpression
	case token.KwSyncRejectOn:
		return syntax.SyncRejectOnPropertyExpression
	case token.KwNot:
		return syntax.UnaryNotPropertyExpression
	case token.KwNextTime:
		return syntax.NextTimePropertyExpression
	case token.KwSNextTime:
		return syntax.SNextTimePropertyExpression
	case token.KwAlways:
		return syntax.AlwaysPropertyExpression
	case token.KwSAlways:
		return syntax.SAlwaysPropertyExpression
	case token.KwEventually:
		return syntax.EventuallyPropertyExpression
	case token.KwSEventually:
		return syntax.SEventuallyPropertyExpression
	default:
		return syntax.Unknown
	}
}

// UnaryPostfixExpression returns the kind of the postfix operator denoted by
// kind. Only '++' and '--' are postfix operators.
func UnaryPostfixExpression(kind token.Kind) syntax.Kind {
	switch kind {
	case token.PlusPlus:
		return syntax.PostincrementExpression
	case token.MinusMinus:
		return syntax.PostdecrementExpression
	default:
		return syntax.Unknown
	}
}

// LiteralExpression returns the literal kind for kind, or syntax.Unknown.
func LiteralExpression(kind token.Kind) syntax.Kind {
	switch kind {
	case token.StringLit:
		return syntax.StringLiteralExpression
	case token.IntLit:
		return syntax.IntegerLiteralExpression
	case token.UnbasedUnsizedLit:
		return syntax.UnbasedUnsizedLiteralExpression
	case token.RealLit:
		return syntax.RealLiteralExpression
	case token.TimeLit:
		return syntax.TimeLiteralExpression
	case token.KwNull:
		return syntax.NullLiteralExpression
	case token.Dollar:
		return syntax.WildcardLiteralExpression
	case token.OneStep:
		return syntax.OneStepLiteralExpression
	default:
		return syntax.Unknown
	}
}

// BinaryExpression returns the kind of the infix operator denoted by kind,
// or syntax.Unknown. '^~' and '~^' both resolve to BinaryXnorExpression.
func BinaryExpression(kind token.Kind) syntax.Kind {
	switch kind {
	// arithmetic
	case token.Plus:
		return syntax.AddExpression
	case token.Minus:
		return syntax.SubtractExpression
	case token.Star:
		return syntax.MultiplyExpression
	case token.Slash:
		return syntax.DivideExpression
	case token.Percent:
		return syntax.ModExpression
	case token.StarStar:
		return syntax.PowerExpression

	// equality
	case token.EqEq:
		return syntax.EqualityExpression
	case token.BangEq:
		return syntax.InequalityExpression
	case token.EqEqEq:
		return syntax.CaseEqualityExpression
	case token.BangEqEq:
		return syntax.CaseInequalityExpression
	case token.EqEqQuestion:
		return syntax.WildcardEqualityExpression
	case token.BangEqQuestion:
		return syntax.WildcardInequalityExpression

	// logical
	case token.AndAnd:
		return syntax.LogicalAndExpression
	case token.OrOr:
		return syntax.LogicalOrExpression
	case token.Arrow:
		return syntax.LogicalImplicationExpression
	case token.LtArrow:
		return syntax.LogicalEquivalenceExpression

	// relational
	case token.Lt:
		return syntax.LessThanExpression
	case token.LtEq:
		return syntax.LessThanEqualExpression
	case token.Gt:
		return syntax.GreaterThanExpression
	case token.GtEq:
		return syntax.GreaterThanEqualExpression
	case token.KwInside:
		return syntax.InsideExpression

	// bitwise
	case token.Amp:
		return syntax.BinaryAndExpression
	case token.Pipe:
		return syntax.BinaryOrExpression
	case token.Caret:
		return syntax.BinaryXorExpression
	case token.CaretTilde, token.TildeCaret:
		return syntax.BinaryXnorExpression

	// shifts
	case token.Shr:
		return syntax.LogicalShiftRightExpression
	case token.Shr3:
		return syntax.ArithmeticShiftRightExpression
	case token.Shl:
		return syntax.LogicalShiftLeftExpression
	case token.Shl3:
		return syntax.ArithmeticShiftLeftExpression

	// assignment
	case token.Assign:
		return syntax.AssignmentExpression
	case token.PlusAssign:
		return syntax.AddAssignmentExpression
	case token.MinusAssign:
		return syntax.SubtractAssignmentExpression
	case token.StarAssign:
		return syntax.MultiplyAssignmentExpression
	case token.SlashAssign:
		return syntax.DivideAssignmentExpression
	case token.PercentAssign:
		return syntax.ModAssignmentExpression
	case token.AmpAssign:
		return syntax.AndAssignmentExpression
	case token.PipeAssign:
		return syntax.OrAssignmentExpression
	case token.CaretAssign:
		return syntax.XorAssignmentExpression
	case token.ShlAssign:
		return syntax.LogicalLeftShiftAssignmentExpression
	case token.Shl3Assign:
		return syntax.ArithmeticLeftShiftAssignmentExpression
	case token.ShrAssign:
		return syntax.LogicalRightShiftAssignmentExpression
	case token.Shr3Assign:
		return syntax.ArithmeticRightShiftAssignmentExpression

	// sequences and properties
	case token.KwOr:
		return syntax.OrSequenceExpression
	case token.KwAnd:
		return syntax.AndSequenceExpression
	case token.KwIntersect:
		return syntax.IntersectSequenceExpression
	case token.KwWithin:
		return syntax.WithinSequenceExpression
	case token.KwThroughout:
		return syntax.ThroughoutSequenceExpression
	case token.KwIff:
		return syntax.IffPropertyExpression
	case token.KwUntil:
		return syntax.UntilPropertyExpression
	case token.KwSUntil:
		return syntax.SUntilPropertyExpression
	case token.KwUntilWith:
		return syntax.UntilWithPropertyExpression
	case token.KwSUntilWith:
		return syntax.SUntilWithPropertyExpression
	case token.KwImplies:
		return syntax.ImpliesPropertyExpression
	case token.PipeArrow:
		return syntax.OverlappedImplicationPropertyExpression
	case token.PipeFatArrow:
		return syntax.NonOverlappedImplicationPropertyExpression
	case token.HashMinusHash:
		return syntax.OverlappedFollowedByPropertyExpression
	case token.HashEqHash:
		return syntax.NonOverlappedFollowedByPropertyExpression
	case token.HashHash:
		return syntax.BinarySequenceDelayExpression

	default:
		return syntax.Unknown
	}
}

// KeywordNameExpression returns the kind of a keyword used in name position:
// scope and handle keywords, array reduction methods and the constructor.
func KeywordNameExpression(kind token.Kind) syntax.Kind {
	switch kind {
	case token.UnitSystemName:
		return syntax.UnitScope
	case token.RootSystemName:
		return syntax.RootScope
	case token.KwLocal:
		return syntax.LocalScope
	case token.KwThis:
		return syntax.ThisHandle
	case token.KwSuper:
		return syntax.SuperHandle
	case token.KwUnique:
		return syntax.ArrayUniqueMethod
	case token.KwAnd:
		return syntax.ArrayAndMethod
	case token.KwOr:
		return syntax.ArrayOrMethod
	case token.KwXor:
		return syntax.ArrayXorMethod
	case token.KwNew:
		return syntax.ConstructorName
	default:
		return syntax.Unknown
	}
}

// IsSpecialMethodName reports whether kind is a keyword that can be called
// like a method: the array reduction methods and the constructor.
func IsSpecialMethodName(kind syntax.Kind) bool {
	switch kind {
	case syntax.ArrayUniqueMethod, syntax.ArrayAndMethod, syntax.ArrayOrMethod,
		syntax.ArrayXorMethod, syntax.ConstructorName:
		return true
	default:
		return false
	}
}

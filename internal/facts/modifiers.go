package facts

import (
	"svfacts/internal/token"
)

// IsNetType reports whether kind names a built-in net type.
func IsNetType(kind token.Kind) bool {
	switch kind {
	case token.KwSupply0, token.KwSupply1, token.KwTri, token.KwTriAnd,
		token.KwTriOr, token.KwTriReg, token.KwTri0, token.KwTri1,
		token.KwUWire, token.KwWire, token.KwWAnd, token.KwWOr:
		return true
	default:
		return false
	}
}

// IsPortDirection reports whether kind is a port direction keyword.
func IsPortDirection(kind token.Kind) bool {
	switch kind {
	case token.KwInput, token.KwOutput, token.KwInOut, token.KwRef:
		return true
	default:
		return false
	}
}

// IsDeclarationModifier reports whether kind may prefix a data declaration.
func IsDeclarationModifier(kind token.Kind) bool {
	switch kind {
	case token.KwConst, token.KwVar, token.KwStatic, token.KwAutomatic:
		return true
	default:
		return false
	}
}

// IsLifetimeModifier reports whether kind is static or automatic.
func IsLifetimeModifier(kind token.Kind) bool {
	return kind == token.KwStatic || kind == token.KwAutomatic
}

// IsMemberQualifier reports whether kind can qualify a class member.
func IsMemberQualifier(kind token.Kind) bool {
	switch kind {
	case token.KwConst, token.KwRand, token.KwRandC, token.KwPure, token.KwVirtual,
		token.KwExtern, token.KwStatic, token.KwLocal, token.KwProtected:
		return true
	default:
		return false
	}
}

// IsDriveStrength reports whether kind is a drive strength keyword.
func IsDriveStrength(kind token.Kind) bool {
	switch kind {
	case token.KwSupply0, token.KwStrong0, token.KwPull0, token.KwWeak0, token.KwHighZ0,
		token.KwSupply1, token.KwStrong1, token.KwPull1, token.KwWeak1, token.KwHighZ1:
		return true
	default:
		return false
	}
}

// IsChargeStrength reports whether kind is a trireg charge strength.
func IsChargeStrength(kind token.Kind) bool {
	switch kind {
	case token.KwSmall, token.KwMedium, token.KwLarge:
		return true
	default:
		return false
	}
}

// IsGateType reports whether kind names a built-in gate primitive.
// and/or/xor/not are gates here and operators elsewhere.
func IsGateType(kind token.Kind) bool {
	switch kind {
	case token.KwCmos, token.KwRcmos, token.KwNmos, token.KwPmos, token.KwRnmos, token.KwRpmos,
		token.KwBufIf0, token.KwBufIf1, token.KwNotIf0, token.KwNotIf1,
		token.KwAnd, token.KwNand, token.KwOr, token.KwNor, token.KwXor, token.KwXnor,
		token.KwBuf, token.KwNot,
		token.KwTranIf0, token.KwTranIf1, token.KwRtranIf0, token.KwRtranIf1,
		token.KwTran, token.KwRtran, token.KwPullDown, token.KwPullUp:
		return true
	default:
		return false
	}
}

// IsModifierAllowedAfter reports whether declaration modifier mod may follow
// prev. The only legal orderings are:
//
//	const var
//	const static | const automatic
//	var static   | var automatic
//
// const never follows anything.
func IsModifierAllowedAfter(mod, prev token.Kind) bool {
	switch mod {
	case token.KwConst:
		return false
	case token.KwVar:
		return prev == token.KwConst
	case token.KwStatic, token.KwAutomatic:
		return prev == token.KwVar || prev == token.KwConst
	default:
		return false
	}
}

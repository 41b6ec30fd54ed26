package facts

import (
	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

// IsPossibleDataType reports whether a data type can begin with kind.
func IsPossibleDataType(kind token.Kind) bool {
	switch kind {
	case token.KwBit, token.KwLogic, token.KwReg, token.KwByte, token.KwShortInt,
		token.KwInt, token.KwLongInt, token.KwInteger, token.KwTime,
		token.KwShortReal, token.KwReal, token.KwRealTime, token.KwString,
		token.KwConst, token.KwSigned, token.KwUnsigned,
		token.KwStruct, token.KwUnion, token.KwEnum,
		token.KwCHandle, token.KwVirtual, token.KwEvent, token.KwType, token.KwVoid,
		token.Ident, token.UnitSystemName, token.LBracket:
		return true
	default:
		return false
	}
}

// IsPossibleExpression reports whether an expression can begin with kind.
// Anything that starts a data type or resolves as a unary prefix or binary
// operator counts. A few tokens that never start a valid expression are
// accepted so the parser can give a specific diagnostic instead of
// "expected expression".
func IsPossibleExpression(kind token.Kind) bool {
	switch kind {
	case token.KwTagged, token.StringLit, token.IntLit, token.UnbasedUnsizedLit,
		token.IntBase, token.RealLit, token.TimeLit, token.KwNull, token.Dollar,
		token.KwLocal, token.LParen, token.LBrace, token.LBracket,
		token.UnitSystemName, token.KwThis, token.KwSuper, token.Ident,
		token.SystemIdent, token.RootSystemName, token.Hash, token.HashHash,
		token.At, token.KwType, token.ApostropheLBrace,
		token.KwFirstMatch, token.KwStrong, token.KwWeak:
		return true

	// not valid starts; accepted for recovery diagnostics
	case token.KwIf, token.KwCase, token.ColonColon, token.Question,
		token.KwMatches, token.AndAndAnd, token.KwInside, token.KwDist:
		return true
	}

	if IsPossibleDataType(kind) {
		return true
	}
	if UnaryPrefixExpression(kind) != syntax.Unknown {
		return true
	}
	return BinaryExpression(kind) != syntax.Unknown
}

// IsPossibleStatement reports whether a statement can begin with kind.
func IsPossibleStatement(kind token.Kind) bool {
	switch kind {
	case token.Ident, token.SystemIdent, token.KwThis, token.KwSuper,
		token.UnitSystemName, token.RootSystemName,
		token.LBrace, token.ApostropheLBrace,
		token.KwAssign, token.KwDeassign, token.KwForce, token.KwRelease,
		token.KwUnique, token.KwUnique0, token.KwPriority,
		token.KwCase, token.KwCaseX, token.KwCaseZ, token.KwIf,
		token.PlusPlus, token.MinusMinus, token.KwVoid, token.KwType,
		token.KwDisable, token.Arrow, token.ArrowGt,
		token.KwForever, token.KwRepeat, token.KwWhile, token.KwFor, token.KwDo,
		token.KwForeach, token.KwReturn, token.KwBreak, token.KwContinue,
		token.KwFork, token.Hash, token.HashHash, token.At, token.KwBegin,
		token.KwWait, token.KwWaitOrder,
		token.KwAssert, token.KwAssume, token.KwCover, token.KwRestrict,
		token.KwRandSequence, token.KwRandCase, token.KwExpect,
		token.LParenStar, token.Semicolon:
		return true
	default:
		return false
	}
}

// IsPossibleArgument reports whether an argument list item can begin with
// kind. A comma is allowed so empty arguments like foo(, 3) parse.
func IsPossibleArgument(kind token.Kind) bool {
	switch kind {
	case token.Dot, token.Comma:
		return true
	default:
		return IsPossibleExpression(kind)
	}
}

// IsPossibleNonAnsiPort reports whether a non-ANSI port can begin with kind.
func IsPossibleNonAnsiPort(kind token.Kind) bool {
	switch kind {
	case token.Dot, token.Comma, token.Ident, token.LBrace:
		return true
	default:
		return false
	}
}

// IsPossibleAnsiPort reports whether an ANSI port declaration can begin with kind.
func IsPossibleAnsiPort(kind token.Kind) bool {
	switch kind {
	case token.KwInterconnect, token.KwInterface, token.Ident, token.Dot,
		token.Comma, token.KwInput, token.KwOutput, token.KwInOut, token.KwRef,
		token.KwVar, token.LParenStar:
		return true
	default:
		return IsNetType(kind) || IsPossibleDataType(kind)
	}
}

// IsPossibleModportPort reports whether a modport port can begin with kind.
func IsPossibleModportPort(kind token.Kind) bool {
	switch kind {
	case token.LParenStar, token.KwInput, token.KwOutput, token.KwInOut,
		token.KwRef, token.KwClocking, token.KwImport, token.KwExport, token.Comma:
		return true
	default:
		return false
	}
}

// IsPossibleFunctionPort reports whether a task or function port can begin with kind.
func IsPossibleFunctionPort(kind token.Kind) bool {
	switch kind {
	case token.Ident, token.Comma, token.KwInput, token.KwOutput, token.KwInOut,
		token.KwRef, token.KwVar, token.KwConst, token.LParenStar:
		return true
	default:
		return IsPossibleDataType(kind)
	}
}

// IsPossiblePropertyPortItem reports whether a property or sequence port can begin with kind.
func IsPossiblePropertyPortItem(kind token.Kind) bool {
	switch kind {
	case token.LParenStar, token.KwLocal, token.KwProperty, token.KwSequence, token.Comma:
		return true
	default:
		return IsPossibleDataType(kind)
	}
}

// IsPossibleLetPortItem reports whether a let port can begin with kind.
func IsPossibleLetPortItem(kind token.Kind) bool {
	return kind == token.LParenStar || kind == token.KwUntyped || IsPossibleDataType(kind)
}

// IsPossibleGateInstance reports whether a gate instance can begin with kind.
func IsPossibleGateInstance(kind token.Kind) bool {
	switch kind {
	case token.Ident, token.LParen, token.Comma:
		return true
	default:
		return false
	}
}

// IsPossibleParameter reports whether a parameter port can begin with kind.
func IsPossibleParameter(kind token.Kind) bool {
	switch kind {
	case token.KwParameter, token.KwLocalParam, token.KwType, token.Comma:
		return true
	default:
		return IsPossibleDataType(kind)
	}
}

// IsPossiblePortConnection reports whether a port connection can begin with kind.
func IsPossiblePortConnection(kind token.Kind) bool {
	switch kind {
	case token.LParenStar, token.DotStar, token.Dot, token.Comma:
		return true
	default:
		return IsPossibleExpression(kind)
	}
}

// IsPossibleOpenRangeElement reports whether an open range list element
// (inside, dist, case-inside) can begin with kind.
func IsPossibleOpenRangeElement(kind token.Kind) bool {
	switch kind {
	case token.LBracket, token.Comma:
		return true
	default:
		return IsPossibleExpression(kind)
	}
}

// IsPossiblePattern reports whether a pattern can begin with kind.
func IsPossiblePattern(kind token.Kind) bool {
	switch kind {
	case token.Dot, token.DotStar, token.ApostropheLBrace:
		return true
	default:
		return IsPossibleExpression(kind)
	}
}

// IsPossibleTransSet reports whether a covergroup transition set element can begin with kind.
func IsPossibleTransSet(kind token.Kind) bool {
	switch kind {
	case token.LParen, token.Comma, token.FatArrow, token.LBracket:
		return true
	default:
		return IsPossibleExpression(kind)
	}
}

// IsPossibleDelayOrEventControl reports whether a timing control can begin with kind.
func IsPossibleDelayOrEventControl(kind token.Kind) bool {
	switch kind {
	case token.Hash, token.At, token.KwRepeat:
		return true
	default:
		return false
	}
}

// IsPossibleVectorDigit reports whether kind can continue a based vector literal.
func IsPossibleVectorDigit(kind token.Kind) bool {
	switch kind {
	case token.IntLit, token.Question, token.RealLit, token.Ident:
		return true
	default:
		return false
	}
}

// IsComma reports whether kind is ','.
func IsComma(kind token.Kind) bool { return kind == token.Comma }

// IsSemicolon reports whether kind is ';'.
func IsSemicolon(kind token.Kind) bool { return kind == token.Semicolon }

// IsCloseBrace reports whether kind is '}'.
func IsCloseBrace(kind token.Kind) bool { return kind == token.RBrace }

// IsIdentifierOrComma accepts the items of an identifier list.
func IsIdentifierOrComma(kind token.Kind) bool {
	return kind == token.Ident || kind == token.Comma
}

// IsPossibleExpressionOrComma accepts the items of an expression list.
func IsPossibleExpressionOrComma(kind token.Kind) bool {
	return kind == token.Comma || IsPossibleExpression(kind)
}

// IsPossibleExpressionOrCommaOrDefault accepts case item labels.
func IsPossibleExpressionOrCommaOrDefault(kind token.Kind) bool {
	return kind == token.Comma || kind == token.KwDefault || IsPossibleExpression(kind)
}

// IsPossibleExpressionOrTripleAnd accepts items of a matches condition.
func IsPossibleExpressionOrTripleAnd(kind token.Kind) bool {
	return kind == token.AndAndAnd || IsPossibleExpression(kind)
}

// IsPossibleForInitializer accepts the start of a for-loop initializer.
func IsPossibleForInitializer(kind token.Kind) bool {
	return kind == token.Comma || kind == token.KwVar || IsPossibleExpression(kind)
}

// IsBeforeOrSemicolon terminates a solve list.
func IsBeforeOrSemicolon(kind token.Kind) bool {
	return kind == token.Semicolon || kind == token.KwBefore
}

// IntegerType returns the built-in integer type named by kind.
func IntegerType(kind token.Kind) syntax.Kind {
	switch kind {
	case token.KwBit:
		return syntax.BitType
	case token.KwLogic:
		return syntax.LogicType
	case token.KwReg:
		return syntax.RegType
	case token.KwByte:
		return syntax.ByteType
	case token.KwShortInt:
		return syntax.ShortIntType
	case token.KwInt:
		return syntax.IntType
	case token.KwLongInt:
		return syntax.LongIntType
	case token.KwInteger:
		return syntax.IntegerType
	case token.KwTime:
		return syntax.TimeType
	default:
		return syntax.Unknown
	}
}

// KeywordType returns the non-integer built-in type named by kind.
func KeywordType(kind token.Kind) syntax.Kind {
	switch kind {
	case token.KwShortReal:
		return syntax.ShortRealType
	case token.KwReal:
		return syntax.RealType
	case token.KwRealTime:
		return syntax.RealTimeType
	case token.KwString:
		return syntax.StringType
	case token.KwCHandle:
		return syntax.CHandleType
	case token.KwEvent:
		return syntax.EventType
	case token.KwVoid:
		return syntax.VoidType
	default:
		return syntax.Unknown
	}
}

// ProceduralBlockKind returns the block kind introduced by an initial, final or always keyword.
func ProceduralBlockKind(kind token.Kind) syntax.Kind {
	switch kind {
	case token.KwInitial:
		return syntax.InitialBlock
	case token.KwFinal:
		return syntax.FinalBlock
	case token.KwAlways:
		return syntax.AlwaysBlock
	case token.KwAlwaysComb:
		return syntax.AlwaysCombBlock
	case token.KwAlwaysFF:
		return syntax.AlwaysFFBlock
	case token.KwAlwaysLatch:
		return syntax.AlwaysLatchBlock
	default:
		return syntax.Unknown
	}
}

// ModuleHeaderKind returns the header kind for a design unit keyword.
// macromodule is a synonym for module.
func ModuleHeaderKind(kind token.Kind) syntax.Kind {
	switch kind {
	case token.KwModule, token.KwMacromodule:
		return syntax.ModuleHeader
	case token.KwProgram:
		return syntax.ProgramHeader
	case token.KwInterface:
		return syntax.InterfaceHeader
	case token.KwPackage:
		return syntax.PackageHeader
	default:
		return syntax.Unknown
	}
}

// ModuleDeclarationKind returns the declaration kind for a design unit keyword.
func ModuleDeclarationKind(kind token.Kind) syntax.Kind {
	switch kind {
	case token.KwModule, token.KwMacromodule:
		return syntax.ModuleDeclaration
	case token.KwProgram:
		return syntax.ProgramDeclaration
	case token.KwInterface:
		return syntax.InterfaceDeclaration
	case token.KwPackage:
		return syntax.PackageDeclaration
	default:
		return syntax.Unknown
	}
}

// ModuleEndKind returns the keyword that closes a design unit.
func ModuleEndKind(kind token.Kind) token.Kind {
	switch kind {
	case token.KwModule, token.KwMacromodule:
		return token.KwEndModule
	case token.KwProgram:
		return token.KwEndProgram
	case token.KwInterface:
		return token.KwEndInterface
	case token.KwPackage:
		return token.KwEndPackage
	default:
		return token.Unknown
	}
}

package facts

import (
	"svfacts/internal/token"
)

// Each predicate below terminates one specific parsing loop. All of them
// stop at ';' so a list loop can never run past a statement boundary; the
// isNotIn* family also stops at end of file.

// IsEndOfParenList terminates a parenthesized list.
func IsEndOfParenList(kind token.Kind) bool {
	return kind == token.RParen || kind == token.Semicolon
}

// IsEndOfBracedList terminates a braced list.
func IsEndOfBracedList(kind token.Kind) bool {
	return kind == token.RBrace || kind == token.Semicolon
}

// IsEndOfBracketedList terminates a bracketed dimension or select.
func IsEndOfBracketedList(kind token.Kind) bool {
	return kind == token.RBracket || kind == token.Semicolon
}

// IsEndOfCaseItem terminates the expression list of a case item.
func IsEndOfCaseItem(kind token.Kind) bool {
	return kind == token.Colon || kind == token.Semicolon
}

// IsEndOfConditionalPredicate terminates the predicate of ?: and if (...).
func IsEndOfConditionalPredicate(kind token.Kind) bool {
	switch kind {
	case token.Question, token.RParen, token.KwBegin, token.Semicolon:
		return true
	default:
		return false
	}
}

// IsEndOfAttribute terminates an attribute instance. The design unit
// keywords indicate a missing '*)'.
func IsEndOfAttribute(kind token.Kind) bool {
	switch kind {
	case token.StarRParen, token.Semicolon,
		token.KwPrimitive, token.KwProgram, token.KwInterface, token.KwPackage,
		token.KwChecker, token.KwGenerate, token.KwModule, token.KwClass:
		return true
	default:
		return false
	}
}

// IsEndOfParameterList terminates a #(...) parameter value list.
func IsEndOfParameterList(kind token.Kind) bool {
	switch kind {
	case token.RParen, token.LParen, token.Semicolon:
		return true
	default:
		return false
	}
}

// IsEndOfTransSet terminates a covergroup transition list.
func IsEndOfTransSet(kind token.Kind) bool {
	switch kind {
	case token.Semicolon, token.RParen, token.KwBins, token.KwIllegalBins, token.KwIgnoreBins:
		return true
	default:
		return false
	}
}

// IsNotInType reports whether kind cannot continue a data type.
func IsNotInType(kind token.Kind) bool {
	switch kind {
	case token.Semicolon, token.EOF:
		return true
	default:
		return IsEndKeyword(kind)
	}
}

// IsNotInPortReference reports whether kind cannot continue a port reference.
func IsNotInPortReference(kind token.Kind) bool {
	return kind == token.Semicolon || kind == token.EOF
}

// IsNotInConcatenationExpr stops a concatenation list at tokens that belong
// to an enclosing constraint or statement.
func IsNotInConcatenationExpr(kind token.Kind) bool {
	switch kind {
	case token.Semicolon, token.EOF, token.KwIf, token.KwForeach, token.KwSoft,
		token.KwUnique, token.KwDist, token.KwDisable, token.Arrow:
		return true
	default:
		return false
	}
}

// IsNotInParameterList reports whether kind cannot continue a parameter port list.
func IsNotInParameterList(kind token.Kind) bool {
	switch kind {
	case token.LParen, token.Semicolon, token.EOF:
		return true
	default:
		return false
	}
}

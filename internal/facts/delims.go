package facts

import (
	"svfacts/internal/token"
)

// DelimCloseKind returns the punctuation that closes the bracket-like
// opener kind, or token.Unknown. Block keywords are not covered; see CloseOf.
func DelimCloseKind(kind token.Kind) token.Kind {
	switch kind {
	case token.LParen:
		return token.RParen
	case token.LBrace, token.ApostropheLBrace:
		return token.RBrace
	case token.LBracket:
		return token.RBracket
	case token.LParenStar:
		return token.StarRParen
	default:
		return token.Unknown
	}
}

// CloseOf returns the token that closes the construct opened by kind, or
// token.Unknown. For fork it returns join; join_any and join_none also
// close a fork, which only IsMatchingDelims knows.
func CloseOf(kind token.Kind) token.Kind {
	if closer := DelimCloseKind(kind); closer != token.Unknown {
		return closer
	}
	switch kind {
	case token.KwBegin:
		return token.KwEnd
	case token.KwCase, token.KwCaseX, token.KwCaseZ, token.KwRandCase:
		return token.KwEndCase
	case token.KwChecker:
		return token.KwEndChecker
	case token.KwClass:
		return token.KwEndClass
	case token.KwClocking:
		return token.KwEndClocking
	case token.KwConfig:
		return token.KwEndConfig
	case token.KwFork:
		return token.KwJoin
	case token.KwFunction:
		return token.KwEndFunction
	case token.KwGenerate:
		return token.KwEndGenerate
	case token.KwCoverGroup:
		return token.KwEndGroup
	case token.KwInterface:
		return token.KwEndInterface
	case token.KwModule, token.KwMacromodule:
		return token.KwEndModule
	case token.KwPackage:
		return token.KwEndPackage
	case token.KwPrimitive:
		return token.KwEndPrimitive
	case token.KwProgram:
		return token.KwEndProgram
	case token.KwProperty:
		return token.KwEndProperty
	case token.KwSpecify:
		return token.KwEndSpecify
	case token.KwSequence:
		return token.KwEndSequence
	case token.KwTable:
		return token.KwEndTable
	case token.KwTask:
		return token.KwEndTask
	default:
		return token.Unknown
	}
}

// IsMatchingDelims reports whether closer validly closes open. This is a
// relation, not a function: fork is closed by join, join_any or join_none.
func IsMatchingDelims(open, closer token.Kind) bool {
	if c := CloseOf(open); c != token.Unknown && c == closer {
		return true
	}
	if open == token.KwFork {
		return isJoinKeyword(closer)
	}
	return false
}

func isJoinKeyword(kind token.Kind) bool {
	switch kind {
	case token.KwJoin, token.KwJoinAny, token.KwJoinNone:
		return true
	default:
		return false
	}
}

// IsEndKeyword reports whether kind closes some block construct.
// Recovery uses it to notice that an enclosing construct ended without
// knowing which one opened it.
func IsEndKeyword(kind token.Kind) bool {
	switch kind {
	case token.KwEnd, token.KwEndCase, token.KwEndChecker, token.KwEndClass,
		token.KwEndClocking, token.KwEndConfig, token.KwEndFunction,
		token.KwEndGenerate, token.KwEndGroup, token.KwEndInterface,
		token.KwEndModule, token.KwEndPackage, token.KwEndPrimitive,
		token.KwEndProgram, token.KwEndProperty, token.KwEndSpecify,
		token.KwEndSequence, token.KwEndTable, token.KwEndTask:
		return true
	default:
		return isJoinKeyword(kind)
	}
}

// IsOpenDelimOrKeyword reports whether kind has a matching closer.
func IsOpenDelimOrKeyword(kind token.Kind) bool {
	return CloseOf(kind) != token.Unknown
}

// IsCloseDelimOrKeyword reports whether kind closes a delimiter or block.
func IsCloseDelimOrKeyword(kind token.Kind) bool {
	switch kind {
	case token.RBrace, token.RBracket, token.RParen, token.StarRParen:
		return true
	default:
		return IsEndKeyword(kind)
	}
}

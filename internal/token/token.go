package token

import (
	"svfacts/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// String returns the Go-style name of the kind, e.g. "KwEndModule".
func (k Kind) String() string {
	if k >= NumKinds {
		return "Kind(?)"
	}
	return kindTable[k].name
}

// Text returns the fixed source spelling of the kind, or "" for kinds
// whose spelling varies (identifiers, literals, Unknown, EOF).
func (k Kind) Text() string {
	if k >= NumKinds {
		return ""
	}
	return kindTable[k].text
}

// IsKeyword reports whether the kind is a reserved keyword.
func (k Kind) IsKeyword() bool { return k >= KwAcceptOn && k <= KwXor }

// IsPunctOrOp reports whether the kind is punctuation or an operator.
func (k Kind) IsPunctOrOp() bool { return k >= Apostrophe && k <= AndAndAnd }

// IsLiteral reports whether the kind is a literal token.
func (k Kind) IsLiteral() bool {
	switch k {
	case StringLit, IntLit, IntBase, UnbasedUnsizedLit, RealLit, TimeLit, OneStep:
		return true
	default:
		return false
	}
}

// IsEOF reports whether the kind marks the end of input.
func (k Kind) IsEOF() bool { return k == EOF }

// IsLiteral reports whether the token is a literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a reserved keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is a simple identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Describe renders the token for diagnostics: its text when it has one,
// otherwise the kind's spelling or name.
func (t Token) Describe() string {
	switch {
	case t.Kind == EOF:
		return "end of file"
	case t.Text != "":
		return t.Text
	case t.Kind.Text() != "":
		return t.Kind.Text()
	default:
		return t.Kind.String()
	}
}

package spelling

import (
	"svfacts/internal/diag"
	"svfacts/internal/token"
)

var timeUnits = []string{"fs", "ps", "ns", "us", "ms", "s"}

// scanNumber reads a decimal integer, a real, a time literal or 1step.
// The size part of a based literal (the 8 in 8'hFF) is an IntLit; the
// base and value follow as separate tokens.
func (r *Reader) scanNumber(start uint32) token.Token {
	if r.cur.peek() == '1' && r.cur.remaining(5) == "1step" && !isIdentContinue(r.cur.peekAt(5)) {
		r.cur.off += 5
		return r.make(token.OneStep, start)
	}
	r.cur.eatWhile(isDecimalDigit)
	kind := token.IntLit
	if r.cur.peek() == '.' && isDigit(r.cur.peekAt(1)) {
		r.cur.bump()
		r.cur.eatWhile(isDecimalDigit)
		kind = token.RealLit
	}
	if e := r.cur.peek(); e == 'e' || e == 'E' {
		n := uint32(1)
		if s := r.cur.peekAt(1); s == '+' || s == '-' {
			n = 2
		}
		if isDigit(r.cur.peekAt(n)) {
			r.cur.off += n
			r.cur.eatWhile(isDecimalDigit)
			kind = token.RealLit
		}
	}
	for _, unit := range timeUnits {
		if r.cur.remaining(len(unit)) == unit && !isIdentContinue(r.cur.peekAt(uint32(len(unit)))) {
			r.cur.off += uint32(len(unit))
			return r.make(token.TimeLit, start)
		}
	}
	if isIdentStart(r.cur.peek()) {
		r.cur.eatWhile(isIdentContinue)
		r.report(diag.LexBadNumber, r.cur.spanFrom(start), "invalid suffix on number")
	}
	return r.make(kind, start)
}

// scanApostropheLiteral handles 'h1F style bases and the unbased unsized
// literals '0 '1 'x 'z. It reports false for every other apostrophe so the
// punctuation scanner can take it ('{ or a cast).
func (r *Reader) scanApostropheLiteral(start uint32) (token.Token, bool) {
	next := r.cur.peekAt(1)
	switch next {
	case '0', '1', 'x', 'X', 'z', 'Z':
		if !isIdentContinue(r.cur.peekAt(2)) {
			r.cur.off += 2
			return r.make(token.UnbasedUnsizedLit, start), true
		}
	}

	n := uint32(1)
	if next == 's' || next == 'S' {
		n = 2
	}
	var digit func(byte) bool
	switch r.cur.peekAt(n) {
	case 'b', 'B':
		digit = isBinaryDigit
	case 'o', 'O':
		digit = isOctalDigit
	case 'd', 'D':
		digit = isDecimalDigit
	case 'h', 'H':
		digit = isHexDigit
	default:
		return token.Token{}, false
	}
	r.cur.off += n + 1
	// hex values like FF must not be read as identifiers by the next call
	r.valueDigit = digit
	return r.make(token.IntBase, start), true
}

// scanBasedValue reads the digits that follow a base token.
func (r *Reader) scanBasedValue(start uint32) (token.Token, bool) {
	digit := r.valueDigit
	r.valueDigit = nil
	r.cur.eatWhile(digit)
	if r.cur.off == start {
		r.report(diag.LexBadNumber, r.cur.spanFrom(start), "missing digits after base")
		return token.Token{}, false
	}
	return r.make(token.IntLit, start), true
}

func isDecimalDigit(b byte) bool { return isDigit(b) || b == '_' }

func isXZ(b byte) bool {
	switch b {
	case 'x', 'X', 'z', 'Z', '?', '_':
		return true
	}
	return false
}

func isBinaryDigit(b byte) bool { return b == '0' || b == '1' || isXZ(b) }

func isOctalDigit(b byte) bool { return (b >= '0' && b <= '7') || isXZ(b) }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') || isXZ(b)
}

package spelling

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"svfacts/internal/diag"
	"svfacts/internal/source"
	"svfacts/internal/token"
)

type Options struct {
	// Reporter may be nil; problems are then dropped silently.
	Reporter diag.Reporter
}

// Reader produces tokens from one file.
type Reader struct {
	cur  cursor
	opts Options
	// valueDigit is set right after a base token ('h, 'sb ...) and accepts
	// the digits of the value that must follow.
	valueDigit func(byte) bool
}

func NewReader(f *source.File, opts Options) *Reader {
	return &Reader{cur: newCursor(f), opts: opts}
}

// Tokens reads the whole file. The last token is always EOF.
func Tokens(f *source.File, opts Options) []token.Token {
	r := NewReader(f, opts)
	var out []token.Token
	for {
		tok := r.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// Next returns the next token; after EOF it keeps returning EOF.
func (r *Reader) Next() token.Token {
	r.skipTrivia()
	start := r.cur.off
	if r.valueDigit != nil {
		if tok, ok := r.scanBasedValue(start); ok {
			return tok
		}
	}
	if r.cur.eof() {
		return token.Token{Kind: token.EOF, Span: r.cur.spanFrom(start)}
	}

	ch := r.cur.peek()
	switch {
	case isIdentStart(ch) || ch >= utf8.RuneSelf:
		return r.scanIdent(start)
	case ch == '\\':
		return r.scanEscapedIdent(start)
	case ch == '$' && isIdentContinue(r.cur.peekAt(1)):
		return r.scanSystemName(start)
	case isDigit(ch):
		return r.scanNumber(start)
	case ch == '\'':
		if tok, ok := r.scanApostropheLiteral(start); ok {
			return tok
		}
	case ch == '"':
		return r.scanString(start)
	}
	return r.scanPunct(start)
}

func (r *Reader) report(code diag.Code, sp source.Span, msg string) {
	if r.opts.Reporter != nil {
		diag.ReportError(r.opts.Reporter, code, sp, msg).Emit()
	}
}

func (r *Reader) make(kind token.Kind, start uint32) token.Token {
	return token.Token{Kind: kind, Span: r.cur.spanFrom(start), Text: r.cur.textFrom(start)}
}

func (r *Reader) skipTrivia() {
	for !r.cur.eof() {
		ch := r.cur.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v':
			r.cur.bump()
		case ch == '/' && r.cur.peekAt(1) == '/':
			r.cur.eatWhile(func(b byte) bool { return b != '\n' })
		case ch == '/' && r.cur.peekAt(1) == '*':
			start := r.cur.off
			r.cur.off += 2
			closed := false
			for !r.cur.eof() {
				if r.cur.peek() == '*' && r.cur.peekAt(1) == '/' {
					r.cur.off += 2
					closed = true
					break
				}
				r.cur.bump()
			}
			if !closed {
				r.report(diag.LexUnknownChar, r.cur.spanFrom(start), "unterminated block comment")
			}
		default:
			return
		}
	}
}

// scanIdent reads an identifier or keyword. Letters outside ASCII are
// accepted; such names are NFC normalized so equal names compare equal
// regardless of how they were encoded.
func (r *Reader) scanIdent(start uint32) token.Token {
	ascii := true
	for !r.cur.eof() {
		ch := r.cur.peek()
		if ch < utf8.RuneSelf {
			if !isIdentContinue(ch) {
				break
			}
			r.cur.bump()
			continue
		}
		rn, size := utf8.DecodeRune(r.cur.file.Content[r.cur.off:])
		if rn == utf8.RuneError || !(unicode.IsLetter(rn) || unicode.IsDigit(rn) || unicode.Is(unicode.Mn, rn)) {
			break
		}
		ascii = false
		r.cur.off += uint32(size)
	}
	if r.cur.off == start {
		_, size := utf8.DecodeRune(r.cur.file.Content[start:])
		r.cur.off += uint32(size)
		r.report(diag.LexUnknownChar, r.cur.spanFrom(start), "unexpected character")
		return r.make(token.Unknown, start)
	}
	if !ascii {
		tok := r.make(token.Ident, start)
		tok.Text = norm.NFC.String(tok.Text)
		return tok
	}
	if kind, ok := token.LookupKeyword(r.cur.textFrom(start)); ok {
		return r.make(kind, start)
	}
	return r.make(token.Ident, start)
}

// scanEscapedIdent reads \name up to the next whitespace.
func (r *Reader) scanEscapedIdent(start uint32) token.Token {
	r.cur.bump()
	r.cur.eatWhile(func(b byte) bool { return b > ' ' && b < 0x7f })
	if r.cur.off == start+1 {
		r.report(diag.LexUnknownChar, r.cur.spanFrom(start), "empty escaped identifier")
		return r.make(token.Unknown, start)
	}
	return r.make(token.Ident, start)
}

func (r *Reader) scanSystemName(start uint32) token.Token {
	r.cur.bump()
	r.cur.eatWhile(isIdentContinue)
	if kind, ok := token.LookupKeyword(r.cur.textFrom(start)); ok {
		return r.make(kind, start)
	}
	return r.make(token.SystemIdent, start)
}

func (r *Reader) scanString(start uint32) token.Token {
	r.cur.bump()
	for !r.cur.eof() {
		switch r.cur.peek() {
		case '\\':
			r.cur.bump()
			r.cur.bump()
		case '"':
			r.cur.bump()
			return r.make(token.StringLit, start)
		case '\n':
			r.report(diag.LexUnterminatedString, r.cur.spanFrom(start), "string literal not terminated before end of line")
			return r.make(token.StringLit, start)
		default:
			r.cur.bump()
		}
	}
	r.report(diag.LexUnterminatedString, r.cur.spanFrom(start), "string literal not terminated before end of file")
	return r.make(token.StringLit, start)
}

func (r *Reader) scanPunct(start uint32) token.Token {
	for n := token.MaxPunctLen; n > 0; n-- {
		text := r.cur.remaining(n)
		if len(text) != n {
			continue
		}
		if kind, ok := token.LookupPunct(text); ok {
			r.cur.off += uint32(n)
			return r.make(kind, start)
		}
	}
	r.cur.bump()
	r.report(diag.LexUnknownChar, r.cur.spanFrom(start), "unexpected character")
	return r.make(token.Unknown, start)
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b) || b == '$'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

package parser

import (
	"fmt"

	"svfacts/internal/diag"
	"svfacts/internal/facts"
	"svfacts/internal/syntax"
	"svfacts/internal/token"
	"svfacts/internal/trace"
)

// openDelim consumes an opening delimiter or block keyword and records it
// until the matching expectClose or expectEnd.
func (p *Parser) openDelim() token.Token {
	tok := p.advance()
	p.open = append(p.open, tok.Kind)
	return tok
}

func (p *Parser) closeDelim() {
	if n := len(p.open); n > 0 {
		p.open = p.open[:n-1]
	}
}

// enclosedBy reports whether closer matches a delimiter opened outside the
// innermost one.
func (p *Parser) enclosedBy(closer token.Kind) bool {
	for i := len(p.open) - 2; i >= 0; i-- {
		if facts.IsMatchingDelims(p.open[i], closer) {
			return true
		}
	}
	return false
}

// expectClose consumes the bracket closing open. Anything in between is
// skipped; a wrong closer is reported as mismatched, and left in place when
// an enclosing delimiter owns it.
func (p *Parser) expectClose(open token.Token) (token.Token, bool) {
	defer p.closeDelim()
	if facts.IsMatchingDelims(open.Kind, p.kind()) {
		return p.advance(), true
	}
	cur := p.peek()
	reported := false
	if facts.IsCloseDelimOrKeyword(cur.Kind) && !facts.IsEndKeyword(cur.Kind) {
		p.reportMismatch(open, cur)
		if p.enclosedBy(cur.Kind) {
			return token.Token{}, false
		}
		reported = true
	}
	skipped := p.skipTo(open.Kind)
	if facts.IsMatchingDelims(open.Kind, p.kind()) {
		if !reported && skipped != nil {
			msg := fmt.Sprintf("unexpected %s before '%s'", quote(cur), facts.CloseOf(open.Kind).Text())
			p.report(diag.SynUnexpectedToken, skipped.Span, msg).Emit()
		}
		return p.advance(), true
	}
	if !reported {
		p.reportUnclosed(open)
	}
	return token.Token{}, false
}

// expectEnd consumes the keyword closing a block opened by open. A wrong
// end keyword is reported; it is consumed unless an enclosing block owns it.
func (p *Parser) expectEnd(open token.Token) (token.Token, bool) {
	defer p.closeDelim()
	cur := p.peek()
	if facts.IsMatchingDelims(open.Kind, cur.Kind) {
		return p.advance(), true
	}
	if cur.Kind == token.EOF || !facts.IsCloseDelimOrKeyword(cur.Kind) {
		p.reportUnclosed(open)
		return token.Token{}, false
	}
	p.reportMismatch(open, cur)
	if !p.enclosedBy(cur.Kind) {
		p.advance()
	}
	return token.Token{}, false
}

func (p *Parser) reportMismatch(open, got token.Token) {
	want := facts.CloseOf(open.Kind).Text()
	msg := fmt.Sprintf("mismatched '%s': expected '%s' to close '%s'", got.Describe(), want, open.Describe())
	p.report(diag.SynMismatchedDelimiter, got.Span, msg).
		WithNote(open.Span, fmt.Sprintf("'%s' opened here", open.Describe())).
		Emit()
}

func (p *Parser) reportUnclosed(open token.Token) {
	want := facts.CloseOf(open.Kind).Text()
	at := p.insertionSpan()
	text := want
	if facts.IsEndKeyword(facts.CloseOf(open.Kind)) {
		text = " " + want
	}
	p.report(diag.SynUnclosedDelimiter, open.Span, fmt.Sprintf("unclosed '%s': expected '%s'", open.Describe(), want)).
		WithNote(at, fmt.Sprintf("'%s' expected here", want)).
		WithFix(fmt.Sprintf("insert '%s'", want), diag.FixEdit{Span: at, NewText: text}).
		Emit()
}

// skipTo discards tokens until the closer matching open, a ';', the end of
// input or any end keyword, and leaves the stopping token in place. Nested
// brackets are stepped over whole. open may be token.Unknown.
func (p *Parser) skipTo(open token.Kind) *Node {
	start := p.pos
	var nested []token.Kind
	for {
		k := p.kind()
		if k == token.EOF || k == token.Semicolon || facts.IsEndKeyword(k) {
			break
		}
		if len(nested) == 0 && open != token.Unknown && facts.IsMatchingDelims(open, k) {
			break
		}
		switch {
		case len(nested) > 0 && facts.IsMatchingDelims(nested[len(nested)-1], k):
			nested = nested[:len(nested)-1]
		case facts.DelimCloseKind(k) != token.Unknown:
			nested = append(nested, k)
		}
		p.advance()
	}
	return p.skipped(start)
}

// skipConstruct steps over a construct the driver does not build, through
// its ';' or the end keyword closing its outermost block. Brackets and
// keyword blocks nest. The end of input, or an end keyword that belongs to
// an enclosing block, stops it unconsumed.
func (p *Parser) skipConstruct() *Node {
	start := p.pos
	var nested []token.Kind
	prev := token.Unknown
	for !p.at(token.EOF) {
		k := p.kind()
		if facts.IsEndKeyword(k) {
			i := innermostMatch(nested, k)
			if i < 0 {
				break
			}
			nested = nested[:i]
			p.advance()
			if len(nested) == 0 {
				break
			}
			prev = k
			continue
		}
		if len(nested) > 0 && facts.IsMatchingDelims(nested[len(nested)-1], k) {
			nested = nested[:len(nested)-1]
			p.advance()
			prev = k
			continue
		}
		if k == token.Semicolon && len(nested) == 0 {
			p.advance()
			break
		}
		if facts.CloseOf(k) != token.Unknown && !isAssertionBody(prev, k) {
			nested = append(nested, k)
		}
		prev = k
		p.advance()
	}
	return p.skipped(start)
}

func innermostMatch(nested []token.Kind, closer token.Kind) int {
	for i := len(nested) - 1; i >= 0; i-- {
		if facts.IsMatchingDelims(nested[i], closer) {
			return i
		}
	}
	return -1
}

// isAssertionBody reports 'assert property (...)' style uses, where property
// and sequence do not open a block.
func isAssertionBody(prev, k token.Kind) bool {
	if k != token.KwProperty && k != token.KwSequence {
		return false
	}
	switch prev {
	case token.KwAssert, token.KwAssume, token.KwCover, token.KwRestrict, token.KwExpect:
		return true
	}
	return false
}

// skipOne consumes a single token that nothing could use.
func (p *Parser) skipOne() *Node {
	start := p.pos
	p.advance()
	return p.skipped(start)
}

// skipped wraps the tokens consumed since start, or returns nil when there
// are none.
func (p *Parser) skipped(start int) *Node {
	if p.pos == start {
		return nil
	}
	toks := p.toks[start:p.pos]
	n := &Node{
		Kind:   syntax.SkippedTokens,
		Tok:    toks[0],
		Span:   toks[0].Span.Cover(toks[len(toks)-1].Span),
		Tokens: toks,
	}
	trace.Point(p.opts.Tracer, trace.ScopeNode, "recover",
		fmt.Sprintf("skipped %d token(s) before %s", len(toks), quote(p.peek())), p.opts.TraceParent)
	return n
}

func (p *Parser) skipUnsupported(what string) *Node {
	tok := p.peek()
	at := tok.Span
	n := p.skipConstruct()
	if n == nil {
		n = p.skipOne()
	}
	if n != nil {
		at = n.Span
	}
	p.reportSev(diag.SevWarning, diag.SynSkippedTokens, at,
		fmt.Sprintf("%s starting with %s is not supported and was skipped", what, quote(tok))).Emit()
	if n == nil {
		return p.missing()
	}
	return n
}

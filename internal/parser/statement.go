package parser

import (
	"fmt"

	"svfacts/internal/diag"
	"svfacts/internal/facts"
	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

// ParseStatement parses one procedural statement.
func (p *Parser) ParseStatement() *Node {
	return p.parseStatement()
}

// ParseBlock parses the begin/end or fork/join block at the cursor.
func (p *Parser) ParseBlock() *Node {
	if !p.at(token.KwBegin) && !p.at(token.KwFork) {
		tok := p.peek()
		p.report(diag.SynExpectStatement, tok.Span, fmt.Sprintf("expected 'begin' or 'fork', found %s", quote(tok))).Emit()
		return p.missing()
	}
	return p.parseBlock()
}

func (p *Parser) parseStatement() *Node {
	tok := p.peek()
	switch tok.Kind {
	case token.Semicolon:
		p.advance()
		return leaf(syntax.EmptyStatement, tok)
	case token.KwBegin, token.KwFork:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.Hash, token.At:
		return p.parseTimingControl()
	}
	if p.startsDeclaration() {
		return p.parseDataDeclaration()
	}
	if !facts.IsPossibleStatement(tok.Kind) {
		p.report(diag.SynExpectStatement, tok.Span, fmt.Sprintf("expected statement, found %s", quote(tok))).Emit()
		if n := p.skipTo(token.Unknown); n != nil {
			p.eat(token.Semicolon)
			return n
		}
		return p.missing()
	}
	if startsPrimary(tok.Kind) || facts.UnaryPrefixExpression(tok.Kind) != syntax.Unknown {
		return p.parseExpressionStatement()
	}
	return p.skipUnsupported("statement")
}

func (p *Parser) parseExpressionStatement() *Node {
	expr := p.parseProceduralExpr()
	n := &Node{Kind: syntax.ExpressionStatement, Children: []*Node{expr}, Span: expr.Span}
	if semi, ok := p.expectSemicolon(); ok {
		n.Close = semi
		n.Span = n.Span.Cover(semi.Span)
	}
	return n
}

func (p *Parser) parseBlock() *Node {
	open := p.openDelim()
	kind := syntax.SequentialBlockStatement
	if open.Kind == token.KwFork {
		kind = syntax.ParallelBlockStatement
	}
	n := &Node{Kind: kind, Tok: open, Span: open.Span}
	p.parseLabel()
	for !p.at(token.EOF) && !facts.IsEndKeyword(p.kind()) {
		n.Children = append(n.Children, p.parseBlockItem())
	}
	if closeTok, ok := p.expectEnd(open); ok {
		n.Close = closeTok
		n.Span = n.Span.Cover(closeTok.Span)
		p.parseLabel()
	} else if len(n.Children) > 0 {
		n.Span = n.Span.Cover(n.Children[len(n.Children)-1].Span)
	}
	return n
}

// parseBlockItem always consumes at least one token.
func (p *Parser) parseBlockItem() *Node {
	before := p.pos
	s := p.parseStatement()
	if p.pos == before {
		if skipped := p.skipOne(); skipped != nil {
			return skipped
		}
	}
	return s
}

func (p *Parser) parseIf() *Node {
	kw := p.advance()
	n := &Node{Kind: syntax.ConditionalStatement, Tok: kw, Span: kw.Span}
	if p.at(token.LParen) {
		open := p.openDelim()
		n.Children = append(n.Children, p.parseExpr())
		p.expectClose(open)
	} else {
		tok := p.peek()
		p.report(diag.SynUnexpectedToken, tok.Span, fmt.Sprintf("expected '(' after 'if', found %s", quote(tok))).Emit()
		n.Children = append(n.Children, p.missing())
	}
	n.Children = append(n.Children, p.parseStatement())
	if _, ok := p.eat(token.KwElse); ok {
		n.Children = append(n.Children, p.parseStatement())
	}
	n.Span = n.Span.Cover(n.Children[len(n.Children)-1].Span)
	return n
}

// parseTimingControl parses '#delay stmt' and '@event stmt'.
func (p *Parser) parseTimingControl() *Node {
	tok := p.advance()
	var ctl *Node
	if tok.Kind == token.Hash {
		d := p.parseDelayValue(tok)
		ctl = &Node{Kind: syntax.DelayControl, Tok: tok, Children: []*Node{d}, Span: tok.Span.Cover(d.Span)}
	} else {
		ctl = p.parseEventControl(tok)
	}
	stmt := p.parseStatement()
	return &Node{Kind: syntax.TimingControlStatement, Tok: tok, Children: []*Node{ctl, stmt}, Span: ctl.Span.Cover(stmt.Span)}
}

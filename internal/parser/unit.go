package parser

import (
	"fmt"

	"svfacts/internal/diag"
	"svfacts/internal/facts"
	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

// ParseFile parses design units and the items allowed around them up to
// the end of input.
func (p *Parser) ParseFile() *Node {
	n := &Node{Kind: syntax.CompilationUnit, Span: p.peek().Span}
	for !p.at(token.EOF) {
		before := p.pos
		var item *Node
		if tok := p.peek(); facts.IsEndKeyword(tok.Kind) {
			p.report(diag.SynUnexpectedToken, tok.Span, fmt.Sprintf("%s has nothing to close", quote(tok))).Emit()
			item = p.skipOne()
		} else {
			item = p.parseItem()
		}
		if p.pos == before {
			item = p.skipOne()
		}
		n.Children = append(n.Children, item)
	}
	if len(n.Children) > 0 {
		n.Span = n.Children[0].Span.Cover(n.Children[len(n.Children)-1].Span)
	}
	return n
}

func (p *Parser) parseItem() *Node {
	tok := p.peek()
	k := tok.Kind
	switch {
	case facts.ModuleDeclarationKind(k) != syntax.Unknown:
		return p.parseDesignUnit()
	case facts.ProceduralBlockKind(k) != syntax.Unknown:
		return p.parseProceduralBlock()
	case k == token.KwAssign:
		return p.parseContinuousAssign()
	case k == token.Semicolon:
		p.advance()
		return leaf(syntax.EmptyStatement, tok)
	case p.startsDeclaration():
		return p.parseDataDeclaration()
	case k.IsKeyword() || k == token.Ident:
		return p.skipUnsupported("item")
	}
	p.report(diag.SynUnexpectedToken, tok.Span, fmt.Sprintf("unexpected %s, expected a design unit or item", quote(tok))).Emit()
	if n := p.skipConstruct(); n != nil {
		return n
	}
	return p.missing()
}

func (p *Parser) parseDesignUnit() *Node {
	kw := p.openDelim()
	header := &Node{Kind: facts.ModuleHeaderKind(kw.Kind), Tok: kw, Span: kw.Span}
	if name, ok := p.expectIdent("design unit name"); ok {
		header.Children = []*Node{leaf(syntax.IdentifierName, name)}
		header.Span = header.Span.Cover(name.Span)
	}
	p.skipHeader()

	n := &Node{Kind: facts.ModuleDeclarationKind(kw.Kind), Tok: kw, Children: []*Node{header}, Span: header.Span}
	for !p.at(token.EOF) && !facts.IsEndKeyword(p.kind()) {
		before := p.pos
		item := p.parseItem()
		if p.pos == before {
			item = p.skipOne()
		}
		n.Children = append(n.Children, item)
	}
	if closeTok, ok := p.expectEnd(kw); ok {
		n.Close = closeTok
		n.Span = n.Span.Cover(closeTok.Span)
		p.parseLabel()
	} else {
		n.Span = n.Span.Cover(n.Children[len(n.Children)-1].Span)
	}
	return n
}

// skipHeader steps over parameter and port lists up to and including the
// header's ';'. It never passes a ';' or an end keyword; brackets still open
// there are reported unclosed, innermost first.
func (p *Parser) skipHeader() {
	var open []token.Token
	closeAll := func() {
		for i := len(open) - 1; i >= 0; i-- {
			p.reportUnclosed(open[i])
		}
	}
	for !p.at(token.EOF) {
		k := p.kind()
		switch {
		case k == token.Semicolon:
			closeAll()
			p.advance()
			return
		case facts.IsEndKeyword(k):
			closeAll()
			at := p.insertionSpan()
			p.report(diag.SynExpectSemicolon, at, fmt.Sprintf("expected ';' after the header, found %s", quote(p.peek()))).
				WithFix("insert ';'", diag.FixEdit{Span: at, NewText: ";"}).
				Emit()
			return
		case facts.DelimCloseKind(k) != token.Unknown:
			open = append(open, p.peek())
		case len(open) > 0 && facts.IsMatchingDelims(open[len(open)-1].Kind, k):
			open = open[:len(open)-1]
		}
		p.advance()
	}
	closeAll()
}

func (p *Parser) parseProceduralBlock() *Node {
	kw := p.advance()
	stmt := p.parseStatement()
	return &Node{Kind: facts.ProceduralBlockKind(kw.Kind), Tok: kw, Children: []*Node{stmt}, Span: kw.Span.Cover(stmt.Span)}
}

func (p *Parser) parseContinuousAssign() *Node {
	kw := p.advance()
	n := &Node{Kind: syntax.ContinuousAssign, Tok: kw, Span: kw.Span}
	for {
		e := p.parseExpr()
		n.Children = append(n.Children, e)
		if !e.Missing() && e.Kind != syntax.AssignmentExpression {
			p.report(diag.SynExpectExpression, e.Span, "continuous assignment needs the form 'target = value'").Emit()
		}
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	n.Span = n.Span.Cover(n.Children[len(n.Children)-1].Span)
	if semi, ok := p.expectSemicolon(); ok {
		n.Close = semi
		n.Span = n.Span.Cover(semi.Span)
	}
	return n
}

// startsDeclaration reports whether the cursor is at a data declaration
// rather than an expression. A user type is a name followed by another
// name that is not itself followed by '(' (an instantiation).
func (p *Parser) startsDeclaration() bool {
	k := p.kind()
	switch {
	case facts.IsDeclarationModifier(k), facts.IsNetType(k), isTypeKeyword(k):
		return true
	case k == token.Ident:
		return p.peekAt(1).Kind == token.Ident && p.peekAt(2).Kind != token.LParen
	}
	return false
}

// ParseModifiers consumes a run of declaration modifiers, reporting each
// one that may not follow its predecessor. It returns nil when the cursor
// is not at a modifier.
func (p *Parser) ParseModifiers() *Node {
	if !facts.IsDeclarationModifier(p.kind()) {
		return nil
	}
	n := &Node{Kind: syntax.ModifierList, Tok: p.peek(), Span: p.peek().Span}
	for facts.IsDeclarationModifier(p.kind()) {
		tok := p.advance()
		if len(n.Tokens) > 0 {
			prev := n.Tokens[len(n.Tokens)-1]
			if !facts.IsModifierAllowedAfter(tok.Kind, prev.Kind) {
				msg := fmt.Sprintf("'%s' is not allowed after '%s'", tok.Describe(), prev.Describe())
				p.report(diag.SynModifierNotAllowed, tok.Span, msg).Emit()
			}
		}
		n.Tokens = append(n.Tokens, tok)
		n.Span = n.Span.Cover(tok.Span)
	}
	return n
}

func (p *Parser) parseDataDeclaration() *Node {
	n := &Node{Kind: syntax.DataDeclaration, Tok: p.peek(), Span: p.peek().Span}
	if mods := p.ParseModifiers(); mods != nil {
		n.Children = append(n.Children, mods)
	}
	if t := p.parseDataType(); t != nil {
		n.Children = append(n.Children, t)
	}
	for {
		d := p.parseDeclarator()
		n.Children = append(n.Children, d)
		if d.Missing() {
			break
		}
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	n.Span = n.Span.Cover(n.Children[len(n.Children)-1].Span)
	if semi, ok := p.expectSemicolon(); ok {
		n.Close = semi
		n.Span = n.Span.Cover(semi.Span)
	}
	return n
}

// parseDataType returns nil for an implicit type, as in 'var x = 1'.
func (p *Parser) parseDataType() *Node {
	tok := p.peek()
	var t *Node
	switch {
	case facts.IsNetType(tok.Kind):
		p.advance()
		t = leaf(syntax.NetType, tok)
		if inner := p.parseDataType(); inner != nil {
			t.Children = []*Node{inner}
			t.Span = t.Span.Cover(inner.Span)
			return t
		}
	case isTypeKeyword(tok.Kind):
		p.advance()
		t = leaf(facts.IntegerType(tok.Kind), tok)
		if t.Kind == syntax.Unknown {
			t.Kind = facts.KeywordType(tok.Kind)
		}
	case tok.Kind == token.Ident && p.peekAt(1).Kind == token.Ident:
		p.advance()
		t = leaf(syntax.IdentifierName, tok)
	default:
		return nil
	}
	for p.at(token.LBracket) {
		dim := p.parseBracketed(nil)
		t.Children = append(t.Children, dim)
		t.Span = t.Span.Cover(dim.Span)
	}
	return t
}

// parseDeclarator parses 'name [dims] [= init]'. An initialiser is the last
// child and is marked by Close holding the '='.
func (p *Parser) parseDeclarator() *Node {
	name, ok := p.expectIdent("a declaration name")
	if !ok {
		return p.missing()
	}
	n := leaf(syntax.Declarator, name)
	for p.at(token.LBracket) {
		dim := p.parseBracketed(nil)
		n.Children = append(n.Children, dim)
		n.Span = n.Span.Cover(dim.Span)
	}
	if eq, ok := p.eat(token.Assign); ok {
		init := p.parseExpr()
		n.Close = eq
		n.Children = append(n.Children, init)
		n.Span = n.Span.Cover(init.Span)
	}
	return n
}

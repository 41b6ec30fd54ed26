package parser

import (
	"fmt"

	"svfacts/internal/diag"
	"svfacts/internal/facts"
	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

// ParseExpression parses one expression at the lowest binding power.
func (p *Parser) ParseExpression() *Node {
	return p.parseSubExpr(facts.PrecNone, false)
}

func (p *Parser) parseExpr() *Node {
	return p.parseSubExpr(facts.PrecNone, false)
}

// parseProceduralExpr parses the expression of an expression statement,
// where a top-level '<=' is a nonblocking assignment.
func (p *Parser) parseProceduralExpr() *Node {
	return p.parseSubExpr(facts.PrecNone, true)
}

// allowed reports whether op may appear here: the sequence and property
// family only in property mode and never inside an event control.
func (p *Parser) allowed(op syntax.Kind) bool {
	return !facts.IsTemporalOperator(op) || (p.opts.Property && !p.inEvent)
}

// parseSubExpr is the precedence-climbing core. It parses an operand and
// then folds every operator facts.ShouldFold accepts at minPrec.
func (p *Parser) parseSubExpr(minPrec int, procedural bool) *Node {
	var left *Node
	if op := facts.UnaryPrefixExpression(p.kind()); op != syntax.Unknown && p.allowed(op) {
		left = p.parsePrefix(op)
	} else {
		left = p.parsePostfix(p.parsePrimary())
	}
	return p.parseBinary(left, minPrec, procedural)
}

func (p *Parser) parsePrefix(op syntax.Kind) *Node {
	opTok := p.advance()
	n := &Node{Kind: op, Tok: opTok}
	switch op {
	case syntax.UnarySequenceDelayExpression:
		n.Children = append(n.Children, p.parseDelayValue(opTok))
	case syntax.UnarySequenceEventExpression:
		n.Children = append(n.Children, p.parseEventControl(opTok))
	}
	// the operand binds at the operator's own level
	operand := p.parseSubExpr(facts.Precedence(op), false)
	n.Children = append(n.Children, operand)
	n.Span = opTok.Span.Cover(operand.Span)
	return n
}

func (p *Parser) parseBinary(left *Node, minPrec int, procedural bool) *Node {
	for {
		k := p.kind()
		if k == token.Question && minPrec < facts.PrecLogicalImplies {
			left = p.parseConditional(left)
			procedural = false
			continue
		}
		op := facts.BinaryExpression(k)
		if op == syntax.Unknown || !p.allowed(op) {
			return left
		}
		if op == syntax.LessThanEqualExpression && procedural {
			op = syntax.NonblockingAssignmentExpression
		}
		if !facts.ShouldFold(op, minPrec) {
			return left
		}
		opTok := p.advance()
		procedural = false
		n := &Node{Kind: op, Tok: opTok, Children: []*Node{left}}
		if op == syntax.BinarySequenceDelayExpression {
			n.Children = append(n.Children, p.parseDelayValue(opTok))
		}
		right := p.parseSubExpr(facts.Precedence(op), false)
		n.Children = append(n.Children, right)
		n.Span = left.Span.Cover(right.Span)
		left = n
	}
}

// parseConditional parses '? a : b'. It sits between assignment and '->'
// and groups to the right.
func (p *Parser) parseConditional(cond *Node) *Node {
	q := p.advance()
	then := p.parseExpr()
	var els *Node
	if _, ok := p.eat(token.Colon); ok {
		els = p.parseSubExpr(facts.PrecAssignment, false)
	} else {
		tok := p.peek()
		p.report(diag.SynUnexpectedToken, tok.Span, fmt.Sprintf("expected ':' in conditional expression, found %s", quote(tok))).Emit()
		els = p.missing()
	}
	return &Node{
		Kind:     syntax.ConditionalExpression,
		Tok:      q,
		Children: []*Node{cond, then, els},
		Span:     cond.Span.Cover(els.Span),
	}
}

// startsPrimary reports whether k opens an operand this driver can build.
func startsPrimary(k token.Kind) bool {
	if facts.LiteralExpression(k) != syntax.Unknown || isTypeKeyword(k) {
		return true
	}
	switch k {
	case token.Ident, token.SystemIdent, token.LParen, token.LBrace, token.ApostropheLBrace, token.IntBase:
		return true
	}
	name := facts.KeywordNameExpression(k)
	return name == syntax.ConstructorName || (name != syntax.Unknown && !facts.IsSpecialMethodName(name))
}

func isTypeKeyword(k token.Kind) bool {
	return facts.IntegerType(k) != syntax.Unknown || facts.KeywordType(k) != syntax.Unknown
}

func (p *Parser) parsePrimary() *Node {
	tok := p.peek()
	k := tok.Kind
	switch k {
	case token.Ident:
		p.advance()
		return leaf(syntax.IdentifierName, tok)
	case token.SystemIdent:
		p.advance()
		return leaf(syntax.SystemName, tok)
	case token.LParen:
		return p.parseParenthesized()
	case token.LBrace, token.ApostropheLBrace:
		return p.parseConcatenation()
	case token.IntLit, token.IntBase:
		return p.parseIntegerLiteral()
	}
	if lit := facts.LiteralExpression(k); lit != syntax.Unknown {
		p.advance()
		return leaf(lit, tok)
	}
	if t := facts.IntegerType(k); t != syntax.Unknown {
		p.advance()
		return leaf(t, tok)
	}
	if t := facts.KeywordType(k); t != syntax.Unknown {
		p.advance()
		return leaf(t, tok)
	}
	if name := facts.KeywordNameExpression(k); name == syntax.ConstructorName || (name != syntax.Unknown && !facts.IsSpecialMethodName(name)) {
		p.advance()
		return leaf(name, tok)
	}

	var msg string
	switch {
	case facts.UnaryPrefixExpression(k) != syntax.Unknown:
		msg = fmt.Sprintf("%s is only valid in a sequence or property expression", quote(tok))
	case facts.IsPossibleExpression(k):
		msg = fmt.Sprintf("%s cannot start an operand here", quote(tok))
	default:
		msg = fmt.Sprintf("expected expression, found %s", quote(tok))
	}
	p.report(diag.SynExpectExpression, tok.Span, msg).Emit()
	return p.missing()
}

// parseIntegerLiteral joins a size, a base and a value into one literal:
// 8'hFF, 'b101 or a plain 42.
func (p *Parser) parseIntegerLiteral() *Node {
	tok := p.advance()
	based := tok.Kind == token.IntBase
	if tok.Kind == token.IntLit && p.at(token.IntBase) {
		base := p.advance()
		tok.Text += base.Text
		tok.Span = tok.Span.Cover(base.Span)
		based = true
	}
	if based {
		if v, ok := p.eat(token.IntLit); ok {
			tok.Text += v.Text
			tok.Span = tok.Span.Cover(v.Span)
		}
	}
	return leaf(syntax.IntegerLiteralExpression, tok)
}

func (p *Parser) parseParenthesized() *Node {
	open := p.openDelim()
	inner := p.parseExpr()
	closeTok, ok := p.expectClose(open)
	n := &Node{Kind: syntax.ParenthesizedExpression, Tok: open, Children: []*Node{inner}}
	n.Span = open.Span.Cover(inner.Span)
	if ok {
		n.Close = closeTok
		n.Span = n.Span.Cover(closeTok.Span)
	}
	return n
}

// parseConcatenation parses {a, b}, '{a, b} and the replication {n{a}}.
func (p *Parser) parseConcatenation() *Node {
	open := p.openDelim()
	n := &Node{Kind: syntax.ConcatenationExpression, Tok: open, Span: open.Span}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.pos
		item := p.parseConcatElement()
		if len(n.Children) == 0 && open.Kind == token.LBrace && p.at(token.LBrace) {
			n.Kind = syntax.ReplicationExpression
			n.Children = []*Node{item, p.parseConcatenation()}
			break
		}
		n.Children = append(n.Children, item)
		if _, ok := p.eat(token.Comma); !ok || p.pos == before {
			break
		}
	}
	if closeTok, ok := p.expectClose(open); ok {
		n.Close = closeTok
		n.Span = n.Span.Cover(closeTok.Span)
	} else if len(n.Children) > 0 {
		n.Span = n.Span.Cover(n.Children[len(n.Children)-1].Span)
	}
	return n
}

func (p *Parser) parseConcatElement() *Node {
	if p.at(token.LBracket) {
		return p.parseBracketed(nil)
	}
	if !facts.IsPossibleOpenRangeElement(p.kind()) {
		tok := p.peek()
		p.report(diag.SynExpectExpression, tok.Span, fmt.Sprintf("expected list element, found %s", quote(tok))).Emit()
		return p.missing()
	}
	return p.parseExpr()
}

func (p *Parser) parsePostfix(n *Node) *Node {
	if n.Missing() {
		return n
	}
	for {
		k := p.kind()
		switch {
		case k == token.LBracket:
			n = p.parseBracketed(n)
		case k == token.Dot:
			n = p.parseMember(n, syntax.MemberAccessExpression)
		case k == token.ColonColon:
			n = p.parseMember(n, syntax.ScopedName)
		case k == token.LParen && isCallee(n):
			n = p.parseInvocation(n)
		case facts.UnaryPostfixExpression(k) != syntax.Unknown:
			opTok := p.advance()
			n = &Node{Kind: facts.UnaryPostfixExpression(k), Tok: opTok, Children: []*Node{n}, Span: n.Span.Cover(opTok.Span)}
		default:
			return n
		}
	}
}

func isCallee(n *Node) bool {
	switch n.Kind {
	case syntax.IdentifierName, syntax.SystemName, syntax.MemberAccessExpression, syntax.ScopedName,
		syntax.SuperHandle, syntax.ThisHandle:
		return true
	}
	return facts.IsSpecialMethodName(n.Kind)
}

// parseBracketed parses [expr] or [lo:hi] after base. A nil base is an
// open range element or a delay range.
func (p *Parser) parseBracketed(base *Node) *Node {
	open := p.openDelim()
	sel := p.parseRange()
	n := &Node{Kind: syntax.ElementSelectExpression, Tok: open, Children: []*Node{base, sel}, Span: open.Span.Cover(sel.Span)}
	if base != nil {
		n.Span = base.Span.Cover(n.Span)
	}
	if closeTok, ok := p.expectClose(open); ok {
		n.Close = closeTok
		n.Span = n.Span.Cover(closeTok.Span)
	}
	return n
}

func (p *Parser) parseRange() *Node {
	lo := p.parseExpr()
	switch p.kind() {
	case token.Colon, token.PlusColon, token.MinusColon:
		op := p.advance()
		hi := p.parseExpr()
		return &Node{Kind: syntax.RangeExpression, Tok: op, Children: []*Node{lo, hi}, Span: lo.Span.Cover(hi.Span)}
	}
	return lo
}

// parseMember resolves the name after '.' or '::' through the keyword-name
// table, so arr.and() names the array method.
func (p *Parser) parseMember(base *Node, kind syntax.Kind) *Node {
	dot := p.advance()
	tok := p.peek()
	var name *Node
	switch {
	case tok.Kind == token.Ident:
		p.advance()
		name = leaf(syntax.IdentifierName, tok)
	case facts.KeywordNameExpression(tok.Kind) != syntax.Unknown:
		p.advance()
		name = leaf(facts.KeywordNameExpression(tok.Kind), tok)
	default:
		msg := fmt.Sprintf("expected a name after '%s', found %s", dot.Describe(), quote(tok))
		p.report(diag.SynExpectIdentifier, tok.Span, msg).Emit()
		name = p.missing()
	}
	return &Node{Kind: kind, Tok: dot, Children: []*Node{base, name}, Span: base.Span.Cover(dot.Span).Cover(name.Span)}
}

func (p *Parser) parseInvocation(callee *Node) *Node {
	open := p.openDelim()
	n := &Node{Kind: syntax.InvocationExpression, Tok: open, Children: []*Node{callee}, Span: callee.Span.Cover(open.Span)}
	for !facts.IsEndOfParenList(p.kind()) && !p.at(token.EOF) {
		before := p.pos
		n.Children = append(n.Children, p.parseArgument())
		if _, ok := p.eat(token.Comma); !ok || p.pos == before {
			break
		}
	}
	if closeTok, ok := p.expectClose(open); ok {
		n.Close = closeTok
		n.Span = n.Span.Cover(closeTok.Span)
	}
	return n
}

// parseArgument returns nil for an empty argument as in f(, b).
func (p *Parser) parseArgument() *Node {
	k := p.kind()
	switch {
	case k == token.Comma || facts.IsEndOfParenList(k):
		return nil
	case k == token.Dot:
		return p.parseNamedArgument()
	case !facts.IsPossibleArgument(k):
		tok := p.peek()
		p.report(diag.SynExpectExpression, tok.Span, fmt.Sprintf("expected argument, found %s", quote(tok))).Emit()
		return p.missing()
	}
	return p.parseExpr()
}

func (p *Parser) parseNamedArgument() *Node {
	dot := p.advance()
	name, ok := p.expectIdent("argument name")
	n := &Node{Kind: syntax.NamedArgument, Tok: name, Span: dot.Span}
	if !ok {
		return n
	}
	n.Span = n.Span.Cover(name.Span)
	if !p.at(token.LParen) {
		return n
	}
	open := p.openDelim()
	var value *Node
	if !p.at(token.RParen) {
		value = p.parseExpr()
	}
	n.Children = []*Node{value}
	if closeTok, ok := p.expectClose(open); ok {
		n.Close = closeTok
		n.Span = n.Span.Cover(closeTok.Span)
	}
	return n
}

// parseDelayValue parses what follows '#' or '##': a number, a name, a
// parenthesised expression or a [lo:hi] range.
func (p *Parser) parseDelayValue(after token.Token) *Node {
	tok := p.peek()
	switch tok.Kind {
	case token.LBracket:
		return p.parseBracketed(nil)
	case token.LParen:
		return p.parseParenthesized()
	case token.Ident:
		p.advance()
		return leaf(syntax.IdentifierName, tok)
	case token.IntLit, token.RealLit, token.TimeLit, token.OneStep:
		return p.parsePrimary()
	}
	msg := fmt.Sprintf("expected a delay after '%s', found %s", after.Describe(), quote(tok))
	p.report(diag.SynExpectOperand, tok.Span, msg).Emit()
	return p.missing()
}

// parseEventControl parses what follows '@': '*', '(*)', a name, or a
// parenthesised list of event expressions separated by 'or' or ','.
func (p *Parser) parseEventControl(at token.Token) *Node {
	n := &Node{Kind: syntax.EventControl, Tok: at, Span: at.Span}
	switch p.kind() {
	case token.Star:
		n.Span = n.Span.Cover(p.advance().Span)
		return n
	case token.LParenStar:
		// '(*)' spells as '(*' followed by ')'
		n.Span = n.Span.Cover(p.advance().Span)
		if closeTok, ok := p.eat(token.RParen); ok {
			n.Span = n.Span.Cover(closeTok.Span)
		} else {
			tok := p.peek()
			p.report(diag.SynUnexpectedToken, tok.Span, fmt.Sprintf("expected ')' after '@(*', found %s", quote(tok))).Emit()
		}
		return n
	case token.Ident:
		name := p.parsePostfix(p.parsePrimary())
		n.Children = []*Node{name}
		n.Span = n.Span.Cover(name.Span)
		return n
	case token.LParen:
	default:
		tok := p.peek()
		p.report(diag.SynExpectOperand, tok.Span, fmt.Sprintf("expected an event after '@', found %s", quote(tok))).Emit()
		n.Children = []*Node{p.missing()}
		return n
	}

	open := p.openDelim()
	saved := p.inEvent
	p.inEvent = true
	for {
		n.Children = append(n.Children, p.parseEventExpr())
		if !p.at(token.KwOr) && !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.inEvent = saved
	n.Span = n.Span.Cover(n.Children[len(n.Children)-1].Span)
	if closeTok, ok := p.expectClose(open); ok {
		n.Close = closeTok
		n.Span = n.Span.Cover(closeTok.Span)
	}
	return n
}

func (p *Parser) parseEventExpr() *Node {
	switch p.kind() {
	case token.KwPosEdge, token.KwNegEdge, token.KwEdge:
		edge := p.advance()
		e := p.parseExpr()
		return &Node{Kind: syntax.EdgeExpression, Tok: edge, Children: []*Node{e}, Span: edge.Span.Cover(e.Span)}
	}
	return p.parseExpr()
}

func leaf(kind syntax.Kind, tok token.Token) *Node {
	return &Node{Kind: kind, Tok: tok, Span: tok.Span}
}

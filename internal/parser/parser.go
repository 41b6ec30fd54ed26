// Package parser is a small recursive-descent driver over the facts engine.
// Every decision it makes (what may start a construct, which operator a
// token is, how tightly it binds, where a list ends, which keyword closes a
// block) is a facts query; the parser only owns the cursor, the tree and
// the diagnostics.
package parser

import (
	"fmt"

	"svfacts/internal/diag"
	"svfacts/internal/facts"
	"svfacts/internal/source"
	"svfacts/internal/syntax"
	"svfacts/internal/token"
	"svfacts/internal/trace"
)

type Options struct {
	// Property enables the sequence and property operators (levels 1 to 10).
	// Without it those tokens end an expression.
	Property  bool
	MaxErrors uint
	Reporter  diag.Reporter
	Tracer    trace.Tracer
	// TraceParent is the span that recovery events attach to.
	TraceParent uint64
}

type Result struct {
	Root   *Node
	Errors uint
}

// Parser holds the cursor over one token stream.
type Parser struct {
	toks     []token.Token
	pos      int
	opts     Options
	reporter diag.Reporter
	errors   uint
	capped   bool
	// open delimiters and block keywords, innermost last
	open []token.Kind
	// inEvent disables the sequence operators inside @(...)
	inEvent bool
}

// New prepares a parser. An EOF token is appended when toks lacks one.
func New(toks []token.Token, opts Options) *Parser {
	if n := len(toks); n == 0 || toks[n-1].Kind != token.EOF {
		var sp source.Span
		if n > 0 {
			end := toks[n-1].Span
			sp = source.Span{File: end.File, Start: end.End, End: end.End}
		}
		toks = append(toks[:n:n], token.Token{Kind: token.EOF, Span: sp})
	}
	p := &Parser{toks: toks, opts: opts}
	if opts.Reporter != nil {
		p.reporter = diag.NewDedupReporter(opts.Reporter)
	}
	return p
}

// ParseFile parses a whole compilation unit.
func ParseFile(toks []token.Token, opts Options) Result {
	p := New(toks, opts)
	root := p.ParseFile()
	return Result{Root: root, Errors: p.errors}
}

// ParseExpression parses toks as a single expression followed by EOF.
func ParseExpression(toks []token.Token, opts Options) Result {
	p := New(toks, opts)
	root := p.ParseExpression()
	p.Finish()
	return Result{Root: root, Errors: p.errors}
}

// ParseStatements parses toks as a run of procedural statements. The root
// is a CompilationUnit whose children are the statements in order.
func ParseStatements(toks []token.Token, opts Options) Result {
	p := New(toks, opts)
	root := &Node{Kind: syntax.CompilationUnit, Span: p.peek().Span}
	for !p.at(token.EOF) {
		if tok := p.peek(); facts.IsEndKeyword(tok.Kind) {
			p.report(diag.SynUnexpectedToken, tok.Span, fmt.Sprintf("%s has nothing to close", quote(tok))).Emit()
			root.Children = append(root.Children, p.skipOne())
			continue
		}
		before := p.pos
		stmt := p.ParseStatement()
		if p.pos == before {
			tok := p.peek()
			p.report(diag.SynUnexpectedToken, tok.Span, fmt.Sprintf("unexpected %s, expected a statement", quote(tok))).Emit()
			stmt = p.skipOne()
		}
		root.Children = append(root.Children, stmt)
	}
	if n := len(root.Children); n > 0 {
		root.Span = root.Children[0].Span.Cover(root.Children[n-1].Span)
	}
	return Result{Root: root, Errors: p.errors}
}

// Errors returns the number of errors reported so far, including those
// suppressed by MaxErrors.
func (p *Parser) Errors() uint { return p.errors }

// AtEOF reports whether all tokens have been consumed.
func (p *Parser) AtEOF() bool { return p.at(token.EOF) }

// Finish reports leftover tokens and consumes them.
func (p *Parser) Finish() {
	if p.at(token.EOF) {
		return
	}
	tok := p.peek()
	p.report(diag.SynUnexpectedToken, tok.Span, fmt.Sprintf("unexpected %s after the end of the input", quote(tok))).Emit()
	start := p.pos
	for !p.at(token.EOF) {
		p.advance()
	}
	p.skipped(start)
}

func (p *Parser) peek() token.Token { return p.toks[p.pos] }

func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		i = len(p.toks) - 1
	}
	return p.toks[i]
}

func (p *Parser) kind() token.Kind { return p.toks[p.pos].Kind }

func (p *Parser) at(k token.Kind) bool { return p.toks[p.pos].Kind == k }

// advance consumes the current token. EOF is never consumed.
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) eat(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// insertionSpan is the empty span right after the last consumed token.
func (p *Parser) insertionSpan() source.Span {
	if p.pos == 0 {
		s := p.peek().Span
		return source.Span{File: s.File, Start: s.Start, End: s.Start}
	}
	s := p.toks[p.pos-1].Span
	return source.Span{File: s.File, Start: s.End, End: s.End}
}

// missing stands in for a construct that could not be parsed. It consumes
// nothing.
func (p *Parser) missing() *Node {
	s := p.peek().Span
	return &Node{Kind: syntax.Unknown, Span: source.Span{File: s.File, Start: s.Start, End: s.Start}}
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	return p.reportSev(diag.SevError, code, sp, msg)
}

// reportSev returns nil once MaxErrors has been exceeded; the builder
// methods accept a nil receiver.
func (p *Parser) reportSev(sev diag.Severity, code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	if sev == diag.SevError {
		p.errors++
	}
	if p.opts.MaxErrors != 0 && p.errors > p.opts.MaxErrors {
		if !p.capped {
			p.capped = true
			cut := fmt.Sprintf("too many errors (limit %d), further diagnostics suppressed", p.opts.MaxErrors)
			diag.ReportError(p.reporter, diag.SynTooManyErrors, sp, cut).Emit()
		}
		return nil
	}
	return diag.NewReportBuilder(p.reporter, sev, code, sp, msg)
}

func (p *Parser) expectIdent(what string) (token.Token, bool) {
	if p.at(token.Ident) {
		return p.advance(), true
	}
	tok := p.peek()
	p.report(diag.SynExpectIdentifier, tok.Span, fmt.Sprintf("expected %s, found %s", what, quote(tok))).Emit()
	return tok, false
}

// expectSemicolon consumes ';' or reports it with an insertion fix. The
// rest of a statement that cannot go on is discarded.
func (p *Parser) expectSemicolon() (token.Token, bool) {
	if p.at(token.Semicolon) {
		return p.advance(), true
	}
	at := p.insertionSpan()
	p.report(diag.SynExpectSemicolon, at, fmt.Sprintf("expected ';', found %s", quote(p.peek()))).
		WithFix("insert ';'", diag.FixEdit{Span: at, NewText: ";"}).
		Emit()
	if !facts.IsPossibleStatement(p.kind()) && p.skipTo(token.Unknown) != nil {
		if semi, ok := p.eat(token.Semicolon); ok {
			return semi, true
		}
	}
	return token.Token{}, false
}

// parseLabel consumes an optional ': name' after begin, end and friends.
func (p *Parser) parseLabel() {
	if p.at(token.Colon) && p.peekAt(1).Kind == token.Ident {
		p.advance()
		p.advance()
	}
}

func quote(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of file"
	}
	return "'" + tok.Describe() + "'"
}

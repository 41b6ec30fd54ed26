package parser

import (
	"strings"

	"svfacts/internal/facts"
	"svfacts/internal/source"
	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

// Node is a syntax tree node. Leaves keep their token in Tok; operators keep
// the operator token there and delimited nodes keep the opener, with the
// closer in Close. A nil child is an empty slot, such as the base of an
// open range or an omitted argument.
type Node struct {
	Kind     syntax.Kind
	Tok      token.Token
	Close    token.Token
	Span     source.Span
	Children []*Node
	// Tokens holds the raw tokens of SkippedTokens and ModifierList nodes.
	Tokens []token.Token
}

// Missing reports whether n stands in for a construct that was expected
// but absent.
func (n *Node) Missing() bool {
	return n != nil && n.Kind == syntax.Unknown
}

// Walk calls fn for n and its descendants depth-first. Returning false from
// fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first node of the given kind in depth-first order.
func (n *Node) Find(kind syntax.Kind) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Kind == kind {
			found = c
			return false
		}
		return true
	})
	return found
}

// String renders n with every operator application in parentheses, so
// (a + (b * c)) shows how a + b * c grouped.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) child(i int) *Node {
	if i < len(n.Children) {
		return n.Children[i]
	}
	return nil
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		return
	}
	c0, c1, c2 := n.child(0), n.child(1), n.child(2)
	k := n.Kind
	switch {
	case k == syntax.Unknown:
		b.WriteString("<missing>")
	case k == syntax.SkippedTokens:
		b.WriteString("<skipped")
		for _, t := range n.Tokens {
			b.WriteByte(' ')
			b.WriteString(t.Describe())
		}
		b.WriteByte('>')
	case k == syntax.ModifierList:
		for i, t := range n.Tokens {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t.Describe())
		}

	case k == syntax.BinarySequenceDelayExpression:
		wrap(b, c0, " ##", c1, " ", c2)
	case k == syntax.UnarySequenceDelayExpression:
		wrap(b, "##", c0, " ", c1)
	case k == syntax.UnarySequenceEventExpression:
		wrap(b, c0, " ", c1)
	case facts.IsBinaryOperator(k):
		wrap(b, c0, " "+n.Tok.Describe()+" ", c1)
	case facts.IsUnaryOperator(k):
		switch {
		case facts.UnaryPostfixExpression(n.Tok.Kind) == k:
			wrap(b, c0, n.Tok.Describe())
		case n.Tok.IsKeyword():
			wrap(b, n.Tok.Describe()+" ", c0)
		default:
			wrap(b, n.Tok.Describe(), c0)
		}
	case k == syntax.ConditionalExpression:
		wrap(b, c0, " ? ", c1, " : ", c2)

	case k == syntax.ParenthesizedExpression:
		c0.write(b)
	case k == syntax.ConcatenationExpression:
		b.WriteString(n.Tok.Describe())
		writeList(b, n.Children, ", ")
		b.WriteByte('}')
	case k == syntax.ReplicationExpression:
		seq(b, "{", c0, c1, "}")
	case k == syntax.ElementSelectExpression:
		seq(b, c0, "[", c1, "]")
	case k == syntax.RangeExpression, k == syntax.MemberAccessExpression, k == syntax.ScopedName:
		seq(b, c0, n.Tok.Describe(), c1)
	case k == syntax.InvocationExpression:
		seq(b, c0, "(")
		writeList(b, n.Children[1:], ", ")
		b.WriteByte(')')
	case k == syntax.NamedArgument:
		seq(b, ".", n.Tok.Describe())
		if len(n.Children) > 0 {
			seq(b, "(", c0, ")")
		}
	case k == syntax.EdgeExpression:
		seq(b, n.Tok.Describe(), " ", c0)
	case k == syntax.EventControl:
		if len(n.Children) == 0 {
			b.WriteString("@*")
			break
		}
		b.WriteString("@(")
		writeList(b, n.Children, " or ")
		b.WriteByte(')')
	case k == syntax.DelayControl:
		seq(b, "#", c0)

	case k == syntax.EmptyStatement:
		b.WriteByte(';')
	case k == syntax.ExpressionStatement:
		seq(b, c0, ";")
	case k == syntax.TimingControlStatement:
		seq(b, c0, " ", c1)
	case k == syntax.ConditionalStatement:
		seq(b, "if (", c0, ") ", c1)
		if c2 != nil {
			seq(b, " else ", c2)
		}
	case k == syntax.SequentialBlockStatement, k == syntax.ParallelBlockStatement:
		b.WriteString(n.Tok.Describe())
		for _, c := range n.Children {
			seq(b, " ", c)
		}
		b.WriteByte(' ')
		b.WriteString(closeText(n))
	case facts.ProceduralBlockKind(n.Tok.Kind) == k:
		seq(b, n.Tok.Describe(), " ", c0)

	case k == syntax.DataDeclaration:
		var decls []*Node
		for _, c := range n.Children {
			if c.Kind == syntax.Declarator || c.Missing() {
				decls = append(decls, c)
				continue
			}
			seq(b, c, " ")
		}
		writeList(b, decls, ", ")
		b.WriteByte(';')
	case k == syntax.Declarator:
		b.WriteString(n.Tok.Describe())
		dims := n.Children
		if n.Close.Kind == token.Assign {
			dims = dims[:len(dims)-1]
		}
		for _, d := range dims {
			d.write(b)
		}
		if n.Close.Kind == token.Assign {
			seq(b, " = ", n.Children[len(n.Children)-1])
		}
	case k == syntax.NetType:
		b.WriteString(n.Tok.Describe())
		for _, c := range n.Children {
			if c.Kind != syntax.ElementSelectExpression {
				b.WriteByte(' ')
			}
			c.write(b)
		}
	case k == syntax.ContinuousAssign:
		b.WriteString("assign ")
		writeList(b, n.Children, ", ")
		b.WriteByte(';')

	case k == syntax.CompilationUnit:
		writeList(b, n.Children, "\n")
	case facts.ModuleHeaderKind(n.Tok.Kind) == k:
		seq(b, n.Tok.Describe(), " ", c0)
	case facts.ModuleDeclarationKind(n.Tok.Kind) == k:
		seq(b, c0, ";")
		for _, c := range n.Children[1:] {
			seq(b, " ", c)
		}
		b.WriteByte(' ')
		b.WriteString(closeText(n))

	default:
		// leaves, and types with their packed dimensions
		b.WriteString(n.Tok.Describe())
		for _, c := range n.Children {
			c.write(b)
		}
	}
}

// closeText is the closer that was found, or the one that was expected.
func closeText(n *Node) string {
	if n.Close.Kind != token.Unknown {
		return n.Close.Describe()
	}
	return facts.CloseOf(n.Tok.Kind).Text()
}

// seq writes strings and nodes in order.
func seq(b *strings.Builder, parts ...any) {
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			b.WriteString(v)
		case *Node:
			v.write(b)
		}
	}
}

func wrap(b *strings.Builder, parts ...any) {
	b.WriteByte('(')
	seq(b, parts...)
	b.WriteByte(')')
}

func writeList(b *strings.Builder, nodes []*Node, sep string) {
	for i, c := range nodes {
		if i > 0 {
			b.WriteString(sep)
		}
		c.write(b)
	}
}

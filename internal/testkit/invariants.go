// Package testkit holds checks shared by the tests of several packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"svfacts/internal/parser"
	"svfacts/internal/source"
)

// CheckSpanInvariants walks a parsed tree and verifies that:
//  1. every span is well formed and lies inside the file content
//  2. every non-empty span belongs to sf
//  3. skipped-token nodes hold their tokens in source order and cover them
func CheckSpanInvariants(root *parser.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var failure error
	root.Walk(func(n *parser.Node) bool {
		if failure != nil {
			return false
		}
		sp := n.Span
		switch {
		case sp.End < sp.Start:
			failure = fmt.Errorf("%s: inverted span %v", n.Kind, sp)
		case sp.End > size:
			failure = fmt.Errorf("%s: span %v ends beyond content (%d bytes)", n.Kind, sp, size)
		case !sp.Empty() && sp.File != sf.ID:
			failure = fmt.Errorf("%s: span %v points to file %d, want %d", n.Kind, sp, sp.File, sf.ID)
		}
		if failure == nil && len(n.Tokens) > 0 {
			failure = checkTokens(n)
		}
		return failure == nil
	})
	return failure
}

func checkTokens(n *parser.Node) error {
	prev := n.Tokens[0].Span
	for _, tok := range n.Tokens[1:] {
		if tok.Span.Start < prev.End {
			return fmt.Errorf("%s: token %v overlaps %v", n.Kind, tok.Span, prev)
		}
		prev = tok.Span
	}
	first, last := n.Tokens[0].Span, n.Tokens[len(n.Tokens)-1].Span
	if first.Start < n.Span.Start || last.End > n.Span.End {
		return fmt.Errorf("%s: span %v does not cover its tokens %v..%v", n.Kind, n.Span, first, last)
	}
	return nil
}

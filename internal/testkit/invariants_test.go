package testkit

import (
	"testing"

	"svfacts/internal/parser"
	"svfacts/internal/source"
	"svfacts/internal/spelling"
)

func parse(src string) (*parser.Node, *source.File) {
	fs := source.NewFileSet()
	fs.AddVirtual("other.sv", nil)
	id := fs.AddVirtual("top.sv", []byte(src))
	f := fs.Get(id)
	return parser.ParseFile(spelling.Tokens(f, spelling.Options{}), parser.Options{}).Root, f
}

func TestInvariantsHoldAfterRecovery(t *testing.T) {
	for _, src := range []string{
		"module m; assign a = b + c; endmodule",
		"module m; assign a = (b c]; always begin x = 1; join",
		"endmodule ) ] end",
		"",
	} {
		root, f := parse(src)
		if err := CheckSpanInvariants(root, f); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestInvariantsCatchBadSpans(t *testing.T) {
	root, f := parse("module m; endmodule")
	root.Children[0].Span.End = 1000
	if err := CheckSpanInvariants(root, f); err == nil {
		t.Fatal("span past the end accepted")
	}

	root, f = parse("module m; endmodule")
	root.Children[0].Span.File = 0
	if err := CheckSpanInvariants(root, f); err == nil {
		t.Fatal("span in the wrong file accepted")
	}
}

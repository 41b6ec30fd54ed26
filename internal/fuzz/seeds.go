package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB
	maxFuzzInput = 1 << 16
)

// snippets cover the recovery paths: unclosed and mismatched blocks, stray
// closers, missing semicolons and temporal operators outside properties.
var snippets = []string{
	"",
	"a + b * c",
	"a |-> b |=> c until d",
	"##[1:3] a ##1 b",
	"@(posedge clk) a |-> always b",
	"begin x = 1;",
	"fork begin x = 1; join",
	"begin x = 1; join end",
	"(a + b]",
	"f(a b, .c(d), )",
	"module m; wire w endmodule",
	"module m #(parameter N = 1) (input a); assign a = {2{b, c}}; endmodule",
	"var const static int x = 1, y;",
	"if (a) begin end else fork join_any",
	"endmodule endmodule begin",
	"case (x) 1: begin end endcase",
	"assert property (a |-> b);",
	"x = a inside {[1:2], 3};",
	"{{{{{{{{",
	"))))]]]]}}}}",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range snippets {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".sv" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}

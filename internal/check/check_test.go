package check

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"svfacts/internal/diag"
	"svfacts/internal/testkit"
	"svfacts/internal/trace"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestListFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b.sv":       "module b; endmodule",
		"a.sv":       "module a; endmodule",
		"sub/c.svh":  "wire c;",
		"notes.txt":  "not a source",
		"sub/d.V":    "module d; endmodule",
		"extra.data": "",
	})
	files, err := ListFiles([]string{dir})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f)
		got = append(got, filepath.ToSlash(rel))
	}
	want := []string{"a.sv", "b.sv", "sub/c.svh", "sub/d.V"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("files = %v, want %v", got, want)
	}

	explicit := filepath.Join(dir, "notes.txt")
	files, err = ListFiles([]string{explicit})
	if err != nil || len(files) != 1 || files[0] != explicit {
		t.Fatalf("explicit file: %v, %v", files, err)
	}

	if _, err := ListFiles([]string{filepath.Join(dir, "missing")}); err == nil {
		t.Fatalf("missing path accepted")
	}
}

func TestRunKeepsInputOrder(t *testing.T) {
	contents := map[string]string{}
	var names []string
	for _, n := range []string{"f0", "f1", "f2", "f3", "f4", "f5", "f6", "f7"} {
		contents[n+".sv"] = "module " + n + "; wire w; assign w = a + b; endmodule"
		names = append(names, n+".sv")
	}
	contents["f3.sv"] = "module f3; assign = ; endmodule"
	dir := writeFiles(t, contents)
	var paths []string
	for _, n := range names {
		paths = append(paths, filepath.Join(dir, n))
	}

	var first []string
	for _, jobs := range []int{1, 3, 8} {
		res, err := Run(context.Background(), paths, Options{Jobs: jobs})
		if err != nil {
			t.Fatalf("jobs=%d: %v", jobs, err)
		}
		if len(res.Files) != len(paths) {
			t.Fatalf("jobs=%d: %d results", jobs, len(res.Files))
		}
		var rendered []string
		for i, f := range res.Files {
			if f.Path != paths[i] {
				t.Fatalf("jobs=%d: result %d is %s", jobs, i, f.Path)
			}
			if (i == 3) != f.Bag.HasErrors() {
				t.Fatalf("jobs=%d: %s errors = %v", jobs, f.Path, f.Bag.HasErrors())
			}
			if !f.Timings.Has(StageParse) || f.Tokens == 0 {
				t.Fatalf("jobs=%d: %s not parsed", jobs, f.Path)
			}
			if err := testkit.CheckSpanInvariants(f.Root, res.FileSet.Get(f.FileID)); err != nil {
				t.Fatalf("jobs=%d: %s: %v", jobs, f.Path, err)
			}
			rendered = append(rendered, f.Root.String())
		}
		if !res.HasErrors() {
			t.Fatalf("jobs=%d: errors lost", jobs)
		}
		if first == nil {
			first = rendered
			continue
		}
		if strings.Join(rendered, "|") != strings.Join(first, "|") {
			t.Fatalf("jobs=%d: results differ from jobs=1", jobs)
		}
	}
}

func TestRunReportsLoadFailure(t *testing.T) {
	dir := writeFiles(t, map[string]string{"ok.sv": "wire w;"})
	paths := []string{filepath.Join(dir, "gone.sv"), filepath.Join(dir, "ok.sv")}
	res, err := Run(context.Background(), paths, Options{})
	if err != nil {
		t.Fatal(err)
	}
	items := res.Files[0].Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Fatalf("missing file diagnostics = %v", items)
	}
	if res.Files[1].Bag.Len() != 0 {
		t.Fatalf("ok.sv diagnostics = %v", res.Files[1].Bag.Items())
	}
	if merged := res.Merged(); merged.Len() != 1 {
		t.Fatalf("merged = %d", merged.Len())
	}
}

func TestRunEvents(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.sv": "wire a;", "b.sv": "wire b"})
	paths := []string{filepath.Join(dir, "a.sv"), filepath.Join(dir, "b.sv")}
	var (
		mu     sync.Mutex
		final  = map[string]Status{}
		closed bool
	)
	sink := FuncSink(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		if ev.File == "" {
			closed = ev.Status == StatusDone
			return
		}
		if ev.Status == StatusDone || ev.Status == StatusError {
			final[ev.File] = ev.Status
		}
	})
	if _, err := Run(context.Background(), paths, Options{Jobs: 2, Sink: sink}); err != nil {
		t.Fatal(err)
	}
	if final[paths[0]] != StatusDone || final[paths[1]] != StatusError {
		t.Fatalf("final statuses = %v", final)
	}
	if !closed {
		t.Fatalf("run completion event missing")
	}
}

func TestRunTraces(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.sv": "module m; assign a = (b c); endmodule"})
	tracer := trace.NewRingTracer(256, trace.LevelDebug)
	if _, err := Run(context.Background(), []string{filepath.Join(dir, "a.sv")}, Options{Tracer: tracer}); err != nil {
		t.Fatal(err)
	}
	var runID, fileID uint64
	var recoverParent uint64
	for _, ev := range tracer.Snapshot() {
		switch {
		case ev.Kind == trace.KindSpanBegin && ev.Scope == trace.ScopeRun:
			runID = ev.SpanID
		case ev.Kind == trace.KindSpanBegin && ev.Scope == trace.ScopeFile:
			fileID = ev.SpanID
			if ev.ParentID != runID {
				t.Fatalf("file span parent = %d, want %d", ev.ParentID, runID)
			}
		case ev.Kind == trace.KindPoint && ev.Name == "recover":
			recoverParent = ev.ParentID
		}
	}
	if runID == 0 || fileID == 0 {
		t.Fatalf("spans missing: run=%d file=%d", runID, fileID)
	}
	if recoverParent != fileID {
		t.Fatalf("recover parent = %d, want file span %d", recoverParent, fileID)
	}
}

func TestRunCancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.sv": "wire a;"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Run(ctx, []string{filepath.Join(dir, "a.sv")}, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(res.Files) != 1 || res.Files[0].Path == "" {
		t.Fatalf("results = %+v", res.Files)
	}
}

func TestTimingsSum(t *testing.T) {
	var tm Timings
	tm.Set(StageSpell, 2)
	tm.Set(StageParse, 3)
	if tm.Sum() != 5 || tm.Sum(StageParse) != 3 || tm.Has(StageLoad) {
		t.Fatalf("timings = %+v", tm)
	}
}

package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeRun, false},
		{LevelError, ScopeRun, false},
		{LevelPhase, ScopeRun, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
	}
	for _, tc := range cases {
		if got := tc.level.ShouldEmit(tc.scope); got != tc.want {
			t.Errorf("%v.ShouldEmit(%v) = %v, want %v", tc.level, tc.scope, got, tc.want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel accepted junk")
	}
	if l, err := ParseLevel("DEBUG"); err != nil || l != LevelDebug {
		t.Errorf("ParseLevel(DEBUG) = %v, %v", l, err)
	}
}

func TestRingKeepsNewest(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(r, ScopeNode, name, "", 0)
	}
	got := r.Snapshot()
	if len(got) != 3 || got[0].Name != "c" || got[2].Name != "e" {
		t.Fatalf("snapshot = %+v", got)
	}
	if got[0].Seq >= got[1].Seq {
		t.Fatalf("sequence numbers not increasing")
	}
}

func TestSpanPair(t *testing.T) {
	r := NewRingTracer(16, LevelDetail)
	s := Begin(r, ScopeFile, "parse:a.sv", 0)
	s.WithExtra("tokens", "12").End("ok")
	Begin(r, ScopeNode, "fold", s.ID()).End("")

	ev := r.Snapshot()
	if len(ev) != 2 {
		t.Fatalf("got %d events, want 2", len(ev))
	}
	if ev[0].Kind != KindSpanBegin || ev[1].Kind != KindSpanEnd || ev[1].Extra["tokens"] != "12" {
		t.Fatalf("events = %+v", ev)
	}
}

func TestStreamFormats(t *testing.T) {
	var text bytes.Buffer
	st := NewStreamTracer(&text, LevelPhase, FormatText)
	Begin(st, ScopeRun, "check", 0).WithExtra("files", "2").WithExtra("jobs", "4").End("done")
	out := text.String()
	if !strings.Contains(out, "> check") || !strings.Contains(out, "< check (done) {files=2, jobs=4}") {
		t.Fatalf("text output:\n%s", out)
	}

	var nd bytes.Buffer
	st = NewStreamTracer(&nd, LevelDebug, FormatNDJSON)
	Point(st, ScopeNode, "recover", "skipped 3", 7)
	var decoded map[string]any
	if err := json.Unmarshal(nd.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["name"] != "recover" || decoded["scope"] != "node" {
		t.Fatalf("ndjson = %v", decoded)
	}
}

func TestMultiAndContext(t *testing.T) {
	a := NewRingTracer(8, LevelDebug)
	b := NewRingTracer(8, LevelPhase)
	m := NewMultiTracer(LevelDebug, a, b)
	ctx := WithSpan(WithTracer(context.Background(), m), 42)

	Point(FromContext(ctx), ScopeNode, "x", "", ParentSpan(ctx))
	if len(a.Snapshot()) != 1 || len(b.Snapshot()) != 0 {
		t.Fatalf("fan-out ignored per-tracer levels")
	}
	if a.Snapshot()[0].ParentID != 42 {
		t.Fatalf("parent = %d", a.Snapshot()[0].ParentID)
	}
	if FromContext(context.Background()) != Nop {
		t.Fatal("empty context should yield Nop")
	}
}

func TestConcurrentEmit(t *testing.T) {
	r := NewRingTracer(1024, LevelDebug)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				Point(r, ScopeNode, "p", "", 0)
			}
		}()
	}
	wg.Wait()
	if n := len(r.Snapshot()); n != 400 {
		t.Fatalf("got %d events", n)
	}
}

func TestNewOff(t *testing.T) {
	tr, ring, err := New(Config{Level: LevelOff})
	if err != nil || tr != Nop || ring != nil {
		t.Fatalf("New(off) = %v, %v, %v", tr, ring, err)
	}
	var buf bytes.Buffer
	tr, ring, err = New(Config{Level: LevelDebug, Mode: ModeBoth, Output: &buf, RingSize: 4})
	if err != nil || ring == nil {
		t.Fatalf("New(debug) = %v, %v", ring, err)
	}
	Point(tr, ScopeNode, "n", "", 0)
	if buf.Len() == 0 || len(ring.Snapshot()) != 1 {
		t.Fatal("event not delivered to both sinks")
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]StorageMode{"": ModeStream, "stream": ModeStream, "Ring": ModeRing, " both ": ModeBoth} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("tape"); err == nil {
		t.Error("ParseMode(tape) succeeded")
	}
}

func TestNewRingModeDumpsOnClose(t *testing.T) {
	var buf bytes.Buffer
	tr, ring, err := New(Config{Level: LevelDebug, Mode: ModeRing, Output: &buf, RingSize: 2})
	if err != nil || ring == nil {
		t.Fatalf("New(ring) = %v, %v", ring, err)
	}
	Point(tr, ScopeNode, "first", "", 0)
	Point(tr, ScopeNode, "second", "", 0)
	Point(tr, ScopeNode, "third", "", 0)
	if buf.Len() != 0 {
		t.Fatalf("ring mode wrote before Close: %q", buf.String())
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "first") || !strings.Contains(out, "second") || !strings.Contains(out, "third") {
		t.Fatalf("dump = %q", out)
	}
	if strings.Index(out, "second") > strings.Index(out, "third") {
		t.Fatalf("dump not oldest first: %q", out)
	}
}

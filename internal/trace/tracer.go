package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer receives events. Implementations must be safe for concurrent use.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool
}

// StorageMode says where events are kept.
type StorageMode uint8

const (
	// ModeStream writes each event as it is emitted.
	ModeStream StorageMode = iota
	// ModeRing keeps only the last RingSize events in memory.
	ModeRing
	// ModeBoth streams and keeps a ring.
	ModeBoth
)

func (m StorageMode) String() string {
	switch m {
	case ModeStream:
		return "stream"
	case ModeRing:
		return "ring"
	case ModeBoth:
		return "both"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode converts a string to a StorageMode.
func ParseMode(s string) (StorageMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stream":
		return ModeStream, nil
	case "ring":
		return ModeRing, nil
	case "both":
		return ModeBoth, nil
	default:
		return ModeStream, fmt.Errorf("invalid storage mode: %q (expected: stream|ring|both)", s)
	}
}

// Config selects a tracer. Output wins over OutputPath; an empty path or
// "-" means stderr. A path ending in ".ndjson" selects NDJSON.
type Config struct {
	Level      Level
	Mode       StorageMode
	Output     io.Writer
	OutputPath string
	Format     Format
	// RingSize is the ring capacity for ModeRing and ModeBoth; 0 means 4096.
	RingSize int
}

// New builds the tracer described by cfg. The returned ring is nil in
// ModeStream. In ModeRing nothing is written until Close dumps the ring.
func New(cfg Config) (Tracer, *RingTracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil, nil
	}
	w := cfg.Output
	if w == nil {
		if cfg.OutputPath == "" || cfg.OutputPath == "-" {
			w = os.Stderr
		} else {
			f, err := os.Create(cfg.OutputPath)
			if err != nil {
				return nil, nil, fmt.Errorf("open trace output: %w", err)
			}
			w = f
			if strings.HasSuffix(cfg.OutputPath, ".ndjson") {
				cfg.Format = FormatNDJSON
			}
		}
	}
	stream := NewStreamTracer(w, cfg.Level, cfg.Format)
	switch cfg.Mode {
	case ModeRing:
		ring := NewRingTracer(cfg.RingSize, cfg.Level)
		return &ringSink{RingTracer: ring, out: stream}, ring, nil
	case ModeBoth:
		ring := NewRingTracer(cfg.RingSize, cfg.Level)
		return NewMultiTracer(cfg.Level, stream, ring), ring, nil
	default:
		return stream, nil, nil
	}
}

// ringSink is a ring that writes its contents to the stream's output on
// Close.
type ringSink struct {
	*RingTracer
	out *StreamTracer
}

func (t *ringSink) Close() error {
	err := t.Dump(t.out.w, t.out.format)
	if cerr := t.out.Close(); err == nil {
		err = cerr
	}
	return err
}

// MultiTracer fans events out to several tracers.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	return &MultiTracer{tracers: tracers, level: level}
}

// Emit passes a private copy to every tracer since tracers stamp Seq.
func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.tracers {
		cp := *ev
		tr.Emit(&cp)
	}
}

func (t *MultiTracer) Flush() error {
	var first error
	for _, tr := range t.tracers {
		if err := tr.Flush(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (t *MultiTracer) Close() error {
	var first error
	for _, tr := range t.tracers {
		if err := tr.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (t *MultiTracer) Level() Level  { return t.level }
func (t *MultiTracer) Enabled() bool { return t.level > LevelOff }

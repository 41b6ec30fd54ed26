package tables

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"svfacts/internal/syntax"
	"svfacts/internal/token"
)

// SchemaVersion changes whenever a row type changes shape.
const SchemaVersion uint16 = 1

var ErrSchemaMismatch = errors.New("tables: schema version mismatch")

type Snapshot struct {
	Schema     uint16        `json:"schema" msgpack:"schema"`
	Tool       string        `json:"tool" msgpack:"tool"`
	Tokens     []TokenRow    `json:"tokens" msgpack:"tokens"`
	Operators  []OperatorRow `json:"operators" msgpack:"operators"`
	Delimiters []DelimRow    `json:"delimiters" msgpack:"delimiters"`
}

// Build captures the current tables. tool is recorded verbatim, usually the
// version string of the binary.
func Build(tool string) *Snapshot {
	s := &Snapshot{Schema: SchemaVersion, Tool: tool}
	for k := token.Kind(0); k < token.NumKinds; k++ {
		s.Tokens = append(s.Tokens, RowFor(k))
		if closers := Closers(k); len(closers) > 0 {
			s.Delimiters = append(s.Delimiters, DelimRow{Open: k.String(), Closers: closers})
		}
	}
	for k := syntax.Kind(0); k < syntax.NumKinds; k++ {
		if row, ok := OperatorRowFor(k); ok {
			s.Operators = append(s.Operators, row)
		}
	}
	return s
}

// Token returns the row named name, if present.
func (s *Snapshot) Token(name string) (TokenRow, bool) {
	for _, r := range s.Tokens {
		if r.Token == name {
			return r, true
		}
	}
	return TokenRow{}, false
}

func WriteJSON(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func WriteMsgpack(w io.Writer, s *Snapshot) error {
	return msgpack.NewEncoder(w).Encode(s)
}

// ReadMsgpack decodes a snapshot and rejects other schema versions.
func ReadMsgpack(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("tables: decode: %w", err)
	}
	if s.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, s.Schema, SchemaVersion)
	}
	return &s, nil
}

// WriteFile writes s to path atomically, choosing the encoding by format
// ("json" or "msgpack").
func WriteFile(path, format string, s *Snapshot) (err error) {
	var write func(io.Writer, *Snapshot) error
	switch format {
	case "json":
		write = WriteJSON
	case "msgpack":
		write = WriteMsgpack
	default:
		return fmt.Errorf("tables: unknown format %q", format)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tables-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if err = write(f, s); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// ReadFile loads a msgpack snapshot written by WriteFile.
func ReadFile(path string) (*Snapshot, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadMsgpack(f)
}

// Package token defines the lexical token kinds of the hardware-description
// language front end.
// Invariants:
//   - Kind is a closed enumeration; every table indexed by Kind has NumKinds entries.
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - $unit and $root are distinct kinds, not system identifiers.
//   - Keyword spellings are case-sensitive.
package token

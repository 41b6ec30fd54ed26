// Package diag defines the diagnostic model shared by the token reader, the
// parser and the check command.
//
// A Diagnostic carries a Severity, a numeric Code with a stable ID
// ("SYN2003"), a message, a primary span and optional notes and fixes.
// Producers emit through a Reporter; BagReporter collects into a Bag with an
// optional limit, and DedupReporter suppresses repeats caused by recovery
// revisiting a token.
//
// Codes are grouped by range:
//
//	1000-1999 token reader
//	2000-2999 parser
//	4000-4999 I/O
//
// Rendering lives in internal/diagfmt; FormatShort here is the stable
// one-line form used by tests and by "check --format short".
package diag

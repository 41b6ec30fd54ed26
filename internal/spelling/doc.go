// Package spelling turns source text into tokens for the CLI and for tests.
//
// It is a fixture reader, not a lexer: it recognizes identifiers, keywords,
// system names, strings, the number shapes that matter to the parser
// (integer, real, time, based, unbased-unsized, 1step) and punctuation by
// longest match, and it skips whitespace and comments. It does not compute
// literal values, handle preprocessor directives or line continuations,
// and it attaches no trivia to tokens.
//
// The output always ends with exactly one EOF token. Problems are reported
// through diag.Reporter and never stop the scan.
package spelling

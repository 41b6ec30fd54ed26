// Package fuzztests houses Go fuzz harnesses for the classification engine
// and the driver built on it. They guard totality (every table answers for
// every kind without panicking) and termination (recovery never loops, and
// parsing always reaches the end of input).
//
// Does not: generate corpora, write files, run the CLI.
//
// Dependencies: internal/source, internal/spelling, internal/parser,
// internal/facts, internal/diag.
package fuzztests
